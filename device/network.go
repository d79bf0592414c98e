package device

import (
	"github.com/ezrec/icvm/cpu"
)

const (
	// NETWORK_SIZE is the node count of the standard deployment.
	NETWORK_SIZE = 50
	// NAT_ADDRESS is the packet destination served by the NAT.
	NAT_ADDRESS = 255
	// IDLE_THRESHOLD is how many quiet ticks mark the network idle. Nodes
	// poll with -1 while deciding whether to send, so a short quiet spell
	// proves nothing.
	IDLE_THRESHOLD = 650
)

// Packet is a routed (x, y) value pair.
type Packet struct {
	Dest int64
	X    int64
	Y    int64
}

// Network is a packet-switched mesh of nodes all running the same program,
// each booted with its own address. A node reads -1 when no packet is
// pending; it emits packets as (dest, x, y) output triples. Scheduling is
// a fixed round-robin of single steps per tick, on one goroutine: the
// machines never run concurrently and share nothing.
type Network struct {
	Nodes []*cpu.Cpu
}

// NewNetwork boots size nodes: each is run to its first input request and
// handed its address.
func NewNetwork(image []int64, size int) (net *Network, err error) {
	net = &Network{}
	for id := 0; id < size; id++ {
		node := cpu.NewCpu(image)

		var state cpu.State
		state, err = node.Run()
		if err != nil {
			return
		}
		if state != cpu.STATE_WAIT_IO {
			err = ErrNotWaiting
			return
		}

		node.SendInput(int64(id))
		_, err = node.Step()
		if err != nil {
			return
		}

		net.Nodes = append(net.Nodes, node)
	}

	return
}

// tick steps every node once, feeding -1 to any that stall, then collects
// completed packets. Partial triples stay buffered until a later tick
// completes them.
func (net *Network) tick() (packets []Packet, err error) {
	for _, node := range net.Nodes {
		var state cpu.State
		state, err = node.Step()
		if err != nil {
			return
		}
		if state == cpu.STATE_WAIT_IO {
			node.SendInput(-1)
			state, err = node.Step() // repeat the same input instruction
			if err != nil {
				return
			}
			if state == cpu.STATE_WAIT_IO {
				err = ErrNodeStalled
				return
			}
		}
	}

	for _, node := range net.Nodes {
		triple, ok := node.ConsumeOutputN(3)
		if !ok {
			continue
		}
		packets = append(packets, Packet{Dest: triple[0], X: triple[1], Y: triple[2]})
	}

	return
}

// deliver forwards packets to their destination nodes.
func (net *Network) deliver(packets []Packet) (err error) {
	for _, packet := range packets {
		if packet.Dest < 0 || packet.Dest >= int64(len(net.Nodes)) {
			err = ErrRouteInvalid(packet.Dest)
			return
		}
		net.Nodes[packet.Dest].SendInput(packet.X, packet.Y)
	}

	return
}

// FirstNatY ticks the network until any node addresses the NAT, returning
// that packet's Y value.
func (net *Network) FirstNatY() (y int64, err error) {
	for {
		var packets []Packet
		packets, err = net.tick()
		if err != nil {
			return
		}

		var forward []Packet
		for _, packet := range packets {
			if packet.Dest == NAT_ADDRESS {
				y = packet.Y
				return
			}
			forward = append(forward, packet)
		}

		err = net.deliver(forward)
		if err != nil {
			return
		}
	}
}

// RunNat runs the network with a NAT attached: packets to NAT_ADDRESS
// replace its one-packet buffer, and once the network has been idle for
// IDLE_THRESHOLD ticks the NAT forwards the buffered packet to node 0.
// Returns the first Y value the NAT delivers twice in a row.
func (net *Network) RunNat() (y int64, err error) {
	var nat *Packet
	var lastY *int64
	idle := 0

	for {
		var packets []Packet
		packets, err = net.tick()
		if err != nil {
			return
		}

		var forward []Packet
		for _, packet := range packets {
			if packet.Dest == NAT_ADDRESS {
				buffered := packet
				nat = &buffered
				continue
			}
			forward = append(forward, packet)
		}
		err = net.deliver(forward)
		if err != nil {
			return
		}

		if len(packets) == 0 && net.quiet() {
			idle++
		} else {
			idle = 0
		}
		if idle < IDLE_THRESHOLD {
			continue
		}

		if nat == nil {
			err = ErrNatEmpty
			return
		}

		net.Nodes[0].SendInput(nat.X, nat.Y)
		if lastY != nil && *lastY == nat.Y {
			y = nat.Y
			return
		}
		delivered := nat.Y
		lastY = &delivered
		idle = 0
		nat = nil
	}
}

// quiet reports whether every node has drained its input queue.
func (net *Network) quiet() bool {
	for _, node := range net.Nodes {
		_, pending := node.PeekInput()
		if pending {
			return false
		}
	}

	return true
}
