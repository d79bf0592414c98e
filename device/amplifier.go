package device

import (
	"github.com/ezrec/icvm/cpu"
)

// Chain is a series of amplifier machines all running the same program,
// each seeded with its own phase setting. The output of each amplifier
// feeds the input of the next; the last feeds back into the first and also
// carries the chain output.
type Chain struct {
	Amps []*cpu.Cpu
}

// NewChain creates one amplifier per phase setting.
func NewChain(image []int64, phases ...int64) (chain *Chain) {
	chain = &Chain{}
	for _, phase := range phases {
		amp := cpu.NewCpu(image)
		amp.SendInput(phase)
		chain.Amps = append(chain.Amps, amp)
	}

	return
}

// Run seeds the first amplifier with 0, then round-robins the machines and
// forwards their outputs until every amplifier halts. Returns the last
// value the final amplifier produced. Straight-through programs halt after
// one pass; feedback programs keep looping until they decide to stop.
func (chain *Chain) Run() (signal int64, err error) {
	chain.Amps[0].SendInput(0)

	for {
		halted := true
		for n, amp := range chain.Amps {
			// Amplifiers can halt on different passes; a halted one has
			// nothing further to forward.
			if !amp.Halted() {
				_, err = amp.Run()
				if err != nil {
					return
				}
			}

			next := chain.Amps[(n+1)%len(chain.Amps)]
			for {
				value, ok := amp.ConsumeOutput()
				if !ok {
					break
				}
				next.SendInput(value)
				if n == len(chain.Amps)-1 {
					signal = value
				}
			}

			if !amp.Halted() {
				halted = false
			}
		}

		if halted {
			return
		}
	}
}

// BestPhases runs a fresh chain for every permutation of the phase
// settings and returns the highest output signal.
func BestPhases(image []int64, phases []int64) (best int64, err error) {
	found := false
	perm := append([]int64{}, phases...)

	err = permute(perm, len(perm), func() (err error) {
		chain := NewChain(image, perm...)
		signal, err := chain.Run()
		if err != nil {
			return
		}
		if !found || signal > best {
			best = signal
			found = true
		}
		return
	})

	return
}

// permute runs visit for every permutation of values, rearranging in
// place (Heap's algorithm).
func permute(values []int64, n int, visit func() error) (err error) {
	if n <= 1 {
		return visit()
	}

	for i := 0; i < n; i++ {
		err = permute(values, n-1, visit)
		if err != nil {
			return
		}
		if n%2 == 0 {
			values[i], values[n-1] = values[n-1], values[i]
		} else {
			values[0], values[n-1] = values[n-1], values[0]
		}
	}

	return
}
