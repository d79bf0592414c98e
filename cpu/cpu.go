package cpu

// State is the run status of a Cpu.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
	STATE_WAIT_IO = State(2) // waitio
)

// Cpu is a single stored-program integer computer. Each Cpu exclusively
// owns its memory and queues; emulated devices that share a program image
// each get their own Cpu seeded from a copy of it.
//
// Execution is cooperative and single-threaded: Run returns instead of
// parking whenever the program blocks on an empty input queue, and the
// caller resumes it by queueing input and invoking Run or Step again.
type Cpu struct {
	Trace *Tracer // Optional execution tracer.

	Mem  *Memory // Memory store, exclusively owned.
	Pc   int64   // Address of the next instruction.
	Base int64   // Relative addressing base register.

	state  State
	input  Queue
	output Queue
}

// NewCpu creates a Cpu seeded with a copy of the program image.
func NewCpu(program []int64) (cpu *Cpu) {
	cpu = &Cpu{
		Mem: NewMemory(program),
	}

	return
}

// Reset reuses the Cpu with a fresh program image, clearing the program
// counter, relative base, queues, and run status.
func (cpu *Cpu) Reset(program []int64) {
	cpu.Mem.Load(program)
	cpu.Pc = 0
	cpu.Base = 0
	cpu.state = STATE_RUNNING
	cpu.input.Reset()
	cpu.output.Reset()
}

// State returns the current run status.
func (cpu *Cpu) State() State {
	return cpu.state
}

// Halted reports whether the program has reached its halt instruction.
func (cpu *Cpu) Halted() bool {
	return cpu.state == STATE_HALTED
}

// Run executes instructions until the program halts or blocks on input.
// Run never parks: when the input queue runs dry it returns STATE_WAIT_IO
// with the program counter still on the input instruction, and the same
// instruction is retried on the next Run or Step. Running an already
// halted Cpu is a caller bug (ErrCpuHalted).
func (cpu *Cpu) Run() (state State, err error) {
	defer cpu.Trace.Scope()()

	for {
		state, err = cpu.Step()
		if err != nil || state != STATE_RUNNING {
			return
		}
	}
}

// Step decodes and executes exactly one instruction at the current program
// counter, mutating registers, memory, queues, and run status.
func (cpu *Cpu) Step() (state State, err error) {
	if cpu.state == STATE_HALTED {
		state = cpu.state
		err = ErrCpuHalted
		return
	}

	pc := cpu.Pc

	var word int64
	word, err = cpu.Mem.Read(pc)

	defer func() {
		state = cpu.state
		if err != nil {
			err = &ErrStep{Pc: pc, Word: word, Err: err}
		}
	}()

	if err != nil {
		return
	}

	instr := Instruction(word)

	var op Op
	op, err = instr.Op()
	if err != nil {
		return
	}

	if cpu.Trace != nil {
		text, _, _ := DisasmAt(cpu.Mem, pc)
		cpu.Trace.Printf("%6d: %v", pc, text)
	}

	switch op {
	case OP_ADD, OP_MUL, OP_LT, OP_EQ:
		var a, b int64
		a, err = cpu.readOperand(instr, 0)
		if err != nil {
			return
		}
		b, err = cpu.readOperand(instr, 1)
		if err != nil {
			return
		}
		var out int64
		switch op {
		case OP_ADD:
			out = a + b
		case OP_MUL:
			out = a * b
		case OP_LT:
			if a < b {
				out = 1
			}
		case OP_EQ:
			if a == b {
				out = 1
			}
		}
		err = cpu.writeOperand(instr, 2, out)
		if err != nil {
			return
		}
		cpu.Pc += 4
	case OP_IN:
		value, ok := cpu.input.Pop()
		if !ok {
			// The designed suspension point, not a fault. The program
			// counter stays on this instruction so it is retried once
			// input arrives.
			cpu.state = STATE_WAIT_IO
			return
		}
		err = cpu.writeOperand(instr, 0, value)
		if err != nil {
			return
		}
		cpu.Pc += 2
		cpu.state = STATE_RUNNING
	case OP_OUT:
		var a int64
		a, err = cpu.readOperand(instr, 0)
		if err != nil {
			return
		}
		cpu.output.Push(a)
		cpu.Pc += 2
	case OP_JNZ, OP_JZ:
		var a, target int64
		a, err = cpu.readOperand(instr, 0)
		if err != nil {
			return
		}
		target, err = cpu.readOperand(instr, 1)
		if err != nil {
			return
		}
		taken := a != 0
		if op == OP_JZ {
			taken = a == 0
		}
		if taken {
			cpu.Pc = target
		} else {
			cpu.Pc += 3
		}
	case OP_ARB:
		var a int64
		a, err = cpu.readOperand(instr, 0)
		if err != nil {
			return
		}
		cpu.Base += a
		cpu.Pc += 2
	case OP_HALT:
		cpu.state = STATE_HALTED
	}

	return
}

// readOperand resolves the effective value of operand n per its addressing
// mode.
func (cpu *Cpu) readOperand(instr Instruction, n int) (value int64, err error) {
	raw, err := cpu.Mem.Read(cpu.Pc + 1 + int64(n))
	if err != nil {
		return
	}

	mode, err := instr.Mode(n)
	if err != nil {
		return
	}

	switch mode {
	case MODE_POSITION:
		value, err = cpu.Mem.Read(raw)
	case MODE_IMMEDIATE:
		value = raw
	case MODE_RELATIVE:
		value, err = cpu.Mem.Read(cpu.Base + raw)
	}

	return
}

// writeOperand stores value through operand n. An immediate destination
// indicates a malformed program.
func (cpu *Cpu) writeOperand(instr Instruction, n int, value int64) (err error) {
	raw, err := cpu.Mem.Read(cpu.Pc + 1 + int64(n))
	if err != nil {
		return
	}

	mode, err := instr.Mode(n)
	if err != nil {
		return
	}

	switch mode {
	case MODE_POSITION:
		err = cpu.Mem.Write(raw, value)
	case MODE_IMMEDIATE:
		err = ErrModeWrite
	case MODE_RELATIVE:
		err = cpu.Mem.Write(cpu.Base+raw, value)
	}

	return
}

// SendInput appends values to the back of the input queue.
func (cpu *Cpu) SendInput(values ...int64) {
	for _, value := range values {
		cpu.input.Push(value)
	}
}

// SendString appends the character codes of text to the input queue, for
// programs that speak an ASCII protocol.
func (cpu *Cpu) SendString(text string) {
	for _, b := range []byte(text) {
		cpu.input.Push(int64(b))
	}
}

// PeekInput returns the front of the input queue without consuming it.
// Clients use it to detect whether a program has drained its own queue.
func (cpu *Cpu) PeekInput() (value int64, ok bool) {
	return cpu.input.Peek()
}

// ConsumeOutput pops the oldest value from the output queue.
func (cpu *Cpu) ConsumeOutput() (value int64, ok bool) {
	return cpu.output.Pop()
}

// ConsumeOutputLast drains the output queue and returns the final value.
func (cpu *Cpu) ConsumeOutputLast() (value int64, ok bool) {
	for {
		next, more := cpu.output.Pop()
		if !more {
			return
		}
		value = next
		ok = true
	}
}

// ConsumeOutputAll drains and returns the entire output queue, oldest
// first.
func (cpu *Cpu) ConsumeOutputAll() (values []int64) {
	for {
		value, ok := cpu.output.Pop()
		if !ok {
			return
		}
		values = append(values, value)
	}
}

// ConsumeOutputN pops exactly count values, oldest first, or nothing at
// all when fewer are buffered.
func (cpu *Cpu) ConsumeOutputN(count int) (values []int64, ok bool) {
	return cpu.output.PopN(count)
}

// OutputLen returns the number of buffered output values.
func (cpu *Cpu) OutputLen() int {
	return cpu.output.Len()
}

// Peek reads a memory cell directly, bypassing the instruction stream.
func (cpu *Cpu) Peek(addr int64) (value int64, err error) {
	return cpu.Mem.Read(addr)
}

// Poke patches a memory cell directly. Some programs reserve low cells as
// out-of-band configuration switches written before the first Run.
func (cpu *Cpu) Poke(addr int64, value int64) (err error) {
	return cpu.Mem.Write(addr, value)
}
