package cpu

// Op is the operation selector encoded in the low two decimal digits of an
// instruction word.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_ADD  = Op(1)  // add
	OP_MUL  = Op(2)  // mul
	OP_IN   = Op(3)  // in
	OP_OUT  = Op(4)  // out
	OP_JNZ  = Op(5)  // jnz
	OP_JZ   = Op(6)  // jz
	OP_LT   = Op(7)  // lt
	OP_EQ   = Op(8)  // eq
	OP_ARB  = Op(9)  // arb
	OP_HALT = Op(99) // halt
)

// Operands returns the operand count of the operation.
func (op Op) Operands() int {
	switch op {
	case OP_ADD, OP_MUL, OP_LT, OP_EQ:
		return 3
	case OP_JNZ, OP_JZ:
		return 2
	case OP_IN, OP_OUT, OP_ARB:
		return 1
	}

	return 0
}

// Target returns the index of the operand the operation writes through, or
// -1 when the operation writes nothing.
func (op Op) Target() int {
	switch op {
	case OP_ADD, OP_MUL, OP_LT, OP_EQ:
		return 2
	case OP_IN:
		return 0
	}

	return -1
}

// Mode is the per-operand interpretation rule encoded in the higher decimal
// digits of an instruction word.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_POSITION  = Mode(0) // position
	MODE_IMMEDIATE = Mode(1) // immediate
	MODE_RELATIVE  = Mode(2) // relative
)

// Instruction is a single fetched instruction word. It is decoded
// transiently each time the program counter lands on it, never stored.
type Instruction int64

// Op decodes the operation selector.
func (instr Instruction) Op() (op Op, err error) {
	op = Op(int64(instr) % 100)
	switch op {
	case OP_ADD, OP_MUL, OP_IN, OP_OUT, OP_JNZ, OP_JZ, OP_LT, OP_EQ, OP_ARB, OP_HALT:
	default:
		err = ErrOp(instr)
	}

	return
}

// Mode decodes the addressing mode of operand n: the decimal digit at
// position 2+n of the instruction word, 0-indexed.
func (instr Instruction) Mode(n int) (mode Mode, err error) {
	div := int64(100)
	for i := 0; i < n; i++ {
		div *= 10
	}

	mode = Mode((int64(instr) / div) % 10)
	switch mode {
	case MODE_POSITION, MODE_IMMEDIATE, MODE_RELATIVE:
	default:
		err = ErrMode(mode)
	}

	return
}

// Size returns the width of the instruction in memory words, including the
// instruction word itself.
func (instr Instruction) Size() (size int, err error) {
	op, err := instr.Op()
	if err != nil {
		return
	}

	size = 1 + op.Operands()

	return
}

// Make encodes an operation and its per-operand addressing modes into an
// instruction word. Unspecified modes default to position.
func Make(op Op, modes ...Mode) (instr Instruction) {
	instr = Instruction(op)

	place := int64(100)
	for _, mode := range modes {
		instr += Instruction(int64(mode) * place)
		place *= 10
	}

	return
}
