package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstructionDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word  int64
		op    Op
		modes []Mode
		size  int
	}){
		{1, OP_ADD, []Mode{MODE_POSITION, MODE_POSITION, MODE_POSITION}, 4},
		{1002, OP_MUL, []Mode{MODE_POSITION, MODE_IMMEDIATE, MODE_POSITION}, 4},
		{1102, OP_MUL, []Mode{MODE_IMMEDIATE, MODE_IMMEDIATE, MODE_POSITION}, 4},
		{3, OP_IN, []Mode{MODE_POSITION}, 2},
		{203, OP_IN, []Mode{MODE_RELATIVE}, 2},
		{104, OP_OUT, []Mode{MODE_IMMEDIATE}, 2},
		{204, OP_OUT, []Mode{MODE_RELATIVE}, 2},
		{1105, OP_JNZ, []Mode{MODE_IMMEDIATE, MODE_IMMEDIATE}, 3},
		{1006, OP_JZ, []Mode{MODE_POSITION, MODE_IMMEDIATE}, 3},
		{1007, OP_LT, []Mode{MODE_POSITION, MODE_IMMEDIATE, MODE_POSITION}, 4},
		{21108, OP_EQ, []Mode{MODE_IMMEDIATE, MODE_IMMEDIATE, MODE_RELATIVE}, 4},
		{109, OP_ARB, []Mode{MODE_IMMEDIATE}, 2},
		{99, OP_HALT, nil, 1},
	}

	for _, entry := range table {
		instr := Instruction(entry.word)

		op, err := instr.Op()
		assert.NoError(err, entry.word)
		assert.Equal(entry.op, op, entry.word)

		for n, mode := range entry.modes {
			got, err := instr.Mode(n)
			assert.NoError(err, entry.word)
			assert.Equal(mode, got, entry.word)
		}

		size, err := instr.Size()
		assert.NoError(err, entry.word)
		assert.Equal(entry.size, size, entry.word)

		// Make is the inverse of decode.
		assert.Equal(instr, Make(entry.op, entry.modes...), entry.word)
	}
}

func TestInstructionDecodeErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Instruction(98).Op()
	assert.ErrorIs(err, ErrOp(0))

	_, err = Instruction(-1).Op()
	assert.ErrorIs(err, ErrOp(0))

	_, err = Instruction(302).Mode(0)
	assert.ErrorIs(err, ErrMode(0))

	_, err = Instruction(98).Size()
	assert.ErrorIs(err, ErrOp(0))
}

func TestOpTarget(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, OP_ADD.Target())
	assert.Equal(2, OP_EQ.Target())
	assert.Equal(0, OP_IN.Target())
	assert.Equal(-1, OP_OUT.Target())
	assert.Equal(-1, OP_JNZ.Target())
	assert.Equal(-1, OP_HALT.Target())
}

func TestStrings(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("add", OP_ADD.String())
	assert.Equal("arb", OP_ARB.String())
	assert.Equal("halt", OP_HALT.String())
	assert.Equal("relative", MODE_RELATIVE.String())
	assert.Equal("waitio", STATE_WAIT_IO.String())
}
