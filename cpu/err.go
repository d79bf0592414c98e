package cpu

import (
	"errors"

	"github.com/ezrec/icvm/translate"
)

var f = translate.From

var (
	// Engine errors
	ErrCpuHalted = errors.New(f("cpu halted"))
	ErrModeWrite = errors.New(f("immediate mode write target"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrOperandCount    = errors.New(f("operand count"))
	ErrOpcodeMissing   = errors.New(f("opcode missing"))
)

// ErrOp is a decode failure: an instruction word with an unrecognized
// operation selector.
type ErrOp Instruction

func (eo ErrOp) Error() string {
	return f("bad opcode %v in word %v", int64(eo)%100, int64(eo))
}

func (eo ErrOp) Is(err error) (ok bool) {
	_, ok = err.(ErrOp)
	return
}

// ErrMode is a decode failure: an addressing mode digit outside 0-2.
type ErrMode int

func (em ErrMode) Error() string {
	return f("bad parameter mode %v", int(em))
}

func (em ErrMode) Is(err error) (ok bool) {
	_, ok = err.(ErrMode)
	return
}

// ErrAddress is a computed negative memory address.
type ErrAddress int64

func (ea ErrAddress) Error() string {
	return f("negative address %v", int64(ea))
}

func (ea ErrAddress) Is(err error) (ok bool) {
	_, ok = err.(ErrAddress)
	return
}

// ErrStep locates an execution failure by program counter and the offending
// instruction word.
type ErrStep struct {
	Pc   int64
	Word int64
	Err  error
}

func (err *ErrStep) Error() string {
	return f("pc %v word %v: %v", err.Pc, err.Word, err.Err)
}

func (err *ErrStep) Unwrap() error {
	return err.Err
}

// ErrSyntax locates an assembler failure in its source listing.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrOpcodeUnknown string

func (eo ErrOpcodeUnknown) Error() string {
	return f("opcode %v unknown", string(eo))
}
