// Package cpu implements a stored-program integer computer with cooperative
// suspend/resume I/O.
//
// The machine is a fetch/decode/execute interpreter over a flat, growable
// int64 memory. Each instruction word encodes an operation in its low two
// decimal digits and one addressing mode digit per operand (position,
// immediate, or relative to a base register). Input and output travel
// through FIFO queues owned by the Cpu: when an input instruction finds its
// queue empty the machine parks in the waitio state and Run returns to the
// caller, which supplies more input and re-invokes Run or Step to resume
// the same instruction.
//
// The package also carries the surrounding tooling for the instruction set:
// a program image loader, a disassembler, an execution tracer, and a small
// assembler with label and compile-time expression support.
package cpu
