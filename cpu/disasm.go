package cpu

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Operand prefixes in assembler listings: position, immediate, relative.
var modePrefix = map[Mode]string{
	MODE_POSITION:  "@",
	MODE_IMMEDIATE: "#",
	MODE_RELATIVE:  "~",
}

// DisasmAt renders the instruction at addr as one line of assembler text
// and reports the number of memory words it occupies. Words that do not
// decode to an instruction render as a one-word .data literal.
func DisasmAt(mem *Memory, addr int64) (text string, size int, err error) {
	raw, err := mem.Read(addr)
	if err != nil {
		return
	}

	instr := Instruction(raw)
	op, operr := instr.Op()
	if operr != nil {
		text = fmt.Sprintf(".data %v", raw)
		size = 1
		return
	}

	// A trailing word can decode as an operation whose operands would lie
	// beyond the image; that is data, not code.
	if addr+1+int64(op.Operands()) > int64(mem.ImageLen()) {
		text = fmt.Sprintf(".data %v", raw)
		size = 1
		return
	}

	parts := []string{op.String()}
	for n := 0; n < op.Operands(); n++ {
		var operand int64
		operand, err = mem.Read(addr + 1 + int64(n))
		if err != nil {
			return
		}
		mode, merr := instr.Mode(n)
		if merr != nil {
			text = fmt.Sprintf(".data %v", raw)
			size = 1
			return
		}
		parts = append(parts, modePrefix[mode]+strconv.FormatInt(operand, 10))
	}

	text = strings.Join(parts, " ")
	size = 1 + op.Operands()

	return
}

// Disassemble writes an addressed listing of the whole program image.
func Disassemble(image []int64, out io.Writer) (err error) {
	mem := NewMemory(image)

	for addr := int64(0); addr < int64(len(image)); {
		var text string
		var size int
		text, size, err = DisasmAt(mem, addr)
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(out, "%6d: %s\n", addr, text)
		if err != nil {
			return
		}
		addr += int64(size)
	}

	return
}
