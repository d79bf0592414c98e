package cpu

import (
	"bufio"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Assembler is a single-pass assembler for the instruction set, with
// deferred resolution of forward label references.
//
// Syntax, one statement per line (';' starts a comment):
//
//	.equ NAME VALUE         ; compile-time constant
//	label:  add @a #1 ~b    ; '@' position, '#' immediate, '~' relative
//	        jnz @a label    ; bare words are immediate; labels resolve
//	a:      .data 0 0 99    ; raw words
//
// $( ... ) spans evaluate as Starlark expressions at assembly time, with
// all numeric equates predefined.
type Assembler struct {
	Verbose bool              // If set, verbosely logs the assembler actions.
	Equate  map[string]string // Map of equates.
	Label   map[string]int64  // Map of labels to image addresses.

	image  []int64
	fixups []fixup
}

// fixup is an operand slot awaiting a label address.
type fixup struct {
	addr   int64
	label  string
	lineno int
	line   string
}

// opMap is the mnemonic table.
var opMap = map[string]Op{
	"add":  OP_ADD,
	"mul":  OP_MUL,
	"in":   OP_IN,
	"out":  OP_OUT,
	"jnz":  OP_JNZ,
	"jz":   OP_JZ,
	"lt":   OP_LT,
	"eq":   OP_EQ,
	"arb":  OP_ARB,
	"halt": OP_HALT,
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
var parenRe = regexp.MustCompile(`\$\([^\$]*\)`)

// Parse assembles a source listing into a program image.
func (asm *Assembler) Parse(in io.Reader) (image []int64, err error) {
	asm.Equate = map[string]string{}
	asm.Label = map[string]int64{}
	asm.image = nil
	asm.fixups = nil

	scanner := bufio.NewScanner(in)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		err = asm.parseLine(line, lineno)
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	err = asm.link()
	if err != nil {
		return
	}

	image = asm.image

	return
}

// link patches every operand slot that referenced a label.
func (asm *Assembler) link() (err error) {
	for _, fix := range asm.fixups {
		addr, ok := asm.Label[fix.label]
		if !ok {
			err = ErrSyntax{LineNo: fix.lineno, Line: fix.line, Err: ErrLabelMissing(fix.label)}
			return
		}
		asm.image[fix.addr] = addr
	}

	return
}

// parenEval does assembly-time $(...) evaluations.
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, verr := strconv.ParseInt(str, 0, 64)
		if verr != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

// parseLine assembles a single source line.
func (asm *Assembler) parseLine(line string, lineno int) (err error) {
	line, _, _ = strings.Cut(line, ";")

	// Do $() evaluations
	line = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return strconv.FormatInt(value, 10)
	})
	if err != nil {
		return
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		return
	}

	// label:
	if strings.HasSuffix(words[0], ":") {
		name := strings.TrimSuffix(words[0], ":")
		_, ok := asm.Label[name]
		if ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[name] = int64(len(asm.image))
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	if asm.Verbose {
		log.Printf("asm: %4d: %v", len(asm.image), words)
	}

	// .data WORD...
	if words[0] == ".data" {
		for _, word := range words[1:] {
			var value int64
			value, err = asm.valueOf(word, lineno, line)
			if err != nil {
				return
			}
			asm.image = append(asm.image, value)
		}
		return
	}

	op, ok := opMap[words[0]]
	if !ok {
		err = ErrOpcodeUnknown(words[0])
		return
	}

	operands := words[1:]
	if len(operands) != op.Operands() {
		err = ErrOperandCount
		return
	}

	base := len(asm.image)
	asm.image = append(asm.image, 0) // instruction word, patched below

	modes := make([]Mode, 0, len(operands))
	for _, word := range operands {
		var mode Mode
		mode, word = operandMode(word)
		modes = append(modes, mode)

		var value int64
		value, err = asm.valueOf(word, lineno, line)
		if err != nil {
			return
		}
		asm.image = append(asm.image, value)
	}

	if target := op.Target(); target >= 0 && modes[target] == MODE_IMMEDIATE {
		err = ErrModeWrite
		return
	}

	asm.image[base] = int64(Make(op, modes...))

	return
}

// operandMode strips the addressing prefix from an operand word. Bare
// words are immediate.
func operandMode(word string) (mode Mode, rest string) {
	mode = MODE_IMMEDIATE
	rest = word

	switch word[0] {
	case '@':
		mode = MODE_POSITION
		rest = word[1:]
	case '~':
		mode = MODE_RELATIVE
		rest = word[1:]
	case '#':
		rest = word[1:]
	}

	return
}

// valueOf resolves an operand word: a number, an equate, or a label (which
// is recorded as a fixup to patch at link time).
func (asm *Assembler) valueOf(word string, lineno int, line string) (value int64, err error) {
	resolved, ok := asm.Equate[word]
	if ok {
		word = resolved
	}

	value, err = strconv.ParseInt(word, 0, 64)
	if err == nil {
		return
	}
	err = nil

	if !identRe.MatchString(word) {
		err = ErrParseNumber(word)
		return
	}

	asm.fixups = append(asm.fixups, fixup{
		addr:   int64(len(asm.image)),
		label:  word,
		lineno: lineno,
		line:   line,
	})
	value = 0

	return
}
