package cpu

import (
	"fmt"
	"io"
	"strings"
)

// Tracer writes indented execution traces. It replaces any notion of a
// process-wide debug flag: whoever needs tracing holds a reference and
// passes it along. A nil Tracer discards everything, so call sites do not
// need to guard.
type Tracer struct {
	Output io.Writer

	indent int
	silent bool
}

// Printf writes one trace message at the current indentation. Embedded
// newlines are indented as well.
func (tr *Tracer) Printf(format string, args ...any) {
	if tr == nil || tr.Output == nil || tr.silent {
		return
	}

	pad := strings.Repeat("    ", tr.indent)
	text := pad + strings.ReplaceAll(fmt.Sprintf(format, args...), "\n", "\n"+pad)
	fmt.Fprintln(tr.Output, text)
}

// Scope deepens the indentation until the returned release func runs,
// which restores the prior level.
func (tr *Tracer) Scope() (release func()) {
	if tr == nil {
		return func() {}
	}

	tr.indent++

	return func() { tr.indent-- }
}

// Silence suppresses output until the returned release func runs, which
// restores the prior setting.
func (tr *Tracer) Silence() (release func()) {
	if tr == nil {
		return func() {}
	}

	prior := tr.silent
	tr.silent = true

	return func() { tr.silent = prior }
}
