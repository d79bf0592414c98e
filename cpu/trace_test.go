package cpu

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracer(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	trace := &Tracer{Output: &out}

	trace.Printf("a")

	release := trace.Scope()
	trace.Printf("b\nc")
	release()

	trace.Printf("d")

	assert.Equal("a\n    b\n    c\nd\n", out.String())
}

func TestTracerSilence(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	trace := &Tracer{Output: &out}

	release := trace.Silence()
	trace.Printf("hidden")
	release()
	trace.Printf("shown")

	assert.Equal("shown\n", out.String())
}

func TestTracerNil(t *testing.T) {
	// A nil tracer is a no-op, not a panic.
	var trace *Tracer
	trace.Printf("nothing")
	trace.Scope()()
	trace.Silence()()
}

func TestCpuTrace(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	cpu := NewCpu([]int64{104, 9, 99})
	cpu.Trace = &Tracer{Output: &out}

	_, err := cpu.Run()
	assert.NoError(err)
	assert.Contains(out.String(), "out #9")
	assert.Contains(out.String(), "halt")
}
