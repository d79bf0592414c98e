package device

import (
	"bufio"
	"io"
	"strings"

	"github.com/ezrec/icvm/cpu"
)

// Console drives a program that speaks the ASCII line protocol: printable
// output words are assembled into text, input text is queued one line at a
// time. The protocol is a client convention layered over the raw integer
// queues; the engine knows nothing of it.
type Console struct {
	Cpu *cpu.Cpu

	Input  io.Reader // Line source for interactive sessions.
	Output io.Writer // Sink for program text.
}

// NewConsole creates a console around its own machine seeded from the
// program image.
func NewConsole(image []int64) (con *Console) {
	con = &Console{
		Cpu: cpu.NewCpu(image),
	}

	return
}

// ReadText drains the output queue, decoding ASCII-range words as text.
// Words beyond the ASCII range are out-of-band values (scores, damage
// totals) and are returned alongside.
func (con *Console) ReadText() (text string, extra []int64) {
	var sb strings.Builder
	for {
		value, ok := con.Cpu.ConsumeOutput()
		if !ok {
			break
		}
		if value >= 0 && value < 128 {
			sb.WriteByte(byte(value))
		} else {
			extra = append(extra, value)
		}
	}
	text = sb.String()

	return
}

// SendLine queues one line of input, appending the newline the protocol
// expects when the caller left it off.
func (con *Console) SendLine(line string) {
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	con.Cpu.SendString(line)
}

// Run drives the session until the program halts: run the machine, copy
// its text to Output, and when it blocks feed it the next line from Input.
// Returns ErrInputExhausted when the program wants input that Input can no
// longer supply.
func (con *Console) Run() (err error) {
	lines := bufio.NewScanner(con.Input)

	for {
		var state cpu.State
		state, err = con.Cpu.Run()
		if err != nil {
			return
		}

		text, _ := con.ReadText()
		if con.Output != nil && len(text) != 0 {
			_, err = io.WriteString(con.Output, text)
			if err != nil {
				return
			}
		}

		if state == cpu.STATE_HALTED {
			return
		}

		if !lines.Scan() {
			err = lines.Err()
			if err == nil {
				err = ErrInputExhausted
			}
			return
		}
		con.SendLine(lines.Text())
	}
}
