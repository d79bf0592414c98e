package device

import (
	"strings"

	"github.com/ezrec/icvm/cpu"
)

// Springbot drives a jumping robot over the ASCII console protocol: the
// program prompts for a springscript listing, runs the survey, and reports
// either a rendering of the failed jump or a damage total beyond the ASCII
// range.
type Springbot struct {
	Console *Console

	Rendering string // Program text from the last survey.
}

// NewSpringbot creates a springbot around its own machine seeded from the
// program image.
func NewSpringbot(image []int64) (bot *Springbot) {
	bot = &Springbot{
		Console: NewConsole(image),
	}

	return
}

// Survey feeds the program a springscript listing, ending in its WALK or
// RUN command, and returns the reported hull damage. A script whose bot
// falls into a hole yields ErrSpringbotFell; Rendering holds the program's
// account of the attempt either way.
func (bot *Springbot) Survey(script string) (damage int64, err error) {
	machine := bot.Console.Cpu

	state, err := machine.Run()
	if err != nil {
		return
	}
	if state != cpu.STATE_WAIT_IO {
		err = ErrNotWaiting
		return
	}
	bot.Console.ReadText() // discard the prompt

	if !strings.HasSuffix(script, "\n") {
		script += "\n"
	}
	machine.SendString(script)

	_, err = machine.Run()
	if err != nil {
		return
	}

	text, extra := bot.Console.ReadText()
	bot.Rendering = text
	if len(extra) == 0 {
		err = ErrSpringbotFell
		return
	}
	damage = extra[len(extra)-1]

	return
}
