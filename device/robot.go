package device

import (
	"strings"

	"github.com/ezrec/icvm/cpu"
)

// Robot paint colors.
const (
	COLOR_BLACK = int64(0)
	COLOR_WHITE = int64(1)
)

// Facing is the robot's heading.
type Facing int

const (
	FACING_UP    = Facing(0)
	FACING_RIGHT = Facing(1)
	FACING_DOWN  = Facing(2)
	FACING_LEFT  = Facing(3)
)

// turn rotates the heading: 0 is left, anything else is right.
func (face Facing) turn(dir int64) Facing {
	if dir == 0 {
		return (face + 3) % 4
	}

	return (face + 1) % 4
}

// step advances one panel along the heading. Y grows upward.
func (face Facing) step(pos Pos) Pos {
	switch face {
	case FACING_UP:
		pos.Y++
	case FACING_DOWN:
		pos.Y--
	case FACING_LEFT:
		pos.X--
	case FACING_RIGHT:
		pos.X++
	}

	return pos
}

// Robot is a hull painting robot. Its program reads the color of the panel
// beneath it and answers with (paint color, turn direction) output pairs.
type Robot struct {
	Cpu    *cpu.Cpu
	Pos    Pos
	Facing Facing
	Panels map[Pos]int64
}

// NewRobot creates a robot around its own machine seeded from the program
// image, parked at the origin facing up over an unpainted hull.
func NewRobot(image []int64) (robot *Robot) {
	robot = &Robot{
		Cpu:    cpu.NewCpu(image),
		Panels: map[Pos]int64{},
	}

	return
}

// Run drives the robot until its program halts. Each cycle reports the
// current panel color, then applies every (color, turn) pair the program
// produced.
func (robot *Robot) Run() (err error) {
	for {
		robot.Cpu.SendInput(robot.Panels[robot.Pos])

		var state cpu.State
		state, err = robot.Cpu.Run()
		if err != nil {
			return
		}

		for {
			pair, ok := robot.Cpu.ConsumeOutputN(2)
			if !ok {
				break
			}
			err = robot.apply(pair[0], pair[1])
			if err != nil {
				return
			}
		}

		if state == cpu.STATE_HALTED {
			return
		}
	}
}

// apply paints the current panel, turns, and advances one step.
func (robot *Robot) apply(color int64, turn int64) (err error) {
	if color != COLOR_BLACK && color != COLOR_WHITE {
		err = ErrColorInvalid(color)
		return
	}

	robot.Panels[robot.Pos] = color
	robot.Facing = robot.Facing.turn(turn)
	robot.Pos = robot.Facing.step(robot.Pos)

	return
}

// Painted returns the number of panels painted at least once.
func (robot *Robot) Painted() int {
	return len(robot.Panels)
}

// Render returns the painted hull as text, one character per panel.
func (robot *Robot) Render() (text string) {
	lo, hi, ok := extents(robot.Panels)
	if !ok {
		return
	}

	var sb strings.Builder
	for y := hi.Y; y >= lo.Y; y-- {
		for x := lo.X; x <= hi.X; x++ {
			if robot.Panels[Pos{X: x, Y: y}] == COLOR_WHITE {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
