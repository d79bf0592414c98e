package device

import (
	"strings"

	"github.com/ezrec/icvm/cpu"
)

// Cell is a maze cell as learned from the droid program's status replies.
type Cell int64

const (
	CELL_WALL   = Cell(0)
	CELL_OPEN   = Cell(1)
	CELL_TARGET = Cell(2)
)

// droidMoves pairs each movement command with its reverse and the grid
// step it takes. Y grows upward, as for the robot.
var droidMoves = []struct {
	cmd  int64
	back int64
	step Pos
}{
	{1, 2, Pos{Y: 1}},
	{2, 1, Pos{Y: -1}},
	{3, 4, Pos{X: -1}},
	{4, 3, Pos{X: 1}},
}

// Droid is a remotely driven maze explorer. Its program takes movement
// commands (1 north, 2 south, 3 west, 4 east) and replies with a status:
// 0 the move hit a wall, 1 the move succeeded, 2 the move succeeded and
// landed on the target cell.
type Droid struct {
	Cpu   *cpu.Cpu
	Cells map[Pos]Cell
}

// NewDroid creates a droid around its own machine seeded from the program
// image, parked at the origin of an unknown maze.
func NewDroid(image []int64) (droid *Droid) {
	droid = &Droid{
		Cpu:   cpu.NewCpu(image),
		Cells: map[Pos]Cell{},
	}

	return
}

// Explore walks the entire reachable maze, probing depth-first and
// backtracking over its own steps, and records every cell it learns.
func (droid *Droid) Explore() (err error) {
	droid.Cells[Pos{}] = CELL_OPEN

	return droid.explore(Pos{})
}

func (droid *Droid) explore(pos Pos) (err error) {
	for _, move := range droidMoves {
		next := Pos{X: pos.X + move.step.X, Y: pos.Y + move.step.Y}
		if _, seen := droid.Cells[next]; seen {
			continue
		}

		var status int64
		status, err = droid.probe(move.cmd)
		if err != nil {
			return
		}
		if status < int64(CELL_WALL) || status > int64(CELL_TARGET) {
			err = ErrCellInvalid(status)
			return
		}

		droid.Cells[next] = Cell(status)
		if Cell(status) == CELL_WALL {
			// A wall reply means the droid did not move.
			continue
		}

		err = droid.explore(next)
		if err != nil {
			return
		}

		// Step back to try the remaining directions from here.
		status, err = droid.probe(move.back)
		if err != nil {
			return
		}
		if Cell(status) == CELL_WALL {
			err = ErrDroidLost
			return
		}
	}

	return
}

// probe issues one movement command and returns the status reply.
func (droid *Droid) probe(cmd int64) (status int64, err error) {
	droid.Cpu.SendInput(cmd)

	_, err = droid.Cpu.Run()
	if err != nil {
		return
	}

	var ok bool
	status, ok = droid.Cpu.ConsumeOutput()
	if !ok {
		err = ErrOutputMissing
	}

	return
}

// Target returns the discovered target cell.
func (droid *Droid) Target() (pos Pos, ok bool) {
	for at, cell := range droid.Cells {
		if cell == CELL_TARGET {
			return at, true
		}
	}

	return
}

// StepsToTarget returns the length of the shortest path from the origin
// to the target cell.
func (droid *Droid) StepsToTarget() (steps int, err error) {
	target, ok := droid.Target()
	if !ok {
		err = ErrTargetMissing
		return
	}
	steps = droid.distances(Pos{})[target]

	return
}

// FillTime returns the number of steps for something spreading outward
// from the target cell to reach the farthest open cell.
func (droid *Droid) FillTime() (turns int, err error) {
	target, ok := droid.Target()
	if !ok {
		err = ErrTargetMissing
		return
	}
	for _, dist := range droid.distances(target) {
		turns = max(turns, dist)
	}

	return
}

// distances is a breadth-first walk over the discovered open cells.
// Undiscovered cells count as walls.
func (droid *Droid) distances(from Pos) (dist map[Pos]int) {
	dist = map[Pos]int{from: 0}
	queue := []Pos{from}
	for len(queue) != 0 {
		pos := queue[0]
		queue = queue[1:]
		for _, move := range droidMoves {
			next := Pos{X: pos.X + move.step.X, Y: pos.Y + move.step.Y}
			if droid.Cells[next] == CELL_WALL {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[pos] + 1
			queue = append(queue, next)
		}
	}

	return
}

// Render draws the discovered maze: 'S' at the origin, 'T' at the target,
// undiscovered cells as walls.
func (droid *Droid) Render() (text string) {
	lo, hi, ok := extents(droid.Cells)
	if !ok {
		return
	}

	var sb strings.Builder
	for y := hi.Y; y >= lo.Y; y-- {
		for x := lo.X; x <= hi.X; x++ {
			pos := Pos{X: x, Y: y}
			switch {
			case pos == (Pos{}):
				sb.WriteByte('S')
			case droid.Cells[pos] == CELL_TARGET:
				sb.WriteByte('T')
			case droid.Cells[pos] == CELL_OPEN:
				sb.WriteByte(' ')
			default:
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
