package device

import (
	"fmt"
	"strings"

	"github.com/ezrec/icvm/cpu"
)

// Tile is an arcade screen tile kind.
type Tile int

const (
	TILE_EMPTY  = Tile(0)
	TILE_WALL   = Tile(1)
	TILE_BLOCK  = Tile(2)
	TILE_PADDLE = Tile(3)
	TILE_BALL   = Tile(4)
)

var tileGlyph = map[Tile]byte{
	TILE_EMPTY:  ' ',
	TILE_WALL:   '|',
	TILE_BLOCK:  'x',
	TILE_PADDLE: '_',
	TILE_BALL:   'o',
}

// Arcade is a cabinet whose program draws its screen as (x, y, id) output
// triples; the triple at x=-1, y=0 carries the score instead. Input is a
// joystick position: -1, 0, or 1.
type Arcade struct {
	Cpu   *cpu.Cpu
	Tiles map[Pos]Tile
	Score int64
}

// NewArcade creates a cabinet around its own machine seeded from the
// program image.
func NewArcade(image []int64) (arcade *Arcade) {
	arcade = &Arcade{
		Cpu:   cpu.NewCpu(image),
		Tiles: map[Pos]Tile{},
	}

	return
}

// PlayForFree switches the cabinet into free play by patching its
// configuration cell before the first run. A cabinet convention, not an
// engine feature.
func (arcade *Arcade) PlayForFree() (err error) {
	return arcade.Cpu.Poke(0, 2)
}

// Run lets the program draw until it blocks or halts, then applies the
// screen updates.
func (arcade *Arcade) Run() (err error) {
	_, err = arcade.Cpu.Run()
	if err != nil {
		return
	}

	return arcade.checkOutput()
}

// StepGame gives the game one joystick input, lets it run for a bit, and
// applies whatever it drew.
func (arcade *Arcade) StepGame(joystick int64) (err error) {
	arcade.Cpu.SendInput(joystick)

	return arcade.Run()
}

// checkOutput applies buffered (x, y, id) triples to the screen state.
func (arcade *Arcade) checkOutput() (err error) {
	for {
		triple, ok := arcade.Cpu.ConsumeOutputN(3)
		if !ok {
			return
		}

		x, y, id := triple[0], triple[1], triple[2]
		if x == -1 && y == 0 {
			arcade.Score = id
			continue
		}
		if id < int64(TILE_EMPTY) || id > int64(TILE_BALL) {
			err = ErrTileInvalid(id)
			return
		}
		arcade.Tiles[Pos{X: x, Y: y}] = Tile(id)
	}
}

// find returns the position of the first tile of the given kind.
func (arcade *Arcade) find(kind Tile) (pos Pos, ok bool) {
	for at, tile := range arcade.Tiles {
		if tile == kind {
			return at, true
		}
	}

	return
}

// Ball returns the ball position.
func (arcade *Arcade) Ball() (pos Pos, ok bool) {
	return arcade.find(TILE_BALL)
}

// Paddle returns the paddle position.
func (arcade *Arcade) Paddle() (pos Pos, ok bool) {
	return arcade.find(TILE_PADDLE)
}

// Blocks returns the number of block tiles on screen.
func (arcade *Arcade) Blocks() (count int) {
	for _, tile := range arcade.Tiles {
		if tile == TILE_BLOCK {
			count++
		}
	}

	return
}

// Autoplay plays the game to completion, keeping the paddle under the
// ball, and returns the final score.
func (arcade *Arcade) Autoplay() (score int64, err error) {
	joystick := int64(0)
	for {
		err = arcade.StepGame(joystick)
		if err != nil {
			return
		}

		if arcade.Cpu.Halted() {
			score = arcade.Score
			return
		}

		ball, ok := arcade.Ball()
		if !ok {
			err = ErrOutputMissing
			return
		}
		paddle, ok := arcade.Paddle()
		if !ok {
			err = ErrOutputMissing
			return
		}
		joystick = sign(ball.X - paddle.X)
	}
}

// Render draws the screen as text, score first.
func (arcade *Arcade) Render() (text string) {
	lo, hi, ok := extents(arcade.Tiles)
	if !ok {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Score: %v\n", arcade.Score)
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			sb.WriteByte(tileGlyph[arcade.Tiles[Pos{X: x, Y: y}]])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
