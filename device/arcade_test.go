package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArcadeDraw(t *testing.T) {
	assert := assert.New(t)

	// One block, a paddle, a ball, and a score update.
	arcade := NewArcade([]int64{
		104, 1, 104, 1, 104, 2, // block at (1, 1)
		104, 3, 104, 0, 104, 3, // paddle at (3, 0)
		104, 5, 104, 0, 104, 4, // ball at (5, 0)
		104, -1, 104, 0, 104, 10000, // score
		99,
	})

	err := arcade.Run()
	assert.NoError(err)

	assert.Equal(1, arcade.Blocks())
	assert.Equal(int64(10000), arcade.Score)

	ball, ok := arcade.Ball()
	assert.True(ok)
	assert.Equal(Pos{X: 5, Y: 0}, ball)

	paddle, ok := arcade.Paddle()
	assert.True(ok)
	assert.Equal(Pos{X: 3, Y: 0}, paddle)

	assert.Equal("Score: 10000\n  _ o\nx    \n", arcade.Render())
}

func TestArcadeAutoplay(t *testing.T) {
	assert := assert.New(t)

	// Draws the paddle left of the ball, then reports the second joystick
	// reading as the score. Autoplay must push the paddle toward the ball,
	// so the final score is +1.
	arcade := NewArcade([]int64{
		104, 3, 104, 0, 104, 3, // paddle at (3, 0)
		104, 5, 104, 0, 104, 4, // ball at (5, 0)
		3, 23, // in @23 (initial joystick)
		3, 24, // in @24 (steered joystick)
		104, -1, 104, 0, 4, 24, // score = second joystick
		99,
		0, 0,
	})

	score, err := arcade.Autoplay()
	assert.NoError(err)
	assert.Equal(int64(1), score)
	assert.Equal(int64(1), arcade.Score)
	assert.True(arcade.Cpu.Halted())
}

func TestArcadePlayForFree(t *testing.T) {
	assert := assert.New(t)

	arcade := NewArcade([]int64{1, 0, 0, 0, 99})
	assert.NoError(arcade.PlayForFree())

	value, err := arcade.Cpu.Peek(0)
	assert.NoError(err)
	assert.Equal(int64(2), value)
}

func TestArcadeInvalidTile(t *testing.T) {
	assert := assert.New(t)

	arcade := NewArcade([]int64{104, 0, 104, 0, 104, 9, 99})
	err := arcade.Run()
	assert.ErrorIs(err, ErrTileInvalid(9))
}
