package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRobotRun(t *testing.T) {
	assert := assert.New(t)

	// Ignores the camera, paints white and turns left three times, halts.
	image := []int64{
		3, 18, // in @18
		104, 1, // out #1 (white)
		104, 0, // out #0 (left)
		1001, 19, 1, 19, // add @19 #1 @19
		1008, 19, 3, 20, // eq @19 #3 @20
		1006, 20, 0, // jz @20 #0
		99,
		0, 0, 0,
	}

	robot := NewRobot(image)
	err := robot.Run()
	assert.NoError(err)

	assert.Equal(3, robot.Painted())
	assert.Equal(Pos{X: 0, Y: -1}, robot.Pos)
	assert.Equal(FACING_RIGHT, robot.Facing)
	assert.Equal("##\n# \n", robot.Render())
}

func TestRobotInvalidColor(t *testing.T) {
	assert := assert.New(t)

	robot := NewRobot([]int64{104, 5, 104, 0, 99})
	err := robot.Run()
	assert.ErrorIs(err, ErrColorInvalid(5))
}

func TestFacing(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(FACING_LEFT, FACING_UP.turn(0))
	assert.Equal(FACING_RIGHT, FACING_UP.turn(1))
	assert.Equal(FACING_UP, FACING_LEFT.turn(1))
	assert.Equal(FACING_UP, FACING_RIGHT.turn(0))

	assert.Equal(Pos{X: 0, Y: 1}, FACING_UP.step(Pos{}))
	assert.Equal(Pos{X: 0, Y: -1}, FACING_DOWN.step(Pos{}))
	assert.Equal(Pos{X: -1, Y: 0}, FACING_LEFT.step(Pos{}))
	assert.Equal(Pos{X: 1, Y: 0}, FACING_RIGHT.step(Pos{}))
}

func TestRobotRenderEmpty(t *testing.T) {
	assert := assert.New(t)

	robot := NewRobot([]int64{99})
	assert.Empty(robot.Render())
}
