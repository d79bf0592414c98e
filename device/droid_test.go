package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mazeImage simulates a three-cell east-west corridor: the droid starts at
// x=0, the target is at x=2, and everything else is wall. Only the droid's
// x position matters; moves stopped by a wall leave it in place.
func mazeImage(t *testing.T) []int64 {
	return assemble(t, `
loop:	in @cmd
	eq @cmd #1 @t
	jnz @t wall
	eq @cmd #2 @t
	jnz @t wall
	eq @cmd #4 @t
	add @t @t @dx
	add @dx #-1 @dx
	add @x @dx @nx
	lt @nx #0 @t
	jnz @t wall
	lt #2 @nx @t
	jnz @t wall
	add @nx #0 @x
	eq @x #2 @t
	jnz @t found
	out #1
	jnz #1 loop
found:	out #2
	jnz #1 loop
wall:	out #0
	jnz #1 loop
cmd:	.data 0
t:	.data 0
dx:	.data 0
nx:	.data 0
x:	.data 0
`)
}

func TestDroidExplore(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	droid := NewDroid(mazeImage(t))
	require.NoError(droid.Explore())

	target, ok := droid.Target()
	assert.True(ok)
	assert.Equal(Pos{X: 2, Y: 0}, target)
	assert.Equal(CELL_OPEN, droid.Cells[Pos{X: 1, Y: 0}])
	assert.Equal(CELL_WALL, droid.Cells[Pos{X: 3, Y: 0}])
	assert.Equal(CELL_WALL, droid.Cells[Pos{X: 0, Y: 1}])

	steps, err := droid.StepsToTarget()
	assert.NoError(err)
	assert.Equal(2, steps)

	turns, err := droid.FillTime()
	assert.NoError(err)
	assert.Equal(2, turns)

	assert.Equal("#####\n#S T#\n#####\n", droid.Render())
}

func TestDroidTargetMissing(t *testing.T) {
	assert := assert.New(t)

	droid := NewDroid([]int64{99})

	_, err := droid.StepsToTarget()
	assert.ErrorIs(err, ErrTargetMissing)

	_, err = droid.FillTime()
	assert.ErrorIs(err, ErrTargetMissing)
}

func TestDroidInvalidStatus(t *testing.T) {
	assert := assert.New(t)

	// Replies 9 to the first move.
	droid := NewDroid([]int64{3, 6, 104, 9, 99, 0, 0})
	err := droid.Explore()
	assert.ErrorIs(err, ErrCellInvalid(9))
}

func TestDroidLost(t *testing.T) {
	assert := assert.New(t)

	// Reports the first move as a success and every later one as a wall,
	// so the retrace step cannot succeed.
	droid := NewDroid([]int64{3, 12, 104, 1, 3, 12, 104, 0, 1105, 1, 4, 99, 0})
	err := droid.Explore()
	assert.ErrorIs(err, ErrDroidLost)
}
