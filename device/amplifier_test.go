package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChainRun(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		image   []int64
		phases  []int64
		signal  int64
	}){
		{
			"straight_a",
			[]int64{3, 15, 3, 16, 1002, 16, 10, 16, 1, 16, 15, 15, 4, 15, 99, 0, 0},
			[]int64{4, 3, 2, 1, 0},
			43210,
		},
		{
			"straight_b",
			[]int64{3, 23, 3, 24, 1002, 24, 10, 24, 1002, 23, -1, 23, 101, 5, 23, 23, 1, 24, 23, 23, 4, 23, 99, 0, 0},
			[]int64{0, 1, 2, 3, 4},
			54321,
		},
		{
			"straight_c",
			[]int64{3, 31, 3, 32, 1002, 32, 10, 32, 1001, 31, -2, 31, 1007, 31, 0, 33, 1002, 33, 7, 33, 1, 33, 31, 31, 1, 32, 31, 31, 4, 31, 99, 0, 0, 0},
			[]int64{1, 0, 4, 3, 2},
			65210,
		},
		{
			"feedback_a",
			[]int64{3, 26, 1001, 26, -4, 26, 3, 27, 1002, 27, 2, 27, 1, 27, 26, 27, 4, 27, 1001, 28, -1, 28, 1005, 28, 6, 99, 0, 0, 5},
			[]int64{9, 8, 7, 6, 5},
			139629729,
		},
		{
			"feedback_b",
			[]int64{3, 52, 1001, 52, -5, 52, 3, 53, 1, 52, 56, 54, 1007, 54, 5, 55, 1005, 55, 26, 1001, 54, -5, 54, 1105, 1, 12, 1, 53, 54, 53, 1008, 54, 0, 55, 1001, 55, 1, 55, 2, 53, 55, 53, 4, 53, 1001, 56, -1, 56, 1005, 56, 6, 99, 0, 0, 0, 0, 10},
			[]int64{9, 7, 8, 5, 6},
			18216,
		},
	}

	for _, entry := range table {
		chain := NewChain(entry.image, entry.phases...)
		signal, err := chain.Run()
		assert.NoError(err, entry.name)
		assert.Equal(entry.signal, signal, entry.name)
	}
}

func TestChainStaggeredHalt(t *testing.T) {
	assert := assert.New(t)

	// Phase 0 reads the seed plus one forwarded value before halting, so
	// the first amplifier outlives the second by a full pass: phase 1
	// emits a constant and halts immediately.
	image := []int64{
		3, 17, // in @17 (phase)
		1005, 17, 12, // jnz @17 #12
		3, 18, // in @18 (seed)
		3, 18, // in @18 (forwarded)
		4, 18, // out @18
		99,
		104, 7, // out #7
		99,
		0, 0, 0, 0,
	}

	chain := NewChain(image, 0, 1)
	signal, err := chain.Run()
	assert.NoError(err)
	assert.Equal(int64(7), signal)
	for _, amp := range chain.Amps {
		assert.True(amp.Halted())
	}
}

func TestBestPhases(t *testing.T) {
	assert := assert.New(t)

	best, err := BestPhases(
		[]int64{3, 15, 3, 16, 1002, 16, 10, 16, 1, 16, 15, 15, 4, 15, 99, 0, 0},
		[]int64{0, 1, 2, 3, 4})
	assert.NoError(err)
	assert.Equal(int64(43210), best)

	best, err = BestPhases(
		[]int64{3, 26, 1001, 26, -4, 26, 3, 27, 1002, 27, 2, 27, 1, 27, 26, 27, 4, 27, 1001, 28, -1, 28, 1005, 28, 6, 99, 0, 0, 5},
		[]int64{5, 6, 7, 8, 9})
	assert.NoError(err)
	assert.Equal(int64(139629729), best)
}

func TestPermute(t *testing.T) {
	assert := assert.New(t)

	values := []int64{1, 2, 3}
	seen := map[[3]int64]int{}
	err := permute(values, len(values), func() error {
		seen[[3]int64{values[0], values[1], values[2]}]++
		return nil
	})
	assert.NoError(err)

	// Every ordering exactly once.
	assert.Len(seen, 6)
	for _, count := range seen {
		assert.Equal(1, count)
	}
}
