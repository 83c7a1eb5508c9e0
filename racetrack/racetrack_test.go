package racetrack_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bestfirst/grid"
	"github.com/katalvlaran/bestfirst/racetrack"
	"github.com/katalvlaran/bestfirst/search"
)

var sample = strings.Split(`###############
#...#...#.....#
#.#.#.#.#.###.#
#S#...#.#.#...#
#######.#.#.###
#######.#.#...#
#######.#.###.#
###..E#...#...#
###.#######.###
#...###...#...#
#.#####.#.###.#
#.#...#.#.#...#
#.#.#.#.#.#.###
#...#...#...###
###############`, "\n")

func TestRun_Sample(t *testing.T) {
	track, err := racetrack.Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, grid.Pt(1, 3), track.Start)
	assert.Equal(t, grid.Pt(5, 7), track.End)

	lap, err := track.Run()
	require.NoError(t, err)
	assert.Equal(t, 84, lap.Length())
	assert.Len(t, lap.Time, 85)
	assert.Equal(t, track.Start, lap.Path[0])
	assert.Equal(t, track.End, lap.Path[len(lap.Path)-1])
	for i, p := range lap.Path {
		assert.Equal(t, i, lap.Time[p], "time at %v", p)
	}
}

func TestSavings_ShortCheats(t *testing.T) {
	r, err := racetrack.Savings(sample, 2)
	require.NoError(t, err)
	assert.Equal(t, 84, r.Length)
	assert.Equal(t, map[int]int{
		2: 14, 4: 14, 6: 2, 8: 4, 10: 2, 12: 3,
		20: 1, 36: 1, 38: 1, 40: 1, 64: 1,
	}, r.Saved)
	assert.Equal(t, 44, r.AtLeast(1))
	assert.Equal(t, 5, r.AtLeast(20))
}

func TestSavings_LongCheats(t *testing.T) {
	r, err := racetrack.Savings(sample, 20)
	require.NoError(t, err)
	assert.Equal(t, 32, r.Saved[50])
	assert.Equal(t, 3, r.Saved[76])
	assert.Equal(t, 285, r.AtLeast(50))
}

func TestCountCheats(t *testing.T) {
	cases := []struct {
		radius, minSave, want int
	}{
		{2, 20, 5},
		{2, 1, 44},
		{2, 65, 0},
		{20, 50, 285},
		{20, 76, 3},
		{0, 1, 0},
	}
	for _, tc := range cases {
		got, err := racetrack.CountCheats(sample, tc.radius, tc.minSave)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "radius %d, min %d", tc.radius, tc.minSave)
	}
}

func TestCheats_Ordered(t *testing.T) {
	track, err := racetrack.Parse(sample)
	require.NoError(t, err)
	lap, err := track.Run()
	require.NoError(t, err)

	cheats := lap.Cheats(2)
	require.Len(t, cheats, 44)
	for i := 1; i < len(cheats); i++ {
		assert.LessOrEqual(t, cheats[i-1].Saved, cheats[i].Saved)
	}
	best := cheats[len(cheats)-1]
	assert.Equal(t, 64, best.Saved)
	assert.Equal(t, 2, best.From.Manhattan(best.To))
}

// TestRun_OpenBorder has no outer wall: the lap runs along the grid edge.
func TestRun_OpenBorder(t *testing.T) {
	track, err := racetrack.Parse([]string{
		"S....",
		"####.",
		"E....",
	})
	require.NoError(t, err)
	lap, err := track.Run()
	require.NoError(t, err)
	assert.Equal(t, 10, lap.Length())

	r, err := racetrack.Savings([]string{"S....", "####.", "E...."}, 2)
	require.NoError(t, err)
	// straight cuts through the wall row at x = 0..3
	assert.Equal(t, map[int]int{2: 1, 4: 1, 6: 1, 8: 1}, r.Saved)
}

func TestErrors(t *testing.T) {
	_, err := racetrack.Savings([]string{"####", "#.E#", "####"}, 2)
	assert.ErrorIs(t, err, racetrack.ErrNoStart)

	_, err = racetrack.Savings([]string{"####", "#S.#", "####"}, 2)
	assert.ErrorIs(t, err, racetrack.ErrNoEnd)

	_, err = racetrack.Savings([]string{"#####", "#S#E#", "#####"}, 2)
	assert.ErrorIs(t, err, search.ErrNoPath)

	_, err = racetrack.Savings(nil, 2)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = racetrack.Savings(sample, -1)
	assert.ErrorIs(t, err, racetrack.ErrBadRadius)
}
