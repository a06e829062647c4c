package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/mines"
)

func TestParseMove(t *testing.T) {
	testCases := []struct {
		line     string
		row, col int
		action   Action
		err      error
	}{
		{line: "1 1 free", row: 0, col: 0, action: ActionExplore},
		{line: "9 3 mine", row: 8, col: 2, action: ActionMark},
		{line: "  4   5  FREE ", row: 3, col: 4, action: ActionExplore},
		{line: "4 5 Mine", row: 3, col: 4, action: ActionMark},
		{line: "", err: ErrBadMove},
		{line: "4 5", err: ErrBadMove},
		{line: "4 5 free now", err: ErrBadMove},
		{line: "a 5 free", err: ErrBadMove},
		{line: "4 b mine", err: ErrBadMove},
		{line: "4 5 open", err: ErrBadAction},
		{line: "0 5 free", err: mines.ErrInvalidCoord},
		{line: "4 10 mine", err: mines.ErrInvalidCoord},
		{line: "-1 1 free", err: mines.ErrInvalidCoord},
	}
	for _, test := range testCases {
		t.Run(test.line, func(t *testing.T) {
			move, err := ParseMove(test.line)
			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.row, move.Coord.Row())
			assert.Equal(t, test.col, move.Coord.Col())
			assert.Equal(t, test.action, move.Action)
		})
	}
}

func TestParseMineCount(t *testing.T) {
	testCases := []struct {
		line string
		want int
		err  error
	}{
		{line: "10", want: 10},
		{line: " 0 ", want: 0},
		{line: "200", want: 200},
		{line: "", err: ErrBadMineCount},
		{line: "ten", err: ErrBadMineCount},
		{line: "1 2", err: ErrBadMineCount},
		{line: "-3", err: mines.ErrInvalidMineCount},
	}
	for _, test := range testCases {
		t.Run(test.line, func(t *testing.T) {
			n, err := ParseMineCount(test.line)
			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, n)
		})
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "free", ActionExplore.String())
	assert.Equal(t, "mine", ActionMark.String())
	assert.ErrorContains(t, ErrBadAction, "'free', 'mine'")
}
