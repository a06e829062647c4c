package game

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/mines"
)

/* places a single mine in the top left corner */
var cornerMine = mines.PickerFunc(func(_ []int, k int) []int {
	return []int{0}[:k]
})

func runSession(t *testing.T, picker mines.Picker, input string) (mines.Status, string, error) {
	t.Helper()
	var out bytes.Buffer
	s := NewSession(&out, picker)
	status, err := s.Run(context.Background(), strings.NewReader(input))
	return status, out.String(), err
}

func TestSessionWinWithoutMines(t *testing.T) {
	status, out, err := runSession(t, cornerMine, "0\n5 5 free\n")
	require.NoError(t, err)
	assert.Equal(t, mines.Win, status)
	assert.Contains(t, out, promptMineCount)
	assert.Contains(t, out, "5|/////////|")
	assert.True(t, strings.HasSuffix(out, msgWin+"\n"))
}

func TestSessionWinByMarking(t *testing.T) {
	status, out, err := runSession(t, cornerMine, "1\n9 9 free\n1 1 mine\n")
	require.NoError(t, err)
	assert.Equal(t, mines.Win, status)
	assert.Contains(t, out, "1|*1///////|")
	assert.Contains(t, out, msgWin)
}

func TestSessionLoss(t *testing.T) {
	status, out, err := runSession(t, cornerMine, "1\n9 9 free\n1 1 free\n")
	require.NoError(t, err)
	assert.Equal(t, mines.Loss, status)
	assert.Contains(t, out, "1|X1///////|")
	assert.True(t, strings.HasSuffix(out, msgLoss+"\n"))
}

func TestSessionRepromptsOnBadInput(t *testing.T) {
	input := strings.Join([]string{
		"lots", // bad mine count
		"1",
		"9 9",     // missing action
		"9 9 dig", // unknown action
		"10 1 free",
		"9 9 free",
		"1 2 mine", // numbered cell
		"1 2 free", // already explored
		"1 1 mine",
	}, "\n")

	status, out, err := runSession(t, cornerMine, input)
	require.NoError(t, err)
	assert.Equal(t, mines.Win, status)
	assert.Equal(t, 2, strings.Count(out, promptMineCount))
	assert.Equal(t, 7, strings.Count(out, promptMove))
	assert.Equal(t, 2, strings.Count(out, msgNotAllowed))
	assert.Contains(t, out, ErrBadAction.Error())
	assert.Contains(t, out, mines.ErrInvalidCoord.Error())
}

func TestSessionInputClosed(t *testing.T) {
	_, _, err := runSession(t, cornerMine, "")
	assert.ErrorIs(t, err, ErrInputClosed)

	status, _, err := runSession(t, cornerMine, "1\n9 9 free\n")
	assert.ErrorIs(t, err, ErrInputClosed)
	assert.Equal(t, mines.Pending, status)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestSessionReadError(t *testing.T) {
	s := NewSession(io.Discard, cornerMine)
	_, err := s.Run(context.Background(), failingReader{})
	assert.ErrorContains(t, err, "broken pipe")
	assert.NotErrorIs(t, err, ErrInputClosed)
}

func TestSessionCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	in, w := io.Pipe()
	defer w.Close()

	done := make(chan error, 1)
	go func() {
		s := NewSession(io.Discard, cornerMine)
		_, err := s.Run(ctx, in)
		done <- err
	}()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("session did not stop after cancel")
	}
}

func TestSessionEngineFailure(t *testing.T) {
	broken := mines.PickerFunc(func(candidates []int, k int) []int {
		return make([]int, k) /* k copies of cell 0 */
	})
	status, _, err := runSession(t, broken, "3\n5 5 free\n")
	var ae mines.AssertionError
	assert.True(t, errors.As(err, &ae))
	assert.Equal(t, mines.Pending, status)
}

func TestSessionSeededGame(t *testing.T) {
	picker := mines.NewRandPicker(rand.New(rand.NewPCG(1, 2)))
	_, out, err := runSession(t, picker, "80\n5 5 free\n")
	assert.ErrorIs(t, err, ErrInputClosed)
	assert.Contains(t, out, "5|....8....|")
}
