package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/mines"
)

var ErrInputClosed = errors.New("input closed before the game ended")

const (
	promptMineCount = "How many mines do you want on the field?"
	promptMove      = "Set/unset mines marks or claim a cell as free:"
	msgNotAllowed   = "There is a number here!"
	msgLoss         = "You stepped on a mine and failed!"
	msgWin          = "Congratulations! You found all the mines!"
)

// Session plays one game on the console: it asks for a mine count, then reads
// moves until the field is won or lost.
type Session struct {
	out     io.Writer
	picker  mines.Picker
	invoker Invoker
}

func NewSession(out io.Writer, picker mines.Picker) *Session {
	return &Session{out: out, picker: picker}
}

type lineReader struct {
	ctx   context.Context
	lines <-chan string
	errc  <-chan error
}

// readLines scans in on its own goroutine. The goroutine stays blocked in Read
// until in yields data or fails, even after ctx is done.
func readLines(ctx context.Context, in io.Reader) *lineReader {
	var (
		lines = make(chan string)
		errc  = make(chan error, 1)
	)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()
	return &lineReader{ctx: ctx, lines: lines, errc: errc}
}

func (r *lineReader) next() (string, error) {
	select {
	case <-r.ctx.Done():
		return "", r.ctx.Err()
	case line, ok := <-r.lines:
		if ok {
			return line, nil
		}
	}
	if err := r.ctx.Err(); err != nil {
		return "", err
	}
	select {
	case err := <-r.errc:
		if err != nil {
			return "", fmt.Errorf("unable to read input: %w", err)
		}
	default:
	}
	return "", ErrInputClosed
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

// Run returns the final status of the game. It fails if the input ends or
// ctx is done before the game is over, or if the engine breaks an invariant.
func (s *Session) Run(ctx context.Context, in io.Reader) (mines.Status, error) {
	r := readLines(ctx, in)

	field, err := s.newField(r)
	if err != nil {
		return mines.Pending, err
	}
	s.println(field)

	status := mines.Pending
	for status == mines.Pending {
		if err := s.makeMove(r, field); err != nil {
			return status, err
		}
		s.println(field)
		status = field.Status()
	}

	Log.WithFields(logrus.Fields{
		"status": status.String(),
		"mines":  field.Mines(),
	}).Info("game over")

	if status == mines.Loss {
		s.println(msgLoss)
	} else {
		s.println(msgWin)
	}
	return status, nil
}

func (s *Session) newField(r *lineReader) (*mines.Field, error) {
	for {
		s.println(promptMineCount)
		line, err := r.next()
		if err != nil {
			return nil, err
		}
		mineCount, err := ParseMineCount(line)
		if err != nil {
			s.println(err)
			continue
		}
		field, err := mines.NewField(mineCount, s.picker)
		if err != nil {
			return nil, err
		}
		Log.WithField("mineCount", field.MineCount()).Info("new game")
		return field, nil
	}
}

func (s *Session) makeMove(r *lineReader, field Field) error {
	for {
		s.println(promptMove)
		line, err := r.next()
		if err != nil {
			return err
		}

		move, err := ParseMove(line)
		if err != nil {
			Log.WithFields(logrus.Fields{
				"line":  line,
				"error": err,
			}).Debug("rejected move")
			s.println(err)
			continue
		}

		s.invoker.SetCommand(move.Command(field))
		if err := s.invoker.Execute(); err != nil {
			return err
		}
		if s.invoker.Success() {
			return nil
		}
		s.println(msgNotAllowed)
	}
}
