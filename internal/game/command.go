package game

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/mines"
)

var Log = logrus.New()

var ErrNoCommand = errors.New("no command to execute")

// Field is the part of [mines.Field] that commands drive.
type Field interface {
	Explore(c mines.Coord) bool
	ToggleMark(c mines.Coord) bool
	Status() mines.Status
}

type Command interface {
	Execute()
	Success() bool
	String() string
}

type Explore struct {
	field   Field
	coord   mines.Coord
	success bool
}

func NewExplore(field Field, coord mines.Coord) *Explore {
	return &Explore{field: field, coord: coord}
}

func (e *Explore) Execute() {
	e.success = e.field.Explore(e.coord)
}

func (e *Explore) Success() bool { return e.success }

func (e *Explore) String() string { return "explore " + e.coord.String() }

type ToggleMark struct {
	field   Field
	coord   mines.Coord
	success bool
}

func NewToggleMark(field Field, coord mines.Coord) *ToggleMark {
	return &ToggleMark{field: field, coord: coord}
}

func (m *ToggleMark) Execute() {
	m.success = m.field.ToggleMark(m.coord)
}

func (m *ToggleMark) Success() bool { return m.success }

func (m *ToggleMark) String() string { return "toggle mark " + m.coord.String() }

// Invoker runs one command at a time and turns engine assertion panics into
// errors.
type Invoker struct {
	command Command
}

func (i *Invoker) SetCommand(c Command) {
	i.command = c
}

func (i *Invoker) Execute() (err error) {
	if i.command == nil {
		return ErrNoCommand
	}

	defer func() {
		if r := recover(); r != nil {
			var ae mines.AssertionError
			e, ok := r.(error)
			if !ok || !errors.As(e, &ae) {
				panic(r)
			}
			Log.WithFields(logrus.Fields{
				"command": i.command.String(),
				"error":   ae,
			}).Error("command aborted")
			err = ae
		}
	}()

	i.command.Execute()

	Log.WithFields(logrus.Fields{
		"command": i.command.String(),
		"success": i.command.Success(),
	}).Debug("executed command")

	return nil
}

// Success reports the result of the last executed command.
func (i *Invoker) Success() bool {
	return i.command != nil && i.command.Success()
}
