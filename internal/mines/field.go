package mines

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Status uint8

const (
	Pending Status = iota
	Win
	Loss
)

// Status implements [fmt.Stringer]
func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Field is a 9x9 minesweeper board. Mines are placed on the first call to
// Explore or ToggleMark, never on the cell that call targets.
//
// A Field is owned by a single goroutine. It does not lock itself once the
// game is won or lost; callers stop issuing moves when Status says so.
type Field struct {
	cells     [CellCount]Cell
	mineCount int
	mines     []int /* sorted cell indices, nil while pristine */
	pristine  bool
	picker    Picker
}

// NewField returns an empty field that will hold mineCount mines. Counts above
// [MaxMines] are clamped.
func NewField(mineCount int, picker Picker) (*Field, error) {
	if mineCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMineCount, mineCount)
	}
	if picker == nil {
		return nil, fmt.Errorf("mine picker must not be nil")
	}
	if mineCount > MaxMines {
		Log.WithFields(logrus.Fields{
			"requested": mineCount,
			"max":       MaxMines,
		}).Warn("too many mines requested, clamping")
		mineCount = MaxMines
	}
	f := &Field{
		mineCount: mineCount,
		pristine:  true,
		picker:    picker,
	}
	for i := range f.cells {
		f.cells[i] = newCell(coordAt(i))
	}
	return f, nil
}

func (f *Field) MineCount() int { return f.mineCount }

func (f *Field) Pristine() bool { return f.pristine }

// Mines returns the sorted indices of the mined cells.
func (f *Field) Mines() []int {
	return slices.Clone(f.mines)
}

// Cell returns a snapshot of the cell at c.
func (f *Field) Cell(c Coord) Cell {
	return *f.cell(c)
}

func (f *Field) cell(c Coord) *Cell {
	return &f.cells[c.Index()]
}

// panics [AssertionError]
func (f *Field) placeMines(safe Coord) {
	if !f.pristine {
		panic(AssertionError{message: "cannot place mines on a field that is no longer pristine"})
	}

	candidates := make([]int, 0, CellCount-1)
	for i := range CellCount {
		if i != safe.Index() {
			candidates = append(candidates, i)
		}
	}

	picked := f.picker.Pick(candidates, f.mineCount)
	if len(picked) != f.mineCount {
		panic(AssertionError{message: fmt.Sprintf(
			"picker returned %d mines, want %d", len(picked), f.mineCount,
		)})
	}
	seen := make([]bool, CellCount)
	for _, i := range picked {
		if i < 0 || i >= CellCount || i == safe.Index() || seen[i] {
			panic(AssertionError{message: fmt.Sprintf("picker returned bad mine index %d", i)})
		}
		seen[i] = true
	}

	/*
	 * Each mine bumps its neighbours before it becomes a mine itself, so a
	 * mine placed earlier is skipped and a mine placed later has its stale
	 * count overwritten.
	 */
	for _, i := range picked {
		for _, n := range coordAt(i).Neighbors() {
			f.increment(n)
		}
		must(f.cells[i].SetValue(Mine), "unable to place mine")
	}

	f.mines = slices.Sorted(slices.Values(picked))
	f.pristine = false

	Log.WithFields(logrus.Fields{
		"safe":  safe.String(),
		"mines": f.mines,
	}).Debug("placed mines")
}

// panics [AssertionError]
func (f *Field) increment(c Coord) {
	cell := f.cell(c)
	if cell.IsMine() {
		return
	}
	next, err := cell.Value().Next()
	must(err, "unable to increment mine count")
	must(cell.SetValue(next), "unable to increment mine count")
}

func (f *Field) touch(c Coord) {
	if f.pristine {
		f.placeMines(c)
	}
}

// Explore opens the cell at c and every safe region connected to it. It
// returns false only if the cell was already explored.
//
// panics [AssertionError]
func (f *Field) Explore(c Coord) bool {
	f.touch(c)
	ok := f.reveal(c)
	Log.WithFields(logrus.Fields{
		"coord":   c.String(),
		"success": ok,
	}).Debug("explore")
	return ok
}

/*
reveal walks the board from origin with an explicit stack. The origin is
always explored, mine or not. Every other visited cell is explored only if it
is not a mine and not yet explored; a marked safe cell loses its mark and is
explored too. A cell that got explored here pushes its neighbours when none
of them is a mine.

The explored flag doubles as the visited guard: only the origin can be
explored twice, and every other cell expands at most once.
*/
func (f *Field) reveal(origin Coord) bool {
	var (
		result bool
		stack  = []Coord{origin}
		first  = true
	)
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var (
			cell      = f.cell(c)
			neighbors = c.Neighbors()
		)
		switch {
		case first:
			result = cell.Explore()
			first = false
		case !cell.IsMine() && !cell.IsExplored() && !cell.IsMarked():
			cell.Explore()
		case !cell.IsMine() && cell.IsMarked():
			cell.Mark()
			cell.Explore()
		default:
			continue
		}

		if f.allSafe(neighbors) {
			stack = append(stack, neighbors...)
		}
	}
	return result
}

func (f *Field) allSafe(coords []Coord) bool {
	for _, c := range coords {
		if f.cell(c).IsMine() {
			return false
		}
	}
	return true
}

// ToggleMark sets or clears the mark on the cell at c. It returns false if
// the cell shows a number.
//
// panics [AssertionError]
func (f *Field) ToggleMark(c Coord) bool {
	f.touch(c)
	ok := f.cell(c).Mark()
	Log.WithFields(logrus.Fields{
		"coord":   c.String(),
		"success": ok,
		"marked":  f.cell(c).IsMarked(),
	}).Debug("toggle mark")
	return ok
}

// Status is Win when exactly the mined cells are marked, Loss when a mine has
// been explored, and Pending otherwise.
func (f *Field) Status() Status {
	marked := 0
	for i := range f.cells {
		if f.cells[i].IsMarked() {
			marked++
		}
	}
	allMinesMarked := true
	for _, i := range f.mines {
		if !f.cells[i].IsMarked() {
			allMinesMarked = false
			break
		}
	}
	if marked == f.mineCount && allMinesMarked {
		return Win
	}

	for i := range f.cells {
		if f.cells[i].FaceValue() == Exploded {
			return Loss
		}
	}

	return Pending
}

// Field implements [fmt.Stringer]
func (f *Field) String() string {
	var (
		b    strings.Builder
		rule = "-|" + strings.Repeat("-", Side) + "|\n"
	)
	fmt.Fprint(&b, " |")
	for col := range Side {
		fmt.Fprint(&b, col+1)
	}
	fmt.Fprint(&b, "|\n", rule)
	for row := range Side {
		fmt.Fprintf(&b, "%d|", row+1)
		for col := range Side {
			fmt.Fprint(&b, f.cells[row*Side+col].FaceValue().String())
		}
		fmt.Fprint(&b, "|\n")
	}
	fmt.Fprint(&b, strings.TrimSuffix(rule, "\n"))
	return b.String()
}
