package mines

import "fmt"

type Cell struct {
	coord    Coord
	value    Value
	explored bool
	marked   bool
}

func newCell(coord Coord) Cell {
	return Cell{coord: coord, value: Safe}
}

func (c Cell) Coord() Coord { return c.coord }

func (c Cell) Value() Value { return c.value }

// FaceValue is derived from the cell state on every call.
func (c Cell) FaceValue() FaceValue {
	switch {
	case c.explored && c.value == Mine:
		return Exploded
	case c.explored && c.value.IsCount():
		return FaceValue(c.value)
	case c.explored:
		return Explored
	case c.marked:
		return Marked
	default:
		return Blank
	}
}

func (c Cell) IsMine() bool { return c.value == Mine }

func (c Cell) IsExplored() bool { return c.explored }

// IsMarked reports whether the player sees a mark. A stale mark on a cell that
// has since been explored does not count.
func (c Cell) IsMarked() bool {
	return c.FaceValue() == Marked
}

// Explore reports false if the cell was already explored.
func (c *Cell) Explore() bool {
	if c.explored {
		return false
	}
	c.explored = true
	return true
}

// Mark toggles the mark. Cells showing a number cannot be marked.
func (c *Cell) Mark() bool {
	if c.FaceValue().IsCount() {
		return false
	}
	c.marked = !c.marked
	return true
}

// SetValue accepts the next count after the current one, or Mine.
func (c *Cell) SetValue(v Value) error {
	if c.value == Mine {
		return fmt.Errorf("%w: cell %s is already a mine", ErrInvalidTransition, c.coord)
	}
	if v == Mine {
		c.value = v
		return nil
	}
	next, err := c.value.Next()
	if err != nil {
		return err
	}
	if v != next {
		return fmt.Errorf("%w: cannot set cell %s from %s to %s",
			ErrInvalidTransition, c.coord, c.value, v)
	}
	c.value = v
	return nil
}

// Cell implements [fmt.Stringer]
func (c Cell) String() string {
	return c.FaceValue().String()
}
