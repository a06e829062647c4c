package mines

import (
	"fmt"
	"strconv"
)

// Value is the hidden content of a cell: Safe, a mine count from 1 to 8, or
// Mine.
type Value int8

const (
	Safe Value = 0
	Mine Value = 9

	maxCount Value = 8
)

func (v Value) IsCount() bool {
	return 1 <= v && v <= maxCount
}

// Next returns the count that follows v. Safe is followed by 1; 8 and Mine
// have no successor.
func (v Value) Next() (Value, error) {
	if v < Safe || v >= maxCount {
		return v, fmt.Errorf("%w: %s has no next value", ErrInvalidTransition, v)
	}
	return v + 1, nil
}

// Value implements [fmt.Stringer]
func (v Value) String() string {
	switch {
	case v == Safe:
		return "."
	case v == Mine:
		return "X"
	case v.IsCount():
		return strconv.Itoa(int(v))
	default:
		return "!"
	}
}

// FaceValue is what the player sees of a cell.
type FaceValue int8

const (
	Blank FaceValue = 0
	/* 1 to 8 are revealed mine counts */
	Explored FaceValue = 10
	Marked   FaceValue = 11
	Exploded FaceValue = 12
)

func (f FaceValue) IsCount() bool {
	return 1 <= f && f <= FaceValue(maxCount)
}

// FaceValue implements [fmt.Stringer]
func (f FaceValue) String() string {
	switch {
	case f == Blank:
		return "."
	case f == Explored:
		return "/"
	case f == Marked:
		return "*"
	case f == Exploded:
		return "X"
	case f.IsCount():
		return strconv.Itoa(int(f))
	default:
		return "!"
	}
}
