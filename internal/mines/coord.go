package mines

import "fmt"

const (
	Side      = 9
	CellCount = Side * Side
	MaxMines  = CellCount - 1 /* the first cell touched is never a mine */
)

// Coord is a position on the field. The zero value is the top left cell; any
// other value has to come from one of the constructors, which reject positions
// outside the grid.
type Coord struct {
	row, col int
}

func NewCoord(row, col int) (Coord, error) {
	if row < 0 || row >= Side || col < 0 || col >= Side {
		return Coord{}, fmt.Errorf("%w: row %d, column %d", ErrInvalidCoord, row, col)
	}
	return Coord{row, col}, nil
}

// ParseCoord builds a Coord from the 1-based row and column a player types.
func ParseCoord(row, col int) (Coord, error) {
	c, err := NewCoord(row-1, col-1)
	if err != nil {
		return Coord{}, fmt.Errorf("%w: rows and columns go from 1 to %d", ErrInvalidCoord, Side)
	}
	return c, nil
}

func CoordFromIndex(index int) (Coord, error) {
	if index < 0 || index >= CellCount {
		return Coord{}, fmt.Errorf("%w: index %d", ErrInvalidCoord, index)
	}
	return Coord{index / Side, index % Side}, nil
}

func coordAt(index int) Coord {
	return Coord{index / Side, index % Side}
}

func (c Coord) Row() int { return c.row }

func (c Coord) Col() int { return c.col }

func (c Coord) Index() int {
	return c.row*Side + c.col
}

// Neighbors returns the 8-neighbourhood of c clipped at the field edges, in
// ascending index order.
func (c Coord) Neighbors() []Coord {
	var (
		prevRow, nextRow = max(0, c.row-1), min(c.row+1, Side-1)
		prevCol, nextCol = max(0, c.col-1), min(c.col+1, Side-1)
		neighbors        = make([]Coord, 0, 8)
	)
	for i := prevRow; i <= nextRow; i++ {
		for j := prevCol; j <= nextCol; j++ {
			if i != c.row || j != c.col {
				neighbors = append(neighbors, Coord{i, j})
			}
		}
	}
	return neighbors
}

// Coord implements [fmt.Stringer]. The output is 1-based, the way players
// type coordinates in.
func (c Coord) String() string {
	return fmt.Sprintf("%d %d", c.row+1, c.col+1)
}
