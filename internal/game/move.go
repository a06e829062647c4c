package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper/internal/mines"
)

type Action uint8

const (
	ActionExplore Action = iota + 1
	ActionMark
)

// Action implements [fmt.Stringer]. The strings are the words players type.
func (a Action) String() string {
	switch a {
	case ActionExplore:
		return "free"
	case ActionMark:
		return "mine"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

var (
	ErrBadMove      = errors.New(`a move looks like "<row> <column> <free|mine>"`)
	ErrBadAction    = fmt.Errorf("action must be one of '%s', '%s'", ActionExplore, ActionMark)
	ErrBadMineCount = errors.New("mine count must be a non-negative number")
)

func decodeAction(s string) (action Action, err error) {
	switch strings.ToLower(s) {
	case "free":
		action = ActionExplore
	case "mine":
		action = ActionMark
	default:
		err = ErrBadAction
	}
	return
}

type Move struct {
	Coord  mines.Coord
	Action Action
}

// Command binds the move to field.
func (m Move) Command(field Field) Command {
	if m.Action == ActionMark {
		return NewToggleMark(field, m.Coord)
	}
	return NewExplore(field, m.Coord)
}

type moveDTO struct {
	Row    int    `schema:"row,required"`
	Col    int    `schema:"col,required"`
	Action string `schema:"action,required"`
}

var moveKeys = []string{"row", "col", "action"}

func decode(dst any, keys []string, line string) error {
	words := strings.Fields(line)
	if len(words) != len(keys) {
		return fmt.Errorf("expected %d words, got %d", len(keys), len(words))
	}
	src := make(map[string][]string, len(keys))
	for i, key := range keys {
		src[key] = []string{words[i]}
	}
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec.Decode(dst, src)
}

// ParseMove reads a line like "3 7 free". Rows and columns are 1-based.
func ParseMove(line string) (Move, error) {
	var dto moveDTO
	if err := decode(&dto, moveKeys, line); err != nil {
		return Move{}, fmt.Errorf("%w: %w", ErrBadMove, err)
	}

	action, err := decodeAction(dto.Action)
	if err != nil {
		return Move{}, err
	}

	coord, err := mines.ParseCoord(dto.Row, dto.Col)
	if err != nil {
		return Move{}, err
	}

	return Move{Coord: coord, Action: action}, nil
}

type mineCountDTO struct {
	MineCount int `schema:"mine_count,required"`
}

func ParseMineCount(line string) (int, error) {
	var dto mineCountDTO
	if err := decode(&dto, []string{"mine_count"}, line); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadMineCount, err)
	}
	if dto.MineCount < 0 {
		return 0, fmt.Errorf("%w: %w", ErrBadMineCount, mines.ErrInvalidMineCount)
	}
	return dto.MineCount, nil
}
