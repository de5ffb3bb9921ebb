package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-strategist/internal/apperror"
)

const StandardDimension = 3

var (
	ErrInvalidDimension = errors.New("invalid board dimension")
	ErrMalformedBoard   = errors.New("malformed board")
	ErrInvalidCell      = errors.New("invalid cell")
)

// Board - a square grid of cells. A Board is never modified in place:
// WithMark returns a new board.
type Board struct {
	dimension int
	cells     []Mark
}

// NewBoard - returns an empty board with the given side length.
func NewBoard(dimension int) (Board, error) {
	if dimension < 1 {
		return Board{}, fmt.Errorf("%w: %d", ErrInvalidDimension, dimension)
	}

	return Board{
		dimension: dimension,
		cells:     make([]Mark, dimension*dimension),
	}, nil
}

// NewStandardBoard - returns an empty 3x3 board.
func NewStandardBoard() Board {
	return Board{
		dimension: StandardDimension,
		cells:     make([]Mark, StandardDimension*StandardDimension),
	}
}

// ParseBoard - builds a board from its rows, e.g. ParseBoard("XX ", "O  ", "X O").
// Empty cells may be written as a space, '.', '-' or '_'.
func ParseBoard(rows ...string) (Board, error) {
	board, err := NewBoard(len(rows))
	if err != nil {
		return Board{}, err
	}

	for row, line := range rows {
		symbols := []rune(line)
		if len(symbols) != board.dimension {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedBoard, row, len(symbols), board.dimension)
		}

		for column, symbol := range symbols {
			mark, ok := markFromSymbol(symbol)
			if !ok {
				return Board{}, fmt.Errorf("%w: unexpected symbol %q at %s", ErrMalformedBoard, symbol, Position{Row: row, Column: column})
			}
			board.cells[row*board.dimension+column] = mark
		}
	}

	return board, nil
}

func markFromSymbol(symbol rune) (Mark, bool) {
	switch symbol {
	case 'X', 'x':
		return MarkX, true
	case 'O', 'o':
		return MarkO, true
	case ' ', '.', '-', '_':
		return NoMark, true
	default:
		return NoMark, false
	}
}

func (that Board) Dimension() int {
	return that.dimension
}

func (that Board) Contains(pos Position) bool {
	return pos.Row >= 0 && pos.Row < that.dimension && pos.Column >= 0 && pos.Column < that.dimension
}

// MarkAt - returns the mark at pos, NoMark for empty or out of range cells.
func (that Board) MarkAt(pos Position) Mark {
	if !that.Contains(pos) {
		return NoMark
	}
	return that.cells[pos.Row*that.dimension+pos.Column]
}

func (that Board) IsEmptyAt(pos Position) bool {
	return that.Contains(pos) && that.MarkAt(pos) == NoMark
}

// WithMark - returns a copy of the board with mark placed at pos.
func (that Board) WithMark(mark Mark, pos Position) (Board, error) {
	if !mark.IsValid() {
		return Board{}, fmt.Errorf("%w: %q", ErrInvalidMark, mark)
	}

	if !that.Contains(pos) {
		return Board{}, fmt.Errorf("%w: %s", ErrInvalidCell, pos)
	}

	if !that.IsEmptyAt(pos) {
		return Board{}, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, pos)
	}

	cells := make([]Mark, len(that.cells))
	copy(cells, that.cells)
	cells[pos.Row*that.dimension+pos.Column] = mark

	return Board{dimension: that.dimension, cells: cells}, nil
}

// Positions - every position on the board in row-major order.
func (that Board) Positions() []Position {
	positions := make([]Position, 0, len(that.cells))
	for row := 0; row < that.dimension; row++ {
		for column := 0; column < that.dimension; column++ {
			positions = append(positions, Position{Row: row, Column: column})
		}
	}
	return positions
}

func (that Board) EmptyPositions() []Position {
	return that.IntersectEmptyPositions(that.Positions())
}

func (that Board) PositionsWithMark(mark Mark) []Position {
	return lo.Filter(that.Positions(), func(pos Position, _ int) bool {
		return that.MarkAt(pos) == mark
	})
}

// IntersectEmptyPositions - keeps the empty positions of the given list, in the given order.
func (that Board) IntersectEmptyPositions(positions []Position) []Position {
	return lo.Filter(positions, func(pos Position, _ int) bool {
		return that.IsEmptyAt(pos)
	})
}

// MarkedPosition - a position and whatever occupies it.
type MarkedPosition struct {
	Mark     Mark
	Position Position
}

func (that Board) MarksAndPositions() []MarkedPosition {
	return lo.Map(that.Positions(), func(pos Position, _ int) MarkedPosition {
		return MarkedPosition{Mark: that.MarkAt(pos), Position: pos}
	})
}

func (that Board) CountMarks() int {
	return lo.CountBy(that.cells, func(mark Mark) bool {
		return mark != NoMark
	})
}

func (that Board) IsFull() bool {
	return that.CountMarks() == len(that.cells)
}

func (that Board) Rows() [][]Position {
	rows := make([][]Position, that.dimension)
	for row := range rows {
		rows[row] = make([]Position, that.dimension)
		for column := range rows[row] {
			rows[row][column] = Position{Row: row, Column: column}
		}
	}
	return rows
}

func (that Board) Columns() [][]Position {
	columns := make([][]Position, that.dimension)
	for column := range columns {
		columns[column] = make([]Position, that.dimension)
		for row := range columns[column] {
			columns[column][row] = Position{Row: row, Column: column}
		}
	}
	return columns
}

// Diagonals - top-left to bottom-right first, then bottom-left to top-right.
func (that Board) Diagonals() [][]Position {
	last := that.dimension - 1
	down := make([]Position, that.dimension)
	up := make([]Position, that.dimension)
	for i := 0; i < that.dimension; i++ {
		down[i] = Position{Row: i, Column: i}
		up[i] = Position{Row: last - i, Column: i}
	}
	return [][]Position{down, up}
}

// Lines - rows, then columns, then diagonals.
func (that Board) Lines() [][]Position {
	lines := make([][]Position, 0, 2*that.dimension+2)
	lines = append(lines, that.Rows()...)
	lines = append(lines, that.Columns()...)
	return append(lines, that.Diagonals()...)
}

// Corners - top-left, top-right, bottom-right, bottom-left.
func (that Board) Corners() []Position {
	last := that.dimension - 1
	return lo.Uniq([]Position{
		{Row: 0, Column: 0},
		{Row: 0, Column: last},
		{Row: last, Column: last},
		{Row: last, Column: 0},
	})
}

// OppositeCorner - the corner diagonally across from pos.
func (that Board) OppositeCorner(pos Position) (Position, bool) {
	if !lo.Contains(that.Corners(), pos) {
		return Position{}, false
	}

	last := that.dimension - 1
	return Position{Row: last - pos.Row, Column: last - pos.Column}, true
}

// Center - the middle cell; boards with an even dimension have none.
func (that Board) Center() (Position, bool) {
	if that.dimension%2 == 0 {
		return Position{}, false
	}

	middle := that.dimension / 2
	return Position{Row: middle, Column: middle}, true
}

// Sides - the non-corner edge cells, clockwise starting from the top edge.
func (that Board) Sides() []Position {
	last := that.dimension - 1
	sides := make([]Position, 0, 4*max(last-1, 0))
	for column := 1; column < last; column++ {
		sides = append(sides, Position{Row: 0, Column: column})
	}
	for row := 1; row < last; row++ {
		sides = append(sides, Position{Row: row, Column: last})
	}
	for column := last - 1; column > 0; column-- {
		sides = append(sides, Position{Row: last, Column: column})
	}
	for row := last - 1; row > 0; row-- {
		sides = append(sides, Position{Row: row, Column: 0})
	}
	return sides
}

// WinningPositions - the first line filled with a single mark.
func (that Board) WinningPositions() (Mark, []Position, bool) {
	for _, line := range that.Lines() {
		first := that.MarkAt(line[0])
		if first == NoMark {
			continue
		}

		if lo.EveryBy(line, func(pos Position) bool { return that.MarkAt(pos) == first }) {
			return first, line, true
		}
	}

	return NoMark, nil, false
}

func (that Board) rowStrings() []string {
	return lo.Map(that.Rows(), func(row []Position, _ int) string {
		var sb strings.Builder
		for _, pos := range row {
			if mark := that.MarkAt(pos); mark != NoMark {
				sb.WriteString(string(mark))
			} else {
				sb.WriteByte(' ')
			}
		}
		return sb.String()
	})
}

func (that Board) String() string {
	return strings.Join(that.rowStrings(), "\n")
}

// MarshalJSON - a board is encoded as its list of rows.
func (that Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.rowStrings())
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var rows []string
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedBoard, err)
	}

	board, err := ParseBoard(rows...)
	if err != nil {
		return err
	}

	*that = board
	return nil
}
