package tactic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-strategist/internal/entity"
)

func TestCenter_ChoosePosition(t *testing.T) {
	pos, ok := Center{}.ChoosePosition(entity.MarkX, entity.NewStandardBoard())
	require.True(t, ok)
	assert.Equal(t, entity.Position{Row: 1, Column: 1}, pos)

	_, ok = Center{}.ChoosePosition(entity.MarkO, board3x3(t, "   ", " X ", "   "))
	assert.False(t, ok)

	even, err := entity.NewBoard(4)
	require.NoError(t, err)
	_, ok = Center{}.ChoosePosition(entity.MarkX, even)
	assert.False(t, ok)
}

func TestOppositeCorner_ChoosePosition(t *testing.T) {
	t.Run("Takes the corner across from the opponent", func(t *testing.T) {
		pos, ok := OppositeCorner{}.ChoosePosition(entity.MarkX, board3x3(t, "O  ", " X ", "   "))

		require.True(t, ok)
		assert.Equal(t, entity.Position{Row: 2, Column: 2}, pos)
	})

	t.Run("Ignores corners held by the player", func(t *testing.T) {
		_, ok := OppositeCorner{}.ChoosePosition(entity.MarkO, board3x3(t, "O  ", " X ", "   "))

		assert.False(t, ok)
	})
}

func TestEmptyCorner_ChoosePosition(t *testing.T) {
	tests := []struct {
		name  string
		board []string
		want  *entity.Position
	}{
		{name: "all corners empty", board: []string{"   ", " O ", "   "}, want: &entity.Position{Row: 0, Column: 0}},
		{name: "top-left taken", board: []string{"X  ", " O ", "   "}, want: &entity.Position{Row: 0, Column: 2}},
		{name: "top corners taken", board: []string{"X O", " O ", "   "}, want: &entity.Position{Row: 2, Column: 2}},
		{name: "only bottom-left free", board: []string{"X O", " O ", "  X"}, want: &entity.Position{Row: 2, Column: 0}},
		{name: "bottom-left free, top-right free", board: []string{"X  ", " O ", "  X"}, want: &entity.Position{Row: 0, Column: 2}},
		{name: "no corner free", board: []string{"X O", " O ", "X X"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ok := EmptyCorner{}.ChoosePosition(entity.MarkX, board3x3(t, tt.board[0], tt.board[1], tt.board[2]))

			if tt.want == nil {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, *tt.want, pos)
		})
	}
}

func TestEmptySide_ChoosePosition(t *testing.T) {
	pos, ok := EmptySide{}.ChoosePosition(entity.MarkX, board3x3(t, "XOX", "   ", "   "))
	require.True(t, ok)
	assert.Equal(t, entity.Position{Row: 1, Column: 2}, pos)

	pos, ok = EmptySide{}.ChoosePosition(entity.MarkX, board3x3(t, "XOX", " OX", "XX "))
	require.True(t, ok)
	assert.Equal(t, entity.Position{Row: 1, Column: 0}, pos)

	_, ok = EmptySide{}.ChoosePosition(entity.MarkX, board3x3(t, "XOX", "O X", "XOX"))
	assert.False(t, ok)
}

func TestTactics_FullBoardAbstains(t *testing.T) {
	tactics := []Tactic{Win{}, Block{}, Fork{}, BlockFork{}, Center{}, OppositeCorner{}, EmptyCorner{}, EmptySide{}}
	marks := []entity.Mark{entity.MarkX, entity.MarkO}

	// every way of filling the nine cells with X and O
	for fill := 0; fill < 1<<9; fill++ {
		rows := make([]string, 3)
		for row := range rows {
			var line []byte
			for column := 0; column < 3; column++ {
				if fill&(1<<(row*3+column)) != 0 {
					line = append(line, 'X')
				} else {
					line = append(line, 'O')
				}
			}
			rows[row] = string(line)
		}

		board, err := entity.ParseBoard(rows...)
		require.NoError(t, err)
		require.True(t, board.IsFull())

		for _, tactic := range tactics {
			for _, mark := range marks {
				_, ok := tactic.ChoosePosition(mark, board)
				assert.False(t, ok, "%s proposed a move for %s on\n%s", tactic.Name(), mark, board)
			}
		}
	}
}

func TestTactics_InvalidMarkAbstains(t *testing.T) {
	board := board3x3(t, "XX ", "OO ", "   ")

	for _, tactic := range NewellAndSimon().tactics {
		_, ok := tactic.ChoosePosition(entity.NoMark, board)
		assert.False(t, ok, tactic.Name())
	}
}
