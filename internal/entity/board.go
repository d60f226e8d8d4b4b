package entity

import "strings"

// Size is the width and height of the board.
const Size = 3

type Mark uint8

const (
	Empty Mark = iota
	Human
	Computer
)

func (that Mark) String() string {
	switch that {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return "empty"
	}
}

type GameStatus string

const (
	StatusInProgress  GameStatus = "in_progress"
	StatusHumanWin    GameStatus = "human_win"
	StatusComputerWin GameStatus = "computer_win"
	StatusDraw        GameStatus = "draw"
)

func (that GameStatus) IsFinished() bool {
	return that != StatusInProgress
}

// Move identifies a cell by row and column.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// WinLines lists every three-in-a-row on the board: rows, columns, then both diagonals.
var WinLines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is the 3x3 grid. The zero value is an empty board.
//
// Mutators do not validate their arguments: callers must pass in-bounds coordinates
// and SetMark expects an empty cell. Boundary checks live in the usecase layer.
type Board [Size][Size]Mark

func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

func (that *Board) MarkAt(row, col int) Mark {
	return that[row][col]
}

func (that *Board) IsEmpty(row, col int) bool {
	return that[row][col] == Empty
}

func (that *Board) SetMark(row, col int, mark Mark) {
	that[row][col] = mark
}

func (that *Board) ClearMark(row, col int) {
	that[row][col] = Empty
}

func (that *Board) HasWinner(mark Mark) bool {
	for _, line := range WinLines {
		a, b, c := line[0], line[1], line[2]
		if that[a.Row][a.Col] == mark && that[b.Row][b.Col] == mark && that[c.Row][c.Col] == mark {
			return true
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that[row][col] == Empty {
				return false
			}
		}
	}

	return true
}

func (that *Board) Reset() {
	*that = Board{}
}

// EmptyCells returns the empty cells in row-major order.
func (that *Board) EmptyCells() []Move {
	cells := make([]Move, 0, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that[row][col] == Empty {
				cells = append(cells, Move{Row: row, Col: col})
			}
		}
	}

	return cells
}

// Status derives the game status from the grid. It is never cached.
func (that *Board) Status() GameStatus {
	switch {
	case that.HasWinner(Computer):
		return StatusComputerWin
	case that.HasWinner(Human):
		return StatusHumanWin
	case that.IsFull():
		return StatusDraw
	default:
		return StatusInProgress
	}
}

// String renders the board as three lines of ".", "O" (human) and "X" (computer).
func (that *Board) String() string {
	var builder strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch that[row][col] {
			case Human:
				builder.WriteByte('O')
			case Computer:
				builder.WriteByte('X')
			default:
				builder.WriteByte('.')
			}
		}
		if row < Size-1 {
			builder.WriteByte('\n')
		}
	}

	return builder.String()
}
