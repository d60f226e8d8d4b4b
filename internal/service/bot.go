package service

import (
	"errors"

	"github.com/rocketscienceinc/tictactoe-unbeatable/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// Score is the value of a position from the computer's point of view.
type Score int

const (
	ScoreHumanWin    Score = -1
	ScoreDraw        Score = 0
	ScoreComputerWin Score = 1
)

type BotService interface {
	Evaluate(board *entity.Board, turn entity.Turn) Score
	BestMove(board *entity.Board) (entity.Move, bool)
	MakeTurn(board *entity.Board) (entity.Move, error)
}

// botService plays the computer side with a full minimax search. There is no pruning,
// no memoisation and no depth limit: every reachable terminal position is visited.
type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// Evaluate scores the board with turn to move. The board is mutated while searching
// and restored before Evaluate returns.
func (that *botService) Evaluate(board *entity.Board, turn entity.Turn) Score {
	switch {
	case board.HasWinner(entity.Computer):
		return ScoreComputerWin
	case board.HasWinner(entity.Human):
		return ScoreHumanWin
	case board.IsFull():
		return ScoreDraw
	}

	maximizing := turn == entity.ComputerTurn

	best := ScoreComputerWin + 1
	if maximizing {
		best = ScoreHumanWin - 1
	}

	for row := 0; row < entity.Size; row++ {
		for col := 0; col < entity.Size; col++ {
			if !board.IsEmpty(row, col) {
				continue
			}

			board.SetMark(row, col, turn.Mark())
			score := that.Evaluate(board, turn.Next())
			board.ClearMark(row, col)

			if maximizing {
				best = max(best, score)
			} else {
				best = min(best, score)
			}
		}
	}

	return best
}

// BestMove picks the computer move with the best guaranteed outcome and plays it.
// Cells are scanned in row-major order and only a strictly better score replaces the
// current choice, so ties go to the earliest cell. It reports false when the board has
// no empty cell.
func (that *botService) BestMove(board *entity.Board) (entity.Move, bool) {
	var (
		move  entity.Move
		found bool
		best  Score
	)

	for row := 0; row < entity.Size; row++ {
		for col := 0; col < entity.Size; col++ {
			if !board.IsEmpty(row, col) {
				continue
			}

			board.SetMark(row, col, entity.Computer)
			score := that.Evaluate(board, entity.HumanTurn)
			board.ClearMark(row, col)

			if !found || score > best {
				best = score
				move = entity.Move{Row: row, Col: col}
				found = true
			}
		}
	}

	if !found {
		return entity.Move{}, false
	}

	board.SetMark(move.Row, move.Col, entity.Computer)

	return move, true
}

func (that *botService) MakeTurn(board *entity.Board) (entity.Move, error) {
	move, ok := that.BestMove(board)
	if !ok {
		return entity.Move{}, ErrNoAvailableMoves
	}

	return move, nil
}
