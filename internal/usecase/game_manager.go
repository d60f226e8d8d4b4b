package usecase

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-unbeatable/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-unbeatable/internal/entity"
)

type bot interface {
	MakeTurn(board *entity.Board) (entity.Move, error)
}

// Outcome describes one full turn: the human move and, unless the human move ended the
// game, the computer's reply.
type Outcome struct {
	Human    entity.Move
	Computer *entity.Move
	Status   entity.GameStatus
}

// GameManager owns the board of a single game session and is the only entry point the
// front ends use. It rejects moves that break the board's preconditions; the board and
// the bot assume they are only called with legal moves.
type GameManager struct {
	logger *slog.Logger
	bot    bot

	board     entity.Board
	sessionID string
}

func NewGameManager(logger *slog.Logger, bot bot) *GameManager {
	manager := &GameManager{
		logger: logger.With("component", "game_manager"),
		bot:    bot,
	}
	manager.sessionID = uuid.NewString()

	return manager
}

func (that *GameManager) SessionID() string {
	return that.sessionID
}

// Board returns a copy of the current grid.
func (that *GameManager) Board() entity.Board {
	return that.board
}

func (that *GameManager) Status() entity.GameStatus {
	return that.board.Status()
}

func (that *GameManager) MarkAt(row, col int) (entity.Mark, error) {
	if !entity.InBounds(row, col) {
		return entity.Empty, fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCoordinate, row, col)
	}

	return that.board.MarkAt(row, col), nil
}

// Message is the text shown under the board: empty while the game is running.
func (that *GameManager) Message() string {
	switch that.board.Status() {
	case entity.StatusHumanWin:
		return "Player 1 wins!"
	case entity.StatusComputerWin:
		return "AI wins!"
	case entity.StatusDraw:
		return "It's a tie!"
	default:
		return ""
	}
}

// PlayHuman places the human mark. It does not trigger the computer reply.
func (that *GameManager) PlayHuman(row, col int) (entity.GameStatus, error) {
	log := that.logger.With("method", "PlayHuman", "session", that.sessionID)

	if that.board.Status().IsFinished() {
		return that.board.Status(), apperror.ErrGameFinished
	}

	if !entity.InBounds(row, col) {
		return entity.StatusInProgress, fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCoordinate, row, col)
	}

	if !that.board.IsEmpty(row, col) {
		return entity.StatusInProgress, fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	that.board.SetMark(row, col, entity.Human)

	status := that.board.Status()
	log.Debug("human moved", "row", row, "col", col, "status", status)
	that.logFinished(status)

	return status, nil
}

// PlayComputer lets the bot choose and place the computer mark.
func (that *GameManager) PlayComputer() (entity.Move, entity.GameStatus, error) {
	log := that.logger.With("method", "PlayComputer", "session", that.sessionID)

	if that.board.Status().IsFinished() {
		return entity.Move{}, that.board.Status(), apperror.ErrGameFinished
	}

	move, err := that.bot.MakeTurn(&that.board)
	if err != nil {
		return entity.Move{}, that.board.Status(), fmt.Errorf("bot failed to make turn: %w", err)
	}

	status := that.board.Status()
	log.Debug("computer moved", "row", move.Row, "col", move.Col, "status", status)
	that.logFinished(status)

	return move, status, nil
}

// Play runs a whole turn: the human move at (row, col) and, if the game is still
// running afterwards, the computer's reply.
func (that *GameManager) Play(row, col int) (Outcome, error) {
	outcome := Outcome{Human: entity.Move{Row: row, Col: col}}

	status, err := that.PlayHuman(row, col)
	if err != nil {
		return outcome, fmt.Errorf("failed to play human move: %w", err)
	}

	if status.IsFinished() {
		outcome.Status = status
		return outcome, nil
	}

	move, status, err := that.PlayComputer()
	if err != nil {
		return outcome, fmt.Errorf("failed to play computer move: %w", err)
	}

	outcome.Computer = &move
	outcome.Status = status

	return outcome, nil
}

// Restart clears the board and starts a new session.
func (that *GameManager) Restart() {
	previous := that.sessionID

	that.board.Reset()
	that.sessionID = uuid.NewString()

	that.logger.Info("game restarted", "previous_session", previous, "session", that.sessionID)
}

func (that *GameManager) logFinished(status entity.GameStatus) {
	if !status.IsFinished() {
		return
	}

	that.logger.Info("game finished",
		"session", that.sessionID,
		"status", status,
		"board", that.board.String(),
	)
}
