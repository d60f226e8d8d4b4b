package usecase_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-unbeatable/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-unbeatable/internal/entity"
	"github.com/rocketscienceinc/tictactoe-unbeatable/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-unbeatable/testing/suite"
)

var errBotBroken = errors.New("bot broken")

type mockBot struct {
	mock.Mock
}

func (that *mockBot) MakeTurn(board *entity.Board) (entity.Move, error) {
	args := that.Called(board)
	return args.Get(0).(entity.Move), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGameManager_NewSession(t *testing.T) {
	_, st := suite.New(t)

	// Then: a new session starts with an empty, running board
	assert.Equal(t, entity.Board{}, st.Manager.Board())
	assert.Equal(t, entity.StatusInProgress, st.Manager.Status())
	assert.NotEmpty(t, st.Manager.SessionID())
	assert.Empty(t, st.Manager.Message())
}

func TestGameManager_MarkAt(t *testing.T) {
	t.Run("Returns the mark for rendering", func(t *testing.T) {
		_, st := suite.New(t)

		_, err := st.Manager.PlayHuman(2, 1)
		require.NoError(t, err)

		mark, err := st.Manager.MarkAt(2, 1)
		require.NoError(t, err)
		assert.Equal(t, entity.Human, mark)

		mark, err = st.Manager.MarkAt(0, 0)
		require.NoError(t, err)
		assert.Equal(t, entity.Empty, mark)
	})

	t.Run("Rejects coordinates outside the board", func(t *testing.T) {
		_, st := suite.New(t)

		_, err := st.Manager.MarkAt(3, 0)

		assert.ErrorIs(t, err, apperror.ErrInvalidCoordinate)
	})
}

func TestGameManager_PlayHuman(t *testing.T) {
	t.Run("Places the human mark without a computer reply", func(t *testing.T) {
		_, st := suite.New(t)

		status, err := st.Manager.PlayHuman(0, 0)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusInProgress, status)
		board := st.Manager.Board()
		assert.Equal(t, entity.Human, board.MarkAt(0, 0))
		assert.Len(t, board.EmptyCells(), 8)
	})

	t.Run("Error on invalid coordinate", func(t *testing.T) {
		_, st := suite.New(t)

		for _, cell := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
			_, err := st.Manager.PlayHuman(cell[0], cell[1])
			assert.ErrorIs(t, err, apperror.ErrInvalidCoordinate, "cell %v", cell)
		}
		assert.Equal(t, entity.Board{}, st.Manager.Board())
	})

	t.Run("Error on occupied cell", func(t *testing.T) {
		// Given: the human has already played the centre
		_, st := suite.New(t)
		_, err := st.Manager.PlayHuman(1, 1)
		require.NoError(t, err)
		before := st.Manager.Board()

		// When: the same cell is played again
		_, err = st.Manager.PlayHuman(1, 1)

		// Then: the move is rejected and the board is untouched
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, st.Manager.Board())
	})

	t.Run("Completing a row wins the game", func(t *testing.T) {
		// Given: [[1,1,0],[2,2,0],[0,0,0]]
		_, st := suite.New(t)
		bot := &mockBot{}
		manager := usecase.NewGameManager(st.Logger, bot)
		for _, cell := range [][2]int{{0, 0}, {0, 1}} {
			_, err := manager.PlayHuman(cell[0], cell[1])
			require.NoError(t, err)
		}
		bot.On("MakeTurn", mock.Anything).Return(entity.Move{Row: 1, Col: 0}, nil).Once().Run(func(args mock.Arguments) {
			args.Get(0).(*entity.Board).SetMark(1, 0, entity.Computer)
		})
		bot.On("MakeTurn", mock.Anything).Return(entity.Move{Row: 1, Col: 1}, nil).Once().Run(func(args mock.Arguments) {
			args.Get(0).(*entity.Board).SetMark(1, 1, entity.Computer)
		})
		_, _, err := manager.PlayComputer()
		require.NoError(t, err)
		_, _, err = manager.PlayComputer()
		require.NoError(t, err)

		// When: the human plays (0,2)
		status, err := manager.PlayHuman(0, 2)

		// Then: the human has won
		require.NoError(t, err)
		assert.Equal(t, entity.StatusHumanWin, status)
		assert.Equal(t, entity.StatusHumanWin, manager.Status())
		assert.Equal(t, "Player 1 wins!", manager.Message())
		bot.AssertExpectations(t)
	})

	t.Run("Error after the game is over", func(t *testing.T) {
		_, st := suite.New(t)
		playToEnd(t, st.Manager)

		_, err := st.Manager.PlayHuman(0, 0)

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGameManager_PlayComputer(t *testing.T) {
	t.Run("Replies to a corner with the centre", func(t *testing.T) {
		_, st := suite.New(t)
		_, err := st.Manager.PlayHuman(0, 0)
		require.NoError(t, err)

		move, status, err := st.Manager.PlayComputer()

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 1}, move)
		assert.Equal(t, entity.StatusInProgress, status)
	})

	t.Run("Wraps bot errors", func(t *testing.T) {
		bot := &mockBot{}
		bot.On("MakeTurn", mock.Anything).Return(entity.Move{}, errBotBroken).Once()
		manager := usecase.NewGameManager(discardLogger(), bot)

		_, _, err := manager.PlayComputer()

		require.ErrorIs(t, err, errBotBroken)
		bot.AssertExpectations(t)
	})

	t.Run("Error after the game is over", func(t *testing.T) {
		bot := &mockBot{}
		manager := usecase.NewGameManager(discardLogger(), bot)
		playToEndWith(t, manager, bot)

		_, _, err := manager.PlayComputer()

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGameManager_Play(t *testing.T) {
	t.Run("A turn places both marks", func(t *testing.T) {
		_, st := suite.New(t)

		outcome, err := st.Manager.Play(0, 0)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, outcome.Human)
		require.NotNil(t, outcome.Computer)
		assert.Equal(t, entity.Move{Row: 1, Col: 1}, *outcome.Computer)
		assert.Equal(t, entity.StatusInProgress, outcome.Status)
	})

	t.Run("No computer reply when the human move ends the game", func(t *testing.T) {
		// Given: a scripted bot so the human can complete the middle row
		bot := &mockBot{}
		manager := usecase.NewGameManager(discardLogger(), bot)
		for _, cell := range [][2]int{{0, 0}, {0, 1}} {
			cell := cell
			bot.On("MakeTurn", mock.Anything).Return(entity.Move{Row: cell[0], Col: cell[1]}, nil).Once().Run(func(args mock.Arguments) {
				args.Get(0).(*entity.Board).SetMark(cell[0], cell[1], entity.Computer)
			})
		}
		_, err := manager.Play(1, 0)
		require.NoError(t, err)
		_, err = manager.Play(1, 1)
		require.NoError(t, err)

		// When: the human completes the row
		outcome, err := manager.Play(1, 2)

		// Then: the bot is not asked again
		require.NoError(t, err)
		assert.Nil(t, outcome.Computer)
		assert.Equal(t, entity.StatusHumanWin, outcome.Status)
		bot.AssertExpectations(t)
	})

	t.Run("Occupied cell is rejected before the bot runs", func(t *testing.T) {
		bot := &mockBot{}
		manager := usecase.NewGameManager(discardLogger(), bot)
		bot.On("MakeTurn", mock.Anything).Return(entity.Move{Row: 2, Col: 2}, nil).Once().Run(func(args mock.Arguments) {
			args.Get(0).(*entity.Board).SetMark(2, 2, entity.Computer)
		})
		_, err := manager.Play(0, 0)
		require.NoError(t, err)

		_, err = manager.Play(2, 2)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		bot.AssertExpectations(t)
	})

	t.Run("The computer never loses a played-out game", func(t *testing.T) {
		_, st := suite.New(t)

		status := playToEnd(t, st.Manager)

		assert.NotEqual(t, entity.StatusHumanWin, status)
		assert.NotEmpty(t, st.Manager.Message())
	})
}

func TestGameManager_Restart(t *testing.T) {
	// Given: a finished game
	_, st := suite.New(t)
	playToEnd(t, st.Manager)
	previous := st.Manager.SessionID()

	// When: the game is restarted
	st.Manager.Restart()

	// Then: the board is empty, the game runs again and the session is new
	assert.Equal(t, entity.Board{}, st.Manager.Board())
	assert.Equal(t, entity.StatusInProgress, st.Manager.Status())
	assert.NotEqual(t, previous, st.Manager.SessionID())

	_, err := st.Manager.Play(1, 1)
	assert.NoError(t, err)
}

func TestGameManager_Message(t *testing.T) {
	t.Run("Computer win", func(t *testing.T) {
		bot := &mockBot{}
		manager := usecase.NewGameManager(discardLogger(), bot)
		for _, cell := range [][2]int{{0, 0}, {0, 1}, {0, 2}} {
			cell := cell
			bot.On("MakeTurn", mock.Anything).Return(entity.Move{Row: cell[0], Col: cell[1]}, nil).Once().Run(func(args mock.Arguments) {
				args.Get(0).(*entity.Board).SetMark(cell[0], cell[1], entity.Computer)
			})
		}

		for _, cell := range [][2]int{{1, 0}, {2, 1}, {2, 2}} {
			_, err := manager.Play(cell[0], cell[1])
			require.NoError(t, err)
		}

		assert.Equal(t, entity.StatusComputerWin, manager.Status())
		assert.Equal(t, "AI wins!", manager.Message())
	})

	t.Run("Draw", func(t *testing.T) {
		// Given: a scripted bot that ends in a full board with no line
		bot := &mockBot{}
		manager := usecase.NewGameManager(discardLogger(), bot)
		for _, cell := range [][2]int{{0, 1}, {1, 1}, {2, 0}, {1, 2}} {
			cell := cell
			bot.On("MakeTurn", mock.Anything).Return(entity.Move{Row: cell[0], Col: cell[1]}, nil).Once().Run(func(args mock.Arguments) {
				args.Get(0).(*entity.Board).SetMark(cell[0], cell[1], entity.Computer)
			})
		}

		// When: the human fills the remaining cells
		for _, cell := range [][2]int{{0, 0}, {0, 2}, {1, 0}, {2, 1}, {2, 2}} {
			_, err := manager.Play(cell[0], cell[1])
			require.NoError(t, err)
		}

		// Then: the game is a tie
		assert.Equal(t, entity.StatusDraw, manager.Status())
		assert.Equal(t, "It's a tie!", manager.Message())
		bot.AssertExpectations(t)
	})
}

// playToEnd plays the first empty cell for the human each turn against the real bot.
func playToEnd(t *testing.T, manager *usecase.GameManager) entity.GameStatus {
	t.Helper()

	for !manager.Status().IsFinished() {
		board := manager.Board()
		cells := board.EmptyCells()
		require.NotEmpty(t, cells)

		_, err := manager.Play(cells[0].Row, cells[0].Col)
		require.NoError(t, err)
	}

	return manager.Status()
}

// playToEndWith scripts a quick computer win on the top row.
func playToEndWith(t *testing.T, manager *usecase.GameManager, bot *mockBot) {
	t.Helper()

	for _, cell := range [][2]int{{0, 0}, {0, 1}, {0, 2}} {
		cell := cell
		bot.On("MakeTurn", mock.Anything).Return(entity.Move{Row: cell[0], Col: cell[1]}, nil).Once().Run(func(args mock.Arguments) {
			args.Get(0).(*entity.Board).SetMark(cell[0], cell[1], entity.Computer)
		})
	}

	for _, cell := range [][2]int{{1, 0}, {2, 1}, {2, 2}} {
		_, err := manager.Play(cell[0], cell[1])
		require.NoError(t, err)
	}

	require.Equal(t, entity.StatusComputerWin, manager.Status())
}
