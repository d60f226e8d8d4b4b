package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-unbeatable/internal/service"
	"github.com/rocketscienceinc/tictactoe-unbeatable/internal/usecase"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Bot     service.BotService
	Manager *usecase.GameManager
}

// New builds a fresh game session backed by the real minimax bot.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	bot := service.NewBotService()

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Bot:     bot,
		Manager: usecase.NewGameManager(logger, bot),
	}
}
