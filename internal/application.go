package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/rocketscienceinc/tictactoe-unbeatable/internal/config"
	"github.com/rocketscienceinc/tictactoe-unbeatable/internal/service"
	"github.com/rocketscienceinc/tictactoe-unbeatable/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-unbeatable/transport/console"
	"github.com/rocketscienceinc/tictactoe-unbeatable/transport/screen"
)

type frontend interface {
	Start(ctx context.Context) error
}

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// ResolveUI turns the configured ui mode into screen or console.
func ResolveUI(mode string, interactive bool) string {
	if mode != config.UIAuto {
		return mode
	}

	if interactive {
		return config.UIScreen
	}

	return config.UIConsole
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config, ui string) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	botService := service.NewBotService()
	gameManager := usecase.NewGameManager(logger, botService)

	front, err := newFrontend(logger, conf, ui, gameManager)
	if err != nil {
		return err
	}

	log.Info("Starting game", "ui", ui, "session", gameManager.SessionID())
	if err = front.Start(ctx); err != nil {
		return fmt.Errorf("%s front end error: %w", ui, err)
	}

	log.Info("Game closed")

	return nil
}

func newFrontend(logger *slog.Logger, conf *config.Config, ui string, gameManager *usecase.GameManager) (frontend, error) {
	human, computer := conf.Symbols.HumanSymbol(), conf.Symbols.ComputerSymbol()

	switch ui {
	case config.UIScreen:
		tscreen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("could not open terminal screen: %w", err)
		}
		return screen.New(logger, gameManager, tscreen, human, computer), nil
	case config.UIConsole:
		return console.New(logger, gameManager, os.Stdin, termenv.NewOutput(os.Stdout), human, computer), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownUI, ui)
	}
}
