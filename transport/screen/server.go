package screen

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-unbeatable/internal/entity"
	"github.com/rocketscienceinc/tictactoe-unbeatable/internal/usecase"
)

const helpText = "click a cell to play   r: restart   q: quit"

type gameManager interface {
	MarkAt(row, col int) (entity.Mark, error)
	Status() entity.GameStatus
	Message() string
	Play(row, col int) (usecase.Outcome, error)
	Restart()
}

// Server is the full-screen terminal front end. Mouse clicks on the grid are the
// human's moves.
type Server struct {
	logger  *slog.Logger
	manager gameManager
	screen  tcell.Screen

	humanSymbol    rune
	computerSymbol rune

	// pressed tracks the left button so a held or dragged click plays only once.
	pressed bool
}

func New(logger *slog.Logger, manager gameManager, screen tcell.Screen, humanSymbol, computerSymbol rune) *Server {
	return &Server{
		logger:         logger.With("component", "screen"),
		manager:        manager,
		screen:         screen,
		humanSymbol:    humanSymbol,
		computerSymbol: computerSymbol,
	}
}

// Start - takes over the terminal and runs the event loop until the user quits or ctx
// is canceled.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	if err := that.screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer that.screen.Fini()

	that.screen.EnableMouse()
	that.screen.Clear()
	that.Draw()

	go func() {
		<-ctx.Done()
		// nothing to do if the loop already returned and the screen is gone
		_ = that.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	for {
		event := that.screen.PollEvent()
		if event == nil {
			return nil
		}

		if _, ok := event.(*tcell.EventInterrupt); ok {
			log.Info("context canceled, leaving screen")
			return nil
		}

		if quit := that.HandleEvent(event); quit {
			log.Info("user quit")
			return nil
		}
	}
}

// HandleEvent applies a single terminal event and redraws. It reports whether the user
// asked to quit.
func (that *Server) HandleEvent(event tcell.Event) bool {
	switch ev := event.(type) {
	case *tcell.EventResize:
		that.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return true
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
			that.manager.Restart()
			that.screen.Clear()
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !that.pressed {
			x, y := ev.Position()
			that.click(x, y)
		}
		that.pressed = down
	}

	that.Draw()

	return false
}

// click plays the cell under (x, y). Clicks outside the grid, on occupied cells, or
// after the game is over are ignored here so the game manager only sees legal moves.
func (that *Server) click(x, y int) {
	log := that.logger.With("method", "click")

	if that.manager.Status().IsFinished() {
		return
	}

	row, col, ok := CellAt(x, y)
	if !ok {
		return
	}

	mark, err := that.manager.MarkAt(row, col)
	if err != nil || mark != entity.Empty {
		return
	}

	outcome, err := that.manager.Play(row, col)
	if err != nil {
		log.Error("failed to play", "row", row, "col", col, "error", err)
		return
	}

	log.Debug("turn played", "human", outcome.Human, "computer", outcome.Computer, "status", outcome.Status)
}
