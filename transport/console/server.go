package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-unbeatable/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-unbeatable/internal/entity"
	"github.com/rocketscienceinc/tictactoe-unbeatable/internal/usecase"
)

var ErrInvalidInput = errors.New("expected \"row col\", r or q")

const prompt = "your move (row col, r: restart, q: quit): "

type gameManager interface {
	MarkAt(row, col int) (entity.Mark, error)
	Status() entity.GameStatus
	Message() string
	Play(row, col int) (usecase.Outcome, error)
	Restart()
}

type commandKind int

const (
	commandMove commandKind = iota
	commandRestart
	commandQuit
)

type command struct {
	kind     commandKind
	row, col int
}

// Server is the line-mode front end: one command per input line.
type Server struct {
	logger  *slog.Logger
	manager gameManager

	input  io.Reader
	output *termenv.Output

	humanSymbol    rune
	computerSymbol rune
}

func New(logger *slog.Logger, manager gameManager, input io.Reader, output *termenv.Output, humanSymbol, computerSymbol rune) *Server {
	return &Server{
		logger:         logger.With("component", "console"),
		manager:        manager,
		input:          input,
		output:         output,
		humanSymbol:    humanSymbol,
		computerSymbol: computerSymbol,
	}
}

// Start - reads commands until q, end of input, or ctx is canceled.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.input)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	that.render()
	that.printf("%s", prompt)

	for {
		select {
		case <-ctx.Done():
			log.Info("context canceled, leaving console")
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
				default:
				}
				return nil
			}

			if quit := that.HandleLine(line); quit {
				log.Info("user quit")
				return nil
			}
			that.printf("%s", prompt)
		}
	}
}

// HandleLine applies one input line and prints the result. It reports whether the user
// asked to quit.
func (that *Server) HandleLine(line string) bool {
	log := that.logger.With("method", "HandleLine")

	cmd, err := parseCommand(line)
	if err != nil {
		that.printf("%s\n", err)
		return false
	}

	switch cmd.kind {
	case commandQuit:
		return true
	case commandRestart:
		that.manager.Restart()
		that.render()
		return false
	}

	if that.manager.Status().IsFinished() {
		that.printf("the game is over, press r to restart\n")
		return false
	}

	outcome, err := that.manager.Play(cmd.row, cmd.col)
	switch {
	case errors.Is(err, apperror.ErrInvalidCoordinate):
		that.printf("rows and columns go from 1 to %d\n", entity.Size)
		return false
	case errors.Is(err, apperror.ErrCellOccupied):
		that.printf("that cell is taken\n")
		return false
	case err != nil:
		log.Error("failed to play", "error", err)
		that.printf("%s\n", err)
		return false
	}

	if outcome.Computer != nil {
		that.printf("computer plays %d %d\n", outcome.Computer.Row+1, outcome.Computer.Col+1)
	}
	that.render()

	return false
}

// parseCommand accepts "r", "q", or a 1-based "row col" pair separated by spaces or a
// comma.
func parseCommand(line string) (command, error) {
	line = strings.ToLower(strings.TrimSpace(line))

	switch line {
	case "q", "quit", "exit":
		return command{kind: commandQuit}, nil
	case "r", "restart":
		return command{kind: commandRestart}, nil
	}

	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return command{}, ErrInvalidInput
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return command{}, fmt.Errorf("%w: %q", ErrInvalidInput, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return command{}, fmt.Errorf("%w: %q", ErrInvalidInput, fields[1])
	}

	return command{kind: commandMove, row: row - 1, col: col - 1}, nil
}

func (that *Server) printf(format string, args ...any) {
	// a broken output leaves nothing to report to
	_, _ = fmt.Fprintf(that.output, format, args...)
}
