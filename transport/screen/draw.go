package screen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-unbeatable/internal/entity"
)

var (
	styleGrid     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHuman    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleComputer = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleMessage  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHelp     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Draw renders the grid, the marks and the message bar, then shows the frame.
func (that *Server) Draw() {
	that.drawLines()
	that.drawFigures()

	clearRow(that.screen, messageY)
	drawText(that.screen, originX, messageY, styleMessage, that.manager.Message())
	drawText(that.screen, originX, helpY, styleHelp, helpText)

	that.screen.Show()
}

func (that *Server) drawLines() {
	for y := originY; y < originY+gridHeight; y++ {
		onRowLine := (y-originY)%(cellHeight+1) == cellHeight
		for x := originX; x < originX+gridWidth; x++ {
			onColLine := (x-originX)%(cellWidth+1) == cellWidth

			switch {
			case onRowLine && onColLine:
				that.screen.SetContent(x, y, tcell.RunePlus, nil, styleGrid)
			case onRowLine:
				that.screen.SetContent(x, y, tcell.RuneHLine, nil, styleGrid)
			case onColLine:
				that.screen.SetContent(x, y, tcell.RuneVLine, nil, styleGrid)
			}
		}
	}
}

func (that *Server) drawFigures() {
	for row := 0; row < entity.Size; row++ {
		for col := 0; col < entity.Size; col++ {
			x, y := cellCenter(row, col)

			mark, err := that.manager.MarkAt(row, col)
			if err != nil {
				continue
			}

			switch mark {
			case entity.Human:
				that.screen.SetContent(x, y, that.humanSymbol, nil, styleHuman)
			case entity.Computer:
				that.screen.SetContent(x, y, that.computerSymbol, nil, styleComputer)
			default:
				that.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
			}
		}
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func clearRow(screen tcell.Screen, y int) {
	width, _ := screen.Size()
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}
