package screen

import "github.com/rocketscienceinc/tictactoe-unbeatable/internal/entity"

// Grid geometry in terminal cells. Each board cell is cellWidth x cellHeight with a one
// character grid line between cells.
const (
	originX    = 2
	originY    = 1
	cellWidth  = 7
	cellHeight = 3

	gridWidth  = entity.Size*cellWidth + entity.Size - 1
	gridHeight = entity.Size*cellHeight + entity.Size - 1

	messageY = originY + gridHeight + 1
	helpY    = messageY + 1
)

// CellAt translates a screen position into a board cell. Positions on grid lines or
// outside the grid report ok == false.
func CellAt(x, y int) (row, col int, ok bool) {
	relX, relY := x-originX, y-originY
	if relX < 0 || relY < 0 || relX >= gridWidth || relY >= gridHeight {
		return 0, 0, false
	}

	if relX%(cellWidth+1) == cellWidth || relY%(cellHeight+1) == cellHeight {
		return 0, 0, false
	}

	return relY / (cellHeight + 1), relX / (cellWidth + 1), true
}

// cellCenter is the screen position where the mark of (row, col) is drawn.
func cellCenter(row, col int) (x, y int) {
	return originX + col*(cellWidth+1) + cellWidth/2, originY + row*(cellHeight+1) + cellHeight/2
}
