package terminal

import (
	"waterbalance/internal/core/bottle"
	"waterbalance/internal/core/wave"
	"waterbalance/internal/ui/animation"
)

// CellKind classifies one character cell of the bottle area.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellGlass
	CellLiquid
)

// cellAspect is how many columns make up one row's worth of width.
const cellAspect = 2.0

// Grid is the bottle rendered into character cells.
type Grid struct {
	Columns int
	Rows    int
	Cells   [][]CellKind
}

// BottleColumns returns the width in cells of a bottle that is rows tall.
func BottleColumns(rows, maxColumns int) int {
	columns := int(float64(rows) * bottle.AspectRatio * cellAspect)
	if columns > maxColumns {
		columns = maxColumns
	}
	if columns < 0 {
		columns = 0
	}
	return columns
}

// Rasterize samples the bottle and liquid at the centre of each cell.
func Rasterize(frame animation.Frame, columns, rows int) Grid {
	grid := Grid{Columns: columns, Rows: rows, Cells: make([][]CellKind, rows)}
	width, height := float64(columns), float64(rows)
	silhouette := bottle.Fit(width, height)
	outline := wave.Generate(frame.Phase, frame.Percent, width, height)

	for row := 0; row < rows; row++ {
		grid.Cells[row] = make([]CellKind, columns)
		y := float64(row) + 0.5
		for column := 0; column < columns; column++ {
			x := float64(column) + 0.5
			if !silhouette.Contains(x, y) {
				continue
			}
			if y >= outline.SurfaceY(x) {
				grid.Cells[row][column] = CellLiquid
			} else {
				grid.Cells[row][column] = CellGlass
			}
		}
	}
	return grid
}

// Count returns how many cells are of kind.
func (grid Grid) Count(kind CellKind) int {
	count := 0
	for _, row := range grid.Cells {
		for _, cell := range row {
			if cell == kind {
				count++
			}
		}
	}
	return count
}
