package render

import "howitzer/vmath"

// Viewport converts field coordinates in meters to terminal cells.
// The scale is display-only configuration, set once at startup; the
// physics core never sees it. Terminal rows grow downward, so the y
// axis is flipped here.
type Viewport struct {
	cols, rows    int
	metersPerColX float64
	metersPerRowY float64
	topMargin     int // rows reserved for the status bar
}

// NewViewport builds a viewport for a terminal of cols×rows cells
// showing a field of fieldWidth×fieldHeight meters, with topMargin rows
// reserved at the top.
func NewViewport(cols, rows int, fieldWidth, fieldHeight float64, topMargin int) Viewport {
	usableRows := rows - topMargin
	if usableRows < 1 {
		usableRows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return Viewport{
		cols:          cols,
		rows:          rows,
		metersPerColX: fieldWidth / float64(cols),
		metersPerRowY: fieldHeight / float64(usableRows),
		topMargin:     topMargin,
	}
}

// Cell maps a field position to a terminal cell. ok is false when the
// position is outside the visible field.
func (v Viewport) Cell(pos vmath.Position) (col, row int, ok bool) {
	col = int(pos.X / v.metersPerColX)
	row = v.rows - 1 - int(pos.Y/v.metersPerRowY)
	// int truncates toward zero, so negative X still lands in col 0
	ok = pos.X >= 0 && col < v.cols && row >= v.topMargin && row < v.rows
	return col, row, ok
}

// ColumnX returns the horizontal field coordinate (meters) at the
// center of a terminal column.
func (v Viewport) ColumnX(col int) float64 {
	return (float64(col) + 0.5) * v.metersPerColX
}

// GroundRow returns the terminal row for a ground elevation in meters.
// Rows above the visible band clamp to the margin.
func (v Viewport) GroundRow(elevation float64) int {
	row := v.rows - 1 - int(elevation/v.metersPerRowY)
	if row < v.topMargin {
		row = v.topMargin
	}
	if row > v.rows-1 {
		row = v.rows - 1
	}
	return row
}

// Size returns the viewport dimensions in cells.
func (v Viewport) Size() (cols, rows int) { return v.cols, v.rows }
