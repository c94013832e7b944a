// Package render draws the battlefield on a tcell screen: terrain
// silhouette, gun, shell and trail, plus the status bar. It reads
// simulator state and never mutates it.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"howitzer/constant"
	"howitzer/sim"
	"howitzer/vmath"
)

// Renderer owns the screen and the meters-to-cells viewport.
type Renderer struct {
	screen   tcell.Screen
	viewport Viewport
	fieldW   float64
	fieldH   float64
}

// New sizes a renderer to the current screen.
func New(screen tcell.Screen, fieldWidth, fieldHeight float64) *Renderer {
	r := &Renderer{screen: screen, fieldW: fieldWidth, fieldH: fieldHeight}
	r.Resize()
	return r
}

// Resize rebuilds the viewport after a terminal resize.
func (r *Renderer) Resize() {
	cols, rows := r.screen.Size()
	r.viewport = NewViewport(cols, rows, r.fieldW, r.fieldH, constant.StatusBarHeight)
}

// RenderFrame draws one complete frame and flips it to the terminal.
func (r *Renderer) RenderFrame(s *sim.Simulator) {
	r.screen.Clear()

	r.drawTerrain(s.Ground().ElevationAt)
	r.drawTarget(s.Target())
	r.drawHowitzer(s)
	r.drawTrail(s.Trail())
	r.drawShell(s)
	r.drawStatusBar(s)

	r.screen.Show()
}

// drawTerrain fills each column from the ground line down.
func (r *Renderer) drawTerrain(elevationAt func(float64) float64) {
	cols, rows := r.viewport.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for col := 0; col < cols; col++ {
		top := r.viewport.GroundRow(elevationAt(r.viewport.ColumnX(col)))
		r.screen.SetContent(col, top, '▀', nil, style)
		for row := top + 1; row < rows; row++ {
			r.screen.SetContent(col, row, '█', nil, style)
		}
	}
}

func (r *Renderer) drawTarget(target vmath.Position) {
	if col, row, ok := r.viewport.Cell(target); ok {
		style := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
		r.screen.SetContent(col, row, 'X', nil, style)
	}
}

// drawHowitzer picks a barrel glyph from the elevation angle.
func (r *Renderer) drawHowitzer(s *sim.Simulator) {
	gun := s.Gun()
	col, row, ok := r.viewport.Cell(gun.Position())
	if !ok {
		return
	}

	deg := gun.Elevation().Degrees()
	var barrel rune
	switch {
	case deg < 20:
		barrel = '|'
	case deg < 70:
		barrel = '/'
	default:
		barrel = '-'
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	r.screen.SetContent(col, row, 'Ω', nil, style)
	if row-1 >= constant.StatusBarHeight {
		r.screen.SetContent(col, row-1, barrel, nil, style)
	}
}

// drawTrail fades from white to grey, newest first.
func (r *Renderer) drawTrail(trail []vmath.Position) {
	for i, pos := range trail {
		col, row, ok := r.viewport.Cell(pos)
		if !ok {
			continue
		}
		shade := int32(255 - i*255/constant.TrailLength)
		color := tcell.NewRGBColor(shade, shade, shade)
		r.screen.SetContent(col, row, '·', nil, tcell.StyleDefault.Foreground(color))
	}
}

func (r *Renderer) drawShell(s *sim.Simulator) {
	if !s.IsFiring() {
		return
	}
	if col, row, ok := r.viewport.Cell(s.Shell().Position()); ok {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
		r.screen.SetContent(col, row, '●', nil, style)
	}
}

// drawStatusBar writes flight stats on the reserved top rows.
func (r *Renderer) drawStatusBar(s *sim.Simulator) {
	stats := s.Stats()
	line1 := fmt.Sprintf(" Flight time: %5.1fs   Angle: %4.1f°   Score: %d/%d (%.0f%%)",
		stats.Time, stats.ElevationDeg, stats.Score, stats.Shots, s.HitRate()*100)

	var line2 string
	switch {
	case stats.Firing:
		line2 = fmt.Sprintf(" Projectile in flight...  alt %.0f m  speed %.0f m/s",
			s.Shell().Altitude(), s.Shell().Speed())
	case stats.Shots > 0 && stats.Hit:
		line2 = fmt.Sprintf(" Target: HIT!  range %.0f m  apex %.0f m", stats.LastRange, stats.LastMaxAlt)
	case stats.Shots > 0:
		line2 = fmt.Sprintf(" Target: miss  range %.0f m  apex %.0f m", stats.LastRange, stats.LastMaxAlt)
	default:
		line2 = " ←/→ rotate  ↑/↓ trim  SPACE fire  n new game  q quit"
	}

	r.putLine(0, line1)
	r.putLine(1, line2)
}

func (r *Renderer) putLine(row int, text string) {
	cols, _ := r.viewport.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	col := 0
	for _, ch := range text {
		if col >= cols {
			break
		}
		r.screen.SetContent(col, row, ch, nil, style)
		col++
	}
}
