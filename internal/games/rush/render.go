package rush

import (
	"fmt"
	"math"

	"github.com/road-rush/road-rush/internal/core"
)

// Visual characters for rendering
const (
	CarChar     = '█'
	BorderChar  = '│'
	DashChar    = '┆'
	HUDRuleChar = '─'
)

const playerColor = core.ColorBrightGreen

// Minimum terminal size for a playable view.
const (
	minScreenW = 40
	minScreenH = 14
)

// hudRows is the number of rows reserved above the road viewport.
const hudRows = 2

// Render draws the current state to the screen. It works exclusively from
// a snapshot, keeping the presentation layer read-only with respect to the
// simulation.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	snap := g.Snapshot()
	view := newViewport(dst, snap)

	renderHUD(dst, snap)
	view.drawRoad(dst, snap)

	for _, o := range snap.Obstacles {
		view.drawBox(dst, o.Box(), CarChar, o.Color)
	}
	view.drawBox(dst, snap.Player, CarChar, playerColor)

	switch {
	case !snap.Running:
		subtitle := fmt.Sprintf("Distance: %d  |  Press R to restart", snap.DistanceDisplay)
		drawCenteredBox(dst, "CRASHED", subtitle)
	case snap.Paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// renderHUD draws the top status line and separator.
func renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Road Rush | Dist: %d  Speed: %d  Best: %d",
		snap.DistanceDisplay, snap.SpeedDisplay, snap.Best)
	if snap.Boost {
		hud += "  [BOOST]"
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), HUDRuleChar)
}

// viewport maps world coordinates onto screen cells. Terminal cells are
// roughly twice as tall as wide, so the horizontal scale gets a 2x
// correction to keep the road proportions sane.
type viewport struct {
	scaleX, scaleY float64
	offsetX        int
	cols, rows     int
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	rows := dst.Height() - hudRows
	scaleY := float64(rows) / snap.RoadHeight
	scaleX := scaleY * 2
	cols := int(snap.RoadWidth * scaleX)
	if cols > dst.Width()-2 {
		cols = dst.Width() - 2
		scaleX = float64(cols) / snap.RoadWidth
	}
	return viewport{
		scaleX:  scaleX,
		scaleY:  scaleY,
		offsetX: (dst.Width() - cols) / 2,
		cols:    cols,
		rows:    rows,
	}
}

// drawRoad draws the borders and the scrolling dashed lane dividers.
func (v viewport) drawRoad(dst *core.Screen, snap Snapshot) {
	for row := 0; row < v.rows; row++ {
		y := hudRows + row
		dst.SetCell(v.offsetX-1, y, BorderChar, core.ColorGray)
		dst.SetCell(v.offsetX+v.cols, y, BorderChar, core.ColorGray)
	}

	if len(snap.Lanes) < 2 || snap.DashPeriod <= 0 {
		return
	}
	laneW := snap.RoadWidth / float64(len(snap.Lanes))
	for i := 1; i < len(snap.Lanes); i++ {
		x := v.offsetX + int(laneW*float64(i)*v.scaleX)
		for row := 0; row < v.rows; row++ {
			worldY := float64(row) / v.scaleY
			// The dash pattern shifts down with the scroll offset.
			phase := math.Mod(worldY-snap.Scroll+snap.DashPeriod*1000, snap.DashPeriod)
			if phase < snap.DashPeriod*0.55 {
				dst.SetCell(x, hudRows+row, DashChar, core.ColorGray)
			}
		}
	}
}

// drawBox fills the screen cells covered by a world-space box, clipped to
// the viewport. A box always covers at least one cell so small or distant
// cars stay visible.
func (v viewport) drawBox(dst *core.Screen, b core.Box, r rune, c core.Color) {
	x0 := v.offsetX + int(b.Left()*v.scaleX)
	x1 := v.offsetX + int(b.Right()*v.scaleX)
	y0 := hudRows + int(b.Top()*v.scaleY)
	y1 := hudRows + int(b.Bottom()*v.scaleY)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		if y < hudRows || y >= hudRows+v.rows {
			continue
		}
		for x := x0; x < x1; x++ {
			dst.SetCell(x, y, r, c)
		}
	}
}

// drawCenteredBox draws a centered message box over the frame.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
