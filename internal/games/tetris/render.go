package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	sim "github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Visual characters for rendering
const (
	BlockChar = '█'
	EmptyChar = '·'
)

const (
	cellW = 2  // terminal columns per arena cell
	hudW  = 22 // width of the side panel
	gap   = 2  // columns between well and panel
)

// Controls lists the key help shown beside the well.
var Controls = []string{
	"←/→ h/l  move",
	"↓ j      drop",
	"q x ↑    rotate cw",
	"w z      rotate ccw",
	"p        pause",
	"r        restart",
	"esc      menu",
}

// wellSize returns the bordered well dimensions in screen cells.
func (g *Game) wellSize() (w, h int) {
	return g.rules.Width*cellW + 2, g.rules.Height + 2
}

// minScreen returns the smallest screen that fits the well and the panel.
func (g *Game) minScreen() (w, h int) {
	ww, wh := g.wellSize()
	return ww + gap + hudW, wh
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		minW, minH := g.minScreen()
		g.renderOverlay(dst, core.NewRect(0, 0, dst.Width(), dst.Height()),
			"Window too small", fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	ww, wh := g.wellSize()
	minW, _ := g.minScreen()
	area := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(minW, wh)
	well := core.NewRect(area.X, area.Y, ww, wh)

	snap := g.engine.Snapshot()
	g.renderWell(dst, well, snap)
	g.renderHUD(dst, well.Right()+gap, well.Y, snap)

	if g.paused {
		g.renderOverlay(dst, well, "PAUSED", "Press P to resume")
	}
}

func (g *Game) renderWell(dst *core.Screen, well core.Rect, snap sim.Snapshot) {
	dst.DrawBox(well, core.ColorGray)

	for y := range snap.Height {
		for x := range snap.Width {
			sx := well.X + 1 + x*cellW
			sy := well.Y + 1 + y
			v := snap.CellAt(x, y)
			if v == 0 {
				dst.SetColored(sx, sy, EmptyChar, core.ColorGray)
				continue
			}
			color := core.ColorByName(sim.ColorName(v))
			for i := range cellW {
				dst.SetColored(sx+i, sy, BlockChar, color)
			}
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen, x, y int, snap sim.Snapshot) {
	dst.DrawTextColored(x, y, g.variant.Title, core.ColorCyan)

	lines := []string{
		fmt.Sprintf("Score   %d", snap.Score),
		fmt.Sprintf("Lines   %d", snap.Lines),
		fmt.Sprintf("Pieces  %d", snap.Pieces),
		fmt.Sprintf("Wipes   %d", snap.Wipes),
		fmt.Sprintf("Gravity %dms", g.rules.DropInterval.Milliseconds()),
	}
	for i, l := range lines {
		dst.DrawText(x, y+2+i, l)
	}

	row := y + 2 + len(lines)
	if g.lastClear.Rows > 0 {
		dst.DrawTextColored(x, row, fmt.Sprintf("+%d (%d rows)", g.lastClear.Points, g.lastClear.Rows), core.ColorYellow)
	}

	row += 2
	for i, c := range Controls {
		dst.DrawTextColored(x, row+i, c, core.ColorGray)
	}
}

// renderOverlay draws a two-line message box centered in area.
func (g *Game) renderOverlay(dst *core.Screen, area core.Rect, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := area.Centered(maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextColored(box.X+(box.W-len([]rune(line1)))/2, box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawText(box.X+(box.W-len([]rune(line2)))/2, box.Y+3, line2)
}
