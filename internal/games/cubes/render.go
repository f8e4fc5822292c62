package cubes

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-cubes/internal/core"
	"github.com/vovakirdan/tui-cubes/internal/games/cubes/sim"
)

const hudHeight = 3

// tileLayout is the terminal footprint of one board cell.
type tileLayout struct {
	w, h  int
	boxed bool // Draw a box per tile; compact tiles are a bracketed label
}

// Layouts tried from largest to smallest.
var layouts = []tileLayout{
	{w: 6, h: 3, boxed: true},
	{w: 4, h: 1},
}

// levelColors cycles through the palette by tile level.
var levelColors = []core.Color{
	core.ColorCyan,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorOrange,
	core.ColorRed,
	core.ColorMagenta,
	core.ColorBrightBlue,
	core.ColorBrightWhite,
}

// LevelColor returns the color a tile of the given level is drawn with.
func LevelColor(level int) core.Color {
	if level < 0 {
		return core.ColorGray
	}
	return levelColors[level%len(levelColors)]
}

// Render draws the HUD, the board frame and every live tile visual at its
// current position.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	size := g.cfg.Board.Size
	layout, ok := chooseLayout(size, dst.Width(), dst.Height())
	if !ok {
		renderTooSmall(dst)
		return
	}

	boardW := size*layout.w + 2
	boardH := size*layout.h + 2
	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	board := core.NewRect(boardX, boardY, boardW, boardH)
	dst.DrawBox(board, core.ColorGray)

	spacing := g.cfg.Board.Spacing
	for _, v := range g.table.Visuals() {
		x := boardX + 1 + worldToCells(v.Pos.X, spacing, layout.w)
		y := boardY + 1 + worldToCells(v.Pos.Y, spacing, layout.h)
		if !board.Contains(x, y) {
			continue
		}
		drawTile(dst, layout, x, y, v.Level)
	}

	g.renderOverlays(dst, boardX+boardW/2, boardY+boardH/2)
}

// chooseLayout picks the largest tile layout that fits the screen.
func chooseLayout(size, screenW, screenH int) (tileLayout, bool) {
	for _, l := range layouts {
		if size*l.w+2 <= screenW && size*l.h+2+hudHeight <= screenH {
			return l, true
		}
	}
	return tileLayout{}, false
}

// worldToCells converts a world coordinate to a terminal offset.
func worldToCells(pos, spacing float64, cells int) int {
	return int(math.Round(pos / spacing * float64(cells)))
}

func drawTile(dst *core.Screen, l tileLayout, x, y, level int) {
	c := LevelColor(level)
	label := strconv.Itoa(level)

	if !l.boxed {
		dst.DrawTextColored(x, y, "["+label+"]", c)
		return
	}

	r := core.NewRect(x, y, l.w, l.h)
	dst.DrawRect(core.NewRect(x+1, y+1, l.w-2, l.h-2), ' ', c)
	dst.DrawBox(r, c)
	dst.DrawTextColored(x+(l.w-len(label))/2, y+l.h/2, label, c)
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title and counters above the board.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	dst.DrawTextCentered(0, "CUBES")

	st := g.State()
	dst.DrawText(boardX, 1, fmt.Sprintf("Moves: %d", st.Moves))

	info := fmt.Sprintf("Merges: %d  Top: %s", st.Merges, levelLabel(st.MaxLevel))
	infoX := max(boardX+boardW-len(info), boardX)
	dst.DrawText(infoX, 1, info)

	if g.last.Phase == sim.PhaseBusy {
		dst.DrawTextColored(boardX, 2, "settling", core.ColorGray)
	}
}

func levelLabel(level int) string {
	if level < 0 {
		return "-"
	}
	return strconv.Itoa(level)
}

// renderOverlays draws pause and stuck messages over the board.
func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	switch {
	case g.paused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.stuck:
		drawOverlay(dst, centerX, centerY, "NO MOVES LEFT", fmt.Sprintf("Top level: %s", levelLabel(g.sim.MaxLevel())), "Press R to restart")
	}
}

// drawOverlay draws a boxed, centered block of lines.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
