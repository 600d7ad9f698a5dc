// Package term runs Pong in a terminal through tcell.
//
// Logical screen pixels are mapped onto character cells, so a 1280x720
// court becomes 80x22 cells with the default 16x32 cell size.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/pong/internal/render"
)

// Renderer implements render.Renderer on a tcell screen
type Renderer struct {
	screen tcell.Screen
	cellW  float64
	cellH  float64
}

// NewRenderer creates a renderer with the given cell size in logical pixels
func NewRenderer(screen tcell.Screen, cellW, cellH float64) *Renderer {
	return &Renderer{
		screen: screen,
		cellW:  cellW,
		cellH:  cellH,
	}
}

// Clear fills every cell with the background color
func (r *Renderer) Clear(clr color.Color) {
	r.screen.Fill(' ', tcell.StyleDefault.Background(tcell.FromImageColor(clr)))
}

// FillRect paints every cell the rectangle touches
func (r *Renderer) FillRect(x, y, w, h float64, clr color.Color) {
	style := tcell.StyleDefault.Background(tcell.FromImageColor(clr))
	cols, rows := r.screen.Size()

	x0 := clampInt(int(math.Floor(x/r.cellW)), 0, cols)
	y0 := clampInt(int(math.Floor(y/r.cellH)), 0, rows)
	x1 := clampInt(int(math.Ceil((x+w)/r.cellW)), 0, cols)
	y1 := clampInt(int(math.Ceil((y+h)/r.cellH)), 0, rows)

	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// Text writes str on the row containing y. Terminals have one font size, so
// size is ignored. The existing cell background is kept.
func (r *Renderer) Text(str string, x, y, _ float64, clr color.Color, align render.Align) {
	runes := []rune(str)
	col := int(math.Floor(x / r.cellW))
	if align == render.AlignCenter {
		col -= len(runes) / 2
	}
	row := int(math.Floor(y / r.cellH))

	cols, rows := r.screen.Size()
	if row < 0 || row >= rows {
		return
	}

	fg := tcell.FromImageColor(clr)
	for i, ch := range runes {
		c := col + i
		if c < 0 || c >= cols {
			continue
		}
		_, _, style, _ := r.screen.GetContent(c, row)
		r.screen.SetContent(c, row, ch, nil, style.Foreground(fg))
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var _ render.Renderer = (*Renderer)(nil)
