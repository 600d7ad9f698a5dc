// Package render defines the drawing surface the game draws onto.
//
// The game only issues semantic draw requests (rectangles and text in
// logical screen pixels). Each front end implements Renderer for its own
// output: an ebiten window or a tcell terminal.
package render

import "image/color"

// Align is the horizontal text alignment relative to the anchor x
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Palette
var (
	ColorBlack   = color.RGBA{0, 0, 0, 255}
	ColorWhite   = color.RGBA{255, 255, 255, 255}
	ColorOrange  = color.RGBA{255, 165, 0, 255}
	ColorMagenta = color.RGBA{255, 0, 255, 255}
	ColorMaroon  = color.RGBA{128, 0, 0, 255}
)

// Renderer draws primitives for one frame.
// Coordinates are logical screen pixels with the origin at the top-left.
type Renderer interface {
	// Clear fills the whole frame with clr.
	Clear(clr color.Color)

	// FillRect draws a filled axis-aligned rectangle.
	FillRect(x, y, w, h float64, clr color.Color)

	// Text draws str with its top at y. size is the font size in pixels.
	Text(str string, x, y, size float64, clr color.Color, align Align)
}

// Discard is a Renderer that draws nothing. Used by headless runs.
var Discard Renderer = discard{}

type discard struct{}

func (discard) Clear(color.Color) {}

func (discard) FillRect(float64, float64, float64, float64, color.Color) {}

func (discard) Text(string, float64, float64, float64, color.Color, Align) {}
