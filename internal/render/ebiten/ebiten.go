// Package ebiten implements render.Renderer on top of an ebiten image.
package ebiten

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/younwookim/pong/internal/render"
)

// Renderer draws onto the ebiten image set with Target
type Renderer struct {
	dst  *ebiten.Image
	font *text.GoTextFaceSource
}

// New creates a renderer using the Go Regular font
func New() (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &Renderer{font: src}, nil
}

// Target sets the image the next draw calls go to
func (r *Renderer) Target(dst *ebiten.Image) *Renderer {
	r.dst = dst
	return r
}

// Clear fills the target with clr
func (r *Renderer) Clear(clr color.Color) {
	r.dst.Fill(clr)
}

// FillRect draws a filled rectangle
func (r *Renderer) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(r.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// Text draws str with its top edge at y
func (r *Renderer) Text(str string, x, y, size float64, clr color.Color, align render.Align) {
	face := &text.GoTextFace{Source: r.font, Size: size}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	if align == render.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}

	text.Draw(r.dst, str, face, op)
}

var _ render.Renderer = (*Renderer)(nil)
