package ebiten

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pong/internal/render"
)

func TestNew(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.NotNil(t, r.font)
	assert.Nil(t, r.dst, "no target until Target is called")
}

func TestRenderer_Target(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	img := ebiten.NewImage(320, 240)
	assert.Same(t, r, r.Target(img))
	assert.Same(t, img, r.dst)

	other := ebiten.NewImage(64, 64)
	r.Target(other)
	assert.Same(t, other, r.dst)
}

func TestRenderer_Draw(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	img := ebiten.NewImage(320, 240)
	r.Target(img)

	assert.NotPanics(t, func() {
		r.Clear(render.ColorBlack)
		r.FillRect(10, 20, 16, 64, render.ColorWhite)
		r.FillRect(150, 110, 16, 16, render.ColorOrange)
		r.Text("Pong", 160, 10, 24, render.ColorMagenta, render.AlignCenter)
		r.Text("Play", 20, 200, 16, render.ColorWhite, render.AlignLeft)
		r.Text("", 0, 0, 12, render.ColorMaroon, render.AlignLeft)
	})
}
