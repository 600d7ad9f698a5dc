package term

import (
	"context"
	"io"
	"log"
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pong/internal/application/session"
	"github.com/younwookim/pong/internal/application/state"
	"github.com/younwookim/pong/internal/infrastructure/config"
	"github.com/younwookim/pong/internal/render"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 22)
	t.Cleanup(screen.Fini)
	return screen
}

func cellBackground(screen tcell.Screen, col, row int) tcell.Color {
	_, _, style, _ := screen.GetContent(col, row)
	_, bg, _ := style.Decompose()
	return bg
}

func rowText(screen tcell.Screen, row, from, to int) string {
	var out []rune
	for col := from; col < to; col++ {
		ch, _, _, _ := screen.GetContent(col, row)
		out = append(out, ch)
	}
	return string(out)
}

func TestRenderer_FillRect(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, 16, 32)
	white := tcell.FromImageColor(render.ColorWhite)

	r.Clear(render.ColorBlack)
	r.FillRect(64, 296, 32, 128, render.ColorWhite)

	// Columns 4-5, rows 9-13
	assert.Equal(t, white, cellBackground(screen, 4, 9))
	assert.Equal(t, white, cellBackground(screen, 5, 13))
	assert.NotEqual(t, white, cellBackground(screen, 6, 9))
	assert.NotEqual(t, white, cellBackground(screen, 4, 8))
	assert.NotEqual(t, white, cellBackground(screen, 4, 14))
}

func TestRenderer_FillRectClipped(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, 16, 32)

	assert.NotPanics(t, func() {
		r.FillRect(-100, -100, 5000, 5000, render.ColorMagenta)
		r.FillRect(-500, 10, 32, 32, render.ColorMagenta)
	})
	assert.Equal(t, tcell.FromImageColor(render.ColorMagenta), cellBackground(screen, 79, 21))
}

func TestRenderer_Text(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, 16, 32)
	orange := tcell.FromImageColor(render.ColorOrange)

	r.Clear(render.ColorBlack)
	r.FillRect(426, 199, 427, 100, render.ColorOrange)
	r.Text("Play", 640, 219, 80, render.ColorBlack, render.AlignCenter)
	r.Text("left", 0, 0, 10, render.ColorWhite, render.AlignLeft)

	assert.Equal(t, "Play", rowText(screen, 6, 38, 42))
	assert.Equal(t, orange, cellBackground(screen, 38, 6), "text keeps the button background")
	assert.Equal(t, "left", rowText(screen, 0, 0, 4))

	assert.NotPanics(t, func() {
		r.Text("off screen", 640, 5000, 10, render.ColorWhite, render.AlignCenter)
		r.Text("clipped", -40, 0, 10, render.ColorWhite, render.AlignLeft)
	})
}

func TestInput_KeysHeldForHoldFrames(t *testing.T) {
	in := NewInput(3, 16, 32)

	in.Handle(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	for i := 0; i < 3; i++ {
		s := in.Snapshot()
		assert.True(t, s.PlayerUp, "frame %d", i)
		assert.False(t, s.PlayerDown)
	}
	assert.False(t, in.Snapshot().PlayerUp)
}

func TestInput_OppositeKeyReleasesDirection(t *testing.T) {
	in := NewInput(5, 16, 32)

	in.Handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	in.Handle(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	s := in.Snapshot()

	assert.False(t, s.EnemyUp)
	assert.True(t, s.EnemyDown)
	assert.False(t, s.PlayerUp)
	assert.False(t, s.PlayerDown)
}

func TestInput_EscapeIsOneShot(t *testing.T) {
	in := NewInput(5, 16, 32)

	in.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))

	assert.True(t, in.Snapshot().Escape)
	assert.False(t, in.Snapshot().Escape)
}

func TestInput_PointerRelease(t *testing.T) {
	in := NewInput(5, 16, 32)

	in.Handle(tcell.NewEventMouse(40, 7, tcell.Button1, tcell.ModNone))
	s := in.Snapshot()
	assert.False(t, s.PointerReleased, "press is not a release")

	in.Handle(tcell.NewEventMouse(40, 7, tcell.ButtonNone, tcell.ModNone))
	s = in.Snapshot()
	assert.True(t, s.PointerReleased)
	assert.Equal(t, 648.0, s.PointerX)
	assert.Equal(t, 240.0, s.PointerY)

	assert.False(t, in.Snapshot().PointerReleased)
}

func newTestHost(t *testing.T) (*Host, *session.Session, tcell.SimulationScreen) {
	t.Helper()
	cfg, err := config.NewLoader("../../../cmd/pong/configs").Load()
	require.NoError(t, err)

	screen := newTestScreen(t)
	sess := session.New(cfg, rand.New(rand.NewSource(1)), session.WithLogger(log.New(io.Discard, "", 0)))
	return NewHost(screen, sess, cfg), sess, screen
}

func TestHost_Frame(t *testing.T) {
	h, sess, screen := newTestHost(t)

	quit, err := h.Frame()
	require.NoError(t, err)
	require.False(t, quit)
	assert.Equal(t, "Play", rowText(screen, 6, 38, 42))

	h.input.Handle(tcell.NewEventMouse(40, 7, tcell.Button1, tcell.ModNone))
	h.input.Handle(tcell.NewEventMouse(40, 7, tcell.ButtonNone, tcell.ModNone))
	quit, err = h.Frame()
	require.NoError(t, err)
	require.False(t, quit)
	assert.Equal(t, state.StateGame, sess.State())

	h.input.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	quit, err = h.Frame()
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestHost_RunStopsOnEscape(t *testing.T) {
	h, _, screen := newTestHost(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	err := h.Run(ctx)
	assert.NoError(t, err)
}

func TestHost_RunStopsOnCancel(t *testing.T) {
	h, _, _ := newTestHost(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
