package main

import (
	"bytes"
	"log"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pong/internal/application/state"
	"github.com/younwookim/pong/internal/render/term"
)

func TestNewTerminalSession_DoesNotLog(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })

	cfg := loadEmbeddedConfig(t)
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 22)
	t.Cleanup(screen.Fini)

	sess := newTerminalSession(cfg, 1)
	h := term.NewHost(screen, sess, cfg)

	// Click Play: cell (40, 7) is inside the button
	h.Handle(tcell.NewEventMouse(40, 7, tcell.Button1, tcell.ModNone))
	h.Handle(tcell.NewEventMouse(40, 7, tcell.ButtonNone, tcell.ModNone))
	quit, err := h.Frame()
	require.NoError(t, err)
	require.False(t, quit)
	require.Equal(t, state.StateGame, sess.State())

	h.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	quit, err = h.Frame()
	require.NoError(t, err)
	require.True(t, quit)

	assert.Empty(t, buf.String(), "nothing may be written over the terminal screen")
}
