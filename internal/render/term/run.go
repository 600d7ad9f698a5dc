package term

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/pong/internal/application/session"
	"github.com/younwookim/pong/internal/infrastructure/config"
)

// Host runs a session on a tcell screen
type Host struct {
	screen   tcell.Screen
	session  *session.Session
	renderer *Renderer
	input    *Input
	dt       float64
}

// NewHost creates a host. The screen must already be initialized.
func NewHost(screen tcell.Screen, sess *session.Session, cfg *config.Config) *Host {
	tc := cfg.Terminal
	screen.EnableMouse()
	return &Host{
		screen:   screen,
		session:  sess,
		renderer: NewRenderer(screen, tc.CellWidth, tc.CellHeight),
		input:    NewInput(tc.HoldFrames, tc.CellWidth, tc.CellHeight),
		dt:       cfg.DT(),
	}
}

// Run polls events and steps the session at the configured framerate until
// the session asks to quit or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Duration(h.dt * float64(time.Second)))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			h.Handle(ev)

		case <-ticker.C:
			quit, err := h.Frame()
			if err != nil || quit {
				return err
			}
		}
	}
}

// Handle feeds one tcell event to the host. Resizes repaint the screen;
// everything else goes to the input collector for the next frame.
func (h *Host) Handle(ev tcell.Event) {
	if _, ok := ev.(*tcell.EventResize); ok {
		h.screen.Sync()
		return
	}
	h.input.Handle(ev)
}

// Frame runs one update and draw. It reports quit when the session asked to
// exit.
func (h *Host) Frame() (quit bool, err error) {
	if err := h.session.Update(h.input.Snapshot(), h.dt); err != nil {
		if errors.Is(err, session.ErrQuit) {
			return true, nil
		}
		return false, err
	}

	h.session.Draw(h.renderer)
	h.screen.Show()
	return false, nil
}
