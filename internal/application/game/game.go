// Package game provides the ebiten frame loop host for a Pong session.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/pong/internal/application/session"
	"github.com/younwookim/pong/internal/application/system"
	ebitenrender "github.com/younwookim/pong/internal/render/ebiten"
)

// InputFunc returns the input snapshot for the current frame
type InputFunc func() system.InputState

// Game implements ebiten.Game and drives a session
type Game struct {
	session  *session.Session
	renderer *ebitenrender.Renderer
	input    InputFunc
	screenW  int
	screenH  int
	dt       float64
}

// New creates a new Game for the session.
// A nil renderer makes Draw a no-op, which headless tests rely on.
func New(sess *session.Session, renderer *ebitenrender.Renderer, screenW, screenH int) *Game {
	return &Game{
		session:  sess,
		renderer: renderer,
		input:    PollInput,
		screenW:  screenW,
		screenH:  screenH,
		dt:       1.0 / 60.0, // Default to 60 FPS
	}
}

// Update advances the session by one frame.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	err := g.session.Update(g.input(), g.dt)
	if errors.Is(err, session.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// Draw renders the session.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.renderer == nil {
		return
	}
	g.session.Draw(g.renderer.Target(screen))
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetInput replaces the input source
func (g *Game) SetInput(fn InputFunc) {
	g.input = fn
}

// PollInput reads the keyboard and mouse through ebiten.
// Player uses W/S, enemy uses the arrow keys.
func PollInput() system.InputState {
	mx, my := ebiten.CursorPosition()
	return system.InputState{
		PlayerUp:        ebiten.IsKeyPressed(ebiten.KeyW),
		PlayerDown:      ebiten.IsKeyPressed(ebiten.KeyS),
		EnemyUp:         ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		EnemyDown:       ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Escape:          inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		PointerX:        float64(mx),
		PointerY:        float64(my),
		PointerReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}
