// Package session owns one game of Pong: the state machine, paddles, ball
// and menu. The host calls Update then Draw once per frame.
package session

import (
	"errors"
	"log"

	"github.com/younwookim/pong/internal/application/state"
	"github.com/younwookim/pong/internal/application/system"
	"github.com/younwookim/pong/internal/domain/entity"
	"github.com/younwookim/pong/internal/infrastructure/config"
	"github.com/younwookim/pong/internal/render"
)

// ErrQuit is returned by Update when the player asked to exit
var ErrQuit = errors.New("quit requested")

// Option configures a Session
type Option func(*Session)

// WithLogger sets the logger for state changes and exit requests
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// Session is the single owner of all mutable game state
type Session struct {
	config  *config.Config
	state   state.GameState
	court   system.Court
	buttons []entity.GuiButton

	inputSystem   *system.InputSystem
	physicsSystem *system.PhysicsSystem

	logger *log.Logger
	frames int // frames simulated in the current game
}

// New creates a session in the Menu state
func New(cfg *config.Config, rng system.RandomSource, opts ...Option) *Session {
	s := &Session{
		config: cfg,
		state:  state.StateMenu,
		court: system.Court{
			Player: entity.NewPaddle(entity.RolePlayer, 0, 0),
			Enemy:  entity.NewPaddle(entity.RoleEnemy, 0, 0),
			Ball:   &entity.Ball{},
		},
		buttons:       cfg.MenuButtons(),
		inputSystem:   system.NewInputSystem(cfg),
		physicsSystem: system.NewPhysicsSystem(cfg, rng),
		logger:        log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s
}

// State returns the active game state
func (s *Session) State() state.GameState {
	return s.state
}

// Court returns the paddles and ball
func (s *Session) Court() *system.Court {
	return &s.court
}

// Buttons returns a copy of the menu buttons
func (s *Session) Buttons() []entity.GuiButton {
	return append([]entity.GuiButton(nil), s.buttons...)
}

// Frames returns the number of frames simulated since the game started
func (s *Session) Frames() int {
	return s.frames
}

// Update advances the session by one frame.
// Returns ErrQuit when the player asked to exit.
func (s *Session) Update(in system.InputState, dt float64) error {
	switch s.state {
	case state.StateMenu:
		return s.updateMenu(in)
	case state.StateGame:
		return s.updateGame(in, dt)
	case state.StateGameOver:
		return s.updateGameOver(in)
	}
	return nil
}

func (s *Session) updateMenu(in system.InputState) error {
	if in.Escape {
		return s.quit()
	}
	if !in.PointerReleased {
		return nil
	}

	b, ok := entity.ButtonAt(s.buttons, in.PointerX, in.PointerY)
	if !ok {
		return nil
	}

	switch b.Action {
	case entity.ActionPlay:
		s.start()
	case entity.ActionQuit:
		return s.quit()
	}
	return nil
}

func (s *Session) updateGame(in system.InputState, dt float64) error {
	if in.Escape {
		return s.quit()
	}

	s.inputSystem.Update(in, s.court.Player, s.court.Enemy, dt)

	res := s.physicsSystem.Step(&s.court, dt)
	s.frames++

	if res.Exited {
		s.logger.Printf("Ball out at x=%.1f after %d frames", s.court.Ball.X, s.frames)
		s.setState(state.StateGameOver)
	}
	return nil
}

// updateGameOver waits for the exit command. Restarting is not supported.
func (s *Session) updateGameOver(in system.InputState) error {
	if in.Escape {
		return s.quit()
	}
	return nil
}

func (s *Session) start() {
	s.reset()
	s.setState(state.StateGame)
}

// reset puts the paddles and ball back at their starting positions
func (s *Session) reset() {
	w, h := s.config.ScreenSize()
	pc, bc := s.config.Paddle, s.config.Ball

	s.court.Player.X = pc.DistFromEdge
	s.court.Player.Y = h/2 - pc.Height/2
	s.court.Enemy.X = w - pc.DistFromEdge - pc.Width
	s.court.Enemy.Y = h/2 - pc.Height/2

	*s.court.Ball = entity.Ball{
		X:  w/2 - bc.Size/2,
		Y:  h/2 - bc.Size/2,
		VX: bc.StartVX,
		VY: bc.StartVY,
	}
	s.frames = 0
}

func (s *Session) setState(next state.GameState) {
	s.logger.Printf("State %s -> %s", s.state, next)
	s.state = next
}

func (s *Session) quit() error {
	s.logger.Printf("Exit requested from %s", s.state)
	return ErrQuit
}

// Draw renders the current state
func (s *Session) Draw(r render.Renderer) {
	switch s.state {
	case state.StateMenu:
		s.drawMenu(r)
	case state.StateGame:
		s.drawGame(r)
	case state.StateGameOver:
		s.drawGameOver(r)
	}
}

func (s *Session) drawMenu(r render.Renderer) {
	r.Clear(render.ColorBlack)

	for _, b := range s.buttons {
		r.FillRect(b.X, b.Y, b.W, b.H, render.ColorOrange)
		r.Text(b.Label, b.X+b.W/2, b.Y+b.H/10, b.H*0.8, render.ColorBlack, render.AlignCenter)
	}

	w, _ := s.config.ScreenSize()
	r.Text(s.config.Menu.TitleText, w/2, 50, 99, render.ColorOrange, render.AlignCenter)
}

func (s *Session) drawGame(r render.Renderer) {
	r.Clear(render.ColorBlack)

	pc := s.config.Paddle
	for _, p := range []*entity.Paddle{s.court.Player, s.court.Enemy} {
		r.FillRect(p.X, p.Y, pc.Width, pc.Height, render.ColorWhite)
	}

	b := s.court.Ball
	size := s.config.Ball.Size
	r.FillRect(b.X, b.Y, size, size, render.ColorMagenta)
}

func (s *Session) drawGameOver(r render.Renderer) {
	r.Clear(render.ColorBlack)

	w, _ := s.config.ScreenSize()
	r.Text(s.config.Menu.GameOverText, w/2, 250, 200, render.ColorMaroon, render.AlignCenter)
}
