package system

import (
	"github.com/younwookim/pong/internal/domain/entity"
	"github.com/younwookim/pong/internal/infrastructure/config"
)

// InputState is one frame's input snapshot.
// Every front end (window, terminal, replay) produces the same shape.
type InputState struct {
	PlayerUp   bool
	PlayerDown bool
	EnemyUp    bool
	EnemyDown  bool

	// Escape is true only on the frame the key was pressed
	Escape bool

	PointerX        float64
	PointerY        float64
	PointerReleased bool // left button released this frame
}

// InputSystem maps held keys to paddle movement
type InputSystem struct {
	paddleH float64
	speed   float64
	screenH float64
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.Config) *InputSystem {
	return &InputSystem{
		paddleH: cfg.Paddle.Height,
		speed:   cfg.Paddle.Speed,
		screenH: float64(cfg.Display.ScreenHeight),
	}
}

// Intent picks a direction for one paddle from its key pair.
// Up wins over down; a key pressing into a bound is ignored.
func (s *InputSystem) Intent(p *entity.Paddle, up, down bool) MoveIntent {
	intent := MoveIntent{Role: p.Role}
	if up && p.Y > 0 {
		intent.Dir = DirUp
	} else if down && p.Y+s.paddleH < s.screenH {
		intent.Dir = DirDown
	}
	return intent
}

// Intents returns the player and enemy intents for this frame
func (s *InputSystem) Intents(input InputState, player, enemy *entity.Paddle) [2]MoveIntent {
	return [2]MoveIntent{
		s.Intent(player, input.PlayerUp, input.PlayerDown),
		s.Intent(enemy, input.EnemyUp, input.EnemyDown),
	}
}

// Apply moves the paddle by speed*dt in the intent's direction and clamps it
// to the screen
func (s *InputSystem) Apply(p *entity.Paddle, intent MoveIntent, dt float64) {
	if intent.Dir == DirNone {
		return
	}
	p.Y += float64(intent.Dir) * s.speed * dt
	p.ClampY(s.paddleH, s.screenH)
}

// Update reads the input and moves both paddles
func (s *InputSystem) Update(input InputState, player, enemy *entity.Paddle, dt float64) {
	intents := s.Intents(input, player, enemy)
	s.Apply(player, intents[0], dt)
	s.Apply(enemy, intents[1], dt)
}
