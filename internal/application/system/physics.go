package system

import (
	"github.com/younwookim/pong/internal/domain/entity"
	"github.com/younwookim/pong/internal/infrastructure/config"
)

// RandomSource yields uniform values in [0, 1).
// *rand.Rand satisfies it; tests inject fixed sequences.
type RandomSource interface {
	Float64() float64
}

// Court holds the bodies the physics step moves
type Court struct {
	Player *entity.Paddle
	Enemy  *entity.Paddle
	Ball   *entity.Ball
}

// StepResult reports what happened during one physics step
type StepResult struct {
	PlayerHit  bool
	EnemyHit   bool
	WallBounce bool
	Exited     bool // ball left the screen horizontally
}

// PhysicsSystem advances the ball and resolves collisions
type PhysicsSystem struct {
	config *config.Config
	rng    RandomSource
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.Config, rng RandomSource) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		rng:    rng,
	}
}

// Step runs one frame of ball physics. Paddles must already be moved.
//
// Order: player paddle, enemy paddle, top/bottom walls, side exit, then
// position integration. A side exit does not reflect; the caller ends the
// game.
func (s *PhysicsSystem) Step(c *Court, dt float64) StepResult {
	var res StepResult

	if s.collide(c.Player, c.Ball, s.config.Deflection.Player) {
		res.PlayerHit = true
	}
	if s.collide(c.Enemy, c.Ball, s.config.Deflection.Enemy) {
		res.EnemyHit = true
	}

	res.WallBounce = s.bounceWalls(c.Ball)
	res.Exited = s.exited(c.Ball)

	c.Ball.Integrate(dt)

	return res
}

// collide reflects the ball off a paddle.
// The new VY grows with the distance between the ball and paddle centers,
// scaled by a random factor in [0, scale).
func (s *PhysicsSystem) collide(p *entity.Paddle, b *entity.Ball, scale float64) bool {
	pw, ph := s.config.Paddle.Width, s.config.Paddle.Height
	size := s.config.Ball.Size
	if !entity.Collides(p, b, pw, ph, size) {
		return false
	}

	b.VX = -b.VX
	dist := b.Rect(size).CenterY() - p.Rect(pw, ph).CenterY()
	b.VY = dist * (s.rng.Float64() * scale)
	return true
}

// bounceWalls flips VY when the ball is past the top or bottom edge and still
// moving outward. A ball already heading back in is left alone so it cannot
// jitter on the wall.
func (s *PhysicsSystem) bounceWalls(b *entity.Ball) bool {
	_, h := s.config.ScreenSize()
	size := s.config.Ball.Size

	if (b.Y < 0 && b.VY < 0) || (b.Y+size > h && b.VY > 0) {
		b.VY = -b.VY
		return true
	}
	return false
}

func (s *PhysicsSystem) exited(b *entity.Ball) bool {
	w, _ := s.config.ScreenSize()
	return b.X < 0 || b.X+s.config.Ball.Size > w
}
