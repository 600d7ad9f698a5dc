package entity

// Paddle is a vertically moving bat.
// Its size is fixed by configuration, so only the position is stored here.
type Paddle struct {
	X, Y float64
	Role Role
}

// NewPaddle creates a paddle at the given pixel position
func NewPaddle(role Role, x, y float64) *Paddle {
	return &Paddle{X: x, Y: y, Role: role}
}

// Rect returns the paddle bounds for the given paddle size
func (p *Paddle) Rect(w, h float64) Rect {
	return Rect{X: p.X, Y: p.Y, W: w, H: h}
}

// ClampY keeps the paddle inside [0, screenH-h]
func (p *Paddle) ClampY(h, screenH float64) {
	if p.Y < 0 {
		p.Y = 0
	}
	if maxY := screenH - h; p.Y > maxY {
		p.Y = maxY
	}
}

// Ball is the square ball. Position is the top-left corner in pixels,
// velocity is in pixels per second.
type Ball struct {
	X, Y   float64
	VX, VY float64
}

// Rect returns the ball bounds for the given ball size
func (b *Ball) Rect(size float64) Rect {
	return Rect{X: b.X, Y: b.Y, W: size, H: size}
}

// Integrate advances the ball position by velocity * dt
func (b *Ball) Integrate(dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// Collides reports whether a paddle and the ball overlap
func Collides(p *Paddle, b *Ball, paddleW, paddleH, ballSize float64) bool {
	return p.Rect(paddleW, paddleH).Overlaps(b.Rect(ballSize))
}
