package entity

// Role identifies which side a paddle plays on
type Role int

const (
	RolePlayer Role = iota
	RoleEnemy
)

// String returns the string representation of the role
func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "Player"
	case RoleEnemy:
		return "Enemy"
	default:
		return "Unknown"
	}
}

// Rect is an axis-aligned rectangle in screen pixels.
// X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Overlaps reports whether two rectangles overlap on both axes.
// Rectangles that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X+r.W > o.X &&
		r.X < o.X+o.W &&
		r.Y+r.H > o.Y &&
		r.Y < o.Y+o.H
}

// Contains reports whether the point lies inside the rectangle, edges included
func (r Rect) Contains(px, py float64) bool {
	return r.X <= px && px <= r.X+r.W &&
		r.Y <= py && py <= r.Y+r.H
}

// CenterY returns the vertical center of the rectangle
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}
