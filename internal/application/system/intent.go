package system

import "github.com/younwookim/pong/internal/domain/entity"

// Direction is a vertical paddle movement direction
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = -1 // toward y = 0
	DirDown Direction = 1
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	default:
		return "None"
	}
}

// MoveIntent represents a paddle's movement intention for one frame
type MoveIntent struct {
	Role entity.Role
	Dir  Direction
}
