package state

// GameState represents the current state of the game
type GameState int

const (
	StateMenu GameState = iota
	StateGame
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateGame:
		return "Game"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
