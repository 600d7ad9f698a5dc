package entity

import (
	"fmt"
	"strings"
)

// ButtonAction is what a menu button does when released on
type ButtonAction int

const (
	ActionPlay ButtonAction = iota
	ActionQuit
)

// String returns the string representation of the action
func (a ButtonAction) String() string {
	switch a {
	case ActionPlay:
		return "play"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// UnmarshalText parses "play" or "quit" (case-insensitive).
// Used by both the JSON and TOML config decoders.
func (a *ButtonAction) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "play":
		*a = ActionPlay
	case "quit":
		*a = ActionQuit
	default:
		return fmt.Errorf("unknown button action %q", text)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (a ButtonAction) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// GuiButton is a static menu button
type GuiButton struct {
	Rect
	Label  string
	Action ButtonAction
}

// ButtonAt returns the first button containing the point
func ButtonAt(buttons []GuiButton, px, py float64) (GuiButton, bool) {
	for _, b := range buttons {
		if b.Contains(px, py) {
			return b, true
		}
	}
	return GuiButton{}, false
}
