package config

import (
	"errors"
	"fmt"

	"github.com/younwookim/pong/internal/domain/entity"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings
var ErrInvalidConfig = errors.New("invalid config")

// Config is the root config for pong.json
type Config struct {
	Display    DisplayConfig    `json:"display" toml:"display"`
	Paddle     PaddleConfig     `json:"paddle" toml:"paddle"`
	Ball       BallConfig       `json:"ball" toml:"ball"`
	Deflection DeflectionConfig `json:"deflection" toml:"deflection"`
	Menu       MenuConfig       `json:"menu" toml:"menu"`
	Terminal   TerminalConfig   `json:"terminal" toml:"terminal"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth" toml:"screenWidth"`
	ScreenHeight int    `json:"screenHeight" toml:"screenHeight"`
	Framerate    int    `json:"framerate" toml:"framerate"`
	Title        string `json:"title" toml:"title"`
}

type PaddleConfig struct {
	Width        float64 `json:"width" toml:"width"`
	Height       float64 `json:"height" toml:"height"`
	DistFromEdge float64 `json:"distFromEdge" toml:"distFromEdge"`
	Speed        float64 `json:"speed" toml:"speed"` // pixels per second
}

type BallConfig struct {
	Size    float64 `json:"size" toml:"size"`
	StartVX float64 `json:"startVX" toml:"startVX"`
	StartVY float64 `json:"startVY" toml:"startVY"`
}

// DeflectionConfig holds the per-paddle deflection scale.
// After a hit, VY = (ballCenterY - paddleCenterY) * rand[0,1) * scale.
type DeflectionConfig struct {
	Player float64 `json:"player" toml:"player"`
	Enemy  float64 `json:"enemy" toml:"enemy"`
}

// MenuConfig lays out the menu. Buttons span the middle third of the screen.
type MenuConfig struct {
	TitleText    string         `json:"titleText" toml:"titleText"`
	GameOverText string         `json:"gameOverText" toml:"gameOverText"`
	ButtonHeight float64        `json:"buttonHeight" toml:"buttonHeight"`
	Buttons      []ButtonConfig `json:"buttons" toml:"buttons"`
}

type ButtonConfig struct {
	Label  string              `json:"label" toml:"label"`
	Action entity.ButtonAction `json:"action" toml:"action"`
	Y      float64             `json:"y" toml:"y"`
}

// TerminalConfig configures the tcell front end
type TerminalConfig struct {
	CellWidth  float64 `json:"cellWidth" toml:"cellWidth"`   // logical pixels per column
	CellHeight float64 `json:"cellHeight" toml:"cellHeight"` // logical pixels per row
	HoldFrames int     `json:"holdFrames" toml:"holdFrames"` // frames a key stays held after its last event
}

// ScreenSize returns the logical screen size as floats
func (c *Config) ScreenSize() (w, h float64) {
	return float64(c.Display.ScreenWidth), float64(c.Display.ScreenHeight)
}

// DT returns the fixed frame delta in seconds
func (c *Config) DT() float64 {
	return 1.0 / float64(c.Display.Framerate)
}

// Validate checks settings the game loop relies on
func (c *Config) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.Display.ScreenWidth, c.Display.ScreenHeight)
	case c.Display.Framerate <= 0:
		return fmt.Errorf("%w: framerate %d", ErrInvalidConfig, c.Display.Framerate)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle size %gx%g", ErrInvalidConfig, c.Paddle.Width, c.Paddle.Height)
	case c.Paddle.Height > float64(c.Display.ScreenHeight):
		return fmt.Errorf("%w: paddle height %g exceeds screen height", ErrInvalidConfig, c.Paddle.Height)
	case c.Paddle.Speed < 0:
		return fmt.Errorf("%w: paddle speed %g", ErrInvalidConfig, c.Paddle.Speed)
	case c.Ball.Size <= 0:
		return fmt.Errorf("%w: ball size %g", ErrInvalidConfig, c.Ball.Size)
	case c.Deflection.Player < 0 || c.Deflection.Enemy < 0:
		return fmt.Errorf("%w: deflection %g/%g", ErrInvalidConfig, c.Deflection.Player, c.Deflection.Enemy)
	case c.Menu.ButtonHeight <= 0:
		return fmt.Errorf("%w: button height %g", ErrInvalidConfig, c.Menu.ButtonHeight)
	case c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0:
		return fmt.Errorf("%w: terminal cell %gx%g", ErrInvalidConfig, c.Terminal.CellWidth, c.Terminal.CellHeight)
	case c.Terminal.HoldFrames <= 0:
		return fmt.Errorf("%w: terminal hold frames %d", ErrInvalidConfig, c.Terminal.HoldFrames)
	}

	seen := make(map[entity.ButtonAction]bool)
	for _, b := range c.Menu.Buttons {
		if seen[b.Action] {
			return fmt.Errorf("%w: duplicate %s button", ErrInvalidConfig, b.Action)
		}
		seen[b.Action] = true
	}
	if !seen[entity.ActionPlay] {
		return fmt.Errorf("%w: menu has no play button", ErrInvalidConfig)
	}
	return nil
}

// MenuButtons builds the menu buttons in screen coordinates
func (c *Config) MenuButtons() []entity.GuiButton {
	w, _ := c.ScreenSize()
	buttons := make([]entity.GuiButton, 0, len(c.Menu.Buttons))
	for _, b := range c.Menu.Buttons {
		buttons = append(buttons, entity.GuiButton{
			Rect: entity.Rect{
				X: w / 3,
				Y: b.Y,
				W: w / 3,
				H: c.Menu.ButtonHeight,
			},
			Label:  b.Label,
			Action: b.Action,
		})
	}
	return buttons
}
