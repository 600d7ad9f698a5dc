package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/pong/internal/application/system"
)

// heldKey indexes the four paddle keys
type heldKey int

const (
	keyPlayerUp heldKey = iota
	keyPlayerDown
	keyEnemyUp
	keyEnemyDown
	numHeldKeys
)

// Input turns tcell events into per-frame snapshots.
//
// Terminals report key presses (and auto-repeat) but never key releases, so a
// paddle key stays held for holdFrames frames after its most recent event.
type Input struct {
	holdFrames int
	cellW      float64
	cellH      float64

	held       [numHeldKeys]int // frames left
	escape     bool
	released   bool
	buttonDown bool
	pointerX   float64
	pointerY   float64
}

// NewInput creates an input collector
func NewInput(holdFrames int, cellW, cellH float64) *Input {
	return &Input{
		holdFrames: holdFrames,
		cellW:      cellW,
		cellH:      cellH,
	}
}

// Handle records one tcell event
func (in *Input) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		in.handleKey(ev)
	case *tcell.EventMouse:
		in.handleMouse(ev)
	}
}

func (in *Input) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.escape = true
	case tcell.KeyUp:
		in.press(keyEnemyUp, keyEnemyDown)
	case tcell.KeyDown:
		in.press(keyEnemyDown, keyEnemyUp)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			in.press(keyPlayerUp, keyPlayerDown)
		case 's', 'S':
			in.press(keyPlayerDown, keyPlayerUp)
		}
	}
}

// press holds k and drops its opposite, since a new direction means the
// other key was let go
func (in *Input) press(k, opposite heldKey) {
	in.held[k] = in.holdFrames
	in.held[opposite] = 0
}

func (in *Input) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	in.pointerX = (float64(col) + 0.5) * in.cellW
	in.pointerY = (float64(row) + 0.5) * in.cellH

	down := ev.Buttons()&tcell.Button1 != 0
	if in.buttonDown && !down {
		in.released = true
	}
	in.buttonDown = down
}

// Snapshot returns this frame's input and ages the held keys.
// One-shot events (escape, pointer release) are consumed.
func (in *Input) Snapshot() system.InputState {
	s := system.InputState{
		PlayerUp:        in.held[keyPlayerUp] > 0,
		PlayerDown:      in.held[keyPlayerDown] > 0,
		EnemyUp:         in.held[keyEnemyUp] > 0,
		EnemyDown:       in.held[keyEnemyDown] > 0,
		Escape:          in.escape,
		PointerX:        in.pointerX,
		PointerY:        in.pointerY,
		PointerReleased: in.released,
	}

	for k := range in.held {
		if in.held[k] > 0 {
			in.held[k]--
		}
	}
	in.escape = false
	in.released = false

	return s
}
