package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/younwookim/pong/internal/application/session"
	"github.com/younwookim/pong/internal/application/state"
	"github.com/younwookim/pong/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// Load loads replay data from a file inside fsys
func Load(fsys fs.FS, name string) (*ReplayData, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read replay: %w", err)
	}

	var data ReplayData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}

	return &data, nil
}

// LoadFile loads replay data from a path on disk
func LoadFile(path string) (*ReplayData, error) {
	return Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// Next returns the input for the current frame and advances
func (r *Replayer) Next() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return fi.toInput(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Result summarizes a headless playback
type Result struct {
	Frames int             // frames fed to the session
	State  state.GameState // state when playback stopped
	Quit   bool            // the replay requested exit
}

// Play feeds every remaining frame into the session at a fixed dt.
// It stops early on game over or an exit request.
func (r *Replayer) Play(s *session.Session, dt float64) (Result, error) {
	var res Result
	for {
		in, ok := r.Next()
		if !ok {
			break
		}
		res.Frames++

		if err := s.Update(in, dt); err != nil {
			if errors.Is(err, session.ErrQuit) {
				res.Quit = true
				break
			}
			return res, err
		}
		if s.State() == state.StateGameOver {
			break
		}
	}
	res.State = s.State()
	return res, nil
}
