package replay

import "github.com/younwookim/pong/internal/application/system"

// Version is the replay format version
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int     `json:"f"`             // Frame number
	PU  bool    `json:"pu,omitempty"`  // PlayerUp
	PD  bool    `json:"pd,omitempty"`  // PlayerDown
	EU  bool    `json:"eu,omitempty"`  // EnemyUp
	ED  bool    `json:"ed,omitempty"`  // EnemyDown
	Esc bool    `json:"esc,omitempty"` // Escape pressed
	MX  float64 `json:"mx"`            // PointerX
	MY  float64 `json:"my"`            // PointerY
	MR  bool    `json:"mr,omitempty"`  // PointerReleased
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version string       `json:"version"`
	Seed    int64        `json:"seed"`
	Frames  []FrameInput `json:"frames"`
}

// FromInputs builds replay data from a sequence of input snapshots
func FromInputs(seed int64, inputs []system.InputState) ReplayData {
	data := ReplayData{
		Version: Version,
		Seed:    seed,
		Frames:  make([]FrameInput, len(inputs)),
	}
	for i, in := range inputs {
		data.Frames[i] = FrameInput{
			F:   i,
			PU:  in.PlayerUp,
			PD:  in.PlayerDown,
			EU:  in.EnemyUp,
			ED:  in.EnemyDown,
			Esc: in.Escape,
			MX:  in.PointerX,
			MY:  in.PointerY,
			MR:  in.PointerReleased,
		}
	}
	return data
}

func (fi FrameInput) toInput() system.InputState {
	return system.InputState{
		PlayerUp:        fi.PU,
		PlayerDown:      fi.PD,
		EnemyUp:         fi.EU,
		EnemyDown:       fi.ED,
		Escape:          fi.Esc,
		PointerX:        fi.MX,
		PointerY:        fi.MY,
		PointerReleased: fi.MR,
	}
}
