package game

import (
	"math"
	"time"
)

type NoteEvent struct {
	TimeMs   float64 // When the note should reach the target line, from chart start
	LaneCode int     // Meaning depends on the owning section, see Decode
}

// noteID is the identity used for at-most-once dispatch. Two events with the
// same time and lane code are the same note.
type noteID struct {
	timeMs float64
	code   int
}

func (n NoteEvent) id() noteID {
	return noteID{timeMs: n.TimeMs, code: n.LaneCode}
}

func (n NoteEvent) Time() time.Duration {
	return time.Duration(math.Round(n.TimeMs * float64(time.Millisecond)))
}
