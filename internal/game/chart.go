package game

import "time"

type Song struct {
	Name        string
	BPM         float64
	Speed       float64 // Scroll speed from the chart, 0 if absent
	NeedsVoices bool
	Player1     string
	Player2     string
}

type Section struct {
	MustHit       bool
	LengthInSteps int
	ChangeBPM     bool
	BPM           float64
	Notes         []NoteEvent
}

// Chart is immutable once loaded; the scheduler keeps its own spawn state.
type Chart struct {
	Song     Song
	Sections []Section
}

func (c *Chart) NoteCount() int {
	n := 0
	for _, s := range c.Sections {
		n += len(s.Notes)
	}
	return n
}

// End is the time of the latest note in the chart.
func (c *Chart) End() time.Duration {
	var end time.Duration
	for _, s := range c.Sections {
		for _, n := range s.Notes {
			if t := n.Time(); t > end {
				end = t
			}
		}
	}
	return end
}
