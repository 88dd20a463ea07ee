package game

import "time"

// Dispatch is a single spawn decision.
type Dispatch struct {
	Section int
	Note    NoteEvent
	Source  LaneSource
}

// spawnRecord holds the identities already dispatched from one section. It
// only ever grows.
type spawnRecord struct {
	player   map[noteID]struct{}
	opponent map[noteID]struct{}
}

func newSpawnRecord() *spawnRecord {
	return &spawnRecord{
		player:   map[noteID]struct{}{},
		opponent: map[noteID]struct{}{},
	}
}

func (r *spawnRecord) set(s Stream) map[noteID]struct{} {
	if s == OpponentStream {
		return r.opponent
	}
	return r.player
}

type Scheduler struct {
	chart    *Chart
	window   time.Duration
	reaction time.Duration

	records []*spawnRecord // by section index, nil until first visit
}

func NewScheduler(chart *Chart, cfg Config) *Scheduler {
	return &Scheduler{
		chart:    chart,
		window:   cfg.DispatchWindow,
		reaction: cfg.Reaction(chart.Song.Speed),
		records:  make([]*spawnRecord, len(chart.Sections)),
	}
}

// Schedule walks the whole chart and returns the notes whose dispatch window
// contains elapsed, in chart order. Each note identity is returned at most
// once per stream over the life of the scheduler.
func (s *Scheduler) Schedule(elapsed time.Duration) []Dispatch {
	var out []Dispatch
	for i, section := range s.chart.Sections {
		for _, note := range section.Notes {
			source, ok := Decode(section.MustHit, note.LaneCode)
			if !ok {
				continue
			}

			start := note.Time()
			if source.Stream == OpponentStream {
				start += s.reaction
			}
			if elapsed < start || elapsed >= start+s.window {
				continue
			}

			record := s.records[i]
			if nil == record {
				record = newSpawnRecord()
				s.records[i] = record
			}
			spawned := record.set(source.Stream)
			if _, ok := spawned[note.id()]; ok {
				continue
			}
			spawned[note.id()] = struct{}{}

			out = append(out, Dispatch{Section: i, Note: note, Source: source})
		}
	}
	return out
}

// Dispatched reports how many identities have been dispatched so far.
func (s *Scheduler) Dispatched() int {
	n := 0
	for _, r := range s.records {
		if nil == r {
			continue
		}
		n += len(r.player) + len(r.opponent)
	}
	return n
}
