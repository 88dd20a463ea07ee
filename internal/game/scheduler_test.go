package game

import (
	"testing"
	"time"
)

func singleNoteChart(mustHit bool, timeMs float64, code int) *Chart {
	return &Chart{Sections: []Section{{MustHit: mustHit, Notes: []NoteEvent{{TimeMs: timeMs, LaneCode: code}}}}}
}

var windowTests = map[time.Duration]bool{
	0:                       false,
	999 * time.Millisecond:  false,
	999999999:               false,
	1000 * time.Millisecond: true,
	1050 * time.Millisecond: true,
	1099999999:              true,
	1100 * time.Millisecond: false,
	2000 * time.Millisecond: false,
}

func TestScheduleWindow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DispatchWindow = 100 * time.Millisecond

	for elapsed, expected := range windowTests {
		s := NewScheduler(singleNoteChart(true, 1000, 0), cfg)
		dispatched := s.Schedule(elapsed)
		if (len(dispatched) == 1) != expected {
			t.Errorf("%v: expected dispatch %v, got %v", elapsed, expected, dispatched)
		}
	}
}

func TestScheduleAtMostOnce(t *testing.T) {
	cfg := DefaultConfig()
	s := NewScheduler(singleNoteChart(true, 1000, 0), cfg)

	total := 0
	for elapsed := 900 * time.Millisecond; elapsed < 1300*time.Millisecond; elapsed += time.Millisecond {
		total += len(s.Schedule(elapsed))
	}
	if total != 1 {
		t.Errorf("expected 1 dispatch over every frame of the window, got %v", total)
	}
	if s.Dispatched() != 1 {
		t.Errorf("expected 1 recorded identity, got %v", s.Dispatched())
	}
}

// Identical (time, code) pairs are one note. Only a single spawn happens,
// which is intended.
func TestScheduleDuplicateIdentity(t *testing.T) {
	chart := &Chart{Sections: []Section{{MustHit: true, Notes: []NoteEvent{
		{TimeMs: 500, LaneCode: 1},
		{TimeMs: 500, LaneCode: 1},
		{TimeMs: 500, LaneCode: 2},
	}}}}
	s := NewScheduler(chart, DefaultConfig())
	dispatched := s.Schedule(500 * time.Millisecond)
	if len(dispatched) != 2 {
		t.Fatalf("expected 2 dispatches, got %v", dispatched)
	}
	if dispatched[0].Source.Direction != Up || dispatched[1].Source.Direction != Down {
		t.Errorf("unexpected dispatch order %v", dispatched)
	}
}

// The same identity in two sections is tracked per section.
func TestScheduleRecordsPerSection(t *testing.T) {
	chart := &Chart{Sections: []Section{
		{MustHit: true, Notes: []NoteEvent{{TimeMs: 500, LaneCode: 1}}},
		{MustHit: true, Notes: []NoteEvent{{TimeMs: 500, LaneCode: 1}}},
	}}
	s := NewScheduler(chart, DefaultConfig())
	dispatched := s.Schedule(500 * time.Millisecond)
	if len(dispatched) != 2 || dispatched[0].Section != 0 || dispatched[1].Section != 1 {
		t.Errorf("expected one dispatch per section, got %v", dispatched)
	}
}

func TestScheduleStreams(t *testing.T) {
	chart := &Chart{Sections: []Section{
		{MustHit: false, Notes: []NoteEvent{
			{TimeMs: 100, LaneCode: 6},
			{TimeMs: 100, LaneCode: 2},
			{TimeMs: 100, LaneCode: 9},
		}},
		{MustHit: true, Notes: []NoteEvent{
			{TimeMs: 100, LaneCode: 3},
			{TimeMs: 100, LaneCode: 5},
		}},
	}}
	cfg := DefaultConfig()
	cfg.ReactionOffset = 0
	s := NewScheduler(chart, cfg)
	dispatched := s.Schedule(100 * time.Millisecond)

	expected := []LaneSource{
		{Stream: PlayerStream, Direction: Down},
		{Stream: OpponentStream, Direction: Down},
		{Stream: PlayerStream, Direction: Right},
	}
	if len(dispatched) != len(expected) {
		t.Fatalf("expected %v dispatches, got %v", len(expected), dispatched)
	}
	for i, d := range dispatched {
		if d.Source != expected[i] {
			t.Errorf("%d: expected %+v, got %+v", i, expected[i], d.Source)
		}
	}
}

func TestScheduleReactionOffset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReactionOffset = 2 * time.Second
	s := NewScheduler(singleNoteChart(false, 1000, 0), cfg)

	if d := s.Schedule(1000 * time.Millisecond); len(d) != 0 {
		t.Errorf("opponent note dispatched before its reaction offset: %v", d)
	}
	if d := s.Schedule(3000 * time.Millisecond); len(d) != 1 || d[0].Source.Stream != OpponentStream {
		t.Errorf("expected opponent dispatch at 3s, got %v", d)
	}

	// Player notes ignore the offset
	s = NewScheduler(singleNoteChart(false, 1000, 4), cfg)
	if d := s.Schedule(1000 * time.Millisecond); len(d) != 1 {
		t.Errorf("expected player dispatch at 1s, got %v", d)
	}
}

func TestScheduleReactAtTarget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpeedScalar = 1
	chart := singleNoteChart(false, 1000, 0)
	chart.Song.Speed = 3.6
	s := NewScheduler(chart, cfg)

	if d := s.Schedule(1000 * time.Millisecond); len(d) != 0 {
		t.Errorf("opponent note dispatched before reaching the target line: %v", d)
	}
	if d := s.Schedule(3000 * time.Millisecond); len(d) != 1 {
		t.Errorf("expected opponent dispatch after the 2s travel time, got %v", d)
	}
}

func BenchmarkSchedule(b *testing.B) {
	chart := &Chart{}
	for i := 0; i < 100; i++ {
		section := Section{MustHit: i%2 == 0}
		for j := 0; j < 16; j++ {
			section.Notes = append(section.Notes, NoteEvent{TimeMs: float64(i*2000 + j*125), LaneCode: j % 8})
		}
		chart.Sections = append(chart.Sections, section)
	}
	s := NewScheduler(chart, DefaultConfig())
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		s.Schedule(time.Duration(n%200000) * time.Millisecond)
	}
}
