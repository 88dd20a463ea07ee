package score

import (
	"testing"
	"time"

	"git.lost.host/meutraa/funkin/internal/game"
)

func testSetup() (*DefaultScorer, *game.Lanes) {
	cfg := game.DefaultConfig()
	cfg.TargetLine = 450
	cfg.Tolerance = 30
	cfg.PlayfieldLength = 480
	return NewDefaultScorer(cfg), game.NewLanes(4, cfg)
}

func TestJudgeTieBreak(t *testing.T) {
	s, lanes := testSetup()
	older := lanes.Spawn(game.Left, 0)
	newer := lanes.Spawn(game.Left, 0)
	older.Distance = 440
	newer.Distance = 460

	hit, ok := s.Judge(lanes, game.Left, 0)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Offset != -10 {
		t.Errorf("expected the older entity to be judged, offset %v", hit.Offset)
	}
	if s.Score() != HitBonus || s.Hits() != 1 {
		t.Errorf("expected score %v, got %v", HitBonus, s.Score())
	}
	if older.Live() || !newer.Live() {
		t.Errorf("expected only the older entity removed, live: %v %v", older.Live(), newer.Live())
	}
	if left := lanes.InLane(game.Left); len(left) != 1 || left[0] != newer {
		t.Errorf("unexpected lane contents %v", left)
	}
}

// The older entity being out of range does not block a newer one.
func TestJudgeSkipsOutOfRange(t *testing.T) {
	s, lanes := testSetup()
	far := lanes.Spawn(game.Up, 0)
	near := lanes.Spawn(game.Up, 0)
	far.Distance = 100
	near.Distance = 449

	if _, ok := s.Judge(lanes, game.Up, 0); !ok {
		t.Fatal("expected a hit")
	}
	if near.Live() || !far.Live() {
		t.Error("judged the wrong entity")
	}
}

var proximityTests = map[float64]bool{
	0:      false,
	419.9:  false,
	420:    false,
	420.01: true,
	450:    true,
	479.99: true,
}

func TestJudgeProximity(t *testing.T) {
	for distance, expected := range proximityTests {
		s, lanes := testSetup()
		e := lanes.Spawn(game.Down, 0)
		e.Distance = distance

		_, ok := s.Judge(lanes, game.Down, 0)
		if ok != expected {
			t.Errorf("distance %v: expected hit %v", distance, expected)
		}
		if ok == e.Live() {
			t.Errorf("distance %v: live %v after judge %v", distance, e.Live(), ok)
		}
	}
}

func TestJudgeWrongLane(t *testing.T) {
	s, lanes := testSetup()
	e := lanes.Spawn(game.Right, 0)
	e.Distance = 450

	if _, ok := s.Judge(lanes, game.Left, 0); ok {
		t.Error("judged an entity in another lane")
	}
	if s.Score() != 0 || !e.Live() {
		t.Error("a press with no match had side effects")
	}
}

// Judgement uses the position at the time of the press, not the last frame.
func TestJudgeRederivesPosition(t *testing.T) {
	s, lanes := testSetup()
	e := lanes.Spawn(game.Left, 0)
	lanes.Update(time.Second) // 250 units at 4 per 16ms

	if _, ok := s.Judge(lanes, game.Left, time.Second); ok {
		t.Fatal("judged an entity far from the target")
	}
	// 450 units after 1.8s, without another update
	if _, ok := s.Judge(lanes, game.Left, 1800*time.Millisecond); !ok {
		t.Error("expected a hit from the derived position")
	}
	if e.Live() {
		t.Error("entity still live after hit")
	}
}

func TestJudgeMissedEntity(t *testing.T) {
	s, lanes := testSetup()
	e := lanes.Spawn(game.Left, 0)
	lanes.Update(2 * time.Second) // 500 units, off the playfield

	if e.Live() {
		t.Fatal("expected a miss")
	}
	if _, ok := s.Judge(lanes, game.Left, 2*time.Second); ok {
		t.Error("judged a missed entity")
	}
	if s.Score() != 0 {
		t.Errorf("miss changed the score to %v", s.Score())
	}
}

var judgements = []game.Judgement{
	{Distance: 8, Name: "Sick"},
	{Distance: 15, Name: "Good"},
	{Distance: 30, Name: "Bad"},
}

var rateTests = map[float64]string{
	0:     "Sick",
	-7.9:  "Sick",
	8:     "Good",
	-14:   "Good",
	29.9:  "Bad",
	100.0: "Bad",
}

func TestRate(t *testing.T) {
	for offset, expected := range rateTests {
		_, j := Rate(judgements, offset)
		if j.Name != expected {
			t.Errorf("offset %v: expected %v, got %v", offset, expected, j.Name)
		}
	}
	if i, _ := Rate(nil, 0); i != -1 {
		t.Errorf("expected -1 with no judgements, got %v", i)
	}
}

var result bool

func BenchmarkJudge(b *testing.B) {
	s, lanes := testSetup()
	for i := 0; i < 64; i++ {
		lanes.Spawn(game.Directions[i%4], 0).Distance = float64(i * 6)
	}
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		_, result = s.Judge(lanes, game.Up, 0)
		lanes.Spawn(game.Up, 0).Distance = 450
	}
}
