package score

import (
	"time"

	"git.lost.host/meutraa/funkin/internal/game"
)

type DefaultScorer struct {
	Target    float64
	Tolerance float64

	score int
	hits  int
}

func NewDefaultScorer(cfg game.Config) *DefaultScorer {
	return &DefaultScorer{
		Target:    cfg.TargetLine,
		Tolerance: cfg.Tolerance,
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Offset is the signed distance of a position from the target line.
func (s *DefaultScorer) Offset(position float64) float64 {
	return position - s.Target
}

// Judge takes the oldest entity of the lane that is within tolerance of the
// target line. Entities further back in the lane are left alone even when
// they are also in range, so a single press never clears a stack.
func (s *DefaultScorer) Judge(lanes *game.Lanes, lane game.Direction, now time.Duration) (Hit, bool) {
	for _, e := range lanes.InLane(lane) {
		offset := s.Offset(lanes.Position(e, now))
		if abs(offset) >= s.Tolerance {
			continue
		}
		if !lanes.Remove(e) {
			continue
		}
		s.score += HitBonus
		s.hits++
		return Hit{Lane: lane, Offset: offset, Time: now}, true
	}
	return Hit{}, false
}

func (s *DefaultScorer) Score() int {
	return s.score
}

func (s *DefaultScorer) Hits() int {
	return s.hits
}

// Rate picks the first judgement whose distance covers the offset. The last
// judgement is returned when none does.
func Rate(judgements []game.Judgement, offset float64) (int, game.Judgement) {
	d := abs(offset)
	for i, j := range judgements {
		if d < j.Distance {
			return i, j
		}
	}
	if len(judgements) == 0 {
		return -1, game.Judgement{}
	}
	return len(judgements) - 1, judgements[len(judgements)-1]
}
