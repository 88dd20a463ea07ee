package score

import (
	"time"

	"git.lost.host/meutraa/funkin/internal/game"
)

// HitBonus is added to the score for every judged hit.
const HitBonus = 10

type Scorer interface {
	// Judge resolves one key press against the live entities of a lane,
	// removing at most one entity.
	Judge(lanes *game.Lanes, lane game.Direction, now time.Duration) (Hit, bool)

	Offset(position float64) float64

	Score() int
	Hits() int
}

type Hit struct {
	Lane   game.Direction
	Offset float64 // Signed distance from the target line, positive is late
	Time   time.Duration
}
