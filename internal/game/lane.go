package game

// Direction is one of the four lanes.
type Direction uint8

const (
	Left Direction = iota
	Up
	Down
	Right
)

var Directions = [...]Direction{Left, Up, Down, Right}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	case Right:
		return "right"
	}
	return "unknown"
}

type Stream uint8

const (
	PlayerStream   Stream = iota // spawns a note the player has to hit
	OpponentStream               // only drives the opponent's animation
)

func (s Stream) String() string {
	if s == OpponentStream {
		return "opponent"
	}
	return "player"
}

// LaneSource is a decoded lane code.
type LaneSource struct {
	Stream    Stream
	Direction Direction
}

// Decode resolves a chart lane code against its section flag.
//
//	mustHit  code  stream    direction
//	true     0-3   player    code
//	false    0-3   opponent  code
//	false    4-7   player    code-4
//
// Anything else, including 4-7 in a must hit section, is ignored.
func Decode(mustHit bool, code int) (LaneSource, bool) {
	switch {
	case code >= 0 && code <= 3 && mustHit:
		return LaneSource{Stream: PlayerStream, Direction: Direction(code)}, true
	case code >= 0 && code <= 3:
		return LaneSource{Stream: OpponentStream, Direction: Direction(code)}, true
	case code >= 4 && code <= 7 && !mustHit:
		return LaneSource{Stream: PlayerStream, Direction: Direction(code - 4)}, true
	}
	return LaneSource{}, false
}
