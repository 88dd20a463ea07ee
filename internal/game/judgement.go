package game

// Judgement is a display rating for a hit landing within Distance units of
// the target line.
type Judgement struct {
	Distance float64
	Name     string
}
