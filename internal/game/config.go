package game

import "time"

// ReactAtTarget makes the opponent react when its notes would reach the
// target line. Any negative ReactionOffset does the same.
const ReactAtTarget time.Duration = -1

// Config holds the tunables of a session. Layout values are in playfield
// units, measured upward from the spawn point.
type Config struct {
	DispatchWindow  time.Duration // How long after its time a note may still spawn
	ReactionOffset  time.Duration // Extra delay before the opponent reacts to its notes
	SpeedMultiplier float64
	SpeedScalar     float64       // Applied to the chart speed, fixed per chart version
	ReferenceFrame  time.Duration // Speed is expressed in units per reference frame

	PlayfieldLength float64 // Notes past this distance are dropped as misses
	TargetLine      float64
	Tolerance       float64

	Dwell         time.Duration // Time before an animation returns to idle
	FrameInterval time.Duration // Time per animation frame
	AudioDelay    time.Duration
}

func DefaultConfig() Config {
	return Config{
		DispatchWindow:  100 * time.Millisecond,
		ReactionOffset:  ReactAtTarget,
		SpeedMultiplier: 1,
		SpeedScalar:     1.7,
		ReferenceFrame:  16 * time.Millisecond,
		PlayfieldLength: 480,
		TargetLine:      450,
		Tolerance:       30,
		Dwell:           550 * time.Millisecond,
		FrameInterval:   time.Second / 24,
		AudioDelay:      2 * time.Second,
	}
}

// Speed returns the distance a note covers per reference frame for a chart
// with the given speed. Charts without a usable speed scroll at 1.
func (c Config) Speed(chartSpeed float64) float64 {
	speed := 1.0
	if chartSpeed > 0 {
		speed = chartSpeed * c.SpeedScalar
	}
	if c.SpeedMultiplier > 0 {
		speed *= c.SpeedMultiplier
	}
	return speed
}

// TravelTime is how long a note takes from spawn to the target line.
func (c Config) TravelTime(chartSpeed float64) time.Duration {
	return time.Duration(c.TargetLine / c.Speed(chartSpeed) * float64(c.ReferenceFrame))
}

// Reaction is the delay applied to opponent notes of a chart with the given
// speed.
func (c Config) Reaction(chartSpeed float64) time.Duration {
	if c.ReactionOffset < 0 {
		return c.TravelTime(chartSpeed)
	}
	return c.ReactionOffset
}
