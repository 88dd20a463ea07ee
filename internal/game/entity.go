package game

import "time"

// Entity is a falling note on its way to the target line.
type Entity struct {
	Lane      Direction
	Distance  float64       // Units travelled since spawn, as of the last advance
	SpawnedAt time.Duration // Session time of the spawn

	advancedAt time.Duration
	live       bool
}

// Advance moves the entity forward to now.
func (e *Entity) Advance(now time.Duration, speed float64, frame time.Duration) {
	if now > e.advancedAt {
		e.Distance += speed * float64(now-e.advancedAt) / float64(frame)
		e.advancedAt = now
	}
}

func (e *Entity) Live() bool {
	return e.live
}

// Lanes owns every live entity. Entities are kept in spawn order.
type Lanes struct {
	speed  float64
	frame  time.Duration
	length float64

	entities []*Entity
	misses   int
}

func NewLanes(speed float64, cfg Config) *Lanes {
	return &Lanes{
		speed:  speed,
		frame:  cfg.ReferenceFrame,
		length: cfg.PlayfieldLength,
	}
}

func (l *Lanes) Spawn(lane Direction, now time.Duration) *Entity {
	e := &Entity{
		Lane:       lane,
		SpawnedAt:  now,
		advancedAt: now,
		live:       true,
	}
	l.entities = append(l.entities, e)
	return e
}

// Update advances every entity to now and drops those that left the
// playfield. The dropped entities are returned.
func (l *Lanes) Update(now time.Duration) []*Entity {
	var missed []*Entity
	kept := l.entities[:0]
	for _, e := range l.entities {
		e.Advance(now, l.speed, l.frame)
		if e.Distance > l.length {
			e.live = false
			missed = append(missed, e)
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(l.entities); i++ {
		l.entities[i] = nil
	}
	l.entities = kept
	l.misses += len(missed)
	return missed
}

// Position derives where the entity is at now without mutating it.
func (l *Lanes) Position(e *Entity, now time.Duration) float64 {
	if now <= e.advancedAt {
		return e.Distance
	}
	return e.Distance + l.speed*float64(now-e.advancedAt)/float64(l.frame)
}

// Live returns the live entities in spawn order.
func (l *Lanes) Live() []*Entity {
	out := make([]*Entity, len(l.entities))
	copy(out, l.entities)
	return out
}

// InLane returns the live entities of one lane in spawn order.
func (l *Lanes) InLane(lane Direction) []*Entity {
	var out []*Entity
	for _, e := range l.entities {
		if e.Lane == lane {
			out = append(out, e)
		}
	}
	return out
}

// Remove destroys a live entity. It reports false if the entity was already
// gone.
func (l *Lanes) Remove(target *Entity) bool {
	for i, e := range l.entities {
		if e != target {
			continue
		}
		e.live = false
		copy(l.entities[i:], l.entities[i+1:])
		l.entities[len(l.entities)-1] = nil
		l.entities = l.entities[:len(l.entities)-1]
		return true
	}
	return false
}

// Misses counts entities dropped off the playfield.
func (l *Lanes) Misses() int {
	return l.misses
}
