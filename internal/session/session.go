package session

import (
	"time"

	"git.lost.host/meutraa/funkin/internal/animation"
	"git.lost.host/meutraa/funkin/internal/assets"
	"git.lost.host/meutraa/funkin/internal/game"
	"git.lost.host/meutraa/funkin/internal/score"
	"github.com/sasha-s/go-deadlock"
)

// Tail is how long a session keeps running after the last note.
const Tail = 5 * time.Second

// Audio is started once, AudioDelay after the session starts.
type Audio interface {
	Play()
}

type EntityView struct {
	Lane     game.Direction
	Position float64
}

type ActorView struct {
	State    animation.State
	Frame    assets.Frame
	HasFrame bool
}

// View is everything a renderer needs for one frame. It is a copy and safe
// to keep.
type View struct {
	Elapsed  time.Duration
	Entities []EntityView
	Player   ActorView
	Opponent ActorView
	Score    int
	Hits     int
	Misses   int
}

type Session struct {
	mu deadlock.Mutex

	cfg   game.Config
	clock game.Clock
	chart *game.Chart
	audio Audio

	scheduler *game.Scheduler
	lanes     *game.Lanes
	scorer    score.Scorer
	player    *animation.Driver
	opponent  *animation.Driver

	start   time.Time
	started bool
	playing bool
}

// New builds a session. Nothing moves until Start is called. audio may be
// nil.
func New(cfg game.Config, chart *game.Chart, clock game.Clock, player, opponent animation.Frames, audio Audio) *Session {
	return &Session{
		cfg:       cfg,
		clock:     clock,
		chart:     chart,
		audio:     audio,
		scheduler: game.NewScheduler(chart, cfg),
		lanes:     game.NewLanes(cfg.Speed(chart.Song.Speed), cfg),
		scorer:    score.NewDefaultScorer(cfg),
		player:    animation.NewDriver(cfg.Dwell, cfg.FrameInterval, player, 0),
		opponent:  animation.NewDriver(cfg.Dwell, cfg.FrameInterval, opponent, 0),
	}
}

// Start begins the clock. Calling it again has no effect.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.start = s.clock.Now()
	s.started = true
}

func (s *Session) elapsed() time.Duration {
	if !s.started {
		return 0
	}
	return s.clock.Now().Sub(s.start)
}

// Tick runs one frame: audio start, spawns, movement, misses and the idle
// return of both actors.
func (s *Session) Tick() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.elapsed()
	if !s.started {
		return s.view(now)
	}

	if !s.playing && now >= s.cfg.AudioDelay {
		s.playing = true
		if nil != s.audio {
			s.audio.Play()
		}
	}

	for _, d := range s.scheduler.Schedule(now) {
		switch d.Source.Stream {
		case game.PlayerStream:
			s.lanes.Spawn(d.Source.Direction, now)
		case game.OpponentStream:
			s.opponent.Trigger(d.Source.Direction, now)
		}
	}

	s.lanes.Update(now)
	s.player.Update(now)
	s.opponent.Update(now)

	return s.view(now)
}

// OnKey handles a player key press. The player's animation reacts whether
// or not the press hits anything.
func (s *Session) OnKey(lane game.Direction) (score.Hit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return score.Hit{}, false
	}
	now := s.elapsed()
	s.player.Trigger(lane, now)
	return s.scorer.Judge(s.lanes, lane, now)
}

// Done reports whether the chart is over.
func (s *Session) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started && s.elapsed() > s.chart.End()+Tail
}

func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scorer.Score()
}

func (s *Session) Chart() *game.Chart {
	return s.chart
}

func actorView(d *animation.Driver, now time.Duration) ActorView {
	frame, ok := d.Frame(now)
	return ActorView{State: d.State(), Frame: frame, HasFrame: ok}
}

func (s *Session) view(now time.Duration) View {
	live := s.lanes.Live()
	entities := make([]EntityView, 0, len(live))
	for _, e := range live {
		entities = append(entities, EntityView{Lane: e.Lane, Position: s.lanes.Position(e, now)})
	}
	return View{
		Elapsed:  now,
		Entities: entities,
		Player:   actorView(s.player, now),
		Opponent: actorView(s.opponent, now),
		Score:    s.scorer.Score(),
		Hits:     s.scorer.Hits(),
		Misses:   s.lanes.Misses(),
	}
}
