package config

import (
	"fmt"
	"strconv"
	"strings"

	"git.lost.host/meutraa/funkin/internal/animation"
	"git.lost.host/meutraa/funkin/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

var defaults = game.DefaultConfig()

func float(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

var (
	Directory     = kingpin.Arg("directory", "Song directory with the charts and Inst/Voices audio").String()
	Chart         = kingpin.Flag("chart", "Chart path or URL, overrides the directory search").Short('c').String()
	Difficulty    = kingpin.Flag("difficulty", "Chart difficulty").Default("normal").Short('D').Enum("easy", "normal", "hard")
	Window        = kingpin.Flag("window", "Note dispatch window").Default(defaults.DispatchWindow.String()).Short('w').Duration()
	Reaction      = kingpin.Flag("reaction", "Opponent reaction offset, negative to react as notes reach the target line").Default(defaults.ReactionOffset.String()).Duration()
	Speed         = kingpin.Flag("speed", "Scroll speed multiplier").Default(float(defaults.SpeedMultiplier)).Short('s').Float64()
	Delay         = kingpin.Flag("delay", "Audio start delay").Default(defaults.AudioDelay.String()).Short('d').Duration()
	Playfield     = kingpin.Flag("playfield", "Playfield length").Default(float(defaults.PlayfieldLength)).Float64()
	Target        = kingpin.Flag("target", "Distance of the target line from the spawn point").Default(float(defaults.TargetLine)).Float64()
	Tolerance     = kingpin.Flag("tolerance", "Hit tolerance around the target line").Default(float(defaults.Tolerance)).Float64()
	Dwell         = kingpin.Flag("dwell", "Time before an animation returns to idle").Default(defaults.Dwell.String()).Duration()
	FrameInterval = kingpin.Flag("frame-interval", "Animation frame interval").Default(defaults.FrameInterval.String()).Duration()
	FramePeriod   = kingpin.Flag("frame-period", "Render frame period").Default("16ms").Short('p').Duration()
	Keys          = kingpin.Flag("keys", "Secondary keys for left, up, down, right").Default("awsd").Short('k').String()
	BarRow        = kingpin.Flag("bar-row", "Console row to render the target line").Default("4").Uint()
	ColumnSpacing = kingpin.Flag("spacing", "Columns between lanes").Default("6").Short('S').Uint()
	PlayerImage   = kingpin.Flag("player-image", "Player atlas image").String()
	PlayerAtlas   = kingpin.Flag("player-atlas", "Player atlas xml").String()
	PlayerAnims   = kingpin.Flag("player-anims", "Player animation prefixes: idle,left,up,down,right").Default("BF idle dance,BF NOTE LEFT0,BF NOTE UP0,BF NOTE DOWN0,BF NOTE RIGHT0").String()
	OpponentImage = kingpin.Flag("opponent-image", "Opponent atlas image").String()
	OpponentAtlas = kingpin.Flag("opponent-atlas", "Opponent atlas xml").String()
	OpponentAnims = kingpin.Flag("opponent-anims", "Opponent animation prefixes: idle,left,up,down,right").Default("Dad idle dance,Dad Sing Note LEFT,Dad Sing Note UP,Dad Sing Note DOWN,Dad Sing Note RIGHT").String()
	LogFile       = kingpin.Flag("log", "Log file").Default("funkin.log").String()
	Judgements    []game.Judgement
)

func Parse() {
	kingpin.Version("0.1.0")
	kingpin.Parse()

	Judgements = []game.Judgement{
		{Distance: *Tolerance * 0.3, Name: "\033[1;36mSick\033[0m"},
		{Distance: *Tolerance * 0.6, Name: "\033[1;32mGood\033[0m"},
		{Distance: *Tolerance * 0.85, Name: "\033[1;33m Bad\033[0m"},
		{Distance: *Tolerance, Name: "\033[1;31mShit\033[0m"},
	}
}

// Game returns the session configuration from the parsed flags.
func Game() game.Config {
	return game.Config{
		DispatchWindow:  *Window,
		ReactionOffset:  *Reaction,
		SpeedMultiplier: *Speed,
		SpeedScalar:     defaults.SpeedScalar,
		ReferenceFrame:  defaults.ReferenceFrame,
		PlayfieldLength: *Playfield,
		TargetLine:      *Target,
		Tolerance:       *Tolerance,
		Dwell:           *Dwell,
		FrameInterval:   *FrameInterval,
		AudioDelay:      *Delay,
	}
}

// Animations splits a prefix list in idle, left, up, down, right order.
func Animations(list string) (map[animation.State]string, error) {
	parts := strings.Split(list, ",")
	if len(parts) != len(animation.States) {
		return nil, fmt.Errorf("expected %v animation prefixes, got %v", len(animation.States), len(parts))
	}
	prefixes := map[animation.State]string{}
	for i, s := range animation.States {
		prefixes[s] = strings.TrimSpace(parts[i])
	}
	return prefixes, nil
}
