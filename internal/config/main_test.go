package config

import (
	"testing"

	"git.lost.host/meutraa/funkin/internal/animation"
	"git.lost.host/meutraa/funkin/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

func TestGameDefaults(t *testing.T) {
	if _, err := kingpin.CommandLine.Parse([]string{}); nil != err {
		t.Fatal(err)
	}
	if cfg := Game(); cfg != game.DefaultConfig() {
		t.Errorf("flag defaults differ from the game defaults\n%+v\n%+v", cfg, game.DefaultConfig())
	}
}

func TestAnimations(t *testing.T) {
	prefixes, err := Animations("idle, l,u,d,r")
	if nil != err {
		t.Fatal(err)
	}
	expected := map[animation.State]string{
		animation.Idle:  "idle",
		animation.Left:  "l",
		animation.Up:    "u",
		animation.Down:  "d",
		animation.Right: "r",
	}
	for s, p := range expected {
		if prefixes[s] != p {
			t.Errorf("%v: expected %q, got %q", s, p, prefixes[s])
		}
	}

	if _, err := Animations("idle,left"); nil == err {
		t.Error("expected an error for a short list")
	}
}
