package game

import (
	"path/filepath"
	"strings"
)

// Difficulties maps a difficulty to the suffix of its chart file name, so
// song-hard.json is the hard chart and song.json the normal one.
var Difficulties = map[string]string{
	"easy":   "-easy",
	"normal": "",
	"hard":   "-hard",
}

// MatchesDifficulty reports whether the chart file name belongs to the given
// difficulty.
func MatchesDifficulty(name, difficulty string) bool {
	if filepath.Ext(name) != ".json" {
		return false
	}
	base := strings.TrimSuffix(filepath.Base(name), ".json")
	suffix, ok := Difficulties[difficulty]
	if !ok {
		return false
	}
	if suffix != "" {
		return strings.HasSuffix(base, suffix)
	}
	for _, s := range Difficulties {
		if s != "" && strings.HasSuffix(base, s) {
			return false
		}
	}
	return true
}
