package input

import (
	"unicode"

	"git.lost.host/meutraa/funkin/internal/game"
	"github.com/eiannone/keyboard"
)

var arrows = map[keyboard.Key]game.Direction{
	keyboard.KeyArrowLeft:  game.Left,
	keyboard.KeyArrowUp:    game.Up,
	keyboard.KeyArrowDown:  game.Down,
	keyboard.KeyArrowRight: game.Right,
}

// Mapper resolves keys to lanes. The arrow keys always work, the secondary
// keys are given in lane order: left, up, down, right.
type Mapper struct {
	keys []rune
}

func NewMapper(keys string) *Mapper {
	m := &Mapper{}
	for _, r := range keys {
		m.keys = append(m.keys, unicode.ToLower(r))
	}
	return m
}

func (m *Mapper) Direction(ev keyboard.KeyEvent) (game.Direction, bool) {
	if d, ok := arrows[ev.Key]; ok {
		return d, true
	}
	if ev.Rune == 0 {
		return 0, false
	}
	r := unicode.ToLower(ev.Rune)
	for i, c := range m.keys {
		if i >= len(game.Directions) {
			break
		}
		if c == r {
			return game.Directions[i], true
		}
	}
	return 0, false
}

// Quit reports whether the key ends the session.
func Quit(ev keyboard.KeyEvent) bool {
	return ev.Key == keyboard.KeyEsc || ev.Key == keyboard.KeyCtrlC
}
