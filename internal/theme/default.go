package theme

import (
	"fmt"

	"git.lost.host/meutraa/funkin/internal/animation"
	"git.lost.host/meutraa/funkin/internal/game"
	"git.lost.host/meutraa/funkin/internal/session"
	"github.com/charmbracelet/lipgloss"
)

type DefaultTheme struct{}

func (t *DefaultTheme) RenderNote(lane game.Direction) string {
	return noteStyle(lane).Render(syms[lane%4])
}

func (t *DefaultTheme) RenderTarget(lane game.Direction, pressed bool) string {
	if pressed {
		return noteStyle(lane).Reverse(true).Render(syms[lane%4])
	}
	return targetStyle.Render(syms[lane%4])
}

func (t *DefaultTheme) RenderState(state animation.State) string {
	if state == animation.Idle {
		return idleStyle.Render(state.String())
	}
	return noteStyle(game.Direction(state - 1)).Render(state.String())
}

// RenderActor describes the current frame, a terminal can not draw the
// sprite itself.
func (t *DefaultTheme) RenderActor(name string, actor session.ActorView) string {
	frame := "-"
	if actor.HasFrame {
		frame = fmt.Sprintf("%v [%v,%v %vx%v]", actor.Frame.Name, actor.Frame.X, actor.Frame.Y, actor.Frame.W, actor.Frame.H)
	}
	return fmt.Sprintf("%8v: %-5v %v", name, t.RenderState(actor.State), frame)
}

var (
	syms        = [...]string{"←", "↑", "↓", "→"}
	targetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888"))
	idleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#555"))
	noteColors  = [...]lipgloss.Color{
		"#C24B99", // left purple
		"#12FA05", // up green
		"#00FFFF", // down cyan
		"#F9393F", // right red
	}
)

func noteStyle(lane game.Direction) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(noteColors[lane%4])
}
