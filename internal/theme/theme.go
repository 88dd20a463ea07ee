package theme

import (
	"git.lost.host/meutraa/funkin/internal/animation"
	"git.lost.host/meutraa/funkin/internal/game"
	"git.lost.host/meutraa/funkin/internal/session"
)

type Theme interface {
	RenderNote(lane game.Direction) string
	RenderTarget(lane game.Direction, pressed bool) string
	RenderActor(name string, actor session.ActorView) string
	RenderState(state animation.State) string
}
