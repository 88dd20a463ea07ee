package main

import (
	"fmt"
	"log"
	"math"

	"git.lost.host/meutraa/funkin/internal/config"
	"git.lost.host/meutraa/funkin/internal/game"
	"git.lost.host/meutraa/funkin/internal/input"
	"git.lost.host/meutraa/funkin/internal/render"
	"git.lost.host/meutraa/funkin/internal/score"
	"git.lost.host/meutraa/funkin/internal/session"
	"git.lost.host/meutraa/funkin/internal/theme"
	"github.com/eiannone/keyboard"
)

type Program struct {
	Renderer render.Renderer
	Theme    theme.Theme
	Session  *session.Session
	Mapper   *input.Mapper
	Keys     <-chan keyboard.KeyEvent
	Config   game.Config

	rows, cols int
	columns    [4]int
	hitRow     int
	sideCol    int

	pressed [4]bool
	counts  []int
}

func (p *Program) Resize(cols, rows int) {
	p.cols, p.rows = cols, rows
	p.hitRow = int(*config.BarRow)

	mc := cols >> 1
	spacing := int(*config.ColumnSpacing)
	p.columns = [4]int{
		mc - spacing*3,
		mc - spacing,
		mc + spacing,
		mc + spacing*3,
	}
	p.sideCol = p.columns[0] - 40
	if p.sideCol < 2 {
		p.sideCol = 2
	}
	p.counts = make([]int, len(config.Judgements))
}

// row maps a playfield position to a terminal row. Notes rise from the
// bottom of the terminal and meet the target line at hitRow.
func (p *Program) row(position float64) int {
	travel := float64(p.rows - p.hitRow)
	return p.rows - int(math.Round(position/p.Config.TargetLine*travel))
}

// Update drains the keys pressed since the last frame. It returns false
// when the player quits.
func (p *Program) Update() bool {
	p.pressed = [4]bool{}
	for i := len(p.Keys); i > 0; i-- {
		key := <-p.Keys
		if nil != key.Err {
			log.Println("keyboard error", key.Err)
			continue
		}
		if input.Quit(key) {
			return false
		}
		lane, ok := p.Mapper.Direction(key)
		if !ok {
			continue
		}
		p.pressed[lane] = true

		hit, ok := p.Session.OnKey(lane)
		if !ok {
			continue
		}
		idx, judgement := score.Rate(config.Judgements, hit.Offset)
		if idx >= 0 {
			p.counts[idx]++
		}
		p.Renderer.AddDecoration(p.columns[lane]-2, p.hitRow+1, judgement.Name, 30)
	}
	return true
}

func (p *Program) Render(v session.View) {
	// Target line
	for _, d := range game.Directions {
		p.Renderer.Fill(p.hitRow, p.columns[d], p.Theme.RenderTarget(d, p.pressed[d]))
	}

	for _, e := range v.Entities {
		row := p.row(e.Position)
		if row < 1 || row > p.rows {
			continue
		}
		p.Renderer.Fill(row, p.columns[e.Lane], p.Theme.RenderNote(e.Lane))
	}

	song := p.Session.Chart().Song
	p.Renderer.Fill(2, p.sideCol, fmt.Sprintf("       Song:  %v", song.Name))
	p.Renderer.Fill(3, p.sideCol, fmt.Sprintf("       Time:  %6.1fs", v.Elapsed.Seconds()))
	p.Renderer.Fill(5, p.sideCol, fmt.Sprintf("      Score:  %6v", v.Score))
	p.Renderer.Fill(6, p.sideCol, fmt.Sprintf("       Hits:  %6v", v.Hits))
	p.Renderer.Fill(7, p.sideCol, fmt.Sprintf("     Misses:  %6v", v.Misses))
	p.Renderer.Fill(8, p.sideCol, fmt.Sprintf("      Notes:  %6v", p.Session.Chart().NoteCount()))
	for i, judgement := range config.Judgements {
		p.Renderer.Fill(10+i, p.sideCol, fmt.Sprintf("       %v:  %6v", judgement.Name, p.counts[i]))
	}

	p.Renderer.Fill(p.rows-2, p.sideCol, p.Theme.RenderActor(orDefault(song.Player2, "opponent"), v.Opponent))
	p.Renderer.Fill(p.rows-1, p.sideCol, p.Theme.RenderActor(orDefault(song.Player1, "player"), v.Player))
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
