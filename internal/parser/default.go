package parser

import (
	"errors"
	"fmt"

	"git.lost.host/meutraa/funkin/internal/assets"
	"git.lost.host/meutraa/funkin/internal/game"
	"github.com/tidwall/gjson"
)

type DefaultParser struct{}

func (p *DefaultParser) Load(location string) (*game.Chart, error) {
	data, err := assets.Fetch(location)
	if nil != err {
		return nil, err
	}
	return p.Parse(location, data)
}

// Parse reads a chart in the format
//
//	{"song": {"speed": 2.4, "notes": [{"mustHitSection": true, "sectionNotes": [[time, lane, sustain], ...]}]}}
//
// Structural problems are a *game.ParseError. Lane codes are not checked
// here, the scheduler ignores codes it can not decode.
func (p *DefaultParser) Parse(location string, data []byte) (*game.Chart, error) {
	chart, err := p.parse(data)
	if nil != err {
		return nil, &game.ParseError{Location: location, Err: err}
	}
	return chart, nil
}

func (p *DefaultParser) parse(data []byte) (*game.Chart, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid json")
	}

	song := gjson.GetBytes(data, "song")
	if !song.IsObject() {
		return nil, errors.New("missing song object")
	}
	sections := song.Get("notes")
	if !sections.IsArray() {
		return nil, errors.New("song.notes is not an array")
	}

	chart := &game.Chart{
		Song: game.Song{
			Name:        song.Get("song").String(),
			BPM:         song.Get("bpm").Float(),
			Speed:       song.Get("speed").Float(),
			NeedsVoices: true,
			Player1:     song.Get("player1").String(),
			Player2:     song.Get("player2").String(),
		},
	}
	if nv := song.Get("needsVoices"); nv.Exists() {
		chart.Song.NeedsVoices = nv.Bool()
	}

	for i, s := range sections.Array() {
		if !s.IsObject() {
			return nil, fmt.Errorf("section %v is not an object", i)
		}
		section := game.Section{
			MustHit:       s.Get("mustHitSection").Bool(),
			LengthInSteps: int(s.Get("lengthInSteps").Int()),
			ChangeBPM:     s.Get("changeBPM").Bool(),
			BPM:           s.Get("bpm").Float(),
		}

		notes := s.Get("sectionNotes")
		if notes.Exists() && !notes.IsArray() {
			return nil, fmt.Errorf("section %v: sectionNotes is not an array", i)
		}
		for j, n := range notes.Array() {
			note, err := p.parseNote(n)
			if nil != err {
				return nil, fmt.Errorf("section %v note %v: %w", i, j, err)
			}
			section.Notes = append(section.Notes, note)
		}

		chart.Sections = append(chart.Sections, section)
	}

	return chart, nil
}

// [time, lane, sustain]; sustain and anything after it is ignored
func (p *DefaultParser) parseNote(n gjson.Result) (game.NoteEvent, error) {
	if !n.IsArray() {
		return game.NoteEvent{}, errors.New("not an array")
	}
	fields := n.Array()
	if len(fields) < 2 {
		return game.NoteEvent{}, errors.New("expected time and lane")
	}
	if fields[0].Type != gjson.Number || fields[1].Type != gjson.Number {
		return game.NoteEvent{}, errors.New("time and lane must be numbers")
	}
	return game.NoteEvent{
		TimeMs:   fields[0].Float(),
		LaneCode: int(fields[1].Int()),
	}, nil
}
