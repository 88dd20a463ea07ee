package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"git.lost.host/meutraa/funkin/internal/game"
	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

// Extensions that Decode understands
var Extensions = map[string]bool{".ogg": true, ".mp3": true, ".wav": true}

// Decode opens an audio file, picking the decoder by extension.
func Decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !Extensions[ext] {
		return nil, beep.Format{}, &game.LoadError{Location: path, Err: fmt.Errorf("unsupported audio format %v", ext)}
	}

	f, err := os.Open(path)
	if nil != err {
		return nil, beep.Format{}, &game.LoadError{Location: path, Err: err}
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch ext {
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	}
	if nil != err {
		f.Close()
		return nil, beep.Format{}, &game.ParseError{Location: path, Err: err}
	}
	return streamer, format, nil
}

// Player plays the tracks of a song together, for example the instrumental
// and the vocals.
type Player struct {
	streamers []beep.StreamSeekCloser
	format    beep.Format
	mixed     beep.Streamer

	once sync.Once
	done chan struct{}
}

// Open decodes every track and initialises the speaker at the sample rate of
// the first one. Other tracks are resampled to match.
func Open(paths ...string) (*Player, error) {
	if len(paths) == 0 {
		return nil, errors.New("no audio tracks given")
	}

	p := &Player{done: make(chan struct{})}
	var tracks []beep.Streamer
	for i, path := range paths {
		streamer, format, err := Decode(path)
		if nil != err {
			p.Close()
			return nil, err
		}
		p.streamers = append(p.streamers, streamer)

		if i == 0 {
			p.format = format
			tracks = append(tracks, streamer)
			continue
		}
		if format.SampleRate != p.format.SampleRate {
			tracks = append(tracks, beep.Resample(4, format.SampleRate, p.format.SampleRate, streamer))
		} else {
			tracks = append(tracks, streamer)
		}
	}
	p.mixed = beep.Mix(tracks...)

	if err := speaker.Init(p.format.SampleRate, p.format.SampleRate.N(time.Second/60)); nil != err {
		p.Close()
		return nil, fmt.Errorf("unable to initialise speaker: %w", err)
	}
	return p, nil
}

// Play starts playback. Only the first call has an effect.
func (p *Player) Play() {
	p.once.Do(func() {
		speaker.Play(p.stream())
	})
}

// stream is the mix of every track followed by closing done.
func (p *Player) stream() beep.Streamer {
	return beep.Seq(p.mixed, beep.Callback(func() {
		close(p.done)
	}))
}

// Done is closed when the longest track has finished.
func (p *Player) Done() <-chan struct{} {
	return p.done
}

func (p *Player) Close() error {
	var first error
	for _, s := range p.streamers {
		if err := s.Close(); nil != err && nil == first {
			first = err
		}
	}
	p.streamers = nil
	return first
}

// Tracks returns the files to play for a song directory listing: the
// instrumental first, then the voices when the chart needs them.
func Tracks(files []string, needsVoices bool) ([]string, error) {
	var inst, voices string
	for _, f := range files {
		if !Extensions[strings.ToLower(filepath.Ext(f))] {
			continue
		}
		base := strings.ToLower(strings.TrimSuffix(filepath.Base(f), filepath.Ext(f)))
		switch base {
		case "inst":
			inst = f
		case "voices":
			voices = f
		}
	}
	if inst == "" {
		return nil, errors.New("unable to find an Inst audio file")
	}
	if needsVoices && voices != "" {
		return []string{inst, voices}, nil
	}
	return []string{inst}, nil
}
