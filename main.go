package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"git.lost.host/meutraa/funkin/internal/animation"
	"git.lost.host/meutraa/funkin/internal/assets"
	"git.lost.host/meutraa/funkin/internal/audio"
	"git.lost.host/meutraa/funkin/internal/config"
	"git.lost.host/meutraa/funkin/internal/game"
	"git.lost.host/meutraa/funkin/internal/input"
	"git.lost.host/meutraa/funkin/internal/parser"
	"git.lost.host/meutraa/funkin/internal/render"
	"git.lost.host/meutraa/funkin/internal/session"
	"git.lost.host/meutraa/funkin/internal/theme"
	"github.com/eiannone/keyboard"
)

func main() {
	config.Parse()
	if err := run(); nil != err {
		log.SetOutput(os.Stderr)
		log.Fatalln(err)
	}
}

// findSong walks the song directory for the chart of the given difficulty
// and returns every file found alongside it.
func findSong(directory, difficulty string) (string, []string, error) {
	var chartFile string
	var files []string
	if err := filepath.Walk(directory, func(p string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		if info.IsDir() {
			return nil
		}
		files = append(files, p)
		if game.MatchesDifficulty(info.Name(), difficulty) {
			chartFile = p
		}
		return nil
	}); nil != err {
		return "", nil, fmt.Errorf("unable to walk song directory: %w", err)
	}
	return chartFile, files, nil
}

func loadFrames(imagePath, atlasPath, anims string) (animation.Frames, error) {
	if imagePath == "" || atlasPath == "" {
		return nil, nil
	}
	prefixes, err := config.Animations(anims)
	if nil != err {
		return nil, err
	}
	atlas, err := assets.LoadAtlas(imagePath, atlasPath)
	if nil != err {
		return nil, err
	}
	return animation.NewFrames(atlas, prefixes), nil
}

func run() error {
	logFile, err := os.OpenFile(*config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if nil != err {
		return fmt.Errorf("unable to open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	chartFile := *config.Chart
	var files []string
	if *config.Directory != "" {
		found, fs, err := findSong(*config.Directory, *config.Difficulty)
		if nil != err {
			return err
		}
		files = fs
		if chartFile == "" {
			chartFile = found
		}
	}
	if chartFile == "" {
		return errors.New("unable to find a chart, give a song directory or --chart")
	}

	var psr parser.Parser = &parser.DefaultParser{}
	chart, err := psr.Load(chartFile)
	if nil != err {
		return err
	}
	log.Printf("Loaded %v (%v notes, speed %v)\n", chartFile, chart.NoteCount(), chart.Song.Speed)

	playerFrames, err := loadFrames(*config.PlayerImage, *config.PlayerAtlas, *config.PlayerAnims)
	if nil != err {
		return err
	}
	opponentFrames, err := loadFrames(*config.OpponentImage, *config.OpponentAtlas, *config.OpponentAnims)
	if nil != err {
		return err
	}

	var music session.Audio
	var finished <-chan struct{}
	if len(files) > 0 {
		tracks, err := audio.Tracks(files, chart.Song.NeedsVoices)
		if nil != err {
			return err
		}
		log.Printf("Opening %v\n", tracks)
		player, err := audio.Open(tracks...)
		if nil != err {
			return err
		}
		defer player.Close()
		music = player
		finished = player.Done()
	} else {
		log.Println("no song directory, playing without audio")
	}

	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}()

	var r render.Renderer = &render.DefaultRenderer{}
	var th theme.Theme = &theme.DefaultTheme{}

	cols, rows, err := r.Size()
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}

	cfg := config.Game()
	s := session.New(cfg, chart, game.SystemClock{}, playerFrames, opponentFrames, music)
	p := &Program{
		Renderer: r,
		Theme:    th,
		Session:  s,
		Mapper:   input.NewMapper(*config.Keys),
		Keys:     keys,
		Config:   cfg,
	}
	p.Resize(cols, rows)

	// Clear the screen and hide the cursor
	if err := r.Init(); nil != err {
		return err
	}
	defer func() {
		// Restore the terminal state
		if err := r.Deinit(); nil != err {
			log.Println("unable to restore terminal", err)
		}
	}()

	s.Start()
	r.RenderLoop(*config.FramePeriod, func(now time.Time) bool {
		if !p.Update() {
			return false
		}
		select {
		case <-finished:
			log.Println("song finished")
			return false
		default:
		}
		p.Render(s.Tick())
		return !s.Done()
	})

	log.Printf("Finished %v with score %v\n", chart.Song.Name, s.Score())
	return nil
}
