package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

type DefaultRenderer struct {
	Out io.Writer

	buffer       strings.Builder
	restoreState *term.State
	decorations  []*decoration

	// What was filled at each position this frame and the last
	drawn, stale map[cell]string
}

type cell struct {
	Row, Column int
}

type decoration struct {
	X, Y    int
	Content string
	Frames  int // remaining frames until removed
}

func (r *DefaultRenderer) out() io.Writer {
	if nil == r.Out {
		return os.Stdout
	}
	return r.Out
}

func (r *DefaultRenderer) Init() error {
	state, err := term.MakeRaw(int(os.Stdout.Fd()))
	if nil != err {
		return fmt.Errorf("unable to enter raw mode: %w", err)
	}
	r.restoreState = state

	fmt.Fprintf(r.out(), "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[2J",     // Clear the screen
	)
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	fmt.Fprintf(r.out(), "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	if nil == r.restoreState {
		return nil
	}
	return term.Restore(int(os.Stdout.Fd()), r.restoreState)
}

func (r *DefaultRenderer) Size() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

func (r *DefaultRenderer) AddDecoration(col, row int, content string, frames int) {
	r.decorations = append(r.decorations, &decoration{
		X:       col,
		Y:       row,
		Content: content,
		Frames:  frames,
	})
}

func (r *DefaultRenderer) tickDecorations() {
	nd := r.decorations[:0]
	for _, d := range r.decorations {
		if d.Frames <= 0 {
			continue
		}
		r.Fill(d.Y, d.X, d.Content)
		d.Frames--
		nd = append(nd, d)
	}
	r.decorations = nd
}

// RenderLoop calls render once per period until it returns false. Anything
// filled last frame and not this one is blanked.
func (r *DefaultRenderer) RenderLoop(period time.Duration, render func(now time.Time) bool) {
	for {
		now := time.Now()
		deadline := now.Add(period)

		r.Clear()
		if !render(now) {
			return
		}
		r.tickDecorations()
		r.flush()

		time.Sleep(time.Until(deadline))
	}
}

// Clear starts a new frame.
func (r *DefaultRenderer) Clear() {
	r.stale = r.drawn
	r.drawn = map[cell]string{}
}

func (r *DefaultRenderer) Fill(row, column int, message string) {
	if nil == r.drawn {
		r.drawn = map[cell]string{}
	}
	r.drawn[cell{row, column}] = message
	r.move(row, column)
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) move(row, column int) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H")
}

func (r *DefaultRenderer) flush() {
	var blank strings.Builder
	for c, message := range r.stale {
		if r.drawn[c] == message {
			continue
		}
		blank.WriteString("\033[")
		blank.WriteString(strconv.Itoa(c.Row))
		blank.WriteString(";")
		blank.WriteString(strconv.Itoa(c.Column))
		blank.WriteString("H")
		blank.WriteString(strings.Repeat(" ", lipgloss.Width(message)))
	}
	r.stale = nil

	blank.WriteString(r.buffer.String())
	r.out().Write([]byte(blank.String()))
	r.buffer.Reset()
}
