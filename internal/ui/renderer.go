package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Speaker identifies who produced a transcript line.
type Speaker int

const (
	// SpeakerPlayer is a command echoed back from the prompt.
	SpeakerPlayer Speaker = iota
	// SpeakerNarrator is the dungeon master's voice.
	SpeakerNarrator
	// SpeakerSystem is out-of-game text (mode changes, help).
	SpeakerSystem
)

// Line is one entry of the session transcript.
type Line struct {
	Speaker Speaker
	Text    string
}

// View is everything the renderer needs for one frame.
type View struct {
	Transcript []Line
	Prompt     string
	Cursor     int // rune offset into Prompt
	Mode       string
	Loading    bool
	Commands   int // retained command-history depth
}

// Renderer draws the session transcript, prompt line, and status bar.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws a full frame. Layout, bottom up: status bar, prompt,
// then as much of the transcript tail as fits.
func (r *Renderer) Render(v View) {
	r.screen.Clear()
	width, height := r.screen.Size()
	if width <= 0 || height < 3 {
		r.screen.Show()
		return
	}

	statusRow := height - 1
	promptRow := height - 2
	transcriptRows := height - 2

	r.drawTranscript(v.Transcript, width, transcriptRows)
	r.drawPrompt(v, width, promptRow)
	r.drawStatus(v, width, statusRow)

	r.screen.Show()
}

func (r *Renderer) drawTranscript(lines []Line, width, rows int) {
	// Wrap every line, keep only the tail that fits.
	type cell struct {
		text  string
		style tcell.Style
	}
	var wrapped []cell
	for _, line := range lines {
		style := r.speakerStyle(line.Speaker)
		for _, chunk := range wrapText(line.Text, width) {
			wrapped = append(wrapped, cell{text: chunk, style: style})
		}
	}
	if len(wrapped) > rows {
		wrapped = wrapped[len(wrapped)-rows:]
	}

	for row, c := range wrapped {
		r.drawString(0, row, c.text, c.style)
	}
}

func (r *Renderer) drawPrompt(v View, width, row int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	prompt := "> " + v.Prompt
	r.drawString(0, row, truncate(prompt, width), style)

	cursorX := 2 + v.Cursor
	if cursorX >= width {
		cursorX = width - 1
	}
	r.screen.ShowCursor(cursorX, row)
}

func (r *Renderer) drawStatus(v View, width, row int) {
	style := tcell.StyleDefault.
		Foreground(tcell.ColorBlack).
		Background(tcell.ColorDarkGray)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, row, ' ', style)
	}

	status := fmt.Sprintf(" mode: %s  |  history: %d", v.Mode, v.Commands)
	if v.Loading {
		status += "  |  the DM is thinking..."
	}
	r.drawString(0, row, truncate(status, width), style)
}

func (r *Renderer) speakerStyle(s Speaker) tcell.Style {
	switch s {
	case SpeakerPlayer:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case SpeakerNarrator:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	case SpeakerSystem:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault
	}
}

func (r *Renderer) drawString(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, style)
	}
}

// wrapText splits text into chunks of at most width runes, breaking at
// spaces where possible.
func wrapText(text string, width int) []string {
	if width < 1 {
		return nil
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return []string{""}
	}

	var chunks []string
	for len(runes) > width {
		cut := width
		for i := width; i > 0; i-- {
			if runes[i-1] == ' ' {
				cut = i
				break
			}
		}
		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut:]
	}
	chunks = append(chunks, string(runes))
	return chunks
}

func truncate(text string, width int) string {
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	return string(runes[:width])
}
