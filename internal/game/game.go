// Package game provides the interactive session loop: prompt input,
// command dispatch, mode transitions, and narration.
package game

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeonmind/internal/fsm"
	"github.com/samdwyer/dungeonmind/internal/narrator"
	"github.com/samdwyer/dungeonmind/internal/session"
	"github.com/samdwyer/dungeonmind/internal/telemetry"
	"github.com/samdwyer/dungeonmind/internal/ui"
)

const loadNarrate = "narrate"

// narrationResult carries an async narrator answer back to the event
// loop.
type narrationResult struct {
	response narrator.Response
}

// Game wires the terminal UI to the session and the narrator.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *session.Session
	narrator *narrator.Narrator
	tracer   trace.Tracer

	input      []rune
	transcript []ui.Line
	results    chan narrationResult
	running    bool
}

// New creates a game instance from configuration.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	observers := []fsm.Observer{telemetry.NewSpanObserver(telemetry.Tracer("session"))}
	if cfg.Debug {
		observers = append(observers, fsm.NewSlogObserver(slog.Default()))
	}

	sess, err := session.New(session.Config{
		ModeHistoryCapacity: cfg.ModeHistoryCapacity,
		CommandHistorySize:  cfg.CommandHistorySize,
		Observer:            fsm.NewMultiObserver(observers...),
	})
	if err != nil {
		return nil, err
	}

	registry, err := narrator.LoadRegistry()
	if err != nil {
		return nil, err
	}
	narratorOpts := []narrator.NarratorOption{
		narrator.WithFailureRate(cfg.NarratorFailureRate),
	}
	if cfg.Seed != 0 {
		narratorOpts = append(narratorOpts, narrator.WithSeed(cfg.Seed))
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		session:  sess,
		narrator: narrator.New(registry, narratorOpts...),
		tracer:   telemetry.Tracer("game"),
		results:  make(chan narrationResult, 4),
		running:  true,
	}, nil
}

// Run executes the main event loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	ctx, initSpan := g.tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.String("session.id", g.session.ID),
		attribute.Int("config.history_capacity", g.cfg.ModeHistoryCapacity),
	)
	g.appendSystem("You stand at the mouth of the dungeon. The dungeon master smiles. (type 'help' for commands)")
	initSpan.End()

	for g.running {
		g.render()
		g.handleEvent(ctx)
	}

	g.session.Close()
	g.screen.Close()
	return nil
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventInterrupt:
		g.drainResults()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyEnter:
		g.submit(ctx)

	case tcell.KeyUp:
		if line, ok := g.session.Commands.Prev(string(g.input)); ok {
			g.input = []rune(line)
		}
	case tcell.KeyDown:
		if line, ok := g.session.Commands.Next(); ok {
			g.input = []rune(line)
		}

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(g.input) > 0 {
			g.input = g.input[:len(g.input)-1]
		}

	case tcell.KeyRune:
		g.input = append(g.input, ev.Rune())
	}
}

// submit dispatches the typed command.
func (g *Game) submit(ctx context.Context) {
	line := string(g.input)
	g.input = nil
	g.session.Commands.Push(line)

	cat := narrator.Classify(line)
	_, span := g.tracer.Start(ctx, "game.command")
	span.SetAttributes(
		attribute.String("command.category", string(cat)),
		attribute.String("session.mode", string(g.session.Mode())),
	)
	defer span.End()

	if line != "" {
		g.transcript = append(g.transcript, ui.Line{Speaker: ui.SpeakerPlayer, Text: "> " + line})
	}

	if isQuit(line) {
		g.appendSystem("The dungeon master closes his book. Until next time.")
		g.running = false
		return
	}
	if line == "" {
		return
	}
	if line == "help" {
		g.appendSystem("try: look, go <dir>, attack, rest, talk, quit — arrows recall past commands")
		return
	}

	// Mode change first. Rejections are silent: the narrator still
	// answers, the mode simply stays where it was.
	if g.session.Mode() == session.ModeIdle {
		g.session.EnterMode(session.ModeExploring, line)
	}
	if target, ok := commandTarget(cat); ok {
		if g.session.EnterMode(target, line) {
			g.appendSystem("[" + string(target) + "]")
		}
	}

	g.session.Loads.Begin(loadNarrate)
	go func() {
		resp := g.narrator.Narrate(ctx, line)
		g.results <- narrationResult{response: resp}
		g.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()
}

// drainResults applies any narration answers that have arrived.
func (g *Game) drainResults() {
	for {
		select {
		case res := <-g.results:
			g.session.Loads.End(loadNarrate)
			g.transcript = append(g.transcript, ui.Line{
				Speaker: ui.SpeakerNarrator,
				Text:    res.response.Text,
			})
		default:
			return
		}
	}
}

func (g *Game) appendSystem(text string) {
	g.transcript = append(g.transcript, ui.Line{Speaker: ui.SpeakerSystem, Text: text})
}

func (g *Game) render() {
	g.renderer.Render(ui.View{
		Transcript: g.transcript,
		Prompt:     string(g.input),
		Cursor:     len(g.input),
		Mode:       string(g.session.Mode()),
		Loading:    g.session.Loads.Loading(),
		Commands:   g.session.Commands.Len(),
	})
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
