package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/rong/internal/config"
	"github.com/diegok/rong/internal/game"
	"github.com/diegok/rong/internal/ui"
)

// App is the main application controller that owns the match and drives it
// from the chosen host.
type App struct {
	cfg      *config.Config
	log      *log.Logger
	logFile  io.Closer
	state    *game.GameState
	screen   *ui.Screen
	renderer *ui.Renderer
	keys     ui.KeyState

	quit    chan struct{}
	sigChan chan os.Signal
}

// Host runs a match until the player quits, passing the events of every
// tick to onStep
type Host func(state *game.GameState, onStep func(game.Events)) error

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:   cfg,
		log:   log.New(io.Discard, "", 0),
		state: game.NewGameState(Settings(cfg)),
		quit:  make(chan struct{}),
	}
}

// Settings converts command line configuration into match settings
func Settings(cfg *config.Config) game.Settings {
	opponent := game.ControlHuman
	if cfg.VersusAI() {
		opponent = game.ControlAI
	}
	return game.Settings{
		Opponent: opponent,
		AINoise:  cfg.AINoise,
		Seed:     cfg.Seed,
	}
}

// OpenLog returns a logger writing to path, or a discarding logger when path is empty
func OpenLog(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard, "", 0), nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return log.New(f, "rong: ", log.LstdFlags|log.Lmicroseconds), f, nil
}

// Run is the main entry point for the application.
// It opens the log, starts host and blocks until the player quits.
func (a *App) Run(host Host) error {
	logger, closer, err := OpenLog(a.cfg.LogFile)
	if err != nil {
		return err
	}
	a.log = logger
	a.logFile = closer

	a.log.Printf("starting: ui=%s opponent=%s ai-noise=%v", a.cfg.UI, a.cfg.Opponent, a.cfg.AINoise)

	runErr := host(a.state, a.report)

	a.log.Printf("exiting at tick %d, score %d-%d", a.state.Tick, a.state.LeftScore, a.state.RightScore)
	a.cleanup()

	return runErr
}

// RunTerminal is the tcell Host. It initializes the screen, sets up signal
// handling, and starts the loop.
func (a *App) RunTerminal(state *game.GameState, onStep func(game.Events)) error {
	a.state = state
	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-a.sigChan:
			close(a.quit)
		case <-a.quit:
		}
	}()

	return a.mainLoop(onStep)
}

// mainLoop forwards screen events and steps the match once per tick.
func (a *App) mainLoop(onStep func(game.Events)) error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / game.TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			onStep(a.tick())
			a.renderer.RenderGame(a.state.Frame(), a.statusLine())
		}
	}
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		a.keys.Press(ui.KeyToControl(ev.Key(), ev.Rune()))

	case *tcell.EventResize:
		if a.screen != nil {
			a.screen.Sync()
		}
	}

	return false
}

// tick advances the match by one step using the held keys
func (a *App) tick() game.Events {
	return a.state.Step(a.keys.Snapshot())
}

// report logs the notable events of a tick
func (a *App) report(ev game.Events) {
	gs := a.state
	if ev.Has(game.EventLeftScored) || ev.Has(game.EventRightScored) {
		a.log.Printf("tick %d: score %d-%d", gs.Tick, gs.LeftScore, gs.RightScore)
	}
	if ev.Has(game.EventTeleport) {
		a.log.Printf("tick %d: ball teleported to y=%.0f", gs.Tick, gs.Ball.Y)
	}
	if ev.Has(game.EventGameOver) {
		winner, _ := gs.Winner()
		a.log.Printf("tick %d: game over, %s side wins %d-%d", gs.Tick, winner, gs.LeftScore, gs.RightScore)
	}
}

// statusLine describes the controls for the bottom bar
func (a *App) statusLine() string {
	p2 := "P2 ↑/↓"
	if a.state.Right.Controller == game.ControlAI {
		p2 = "P2 AI"
	}
	if a.state.IsGameOver() {
		return fmt.Sprintf(" Tick: %d | Game over | q quit", a.state.Tick)
	}
	return fmt.Sprintf(" Tick: %d | P1 W/S | %s | q quit", a.state.Tick, p2)
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	if a.screen != nil {
		a.screen.Fini()
	}

	if a.sigChan != nil {
		signal.Stop(a.sigChan)
	}

	if a.logFile != nil {
		a.logFile.Close()
	}
}
