package game

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/diegok/rong/internal/view"
)

// Field and rule constants
const (
	TickRate     = 60 // Ticks per second
	FieldWidth   = 800.0
	FieldHeight  = 400.0
	WinThreshold = 7 // A score above this ends the game
)

// Phase is the macro state of a match
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game-over"
	}
	return "playing"
}

// Settings picks who drives the right paddle and how the match is seeded
type Settings struct {
	Opponent Controller
	AINoise  bool
	Seed     int64 // 0 seeds from the clock
}

// GameState manages the complete game state
type GameState struct {
	Left       *Paddle
	Right      *Paddle
	Ball       *Ball
	Top        *Teleporter
	Bottom     *Teleporter
	LeftScore  int
	RightScore int
	Phase      Phase
	Tick       int

	ai  *AI
	rng *rand.Rand
}

// NewGameState creates a match in its starting layout
func NewGameState(s Settings) *GameState {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	return &GameState{
		Left:   NewPaddle(SideLeft, ControlHuman),
		Right:  NewPaddle(SideRight, s.Opponent),
		Ball:   NewBall(),
		Top:    NewTeleporter(EdgeTop),
		Bottom: NewTeleporter(EdgeBottom),
		ai:     NewAI(s.AINoise, rng),
		rng:    rng,
	}
}

// Step runs one game tick
func (gs *GameState) Step(in Input) Events {
	gs.Tick++
	var ev Events

	gs.movePaddles(in)

	if gs.teleport() {
		ev |= EventTeleport
	}

	// Check wall bounces (top/bottom)
	if gs.Ball.Y <= 0 || gs.Ball.Y >= FieldHeight {
		gs.Ball.BounceVertical()
		ev |= EventWallBounce
	}

	ev |= gs.checkScore()

	if gs.checkPaddleCollisions() {
		ev |= EventPaddleHit
	}

	gs.Ball.Move()

	if gs.checkWin() {
		ev |= EventGameOver
	}
	return ev
}

func (gs *GameState) movePaddles(in Input) {
	gs.Left.Drive(in.P1Up, in.P1Down)

	if gs.Right.Controller == ControlAI {
		gs.ai.Track(gs.Right, gs.Ball.Y)
		return
	}
	gs.Right.Drive(in.P2Up, in.P2Down)
}

// teleport moves the ball between bands. Top is checked first; a ball sent
// to the bottom band's exit is above the bottom trigger line so it is not
// bounced straight back.
func (gs *GameState) teleport() bool {
	moved := false
	if gs.Top.Triggered(gs.Ball.X, gs.Ball.Y) {
		gs.Ball.Y = gs.Bottom.Exit()
		moved = true
	}
	if gs.Bottom.Triggered(gs.Ball.X, gs.Ball.Y) {
		gs.Ball.Y = gs.Top.Exit()
		moved = true
	}
	return moved
}

// checkScore awards a point when the ball has left through a side
func (gs *GameState) checkScore() Events {
	var ev Events

	// Ball past right edge - left side scores
	if gs.Ball.X >= FieldWidth {
		gs.LeftScore++
		gs.Ball.Reset(gs.rng)
		ev |= EventLeftScored
	}

	// Ball past left edge - right side scores
	if gs.Ball.X <= 0 {
		gs.RightScore++
		gs.Ball.Reset(gs.rng)
		ev |= EventRightScored
	}
	return ev
}

// checkPaddleCollisions deflects the ball off any paddle it is moving into
func (gs *GameState) checkPaddleCollisions() bool {
	hit := false
	for _, p := range []*Paddle{gs.Left, gs.Right} {
		if !p.Contains(gs.Ball.X, gs.Ball.Y) {
			continue
		}
		if !p.Approaching(gs.Ball.VX) {
			continue
		}
		gs.Ball.Deflect(p.ReferenceY())
		hit = true
	}
	return hit
}

// checkWin pins the ball once a side passes the threshold. It runs every
// tick so the ball stays frozen; it reports only the transition.
func (gs *GameState) checkWin() bool {
	if gs.LeftScore <= WinThreshold && gs.RightScore <= WinThreshold {
		return false
	}
	gs.Ball.Stop()
	if gs.Phase == PhaseGameOver {
		return false
	}
	gs.Phase = PhaseGameOver
	return true
}

// IsGameOver returns true once either side has won
func (gs *GameState) IsGameOver() bool {
	return gs.Phase == PhaseGameOver
}

// Winner returns the winning side; ok is false while still playing
func (gs *GameState) Winner() (side Side, ok bool) {
	if !gs.IsGameOver() {
		return SideLeft, false
	}
	if gs.LeftScore > gs.RightScore {
		return SideLeft, true
	}
	return SideRight, true
}

// scoreLabels returns the text shown above each half of the field
func (gs *GameState) scoreLabels() (left, right string) {
	winner, over := gs.Winner()
	if !over {
		return strconv.Itoa(gs.LeftScore), strconv.Itoa(gs.RightScore)
	}
	if winner == SideLeft {
		return "W", "L"
	}
	return "L", "W"
}

// Frame converts the state into a renderer snapshot
func (gs *GameState) Frame() view.Frame {
	rect := func(x, y, w, h float64) view.Rect {
		return view.Rect{X: x, Y: y, W: w, H: h}
	}
	left, right := gs.scoreLabels()

	return view.Frame{
		FieldWidth:  FieldWidth,
		FieldHeight: FieldHeight,
		LeftPaddle:  rect(gs.Left.Bounds()),
		RightPaddle: rect(gs.Right.Bounds()),
		Ball:        view.Circle{X: gs.Ball.X, Y: gs.Ball.Y, Radius: gs.Ball.Radius},
		TopZone:     rect(gs.Top.X, gs.Top.Y, gs.Top.Width, gs.Top.Height),
		BottomZone:  rect(gs.Bottom.X, gs.Bottom.Y, gs.Bottom.Width, gs.Bottom.Height),
		Divider:     view.Line{X1: FieldWidth / 2, Y1: 0, X2: FieldWidth / 2, Y2: FieldHeight},
		LeftScore:   left,
		RightScore:  right,
		GameOver:    gs.IsGameOver(),
	}
}
