package game

import (
	"math"
	"math/rand"
)

const (
	BallRadius    = 10.0
	InitialBallVX = 12.0
	InitialBallVY = 1.0
	MaxBallVY     = 5.0   // Vertical speed cap after a paddle deflection
	DeflectionDiv = 100.0 // Scales hit offset into vertical speed
)

type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// NewBall places the ball at the centre of the field with its serve velocity
func NewBall() *Ball {
	return &Ball{
		X:      FieldWidth / 2,
		Y:      FieldHeight / 2,
		VX:     InitialBallVX,
		VY:     InitialBallVY,
		Radius: BallRadius,
	}
}

// Move advances the ball by its velocity
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// BounceVertical reverses vertical direction (wall bounce).
// Position is left alone, so a fast ball can stay past the edge for a tick.
func (b *Ball) BounceVertical() {
	b.VY = -b.VY
}

// Deflect reverses horizontal direction and derives a new vertical speed from
// how far the ball is from the paddle's reference point
func (b *Ball) Deflect(referenceY float64) {
	b.VX = -b.VX
	speed := math.Abs(b.VX) + math.Abs(b.VY)
	b.VY = clamp(speed*(b.Y-referenceY)/DeflectionDiv, -MaxBallVY, MaxBallVY)
}

// Reset sends the ball back the way it came from a fresh height.
// The ball restarts two paddle widths in from the edge opposite its new heading.
func (b *Ball) Reset(rng *rand.Rand) {
	b.VX = -b.VX
	b.Y = float64(rng.Intn(int(FieldHeight) + 1))

	if b.VX > 0 {
		b.X = PaddleWidth * 2
	} else {
		b.X = FieldWidth - PaddleWidth*2
	}
}

// Stop freezes the ball in place
func (b *Ball) Stop() {
	b.VX = 0
	b.VY = 0
}

func clamp(v, lo, hi float64) float64 {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}
