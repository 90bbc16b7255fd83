package game

import (
	"math"
	"math/rand"
)

// AI steers a paddle toward the ball, capped at PaddleSpeed per tick.
// With Noise set each move is jittered by up to one unit either way.
type AI struct {
	Noise bool
	rng   *rand.Rand
}

func NewAI(noise bool, rng *rand.Rand) *AI {
	return &AI{Noise: noise, rng: rng}
}

// Track moves p one tick toward ballY
func (ai *AI) Track(p *Paddle, ballY float64) {
	offset := ballY - p.ReferenceY()

	var move float64
	switch {
	case offset > 0 && p.canMoveDown():
		move = math.Min(offset, PaddleSpeed)
	case offset < 0 && p.canMoveUp():
		move = math.Max(offset, -PaddleSpeed)
	default:
		return
	}

	if ai.Noise {
		move += ai.rng.Float64()*2 - 1
	}
	p.Y += move
}
