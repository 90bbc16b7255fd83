package game

import (
	"math"
	"math/rand"
	"testing"
)

func TestBall_New(t *testing.T) {
	ball := NewBall()

	if ball.X != 400 || ball.Y != 200 {
		t.Errorf("expected ball at (400, 200), got (%f, %f)", ball.X, ball.Y)
	}
	if ball.VX != 12 || ball.VY != 1 {
		t.Errorf("expected velocity (12, 1), got (%f, %f)", ball.VX, ball.VY)
	}
	if ball.Radius != 10 {
		t.Errorf("expected radius 10, got %f", ball.Radius)
	}
}

func TestBall_Move(t *testing.T) {
	ball := NewBall()
	ball.X, ball.Y = 10.0, 20.0
	ball.VX, ball.VY = 1.0, -0.5

	ball.Move()

	if ball.X != 11.0 {
		t.Errorf("expected X=11.0, got %f", ball.X)
	}
	if ball.Y != 19.5 {
		t.Errorf("expected Y=19.5, got %f", ball.Y)
	}
}

func TestBall_BounceVertical(t *testing.T) {
	ball := NewBall()
	ball.Y = -1
	ball.VX, ball.VY = 12, -3

	ball.BounceVertical()

	if ball.VX != 12 {
		t.Errorf("expected VX=12 (unchanged), got %f", ball.VX)
	}
	if ball.VY != 3 {
		t.Errorf("expected VY=3, got %f", ball.VY)
	}
	if ball.Y != -1 {
		t.Errorf("expected Y to stay at -1, got %f", ball.Y)
	}
}

func TestBall_Deflect(t *testing.T) {
	tests := []struct {
		name   string
		y      float64
		vx, vy float64
		refY   float64
		wantVX float64
		wantVY float64
	}{
		{"centre hit goes straight", 200, -12, 1, 200, 12, 0},
		{"below reference angles down", 220, -12, 2, 200, 12, 2.8},
		{"above reference angles up", 180, 12, -2, 200, -12, -2.8},
		{"far below is capped", 249, -12, 2, 200, 12, 5},
		{"far above is capped", 150, 12, 4, 200, -12, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := NewBall()
			ball.Y = tt.y
			ball.VX, ball.VY = tt.vx, tt.vy

			ball.Deflect(tt.refY)

			if ball.VX != tt.wantVX {
				t.Errorf("expected VX=%f, got %f", tt.wantVX, ball.VX)
			}
			if math.Abs(ball.VY-tt.wantVY) > 1e-9 {
				t.Errorf("expected VY=%f, got %f", tt.wantVY, ball.VY)
			}
		})
	}
}

func TestBall_ResetHeadingLeft(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ball := NewBall()
	ball.X = 805
	ball.VX = 12

	ball.Reset(rng)

	if ball.VX != -12 {
		t.Errorf("expected VX=-12, got %f", ball.VX)
	}
	if ball.X != FieldWidth-2*PaddleWidth {
		t.Errorf("expected X=%f, got %f", FieldWidth-2*PaddleWidth, ball.X)
	}
}

func TestBall_ResetHeadingRight(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ball := NewBall()
	ball.X = -3
	ball.VX = -12

	ball.Reset(rng)

	if ball.VX != 12 {
		t.Errorf("expected VX=12, got %f", ball.VX)
	}
	if ball.X != 2*PaddleWidth {
		t.Errorf("expected X=%f, got %f", 2*PaddleWidth, ball.X)
	}
}

func TestBall_ResetHeightInField(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ball := NewBall()

	for i := 0; i < 1000; i++ {
		ball.Reset(rng)
		if ball.Y < 0 || ball.Y > FieldHeight {
			t.Fatalf("reset height %f outside [0, %f]", ball.Y, FieldHeight)
		}
		if ball.Y != math.Trunc(ball.Y) {
			t.Fatalf("expected whole-number reset height, got %f", ball.Y)
		}
	}
}

func TestBall_Stop(t *testing.T) {
	ball := NewBall()
	ball.Stop()

	if ball.VX != 0 || ball.VY != 0 {
		t.Errorf("expected zero velocity, got (%f, %f)", ball.VX, ball.VY)
	}
}
