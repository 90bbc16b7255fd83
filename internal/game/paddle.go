package game

const (
	PaddleWidth  = 40.0
	PaddleHeight = 200.0
	PaddleSpeed  = 6.0
)

// Side identifies which end of the field a paddle guards
type Side int

const (
	SideLeft  Side = 0
	SideRight Side = 1
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Controller says who drives a paddle
type Controller int

const (
	ControlHuman Controller = iota
	ControlAI
)

// Paddle stores its top edge in Y. X never changes after creation.
type Paddle struct {
	Side       Side
	Controller Controller
	X          float64
	Y          float64
}

func NewPaddle(side Side, ctrl Controller) *Paddle {
	x := PaddleWidth / 2
	if side == SideRight {
		x = FieldWidth - PaddleWidth
	}
	return &Paddle{
		Side:       side,
		Controller: ctrl,
		X:          x,
		Y:          FieldHeight/2 - PaddleHeight/4,
	}
}

// canMoveDown and canMoveUp are checked before a move, never after, so a
// paddle can end up one step past either limit
func (p *Paddle) canMoveDown() bool {
	return p.Y <= FieldHeight-PaddleHeight/2
}

func (p *Paddle) canMoveUp() bool {
	return p.Y >= 0
}

// Drive applies one tick of keyboard input. Down wins when both are held.
func (p *Paddle) Drive(up, down bool) {
	if down && p.canMoveDown() {
		p.Y += PaddleSpeed
	} else if up && p.canMoveUp() {
		p.Y -= PaddleSpeed
	}
}

// ReferenceY is the point the ball is measured against for deflection and AI tracking
func (p *Paddle) ReferenceY() float64 {
	return p.Y + PaddleHeight/4
}

// hitWidth is the horizontal extent of the collision box. The left paddle
// only collides on half its width.
func (p *Paddle) hitWidth() float64 {
	if p.Side == SideLeft {
		return PaddleWidth / 2
	}
	return PaddleWidth
}

// Contains reports whether a point lies inside the paddle's collision box
func (p *Paddle) Contains(x, y float64) bool {
	return x >= p.X && x <= p.X+p.hitWidth() &&
		y >= p.Y && y <= p.Y+PaddleHeight/2
}

// Approaching reports whether a ball with horizontal velocity vx is moving toward the paddle
func (p *Paddle) Approaching(vx float64) bool {
	if p.Side == SideLeft {
		return vx < 0
	}
	return vx > 0
}

// Bounds returns the drawn rectangle (full paddle size)
func (p *Paddle) Bounds() (x, y, w, h float64) {
	return p.X, p.Y, PaddleWidth, PaddleHeight
}
