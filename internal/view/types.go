package view

// Rect is an axis-aligned rectangle in field coordinates (top-left origin)
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Circle is a filled circle in field coordinates
type Circle struct {
	X      float64
	Y      float64
	Radius float64
}

// Line is a straight segment in field coordinates
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Frame is everything a host needs to draw one tick.
// It is a copy; mutating it never touches the simulation.
type Frame struct {
	FieldWidth  float64
	FieldHeight float64

	LeftPaddle  Rect
	RightPaddle Rect
	Ball        Circle
	TopZone     Rect
	BottomZone  Rect
	Divider     Line

	// Score labels: the digit count while playing, "W" or "L" once the game is over
	LeftScore  string
	RightScore string
	GameOver   bool
}
