package game

const (
	TeleporterWidth  = 300.0
	TeleporterHeight = 5.0
)

// Edge is the field edge a teleporter band sits on
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
)

// Teleporter is a fixed trigger band. A ball entering one band reappears
// just inside the other.
type Teleporter struct {
	Edge   Edge
	X, Y   float64
	Width  float64
	Height float64
}

func NewTeleporter(edge Edge) *Teleporter {
	y := 0.0
	if edge == EdgeBottom {
		y = FieldHeight - TeleporterHeight
	}
	return &Teleporter{
		Edge:   edge,
		X:      FieldWidth/2 - TeleporterWidth/4,
		Y:      y,
		Width:  TeleporterWidth,
		Height: TeleporterHeight,
	}
}

// Triggered reports whether the ball at (x, y) has entered the band
func (t *Teleporter) Triggered(x, y float64) bool {
	if x < t.X || x > t.X+t.Width {
		return false
	}
	if t.Edge == EdgeTop {
		return y <= t.Height
	}
	return y >= FieldHeight-t.Height
}

// Exit is the height a ball is moved to when it arrives through this band
func (t *Teleporter) Exit() float64 {
	if t.Edge == EdgeTop {
		return t.Y + 1
	}
	return t.Y - 1
}
