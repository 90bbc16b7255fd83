package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/rong/internal/view"
)

const (
	BallChar       = '\u2B24' // ⬤
	PaddleChar     = '\u2588' // █
	TeleporterChar = '\u2580' // ▀
	DividerChar    = '|'
)

// Renderer draws frames onto a terminal screen. Row 0 holds the scores and
// the last row the status bar; the field is scaled into the rows between.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// court maps field coordinates onto screen cells
type court struct {
	w, h           int // screen size
	scaleX, scaleY float64
}

func newCourt(screenW, screenH int, f view.Frame) court {
	return court{
		w:      screenW,
		h:      screenH,
		scaleX: float64(screenW) / f.FieldWidth,
		scaleY: float64(screenH-2) / f.FieldHeight,
	}
}

func (c court) col(x float64) int {
	return int(x * c.scaleX)
}

func (c court) row(y float64) int {
	return int(y*c.scaleY) + 1
}

// inField reports whether a cell is between the score line and the status bar
func (c court) inField(x, y int) bool {
	return x >= 0 && x < c.w && y >= 1 && y < c.h-1
}

// cells converts a rectangle to a cell span, never smaller than one cell
func (c court) cells(r view.Rect) (x, y, w, h int) {
	x, y = c.col(r.X), c.row(r.Y)
	w = int(r.W * c.scaleX)
	h = int(r.H * c.scaleY)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return x, y, w, h
}

func (r *Renderer) fill(c court, rect view.Rect, style tcell.Style, ch rune) {
	x0, y0, w, h := c.cells(rect)
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			if c.inField(x, y) {
				r.screen.SetCell(x, y, style, ch)
			}
		}
	}
}

// RenderGame displays the field, scores and a status line
func (r *Renderer) RenderGame(f view.Frame, status string) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	c := newCourt(screenW, screenH, f)

	// Court background
	r.screen.FillRect(0, 0, screenW, screenH-1, CourtStyle, ' ')

	// Centre dashed line
	divX := c.col(f.Divider.X1)
	for y := c.row(f.Divider.Y1); y <= c.row(f.Divider.Y2); y += 2 {
		if c.inField(divX, y) {
			r.screen.SetCell(divX, y, DividerStyle, DividerChar)
		}
	}

	r.fill(c, f.TopZone, TeleporterStyle, TeleporterChar)
	r.fill(c, f.BottomZone, TeleporterStyle, TeleporterChar)
	r.fill(c, f.LeftPaddle, PaddleStyle, PaddleChar)
	r.fill(c, f.RightPaddle, PaddleStyle, PaddleChar)

	// Ball
	ballX, ballY := c.col(f.Ball.X), c.row(f.Ball.Y)
	if c.inField(ballX, ballY) {
		r.screen.SetCell(ballX, ballY, BallStyle, BallChar)
	}

	r.renderScores(f, screenW)

	if f.GameOver {
		r.renderGameOver(f, screenW, screenH)
	}

	// Status bar at bottom
	statusY := screenH - 1
	for x := 0; x < screenW; x++ {
		r.screen.SetCell(x, statusY, StatusStyle, ' ')
	}
	r.screen.DrawText(0, statusY, status, StatusStyle)

	r.screen.Show()
}

// renderScores centres each label over its half of the field
func (r *Renderer) renderScores(f view.Frame, screenW int) {
	leftStyle, rightStyle := ScoreStyle, ScoreStyle
	if f.GameOver {
		leftStyle, rightStyle = resultStyle(f.LeftScore), resultStyle(f.RightScore)
	}
	r.screen.DrawText(screenW/4-len(f.LeftScore)/2, 0, f.LeftScore, leftStyle)
	r.screen.DrawText(screenW*3/4-len(f.RightScore)/2, 0, f.RightScore, rightStyle)
}

func resultStyle(label string) tcell.Style {
	if label == "W" {
		return WinStyle
	}
	return LoseStyle
}

// renderGameOver draws a banner naming the winning side
func (r *Renderer) renderGameOver(f view.Frame, screenW, screenH int) {
	winner := "RIGHT WINS!"
	if f.LeftScore == "W" {
		winner = "LEFT WINS!"
	}

	boxW := 24
	boxH := 5
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2
	boxStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	r.screen.FillRect(boxX, boxY, boxW, boxH, boxStyle, ' ')
	r.screen.DrawBox(boxX, boxY, boxW, boxH, boxStyle)

	title := "GAME OVER"
	r.screen.DrawText((screenW-len(title))/2, boxY+1, title, boxStyle.Bold(true))
	r.screen.DrawText((screenW-len(winner))/2, boxY+3, winner, boxStyle.Foreground(tcell.ColorGreen).Bold(true))
}
