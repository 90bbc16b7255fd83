package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/diegok/rong/internal/game"
	"github.com/diegok/rong/internal/view"
)

const (
	Title = "rong!"
	Scale = 2 // window pixels per field unit

	scoreScale   = 7 // basicfont glyphs are 7x13, scaled up for the score
	dividerWidth = 3
)

var (
	bgColor         = color.Black
	objColor        = color.White
	teleporterColor = color.RGBA{255, 0, 0, 255}
	hintColor       = color.RGBA{200, 200, 200, 200}
)

// host adapts a GameState to ebiten's Game interface
type host struct {
	state  *game.GameState
	onStep func(game.Events)
	glyph  *ebiten.Image // scratch image for rendering score text before scaling
}

// Run opens the window and blocks until it is closed or Escape is pressed.
// onStep, when set, receives the events of every tick.
func Run(state *game.GameState, onStep func(game.Events)) error {
	ebiten.SetWindowSize(int(game.FieldWidth)*Scale, int(game.FieldHeight)*Scale)
	ebiten.SetWindowTitle(Title)
	ebiten.SetTPS(game.TickRate)

	h := &host{
		state:  state,
		onStep: onStep,
		glyph:  ebiten.NewImage(7, 13),
	}
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("failed to run window: %w", err)
	}
	return nil
}

// readInput polls the keyboard for the four paddle controls
func readInput(pressed func(ebiten.Key) bool) game.Input {
	return game.Input{
		P1Up:   pressed(ebiten.KeyW),
		P1Down: pressed(ebiten.KeyS),
		P2Up:   pressed(ebiten.KeyArrowUp),
		P2Down: pressed(ebiten.KeyArrowDown),
	}
}

// Update runs one tick
func (h *host) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	ev := h.state.Step(readInput(ebiten.IsKeyPressed))
	if h.onStep != nil {
		h.onStep(ev)
	}
	return nil
}

// Draw renders the current frame
func (h *host) Draw(screen *ebiten.Image) {
	f := h.state.Frame()
	screen.Fill(bgColor)

	fillRect(screen, f.LeftPaddle, objColor)
	fillRect(screen, f.RightPaddle, objColor)
	fillRect(screen, f.TopZone, teleporterColor)
	fillRect(screen, f.BottomZone, teleporterColor)

	vector.DrawFilledCircle(screen, float32(f.Ball.X), float32(f.Ball.Y), float32(f.Ball.Radius), objColor, true)
	vector.StrokeLine(screen,
		float32(f.Divider.X1), float32(f.Divider.Y1),
		float32(f.Divider.X2), float32(f.Divider.Y2),
		dividerWidth, objColor, false)

	h.drawScore(screen, f.LeftScore, f.FieldWidth/2-150, 50)
	h.drawScore(screen, f.RightScore, f.FieldWidth/2+100, 50)

	if f.GameOver {
		text.Draw(screen, "GAME OVER - Esc to quit", basicfont.Face7x13, int(f.FieldWidth)/2-80, int(f.FieldHeight)-20, hintColor)
	} else {
		ebitenutil.DebugPrint(screen, "W/S  Up/Down  Esc")
	}
}

// Layout fixes the logical resolution to the field size
func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(game.FieldWidth), int(game.FieldHeight)
}

func fillRect(dst *ebiten.Image, r view.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// drawScore draws a large score label with its top-left corner at (x, y)
func (h *host) drawScore(dst *ebiten.Image, label string, x, y float64) {
	h.glyph.Clear()
	// basicfont draws from the baseline; 11 keeps the glyph inside the 13px scratch image
	text.Draw(h.glyph, label, basicfont.Face7x13, 0, 11, objColor)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scoreScale, scoreScale)
	op.GeoM.Translate(x, y)
	dst.DrawImage(h.glyph, op)
}
