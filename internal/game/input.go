package game

import "strings"

// Input is the pressed state of the four logical controls for one tick.
// P2 keys are ignored while the right paddle is AI controlled.
type Input struct {
	P1Up   bool
	P1Down bool
	P2Up   bool
	P2Down bool
}

// Events reports what happened during a single Step
type Events uint8

const (
	EventPaddleHit Events = 1 << iota
	EventWallBounce
	EventTeleport
	EventLeftScored
	EventRightScored
	EventGameOver
)

var eventNames = []struct {
	ev   Events
	name string
}{
	{EventPaddleHit, "paddle-hit"},
	{EventWallBounce, "wall-bounce"},
	{EventTeleport, "teleport"},
	{EventLeftScored, "left-scored"},
	{EventRightScored, "right-scored"},
	{EventGameOver, "game-over"},
}

// Has reports whether all events in other are set
func (e Events) Has(other Events) bool {
	return e&other == other
}

func (e Events) String() string {
	if e == 0 {
		return "none"
	}
	var parts []string
	for _, n := range eventNames {
		if e.Has(n.ev) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
