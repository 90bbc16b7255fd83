package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/rong/internal/game"
)

// HoldTicks is how long a key counts as held after its last press event
// (~133ms at 60Hz). Terminals report presses and auto-repeat but never
// releases, so a held key shows up as a stream of presses.
const HoldTicks = 8

// Control is one of the four logical paddle controls
type Control int

const (
	ControlNone Control = iota
	ControlP1Up
	ControlP1Down
	ControlP2Up
	ControlP2Down
)

// KeyToControl maps a key event to a paddle control.
// Player 1 uses W/S, player 2 the arrow keys.
func KeyToControl(key tcell.Key, r rune) Control {
	switch key {
	case tcell.KeyUp:
		return ControlP2Up
	case tcell.KeyDown:
		return ControlP2Down
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return ControlP1Up
		case 's', 'S':
			return ControlP1Down
		}
	}
	return ControlNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// KeyState turns press events into per-tick held flags
type KeyState struct {
	hold [5]int // indexed by Control
}

// opposite returns the other direction of the same paddle
func opposite(c Control) Control {
	switch c {
	case ControlP1Up:
		return ControlP1Down
	case ControlP1Down:
		return ControlP1Up
	case ControlP2Up:
		return ControlP2Down
	case ControlP2Down:
		return ControlP2Up
	}
	return ControlNone
}

// Press marks c as held for the next HoldTicks snapshots. Pressing one
// direction releases the other on the same paddle.
func (k *KeyState) Press(c Control) {
	if c == ControlNone {
		return
	}
	k.hold[c] = HoldTicks
	k.hold[opposite(c)] = 0
}

// Snapshot returns the input for the current tick and ages every hold by one tick
func (k *KeyState) Snapshot() game.Input {
	in := game.Input{
		P1Up:   k.hold[ControlP1Up] > 0,
		P1Down: k.hold[ControlP1Down] > 0,
		P2Up:   k.hold[ControlP2Up] > 0,
		P2Down: k.hold[ControlP2Down] > 0,
	}
	for i := range k.hold {
		if k.hold[i] > 0 {
			k.hold[i]--
		}
	}
	return in
}

// Reset releases every control
func (k *KeyState) Reset() {
	k.hold = [5]int{}
}
