// Package input maps tcell key events to simulator intents. Keybindings
// live here and nowhere else.
package input

import (
	"github.com/gdamore/tcell/v2"

	"howitzer/sim"
)

// IntentFor translates one key event. Unbound keys map to IntentNone.
func IntentFor(ev *tcell.EventKey) sim.Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return sim.IntentQuit
	case tcell.KeyLeft:
		return sim.IntentRotateLeft
	case tcell.KeyRight:
		return sim.IntentRotateRight
	case tcell.KeyUp:
		return sim.IntentRaiseUp
	case tcell.KeyDown:
		return sim.IntentRaiseDown
	case tcell.KeyRune:
		return intentForRune(ev.Rune())
	}
	return sim.IntentNone
}

func intentForRune(r rune) sim.Intent {
	switch r {
	case ' ':
		return sim.IntentFire
	case 'h':
		return sim.IntentRotateLeft
	case 'l':
		return sim.IntentRotateRight
	case 'k':
		return sim.IntentRaiseUp
	case 'j':
		return sim.IntentRaiseDown
	case 'n':
		return sim.IntentNewGame
	case 'q':
		return sim.IntentQuit
	}
	return sim.IntentNone
}
