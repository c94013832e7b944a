package sim

// Intent is one player action, decoupled from the key that produced it.
// The input layer maps terminal events to intents; the simulator only
// sees these.
type Intent uint8

const (
	IntentNone Intent = iota
	IntentRotateLeft
	IntentRotateRight
	IntentRaiseUp
	IntentRaiseDown
	IntentFire
	IntentNewGame
	IntentQuit
)

func (i Intent) String() string {
	switch i {
	case IntentRotateLeft:
		return "rotate-left"
	case IntentRotateRight:
		return "rotate-right"
	case IntentRaiseUp:
		return "raise-up"
	case IntentRaiseDown:
		return "raise-down"
	case IntentFire:
		return "fire"
	case IntentNewGame:
		return "new-game"
	case IntentQuit:
		return "quit"
	default:
		return "none"
	}
}
