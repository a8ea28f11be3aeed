// Package game owns the table state for a single hand of hold'em: the
// seated players, the pot, the community cards, and the betting round
// state machine that applies player actions and advances streets.
//
// A Table is single-owner and turn-sequential. External collaborators
// interact only through StartHand and ApplyAction and read the event
// strings those return; they never mutate table state directly.
package game

// Stage represents the current betting stage of a hand
type Stage int

const (
	PreFlop Stage = iota
	Flop
	Turn
	River
	Showdown
)

// String returns the display name of a stage
func (s Stage) String() string {
	switch s {
	case PreFlop:
		return "Pre-flop"
	case Flop:
		return "Flop"
	case Turn:
		return "Turn"
	case River:
		return "River"
	case Showdown:
		return "Showdown"
	default:
		return "Unknown"
	}
}

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
)

// String returns the lowercase action name
func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Raise:
		return "raise"
	default:
		return "unknown"
	}
}
