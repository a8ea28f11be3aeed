package game

import "errors"

// Illegal-action conditions. In strict mode ApplyAction rejects these
// with a distinguishable error; in permissive mode the caller is
// trusted and only structurally impossible actions are rejected.
var (
	ErrHandOver      = errors.New("hand is complete")
	ErrNotYourTurn   = errors.New("not this seat's turn")
	ErrAlreadyFolded = errors.New("seat has already folded")
	ErrRaiseTooSmall = errors.New("raise below minimum")
	ErrTooFewPlayers = errors.New("need at least two players")
)
