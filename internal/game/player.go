package game

import "github.com/lox/holdem-engine/internal/deck"

// Stats tracks cumulative behavioral statistics for a player across
// hands: hands played, voluntarily-put-money-in-pot and pre-flop-raise
// counts, and total chip profit.
type Stats struct {
	HandsPlayed int
	VPIPCount   int
	PFRCount    int
	TotalProfit int
}

// Player represents a seated player. Chips and Bet are non-negative;
// Bet is the player's contribution to the current street only.
type Player struct {
	ID        string
	Name      string
	Seat      int
	Chips     int
	HoleCards []deck.Card
	Bet       int
	Folded    bool
	IsBot     bool
	Stats     Stats

	startChips     int
	trackedPreflop bool
}

// InHand returns true if the player has not folded
func (p *Player) InHand() bool {
	return !p.Folded
}

// AllIn returns true if the player has committed their entire stack
func (p *Player) AllIn() bool {
	return p.Chips == 0 && p.Bet > 0
}
