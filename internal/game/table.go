package game

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/deck"
)

// Config holds table-level settings. Strict enables legality
// validation: out-of-turn actions, acting after folding, and
// undersized raises are rejected instead of trusted.
type Config struct {
	SmallBlind    int
	BigBlind      int
	StartingStack int
	Strict        bool
}

// DefaultConfig returns the standard table configuration
func DefaultConfig() Config {
	return Config{
		SmallBlind:    10,
		BigBlind:      20,
		StartingStack: 1000,
	}
}

// Table is the owning aggregate for all per-hand game state. It is
// created once per session; StartHand resets it at each hand boundary
// carrying stacks and stats forward.
type Table struct {
	Players    []*Player
	Community  []deck.Card
	Pot        int
	Stage      Stage
	Dealer     int
	Active     int
	CurrentBet int
	MinRaise   int
	HandID     string
	HandNumber int

	cfg      Config
	rng      *rand.Rand
	logger   *log.Logger
	deck     *deck.Deck
	complete bool
	winner   int
}

// NewTable creates an empty table. The RNG drives every shuffle and is
// injected so tests can pin deals.
func NewTable(rng *rand.Rand, logger *log.Logger, cfg Config) *Table {
	if cfg.SmallBlind <= 0 {
		cfg.SmallBlind = DefaultConfig().SmallBlind
	}
	if cfg.BigBlind <= 0 {
		cfg.BigBlind = DefaultConfig().BigBlind
	}
	if cfg.StartingStack <= 0 {
		cfg.StartingStack = DefaultConfig().StartingStack
	}

	return &Table{
		cfg:    cfg,
		rng:    rng,
		logger: logger.WithPrefix("table"),
		winner: -1,
	}
}

// AddPlayer seats a player with the starting stack. Seating order is
// permanent for the session.
func (t *Table) AddPlayer(id, name string, isBot bool) *Player {
	p := &Player{
		ID:    id,
		Name:  name,
		Seat:  len(t.Players),
		Chips: t.cfg.StartingStack,
		IsBot: isBot,
	}
	t.Players = append(t.Players, p)
	return p
}

// Config returns the table configuration
func (t *Table) Config() Config {
	return t.cfg
}

// StartHand begins a new hand: the button advances one seat, stacks
// carry over from the previous hand, bankrupt players (stack below one
// big blind) are reset to the
// starting stack, a fresh shuffled deck deals two hole cards per seat,
// and the blinds are posted.
func (t *Table) StartHand() error {
	if len(t.Players) < 2 {
		return ErrTooFewPlayers
	}

	if t.HandNumber > 0 {
		t.Dealer = (t.Dealer + 1) % len(t.Players)
	}
	t.HandNumber++
	t.HandID = fmt.Sprintf("hand-%d", t.HandNumber)
	t.Community = nil
	t.Pot = 0
	t.Stage = PreFlop
	t.CurrentBet = 0
	t.MinRaise = t.cfg.BigBlind
	t.complete = false
	t.winner = -1

	for _, p := range t.Players {
		if p.Chips < t.cfg.BigBlind {
			p.Chips = t.cfg.StartingStack
		}
		p.Bet = 0
		p.Folded = false
		p.HoleCards = nil
		p.startChips = p.Chips
		p.trackedPreflop = false
	}

	t.deck = deck.New(t.rng)
	for _, p := range t.Players {
		p.HoleCards = t.deck.DealN(2)
	}

	t.postBlinds()
	t.Active = t.firstToActPreFlop()

	t.logger.Debug("hand started",
		"hand", t.HandID,
		"dealer", t.Dealer,
		"pot", t.Pot,
		"active", t.Active)

	return nil
}

// postBlinds moves the small and big blinds into the pot. Heads-up the
// dealer posts the small blind.
func (t *Table) postBlinds() {
	n := len(t.Players)

	var sbSeat, bbSeat int
	if n == 2 {
		sbSeat = t.Dealer
		bbSeat = (t.Dealer + 1) % n
	} else {
		sbSeat = (t.Dealer + 1) % n
		bbSeat = (t.Dealer + 2) % n
	}

	sb := t.Players[sbSeat]
	amount := min(t.cfg.SmallBlind, sb.Chips)
	sb.Chips -= amount
	sb.Bet = amount
	t.Pot += amount

	bb := t.Players[bbSeat]
	amount = min(t.cfg.BigBlind, bb.Chips)
	bb.Chips -= amount
	bb.Bet = amount
	t.Pot += amount
	t.CurrentBet = amount
}

// firstToActPreFlop returns the seat acting first before the flop:
// heads-up the dealer/small blind, otherwise the seat after the big
// blind.
func (t *Table) firstToActPreFlop() int {
	n := len(t.Players)
	if n == 2 {
		return t.Dealer
	}
	return t.nextInHand((t.Dealer + 3) % n)
}

// nextInHand returns the first non-folded seat at or after from,
// scanning at most one full rotation.
func (t *Table) nextInHand(from int) int {
	n := len(t.Players)
	for i := 0; i < n; i++ {
		seat := (from + i) % n
		if t.Players[seat].InHand() {
			return seat
		}
	}
	return -1
}

// Complete returns true once the hand has been resolved
func (t *Table) Complete() bool {
	return t.complete
}

// Winner returns the winning seat of a completed hand, -1 otherwise
func (t *Table) Winner() int {
	return t.winner
}

// ActivePlayer returns the player whose turn it is, nil if the hand is
// complete
func (t *Table) ActivePlayer() *Player {
	if t.complete || t.Active < 0 || t.Active >= len(t.Players) {
		return nil
	}
	return t.Players[t.Active]
}

// CallAmount returns the chips the seat must add to match the current
// bet, zero if already matched
func (t *Table) CallAmount(seat int) int {
	call := t.CurrentBet - t.Players[seat].Bet
	if call < 0 {
		return 0
	}
	return call
}

// ActiveOpponents returns the number of non-folded players other than
// the given seat
func (t *Table) ActiveOpponents(seat int) int {
	count := 0
	for _, p := range t.Players {
		if p.Seat != seat && p.InHand() {
			count++
		}
	}
	return count
}

// InHandCount returns the number of non-folded players
func (t *Table) InHandCount() int {
	count := 0
	for _, p := range t.Players {
		if p.InHand() {
			count++
		}
	}
	return count
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
