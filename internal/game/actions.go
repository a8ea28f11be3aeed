package game

import (
	"fmt"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/evaluator"
)

// ApplyAction applies a player action to the table and returns the
// event strings describing what happened, for an external telemetry
// panel to display.
//
// For Check and Call the call amount is computed from the current bet
// and clamped to the player's stack, so a short call is an all-in.
// For Raise the amount is the total contribution level being set for
// this street, not a delta; it too is clamped to an all-in. In strict
// mode illegal actions are rejected with a sentinel error; in
// permissive mode callers are trusted and an unraisable Raise falls
// back to a call.
func (t *Table) ApplyAction(seat int, action Action, amount int) ([]string, error) {
	if t.complete {
		return nil, ErrHandOver
	}
	if seat < 0 || seat >= len(t.Players) {
		return nil, fmt.Errorf("invalid seat %d", seat)
	}

	p := t.Players[seat]
	if t.cfg.Strict {
		if seat != t.Active {
			return nil, fmt.Errorf("%w: seat %d acted, seat %d is active", ErrNotYourTurn, seat, t.Active)
		}
		if p.Folded {
			return nil, fmt.Errorf("%w: seat %d", ErrAlreadyFolded, seat)
		}
	}

	preflop := t.Stage == PreFlop
	if preflop && !p.trackedPreflop {
		p.Stats.HandsPlayed++
		p.trackedPreflop = true
	}

	var events []string

	switch action {
	case Fold:
		p.Folded = true
		events = append(events, fmt.Sprintf("%s folds.", p.Name))

	case Check, Call:
		events = append(events, t.applyCall(p, preflop))

	case Raise:
		if amount > p.Bet+p.Chips {
			amount = p.Bet + p.Chips
		}
		if amount <= p.Bet {
			// Nothing to raise with; an all-in player checking down
			// the hand lands here.
			events = append(events, t.applyCall(p, preflop))
			break
		}
		if t.cfg.Strict && amount < t.CurrentBet+t.MinRaise && amount < p.Bet+p.Chips {
			return nil, fmt.Errorf("%w: raise to %d, minimum %d", ErrRaiseTooSmall, amount, t.CurrentBet+t.MinRaise)
		}

		put := amount - p.Bet
		p.Chips -= put
		p.Bet = amount
		t.Pot += put
		if amount > t.CurrentBet {
			t.MinRaise = amount - t.CurrentBet
			t.CurrentBet = amount
		}

		if preflop {
			p.Stats.VPIPCount++
			p.Stats.PFRCount++
		}
		events = append(events, fmt.Sprintf("%s raises to $%d.", p.Name, amount))

	default:
		return nil, fmt.Errorf("unknown action %d", action)
	}

	t.logger.Debug("action applied",
		"hand", t.HandID,
		"seat", seat,
		"action", action,
		"amount", amount,
		"pot", t.Pot,
		"currentBet", t.CurrentBet)

	t.advanceTurn()
	events = append(events, t.maybeCompleteRound()...)

	return events, nil
}

// applyCall moves the call amount (possibly zero, possibly a short
// all-in) from stack to pot and returns the event string.
func (t *Table) applyCall(p *Player, preflop bool) string {
	call := t.CurrentBet - p.Bet
	if call < 0 {
		call = 0
	}
	if call > p.Chips {
		call = p.Chips
	}

	p.Chips -= call
	p.Bet += call
	t.Pot += call

	if call == 0 {
		return fmt.Sprintf("%s checks.", p.Name)
	}
	if preflop {
		p.Stats.VPIPCount++
	}
	return fmt.Sprintf("%s calls $%d.", p.Name, call)
}

// advanceTurn moves the action to the next non-folded seat. The scan
// is bounded to one rotation so a table of folded seats cannot loop.
func (t *Table) advanceTurn() {
	n := len(t.Players)
	next := (t.Active + 1) % n
	for i := 0; i < n && t.Players[next].Folded; i++ {
		next = (next + 1) % n
	}
	t.Active = next
}

// maybeCompleteRound detects the end of the current betting round and
// either awards an uncontested pot, advances the street, or resolves
// the showdown.
//
// A round is complete when a single non-folded player remains, or when
// every non-folded player has matched the current bet (an all-in seat
// counts as matched at its short amount). Before the flop the matched
// amount must also be at least the big blind, so the blinds-only state
// is not mistaken for a completed round.
func (t *Table) maybeCompleteRound() []string {
	var inHand []*Player
	for _, p := range t.Players {
		if p.InHand() {
			inHand = append(inHand, p)
		}
	}

	if len(inHand) == 1 {
		winner := inHand[0]
		winner.Chips += t.Pot
		event := fmt.Sprintf("%s wins $%d unopposed.", winner.Name, t.Pot)
		t.finishHand(winner.Seat)
		return []string{event}
	}

	for _, p := range inHand {
		if p.Bet != t.CurrentBet && p.Chips > 0 {
			return nil
		}
	}
	if t.Stage == PreFlop && t.CurrentBet < t.cfg.BigBlind {
		return nil
	}

	return t.advanceStreet()
}

// advanceStreet resets the per-street betting state and moves to the
// next stage, dealing community cards or resolving the showdown.
func (t *Table) advanceStreet() []string {
	for _, p := range t.Players {
		p.Bet = 0
	}
	t.CurrentBet = 0
	t.MinRaise = t.cfg.BigBlind

	switch t.Stage {
	case PreFlop:
		t.Stage = Flop
		t.Community = append(t.Community, t.deck.DealN(3)...)
	case Flop:
		t.Stage = Turn
		t.Community = append(t.Community, t.deck.DealN(1)...)
	case Turn:
		t.Stage = River
		t.Community = append(t.Community, t.deck.DealN(1)...)
	case River:
		return t.resolveShowdown()
	default:
		return nil
	}

	t.logger.Debug("street advanced",
		"hand", t.HandID,
		"stage", t.Stage,
		"community", t.Community,
		"pot", t.Pot)

	t.Active = t.nextInHand((t.Dealer + 1) % len(t.Players))
	return nil
}

// resolveShowdown evaluates every non-folded player's hole and
// community cards and credits the full pot to the single best hand.
// Equal values go to the first seat enumerated; the pot is not split.
func (t *Table) resolveShowdown() []string {
	t.Stage = Showdown

	var winner *Player
	var best evaluator.Evaluation
	for _, p := range t.Players {
		if p.Folded {
			continue
		}
		eval := evaluator.Evaluate(append(append([]deck.Card{}, p.HoleCards...), t.Community...))
		if winner == nil || eval.Value > best.Value {
			winner = p
			best = eval
		}
	}

	winner.Chips += t.Pot
	event := fmt.Sprintf("Showdown! %s wins with %s.", winner.Name, best.Label)
	t.finishHand(winner.Seat)
	return []string{event}
}

// finishHand marks the hand complete and settles profit stats
func (t *Table) finishHand(winnerSeat int) {
	t.complete = true
	t.winner = winnerSeat
	for _, p := range t.Players {
		p.Stats.TotalProfit += p.Chips - p.startChips
	}

	t.logger.Debug("hand complete",
		"hand", t.HandID,
		"winner", t.Players[winnerSeat].Name,
		"pot", t.Pot)
}
