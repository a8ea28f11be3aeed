package bot

import (
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/game"
)

// pinned returns an estimator that ignores the cards and reports a
// fixed equity, making the decision tree a pure function of the pot.
func pinned(eq float64) Estimator {
	return func(_, _ []deck.Card, _, _ int, _ *rand.Rand) float64 {
		return eq
	}
}

func newBotTable(t *testing.T, seats int) *game.Table {
	t.Helper()
	table := game.NewTable(rand.New(rand.NewSource(1)), log.New(io.Discard), game.DefaultConfig())
	for i := 0; i < seats; i++ {
		table.AddPlayer(string(rune('a'+i)), "Player "+string(rune('A'+i)), true)
	}
	require.NoError(t, table.StartHand())
	return table
}

func newPinnedPolicy(eq float64) *Policy {
	return New(rand.New(rand.NewSource(1)), log.New(io.Discard),
		WithEstimator(pinned(eq)),
		WithDeterministic())
}

func TestMonsterHandRaisesForValue(t *testing.T) {
	table := newBotTable(t, 2)
	policy := newPinnedPolicy(0.90)

	// Dealer seat acts in position: pot 30, raise = pot * 0.75 * 1.2
	d := policy.Decide(table, 0)
	assert.Equal(t, game.Raise, d.Action)
	assert.Equal(t, 27, d.Amount)
	assert.InDelta(t, 0.90, d.Equity, 1e-9)
}

func TestMonsterHandOutOfPositionSizesSmaller(t *testing.T) {
	table := newBotTable(t, 3)
	policy := newPinnedPolicy(0.90)

	// Seat 1 is not the dealer: pot 30, raise = max(minRaise 20, 30*0.75*0.9)
	d := policy.Decide(table, 1)
	assert.Equal(t, game.Raise, d.Action)
	assert.Equal(t, 20, d.Amount)
}

func TestCallsWhenEquityBeatsPotOdds(t *testing.T) {
	table := newBotTable(t, 2)
	policy := newPinnedPolicy(0.50)

	// Seat 0 owes 10 into a pot of 30: pot odds 0.25
	d := policy.Decide(table, 0)
	assert.Equal(t, game.Call, d.Action)
	assert.Equal(t, 10, d.Amount)
}

func TestFoldsWhenPriceIsWrong(t *testing.T) {
	table := newBotTable(t, 2)
	policy := newPinnedPolicy(0.10)

	// Equity 0.10 < pot odds 0.25 and EV = 0.1*30 - 0.9*10 < 0
	d := policy.Decide(table, 0)
	assert.Equal(t, game.Fold, d.Action)
	assert.Less(t, d.EV, 0.0)
}

func TestCallsOnPositiveExpectedValue(t *testing.T) {
	table := newBotTable(t, 2)
	table.Pot = 100
	table.CurrentBet = 50
	table.Players[0].Bet = 0
	policy := newPinnedPolicy(0.40)

	// Pot odds = 50/150 = 0.333; equity 0.40 clears it
	d := policy.Decide(table, 0)
	assert.Equal(t, game.Call, d.Action)
	assert.Equal(t, 50, d.Amount)
}

func TestProbeBetsWithDecentEquity(t *testing.T) {
	table := newBotTable(t, 3)
	table.Stage = game.Flop
	table.Pot = 60
	table.CurrentBet = 0
	for _, p := range table.Players {
		p.Bet = 0
	}
	policy := newPinnedPolicy(0.60)

	// No bet to face, equity above the probe threshold:
	// raise = max(minRaise 20, 60*0.40*0.9 = 21) out of position
	d := policy.Decide(table, 1)
	assert.Equal(t, game.Raise, d.Action)
	assert.Equal(t, 21, d.Amount)
}

func TestChecksBehindWithWeakEquity(t *testing.T) {
	table := newBotTable(t, 3)
	table.Stage = game.Flop
	table.Pot = 60
	table.CurrentBet = 0
	for _, p := range table.Players {
		p.Bet = 0
	}
	policy := newPinnedPolicy(0.30)

	d := policy.Decide(table, 1)
	assert.Equal(t, game.Check, d.Action)
}

func TestRaiseDowngradesWhenBroke(t *testing.T) {
	table := newBotTable(t, 3)
	table.Stage = game.Flop
	table.Pot = 60
	table.CurrentBet = 0
	for _, p := range table.Players {
		p.Bet = 0
	}
	table.Players[1].Chips = 0
	policy := newPinnedPolicy(0.95)

	// A monster with no chips behind cannot raise; the policy never
	// hands the state machine an unfundable amount
	d := policy.Decide(table, 1)
	assert.Equal(t, game.Check, d.Action)
}

func TestMonsterRaiseClampsToStack(t *testing.T) {
	table := newBotTable(t, 3)
	table.Stage = game.Turn
	table.Pot = 5000
	table.CurrentBet = 0
	for _, p := range table.Players {
		p.Bet = 0
	}
	policy := newPinnedPolicy(0.95)

	// Pot-fraction sizing exceeds the stack, so the raise is the
	// bot's whole remaining stack
	d := policy.Decide(table, 1)
	assert.Equal(t, game.Raise, d.Action)
	assert.Equal(t, table.Players[1].Chips+table.Players[1].Bet, d.Amount)
}

func TestSlowPlayOnlyOffRiver(t *testing.T) {
	table := newBotTable(t, 2)
	table.Stage = game.River
	table.Pot = 100
	table.CurrentBet = 0
	for _, p := range table.Players {
		p.Bet = 0
	}

	// Force the slow-play branch point to fire; on the river it must
	// be ignored and the monster still bets
	policy := New(rand.New(rand.NewSource(1)), log.New(io.Discard),
		WithEstimator(pinned(0.95)))

	for i := 0; i < 50; i++ {
		d := policy.Decide(table, 0)
		require.Equal(t, game.Raise, d.Action, "river monster must never check")
	}
}

func TestDefaultSamplesApplied(t *testing.T) {
	var gotIterations int
	estimator := func(_, _ []deck.Card, _, iterations int, _ *rand.Rand) float64 {
		gotIterations = iterations
		return 0.5
	}

	table := newBotTable(t, 2)
	policy := New(rand.New(rand.NewSource(1)), log.New(io.Discard),
		WithEstimator(estimator),
		WithDeterministic())
	policy.Decide(table, 0)

	assert.Equal(t, DefaultSamples, gotIterations)
}
