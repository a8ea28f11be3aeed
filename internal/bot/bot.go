// Package bot converts table state into an action for a non-human
// seat using Monte Carlo equity, pot odds, and expected value.
package bot

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/equity"
	"github.com/lox/holdem-engine/internal/game"
)

// DefaultSamples is the equity sample count used per decision
const DefaultSamples = 300

// Thresholds and sizing factors for the decision tree
const (
	monsterEquity   = 0.80
	probeEquity     = 0.55
	slowPlayChance  = 0.20
	bluffChance     = 0.10
	valueBetFrac    = 0.75
	bluffBetFrac    = 0.50
	probeBetFrac    = 0.40
	inPositionMult  = 1.2
	outPositionMult = 0.9
)

// Decision is the policy's output: the chosen action and raise level,
// plus the equity and EV figures that produced it. Equity and EV are
// reported for observability and never drive the caller's control flow.
type Decision struct {
	Action game.Action
	Amount int
	Equity float64
	EV     float64
}

// Estimator estimates hero win probability; injected so tests can pin
// equity without sampling.
type Estimator func(hole, board []deck.Card, opponents, iterations int, rng *rand.Rand) float64

// Policy decides actions for bot seats. The RNG drives the slow-play
// and bluff branch points and the equity sampling; inject a seeded one
// for reproducible play.
type Policy struct {
	rng           *rand.Rand
	logger        *log.Logger
	samples       int
	estimate      Estimator
	deterministic bool
}

// Option configures a Policy
type Option func(*Policy)

// WithSamples sets the equity sample count per decision
func WithSamples(n int) Option {
	return func(p *Policy) {
		if n > 0 {
			p.samples = n
		}
	}
}

// WithEstimator replaces the equity estimator
func WithEstimator(fn Estimator) Option {
	return func(p *Policy) {
		p.estimate = fn
	}
}

// WithDeterministic disables the random slow-play and bluff branches,
// making the policy a pure function of equity and pot odds
func WithDeterministic() Option {
	return func(p *Policy) {
		p.deterministic = true
	}
}

// New creates a bot policy
func New(rng *rand.Rand, logger *log.Logger, opts ...Option) *Policy {
	p := &Policy{
		rng:      rng,
		logger:   logger.WithPrefix("bot"),
		samples:  DefaultSamples,
		estimate: equity.Estimate,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Decide returns the action for the given seat. The caller must not
// invoke it for a folded seat.
func (p *Policy) Decide(t *game.Table, seat int) Decision {
	bot := t.Players[seat]

	opponents := t.ActiveOpponents(seat)
	eq := p.estimate(bot.HoleCards, t.Community, opponents, p.samples, p.rng)

	pot := t.Pot
	call := t.CallAmount(seat)

	potOdds := 0.0
	if call > 0 {
		potOdds = float64(call) / float64(pot+call)
	}
	ev := eq*float64(pot) - (1-eq)*float64(call)

	inPosition := seat == t.Dealer
	posMult := outPositionMult
	if inPosition {
		posMult = inPositionMult
	}

	decision := p.decide(t, bot, eq, ev, pot, call, potOdds, posMult)

	p.logger.Debug("decision",
		"seat", seat,
		"stage", t.Stage,
		"equity", eq,
		"ev", ev,
		"potOdds", potOdds,
		"call", call,
		"action", decision.Action,
		"amount", decision.Amount)

	return decision
}

func (p *Policy) decide(t *game.Table, bot *game.Player, eq, ev float64, pot, call int, potOdds, posMult float64) Decision {
	// Monster hands: bet for value, occasionally slow-play off the river
	if eq > monsterEquity {
		if p.chance(slowPlayChance) && t.Stage != game.River {
			return Decision{Action: game.Check, Equity: eq, EV: ev}
		}
		raise := maxInt(t.MinRaise, int(float64(pot)*valueBetFrac*posMult))
		return p.raiseOrCall(bot, raise, eq, ev)
	}

	// Facing a bet: call when the math is right, rarely bluff, else fold
	if call > 0 {
		if eq > potOdds || ev > 0 {
			return Decision{Action: game.Call, Amount: call, Equity: eq, EV: ev}
		}
		if p.chance(bluffChance) && len(t.Community) > 0 {
			raise := maxInt(t.MinRaise, int(float64(pot)*bluffBetFrac))
			return p.raiseOrCall(bot, raise, eq, ev)
		}
		return Decision{Action: game.Fold, Equity: eq, EV: ev}
	}

	// Option to check: probe with decent equity, otherwise check behind
	if eq > probeEquity {
		raise := maxInt(t.MinRaise, int(float64(pot)*probeBetFrac*posMult))
		return p.raiseOrCall(bot, raise, eq, ev)
	}
	return Decision{Action: game.Check, Equity: eq, EV: ev}
}

// raiseOrCall downgrades a raise the bot cannot fund to a call so the
// state machine never sees a raise below the bot's own contribution.
func (p *Policy) raiseOrCall(bot *game.Player, amount int, eq, ev float64) Decision {
	if amount > bot.Bet+bot.Chips {
		amount = bot.Bet + bot.Chips
	}
	if amount <= bot.Bet {
		return Decision{Action: game.Check, Equity: eq, EV: ev}
	}
	return Decision{Action: game.Raise, Amount: amount, Equity: eq, EV: ev}
}

// chance samples a random branch point; always false in deterministic
// mode
func (p *Policy) chance(prob float64) bool {
	if p.deterministic {
		return false
	}
	return p.rng.Float64() < prob
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
