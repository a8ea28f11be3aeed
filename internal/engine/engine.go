// Package engine drives a table through complete hands, asking an agent
// for a decision whenever a seat is due to act and pacing the game with
// configurable delays so interactive play feels natural.
package engine

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-engine/internal/bot"
	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/evaluator"
	"github.com/lox/holdem-engine/internal/game"
	"github.com/lox/holdem-engine/internal/statistics"
)

// Agent decides an action for a seat when the engine asks. Bot seats use
// PolicyAgent; an interactive frontend supplies its own implementation.
// Agents without an equity estimate leave Decision.Equity at zero.
type Agent interface {
	Act(ctx context.Context, t *game.Table, seat int) (bot.Decision, error)
}

// PolicyAgent adapts a bot.Policy to the Agent interface.
type PolicyAgent struct {
	Policy *bot.Policy
}

func (a *PolicyAgent) Act(_ context.Context, t *game.Table, seat int) (bot.Decision, error) {
	return a.Policy.Decide(t, seat), nil
}

// Delays controls the pacing of a session. Zero values disable the
// corresponding delay, which is what simulations want.
type Delays struct {
	ThinkMin    time.Duration
	ThinkMax    time.Duration
	Uncontested time.Duration
	Showdown    time.Duration
}

// DefaultDelays paces hands for a human watching the table.
func DefaultDelays() Delays {
	return Delays{
		ThinkMin:    1 * time.Second,
		ThinkMax:    3 * time.Second,
		Uncontested: 2 * time.Second,
		Showdown:    4 * time.Second,
	}
}

// Engine runs hands on a table, delegating decisions to per-seat agents
// and recording per-hand results for a tracked seat.
type Engine struct {
	table   *game.Table
	agents  map[int]Agent
	clock   quartz.Clock
	rng     *rand.Rand
	logger  *log.Logger
	delays  Delays
	session *statistics.Session
	tracked int
	onEvent func(string)
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock substitutes the wall clock, letting tests advance time
// synthetically.
func WithClock(c quartz.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithDelays overrides the default pacing.
func WithDelays(d Delays) Option {
	return func(e *Engine) { e.delays = d }
}

// WithTrackedSeat selects the seat whose results feed the session log.
// Defaults to seat 0.
func WithTrackedSeat(seat int) Option {
	return func(e *Engine) { e.tracked = seat }
}

// WithEventSink receives every narration line the table emits.
func WithEventSink(fn func(string)) Option {
	return func(e *Engine) { e.onEvent = fn }
}

// New creates an engine for the given table.
func New(t *game.Table, rng *rand.Rand, logger *log.Logger, opts ...Option) *Engine {
	e := &Engine{
		table:   t,
		agents:  make(map[int]Agent),
		clock:   quartz.NewReal(),
		rng:     rng,
		logger:  logger.WithPrefix("engine"),
		delays:  DefaultDelays(),
		session: &statistics.Session{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetAgent assigns the decision maker for a seat.
func (e *Engine) SetAgent(seat int, a Agent) {
	e.agents[seat] = a
}

// Session returns the accumulated per-hand results for the tracked seat.
func (e *Engine) Session() *statistics.Session {
	return e.session
}

// PlayHand deals and plays a single hand to completion, then waits out
// the post-hand display delay.
func (e *Engine) PlayHand(ctx context.Context) error {
	if err := e.table.StartHand(); err != nil {
		return err
	}
	tracked := e.table.Players[e.tracked]
	startChips := tracked.Chips
	lastEquity := 0.0

	for !e.table.Complete() {
		seat := e.table.Active
		agent, ok := e.agents[seat]
		if !ok {
			return game.ErrNotYourTurn
		}
		if err := e.think(ctx); err != nil {
			return err
		}
		decision, err := agent.Act(ctx, e.table, seat)
		if err != nil {
			return err
		}
		if seat == e.tracked {
			lastEquity = decision.Equity
		}
		events, err := e.table.ApplyAction(seat, decision.Action, decision.Amount)
		if err != nil {
			return err
		}
		e.emit(events)
	}

	e.record(tracked, startChips, lastEquity)

	delay := e.delays.Uncontested
	if e.table.Stage == game.Showdown {
		delay = e.delays.Showdown
	}
	return e.wait(ctx, delay)
}

// RunSession plays the given number of hands back to back.
func (e *Engine) RunSession(ctx context.Context, hands int) error {
	for i := 0; i < hands; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.PlayHand(ctx); err != nil {
			return err
		}
	}
	e.logger.Debug("session complete", "hands", hands)
	return nil
}

func (e *Engine) record(tracked *game.Player, startChips int, winProb float64) {
	cards := append([]deck.Card{}, tracked.HoleCards...)
	cards = append(cards, e.table.Community...)
	eval := evaluator.Evaluate(cards)
	e.session.Add(statistics.Record{
		HandID:    e.table.HandID,
		Timestamp: e.clock.Now(),
		Result:    tracked.Chips - startChips,
		Category:  eval.Category,
		Label:     eval.Label,
		WinProb:   winProb,
		Showdown:  e.table.Stage == game.Showdown,
	})
}

func (e *Engine) think(ctx context.Context) error {
	if e.delays.ThinkMax <= 0 {
		return nil
	}
	d := e.delays.ThinkMin
	if span := e.delays.ThinkMax - e.delays.ThinkMin; span > 0 {
		d += time.Duration(e.rng.Int63n(int64(span)))
	}
	return e.wait(ctx, d)
}

func (e *Engine) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	fired := make(chan struct{})
	timer := e.clock.AfterFunc(d, func() {
		close(fired)
	})
	defer timer.Stop()

	select {
	case <-fired:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *Engine) emit(events []string) {
	for _, ev := range events {
		e.logger.Debug(ev)
		if e.onEvent != nil {
			e.onEvent(ev)
		}
	}
}
