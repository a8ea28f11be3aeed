// Package equity estimates win probability against unknown opponent
// holdings by Monte Carlo sampling. The sampler draws from its own
// residual deck built from the hero's known cards and never observes
// live table state.
package equity

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/evaluator"
)

// DefaultIterations is the trial count used when callers pass a
// non-positive iteration count.
const DefaultIterations = 500

// Estimate returns the estimated probability, in [0,1], that the hero
// hand beats opponents independent random holdings over the given
// board. Ties count as hero wins: a trial is lost only when some
// opponent's evaluation value strictly exceeds the hero's.
//
// Degenerate inputs have defined results: zero opponents yields 1.0
// (nobody can beat the hero) and an empty hero hand yields 0.0. A
// complete 5-card board skips board drawing entirely.
func Estimate(hole, board []deck.Card, opponents, iterations int, rng *rand.Rand) float64 {
	if len(hole) == 0 {
		return 0.0
	}
	if opponents <= 0 {
		return 1.0
	}
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	residual := deck.Residual(append(append([]deck.Card{}, hole...), board...))

	wins := 0
	for i := 0; i < iterations; i++ {
		if runTrial(hole, board, opponents, residual, rng) {
			wins++
		}
	}
	return float64(wins) / float64(iterations)
}

// EstimateParallel runs the same estimate with trials fanned out over
// the given number of workers. Each worker shards the trial budget and
// draws from its own RNG seeded off the caller's, so results are
// reproducible for a fixed seed and worker count. Parallelism is an
// optimization only; a single worker is equivalent to Estimate.
func EstimateParallel(ctx context.Context, hole, board []deck.Card, opponents, iterations, workers int, rng *rand.Rand) (float64, error) {
	if len(hole) == 0 {
		return 0.0, nil
	}
	if opponents <= 0 {
		return 1.0, nil
	}
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	if workers <= 1 {
		return Estimate(hole, board, opponents, iterations, rng), nil
	}

	residual := deck.Residual(append(append([]deck.Card{}, hole...), board...))

	// Seed each shard before launching so the seed order does not
	// depend on goroutine scheduling.
	seeds := make([]int64, workers)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	shardWins := make([]int, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		share := iterations / workers
		if w == workers-1 {
			share = iterations - share*(workers-1)
		}
		seed := seeds[w]
		slot := w

		g.Go(func() error {
			shardRng := rand.New(rand.NewSource(seed))
			wins := 0
			for i := 0; i < share; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if runTrial(hole, board, opponents, residual, shardRng) {
					wins++
				}
			}
			shardWins[slot] = wins
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	wins := 0
	for _, w := range shardWins {
		wins += w
	}
	return float64(wins) / float64(iterations), nil
}

// runTrial plays out one sampled future: shuffle a fresh copy of the
// residual deck, complete the board to 5 cards, deal 2 per opponent,
// and compare evaluations over the shared board.
func runTrial(hole, board []deck.Card, opponents int, residual []deck.Card, rng *rand.Rand) bool {
	sim := deck.NewFromCards(rng, residual)
	sim.Shuffle()

	simBoard := make([]deck.Card, len(board), 5)
	copy(simBoard, board)
	for len(simBoard) < 5 {
		card, ok := sim.Deal()
		if !ok {
			break
		}
		simBoard = append(simBoard, card)
	}

	heroValue := evaluator.Evaluate(append(append([]deck.Card{}, hole...), simBoard...)).Value

	for j := 0; j < opponents; j++ {
		oppHole := sim.DealN(2)
		if len(oppHole) < 2 {
			break
		}
		oppValue := evaluator.Evaluate(append(oppHole, simBoard...)).Value
		if oppValue > heroValue {
			return false
		}
	}
	return true
}
