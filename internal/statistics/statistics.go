// Package statistics keeps the hero-perspective performance log for a
// session and computes aggregate figures over it.
package statistics

import (
	"math"
	"sort"
	"time"

	"github.com/lox/holdem-engine/internal/evaluator"
	"github.com/lox/holdem-engine/internal/game"
)

// Record is the immutable result of one completed hand from the
// hero's perspective. Records are append-only and never mutated after
// creation.
type Record struct {
	HandID    string
	Timestamp time.Time
	Result    int // net chips won or lost
	Category  evaluator.Category
	Label     string
	WinProb   float64
	Showdown  bool
}

// Session accumulates hand records and derived aggregates
type Session struct {
	Records []Record

	sum  float64
	sum2 float64
}

// Add appends a hand record
func (s *Session) Add(r Record) {
	s.Records = append(s.Records, r)
	v := float64(r.Result)
	s.sum += v
	s.sum2 += v * v
}

// Hands returns the number of recorded hands
func (s *Session) Hands() int {
	return len(s.Records)
}

// Mean returns the arithmetic mean chip result per hand
func (s *Session) Mean() float64 {
	if len(s.Records) == 0 {
		return 0
	}
	return s.sum / float64(len(s.Records))
}

// Variance returns the sample variance of chip results
func (s *Session) Variance() float64 {
	n := len(s.Records)
	if n < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.sum2 - float64(n)*mean*mean) / float64(n-1)
}

// StdDev returns the sample standard deviation of chip results
func (s *Session) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Session) StdError() float64 {
	if len(s.Records) == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(len(s.Records)))
}

// ConfidenceInterval95 returns the 95% confidence interval for the
// mean chip result
func (s *Session) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median chip result
func (s *Session) Median() float64 {
	if len(s.Records) == 0 {
		return 0
	}
	sorted := s.sortedResults()
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the chip result at the given percentile (0.0 to
// 1.0), linearly interpolated
func (s *Session) Percentile(p float64) float64 {
	if len(s.Records) == 0 {
		return 0
	}
	sorted := s.sortedResults()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// CumulativeProfit returns the running chip total after each hand
func (s *Session) CumulativeProfit() []int {
	series := make([]int, len(s.Records))
	total := 0
	for i, r := range s.Records {
		total += r.Result
		series[i] = total
	}
	return series
}

// ShowdownWins returns the number of winning hands that reached
// showdown and the number won uncontested
func (s *Session) ShowdownWins() (showdown, uncontested int) {
	for _, r := range s.Records {
		if r.Result <= 0 {
			continue
		}
		if r.Showdown {
			showdown++
		} else {
			uncontested++
		}
	}
	return showdown, uncontested
}

func (s *Session) sortedResults() []float64 {
	sorted := make([]float64, len(s.Records))
	for i, r := range s.Records {
		sorted[i] = float64(r.Result)
	}
	sort.Float64s(sorted)
	return sorted
}

// Rates converts raw behavioral counters into VPIP and PFR fractions
// of hands played
func Rates(stats game.Stats) (vpip, pfr float64) {
	if stats.HandsPlayed == 0 {
		return 0, 0
	}
	return float64(stats.VPIPCount) / float64(stats.HandsPlayed),
		float64(stats.PFRCount) / float64(stats.HandsPlayed)
}
