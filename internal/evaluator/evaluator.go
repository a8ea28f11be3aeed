package evaluator

import (
	"sort"

	"github.com/lox/holdem-engine/internal/deck"
)

// Category is the 10-way hand category ordinal
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a human-readable category name
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Evaluation is the scored strength of the best 5-card hand within a
// card set. Value is banded in hundreds per category (High Card=0 ..
// Royal Flush=900) plus the rank of the deciding card group, so a
// higher value always strictly dominates any hand of a lower category.
// Hands in the same category that differ only in kickers beyond the
// deciding group score equal values; comparisons at that resolution
// favor whichever evaluation was enumerated first.
type Evaluation struct {
	Category Category
	Value    int
	Label    string
}

// Incomplete is the sentinel returned for sets of fewer than 5 cards.
// It carries value 0 and never wins a comparison.
var Incomplete = Evaluation{Category: HighCard, Value: 0, Label: "Incomplete"}

// rankGroup is a set of cards sharing a rank
type rankGroup struct {
	rank  deck.Rank
	count int
}

// Evaluate scores the best 5-card hand from a set of 5 to 7 cards.
// Sets smaller than 5 cards return the Incomplete sentinel.
func Evaluate(cards []deck.Card) Evaluation {
	if len(cards) < 5 {
		return Incomplete
	}

	rankCounts := make(map[deck.Rank]int)
	suitCounts := make(map[deck.Suit]int)
	for _, c := range cards {
		rankCounts[c.Rank]++
		suitCounts[c.Suit]++
	}

	isFlush := false
	for _, n := range suitCounts {
		if n >= 5 {
			isFlush = true
			break
		}
	}

	isStraight, straightHigh := findStraight(rankCounts)

	// Rank groups ordered by count descending, then rank descending,
	// so groups[0] is the deciding quad/trips/pair group.
	groups := make([]rankGroup, 0, len(rankCounts))
	for rank, count := range rankCounts {
		groups = append(groups, rankGroup{rank: rank, count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})

	switch {
	case isFlush && isStraight && straightHigh == deck.Ace:
		return Evaluation{RoyalFlush, 900, "Royal Flush"}
	case isFlush && isStraight:
		return Evaluation{StraightFlush, 800 + straightHigh.Value(), "Straight Flush"}
	case groups[0].count == 4:
		return Evaluation{FourOfAKind, 700 + groups[0].rank.Value(), "Four of a Kind"}
	case groups[0].count == 3 && len(groups) > 1 && groups[1].count >= 2:
		return Evaluation{FullHouse, 600 + groups[0].rank.Value(), "Full House"}
	case isFlush:
		return Evaluation{Flush, 500, "Flush"}
	case isStraight:
		return Evaluation{Straight, 400 + straightHigh.Value(), "Straight"}
	case groups[0].count == 3:
		return Evaluation{ThreeOfAKind, 300 + groups[0].rank.Value(), "Three of a Kind"}
	case groups[0].count == 2 && len(groups) > 1 && groups[1].count == 2:
		return Evaluation{TwoPair, 200 + groups[0].rank.Value(), "Two Pair"}
	case groups[0].count == 2:
		return Evaluation{Pair, 100 + groups[0].rank.Value(), "Pair"}
	}

	high := highestRank(rankCounts)
	return Evaluation{HighCard, high.Value(), "High Card " + high.String()}
}

// findStraight looks for 5 consecutive distinct ranks, scanning from
// the highest possible run down, plus the wheel (A-2-3-4-5, 5 high).
func findStraight(rankCounts map[deck.Rank]int) (bool, deck.Rank) {
	unique := make([]int, 0, len(rankCounts))
	for rank := range rankCounts {
		unique = append(unique, rank.Value())
	}
	sort.Sort(sort.Reverse(sort.IntSlice(unique)))

	for i := 0; i+4 < len(unique); i++ {
		if unique[i]-unique[i+4] == 4 {
			return true, deck.Rank(unique[i])
		}
	}

	// Wheel: ace plays low
	if rankCounts[deck.Ace] > 0 && rankCounts[deck.Two] > 0 &&
		rankCounts[deck.Three] > 0 && rankCounts[deck.Four] > 0 &&
		rankCounts[deck.Five] > 0 {
		return true, deck.Five
	}

	return false, 0
}

func highestRank(rankCounts map[deck.Rank]int) deck.Rank {
	var high deck.Rank
	for rank := range rankCounts {
		if rank > high {
			high = rank
		}
	}
	return high
}
