package deck

import "math/rand"

// Deck is an ordered sequence of playing cards. A fresh deck holds each
// of the 52 rank and suit combinations exactly once; dealing consumes
// from the front.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// All returns the 52 unique cards in generation order
func All() []Card {
	cards := make([]Card, 0, 52)
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// New creates a full 52-card deck shuffled with the provided RNG.
// The RNG is injected so callers can pin shuffles in tests.
func New(rng *rand.Rand) *Deck {
	d := &Deck{cards: All(), rng: rng}
	d.Shuffle()
	return d
}

// NewFromCards creates a deck over an explicit card sequence without
// shuffling. Used for the equity sampler's residual decks and for
// deterministic dealing in tests.
func NewFromCards(rng *rand.Rand, cards []Card) *Deck {
	owned := make([]Card, len(cards))
	copy(owned, cards)
	return &Deck{cards: owned, rng: rng}
}

// Shuffle randomizes the order of the remaining cards (Fisher-Yates)
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// DealN deals up to n cards from the top of the deck
func (d *Deck) DealN(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	cards := make([]Card, n)
	for i := 0; i < n; i++ {
		cards[i], _ = d.Deal()
	}
	return cards
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Residual returns the cards of a full deck minus the excluded cards,
// in generation order. Exclusion is by canonical card code.
func Residual(excluded []Card) []Card {
	used := make(map[string]bool, len(excluded))
	for _, c := range excluded {
		used[c.Code()] = true
	}

	residual := make([]Card, 0, 52-len(excluded))
	for _, c := range All() {
		if !used[c.Code()] {
			residual = append(residual, c)
		}
	}
	return residual
}
