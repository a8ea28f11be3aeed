package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// String returns the display glyph for a suit
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Code returns the single-letter suit code used in canonical card codes
func (s Suit) Code() string {
	switch s {
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. The numeric value is the rank's poker
// value with aces high (Two=2 .. Ace=14).
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the rank code ("2".."10", "J", "Q", "K", "A")
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Value returns the numeric value of the rank for comparison
func (r Rank) Value() int {
	return int(r)
}

// Card represents a playing card. Cards are value objects: two cards
// with equal rank and suit are indistinguishable.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the display form of a card (e.g. "A♠", "10♦")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Code returns the canonical short code for a card (e.g. "AH", "10D").
// Codes are used as set-membership keys for used-card exclusion and
// must round-trip verbatim through ParseCard.
func (c Card) Code() string {
	return c.Rank.String() + c.Suit.Code()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// ParseCard parses a canonical card code such as "AH" or "10D".
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card code %q", s)
	}

	suitCode := s[len(s)-1:]
	rankCode := s[:len(s)-1]

	var suit Suit
	switch suitCode {
	case "H":
		suit = Hearts
	case "D":
		suit = Diamonds
	case "C":
		suit = Clubs
	case "S":
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit %q in card code %q", suitCode, s)
	}

	var rank Rank
	switch rankCode {
	case "2", "3", "4", "5", "6", "7", "8", "9", "10":
		rank = Rank(rankCode[0] - '0')
		if rankCode == "10" {
			rank = Ten
		}
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		return Card{}, fmt.Errorf("invalid rank %q in card code %q", rankCode, s)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a whitespace or comma separated list of card codes
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		card, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
