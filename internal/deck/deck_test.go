package deck

import (
	"math/rand"
	"testing"
)

func TestAllHas52UniqueCards(t *testing.T) {
	cards := All()
	if len(cards) != 52 {
		t.Fatalf("All() returned %d cards, want 52", len(cards))
	}
	seen := make(map[Card]bool)
	for _, c := range cards {
		if seen[c] {
			t.Errorf("duplicate card %v", c)
		}
		seen[c] = true
	}
}

func TestNewDeckDealsEveryCardOnce(t *testing.T) {
	d := New(rand.New(rand.NewSource(1)))
	seen := make(map[Card]bool)
	for {
		card, ok := d.Deal()
		if !ok {
			break
		}
		if seen[card] {
			t.Fatalf("card %v dealt twice", card)
		}
		seen[card] = true
	}
	if len(seen) != 52 {
		t.Errorf("dealt %d cards, want 52", len(seen))
	}
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	d1 := New(rand.New(rand.NewSource(42)))
	d2 := New(rand.New(rand.NewSource(42)))

	for d1.Remaining() > 0 {
		c1, _ := d1.Deal()
		c2, _ := d2.Deal()
		if c1 != c2 {
			t.Fatalf("decks diverged: %v vs %v", c1, c2)
		}
	}
}

func TestDealN(t *testing.T) {
	d := New(rand.New(rand.NewSource(1)))

	cards := d.DealN(5)
	if len(cards) != 5 {
		t.Errorf("DealN(5) returned %d cards", len(cards))
	}
	if d.Remaining() != 47 {
		t.Errorf("Remaining() = %d, want 47", d.Remaining())
	}

	rest := d.DealN(100)
	if len(rest) != 47 {
		t.Errorf("DealN(100) returned %d cards, want the remaining 47", len(rest))
	}
}

func TestResidualExcludesUsedCards(t *testing.T) {
	used, err := ParseCards("AH KH QS")
	if err != nil {
		t.Fatal(err)
	}

	residual := Residual(used)
	if len(residual) != 49 {
		t.Fatalf("Residual() returned %d cards, want 49", len(residual))
	}
	for _, c := range residual {
		for _, u := range used {
			if c == u {
				t.Errorf("residual contains excluded card %v", c)
			}
		}
	}
}

func TestNewFromCardsPreservesOrder(t *testing.T) {
	cards, _ := ParseCards("2H 3H 4H")
	d := NewFromCards(rand.New(rand.NewSource(1)), cards)

	for _, want := range cards {
		got, ok := d.Deal()
		if !ok || got != want {
			t.Fatalf("Deal() = %v, want %v", got, want)
		}
	}
}
