package engine

import (
	"math/rand"
	"testing"
)

func TestNewShoe_Size(t *testing.T) {
	shoe := NewShoe(6, 10)
	if got := shoe.Remaining(); got != 312 {
		t.Errorf("Expected 312 cards in a six-deck shoe, got %d", got)
	}
	if shoe.Decks() != 6 {
		t.Errorf("Expected 6 decks, got %d", shoe.Decks())
	}
}

func TestShoe_Composition(t *testing.T) {
	shoe := NewShoe(2, 4)

	counts := make(map[Card]int)
	for shoe.Remaining() > 0 {
		counts[shoe.Draw()]++
		// Stop before the threshold triggers a restock
		if shoe.Remaining() < 4 {
			break
		}
	}

	// Every distinct card appears at most twice in a two-deck shoe
	for card, n := range counts {
		if n > 2 {
			t.Errorf("Card %s drawn %d times from a two-deck shoe", card, n)
		}
	}
	if len(counts) == 0 {
		t.Fatal("Expected to draw cards from the shoe")
	}
}

func TestShoe_RestockAtThreshold(t *testing.T) {
	shoe := NewShoe(1, 10)

	// Draw down to just below the threshold
	for shoe.Remaining() >= 10 {
		shoe.Draw()
	}

	before := shoe.Remaining()
	if before >= 10 {
		t.Fatalf("Expected fewer than 10 cards before restock, got %d", before)
	}

	// The next draw restocks the full deck first
	shoe.Draw()
	if got := shoe.Remaining(); got != 51 {
		t.Errorf("Expected 51 cards after restock draw, got %d", got)
	}
}

func TestNewShoeWithRand_Deterministic(t *testing.T) {
	a := NewShoeWithRand(1, 4, rand.New(rand.NewSource(42)))
	b := NewShoeWithRand(1, 4, rand.New(rand.NewSource(42)))

	for i := 0; i < 20; i++ {
		ca, cb := a.Draw(), b.Draw()
		if ca != cb {
			t.Fatalf("Draw %d differs between equally seeded shoes: %s vs %s", i, ca, cb)
		}
	}
}
