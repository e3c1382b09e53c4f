package engine

import "strings"

// Hand is an ordered sequence of cards belonging to one participant.
// Hands are created fresh each round and discarded at settlement.
type Hand struct {
	Cards []Card `json:"cards"`
}

// HandValue is the full valuation of a hand
type HandValue struct {
	Total     int  `json:"total"`
	Soft      bool `json:"soft"`
	Bust      bool `json:"bust"`
	Blackjack bool `json:"blackjack"`
}

// Add appends a card to the hand
func (h *Hand) Add(c Card) {
	h.Cards = append(h.Cards, c)
}

// Size returns the number of cards in the hand
func (h Hand) Size() int {
	return len(h.Cards)
}

// Value computes the blackjack value of the hand. Each Ace is tentatively
// counted as 11 and demoted to 1 while the total exceeds 21. The demotion is
// greedy and order-independent since all Aces are interchangeable.
//
// Soft is true when at least one Ace is still counted as 11 in the final
// total. Blackjack requires exactly two cards totalling 21.
func (h Hand) Value() HandValue {
	total := 0
	aces := 0

	for _, c := range h.Cards {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}

	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}

	return HandValue{
		Total:     total,
		Soft:      aces > 0,
		Bust:      total > 21,
		Blackjack: len(h.Cards) == 2 && total == 21,
	}
}

// String renders the hand as comma-separated cards, e.g. "A♠, K♥"
func (h Hand) String() string {
	parts := make([]string, 0, len(h.Cards))
	for _, c := range h.Cards {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, ", ")
}
