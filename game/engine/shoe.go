package engine

import (
	"math/rand"
	"time"
)

// CardSource produces cards for the table engine. The standard implementation
// is Shoe; tests substitute a rigged source to drive deterministic deals.
type CardSource interface {
	Draw() Card
	Remaining() int
}

// Shoe is a multi-deck card source. It is rebuilt and reshuffled whenever the
// remaining count drops below the reshuffle threshold, so Draw never fails.
type Shoe struct {
	cards     []Card
	decks     int
	threshold int
	rng       *rand.Rand
}

// NewShoe creates a shuffled shoe with the given number of 52-card decks
func NewShoe(decks, reshuffleThreshold int) *Shoe {
	return NewShoeWithRand(decks, reshuffleThreshold, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewShoeWithRand creates a shoe using the provided random source. The
// simulator uses this with a fixed seed for reproducible runs.
func NewShoeWithRand(decks, reshuffleThreshold int, rng *rand.Rand) *Shoe {
	if decks < 1 {
		decks = 1
	}
	if reshuffleThreshold < 1 {
		reshuffleThreshold = 1
	}
	s := &Shoe{
		decks:     decks,
		threshold: reshuffleThreshold,
		rng:       rng,
	}
	s.rebuild()
	return s
}

// rebuild restocks the shoe with fresh decks and shuffles
func (s *Shoe) rebuild() {
	s.cards = make([]Card, 0, 52*s.decks)
	for i := 0; i < s.decks; i++ {
		for _, suit := range Suits {
			for _, rank := range Ranks {
				s.cards = append(s.cards, Card{Rank: rank, Suit: suit})
			}
		}
	}
	s.Shuffle()
}

// Shuffle randomizes the order of the remaining cards
func (s *Shoe) Shuffle() {
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

// Draw removes and returns the top card, restocking the shoe first when it
// is running low
func (s *Shoe) Draw() Card {
	if len(s.cards) < s.threshold {
		s.rebuild()
	}
	card := s.cards[0]
	s.cards = s.cards[1:]
	return card
}

// Remaining returns the number of cards left before the next restock
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// Decks returns the number of decks the shoe restocks with
func (s *Shoe) Decks() int {
	return s.decks
}
