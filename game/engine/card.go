package engine

// Suit represents one of the four French suits
type Suit string

const (
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
	Spades   Suit = "♠"
)

// Suits lists all suits in deck-building order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Rank represents a card rank from Ace to King
type Rank string

const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

// Ranks lists all ranks in deck-building order
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// rankValues maps each rank to its blackjack value. Aces count as 11 here;
// hand valuation demotes them to 1 as needed.
var rankValues = map[Rank]int{
	Two: 2, Three: 3, Four: 4, Five: 5, Six: 6, Seven: 7, Eight: 8, Nine: 9,
	Ten: 10, Jack: 10, Queen: 10, King: 10, Ace: 11,
}

// Card is an immutable playing card identified by rank and suit
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// Value returns the blackjack value of the card (face cards 10, Ace 11)
func (c Card) Value() int {
	return rankValues[c.Rank]
}

// IsAce reports whether the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// String renders the card as rank followed by suit glyph, e.g. "A♠"
func (c Card) String() string {
	return string(c.Rank) + string(c.Suit)
}
