package engine

import (
	"testing"
)

func TestCard_Value(t *testing.T) {
	tests := []struct {
		card Card
		want int
	}{
		{Card{Rank: Two, Suit: Hearts}, 2},
		{Card{Rank: Nine, Suit: Clubs}, 9},
		{Card{Rank: Ten, Suit: Spades}, 10},
		{Card{Rank: Jack, Suit: Diamonds}, 10},
		{Card{Rank: Queen, Suit: Hearts}, 10},
		{Card{Rank: King, Suit: Clubs}, 10},
		{Card{Rank: Ace, Suit: Spades}, 11},
	}

	for _, tt := range tests {
		if got := tt.card.Value(); got != tt.want {
			t.Errorf("Value of %s = %d, want %d", tt.card, got, tt.want)
		}
	}
}

func TestCard_String(t *testing.T) {
	card := Card{Rank: Ace, Suit: Spades}
	if got := card.String(); got != "A♠" {
		t.Errorf("Expected A♠, got %s", got)
	}
}

func TestHand_Value(t *testing.T) {
	tests := []struct {
		name          string
		ranks         []Rank
		wantTotal     int
		wantSoft      bool
		wantBust      bool
		wantBlackjack bool
	}{
		{"hard twenty", []Rank{Ten, Ten}, 20, false, false, false},
		{"natural", []Rank{Ace, King}, 21, true, false, true},
		{"soft seventeen", []Rank{Ace, Six}, 17, true, false, false},
		{"two aces and nine", []Rank{Ace, Ace, Nine}, 21, true, false, false},
		{"ace demoted", []Rank{Ace, Nine, Five}, 15, false, false, false},
		{"both aces demoted", []Rank{Ace, Ace, Ten, Nine}, 21, false, false, false},
		{"three card twenty one is not blackjack", []Rank{Seven, Seven, Seven}, 21, false, false, false},
		{"bust", []Rank{Ten, Nine, Five}, 24, false, true, false},
		{"single card", []Rank{Queen}, 10, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hand Hand
			for _, r := range tt.ranks {
				hand.Add(Card{Rank: r, Suit: Hearts})
			}

			value := hand.Value()
			if value.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", value.Total, tt.wantTotal)
			}
			if value.Soft != tt.wantSoft {
				t.Errorf("Soft = %v, want %v", value.Soft, tt.wantSoft)
			}
			if value.Bust != tt.wantBust {
				t.Errorf("Bust = %v, want %v", value.Bust, tt.wantBust)
			}
			if value.Blackjack != tt.wantBlackjack {
				t.Errorf("Blackjack = %v, want %v", value.Blackjack, tt.wantBlackjack)
			}
		})
	}
}

func TestHand_String(t *testing.T) {
	var hand Hand
	hand.Add(Card{Rank: Ace, Suit: Spades})
	hand.Add(Card{Rank: King, Suit: Hearts})

	if got := hand.String(); got != "A♠, K♥" {
		t.Errorf("Expected \"A♠, K♥\", got %q", got)
	}
}
