package main

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/cardtable/blackjack/game/engine"
)

// fixedSource deals a scripted sequence of cards
type fixedSource struct {
	cards []engine.Card
	next  int
}

func (s *fixedSource) Draw() engine.Card {
	c := s.cards[s.next%len(s.cards)]
	s.next++
	return c
}

func (s *fixedSource) Remaining() int {
	return len(s.cards) - s.next
}

func cards(ranks ...engine.Rank) []engine.Card {
	result := make([]engine.Card, 0, len(ranks))
	for _, r := range ranks {
		result = append(result, engine.Card{Rank: r, Suit: engine.Spades})
	}
	return result
}

func handOf(ranks ...engine.Rank) engine.Hand {
	return engine.Hand{Cards: cards(ranks...)}
}

func TestStrategyFunc(t *testing.T) {
	if _, err := strategyFunc("basic"); err != nil {
		t.Errorf("basic should be a known strategy: %v", err)
	}
	if _, err := strategyFunc("dealer"); err != nil {
		t.Errorf("dealer should be a known strategy: %v", err)
	}
	if _, err := strategyFunc("martingale"); err == nil {
		t.Error("Expected error for unknown strategy")
	}
}

func TestDealerMimic(t *testing.T) {
	state := &engine.TableState{PlayerHand: handOf(engine.Ten, engine.Six)}
	if got := dealerMimic(nil, state); got != engine.ActionHit {
		t.Errorf("16 should hit, got %s", got)
	}

	state = &engine.TableState{PlayerHand: handOf(engine.Ten, engine.Seven)}
	if got := dealerMimic(nil, state); got != engine.ActionStand {
		t.Errorf("17 should stand, got %s", got)
	}
}

func TestBasicStrategy_HardTotals(t *testing.T) {
	// Engine in idle phase: CanDoubleDown is false, so only hit/stand paths run
	eng := engine.NewEngineWithDefaults()

	tests := []struct {
		name   string
		player engine.Hand
		upcard engine.Rank
		want   engine.Action
	}{
		{"stand on 17", handOf(engine.Ten, engine.Seven), engine.Ten, engine.ActionStand},
		{"hit 16 vs ten", handOf(engine.Ten, engine.Six), engine.Ten, engine.ActionHit},
		{"stand 13 vs six", handOf(engine.Ten, engine.Three), engine.Six, engine.ActionStand},
		{"hit 12 vs two", handOf(engine.Ten, engine.Two), engine.Two, engine.ActionHit},
		{"stand 12 vs four", handOf(engine.Ten, engine.Two), engine.Four, engine.ActionStand},
		{"hit 8 always", handOf(engine.Five, engine.Three), engine.Six, engine.ActionHit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &engine.TableState{
				PlayerHand: tt.player,
				DealerHand: handOf(tt.upcard, engine.Five),
			}
			if got := basicStrategy(eng, state); got != tt.want {
				t.Errorf("basicStrategy() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBasicStrategy_SoftTotals(t *testing.T) {
	eng := engine.NewEngineWithDefaults()

	tests := []struct {
		name   string
		player engine.Hand
		upcard engine.Rank
		want   engine.Action
	}{
		{"stand soft 19", handOf(engine.Ace, engine.Eight), engine.Ten, engine.ActionStand},
		{"stand soft 18 vs eight", handOf(engine.Ace, engine.Seven), engine.Eight, engine.ActionStand},
		{"hit soft 18 vs nine", handOf(engine.Ace, engine.Seven), engine.Nine, engine.ActionHit},
		{"hit soft 17", handOf(engine.Ace, engine.Six), engine.Two, engine.ActionHit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &engine.TableState{
				PlayerHand: tt.player,
				DealerHand: handOf(tt.upcard, engine.Five),
			}
			if got := basicStrategy(eng, state); got != tt.want {
				t.Errorf("basicStrategy() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBasicStrategy_DoubleDown(t *testing.T) {
	// A live round where the player holds 11 against a six: must double
	config := engine.DefaultTableConfig()
	source := &fixedSource{cards: cards(
		engine.Six, // player
		engine.Six, // dealer upcard
		engine.Five, // player: 11
		engine.Ten, // dealer hole
		engine.Ten, // the double-down card
		engine.Ten, engine.Ten, engine.Ten, engine.Ten, engine.Ten,
	)}

	eng, err := engine.NewEngineWithSource(config, source)
	if err != nil {
		t.Fatalf("NewEngineWithSource() error: %v", err)
	}

	state, err := eng.PlaceBet(decimal.NewFromInt(10))
	if err != nil {
		t.Fatalf("PlaceBet() error: %v", err)
	}

	if got := basicStrategy(eng, state); got != engine.ActionDouble {
		t.Errorf("11 vs six should double, got %s", got)
	}
}

func TestRunSimulation(t *testing.T) {
	config := engine.DefaultTableConfig()
	opts := Options{
		Rounds:   200,
		Bet:      decimal.NewFromInt(10),
		Strategy: "basic",
		Seed:     42,
	}

	report, err := runSimulation(config, opts)
	if err != nil {
		t.Fatalf("runSimulation() error: %v", err)
	}

	if report.Rounds != 200 {
		t.Errorf("Expected 200 rounds, got %d", report.Rounds)
	}

	if report.Wins+report.Losses+report.Pushes != report.Rounds {
		t.Errorf("Outcome counts (%d+%d+%d) do not sum to rounds %d",
			report.Wins, report.Losses, report.Pushes, report.Rounds)
	}

	// Flat bet of 10 with occasional doubles
	minWagered := decimal.NewFromInt(2000)
	if report.Wagered.LessThan(minWagered) {
		t.Errorf("Wagered %s below the flat-bet floor %s", report.Wagered, minWagered)
	}
}

func TestRunSimulation_Deterministic(t *testing.T) {
	config := engine.DefaultTableConfig()
	opts := Options{
		Rounds:   100,
		Bet:      decimal.NewFromInt(10),
		Strategy: "dealer",
		Seed:     7,
	}

	first, err := runSimulation(config, opts)
	if err != nil {
		t.Fatalf("runSimulation() error: %v", err)
	}
	second, err := runSimulation(config, opts)
	if err != nil {
		t.Fatalf("runSimulation() error: %v", err)
	}

	if first.Wins != second.Wins || first.Losses != second.Losses || !first.Profit.Equal(second.Profit) {
		t.Errorf("Same seed produced different results: %+v vs %+v", first, second)
	}
}

func TestRunSimulation_BetOutsideLimits(t *testing.T) {
	config := engine.DefaultTableConfig()
	opts := Options{
		Rounds:   10,
		Bet:      decimal.NewFromInt(99999),
		Strategy: "basic",
		Seed:     1,
	}

	if _, err := runSimulation(config, opts); err == nil {
		t.Error("Expected error for bet above table maximum")
	}
}

func TestPct(t *testing.T) {
	if got := pct(1, 4); got != 25 {
		t.Errorf("pct(1, 4) = %f, want 25", got)
	}
	if got := pct(0, 0); got != 0 {
		t.Errorf("pct(0, 0) = %f, want 0", got)
	}
}
