package cli

import (
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"

	"github.com/cardtable/blackjack/game/engine"
	"github.com/cardtable/blackjack/game/service"
)

func init() {
	// Keep assertions free of ANSI escape codes
	pterm.DisableStyling()
}

func TestActionLabelRoundTrip(t *testing.T) {
	actions := []engine.Action{engine.ActionHit, engine.ActionStand, engine.ActionDouble}

	for _, action := range actions {
		label := actionLabel(action)
		if label == string(action) {
			t.Errorf("actionLabel(%s) should produce a display label, got raw action", action)
		}
		if got := actionFromLabel(label); got != action {
			t.Errorf("actionFromLabel(%q) = %s, want %s", label, got, action)
		}
	}
}

func TestValueLabel(t *testing.T) {
	tests := []struct {
		name  string
		value engine.HandValue
		want  string
	}{
		{"hard total", engine.HandValue{Total: 17}, "17"},
		{"soft total", engine.HandValue{Total: 17, Soft: true}, "soft 17"},
		{"bust", engine.HandValue{Total: 24, Bust: true}, "BUST (24)"},
		{"blackjack", engine.HandValue{Total: 21, Blackjack: true}, "BLACKJACK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := valueLabel(tt.value); got != tt.want {
				t.Errorf("valueLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDealerLine_HoleHidden(t *testing.T) {
	state := &engine.TableState{
		HoleHidden: true,
		DealerHand: engine.Hand{Cards: []engine.Card{
			{Rank: engine.King, Suit: engine.Clubs},
			{Rank: engine.Four, Suit: engine.Diamonds},
		}},
	}

	line := dealerLine(state)

	if !strings.Contains(line, "[K♣]") {
		t.Errorf("Expected upcard in line, got: %s", line)
	}
	if !strings.Contains(line, "[??]") {
		t.Errorf("Expected masked hole card, got: %s", line)
	}
	if strings.Contains(line, "4♦") {
		t.Errorf("Hole card must not be shown, got: %s", line)
	}
	if !strings.Contains(line, "showing 10") {
		t.Errorf("Expected upcard value, got: %s", line)
	}
}

func TestDealerLine_Revealed(t *testing.T) {
	state := &engine.TableState{
		HoleHidden: false,
		DealerHand: engine.Hand{Cards: []engine.Card{
			{Rank: engine.King, Suit: engine.Clubs},
			{Rank: engine.Seven, Suit: engine.Diamonds},
		}},
	}

	line := dealerLine(state)

	if !strings.Contains(line, "[K♣]") || !strings.Contains(line, "[7♦]") {
		t.Errorf("Expected both dealer cards, got: %s", line)
	}
	if !strings.Contains(line, "17") {
		t.Errorf("Expected dealer total, got: %s", line)
	}
}

func TestPlayerLine_Doubled(t *testing.T) {
	state := &engine.TableState{
		Doubled: true,
		PlayerHand: engine.Hand{Cards: []engine.Card{
			{Rank: engine.Five, Suit: engine.Spades},
			{Rank: engine.Six, Suit: engine.Hearts},
			{Rank: engine.Ten, Suit: engine.Clubs},
		}},
	}

	line := playerLine(state)

	if !strings.Contains(line, "21") {
		t.Errorf("Expected player total, got: %s", line)
	}
	if !strings.Contains(line, "doubled") {
		t.Errorf("Expected doubled marker, got: %s", line)
	}
}

func TestIsRoundOver(t *testing.T) {
	if !isRoundOver(&engine.TableState{Phase: engine.PhaseSettled}) {
		t.Error("Settled phase should end the round")
	}
	if !isRoundOver(&engine.TableState{Phase: engine.PhaseIdle}) {
		t.Error("Idle phase should end the round")
	}
	if isRoundOver(&engine.TableState{Phase: engine.PhasePlayerTurn}) {
		t.Error("Player turn should not end the round")
	}
}

func TestRenderStats_NoRounds(t *testing.T) {
	// Must not panic or print garbage for an empty session
	renderStats(&service.StatsInfo{Stats: engine.NewSessionStats()})
	renderStats(&service.StatsInfo{})
}

func TestRenderTable_DoesNotPanic(t *testing.T) {
	state := engine.InitTableStateFromConfig(nil)
	state.Phase = engine.PhasePlayerTurn
	state.HoleHidden = true
	state.CurrentBet = decimal.NewFromInt(25)
	state.PlayerHand = engine.Hand{Cards: []engine.Card{
		{Rank: engine.Ten, Suit: engine.Spades},
		{Rank: engine.Seven, Suit: engine.Hearts},
	}}
	state.DealerHand = engine.Hand{Cards: []engine.Card{
		{Rank: engine.Nine, Suit: engine.Clubs},
		{Rank: engine.Five, Suit: engine.Diamonds},
	}}

	renderTable(state)
	printOutcome(state)
}
