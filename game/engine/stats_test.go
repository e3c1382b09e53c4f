package engine

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSessionStats_Record(t *testing.T) {
	stats := NewSessionStats()

	// Win, loss, win, push
	stats.Record(decimal.NewFromInt(10), decimal.NewFromInt(10))
	stats.Record(decimal.NewFromInt(-5), decimal.NewFromInt(5))
	stats.Record(decimal.NewFromInt(10), decimal.NewFromInt(10))
	stats.Record(decimal.Zero, decimal.NewFromInt(20))

	if stats.RoundsPlayed != 4 {
		t.Errorf("Expected 4 rounds played, got %d", stats.RoundsPlayed)
	}
	if stats.Wins != 2 {
		t.Errorf("Expected 2 wins, got %d", stats.Wins)
	}
	if stats.Losses != 1 {
		t.Errorf("Expected 1 loss, got %d", stats.Losses)
	}
	if stats.Pushes != 1 {
		t.Errorf("Expected 1 push, got %d", stats.Pushes)
	}
	if !stats.Profit.Equal(decimal.NewFromInt(15)) {
		t.Errorf("Expected profit 15, got %s", stats.Profit)
	}
	if !stats.TotalWagered.Equal(decimal.NewFromInt(45)) {
		t.Errorf("Expected total wagered 45, got %s", stats.TotalWagered)
	}
	if !stats.TotalWon.Equal(decimal.NewFromInt(20)) {
		t.Errorf("Expected total won 20, got %s", stats.TotalWon)
	}
}

func TestSessionStats_WinRate(t *testing.T) {
	stats := NewSessionStats()
	if stats.WinRate() != 0 {
		t.Error("Expected zero win rate before any rounds")
	}

	stats.Record(decimal.NewFromInt(10), decimal.NewFromInt(10))
	stats.Record(decimal.NewFromInt(-10), decimal.NewFromInt(10))
	stats.Record(decimal.NewFromInt(10), decimal.NewFromInt(10))

	want := 2.0 / 3.0
	if got := stats.WinRate(); got != want {
		t.Errorf("Expected win rate %v, got %v", want, got)
	}
}

func TestSessionStats_DerivedRates(t *testing.T) {
	stats := NewSessionStats()

	// Derived rates are all zero on an empty tracker
	if !stats.ROI().IsZero() || !stats.AverageBet().IsZero() || !stats.AverageWin().IsZero() || !stats.HouseEdge().IsZero() {
		t.Error("Expected all derived rates to be zero before any rounds")
	}

	stats.Record(decimal.NewFromInt(15), decimal.NewFromInt(10))
	stats.Record(decimal.NewFromInt(-10), decimal.NewFromInt(10))

	if !stats.ROI().Equal(decimal.NewFromFloat(0.25)) {
		t.Errorf("Expected ROI 0.25, got %s", stats.ROI())
	}
	if !stats.AverageBet().Equal(decimal.NewFromInt(10)) {
		t.Errorf("Expected average bet 10, got %s", stats.AverageBet())
	}
	if !stats.AverageWin().Equal(decimal.NewFromInt(15)) {
		t.Errorf("Expected average win 15, got %s", stats.AverageWin())
	}
	if !stats.HouseEdge().Equal(decimal.NewFromFloat(0.25)) {
		t.Errorf("Expected house edge 0.25, got %s", stats.HouseEdge())
	}
}
