package engine

import "github.com/shopspring/decimal"

// SessionStats accumulates per-session results. Counters are the source of
// truth; every rate is derived on demand so nothing can drift.
type SessionStats struct {
	RoundsPlayed int             `json:"rounds_played"`
	Wins         int             `json:"wins"`
	Losses       int             `json:"losses"`
	Pushes       int             `json:"pushes"`
	Blackjacks   int             `json:"blackjacks"`
	Busts        int             `json:"busts"`
	Profit       decimal.Decimal `json:"profit"`
	TotalWagered decimal.Decimal `json:"total_wagered"`
	TotalWon     decimal.Decimal `json:"total_won"`
}

// NewSessionStats creates a zeroed statistics tracker
func NewSessionStats() *SessionStats {
	return &SessionStats{
		Profit:       decimal.Zero,
		TotalWagered: decimal.Zero,
		TotalWon:     decimal.Zero,
	}
}

// Record registers one settled round. The sign of delta classifies the round
// as a win, loss or push; delta is the bankroll change and wagered the
// effective bet (doubled bets count double).
func (s *SessionStats) Record(delta, wagered decimal.Decimal) {
	s.RoundsPlayed++
	s.TotalWagered = s.TotalWagered.Add(wagered)
	s.Profit = s.Profit.Add(delta)

	switch delta.Sign() {
	case 1:
		s.Wins++
		s.TotalWon = s.TotalWon.Add(delta)
	case -1:
		s.Losses++
	default:
		s.Pushes++
	}
}

// WinRate returns wins over rounds played, 0 when no rounds were played
func (s *SessionStats) WinRate() float64 {
	if s.RoundsPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.RoundsPlayed)
}

// ROI returns cumulative profit over total wagered, 0 when nothing was wagered
func (s *SessionStats) ROI() decimal.Decimal {
	if s.TotalWagered.IsZero() {
		return decimal.Zero
	}
	return s.Profit.Div(s.TotalWagered)
}

// AverageBet returns total wagered over rounds played, 0 when no rounds were played
func (s *SessionStats) AverageBet() decimal.Decimal {
	if s.RoundsPlayed == 0 {
		return decimal.Zero
	}
	return s.TotalWagered.Div(decimal.NewFromInt(int64(s.RoundsPlayed)))
}

// AverageWin returns the mean winning delta, 0 when there were no wins
func (s *SessionStats) AverageWin() decimal.Decimal {
	if s.Wins == 0 {
		return decimal.Zero
	}
	return s.TotalWon.Div(decimal.NewFromInt(int64(s.Wins)))
}

// HouseEdge estimates the effective house edge as |profit| / total wagered
func (s *SessionStats) HouseEdge() decimal.Decimal {
	if s.TotalWagered.IsZero() {
		return decimal.Zero
	}
	return s.Profit.Abs().Div(s.TotalWagered)
}
