package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cardtable/blackjack/game/engine"
)

// SessionInfo provides information about a table session
type SessionInfo struct {
	ID             string              `json:"id"`
	ConfigName     string              `json:"config_name"`
	CreatedAt      time.Time           `json:"created_at"`
	LastAccessedAt time.Time           `json:"last_accessed_at"`
	TableState     *engine.TableState  `json:"table_state"`
	TableConfig    *engine.TableConfig `json:"table_config"`
}

// BetResult contains the result of placing a bet. When a natural ends the
// round during the deal, RoundOver is true and the state carries the outcome.
type BetResult struct {
	TableState       *engine.TableState `json:"table_state"`
	Message          string             `json:"message"`
	RoundOver        bool               `json:"round_over"`
	AvailableActions []engine.Action    `json:"available_actions,omitempty"`
	Events           []GameEvent        `json:"events,omitempty"`
}

// ActionResult contains the result of a player action
type ActionResult struct {
	Action           engine.Action      `json:"action"`
	TableState       *engine.TableState `json:"table_state"`
	Message          string             `json:"message"`
	RoundOver        bool               `json:"round_over"`
	AvailableActions []engine.Action    `json:"available_actions,omitempty"`
	Events           []GameEvent        `json:"events,omitempty"`
}

// GameEvent represents an event that occurred at the table
type GameEvent struct {
	Type      string    `json:"type"` // "deal", "hit", "double", "dealer_play", "settled", "blackjack", "bust", "game_over", "reset"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryOptions configures round history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated round history
type HistoryResponse struct {
	Rounds      []engine.RoundRecord `json:"rounds"`
	TotalRounds int                  `json:"total_rounds"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
	TotalPages  int                  `json:"total_pages"`
	HasNext     bool                 `json:"has_next"`
	HasPrevious bool                 `json:"has_previous"`
}

// StatsInfo combines raw session counters with the derived rates
type StatsInfo struct {
	SessionID  string               `json:"session_id"`
	ConfigName string               `json:"config_name"`
	Bankroll   decimal.Decimal      `json:"bankroll"`
	Stats      *engine.SessionStats `json:"stats"`
	WinRate    float64              `json:"win_rate"`
	ROI        decimal.Decimal      `json:"roi"`
	AverageBet decimal.Decimal      `json:"average_bet"`
	AverageWin decimal.Decimal      `json:"average_win"`
	HouseEdge  decimal.Decimal      `json:"house_edge"`
	GameOver   bool                 `json:"game_over"`
}

// ConfigInfo provides information about a table configuration
type ConfigInfo struct {
	Filename         string          `json:"filename"`
	ConfigID         string          `json:"config_id"` // The identifier to use for session creation
	Name             string          `json:"name"`      // Display name
	Description      string          `json:"description"`
	Decks            int             `json:"decks"`
	StartingBankroll decimal.Decimal `json:"starting_bankroll"`
	MinBet           decimal.Decimal `json:"min_bet"`
	MaxBet           decimal.Decimal `json:"max_bet"`
	BlackjackPayout  decimal.Decimal `json:"blackjack_payout"`
	DealerHitsSoft17 bool            `json:"dealer_hits_soft_17"`
}
