package engine

import "github.com/shopspring/decimal"

// Phase represents the stage of the current round
type Phase string

const (
	// PhaseIdle means no round has been played yet; a bet starts one
	PhaseIdle Phase = "idle"
	// PhaseDealing covers the initial deal; it is transient within PlaceBet
	PhaseDealing Phase = "dealing"
	// PhasePlayerTurn means the player must choose hit, stand or double down
	PhasePlayerTurn Phase = "player_turn"
	// PhaseDealerTurn covers the dealer drawing to 17; transient within Stand
	PhaseDealerTurn Phase = "dealer_turn"
	// PhaseSettled means the round is resolved; a new bet starts the next one
	PhaseSettled Phase = "settled"
)

// Action is a player decision during their turn
type Action string

const (
	ActionHit    Action = "hit"
	ActionStand  Action = "stand"
	ActionDouble Action = "double"
)

// Outcome classifies a settled round from the player's perspective
type Outcome string

const (
	OutcomeWin       Outcome = "win"
	OutcomeBlackjack Outcome = "blackjack"
	OutcomeLoss      Outcome = "loss"
	OutcomePush      Outcome = "push"
)

// Validation constants
const (
	MinDecks                  = 1
	MaxDecks                  = 8
	MinReshuffleThreshold     = 4
	DefaultDecks              = 6
	DefaultReshuffleThreshold = 10
	DealerStandTotal          = 17
)

// TableState is the complete observable state of one blackjack table
type TableState struct {
	Phase       Phase           `json:"phase"`
	PlayerHand  Hand            `json:"player_hand"`
	DealerHand  Hand            `json:"dealer_hand"`
	HoleHidden  bool            `json:"hole_hidden"`
	Bankroll    decimal.Decimal `json:"bankroll"`
	CurrentBet  decimal.Decimal `json:"current_bet"`
	Doubled     bool            `json:"doubled"`
	Outcome     Outcome         `json:"outcome,omitempty"`
	Message     string          `json:"message"`
	RoundNumber int             `json:"round_number"`
	GameOver    bool            `json:"game_over"`
	ConfigName  string          `json:"config_name"`
	Stats       *SessionStats   `json:"stats"`

	// RoundHistory is cumulative across resets; TotalRounds mirrors its length
	RoundHistory []RoundRecord `json:"round_history"`
	TotalRounds  int           `json:"total_rounds"`
}

// RoundRecord captures one settled round for the history log
type RoundRecord struct {
	RoundNumber   int             `json:"round_number"`
	Bet           decimal.Decimal `json:"bet"`
	Doubled       bool            `json:"doubled,omitempty"`
	PlayerHand    Hand            `json:"player_hand"`
	DealerHand    Hand            `json:"dealer_hand"`
	PlayerTotal   int             `json:"player_total"`
	DealerTotal   int             `json:"dealer_total"`
	Outcome       Outcome         `json:"outcome"`
	Delta         decimal.Decimal `json:"delta"`
	BankrollAfter decimal.Decimal `json:"bankroll_after"`
	Timestamp     int64           `json:"timestamp"`
}
