package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

// TableConfig defines the house rules for one blackjack table, loaded from JSON
type TableConfig struct {
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	StartingBankroll   decimal.Decimal `json:"starting_bankroll"`
	MinBet             decimal.Decimal `json:"min_bet"`
	MaxBet             decimal.Decimal `json:"max_bet"`
	Decks              int             `json:"decks"`
	ReshuffleThreshold int             `json:"reshuffle_threshold"`
	BlackjackPayout    decimal.Decimal `json:"blackjack_payout"`
	DealerHitsSoft17   bool            `json:"dealer_hits_soft_17"`
	Messages           struct {
		Welcome         string `json:"welcome"`
		PlayerBust      string `json:"player_bust"`
		DealerBust      string `json:"dealer_bust"`
		PlayerBlackjack string `json:"player_blackjack"`
		DealerBlackjack string `json:"dealer_blackjack"`
		BothBlackjack   string `json:"both_blackjack"`
		PlayerWins      string `json:"player_wins"`
		DealerWins      string `json:"dealer_wins"`
		Push            string `json:"push"`
		OutOfChips      string `json:"out_of_chips"`
	} `json:"messages"`
}

// ValidateTableConfig validates a table configuration for correctness and playability
func ValidateTableConfig(config *TableConfig) error {
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	if config.StartingBankroll.Sign() <= 0 {
		return fmt.Errorf("config validation: starting_bankroll must be positive, got %s", config.StartingBankroll)
	}
	if config.MinBet.Sign() <= 0 {
		return fmt.Errorf("config validation: min_bet must be positive, got %s", config.MinBet)
	}
	if config.MaxBet.LessThan(config.MinBet) {
		return fmt.Errorf("config validation: max_bet (%s) must be at least min_bet (%s)", config.MaxBet, config.MinBet)
	}
	if config.MinBet.GreaterThan(config.StartingBankroll) {
		return fmt.Errorf("config validation: min_bet (%s) exceeds starting_bankroll (%s) - table is unplayable",
			config.MinBet, config.StartingBankroll)
	}

	if config.Decks < MinDecks || config.Decks > MaxDecks {
		return fmt.Errorf("config validation: decks must be between %d and %d, got %d", MinDecks, MaxDecks, config.Decks)
	}
	if config.ReshuffleThreshold < MinReshuffleThreshold {
		return fmt.Errorf("config validation: reshuffle_threshold must be at least %d, got %d",
			MinReshuffleThreshold, config.ReshuffleThreshold)
	}
	if config.ReshuffleThreshold >= config.Decks*52 {
		return fmt.Errorf("config validation: reshuffle_threshold (%d) must be below shoe size (%d)",
			config.ReshuffleThreshold, config.Decks*52)
	}

	// 1:1 would make a natural pay like a regular win; anything below is a misconfiguration
	if config.BlackjackPayout.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("config validation: blackjack_payout must be at least 1, got %s", config.BlackjackPayout)
	}

	if config.Messages.Welcome == "" {
		return fmt.Errorf("config validation: messages.welcome is required")
	}
	if config.Messages.OutOfChips == "" {
		return fmt.Errorf("config validation: messages.out_of_chips is required")
	}

	return nil
}

// DefaultTableConfig returns the built-in classic table: bankroll 1000,
// six-deck shoe, 3:2 blackjack, dealer hits soft 17.
func DefaultTableConfig() *TableConfig {
	config := &TableConfig{
		Name:               "Classic",
		Description:        "Classic six-deck table, 3:2 blackjack, dealer hits soft 17",
		StartingBankroll:   decimal.NewFromInt(1000),
		MinBet:             decimal.NewFromInt(1),
		MaxBet:             decimal.NewFromInt(1000),
		Decks:              DefaultDecks,
		ReshuffleThreshold: DefaultReshuffleThreshold,
		BlackjackPayout:    decimal.NewFromFloat(1.5),
		DealerHitsSoft17:   true,
	}
	config.Messages.Welcome = "Welcome to the table! Place your bet."
	config.Messages.PlayerBust = "You busted! You lose."
	config.Messages.DealerBust = "Dealer busted! You win!"
	config.Messages.PlayerBlackjack = "BLACKJACK! You win!"
	config.Messages.DealerBlackjack = "Dealer has blackjack. You lose."
	config.Messages.BothBlackjack = "Both have blackjack. Push!"
	config.Messages.PlayerWins = "You win!"
	config.Messages.DealerWins = "Dealer wins."
	config.Messages.Push = "Push! It's a tie."
	config.Messages.OutOfChips = "You're out of chips. Game over!"
	return config
}

// LoadTableConfig loads a table configuration from a JSON file
func LoadTableConfig(filename string) (*TableConfig, error) {
	// Support CONFIG_DIR environment variable for alternative config directory
	configPath := filename
	if configDir := os.Getenv("CONFIG_DIR"); configDir != "" {
		if strings.HasPrefix(filename, "configs/") {
			configPath = filepath.Join(configDir, strings.TrimPrefix(filename, "configs/"))
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config TableConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := ValidateTableConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// InitTableStateFromConfig creates a fresh table state using the provided
// configuration. A nil config falls back to the built-in classic table.
func InitTableStateFromConfig(config *TableConfig) *TableState {
	if config == nil {
		config = DefaultTableConfig()
	}

	return &TableState{
		Phase:        PhaseIdle,
		Bankroll:     config.StartingBankroll,
		CurrentBet:   decimal.Zero,
		Message:      config.Messages.Welcome,
		ConfigName:   config.Name,
		Stats:        NewSessionStats(),
		RoundHistory: []RoundRecord{},
	}
}
