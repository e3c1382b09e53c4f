// Command validate provides a small CLI that validates table configuration
// JSON files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Bet limits (positive minimum, maximum at least the minimum)
//   - Bankroll playability (starting bankroll covers the minimum bet)
//   - Shoe settings (deck count in range, reshuffle threshold below shoe size)
//   - Blackjack payout sanity (at least even money)
//   - Required message keys
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cardtable/blackjack/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single table configuration JSON file.
// It performs structural checks, rule validation and playability analysis.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config engine.TableConfig
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if err := engine.ValidateTableConfig(&config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
	}

	// Message completeness beyond the rule checks: every outcome should have
	// its own line so the table never falls back to a generic message
	messageChecks := []struct {
		name  string
		value string
	}{
		{"player_bust", config.Messages.PlayerBust},
		{"dealer_bust", config.Messages.DealerBust},
		{"player_blackjack", config.Messages.PlayerBlackjack},
		{"dealer_blackjack", config.Messages.DealerBlackjack},
		{"both_blackjack", config.Messages.BothBlackjack},
		{"player_wins", config.Messages.PlayerWins},
		{"dealer_wins", config.Messages.DealerWins},
		{"push", config.Messages.Push},
	}
	for _, check := range messageChecks {
		if check.value == "" {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Missing message: messages.%s", check.name))
		}
	}

	if result.Valid {
		result.Errors = append(result.Errors, playabilityInfo(&config)...)
	}

	return result
}

// playabilityInfo derives informational lines about how the table plays:
// how many minimum-bet rounds the bankroll survives, how many rounds fit in
// one shoe, and which soft-17 rule is in effect.
func playabilityInfo(config *engine.TableConfig) []string {
	info := []string{
		fmt.Sprintf("✓ Name: %s", config.Name),
		fmt.Sprintf("✓ Bankroll: %s, bets %s-%s", config.StartingBankroll, config.MinBet, config.MaxBet),
		fmt.Sprintf("✓ Shoe: %d decks (%d cards), reshuffle below %d",
			config.Decks, config.Decks*52, config.ReshuffleThreshold),
		fmt.Sprintf("✓ Blackjack pays %s:1", config.BlackjackPayout),
	}

	// Worst-case survival at the table minimum, losing every round
	minBetRounds := config.StartingBankroll.Div(config.MinBet).Floor()
	info = append(info, fmt.Sprintf("✓ Survives %s losing rounds at the minimum bet", minBetRounds))

	// A round consumes at least 4 cards; the shoe restocks at the threshold
	usable := config.Decks*52 - config.ReshuffleThreshold
	info = append(info, fmt.Sprintf("✓ At least %d rounds per shoe before reshuffle", usable/4))

	if config.DealerHitsSoft17 {
		info = append(info, "✓ Dealer hits soft 17")
	} else {
		info = append(info, "✓ Dealer stands on all 17s")
	}

	if config.MaxBet.GreaterThan(config.StartingBankroll) {
		info = append(info, fmt.Sprintf("⚠ max_bet (%s) exceeds the starting bankroll (%s); the cap only matters after winning",
			config.MaxBet, config.StartingBankroll))
	}

	if config.BlackjackPayout.LessThan(decimal.NewFromFloat(1.5)) {
		info = append(info, fmt.Sprintf("⚠ blackjack payout %s:1 is below the classic 3:2", config.BlackjackPayout))
	}

	return info
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
