package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/cardtable/blackjack/game/engine"
)

func writeConfig(t *testing.T, dir, name string, config *engine.TableConfig) string {
	t.Helper()

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestValidateConfig_Valid(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "classic.json", engine.DefaultTableConfig())

	result := validateConfig(path)

	if !result.Valid {
		t.Fatalf("Expected valid config, got errors: %v", result.Errors)
	}

	// Info lines should include name and shoe details
	joined := strings.Join(result.Errors, "\n")
	if !strings.Contains(joined, "Name: Classic") {
		t.Errorf("Expected name info line, got: %s", joined)
	}
	if !strings.Contains(joined, "6 decks") {
		t.Errorf("Expected shoe info line, got: %s", joined)
	}
	if !strings.Contains(joined, "Dealer hits soft 17") {
		t.Errorf("Expected soft-17 info line, got: %s", joined)
	}
}

func TestValidateConfig_MissingFile(t *testing.T) {
	result := validateConfig("/non/existent/config.json")

	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
}

func TestValidateConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	result := validateConfig(path)

	if result.Valid {
		t.Error("Expected invalid result for broken JSON")
	}
	if len(result.Errors) == 0 || !strings.Contains(result.Errors[0], "Invalid JSON") {
		t.Errorf("Expected JSON error, got: %v", result.Errors)
	}
}

func TestValidateConfig_BadLimits(t *testing.T) {
	config := engine.DefaultTableConfig()
	config.MaxBet = decimal.NewFromInt(1)
	config.MinBet = decimal.NewFromInt(100)

	dir := t.TempDir()
	path := writeConfig(t, dir, "bad.json", config)

	result := validateConfig(path)

	if result.Valid {
		t.Error("Expected invalid result when max_bet is below min_bet")
	}
}

func TestValidateConfig_UnplayableBankroll(t *testing.T) {
	config := engine.DefaultTableConfig()
	config.MinBet = decimal.NewFromInt(5000)
	config.MaxBet = decimal.NewFromInt(10000)

	dir := t.TempDir()
	path := writeConfig(t, dir, "unplayable.json", config)

	result := validateConfig(path)

	if result.Valid {
		t.Error("Expected invalid result when min_bet exceeds the starting bankroll")
	}
}

func TestValidateConfig_MissingMessages(t *testing.T) {
	config := engine.DefaultTableConfig()
	config.Messages.Push = ""
	config.Messages.DealerBust = ""

	dir := t.TempDir()
	path := writeConfig(t, dir, "quiet.json", config)

	result := validateConfig(path)

	if result.Valid {
		t.Error("Expected invalid result for missing outcome messages")
	}

	joined := strings.Join(result.Errors, "\n")
	if !strings.Contains(joined, "messages.push") {
		t.Errorf("Expected missing push message error, got: %s", joined)
	}
	if !strings.Contains(joined, "messages.dealer_bust") {
		t.Errorf("Expected missing dealer_bust message error, got: %s", joined)
	}
}

func TestValidateConfig_Warnings(t *testing.T) {
	config := engine.DefaultTableConfig()
	config.BlackjackPayout = decimal.NewFromFloat(1.2)
	config.MaxBet = decimal.NewFromInt(5000)

	dir := t.TempDir()
	path := writeConfig(t, dir, "stingy.json", config)

	result := validateConfig(path)

	// Warnings inform but do not invalidate
	if !result.Valid {
		t.Fatalf("Expected valid config with warnings, got errors: %v", result.Errors)
	}

	joined := strings.Join(result.Errors, "\n")
	if !strings.Contains(joined, "below the classic 3:2") {
		t.Errorf("Expected payout warning, got: %s", joined)
	}
	if !strings.Contains(joined, "exceeds the starting bankroll") {
		t.Errorf("Expected max-bet warning, got: %s", joined)
	}
}

func TestValidateRepositoryConfigs(t *testing.T) {
	files, err := filepath.Glob("../configs/*.json")
	if err != nil || len(files) == 0 {
		t.Skip("No repository configs found")
	}

	for _, file := range files {
		result := validateConfig(file)
		if !result.Valid {
			t.Errorf("%s should be valid, got: %v", result.File, result.Errors)
		}
	}
}
