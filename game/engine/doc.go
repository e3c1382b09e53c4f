// Package engine provides the core blackjack logic for the card table.
//
// The engine package implements the game mechanics including:
//   - Multi-deck shoe with threshold-based reshuffling
//   - Hand valuation with soft-Ace demotion and natural detection
//   - The round state machine: bet, deal, player actions, dealer play, settlement
//   - Session statistics and cumulative round history
//   - Table configuration loading and validation
//
// Core Types:
//
// The Engine interface defines the main contract for table operations,
// implemented by TableEngine. TableState represents the current observable
// table state, while TableConfig defines the house rules loaded from JSON
// files.
//
// Usage:
//
//	config := engine.DefaultTableConfig()
//
//	table, err := engine.NewEngine(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Play one round
//	state, err := table.PlaceBet(decimal.NewFromInt(25))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if state.Phase == engine.PhasePlayerTurn {
//		state, _ = table.Stand()
//	}
//
// Game Rules:
//
// The player wagers against the dealer from a fixed bankroll. Both receive
// two cards, the dealer's second face down. The player may hit, stand or
// double down; the dealer then draws to 17, hitting soft 17 when the table
// rules say so. A natural pays 3:2 on the classic table, a player bust loses
// even against a dealer bust, and the session ends when the bankroll can no
// longer cover the table minimum.
package engine
