// Package service provides the business logic layer for the blackjack table.
//
// The service package implements:
//   - Multi-session table management
//   - Configuration management and loading
//   - Bet and action processing with validation
//   - Session lifecycle management
//   - Round history and statistics retrieval
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level table operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages table configuration loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the table engine, providing session isolation, configuration management, and
// business logic orchestration. Each session maintains its own engine instance
// with an independent shoe, bankroll and statistics.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	// Create a new session
//	sessionInfo, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Play a round
//	bet, err := gameService.PlaceBet(ctx, sessionInfo.ID, decimal.NewFromInt(25))
//
// Session Management:
//
// Sessions are identified by unique 4-character IDs and maintain independent
// table state. Multiple sessions can run concurrently with different
// configurations. Sessions track creation time, last access time, and round
// history for analytics.
package service
