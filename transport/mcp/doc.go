// Package mcp provides Model Context Protocol server implementation for the
// blackjack table.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for table operations
//   - Session-aware command execution
//   - Stdio transport via the enclosing command
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - create_session: Create a new table session with config selection
//   - list_sessions: List all active sessions
//   - get_session: Get specific session details
//   - table_state: Current hands, bankroll, phase and legal actions
//   - place_bet: Place a bet and deal a new round
//   - hit: Draw another card
//   - stand: End the turn and let the dealer play
//   - double_down: Double the bet and draw exactly one card
//   - reset_session: Restore the bankroll and clear statistics
//   - round_history: Retrieve settled rounds with pagination
//   - session_stats: Win rate, ROI and house-edge statistics
//   - list_configs: List available table configurations
//   - table_rules: Complete rules of the game
//
// Architecture:
//
// The Client is a thin proxy: every tool call is translated into a REST
// request against the API server and the JSON response is rendered as text
// for the agent. Game logic lives entirely behind the REST API; this package
// only formats.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Play rounds autonomously
//   - Test betting and playing strategies
//   - Track results through history and statistics
//   - Manage multiple concurrent table sessions
package mcp
