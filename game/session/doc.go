// Package session provides session management for the blackjack table.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session lifecycle management
//   - Concurrent access control
//   - Session cleanup and expiration
//
// Core Types:
//
// Manager is the main session manager that handles all session operations.
// Each session owns an independent table engine with its own shoe, bankroll
// and statistics, plus metadata like creation time and last access time.
//
// Session Identifiers:
//
// Sessions use 4-character hexadecimal IDs for easy reference. The manager
// ensures IDs are unique and provides collision-resistant generation using
// cryptographic randomness. Lookups are case-insensitive.
//
// Sessions are held in memory only; expired sessions are reaped periodically
// by the server's cleanup loop.
package session
