// Package api provides HTTP REST API handlers for the blackjack table.
//
// The api package implements:
//   - RESTful endpoints for table operations
//   - Session management endpoints
//   - Configuration listing, retrieval and creation
//   - WebSocket upgrade handling with per-session broadcast
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session (optional config_id in body)
//   - GET /api/sessions - List all sessions (sort, order, limit query params)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Table Operations:
//   - GET /api/sessions/{id}/state - Current table state
//   - POST /api/sessions/{id}/bet - Place a bet and deal: {"amount": "25"}
//   - POST /api/sessions/{id}/action - Player decision: {"action": "hit|stand|double"}
//   - POST /api/sessions/{id}/reset - Restore bankroll and clear statistics
//   - GET /api/sessions/{id}/history - Paginated round history (page, limit, order)
//   - GET /api/sessions/{id}/stats - Session statistics with derived rates
//
// Configuration:
//   - GET /api/configs - List available table configurations
//   - GET /api/configs/{name} - Get a specific configuration
//   - POST /api/configs - Save a new configuration
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes: 404 for
// unknown sessions and configs, 400 for rule violations (invalid bets,
// illegal actions, betting mid-round), 500 for everything else.
//
//	{
//	  "error": "bet exceeds bankroll: bankroll is 120"
//	}
package api
