package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/shopspring/decimal"

	"github.com/cardtable/blackjack/game/engine"
	"github.com/cardtable/blackjack/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Blackjack Table",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Blackjack Table - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Beat the dealer: get a hand total closer to 21 without going over. A round
starts with place_bet, then play your hand with hit, stand or double_down.

AVAILABLE TOOLS:
- create_session: Create a new table session
- list_sessions: List all active sessions
- get_session: Get session details
- table_state: Get the current table state
- place_bet: Place a bet and deal a new round
- hit: Draw another card
- stand: End your turn, dealer plays
- double_down: Double the bet, draw exactly one card
- reset_session: Restore the bankroll and clear statistics
- round_history: View settled rounds
- session_stats: Win rate, ROI and house-edge statistics
- list_configs: List available table configurations
- table_rules: Get the full rules of the game

NOTE: Card totals, bet limits and the dealer's face-up card are all in the
table_state output - read it before every decision.`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new table session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Identifier of the table config to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active table sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Table operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "table_state",
		Description: "Get the current table state: hands, bankroll, phase and available actions",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleTableState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "place_bet",
		Description: "Place a bet and deal a new round. Naturals settle immediately.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"amount": map[string]interface{}{
					"type":        "string",
					"description": "Bet amount as a decimal string, e.g. \"25\" or \"12.50\"",
				},
			},
			Required: []string{"session_id", "amount"},
		},
	}, c.handlePlaceBet)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "hit",
		Description: "Draw another card. Busting over 21 loses the round immediately.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleHit)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "stand",
		Description: "End your turn. The dealer reveals the hole card and draws to 17.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleStand)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "double_down",
		Description: "Double the bet and draw exactly one card. Only legal on the opening two cards with enough bankroll.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleDoubleDown)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_session",
		Description: "Restore the starting bankroll and clear statistics. Round history is preserved.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "round_history",
		Description: "Get settled round history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleRoundHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "session_stats",
		Description: "Get session statistics: win rate, ROI, average bet and house edge",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleSessionStats)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available table configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "table_rules",
		Description: "Get the complete rules of the table",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleTableRules)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n\n%s",
		session.ID, session.ConfigName, formatTableState(session.TableState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		bankroll := ""
		if s.TableState != nil {
			bankroll = s.TableState.Bankroll.String()
		}
		result += fmt.Sprintf("- %s (Config: %s, Bankroll: %s, Created: %s)\n",
			s.ID, s.ConfigName, bankroll, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleTableState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.TableState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatTableState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handlePlaceBet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	amount, _ := args["amount"].(string)

	body := map[string]string{
		"amount": amount,
	}

	var result service.BetResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/bet", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatBetResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleHit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.postAction(request, engine.ActionHit)
}

func (c *Client) handleStand(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.postAction(request, engine.ActionStand)
}

func (c *Client) handleDoubleDown(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.postAction(request, engine.ActionDouble)
}

// postAction sends a player decision to the REST API and formats the result
func (c *Client) postAction(request mcp.CallToolRequest, action engine.Action) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	body := map[string]string{
		"action": string(action),
	}

	var result service.ActionResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/action", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatActionResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string             `json:"message"`
		State   *engine.TableState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatTableState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleRoundHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatHistory(&history)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleSessionStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var stats service.StatsInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/stats", sessionID), nil, &stats)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatStats(&stats)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		soft17 := "stands on all 17s"
		if config.DealerHitsSoft17 {
			soft17 = "hits soft 17"
		}
		result += fmt.Sprintf("• %s (%s)\n  %s\n  Decks: %d, Bankroll: %s, Bets: %s-%s, Blackjack pays %s:1, dealer %s\n\n",
			config.Name, config.ConfigID, config.Description,
			config.Decks, config.StartingBankroll,
			config.MinBet, config.MaxBet, config.BlackjackPayout, soft17)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleTableRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rules := `🃏 Blackjack Table - Complete Rules

GAME OBJECTIVE:
Finish each round with a hand total closer to 21 than the dealer's without
going over. Grow your bankroll; the session ends when you cannot cover the
table minimum.

CARD VALUES:
• 2-10 count face value
• J, Q, K count 10
• Aces count 11, demoted to 1 whenever the hand would bust

A hand is "soft" while an Ace still counts as 11 (soft 17 = A+6).

ROUND FLOW:
1. place_bet - your bet is validated against the table limits and your
   bankroll, then two cards go to you and two to the dealer. The dealer's
   second card stays face down (shown as ??).
2. If either opening hand is a natural (Ace + ten-value), the round settles
   immediately: your natural pays the blackjack premium, the dealer's
   natural takes your bet, and two naturals push.
3. Otherwise it is your turn: hit, stand or double_down.
4. When you stand (or after a double down), the dealer reveals the hole
   card and draws until reaching at least 17.
5. Totals are compared and your bankroll is adjusted once.

PLAYER ACTIONS:
• hit - draw one card. Going over 21 busts: the round is lost on the spot
  and the dealer does not play. Reaching exactly 21 does NOT stand for you;
  you still choose.
• stand - keep your total, dealer plays.
• double_down - double the bet and receive exactly one card. Only legal on
  your opening two cards, and only when your bankroll covers the doubled
  bet. After the card, the dealer plays automatically.

DEALER RULES:
• Draws until the total is 17 or more
• Whether the dealer hits a SOFT 17 depends on the table config (see
  list_configs); classic tables hit it, conservative tables stand
• Dealer decisions are fixed by rule - there is no dealer judgement

SETTLEMENT:
• Your bust loses, even if the dealer would also have busted
• Dealer bust (you standing) wins even money
• Higher total wins even money, equal totals push
• Your natural pays the configured blackjack premium (classic 3:2)

BANKROLL AND SESSION:
• Bets must be within the table's min/max and your current bankroll
• The bankroll changes exactly once per round, at settlement
• When the bankroll drops below the table minimum the session is over;
  reset_session restores the starting bankroll (history is preserved)

STRATEGY HINTS FOR AGENTS:
• Always read table_state before acting - it lists the legal actions
• The dealer's face-up card is the main input to basic strategy: stand on
  12-16 against a weak upcard (2-6), hit against 7-A
• Double down on 10 or 11 when the dealer shows a smaller card
• Track your session with session_stats and round_history

SESSION MANAGEMENT:
• Multiple sessions can run simultaneously, each with its own shoe,
  bankroll and history
• Each session has a unique 4-character ID
• Use list_configs to pick a table before create_session

Good luck at the table! 🃏💰`

	return mcp.NewToolResultText(rules), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatTableState(session.TableState))
}

func formatTableState(state *engine.TableState) string {
	if state == nil {
		return "No table state available"
	}

	var result strings.Builder

	result.WriteString(fmt.Sprintf("Bankroll: %s | Bet: %s | Round: %d | Phase: %s\n\n",
		state.Bankroll, state.CurrentBet, state.RoundNumber, state.Phase))

	result.WriteString(fmt.Sprintf("Dealer: %s\n", formatDealerHand(state)))
	playerValue := state.PlayerHand.Value()
	result.WriteString(fmt.Sprintf("You:    %s (%s)\n", state.PlayerHand, formatValue(playerValue)))

	if state.Doubled {
		result.WriteString("\nBet was doubled this round\n")
	}

	if state.Outcome != "" {
		result.WriteString(fmt.Sprintf("\nOutcome: %s\n", state.Outcome))
	}

	if state.GameOver {
		result.WriteString("\n💀 GAME OVER - bankroll below the table minimum")
	}

	if state.Message != "" {
		result.WriteString(fmt.Sprintf("\nMessage: %s", state.Message))
	}

	return result.String()
}

// formatDealerHand renders the dealer's hand, masking the hole card while the
// round is still being played
func formatDealerHand(state *engine.TableState) string {
	cards := state.DealerHand.Cards
	if len(cards) == 0 {
		return "(no cards)"
	}

	if state.HoleHidden && len(cards) >= 2 {
		return fmt.Sprintf("%s, ?? (showing %d)", cards[0], cards[0].Value())
	}

	value := state.DealerHand.Value()
	return fmt.Sprintf("%s (%s)", state.DealerHand, formatValue(value))
}

// formatValue renders a hand value like "17", "soft 17", "21 blackjack" or "24 BUST"
func formatValue(v engine.HandValue) string {
	switch {
	case v.Blackjack:
		return fmt.Sprintf("%d blackjack", v.Total)
	case v.Bust:
		return fmt.Sprintf("%d BUST", v.Total)
	case v.Soft:
		return fmt.Sprintf("soft %d", v.Total)
	default:
		return fmt.Sprintf("%d", v.Total)
	}
}

func formatBetResult(result *service.BetResult) string {
	var b strings.Builder

	b.WriteString("Bet placed, cards dealt\n")
	if result.RoundOver {
		b.WriteString("Round settled during the deal\n")
	}

	b.WriteString(formatEvents(result.Events))
	b.WriteString("\n")
	b.WriteString(formatTableState(result.TableState))
	b.WriteString(formatAvailableActions(result.AvailableActions))
	return b.String()
}

func formatActionResult(result *service.ActionResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Action: %s\n", result.Action))
	if result.RoundOver {
		b.WriteString("Round settled\n")
	}

	b.WriteString(formatEvents(result.Events))
	b.WriteString("\n")
	b.WriteString(formatTableState(result.TableState))
	b.WriteString(formatAvailableActions(result.AvailableActions))
	return b.String()
}

func formatEvents(events []service.GameEvent) string {
	if len(events) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Events:\n")
	for _, event := range events {
		b.WriteString(fmt.Sprintf("- %s: %s\n", event.Type, event.Message))
	}
	return b.String()
}

func formatAvailableActions(actions []engine.Action) string {
	if len(actions) == 0 {
		return ""
	}
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		parts = append(parts, string(a))
	}
	return fmt.Sprintf("\n\nAvailable actions: %s", strings.Join(parts, ", "))
}

func formatHistory(history *service.HistoryResponse) string {
	result := fmt.Sprintf("Round History (Page %d/%d) — Total rounds: %d\n\n",
		history.Page, history.TotalPages, history.TotalRounds)

	if len(history.Rounds) == 0 {
		return result + "(no settled rounds)"
	}

	for _, round := range history.Rounds {
		doubled := ""
		if round.Doubled {
			doubled = " (doubled)"
		}
		result += fmt.Sprintf("#%d bet %s%s: you %s (%d) vs dealer %s (%d) — %s, %s → bankroll %s\n",
			round.RoundNumber, round.Bet, doubled,
			round.PlayerHand, round.PlayerTotal,
			round.DealerHand, round.DealerTotal,
			round.Outcome, formatDelta(round.Delta), round.BankrollAfter)
	}

	return result
}

// formatDelta renders a bankroll change with an explicit sign
func formatDelta(delta decimal.Decimal) string {
	if delta.Sign() > 0 {
		return "+" + delta.String()
	}
	return delta.String()
}

func formatStats(stats *service.StatsInfo) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Session %s (%s)\n", stats.SessionID, stats.ConfigName))
	b.WriteString(fmt.Sprintf("Bankroll: %s\n\n", stats.Bankroll))

	s := stats.Stats
	if s == nil || s.RoundsPlayed == 0 {
		b.WriteString("No rounds played yet")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Rounds: %d (W %d / L %d / P %d)\n", s.RoundsPlayed, s.Wins, s.Losses, s.Pushes))
	b.WriteString(fmt.Sprintf("Blackjacks: %d, Busts: %d\n", s.Blackjacks, s.Busts))
	b.WriteString(fmt.Sprintf("Profit: %s on %s wagered\n\n", s.Profit, s.TotalWagered))

	b.WriteString(fmt.Sprintf("Win rate: %.1f%%\n", stats.WinRate*100))
	b.WriteString(fmt.Sprintf("ROI: %s\n", stats.ROI))
	b.WriteString(fmt.Sprintf("Average bet: %s\n", stats.AverageBet))
	b.WriteString(fmt.Sprintf("Average win: %s\n", stats.AverageWin))
	b.WriteString(fmt.Sprintf("House edge: %s\n", stats.HouseEdge))

	if stats.GameOver {
		b.WriteString("\n💀 Session is over - reset_session to start fresh")
	}

	return b.String()
}
