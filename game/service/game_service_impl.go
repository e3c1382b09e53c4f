package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cardtable/blackjack/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	// Fallback: return as-is or "default"
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new table session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Load configuration
	var config *engine.TableConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			// Provide helpful error message with available options
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	// Prefer the input configName if provided, otherwise look up by display name
	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		TableState:     session.Engine.GetState(),
		TableConfig:    session.Config,
	}, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     s.getConfigID(session.Config.Name),
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		TableState:     session.Engine.GetState(),
		TableConfig:    session.Config,
	}, nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, &SessionInfo{
			ID:             sess.ID,
			ConfigName:     s.getConfigID(sess.Config.Name),
			CreatedAt:      sess.CreatedAt,
			LastAccessedAt: sess.LastAccessedAt,
			TableState:     sess.Engine.GetState(),
			TableConfig:    sess.Config,
		})
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// PlaceBet wagers on a new round for a session
func (s *gameServiceImpl) PlaceBet(ctx context.Context, sessionID string, amount decimal.Decimal) (*BetResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	state, err := sess.Engine.PlaceBet(amount)
	if err != nil {
		return nil, err
	}

	events := []GameEvent{{
		Type: "deal",
		Message: fmt.Sprintf("Dealt %s against dealer %s", state.PlayerHand,
			dealerShown(state)),
		Timestamp: time.Now(),
	}}
	events = append(events, settlementEvents(state)...)

	return &BetResult{
		TableState:       state,
		Message:          state.Message,
		RoundOver:        state.Phase == engine.PhaseSettled,
		AvailableActions: sess.Engine.AvailableActions(),
		Events:           events,
	}, nil
}

// Action executes a player decision (hit, stand or double down)
func (s *gameServiceImpl) Action(ctx context.Context, sessionID string, action engine.Action) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	var state *engine.TableState
	switch action {
	case engine.ActionHit:
		state, err = sess.Engine.Hit()
	case engine.ActionStand:
		state, err = sess.Engine.Stand()
	case engine.ActionDouble:
		state, err = sess.Engine.DoubleDown()
	default:
		return nil, fmt.Errorf("%w: unknown action %q", engine.ErrIllegalAction, action)
	}
	if err != nil {
		return nil, err
	}

	events := []GameEvent{{
		Type:      string(action),
		Message:   fmt.Sprintf("Player hand: %s (%d)", state.PlayerHand, state.PlayerHand.Value().Total),
		Timestamp: time.Now(),
	}}
	events = append(events, settlementEvents(state)...)

	return &ActionResult{
		Action:           action,
		TableState:       state,
		Message:          state.Message,
		RoundOver:        state.Phase == engine.PhaseSettled,
		AvailableActions: sess.Engine.AvailableActions(),
		Events:           events,
	}, nil
}

// Reset restores a session's bankroll and statistics
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.TableState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Engine.Reset(), nil
}

// GetTableState retrieves the current table state
func (s *gameServiceImpl) GetTableState(ctx context.Context, sessionID string) (*engine.TableState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Engine.GetState(), nil
}

// GetRoundHistory returns paginated round history
func (s *gameServiceImpl) GetRoundHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.Engine.GetRoundHistory()
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	// Calculate pagination
	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	// Get the slice of rounds
	var rounds []engine.RoundRecord
	if opts.Order == "desc" {
		// Reverse order (most recent first)
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			rounds = append(rounds, history[i])
		}
	} else {
		// Normal chronological order
		if start < total {
			rounds = history[start:end]
		}
	}

	// Ensure rounds is not nil
	if rounds == nil {
		rounds = []engine.RoundRecord{}
	}

	return &HistoryResponse{
		Rounds:      rounds,
		TotalRounds: total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// GetStats returns the session statistics with derived rates
func (s *gameServiceImpl) GetStats(ctx context.Context, sessionID string) (*StatsInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	state := sess.Engine.GetState()
	stats := sess.Engine.Stats()

	return &StatsInfo{
		SessionID:  sess.ID,
		ConfigName: s.getConfigID(sess.Config.Name),
		Bankroll:   state.Bankroll,
		Stats:      stats,
		WinRate:    stats.WinRate(),
		ROI:        stats.ROI(),
		AverageBet: stats.AverageBet(),
		AverageWin: stats.AverageWin(),
		HouseEdge:  stats.HouseEdge(),
		GameOver:   state.GameOver,
	}, nil
}

// ListConfigs returns available table configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific table configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.TableConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a table configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.TableConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// dealerShown renders the dealer's visible cards, hiding the hole card
// during the player's turn
func dealerShown(state *engine.TableState) string {
	if state.HoleHidden && state.DealerHand.Size() > 0 {
		return state.DealerHand.Cards[0].String() + ", ??"
	}
	return state.DealerHand.String()
}

// settlementEvents derives the events implied by a settled state
func settlementEvents(state *engine.TableState) []GameEvent {
	if state.Phase != engine.PhaseSettled {
		return nil
	}

	events := []GameEvent{}
	now := time.Now()

	if state.Outcome == engine.OutcomeBlackjack {
		events = append(events, GameEvent{
			Type:      "blackjack",
			Message:   fmt.Sprintf("Natural 21: %s", state.PlayerHand),
			Timestamp: now,
		})
	}
	if state.PlayerHand.Value().Bust {
		events = append(events, GameEvent{
			Type:      "bust",
			Message:   fmt.Sprintf("Player busts at %d", state.PlayerHand.Value().Total),
			Timestamp: now,
		})
	}

	events = append(events, GameEvent{
		Type: "settled",
		Message: fmt.Sprintf("Round %d: %s (bankroll %s)", state.RoundNumber,
			state.Outcome, state.Bankroll),
		Timestamp: now,
	})

	if state.GameOver {
		events = append(events, GameEvent{
			Type:      "game_over",
			Message:   state.Message,
			Timestamp: now,
		})
	}

	return events
}
