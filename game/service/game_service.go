package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cardtable/blackjack/game/engine"
)

// GameService defines all table-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Table Operations
	PlaceBet(ctx context.Context, sessionID string, amount decimal.Decimal) (*BetResult, error)
	Action(ctx context.Context, sessionID string, action engine.Action) (*ActionResult, error)
	Reset(ctx context.Context, sessionID string) (*engine.TableState, error)

	// Table State
	GetTableState(ctx context.Context, sessionID string) (*engine.TableState, error)
	GetRoundHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)
	GetStats(ctx context.Context, sessionID string) (*StatsInfo, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.TableConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.TableConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.TableConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, config *engine.TableConfig) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// ConfigManager handles table configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.TableConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.TableConfig
	SaveConfig(name string, config *engine.TableConfig) error
}

// Session represents an active table session
type Session struct {
	ID             string
	Engine         engine.Engine
	Config         *engine.TableConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
