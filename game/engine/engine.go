package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// Betting and action errors returned by the engine. Callers match with
// errors.Is to translate them into transport-level responses.
var (
	ErrInvalidBet         = errors.New("bet must be positive")
	ErrBetBelowMinimum    = errors.New("bet is below the table minimum")
	ErrBetAboveMaximum    = errors.New("bet is above the table maximum")
	ErrBetExceedsBankroll = errors.New("bet exceeds bankroll")
	ErrRoundInProgress    = errors.New("round already in progress")
	ErrNoActiveRound      = errors.New("no active round")
	ErrIllegalAction      = errors.New("action not allowed now")
	ErrBankrupt           = errors.New("bankroll is exhausted")
)

// Engine provides the main interface for table operations
type Engine interface {
	// Round lifecycle
	PlaceBet(amount decimal.Decimal) (*TableState, error)
	Hit() (*TableState, error)
	Stand() (*TableState, error)
	DoubleDown() (*TableState, error)

	// Table state management
	GetState() *TableState
	SetState(state *TableState) error
	Reset() *TableState
	IsGameOver() bool
	GetBankroll() decimal.Decimal

	// Player options
	CanDoubleDown() bool
	AvailableActions() []Action

	// Configuration
	GetConfig() *TableConfig
	SetConfig(config *TableConfig) error

	// History and statistics
	GetRoundHistory() []RoundRecord
	GetLastRound() *RoundRecord
	Stats() *SessionStats
}

// TableEngine implements the Engine interface for a single table
type TableEngine struct {
	state  *TableState
	config *TableConfig
	shoe   CardSource
}

var _ Engine = (*TableEngine)(nil)

// NewEngine creates a new table engine with the provided configuration
func NewEngine(config *TableConfig) (*TableEngine, error) {
	if err := ValidateTableConfig(config); err != nil {
		return nil, err
	}

	engine := &TableEngine{
		config: config,
		state:  InitTableStateFromConfig(config),
		shoe:   NewShoe(config.Decks, config.ReshuffleThreshold),
	}

	return engine, nil
}

// NewEngineWithDefaults creates a new table engine with the classic table rules
func NewEngineWithDefaults() *TableEngine {
	config := DefaultTableConfig()
	engine := &TableEngine{
		config: config,
		state:  InitTableStateFromConfig(config),
		shoe:   NewShoe(config.Decks, config.ReshuffleThreshold),
	}
	return engine
}

// NewEngineWithRand creates a table engine whose shoe is shuffled by the
// provided random source. The simulator uses this for reproducible runs.
func NewEngineWithRand(config *TableConfig, rng *rand.Rand) (*TableEngine, error) {
	if err := ValidateTableConfig(config); err != nil {
		return nil, err
	}

	engine := &TableEngine{
		config: config,
		state:  InitTableStateFromConfig(config),
		shoe:   NewShoeWithRand(config.Decks, config.ReshuffleThreshold, rng),
	}

	return engine, nil
}

// NewEngineWithSource creates a table engine drawing from the provided card
// source instead of a shuffled shoe. Tests use this to rig deals.
func NewEngineWithSource(config *TableConfig, source CardSource) (*TableEngine, error) {
	if err := ValidateTableConfig(config); err != nil {
		return nil, err
	}

	engine := &TableEngine{
		config: config,
		state:  InitTableStateFromConfig(config),
		shoe:   source,
	}

	return engine, nil
}

// PlaceBet validates the wager, deals the opening hands and advances the
// round. Naturals settle immediately; otherwise play passes to the player
// with the dealer's hole card hidden.
func (e *TableEngine) PlaceBet(amount decimal.Decimal) (*TableState, error) {
	if e.state.Phase != PhaseIdle && e.state.Phase != PhaseSettled {
		return nil, ErrRoundInProgress
	}
	if e.state.GameOver {
		return nil, ErrBankrupt
	}
	if amount.Sign() <= 0 {
		return nil, ErrInvalidBet
	}
	if amount.LessThan(e.config.MinBet) {
		return nil, fmt.Errorf("%w: minimum is %s", ErrBetBelowMinimum, e.config.MinBet)
	}
	if amount.GreaterThan(e.config.MaxBet) {
		return nil, fmt.Errorf("%w: maximum is %s", ErrBetAboveMaximum, e.config.MaxBet)
	}
	if amount.GreaterThan(e.state.Bankroll) {
		return nil, fmt.Errorf("%w: bankroll is %s", ErrBetExceedsBankroll, e.state.Bankroll)
	}

	e.state.Phase = PhaseDealing
	e.state.CurrentBet = amount
	e.state.Doubled = false
	e.state.Outcome = ""
	e.state.PlayerHand = Hand{}
	e.state.DealerHand = Hand{}
	e.state.RoundNumber = e.state.TotalRounds + 1

	// Deal order: player, dealer, player, dealer (hole)
	e.state.PlayerHand.Add(e.shoe.Draw())
	e.state.DealerHand.Add(e.shoe.Draw())
	e.state.PlayerHand.Add(e.shoe.Draw())
	e.state.DealerHand.Add(e.shoe.Draw())

	playerValue := e.state.PlayerHand.Value()
	dealerValue := e.state.DealerHand.Value()

	// Naturals end the round before the player acts
	if playerValue.Blackjack || dealerValue.Blackjack {
		e.state.HoleHidden = false
		e.settle()
		return e.state, nil
	}

	e.state.Phase = PhasePlayerTurn
	e.state.HoleHidden = true
	e.state.Message = fmt.Sprintf("Your hand: %s (%d). Dealer shows %s.",
		e.state.PlayerHand, playerValue.Total, e.state.DealerHand.Cards[0])

	return e.state, nil
}

// Hit draws one card for the player. A bust settles the round immediately;
// reaching 21 still leaves the choice to stand with the player.
func (e *TableEngine) Hit() (*TableState, error) {
	if e.state.Phase != PhasePlayerTurn {
		return nil, ErrNoActiveRound
	}

	e.state.PlayerHand.Add(e.shoe.Draw())

	value := e.state.PlayerHand.Value()
	if value.Bust {
		e.state.HoleHidden = false
		e.settle()
		return e.state, nil
	}

	e.state.Message = fmt.Sprintf("Your hand: %s (%d). Dealer shows %s.",
		e.state.PlayerHand, value.Total, e.state.DealerHand.Cards[0])

	return e.state, nil
}

// Stand ends the player's turn and lets the dealer play out their hand
func (e *TableEngine) Stand() (*TableState, error) {
	if e.state.Phase != PhasePlayerTurn {
		return nil, ErrNoActiveRound
	}

	e.playDealer()
	e.settle()

	return e.state, nil
}

// DoubleDown doubles the wager, draws exactly one card and ends the player's
// turn. Only allowed on the opening two cards with bankroll to cover the
// doubled bet.
func (e *TableEngine) DoubleDown() (*TableState, error) {
	if e.state.Phase != PhasePlayerTurn {
		return nil, ErrNoActiveRound
	}
	if !e.CanDoubleDown() {
		return nil, fmt.Errorf("%w: double down requires the opening two cards and bankroll to cover the doubled bet", ErrIllegalAction)
	}

	e.state.CurrentBet = e.state.CurrentBet.Mul(decimal.NewFromInt(2))
	e.state.Doubled = true
	e.state.PlayerHand.Add(e.shoe.Draw())

	if e.state.PlayerHand.Value().Bust {
		e.state.HoleHidden = false
		e.settle()
		return e.state, nil
	}

	e.playDealer()
	e.settle()

	return e.state, nil
}

// CanDoubleDown reports whether doubling is legal in the current state
func (e *TableEngine) CanDoubleDown() bool {
	if e.state.Phase != PhasePlayerTurn {
		return false
	}
	if e.state.PlayerHand.Size() != 2 || e.state.Doubled {
		return false
	}
	doubled := e.state.CurrentBet.Mul(decimal.NewFromInt(2))
	return doubled.LessThanOrEqual(e.state.Bankroll)
}

// AvailableActions returns the actions the player may take right now
func (e *TableEngine) AvailableActions() []Action {
	if e.state.Phase != PhasePlayerTurn {
		return nil
	}

	actions := []Action{ActionHit, ActionStand}
	if e.CanDoubleDown() {
		actions = append(actions, ActionDouble)
	}
	return actions
}

// GetState returns the current table state
func (e *TableEngine) GetState() *TableState {
	return e.state
}

// SetState sets the table state (used for session restoration)
func (e *TableEngine) SetState(state *TableState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	e.state = state
	return nil
}

// Reset restores the starting bankroll and clears session statistics while
// preserving the cumulative round history
func (e *TableEngine) Reset() *TableState {
	// Preserve cumulative history and totals across resets
	prevHistory := e.state.RoundHistory
	prevTotal := e.state.TotalRounds

	// Reinitialize core state from config
	e.state = InitTableStateFromConfig(e.config)

	// Restore cumulative history and totals; only the session segment resets
	e.state.RoundHistory = prevHistory
	e.state.TotalRounds = prevTotal

	return e.state
}

// IsGameOver returns whether the bankroll is exhausted
func (e *TableEngine) IsGameOver() bool {
	return e.state.GameOver
}

// GetBankroll returns the current bankroll
func (e *TableEngine) GetBankroll() decimal.Decimal {
	return e.state.Bankroll
}

// GetConfig returns the current table configuration
func (e *TableEngine) GetConfig() *TableConfig {
	return e.config
}

// SetConfig sets a new table configuration and resets the table
func (e *TableEngine) SetConfig(config *TableConfig) error {
	if err := ValidateTableConfig(config); err != nil {
		return err
	}

	e.config = config
	e.state = InitTableStateFromConfig(config)
	e.shoe = NewShoe(config.Decks, config.ReshuffleThreshold)
	return nil
}

// GetRoundHistory returns the complete round history
func (e *TableEngine) GetRoundHistory() []RoundRecord {
	return e.state.RoundHistory
}

// GetLastRound returns the most recent settled round, or nil if none
func (e *TableEngine) GetLastRound() *RoundRecord {
	if len(e.state.RoundHistory) == 0 {
		return nil
	}
	return &e.state.RoundHistory[len(e.state.RoundHistory)-1]
}

// Stats returns the session statistics tracker
func (e *TableEngine) Stats() *SessionStats {
	return e.state.Stats
}

// settle resolves the round: it classifies the outcome, applies the single
// bankroll adjustment, records statistics and appends the history entry.
func (e *TableEngine) settle() {
	playerValue := e.state.PlayerHand.Value()
	dealerValue := e.state.DealerHand.Value()

	outcome, delta, message := e.resolveOutcome(playerValue, dealerValue)

	e.state.Bankroll = e.state.Bankroll.Add(delta)
	e.state.Stats.Record(delta, e.state.CurrentBet)
	if playerValue.Blackjack {
		e.state.Stats.Blackjacks++
	}
	if playerValue.Bust {
		e.state.Stats.Busts++
	}

	record := RoundRecord{
		RoundNumber:   e.state.RoundNumber,
		Bet:           e.state.CurrentBet,
		Doubled:       e.state.Doubled,
		PlayerHand:    e.state.PlayerHand,
		DealerHand:    e.state.DealerHand,
		PlayerTotal:   playerValue.Total,
		DealerTotal:   dealerValue.Total,
		Outcome:       outcome,
		Delta:         delta,
		BankrollAfter: e.state.Bankroll,
		Timestamp:     time.Now().Unix(),
	}
	e.state.RoundHistory = append(e.state.RoundHistory, record)
	e.state.TotalRounds = len(e.state.RoundHistory)

	e.state.Phase = PhaseSettled
	e.state.HoleHidden = false
	e.state.Outcome = outcome
	e.state.Message = message

	if e.state.Bankroll.LessThan(e.config.MinBet) {
		e.state.GameOver = true
		e.state.Message = message + " " + e.config.Messages.OutOfChips
	}
}
