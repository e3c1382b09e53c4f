// Command simulate runs headless blackjack rounds against a table
// configuration and reports aggregate results: win rate, ROI, observed house
// edge and bust frequency. Runs are reproducible via -seed, which makes the
// simulator useful for comparing rule variants (e.g. dealer hitting vs
// standing on soft 17).
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/shopspring/decimal"

	"github.com/cardtable/blackjack/game/engine"
)

// Options configure one simulation run
type Options struct {
	Rounds   int
	Bet      decimal.Decimal
	Strategy string
	Seed     int64
}

// Report aggregates the results of a simulation run
type Report struct {
	Rounds     int
	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int
	Busts      int
	Resets     int
	Profit     decimal.Decimal
	Wagered    decimal.Decimal
	Bankroll   decimal.Decimal
}

func main() {
	configPath := flag.String("config", "", "path to a table config JSON file (default: built-in classic table)")
	rounds := flag.Int("rounds", 10000, "number of rounds to play")
	bet := flag.String("bet", "10", "flat bet per round")
	strategy := flag.String("strategy", "basic", "playing strategy: basic or dealer")
	seed := flag.Int64("seed", 1, "random seed for the shoe")
	decks := flag.Int("decks", 0, "override the number of decks in the shoe")
	flag.Parse()

	config := engine.DefaultTableConfig()
	if *configPath != "" {
		var err error
		config, err = engine.LoadTableConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
	}
	if *decks > 0 {
		config.Decks = *decks
	}

	amount, err := decimal.NewFromString(*bet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid bet amount %q: %v\n", *bet, err)
		os.Exit(1)
	}

	opts := Options{
		Rounds:   *rounds,
		Bet:      amount,
		Strategy: *strategy,
		Seed:     *seed,
	}

	report, err := runSimulation(config, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulation failed: %v\n", err)
		os.Exit(1)
	}

	printReport(config, opts, report)
}

// runSimulation plays opts.Rounds flat-bet rounds. When the bankroll can no
// longer cover the bet the table is reset and the reset is counted, so long
// runs measure the rules rather than ruin.
func runSimulation(config *engine.TableConfig, opts Options) (*Report, error) {
	if opts.Bet.LessThan(config.MinBet) || opts.Bet.GreaterThan(config.MaxBet) {
		return nil, fmt.Errorf("bet %s outside table limits %s-%s", opts.Bet, config.MinBet, config.MaxBet)
	}

	decide, err := strategyFunc(opts.Strategy)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	eng, err := engine.NewEngineWithRand(config, rng)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Profit:  decimal.Zero,
		Wagered: decimal.Zero,
	}

	for report.Rounds < opts.Rounds {
		if eng.IsGameOver() || eng.GetBankroll().LessThan(opts.Bet) {
			eng.Reset()
			report.Resets++
		}

		state, err := eng.PlaceBet(opts.Bet)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", report.Rounds+1, err)
		}

		for state.Phase == engine.PhasePlayerTurn {
			switch decide(eng, state) {
			case engine.ActionHit:
				state, err = eng.Hit()
			case engine.ActionDouble:
				state, err = eng.DoubleDown()
			default:
				state, err = eng.Stand()
			}
			if err != nil {
				return nil, fmt.Errorf("round %d: %w", report.Rounds+1, err)
			}
		}

		record := eng.GetLastRound()
		report.Rounds++
		report.Profit = report.Profit.Add(record.Delta)
		report.Wagered = report.Wagered.Add(record.Bet)

		switch record.Outcome {
		case engine.OutcomeWin, engine.OutcomeBlackjack:
			report.Wins++
		case engine.OutcomeLoss:
			report.Losses++
		default:
			report.Pushes++
		}
		if record.Outcome == engine.OutcomeBlackjack {
			report.Blackjacks++
		}
		if record.PlayerTotal > 21 {
			report.Busts++
		}
	}

	report.Bankroll = eng.GetBankroll()
	return report, nil
}

// strategyFunc maps a strategy name to its decision function
func strategyFunc(name string) (func(*engine.TableEngine, *engine.TableState) engine.Action, error) {
	switch name {
	case "basic":
		return basicStrategy, nil
	case "dealer":
		return dealerMimic, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want basic or dealer)", name)
	}
}

// dealerMimic plays the dealer's own rule: hit below 17, stand on 17+
func dealerMimic(_ *engine.TableEngine, state *engine.TableState) engine.Action {
	if state.PlayerHand.Value().Total < 17 {
		return engine.ActionHit
	}
	return engine.ActionStand
}

// basicStrategy is a simplified basic strategy against the dealer's upcard.
// No surrender and no splits; doubles on 10 and 11 where the count favors it.
func basicStrategy(eng *engine.TableEngine, state *engine.TableState) engine.Action {
	value := state.PlayerHand.Value()
	upcard := state.DealerHand.Cards[0].Value()

	if eng.CanDoubleDown() {
		if value.Total == 11 && !value.Soft {
			return engine.ActionDouble
		}
		if value.Total == 10 && !value.Soft && upcard <= 9 {
			return engine.ActionDouble
		}
	}

	if value.Soft {
		switch {
		case value.Total >= 19:
			return engine.ActionStand
		case value.Total == 18 && upcard <= 8:
			return engine.ActionStand
		default:
			return engine.ActionHit
		}
	}

	switch {
	case value.Total >= 17:
		return engine.ActionStand
	case value.Total >= 13 && upcard <= 6:
		return engine.ActionStand
	case value.Total == 12 && upcard >= 4 && upcard <= 6:
		return engine.ActionStand
	default:
		return engine.ActionHit
	}
}

func printReport(config *engine.TableConfig, opts Options, r *Report) {
	fmt.Printf("=== %s ===\n", config.Name)
	fmt.Printf("Strategy: %s, flat bet %s, seed %d\n\n", opts.Strategy, opts.Bet, opts.Seed)

	fmt.Printf("Rounds:      %d\n", r.Rounds)
	fmt.Printf("Wins:        %d (%.2f%%)\n", r.Wins, pct(r.Wins, r.Rounds))
	fmt.Printf("Losses:      %d (%.2f%%)\n", r.Losses, pct(r.Losses, r.Rounds))
	fmt.Printf("Pushes:      %d (%.2f%%)\n", r.Pushes, pct(r.Pushes, r.Rounds))
	fmt.Printf("Blackjacks:  %d\n", r.Blackjacks)
	fmt.Printf("Busts:       %d (%.2f%%)\n", r.Busts, pct(r.Busts, r.Rounds))
	fmt.Printf("Resets:      %d\n\n", r.Resets)

	fmt.Printf("Wagered:     %s\n", r.Wagered)
	fmt.Printf("Net profit:  %s\n", r.Profit)
	if !r.Wagered.IsZero() {
		edge := r.Profit.Div(r.Wagered).Mul(decimal.NewFromInt(100))
		fmt.Printf("Player edge: %s%%\n", edge.StringFixed(3))
	}
	fmt.Printf("Bankroll:    %s\n", r.Bankroll)
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
