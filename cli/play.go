package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/shopspring/decimal"

	"github.com/cardtable/blackjack/game/engine"
	"github.com/cardtable/blackjack/game/service"
)

// Table drives one interactive session at the terminal. It talks to the
// game service directly; no server is involved.
type Table struct {
	svc       service.GameService
	sessionID string
	lastBet   string
}

// Run starts an interactive table. When configID is empty the player picks
// a table from the available configurations. Returns when the player quits.
func Run(ctx context.Context, svc service.GameService, configID string) error {
	printTitle()

	if configID == "" {
		var err error
		configID, err = chooseConfig(ctx, svc)
		if err != nil {
			return err
		}
	}

	session, err := svc.CreateSession(ctx, configID)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	table := &Table{svc: svc, sessionID: session.ID}
	defer svc.DeleteSession(ctx, session.ID)

	pterm.Info.Printfln("Seated at %s (session %s)", session.ConfigName, session.ID)
	pterm.Println()
	pterm.Println(session.TableState.Message)
	pterm.Println()

	return table.loop(ctx)
}

// loop plays rounds until the player leaves or declines a reset
func (t *Table) loop(ctx context.Context) error {
	for {
		state, err := t.svc.GetTableState(ctx, t.sessionID)
		if err != nil {
			return err
		}

		if state.GameOver {
			pterm.Error.Println(state.Message)
			again, _ := pterm.DefaultInteractiveConfirm.
				WithDefaultText("Start over with a fresh bankroll?").
				WithDefaultValue(true).Show()
			if !again {
				t.printFarewell(ctx)
				return nil
			}
			if _, err := t.svc.Reset(ctx, t.sessionID); err != nil {
				return err
			}
			continue
		}

		cont, err := t.playRound(ctx, state)
		if err != nil {
			return err
		}
		if !cont {
			t.printFarewell(ctx)
			return nil
		}
	}
}

// playRound runs one bet-to-settlement cycle. Returns false when the player
// wants to leave the table.
func (t *Table) playRound(ctx context.Context, state *engine.TableState) (bool, error) {
	amount, quit := t.promptBet(state)
	if quit {
		return false, nil
	}

	bet, err := t.svc.PlaceBet(ctx, t.sessionID, amount)
	if err != nil {
		pterm.Error.Println(err.Error())
		return true, nil
	}
	t.lastBet = amount.String()

	renderTable(bet.TableState)

	current := bet.TableState
	actions := bet.AvailableActions
	for !isRoundOver(current) {
		action, err := t.promptAction(actions)
		if err != nil {
			return false, err
		}

		result, err := t.svc.Action(ctx, t.sessionID, action)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}

		renderTable(result.TableState)
		current = result.TableState
		actions = result.AvailableActions
	}

	printOutcome(current)

	if current.GameOver {
		return true, nil
	}

	again, _ := pterm.DefaultInteractiveConfirm.
		WithDefaultText("Play another round?").
		WithDefaultValue(true).Show()
	return again, nil
}

// promptBet asks for a bet amount within the table limits. An empty input
// repeats the previous bet; "q" leaves the table.
func (t *Table) promptBet(state *engine.TableState) (decimal.Decimal, bool) {
	pterm.Println(pterm.Gray(fmt.Sprintf("Bankroll: %s", state.Bankroll)))

	for {
		input, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText("Your bet (q to leave)").
			WithDefaultValue(t.lastBet).Show()

		if input == "q" || input == "quit" {
			return decimal.Zero, true
		}

		amount, err := decimal.NewFromString(input)
		if err != nil {
			pterm.Error.Printfln("Not a valid amount: %s", input)
			continue
		}
		return amount, false
	}
}

// promptAction lets the player pick one of the currently legal actions
func (t *Table) promptAction(actions []engine.Action) (engine.Action, error) {
	options := make([]string, 0, len(actions))
	for _, a := range actions {
		options = append(options, actionLabel(a))
	}
	if len(options) == 0 {
		options = []string{actionLabel(engine.ActionStand)}
	}

	selected, err := pterm.DefaultInteractiveSelect.
		WithDefaultText("Your move").
		WithOptions(options).Show()
	if err != nil {
		return "", err
	}

	return actionFromLabel(selected), nil
}

// printFarewell shows the final statistics before leaving
func (t *Table) printFarewell(ctx context.Context) {
	stats, err := t.svc.GetStats(ctx, t.sessionID)
	if err == nil {
		renderStats(stats)
	}
	pterm.Println("Thanks for playing!")
}

// chooseConfig lists the available tables and lets the player pick one
func chooseConfig(ctx context.Context, svc service.GameService) (string, error) {
	configs, err := svc.ListConfigs(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list configs: %w", err)
	}
	if len(configs) == 0 {
		return "", fmt.Errorf("no table configurations available")
	}

	sort.Slice(configs, func(i, j int) bool { return configs[i].ConfigID < configs[j].ConfigID })

	labels := make([]string, 0, len(configs))
	byLabel := make(map[string]string, len(configs))
	for _, c := range configs {
		label := fmt.Sprintf("%s - %s (bets %s-%s)", c.Name, c.Description, c.MinBet, c.MaxBet)
		labels = append(labels, label)
		byLabel[label] = c.ConfigID
	}

	selected, err := pterm.DefaultInteractiveSelect.
		WithDefaultText("Choose a table").
		WithOptions(labels).Show()
	if err != nil {
		return "", err
	}

	return byLabel[selected], nil
}

func printTitle() {
	pterm.Print("\n")
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}
	pterm.Println()
}

func isRoundOver(state *engine.TableState) bool {
	return state.Phase == engine.PhaseSettled || state.Phase == engine.PhaseIdle
}
