package cli

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/cardtable/blackjack/game/engine"
	"github.com/cardtable/blackjack/game/service"
)

// renderTable draws the dealer and player boxes plus the table line
func renderTable(state *engine.TableState) {
	dealerBox := pterm.DefaultBox.
		WithTitle("Dealer").WithTitleTopLeft().
		WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	playerBox := pterm.DefaultBox.
		WithTitle("You").WithTitleTopLeft().
		WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{{Data: dealerBox.Sprint(dealerLine(state))}},
		{{Data: playerBox.Sprint(playerLine(state))}},
	}).Render()

	pterm.Println(pterm.Gray(fmt.Sprintf("Bet: %s | Bankroll: %s | Round: %d",
		state.CurrentBet, state.Bankroll, state.RoundNumber)))
	pterm.Println()
}

// dealerLine renders the dealer's hand, keeping the hole card hidden while
// the round is still live
func dealerLine(state *engine.TableState) string {
	cards := state.DealerHand.Cards
	if len(cards) == 0 {
		return "(no cards)"
	}

	if state.HoleHidden && len(cards) >= 2 {
		return fmt.Sprintf("%s  %s   showing %d", renderCard(cards[0]), pterm.Gray("[??]"), cards[0].Value())
	}

	return fmt.Sprintf("%s   %s", renderCards(cards), valueLabel(state.DealerHand.Value()))
}

func playerLine(state *engine.TableState) string {
	cards := state.PlayerHand.Cards
	if len(cards) == 0 {
		return "(no cards)"
	}
	line := fmt.Sprintf("%s   %s", renderCards(cards), valueLabel(state.PlayerHand.Value()))
	if state.Doubled {
		line += "   " + pterm.LightYellow("doubled")
	}
	return line
}

func renderCards(cards []engine.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, renderCard(c))
	}
	return strings.Join(parts, "  ")
}

// renderCard shows one card in brackets, red suits in red
func renderCard(c engine.Card) string {
	text := fmt.Sprintf("[%s%s]", c.Rank, c.Suit)
	if c.Suit == engine.Hearts || c.Suit == engine.Diamonds {
		return pterm.LightRed(text)
	}
	return text
}

// valueLabel renders a hand value like "17", "soft 17", "BLACKJACK" or "BUST (24)"
func valueLabel(v engine.HandValue) string {
	switch {
	case v.Blackjack:
		return pterm.LightGreen("BLACKJACK")
	case v.Bust:
		return pterm.LightRed(fmt.Sprintf("BUST (%d)", v.Total))
	case v.Soft:
		return fmt.Sprintf("soft %d", v.Total)
	default:
		return fmt.Sprintf("%d", v.Total)
	}
}

// printOutcome announces a settled round with the appropriate color
func printOutcome(state *engine.TableState) {
	switch state.Outcome {
	case engine.OutcomeWin, engine.OutcomeBlackjack:
		pterm.Success.Println(state.Message)
	case engine.OutcomeLoss:
		pterm.Error.Println(state.Message)
	case engine.OutcomePush:
		pterm.Info.Println(state.Message)
	default:
		if state.Message != "" {
			pterm.Println(state.Message)
		}
	}
	pterm.Println()
}

// renderStats prints the session summary shown when leaving the table
func renderStats(stats *service.StatsInfo) {
	s := stats.Stats
	if s == nil || s.RoundsPlayed == 0 {
		return
	}

	box := pterm.DefaultBox.
		WithTitle(pterm.LightYellow("|SESSION|")).WithTitleTopCenter().
		WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)

	profit := s.Profit.String()
	if s.Profit.Sign() > 0 {
		profit = pterm.LightGreen("+" + profit)
	} else if s.Profit.Sign() < 0 {
		profit = pterm.LightRed(profit)
	}

	content := fmt.Sprintf("Rounds: %d   W %d / L %d / P %d\nBlackjacks: %d   Busts: %d\nProfit: %s on %s wagered\nWin rate: %.1f%%   ROI: %s",
		s.RoundsPlayed, s.Wins, s.Losses, s.Pushes,
		s.Blackjacks, s.Busts,
		profit, s.TotalWagered,
		stats.WinRate*100, stats.ROI)

	pterm.Println(box.Sprint(content))
}

// actionLabel maps an engine action to its menu label
func actionLabel(a engine.Action) string {
	switch a {
	case engine.ActionHit:
		return "Hit"
	case engine.ActionStand:
		return "Stand"
	case engine.ActionDouble:
		return "Double Down"
	default:
		return string(a)
	}
}

// actionFromLabel is the inverse of actionLabel
func actionFromLabel(label string) engine.Action {
	switch label {
	case "Hit":
		return engine.ActionHit
	case "Stand":
		return engine.ActionStand
	case "Double Down":
		return engine.ActionDouble
	default:
		return engine.Action(strings.ToLower(label))
	}
}
