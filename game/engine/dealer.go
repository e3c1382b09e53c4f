package engine

import "github.com/shopspring/decimal"

// playDealer reveals the hole card and draws until the dealer must stand.
// The dealer stands on all hard 17s; whether soft 17 is hit is a table rule.
func (e *TableEngine) playDealer() {
	e.state.Phase = PhaseDealerTurn
	e.state.HoleHidden = false

	for {
		value := e.state.DealerHand.Value()
		if value.Total > DealerStandTotal {
			break
		}
		if value.Total == DealerStandTotal {
			if !value.Soft || !e.config.DealerHitsSoft17 {
				break
			}
		}
		e.state.DealerHand.Add(e.shoe.Draw())
	}
}

// resolveOutcome classifies a finished round and returns the outcome, the
// bankroll delta and the table message. Precedence follows standard rules:
// a player bust loses even against a dealer bust, and naturals beat any
// non-natural 21.
func (e *TableEngine) resolveOutcome(player, dealer HandValue) (Outcome, decimal.Decimal, string) {
	bet := e.state.CurrentBet
	msgs := e.config.Messages

	switch {
	case player.Bust:
		return OutcomeLoss, bet.Neg(), msgs.PlayerBust
	case player.Blackjack && dealer.Blackjack:
		return OutcomePush, decimal.Zero, msgs.BothBlackjack
	case player.Blackjack:
		return OutcomeBlackjack, bet.Mul(e.config.BlackjackPayout), msgs.PlayerBlackjack
	case dealer.Blackjack:
		return OutcomeLoss, bet.Neg(), msgs.DealerBlackjack
	case dealer.Bust:
		return OutcomeWin, bet, msgs.DealerBust
	case player.Total > dealer.Total:
		return OutcomeWin, bet, msgs.PlayerWins
	case player.Total < dealer.Total:
		return OutcomeLoss, bet.Neg(), msgs.DealerWins
	default:
		return OutcomePush, decimal.Zero, msgs.Push
	}
}
