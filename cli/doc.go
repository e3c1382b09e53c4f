// Package cli implements the interactive terminal table.
//
// The cli package renders the blackjack table with pterm: boxed dealer and
// player hands, colored suits, select menus for the legal actions and
// confirm prompts between rounds. It drives the game service directly in
// process; the REST and WebSocket transports are not involved.
//
// Flow:
//
//  1. Pick a table configuration (or start with the one given on the
//     command line)
//  2. Bet, play the hand, watch the dealer, settle
//  3. Repeat until the player leaves or the bankroll is gone
//
// Usage:
//
//	svc := service.NewGameService(session.NewManager(), configs)
//	cli.Run(ctx, svc, "")
package cli
