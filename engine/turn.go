package engine

import (
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Strategy decides what a player does during its turn. Implementations must
// treat every argument as read-only: side shares its piles with the game.
type Strategy interface {
	// SelectMove picks one of moves, or returns false to pass. Passing ends
	// the turn with a discard even though legal moves exist.
	SelectMove(moves []Move, ownTop, opponentTop Card, side SideStacks, hand []Card, field Field) (Move, bool)

	// SelectStack picks the Hand→Side discard that ends the turn. hand is
	// never empty.
	SelectStack(hand []Card, side SideStacks) Move
}

// PlayTurn runs player's whole turn: refill the hand, then keep asking s for
// moves until it discards or someone's draw stack runs out.
func (g *Game) PlayTurn(player int, s Strategy) error {
	if player < 0 || player >= len(g.Players) {
		return errors.Wrapf(ErrBadPlayer, "player %d of %d", player, len(g.Players))
	}

	g.RefillHand(player)
	p := g.Players[player]

	for {
		if g.CheckWin() {
			return nil
		}

		moves := LegalMoves(g.Field, p.Hand, p.Side, p.DrawStack)
		if len(moves) == 0 {
			return g.discard(player, s, "no legal move")
		}

		g.Metrics.Decisions++
		g.Metrics.TotalValidMoves += uint64(len(moves))

		ownTop, _ := p.DrawTop()
		opponentTop, _ := g.Players[g.NextPlayer(player)].DrawTop()

		m, ok := s.SelectMove(moves, ownTop, opponentTop, p.Side, append([]Card(nil), p.Hand...), g.Field)
		if !ok {
			g.Metrics.Passes++
			return g.discard(player, s, "pass")
		}
		if !slices.Contains(moves, m) {
			err := errors.Wrapf(ErrBadMove, "strategy chose %s, not a legal move", m)
			g.logger.Error("rejected move", zap.Int("player", player), zap.Error(err))
			return err
		}

		if err := g.Execute(player, m); err != nil {
			return err
		}

		switch m.From {
		case LocationDrawStack:
			g.Metrics.DrawPlays++
		case LocationHand:
			g.Metrics.HandPlays++
		case LocationSide:
			g.Metrics.SidePlays++
		}

		if len(p.Hand) == 0 {
			g.RefillHand(player)
		}
	}
}

func (g *Game) discard(player int, s Strategy, reason string) error {
	p := g.Players[player]
	m := s.SelectStack(append([]Card(nil), p.Hand...), p.Side)
	if !m.IsDiscard() {
		return errors.Wrapf(ErrBadMove, "discard policy returned %s", m)
	}

	g.logger.Debug("end of turn",
		zap.Int("player", player),
		zap.String("reason", reason),
		zap.Stringer("discard", m))

	if err := g.Execute(player, m); err != nil {
		return err
	}
	g.Metrics.Discards++
	return nil
}

// CheckWin reports whether some player's draw stack is empty. The first time
// it does, the game is marked ended and the winner recorded.
func (g *Game) CheckWin() bool {
	if g.Ended {
		return true
	}
	for i, p := range g.Players {
		if len(p.DrawStack) == 0 {
			g.Ended = true
			g.WinnerID = i
			return true
		}
	}
	return false
}
