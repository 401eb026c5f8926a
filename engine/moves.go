package engine

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Move transfers one card. FromIndex is ignored for LocationDrawStack.
type Move struct {
	From      Location
	FromIndex int
	To        Location
	ToIndex   int
}

// DrawMove plays the top of the draw stack onto field stack f.
func DrawMove(f int) Move {
	return Move{From: LocationDrawStack, To: LocationField, ToIndex: f}
}

// HandMove plays hand slot h onto field stack f.
func HandMove(h, f int) Move {
	return Move{From: LocationHand, FromIndex: h, To: LocationField, ToIndex: f}
}

// SideMove plays the top of side stack s onto field stack f.
func SideMove(s, f int) Move {
	return Move{From: LocationSide, FromIndex: s, To: LocationField, ToIndex: f}
}

// DiscardMove parks hand slot h on side stack s and ends the turn.
func DiscardMove(h, s int) Move {
	return Move{From: LocationHand, FromIndex: h, To: LocationSide, ToIndex: s}
}

// IsDiscard reports whether m is a Hand→Side move.
func (m Move) IsDiscard() bool {
	return m.From == LocationHand && m.To == LocationSide
}

func (m Move) String() string {
	if m.From == LocationDrawStack {
		return fmt.Sprintf("draw->field[%d]", m.ToIndex)
	}
	return fmt.Sprintf("%s[%d]->%s[%d]", m.From, m.FromIndex, m.To, m.ToIndex)
}

// Execute applies m for player. It validates the move first and leaves the
// game untouched when it returns an error.
func (g *Game) Execute(player int, m Move) error {
	if err := g.execute(player, m); err != nil {
		g.logger.Error("rejected move",
			zap.Int("player", player),
			zap.Stringer("move", m),
			zap.Error(err))
		return err
	}
	return nil
}

func (g *Game) execute(player int, m Move) error {
	if player < 0 || player >= len(g.Players) {
		return errors.Wrapf(ErrBadPlayer, "player %d of %d", player, len(g.Players))
	}
	p := g.Players[player]

	switch m.To {
	case LocationField:
		if m.ToIndex < 0 || m.ToIndex >= NumFieldStacks {
			return errors.Wrapf(ErrBadMove, "field stack %d", m.ToIndex)
		}
	case LocationSide:
		if m.From != LocationHand {
			return errors.Wrapf(ErrBadMove, "%s cannot move to a side stack", m.From)
		}
		if m.ToIndex < 0 || m.ToIndex >= NumSideStacks {
			return errors.Wrapf(ErrBadMove, "side stack %d", m.ToIndex)
		}
	default:
		return errors.Wrapf(ErrBadMove, "destination %s", m.To)
	}

	// Pick the card without removing it so a rejected move changes nothing.
	var card Card
	switch m.From {
	case LocationDrawStack:
		top, ok := p.DrawTop()
		if !ok {
			return errors.WithStack(ErrEmptyDrawStack)
		}
		card = top
	case LocationHand:
		if m.FromIndex < 0 || m.FromIndex >= len(p.Hand) {
			return errors.Wrapf(ErrHandIndex, "slot %d of %d", m.FromIndex, len(p.Hand))
		}
		card = p.Hand[m.FromIndex]
	case LocationSide:
		top, ok := p.Side.Top(m.FromIndex)
		if !ok {
			return errors.Wrapf(ErrEmptySideStack, "side stack %d", m.FromIndex)
		}
		card = top
	default:
		return errors.Wrapf(ErrBadMove, "source %s", m.From)
	}

	if m.To == LocationField {
		dst := g.Field[m.ToIndex]
		if card.IsJoker() && dst.JokerActive {
			return errors.Wrapf(ErrJokerStacked, "field stack %d at %s", m.ToIndex, dst.Top)
		}
		g.Field[m.ToIndex] = dst.Place(card)
	} else {
		p.Side[m.ToIndex] = append(p.Side[m.ToIndex], card)
	}

	switch m.From {
	case LocationDrawStack:
		p.DrawStack = p.DrawStack[:len(p.DrawStack)-1]
	case LocationHand:
		p.Hand = append(p.Hand[:m.FromIndex], p.Hand[m.FromIndex+1:]...)
	case LocationSide:
		pile := p.Side[m.FromIndex]
		p.Side[m.FromIndex] = pile[:len(pile)-1]
	}

	return nil
}
