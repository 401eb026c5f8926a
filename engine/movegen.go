package engine

// LegalMoves returns every card the player may put on the field right now.
//
// The order is part of the contract because the simpler strategies take the
// first entry: draw stack moves by field index, then hand moves (field index
// outer, hand slot inner), then side moves (side index outer, field index
// inner). Discards are never listed.
func LegalMoves(field Field, hand []Card, side SideStacks, drawStack []Card) []Move {
	moves := make([]Move, 0, 8)

	if len(drawStack) > 0 {
		top := drawStack[len(drawStack)-1]
		for f, stack := range field {
			if stack.Accepts(top) {
				moves = append(moves, DrawMove(f))
			}
		}
	}

	for f, stack := range field {
		for h, card := range hand {
			if stack.Accepts(card) {
				moves = append(moves, HandMove(h, f))
			}
		}
	}

	for s, pile := range side {
		if len(pile) == 0 {
			continue
		}
		top := pile[len(pile)-1]
		for f, stack := range field {
			if stack.Accepts(top) {
				moves = append(moves, SideMove(s, f))
			}
		}
	}

	return moves
}

// LegalMovesFor is LegalMoves over a player's current state.
func (g *Game) LegalMovesFor(player int) []Move {
	p := g.Players[player]
	return LegalMoves(g.Field, p.Hand, p.Side, p.DrawStack)
}
