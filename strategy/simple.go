package strategy

import "github.com/signalnine/skipbo-sim/engine"

// Simple always plays the first legal move.
type Simple struct{}

func (Simple) SelectMove(moves []engine.Move, _, _ engine.Card, _ engine.SideStacks, _ []engine.Card, _ engine.Field) (engine.Move, bool) {
	if len(moves) == 0 {
		return engine.Move{}, false
	}
	return moves[0], true
}

func (Simple) SelectStack(_ []engine.Card, side engine.SideStacks) engine.Move {
	return fewestCards(side)
}
