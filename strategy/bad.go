package strategy

import "github.com/signalnine/skipbo-sim/engine"

// Bad only ever plays from its draw stack. It is the baseline the other
// strategies are measured against.
type Bad struct{}

func (Bad) SelectMove(moves []engine.Move, _, _ engine.Card, _ engine.SideStacks, _ []engine.Card, _ engine.Field) (engine.Move, bool) {
	if len(moves) == 0 || moves[0].From != engine.LocationDrawStack {
		return engine.Move{}, false
	}
	return moves[0], true
}

func (Bad) SelectStack(_ []engine.Card, side engine.SideStacks) engine.Move {
	return fewestCards(side)
}
