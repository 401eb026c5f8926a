package strategy

import "github.com/signalnine/skipbo-sim/engine"

// chain answers one question: can hand and side cards raise a field stack,
// one value at a time, until it accepts target? If so it reports the first
// card to play. The turn keeps going after that play, so the remaining steps
// are found by asking again.
//
// The search walks downward from target toward the stack's top. At most one
// side card and at most one Joker may be spent on a chain, and the run does
// not wrap past 12.
type chain struct {
	stack      engine.FieldStack
	fieldIndex int

	// Untouched hand, used to turn a found card back into a real slot.
	hand []engine.Card

	// Only pile tops matter: once one side card is spent the chain may not
	// take another.
	tops    [engine.NumSideStacks]engine.Card
	present [engine.NumSideStacks]bool
}

func findChain(target engine.Card, stack engine.FieldStack, fieldIndex int, hand []engine.Card, side engine.SideStacks) (engine.Move, bool) {
	c := chain{
		stack:      stack,
		fieldIndex: fieldIndex,
		hand:       hand,
	}
	c.tops, c.present = side.Tops()
	return c.search(target, append([]engine.Card(nil), hand...), false, false)
}

func (c *chain) search(required engine.Card, hand []engine.Card, sideUsed, jokerUsed bool) (engine.Move, bool) {
	want := required - 1
	bottom := required-2 == c.stack.Top

	if want >= engine.MinValue {
		if i := indexOf(hand, want); i >= 0 {
			if bottom {
				return engine.HandMove(indexOf(c.hand, want), c.fieldIndex), true
			}
			return c.search(want, removeAt(hand, i), sideUsed, jokerUsed)
		}
	}

	if !sideUsed {
		for s, top := range c.tops {
			if !c.present[s] || (top != want && !top.IsJoker()) {
				continue
			}
			if bottom && (!top.IsJoker() || !c.stack.JokerActive) {
				return engine.SideMove(s, c.fieldIndex), true
			}
			return c.search(want, hand, true, jokerUsed)
		}
	}

	if !jokerUsed {
		if i := indexOf(hand, engine.Joker); i >= 0 {
			if bottom && !c.stack.JokerActive {
				return engine.HandMove(indexOf(c.hand, engine.Joker), c.fieldIndex), true
			}
			return c.search(want, removeAt(hand, i), sideUsed, true)
		}
	}

	return engine.Move{}, false
}

func indexOf(cards []engine.Card, v engine.Card) int {
	for i, c := range cards {
		if c == v {
			return i
		}
	}
	return -1
}

// removeAt returns cards without index i. The input is left intact.
func removeAt(cards []engine.Card, i int) []engine.Card {
	out := make([]engine.Card, 0, len(cards)-1)
	out = append(out, cards[:i]...)
	return append(out, cards[i+1:]...)
}
