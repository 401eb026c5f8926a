package strategy

import "github.com/signalnine/skipbo-sim/engine"

// blockingReach is how close (walking forward) a field stack must be to the
// opponent's draw stack card before Good tries to take that slot first.
const blockingReach = 4

// Good plays its own draw stack whenever it can, builds toward it with hand
// and side cards, blocks the next player when they are close, and otherwise
// only plays cards that cannot help the next player.
type Good struct{}

func (Good) SelectMove(moves []engine.Move, ownTop, opponentTop engine.Card, side engine.SideStacks, hand []engine.Card, field engine.Field) (engine.Move, bool) {
	if len(moves) == 0 {
		return engine.Move{}, false
	}

	if moves[0].From == engine.LocationDrawStack {
		return moves[0], true
	}

	// A Joker on top of a draw stack plays anywhere, so there is nothing to
	// build toward or block.
	if !ownTop.IsJoker() {
		for f, stack := range field {
			if m, ok := findChain(ownTop, stack, f, hand, side); ok {
				return m, true
			}
		}
	}

	if !opponentTop.IsJoker() {
		for f, stack := range field {
			if engine.Distance(stack.Top, opponentTop) >= blockingReach {
				continue
			}
			if m, ok := findChain(opponentTop+1, stack, f, hand, side); ok {
				return m, true
			}
		}
	}

	for _, m := range moves {
		if m.From != engine.LocationHand {
			continue
		}
		if safeToPlay(hand[m.FromIndex], opponentTop) {
			return m, true
		}
	}

	for _, m := range moves {
		if m.From != engine.LocationSide {
			continue
		}
		if top, ok := side.Top(m.FromIndex); ok && safeToPlay(top, opponentTop) {
			return m, true
		}
	}

	return engine.Move{}, false
}

// safeToPlay: not a Joker and far enough below the opponent's card.
func safeToPlay(c, opponentTop engine.Card) bool {
	return !c.IsJoker() && engine.Distance(c, opponentTop) > blockingReach-1
}

func (Good) SelectStack(hand []engine.Card, side engine.SideStacks) engine.Move {
	// Put a card on a pile that already shows the same value.
	for s := range side {
		top, ok := side.Top(s)
		if !ok {
			continue
		}
		for h, c := range hand {
			if c == top {
				return engine.DiscardMove(h, s)
			}
		}
	}

	empty := -1
	for s := range side {
		if len(side[s]) == 0 {
			empty = s
			break
		}
	}

	if empty >= 0 {
		if d := firstDuplicate(hand); d >= 0 {
			return engine.DiscardMove(d, empty)
		}
		return engine.DiscardMove(0, empty)
	}

	// Every pile is in use: put a card under its successor, e.g. an 8 on a 9.
	for h, c := range hand {
		if c.IsJoker() {
			continue
		}
		for s := range side {
			if top, ok := side.Top(s); ok && c+1 == top {
				return engine.DiscardMove(h, s)
			}
		}
	}

	return engine.DiscardMove(0, 0)
}

// firstDuplicate returns the first index whose value appears again later in hand.
func firstDuplicate(hand []engine.Card) int {
	for i := 0; i < len(hand)-1; i++ {
		if indexOf(hand[i+1:], hand[i]) >= 0 {
			return i
		}
	}
	return -1
}
