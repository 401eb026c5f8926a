package engine

import "math/rand"

// RandomCard draws a card uniformly from 1..13 and maps 13 to Joker, so each
// card is a Joker with probability 1/13.
func RandomCard(rng *rand.Rand) Card {
	v := rng.Intn(int(MaxValue)+1) + 1
	if v == int(MaxValue)+1 {
		return Joker
	}
	return Card(v)
}

// NewPlayerState deals a draw stack of drawStackSize cards and a full hand.
// Side stacks start empty.
func NewPlayerState(drawStackSize int, rng *rand.Rand) *PlayerState {
	if drawStackSize < 0 {
		drawStackSize = 0
	}

	stack := make([]Card, drawStackSize)
	for i := range stack {
		stack[i] = RandomCard(rng)
	}

	hand := make([]Card, HandSize, HandSize+1)
	for i := range hand {
		hand[i] = RandomCard(rng)
	}

	return &PlayerState{
		Hand:      hand,
		DrawStack: stack,
	}
}

// RefillHand tops the player's hand up to HandSize.
func (g *Game) RefillHand(player int) {
	p := g.Players[player]
	for len(p.Hand) < HandSize {
		p.Hand = append(p.Hand, RandomCard(g.rng))
	}
}
