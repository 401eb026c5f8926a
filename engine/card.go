package engine

import "strconv"

// Card is a card value. Concrete cards are 1..12, Joker is a wildcard.
type Card int8

const (
	// Joker substitutes for whatever value a field stack needs next.
	Joker Card = -1

	MinValue Card = 1
	MaxValue Card = 12
)

// IsJoker reports whether c is the wildcard.
func (c Card) IsJoker() bool {
	return c == Joker
}

// Valid reports whether c is a Joker or a concrete value in 1..12.
func (c Card) Valid() bool {
	return c == Joker || (c >= MinValue && c <= MaxValue)
}

func (c Card) String() string {
	if c == Joker {
		return "J"
	}
	return strconv.Itoa(int(c))
}

// Next returns the value that follows c on the 1..12 ring.
func (c Card) Next() Card {
	if c >= MaxValue {
		return MinValue
	}
	return c + 1
}

// Distance counts the steps walking forward from a to b on the 1..12 ring.
// It is directional: Distance(10, 2) is 4 while Distance(2, 10) is 8.
func Distance(a, b Card) int {
	if b < a {
		return int(MaxValue) - int(a) + int(b)
	}
	return int(b) - int(a)
}
