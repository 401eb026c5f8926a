package engine

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Location enum
type Location uint8

const (
	LocationDrawStack Location = iota
	LocationHand
	LocationSide
	LocationField
)

func (l Location) String() string {
	switch l {
	case LocationDrawStack:
		return "draw"
	case LocationHand:
		return "hand"
	case LocationSide:
		return "side"
	case LocationField:
		return "field"
	default:
		return fmt.Sprintf("location(%d)", uint8(l))
	}
}

const (
	HandSize       = 5
	NumSideStacks  = 4
	NumFieldStacks = 4
)

// FieldStack is one of the shared ascending runs. Top is MaxValue while the
// stack is empty, so the next legal card is 1.
type FieldStack struct {
	Top         Card
	JokerActive bool // Top was produced by a Joker
}

// Accepts reports whether c may legally be placed on the stack.
func (f FieldStack) Accepts(c Card) bool {
	if c.IsJoker() {
		return !f.JokerActive
	}
	return c == f.Top+1 || (f.Top == MaxValue && c == MinValue)
}

// Place returns the stack after c is put on top. Legality is not checked.
func (f FieldStack) Place(c Card) FieldStack {
	if c.IsJoker() {
		return FieldStack{Top: f.Top.Next(), JokerActive: true}
	}
	return FieldStack{Top: c}
}

// Field holds the four shared stacks.
type Field [NumFieldStacks]FieldStack

// NewField returns a field with every stack empty.
func NewField() Field {
	var f Field
	for i := range f {
		f[i] = FieldStack{Top: MaxValue}
	}
	return f
}

// SideStacks are a player's four discard piles. The last card of each is its top.
type SideStacks [NumSideStacks][]Card

// Clone deep-copies the piles.
func (s SideStacks) Clone() SideStacks {
	var c SideStacks
	for i, pile := range s {
		if pile != nil {
			c[i] = append(make([]Card, 0, len(pile)), pile...)
		}
	}
	return c
}

// Top returns the top card of pile i.
func (s SideStacks) Top(i int) (Card, bool) {
	if i < 0 || i >= NumSideStacks || len(s[i]) == 0 {
		return 0, false
	}
	return s[i][len(s[i])-1], true
}

// Tops returns the top card of every pile; ok[i] is false for an empty pile.
func (s SideStacks) Tops() (tops [NumSideStacks]Card, ok [NumSideStacks]bool) {
	for i, pile := range s {
		if len(pile) > 0 {
			tops[i], ok[i] = pile[len(pile)-1], true
		}
	}
	return tops, ok
}

// PlayerState is mutable for the duration of one match.
type PlayerState struct {
	Hand      []Card
	Side      SideStacks
	DrawStack []Card // last element is the top
}

// DrawTop returns the top of the draw stack.
func (p *PlayerState) DrawTop() (Card, bool) {
	if len(p.DrawStack) == 0 {
		return 0, false
	}
	return p.DrawStack[len(p.DrawStack)-1], true
}

// Clone creates a deep copy.
func (p *PlayerState) Clone() *PlayerState {
	return &PlayerState{
		Hand:      append([]Card(nil), p.Hand...),
		Side:      p.Side.Clone(),
		DrawStack: append([]Card(nil), p.DrawStack...),
	}
}

// GameMetrics counts what happened during a match.
type GameMetrics struct {
	Decisions       uint64 // times the active strategy was consulted
	TotalValidMoves uint64 // sum of legal moves at each decision
	DrawPlays       uint64
	HandPlays       uint64
	SidePlays       uint64
	Discards        uint64
	Passes          uint64 // declined with legal moves available
}

// Moves returns the number of cards placed on the field.
func (m GameMetrics) Moves() uint64 {
	return m.DrawPlays + m.HandPlays + m.SidePlays
}

// Game owns the field and every player's state for a single match.
type Game struct {
	Field    Field
	Players  []*PlayerState
	Ended    bool
	WinnerID int // -1 until Ended
	Metrics  GameMetrics

	rng    *rand.Rand
	logger *zap.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for turn tracing and invariant faults.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGame creates a match over the given players. rng refills hands; a nil
// rng falls back to a time-seeded source.
func NewGame(players []*PlayerState, rng *rand.Rand, opts ...Option) (*Game, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		Field:    NewField(),
		Players:  players,
		WinnerID: -1,
		rng:      rng,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// NextPlayer returns the seat that plays after player.
func (g *Game) NextPlayer(player int) int {
	return (player + 1) % len(g.Players)
}
