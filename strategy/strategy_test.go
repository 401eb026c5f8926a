package strategy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalnine/skipbo-sim/engine"
)

func TestNew(t *testing.T) {
	s, err := New("good")
	require.NoError(t, err)
	assert.IsType(t, Good{}, s)

	s, err = New(" Simple ")
	require.NoError(t, err)
	assert.IsType(t, Simple{}, s)

	_, err = New("clever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clever")

	assert.Equal(t, []string{"bad", "good", "simple"}, Names())
}

func sides(piles ...[]engine.Card) engine.SideStacks {
	var s engine.SideStacks
	copy(s[:], piles)
	return s
}

func TestSimpleSelectMove(t *testing.T) {
	moves := []engine.Move{engine.HandMove(2, 1), engine.SideMove(0, 3)}
	m, ok := Simple{}.SelectMove(moves, 5, 6, engine.SideStacks{}, nil, engine.NewField())
	require.True(t, ok)
	assert.Equal(t, engine.HandMove(2, 1), m)
}

func TestFewestCardsDiscard(t *testing.T) {
	tests := []struct {
		name string
		side engine.SideStacks
		want engine.Move
	}{
		{"all empty", engine.SideStacks{}, engine.DiscardMove(0, 0)},
		{"smallest pile", sides([]engine.Card{1, 2}, []engine.Card{3}, []engine.Card{4}, []engine.Card{5, 6, 7}), engine.DiscardMove(0, 1)},
		{"empty last", sides([]engine.Card{1}, []engine.Card{3}, []engine.Card{4}, nil), engine.DiscardMove(0, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := []engine.Card{9, 8, 7}
			assert.Equal(t, tt.want, Simple{}.SelectStack(hand, tt.side))
			assert.Equal(t, tt.want, Bad{}.SelectStack(hand, tt.side))
		})
	}
}

func TestBadSelectMove(t *testing.T) {
	m, ok := Bad{}.SelectMove([]engine.Move{engine.DrawMove(2), engine.HandMove(0, 0)}, 1, 1, engine.SideStacks{}, nil, engine.NewField())
	require.True(t, ok)
	assert.Equal(t, engine.DrawMove(2), m)

	_, ok = Bad{}.SelectMove([]engine.Move{engine.HandMove(0, 0)}, 1, 1, engine.SideStacks{}, nil, engine.NewField())
	assert.False(t, ok, "Bad must decline anything but a draw stack move")
}

// Every strategy's choice must be executable, whatever the state.
func TestStrategiesProduceExecutableMoves(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for _, name := range Names() {
		s, err := New(name)
		require.NoError(t, err)

		for trial := 0; trial < 1500; trial++ {
			field, p := randomPosition(rng)
			ownTop, _ := p.DrawTop()
			oppTop := engine.RandomCard(rng)

			moves := engine.LegalMoves(field, p.Hand, p.Side, p.DrawStack)
			if len(moves) > 0 {
				if m, ok := s.SelectMove(moves, ownTop, oppTop, p.Side.Clone(), append([]engine.Card(nil), p.Hand...), field); ok {
					g := gameAt(t, field, p.Clone())
					require.NoError(t, g.Execute(0, m), "%s move %v, hand %v side %v field %+v", name, m, p.Hand, p.Side, field)
				}
			}

			d := s.SelectStack(p.Hand, p.Side)
			require.True(t, d.IsDiscard(), "%s discard %v", name, d)
			g := gameAt(t, field, p.Clone())
			require.NoError(t, g.Execute(0, d), "%s discard %v, hand %v", name, d, p.Hand)
		}
	}
}

func randomPosition(rng *rand.Rand) (engine.Field, *engine.PlayerState) {
	var field engine.Field
	for i := range field {
		field[i] = engine.FieldStack{Top: engine.Card(rng.Intn(12) + 1), JokerActive: rng.Intn(4) == 0}
	}
	p := &engine.PlayerState{}
	for i := rng.Intn(engine.HandSize) + 1; i > 0; i-- {
		p.Hand = append(p.Hand, engine.RandomCard(rng))
	}
	for s := range p.Side {
		for i := rng.Intn(4); i > 0; i-- {
			p.Side[s] = append(p.Side[s], engine.RandomCard(rng))
		}
	}
	p.DrawStack = []engine.Card{engine.RandomCard(rng), engine.RandomCard(rng)}
	return field, p
}

func gameAt(t *testing.T, field engine.Field, p *engine.PlayerState) *engine.Game {
	t.Helper()
	g, err := engine.NewGame([]*engine.PlayerState{p}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	g.Field = field
	return g
}
