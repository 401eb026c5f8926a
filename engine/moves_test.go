package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func newTestGame(t *testing.T, players ...*PlayerState) *Game {
	t.Helper()
	g, err := NewGame(players, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestExecuteDrawToField(t *testing.T) {
	g := newTestGame(t, &PlayerState{DrawStack: []Card{4, 1}})

	if err := g.Execute(0, DrawMove(2)); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if g.Field[2] != (FieldStack{Top: 1}) {
		t.Errorf("field[2] = %+v, want {1 false}", g.Field[2])
	}
	if len(g.Players[0].DrawStack) != 1 || g.Players[0].DrawStack[0] != 4 {
		t.Errorf("draw stack = %v, want [4]", g.Players[0].DrawStack)
	}
}

func TestExecuteHandToField(t *testing.T) {
	g := newTestGame(t, &PlayerState{Hand: []Card{7, Joker, 3}, DrawStack: []Card{9}})
	g.Field[1] = FieldStack{Top: 5}

	if err := g.Execute(0, HandMove(1, 1)); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if g.Field[1] != (FieldStack{Top: 6, JokerActive: true}) {
		t.Errorf("field[1] = %+v, want {6 true}", g.Field[1])
	}
	want := []Card{7, 3}
	if len(g.Players[0].Hand) != 2 || g.Players[0].Hand[0] != want[0] || g.Players[0].Hand[1] != want[1] {
		t.Errorf("hand = %v, want %v", g.Players[0].Hand, want)
	}
}

func TestExecuteSideToField(t *testing.T) {
	p := &PlayerState{DrawStack: []Card{9}}
	p.Side[3] = []Card{2, 8}
	g := newTestGame(t, p)
	g.Field[0] = FieldStack{Top: 7, JokerActive: true}

	if err := g.Execute(0, SideMove(3, 0)); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if g.Field[0] != (FieldStack{Top: 8}) {
		t.Errorf("field[0] = %+v, want {8 false}", g.Field[0])
	}
	if len(p.Side[3]) != 1 || p.Side[3][0] != 2 {
		t.Errorf("side[3] = %v, want [2]", p.Side[3])
	}
}

func TestExecuteDiscard(t *testing.T) {
	p := &PlayerState{Hand: []Card{4, 5, 6}, DrawStack: []Card{9}}
	p.Side[2] = []Card{11}
	g := newTestGame(t, p)

	if err := g.Execute(0, DiscardMove(2, 2)); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(p.Side[2]) != 2 || p.Side[2][1] != 6 {
		t.Errorf("side[2] = %v, want [11 6]", p.Side[2])
	}
	if len(p.Hand) != 2 {
		t.Errorf("hand = %v, want 2 cards", p.Hand)
	}
	if g.Field != NewField() {
		t.Error("discard must not touch the field")
	}
}

func TestExecuteInvariantViolations(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		move  Move
		want  error
	}{
		{
			name:  "empty draw stack",
			setup: func(g *Game) { g.Players[0].DrawStack = nil },
			move:  DrawMove(0),
			want:  ErrEmptyDrawStack,
		},
		{
			name: "hand slot out of range",
			move: HandMove(7, 0),
			want: ErrHandIndex,
		},
		{
			name: "empty side stack",
			move: SideMove(1, 0),
			want: ErrEmptySideStack,
		},
		{
			name: "joker on joker",
			setup: func(g *Game) {
				g.Field[3] = FieldStack{Top: 4, JokerActive: true}
			},
			move: HandMove(0, 3),
			want: ErrJokerStacked,
		},
		{
			name: "side to side",
			setup: func(g *Game) {
				g.Players[0].Side[0] = []Card{3}
			},
			move: Move{From: LocationSide, FromIndex: 0, To: LocationSide, ToIndex: 1},
			want: ErrBadMove,
		},
		{
			name: "field index out of range",
			move: DrawMove(4),
			want: ErrBadMove,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, &PlayerState{Hand: []Card{Joker, 2}, DrawStack: []Card{5}})
			if tt.setup != nil {
				tt.setup(g)
			}
			before := g.Players[0].Clone()
			field := g.Field

			err := g.Execute(0, tt.move)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Execute error = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, ErrInvariant) {
				t.Errorf("error %v is not an invariant fault", err)
			}
			if g.Field != field {
				t.Errorf("field changed on rejected move: %+v", g.Field)
			}
			if len(g.Players[0].Hand) != len(before.Hand) || len(g.Players[0].DrawStack) != len(before.DrawStack) {
				t.Error("player state changed on rejected move")
			}
		})
	}
}

func TestExecuteBadPlayer(t *testing.T) {
	g := newTestGame(t, &PlayerState{DrawStack: []Card{1}})
	if err := g.Execute(3, DrawMove(0)); !errors.Is(err, ErrBadPlayer) {
		t.Errorf("Execute error = %v, want ErrBadPlayer", err)
	}
}
