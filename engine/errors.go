package engine

import "github.com/pkg/errors"

// ErrInvariant is the root of every fault raised when a caller applies a move
// that move generation or a discard policy should never have produced.
var ErrInvariant = errors.New("engine invariant violated")

var (
	ErrNoPlayers      = errors.New("game needs at least one player")
	ErrBadPlayer      = invariant("player index out of range")
	ErrBadMove        = invariant("malformed move")
	ErrEmptyDrawStack = invariant("draw stack is empty")
	ErrEmptySideStack = invariant("side stack is empty")
	ErrHandIndex      = invariant("hand index out of range")
	ErrJokerStacked   = invariant("joker placed on a joker")
)

type invariantError struct {
	msg string
}

func invariant(msg string) error {
	return &invariantError{msg: msg}
}

func (e *invariantError) Error() string { return e.msg }

// Is lets errors.Is match any invariant fault against ErrInvariant.
func (e *invariantError) Is(target error) bool {
	return target == ErrInvariant
}
