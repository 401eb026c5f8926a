// Package strategy holds the decision policies that drive a player's turn.
package strategy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/signalnine/skipbo-sim/engine"
)

const (
	NameSimple = "simple"
	NameBad    = "bad"
	NameGood   = "good"
)

var registry = map[string]func() engine.Strategy{
	NameSimple: func() engine.Strategy { return Simple{} },
	NameBad:    func() engine.Strategy { return Bad{} },
	NameGood:   func() engine.Strategy { return Good{} },
}

// New returns the strategy registered under name.
func New(name string) (engine.Strategy, error) {
	ctor, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
	return ctor(), nil
}

// Names lists the registered strategies in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fewestCards discards hand[0] onto the side stack holding the fewest cards,
// lowest index on ties.
func fewestCards(side engine.SideStacks) engine.Move {
	best := 0
	for i := 1; i < len(side); i++ {
		if len(side[i]) < len(side[best]) {
			best = i
		}
	}
	return engine.DiscardMove(0, best)
}
