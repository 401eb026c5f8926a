package engine

// TensionMetrics tracks how the lead moved during a match. The leader is the
// player with the fewest cards left in the draw stack.
type TensionMetrics struct {
	LeadChanges   int     // Number of times leader switched
	DecisiveRound int     // Round when winner took PERMANENT lead
	ClosestMargin float32 // Smallest normalized gap between 1st and 2nd (0 = tied)
	TotalRounds   int

	currentLeader int
	leaderHistory []int
}

// NewTensionMetrics creates initialized tension tracker
func NewTensionMetrics() *TensionMetrics {
	return &TensionMetrics{
		currentLeader: -1,
		ClosestMargin: 1.0,
		leaderHistory: make([]int, 0, 100),
	}
}

// Update records the standings after a round.
func (tm *TensionMetrics) Update(g *Game) {
	leader := DrawStackLeader(g)
	if leader >= 0 && tm.currentLeader >= 0 && leader != tm.currentLeader {
		tm.LeadChanges++
	}
	if leader >= 0 {
		tm.currentLeader = leader
	}
	if margin := DrawStackMargin(g); margin < tm.ClosestMargin {
		tm.ClosestMargin = margin
	}
	tm.leaderHistory = append(tm.leaderHistory, leader)
	tm.TotalRounds++
}

// Finalize computes DecisiveRound: the first round from which winner led
// every remaining round. It stays 0 for draws.
func (tm *TensionMetrics) Finalize(winner int) {
	if winner < 0 || len(tm.leaderHistory) == 0 {
		return
	}
	decisive := len(tm.leaderHistory)
	for i := len(tm.leaderHistory) - 1; i >= 0; i-- {
		if tm.leaderHistory[i] != winner {
			break
		}
		decisive = i
	}
	tm.DecisiveRound = decisive + 1
}

// DecisiveRoundPct is DecisiveRound as a fraction of the match length.
func (tm *TensionMetrics) DecisiveRoundPct() float32 {
	if tm.TotalRounds == 0 || tm.DecisiveRound == 0 {
		return 0
	}
	return float32(tm.DecisiveRound) / float32(tm.TotalRounds)
}

// DrawStackLeader returns the player with the smallest draw stack, or -1 on a tie.
func DrawStackLeader(g *Game) int {
	if len(g.Players) < 2 {
		return -1
	}
	minCards := len(g.Players[0].DrawStack)
	leader := 0
	tied := false
	for i := 1; i < len(g.Players); i++ {
		cards := len(g.Players[i].DrawStack)
		if cards < minCards {
			minCards = cards
			leader = i
			tied = false
		} else if cards == minCards {
			tied = true
		}
	}
	if tied {
		return -1
	}
	return leader
}

// DrawStackMargin is the gap between the two smallest draw stacks divided by
// the largest one. 0 means tied.
func DrawStackMargin(g *Game) float32 {
	if len(g.Players) < 2 {
		return 0
	}
	first, second := -1, -1
	maxCards := 0
	for _, p := range g.Players {
		cards := len(p.DrawStack)
		if cards > maxCards {
			maxCards = cards
		}
		if first < 0 || cards < first {
			second = first
			first = cards
		} else if second < 0 || cards < second {
			second = cards
		}
	}
	if maxCards == 0 {
		return 0
	}
	return float32(second-first) / float32(maxCards)
}
