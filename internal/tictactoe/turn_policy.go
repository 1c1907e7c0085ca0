package tictactoe

import (
	"math/rand/v2"

	"github.com/mersenne-twister/tic-tac-toe/internal/entity"
)

// TurnPolicy decides which mark opens a round.
type TurnPolicy struct {
	rule entity.FirstTurn
	rng  *rand.Rand
}

func NewTurnPolicy(rule entity.FirstTurn, rng *rand.Rand) *TurnPolicy {
	return &TurnPolicy{
		rule: rule,
		rng:  rng,
	}
}

// FirstTurn returns the opening mark given the previous round, nil before the
// first round. Winner and loser rules fall back to a coin flip when there is no
// previous winner.
func (that *TurnPolicy) FirstTurn(previous *entity.RoundResult) entity.Mark {
	switch that.rule {
	case entity.FirstTurnX:
		return entity.MarkX
	case entity.FirstTurnO:
		return entity.MarkO
	case entity.FirstTurnWinner:
		if previous != nil && !previous.IsScratch() {
			return previous.Winner
		}
	case entity.FirstTurnLoser:
		if previous != nil && !previous.IsScratch() {
			return previous.Winner.Opponent()
		}
	}

	return that.random()
}

func (that *TurnPolicy) random() entity.Mark {
	if that.rng.IntN(2) == 0 {
		return entity.MarkX
	}
	return entity.MarkO
}
