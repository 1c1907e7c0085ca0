package tictactoe

import (
	"math/rand/v2"
	"testing"

	"github.com/mersenne-twister/tic-tac-toe/internal/entity"
	"github.com/stretchr/testify/assert"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestTurnPolicy_Fixed(t *testing.T) {
	xWin := &entity.RoundResult{Winner: entity.MarkX}
	oWin := &entity.RoundResult{Winner: entity.MarkO}

	for _, previous := range []*entity.RoundResult{nil, xWin, oWin, {Winner: entity.NoMark}} {
		assert.Equal(t, entity.MarkX, NewTurnPolicy(entity.FirstTurnX, newRand()).FirstTurn(previous))
		assert.Equal(t, entity.MarkO, NewTurnPolicy(entity.FirstTurnO, newRand()).FirstTurn(previous))
	}
}

func TestTurnPolicy_Random(t *testing.T) {
	// Given: a random policy
	policy := NewTurnPolicy(entity.FirstTurnRandom, newRand())

	// When: drawing many opening marks
	seen := map[entity.Mark]int{}
	for i := 0; i < 200; i++ {
		seen[policy.FirstTurn(nil)]++
	}

	// Then: only X and O occur, and both of them do
	assert.Len(t, seen, 2)
	assert.Positive(t, seen[entity.MarkX])
	assert.Positive(t, seen[entity.MarkO])
}

func TestTurnPolicy_PreviousOutcome(t *testing.T) {
	t.Run("Winner goes first", func(t *testing.T) {
		policy := NewTurnPolicy(entity.FirstTurnWinner, newRand())

		assert.Equal(t, entity.MarkO, policy.FirstTurn(&entity.RoundResult{Winner: entity.MarkO}))
		assert.Equal(t, entity.MarkX, policy.FirstTurn(&entity.RoundResult{Winner: entity.MarkX}))
	})

	t.Run("Loser goes first", func(t *testing.T) {
		policy := NewTurnPolicy(entity.FirstTurnLoser, newRand())

		assert.Equal(t, entity.MarkX, policy.FirstTurn(&entity.RoundResult{Winner: entity.MarkO}))
		assert.Equal(t, entity.MarkO, policy.FirstTurn(&entity.RoundResult{Winner: entity.MarkX}))
	})

	t.Run("Falls back to random without a previous winner", func(t *testing.T) {
		for _, rule := range []entity.FirstTurn{entity.FirstTurnWinner, entity.FirstTurnLoser} {
			// Given: a policy that follows the previous outcome, and the same seed for a random one
			policy := NewTurnPolicy(rule, newRand())
			reference := NewTurnPolicy(entity.FirstTurnRandom, newRand())

			// When: there is no previous round, then a scratch
			first := policy.FirstTurn(nil)
			second := policy.FirstTurn(&entity.RoundResult{Winner: entity.NoMark})

			// Then: both draws match the random sequence
			assert.Equal(t, reference.FirstTurn(nil), first, "rule %s", rule)
			assert.Equal(t, reference.FirstTurn(nil), second, "rule %s", rule)
		}
	})
}
