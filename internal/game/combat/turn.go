package combat

import (
	"cmp"
	"slices"

	"github.com/pathfall/pathfall/internal/game/character"
)

// TurnOrder returns the members of both teams, heroes first, stably sorted
// by speed from fastest to slowest. Ties keep their team order.
func TurnOrder(heroes, enemies *character.Team) []*character.Character {
	order := append(heroes.Members(), enemies.Members()...)
	slices.SortStableFunc(order, func(a, b *character.Character) int {
		return cmp.Compare(b.Speed(), a.Speed())
	})
	return order
}

// TurnCursor walks a fixed turn order round after round. Dead combatants
// are skipped.
type TurnCursor struct {
	order []*character.Character
	index int
	round int
}

// NewTurnCursor creates a cursor positioned before the first turn of round 1.
func NewTurnCursor(order []*character.Character) *TurnCursor {
	return &TurnCursor{order: order, index: -1, round: 1}
}

// Round returns the current round number (1-based).
func (tc *TurnCursor) Round() int {
	return tc.round
}

// Next advances to the next living combatant. It returns nil when no one in
// the order is alive.
func (tc *TurnCursor) Next() *character.Character {
	for range len(tc.order) {
		tc.index++
		if tc.index >= len(tc.order) {
			tc.index = 0
			tc.round++
		}
		if c := tc.order[tc.index]; c.IsAlive() {
			return c
		}
	}
	return nil
}
