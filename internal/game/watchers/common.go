// Package watchers holds observers that follow a session from the outside:
// statistics for the end-of-session summary and a debug event log.
package watchers

import (
	"github.com/pathfall/pathfall/internal/game/character"
	"github.com/pathfall/pathfall/internal/game/combat"
	"github.com/pathfall/pathfall/internal/game/rules"
)

// Totals is a snapshot of the statistics gathered by a Tally.
type Totals struct {
	Attacks     int // attacks made by the hero
	DamageDealt int // damage taken by everyone else
	DamageTaken int // damage taken by the hero
	Heals       int
	HealedFor   int
	Kills       int
	LevelUps    int
	Battles     int
	BattlesWon  int
}

// Tally counts what happens to one hero and to the opponents it is
// attached to. Attach it to the hero and to every spawned enemy. The hero is
// recognised by its ID.
type Tally struct {
	heroID string
	totals Totals
}

// NewTally creates a tally for hero.
func NewTally(hero *character.Character) *Tally {
	return &Tally{heroID: hero.ID()}
}

// Handle implements character.Observer.
func (w *Tally) Handle(subject *character.Character, event rules.EventType, data any) {
	if subject.ID() == w.heroID {
		w.watchHero(event, data)
		return
	}
	switch event {
	case rules.EventDeath:
		w.totals.Kills++
	case rules.EventDamageTaken:
		if amount, ok := data.(int); ok {
			w.totals.DamageDealt += amount
		}
	}
}

func (w *Tally) watchHero(event rules.EventType, data any) {
	switch event {
	case rules.EventAttack:
		w.totals.Attacks++
	case rules.EventDamageTaken:
		if amount, ok := data.(int); ok {
			w.totals.DamageTaken += amount
		}
	case rules.EventHeal:
		w.totals.Heals++
		if amount, ok := data.(int); ok {
			w.totals.HealedFor += amount
		}
	case rules.EventLevelUp:
		w.totals.LevelUps++
	case rules.EventBattleEnd:
		w.totals.Battles++
		if result, ok := data.(combat.Result); ok && result.HeroTeamWon {
			w.totals.BattlesWon++
		}
	}
}

// Totals returns the statistics gathered so far.
func (w *Tally) Totals() Totals {
	return w.totals
}

// Reset clears the statistics.
func (w *Tally) Reset() {
	w.totals = Totals{}
}

// Stats converts the totals into the battle_stats payload.
func (t Totals) Stats(stageMsg string) rules.BattleStats {
	return rules.BattleStats{
		BattlesWon:  t.BattlesWon,
		StageMsg:    stageMsg,
		Attacks:     t.Attacks,
		DamageTaken: t.DamageTaken,
		Kills:       t.Kills,
	}
}
