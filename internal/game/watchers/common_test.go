package watchers

import (
	"errors"
	"testing"

	"github.com/pathfall/pathfall/internal/game/character"
	"github.com/pathfall/pathfall/internal/game/combat"
	"github.com/pathfall/pathfall/internal/game/random"
	"github.com/pathfall/pathfall/internal/game/rules"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTally(t *testing.T) {
	rng := random.New(1)
	hero := character.New(rng, character.Spec{Name: "John", Kind: character.KindHero, Health: 100, Damage: 10})
	enemy := character.New(rng, character.Spec{Name: "Wolf", Kind: character.KindEnemy, Health: 30, Damage: 10})

	tally := NewTally(hero)
	hero.AddObserver(tally)
	enemy.AddObserver(tally)

	// Test initial state
	if tally.Totals() != (Totals{}) {
		t.Fatalf("expected empty totals, got %+v", tally.Totals())
	}

	hero.Notify(rules.EventAttack, character.AttackData{Target: enemy})
	enemy.TakeDamage(30)
	hero.TakeDamage(12)
	hero.Heal(5)
	hero.Notify(rules.EventBattleEnd, combat.Result{HeroTeamWon: true})
	hero.Notify(rules.EventBattleEnd, combat.Result{HeroTeamWon: false})

	got := tally.Totals()
	want := Totals{
		Attacks:     1,
		DamageDealt: 30,
		DamageTaken: 12,
		Heals:       1,
		HealedFor:   5,
		Kills:       1,
		Battles:     2,
		BattlesWon:  1,
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	stats := got.Stats("stage 2/10")
	if stats.StageMsg != "stage 2/10" || stats.Kills != 1 || stats.BattlesWon != 1 {
		t.Fatalf("unexpected battle stats %+v", stats)
	}

	// A namesake with another ID counts as an opponent
	other := character.New(rng, character.Spec{Name: "John", Kind: character.KindHero, Health: 10})
	other.AddObserver(tally)
	other.TakeDamage(10)
	if got := tally.Totals(); got.Kills != 2 || got.DamageTaken != 12 {
		t.Fatalf("expected namesake to count as a kill, got %+v", got)
	}

	// Test reset
	tally.Reset()
	if tally.Totals() != (Totals{}) {
		t.Fatalf("expected empty totals after reset, got %+v", tally.Totals())
	}
}

func TestEventLog(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	eventLog := NewEventLog(zap.New(core))

	rng := random.New(1)
	hero := character.New(rng, character.Spec{Name: "John", Kind: character.KindHero, Health: 100})
	enemy := character.New(rng, character.Spec{Name: "Wolf", Kind: character.KindEnemy, Health: 30})
	hero.AddObserver(eventLog)

	hero.Notify(rules.EventAttack, character.AttackData{Target: enemy, Weapon: character.NewWeapon("Sword", 5)})
	hero.TakeDamage(7)
	hero.Notify(rules.EventInvalidOperation, errors.New("rejected"))

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 log entries, got %d", len(entries))
	}
	if entries[0].Message != string(rules.EventAttack) {
		t.Fatalf("expected attack entry, got %q", entries[0].Message)
	}
	fields := entries[0].ContextMap()
	if fields["target"] != "Wolf" || fields["weapon"] != "Sword" {
		t.Fatalf("unexpected attack fields %v", fields)
	}
	if fields["id"] != hero.ID() || fields["target_id"] != enemy.ID() {
		t.Fatalf("expected hero and target ids, got %v", fields)
	}
	if v := entries[1].ContextMap()["value"]; v != int64(7) {
		t.Fatalf("expected damage value 7, got %v", v)
	}
	if entries[0].LoggerName != "events" {
		t.Fatalf("expected logger name events, got %q", entries[0].LoggerName)
	}
}

func TestEventLogSkipsAboveDebug(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	eventLog := NewEventLog(zap.New(core))

	hero := character.New(random.New(1), character.Spec{Name: "John", Health: 100})
	hero.AddObserver(eventLog)
	hero.Heal(1)

	if logs.Len() != 0 {
		t.Fatalf("expected no entries at info level, got %d", logs.Len())
	}
}

func TestEventLogRaisesClosingEvents(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	eventLog := NewEventLog(zap.New(core))

	hero := character.New(random.New(1), character.Spec{Name: "John", Health: 100})
	hero.AddObserver(eventLog)
	hero.Notify(rules.EventAttack, nil)
	hero.Notify(rules.EventBattleEnd, combat.Result{HeroTeamWon: true})
	hero.Notify(rules.EventBattleStats, rules.BattleStats{StageMsg: "stage 1/3"})

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 info entries, got %d", len(entries))
	}
	if entries[0].Message != string(rules.EventBattleEnd) || entries[0].Level != zapcore.InfoLevel {
		t.Fatalf("expected battle_end at info, got %q at %v", entries[0].Message, entries[0].Level)
	}
	if entries[1].Message != string(rules.EventBattleStats) {
		t.Fatalf("expected battle_stats, got %q", entries[1].Message)
	}
}
