// Package session drives a whole game for one hero: the exploration mode
// with its final boss, and the endless classic mode.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/pathfall/pathfall/internal/game/character"
	"github.com/pathfall/pathfall/internal/game/combat"
	"github.com/pathfall/pathfall/internal/game/exploration"
	"github.com/pathfall/pathfall/internal/game/random"
	"github.com/pathfall/pathfall/internal/game/rules"
	"github.com/pathfall/pathfall/internal/game/watchers"
	"github.com/pathfall/pathfall/internal/scores"
	"go.uber.org/zap"
)

//go:generate go tool mockgen -destination=../game/mocks/decisions_mock.go -package=mocks . DecisionProvider

// DecisionProvider answers every question a session asks the player.
type DecisionProvider interface {
	combat.Decisions
	exploration.PathChooser
	ConfirmContinue() (bool, error)
}

// Mode is the kind of session played.
type Mode string

const (
	ModeExploration Mode = "exploration"
	ModeClassic     Mode = "classic"
)

// Outcome is how a session ended.
type Outcome string

const (
	OutcomeVictory Outcome = "victory" // exploration boss defeated
	OutcomeDefeat  Outcome = "defeat"
	OutcomeRetired Outcome = "retired" // classic mode left after a win
	OutcomeQuit    Outcome = "quit"
)

// DefaultStages is the number of stages of an exploration zone.
const DefaultStages = 10

// Classic mode spawn extras.
const (
	bonusWeaponChance    = 0.5
	bonusWeaponMinDamage = 20
	bonusWeaponMaxDamage = 30
	bossEscorts          = 2
)

// Summary is the result of a session.
type Summary struct {
	Mode       Mode
	Hero       string
	Outcome    Outcome
	Zone       string
	StageMsg   string
	Experience int
	Level      int
	BattlesWon int
	Totals     watchers.Totals
	Recorded   bool
}

// Runner plays sessions. Observers added with Observe are attached to the
// hero and to every character spawned during a session.
type Runner struct {
	rng       random.Source
	decisions DecisionProvider
	recorder  scores.Recorder
	observers []character.Observer
	logger    *zap.Logger
}

// NewRunner creates a runner. recorder may be nil to skip score keeping.
func NewRunner(rng random.Source, decisions DecisionProvider, recorder scores.Recorder, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		rng:       rng,
		decisions: decisions,
		recorder:  recorder,
		logger:    logger,
	}
}

// Observe registers an observer for every character of later sessions.
func (r *Runner) Observe(observer character.Observer) {
	if observer != nil {
		r.observers = append(r.observers, observer)
	}
}

func (r *Runner) attach(c *character.Character, tally *watchers.Tally) {
	for _, o := range r.observers {
		c.AddObserver(o)
	}
	c.AddObserver(tally)
}

// Explore runs an exploration session of the given number of stages in a
// random zone. Between stages the hero recovers up to a third of its
// maximum health. The boss is escorted by two regular enemies.
func (r *Runner) Explore(ctx context.Context, hero *character.Character, stages int) (Summary, error) {
	if stages <= 0 {
		stages = DefaultStages
	}
	zoneName := random.Pick(r.rng, exploration.ZoneNames)
	logger := r.logger.With(zap.String("mode", string(ModeExploration)), zap.String("zone", zoneName))

	tally := watchers.NewTally(hero)
	r.attach(hero, tally)
	defer hero.RemoveObserver(tally)

	summary := Summary{Mode: ModeExploration, Hero: hero.Name(), Zone: zoneName}
	hero.Notify(rules.EventExplorationStart, rules.ExplorationStart{ZoneName: zoneName, Stages: stages})
	logger.Info("exploration started", zap.Int("stages", stages))

	zone := exploration.NewZone(zoneName, stages, hero, r.rng, r.decisions, logger)
	zone.AddObserver(tally)
	for _, o := range r.observers {
		zone.AddObserver(o)
	}

	resolver := combat.NewResolver(r.rng, r.decisions, logger)
	heroes := character.NewTeam("Hero Team", hero)
	runner := exploration.BattleRunnerFunc(func(enc exploration.Encounter) (bool, error) {
		enemies := character.NewTeam("Enemy Team", enc.Enemy)
		if enc.Boss {
			for range bossEscorts {
				escort := character.NewEnemy(r.rng, hero)
				r.attach(escort, tally)
				escort.Notify(rules.EventEnemySpawned, nil)
				enemies.Add(escort)
			}
		}
		result, err := resolver.Fight(heroes, enemies)
		return result.HeroTeamWon, err
	})

	for !zone.IsComplete() {
		if err := ctx.Err(); err != nil {
			return r.finish(summary, hero, tally), err
		}
		regenerate(hero)

		result, err := zone.ExploreStageWith(runner)
		if err != nil {
			return r.abort(summary, hero, tally, err)
		}
		if result.Encounter == nil {
			continue
		}

		if !result.HeroWon {
			stageMsg := fmt.Sprintf("stage %d/%d", zone.Stage(), zone.Stages())
			if result.Encounter.Boss {
				stageMsg = "the boss fight"
			}
			summary.Outcome = OutcomeDefeat
			summary.StageMsg = stageMsg
			stats := tally.Totals().Stats(stageMsg)
			stats.BattlesWon = summary.BattlesWon
			hero.Notify(rules.EventBattleStats, stats)
			logger.Info("hero defeated", zap.String("at", stageMsg))
			return r.record(ctx, r.finish(summary, hero, tally))
		}

		summary.BattlesWon++
		if result.Encounter.Boss {
			summary.Outcome = OutcomeVictory
			hero.Notify(rules.EventExplorationVictory, rules.ExplorationVictory{ZoneName: zoneName})
			logger.Info("zone conquered", zap.Int("battles_won", summary.BattlesWon))
			return r.record(ctx, r.finish(summary, hero, tally))
		}
	}
	return r.finish(summary, hero, tally), nil
}

// Classic runs back-to-back battles against single enemies. The hero is
// fully healed before every battle and asked whether to continue after
// each win.
func (r *Runner) Classic(ctx context.Context, hero *character.Character) (Summary, error) {
	logger := r.logger.With(zap.String("mode", string(ModeClassic)))

	tally := watchers.NewTally(hero)
	r.attach(hero, tally)
	defer hero.RemoveObserver(tally)

	summary := Summary{Mode: ModeClassic, Hero: hero.Name()}
	hero.Notify(rules.EventStartClassicMode, nil)

	resolver := combat.NewResolver(r.rng, r.decisions, logger)
	heroes := character.NewTeam("Hero Team", hero)

	for {
		if err := ctx.Err(); err != nil {
			return r.finish(summary, hero, tally), err
		}
		if missing := hero.MaxHealth() - hero.Health(); missing > 0 {
			hero.Heal(missing)
		}

		enemy := character.NewEnemy(r.rng, hero)
		if random.Chance(r.rng, bonusWeaponChance) {
			enemy.AddItem(character.NewWeapon("Random Weapon", random.Between(r.rng, bonusWeaponMinDamage, bonusWeaponMaxDamage)))
		}
		r.attach(enemy, tally)
		enemy.Notify(rules.EventEnemySpawned, nil)

		result, err := resolver.Fight(heroes, character.NewTeam("Enemy Team", enemy))
		if err != nil {
			return r.abort(summary, hero, tally, err)
		}
		if !result.HeroTeamWon {
			summary.Outcome = OutcomeDefeat
			hero.Notify(rules.EventEndClassicMode, rules.ClassicModeEnd{Win: false, BattlesWon: summary.BattlesWon})
			logger.Info("hero defeated", zap.Int("battles_won", summary.BattlesWon))
			return r.record(ctx, r.finish(summary, hero, tally))
		}
		summary.BattlesWon++

		again, err := r.decisions.ConfirmContinue()
		if err != nil {
			return r.abort(summary, hero, tally, err)
		}
		if !again {
			summary.Outcome = OutcomeRetired
			hero.Notify(rules.EventEndClassicMode, rules.ClassicModeEnd{Win: true, BattlesWon: summary.BattlesWon})
			logger.Info("classic mode finished", zap.Int("battles_won", summary.BattlesWon))
			return r.record(ctx, r.finish(summary, hero, tally))
		}
	}
}

// regenerate restores up to a third of the hero's maximum health.
func regenerate(hero *character.Character) {
	amount := min(hero.MaxHealth()-hero.Health(), hero.MaxHealth()/3)
	if amount > 0 {
		hero.Heal(amount)
	}
}

func (r *Runner) finish(summary Summary, hero *character.Character, tally *watchers.Tally) Summary {
	summary.Experience = hero.Experience()
	summary.Level = hero.Level()
	summary.Totals = tally.Totals()
	return summary
}

// abort ends a session on an error. A quit is a normal ending that records
// nothing.
func (r *Runner) abort(summary Summary, hero *character.Character, tally *watchers.Tally, err error) (Summary, error) {
	summary = r.finish(summary, hero, tally)
	if errors.Is(err, rules.ErrQuit) {
		summary.Outcome = OutcomeQuit
		r.logger.Info("session quit", zap.String("hero", hero.Name()))
		return summary, nil
	}
	return summary, fmt.Errorf("%s session: %w", summary.Mode, err)
}

func (r *Runner) record(ctx context.Context, summary Summary) (Summary, error) {
	if r.recorder == nil {
		return summary, nil
	}
	if err := r.recorder.RecordResult(ctx, summary.Hero, summary.Experience, summary.BattlesWon); err != nil {
		r.logger.Warn("failed to record score", zap.String("hero", summary.Hero), zap.Error(err))
		return summary, fmt.Errorf("record score: %w", err)
	}
	summary.Recorded = true
	return summary, nil
}
