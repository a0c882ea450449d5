package exploration

import (
	"errors"
	"fmt"

	"github.com/pathfall/pathfall/internal/game/character"
	"github.com/pathfall/pathfall/internal/game/random"
	"github.com/pathfall/pathfall/internal/game/rules"
	"go.uber.org/zap"
)

// State is the progress of a zone.
type State int

const (
	StateInProgress State = iota
	StateBossPending
	StateComplete
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInProgress:
		return "IN_PROGRESS"
	case StateBossPending:
		return "BOSS_PENDING"
	case StateComplete:
		return "COMPLETE"
	case StateFailed:
		return "FAILED"
	default:
		return fmt.Sprintf("STATE_%d", int(s))
	}
}

// ZoneNames are the zones a session can explore.
var ZoneNames = []string{"Cursed Forest", "Dragon's Lair", "Undead Catacombs", "Frozen Peaks", "Shadow Realm"}

// PathChooser picks one of the paths offered at a stage by index.
type PathChooser interface {
	ChoosePath(paths []Path) (int, error)
}

// Decisions is everything exploration asks of the player.
type Decisions interface {
	PathChooser
	character.UpgradeChooser
}

// Encounter is a battle the zone needs fought before it can continue.
type Encounter struct {
	Enemy *character.Character
	Boss  bool
}

// StageResult describes one explored stage. Path and Event are nil for the
// boss stage; Encounter is nil when no battle is needed.
type StageResult struct {
	Stage     int
	Path      *Path
	Event     *PathEvent
	Encounter *Encounter
	HeroWon   bool // set by ExploreStageWith once the encounter is fought
}

// BattleRunner fights an encounter and reports whether the hero won.
type BattleRunner interface {
	RunBattle(encounter Encounter) (bool, error)
}

// BattleRunnerFunc adapts a function to BattleRunner.
type BattleRunnerFunc func(encounter Encounter) (bool, error)

// RunBattle implements BattleRunner.
func (f BattleRunnerFunc) RunBattle(encounter Encounter) (bool, error) {
	return f(encounter)
}

var errNoEncounter = errors.New("no battle to report")

// Zone is an exploration session for one hero: a fixed number of stages
// followed by a boss.
type Zone struct {
	Name string

	stages    int
	current   int
	announced int // last stage announced with stage_start
	history   []string
	state     State
	pending   *Encounter
	hero      *character.Character
	rng       random.Source
	decisions Decisions
	observers []character.Observer
	logger    *zap.Logger
}

// NewZone creates a zone of the given number of stages.
func NewZone(name string, stages int, hero *character.Character, rng random.Source, decisions Decisions, logger *zap.Logger) *Zone {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Zone{
		Name:      name,
		stages:    max(stages, 0),
		hero:      hero,
		rng:       rng,
		decisions: decisions,
		logger:    logger.With(zap.String("zone", name)),
	}
}

// AddObserver registers an observer that every spawned enemy and boss
// publishes to.
func (z *Zone) AddObserver(observer character.Observer) {
	if observer == nil {
		return
	}
	z.observers = append(z.observers, observer)
}

// Stage returns the current stage counter. It exceeds Stages once the boss
// stage was reached.
func (z *Zone) Stage() int { return z.current }

// Stages returns the number of stages before the boss.
func (z *Zone) Stages() int { return z.stages }

// State returns the zone state.
func (z *Zone) State() State { return z.state }

// History returns the names of the chosen paths, oldest first.
func (z *Zone) History() []string {
	return append([]string(nil), z.history...)
}

// Pending returns the encounter awaiting ReportBattle, or nil.
func (z *Zone) Pending() *Encounter { return z.pending }

// IsComplete reports whether the exploration is over, won or lost.
func (z *Zone) IsComplete() bool {
	return z.state == StateComplete || z.state == StateFailed
}

// ExploreStage advances to the next stage. Past the last stage it spawns the
// boss. Otherwise the player picks one of the generated paths and its event
// is applied. A combat or boss stage returns an Encounter that must be
// settled with ReportBattle before exploring further.
func (z *Zone) ExploreStage() (StageResult, error) {
	if z.IsComplete() {
		return StageResult{}, rules.ErrExplorationOver
	}
	if z.pending != nil {
		return StageResult{}, rules.ErrBattlePending
	}

	z.current++
	if z.current > z.stages {
		return z.bossStage(), nil
	}

	if z.current > z.announced {
		z.announced = z.current
		z.hero.Notify(rules.EventStageStart, rules.StageStart{ZoneName: z.Name, Stage: z.current, Stages: z.stages})
	}

	paths := GeneratePaths(z.rng)
	idx, err := rules.Select("path",
		func() (int, error) { return z.decisions.ChoosePath(paths) },
		func(i int) bool { return i >= 0 && i < len(paths) },
		func(notice rules.InvalidChoice) { z.hero.Notify(rules.EventInvalidChoice, notice) },
	)
	if err != nil {
		z.current--
		return StageResult{}, fmt.Errorf("stage %d: %w", z.current+1, err)
	}

	chosen := &paths[idx]
	z.history = append(z.history, chosen.Name)
	z.hero.Notify(rules.EventPathChosen, rules.PathChosen{
		Name:        chosen.Name,
		Description: chosen.Description,
		Difficulty:  string(chosen.Difficulty),
	})

	event := chosen.DrawEvent(z.rng)
	z.logger.Debug("path chosen",
		zap.Int("stage", z.current),
		zap.String("path", chosen.Name),
		zap.String("event", string(event.Type)))

	result := StageResult{Stage: z.current, Path: chosen, Event: event}
	encounter, err := z.apply(event)
	if err != nil {
		return result, fmt.Errorf("stage %d: %w", z.current, err)
	}
	result.Encounter = encounter
	return result, nil
}

func (z *Zone) bossStage() StageResult {
	boss := character.NewBoss(z.rng, z.hero)
	z.watch(boss)
	boss.Notify(rules.EventBossSpawned, nil)

	z.state = StateBossPending
	z.pending = &Encounter{Enemy: boss, Boss: true}
	z.logger.Debug("boss spawned",
		zap.String("boss", boss.Name()),
		zap.Int("max_health", boss.MaxHealth()),
		zap.Int("damage", boss.Damage()))
	return StageResult{Stage: z.current, Encounter: z.pending}
}

// Apply runs the effect of a path event on the hero. A combat event spawns
// an enemy and leaves the zone waiting for ReportBattle.
func (z *Zone) Apply(event PathEvent) (*Encounter, error) {
	if z.pending != nil {
		return nil, rules.ErrBattlePending
	}
	return z.apply(&event)
}

func (z *Zone) apply(event *PathEvent) (*Encounter, error) {
	switch event.Type {
	case EventCombat:
		enemy := character.NewEnemy(z.rng, z.hero)
		z.watch(enemy)
		enemy.Notify(rules.EventEnemySpawned, nil)
		z.pending = &Encounter{Enemy: enemy}
		return z.pending, nil
	case EventExp:
		amount := event.Value
		if amount <= 0 {
			amount = random.Between(z.rng, MinExpFind, MaxExpFind)
		}
		return nil, z.hero.GainExperience(amount, z.decisions)
	case EventWeapon:
		weapon := event.Weapon
		if weapon == nil {
			weapon = RandomWeapon(z.rng)
		}
		z.hero.AddItem(weapon)
		z.hero.Notify(rules.EventWeaponFound, weapon)
		return nil, nil
	case EventHeal:
		amount := event.Value
		if amount <= 0 {
			amount = random.Between(z.rng, MinHealFind, MaxHealFind)
		}
		z.hero.Heal(amount)
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown path event %q", event.Type)
	}
}

func (z *Zone) watch(c *character.Character) {
	for _, o := range z.observers {
		c.AddObserver(o)
	}
}

// ReportBattle settles the pending encounter. A lost battle fails the zone;
// winning the boss battle completes it.
func (z *Zone) ReportBattle(heroWon bool) error {
	if z.pending == nil {
		return errNoEncounter
	}
	boss := z.pending.Boss
	z.pending = nil

	switch {
	case !heroWon:
		z.state = StateFailed
	case boss:
		z.state = StateComplete
	}
	z.logger.Debug("battle reported",
		zap.Bool("hero_won", heroWon),
		zap.Bool("boss", boss),
		zap.Stringer("state", z.state))
	return nil
}

// ExploreStageWith explores a stage and fights its encounter, if any,
// through runner. If the runner fails the encounter stays pending.
func (z *Zone) ExploreStageWith(runner BattleRunner) (StageResult, error) {
	result, err := z.ExploreStage()
	if err != nil || result.Encounter == nil {
		return result, err
	}
	won, err := runner.RunBattle(*result.Encounter)
	if err != nil {
		return result, err
	}
	result.HeroWon = won
	return result, z.ReportBattle(won)
}
