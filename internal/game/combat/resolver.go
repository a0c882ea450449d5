package combat

import (
	"errors"
	"fmt"

	"github.com/pathfall/pathfall/internal/game/character"
	"github.com/pathfall/pathfall/internal/game/random"
	"github.com/pathfall/pathfall/internal/game/rules"
	"go.uber.org/zap"
)

// State is the progress of a battle.
type State int

const (
	StateOngoing State = iota
	StateHeroTeamWon
	StateEnemyTeamWon
)

func (s State) String() string {
	switch s {
	case StateOngoing:
		return "ONGOING"
	case StateHeroTeamWon:
		return "HERO_TEAM_WON"
	case StateEnemyTeamWon:
		return "ENEMY_TEAM_WON"
	default:
		return fmt.Sprintf("STATE_%d", int(s))
	}
}

// Battle titles carried by rules.EventBattleStart.
const (
	KindBattle     = "BATTLE START"
	KindBossBattle = "BOSS BATTLE"
)

// Result is the outcome of a finished battle. It is also the payload of
// rules.EventBattleEnd.
type Result struct {
	HeroTeamWon bool
	Boss        bool
	Rounds      int
	Turns       int
}

// Battle is one encounter between a hero team and an enemy team. The turn
// order is fixed when the battle is created.
type Battle struct {
	heroes  *character.Team
	enemies *character.Team
	order   []*character.Character
	state   State
	boss    bool
}

// NewBattle prepares a battle. It is a boss battle when the enemy team
// contains a boss.
func NewBattle(heroes, enemies *character.Team) *Battle {
	b := &Battle{
		heroes:  heroes,
		enemies: enemies,
		order:   TurnOrder(heroes, enemies),
	}
	for _, m := range enemies.Members() {
		if m.Kind() == character.KindBoss {
			b.boss = true
			break
		}
	}
	b.settle()
	return b
}

// State returns the current state.
func (b *Battle) State() State { return b.state }

// IsBoss reports whether this is a boss battle.
func (b *Battle) IsBoss() bool { return b.boss }

// Starter is the combatant acting first, or nil for an empty battle.
func (b *Battle) Starter() *character.Character {
	if len(b.order) == 0 {
		return nil
	}
	return b.order[0]
}

// settle moves the battle to a final state once a team is defeated. The
// hero team loses ties.
func (b *Battle) settle() {
	if b.state != StateOngoing {
		return
	}
	switch {
	case b.heroes.IsDefeated():
		b.state = StateEnemyTeamWon
	case b.enemies.IsDefeated():
		b.state = StateHeroTeamWon
	}
}

// opponentsOf returns the alive members of the team actor fights against.
func (b *Battle) opponentsOf(actor *character.Character) []*character.Character {
	if b.heroes.Has(actor) {
		return b.enemies.AliveMembers()
	}
	return b.heroes.AliveMembers()
}

// announcer is the character that publishes battle-level events.
func (b *Battle) announcer() *character.Character {
	members := b.heroes.Members()
	if len(members) == 0 {
		return nil
	}
	return members[0]
}

// Resolver runs battles. Player-controlled combatants act through the
// decision provider, everyone else through their kind's Policy.
type Resolver struct {
	rng       random.Source
	decisions Decisions
	logger    *zap.Logger
}

// NewResolver creates a resolver.
func NewResolver(rng random.Source, decisions Decisions, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		rng:       rng,
		decisions: decisions,
		logger:    logger,
	}
}

// Fight runs a full battle between two teams.
func (r *Resolver) Fight(heroes, enemies *character.Team) (Result, error) {
	return r.Run(NewBattle(heroes, enemies))
}

// Run plays turns until one team is defeated. The battle stops the moment
// the last member of either team falls, even mid-round. Errors from the
// decision provider, including rules.ErrQuit, abort the battle; in that case
// no battle_end event is published.
func (r *Resolver) Run(b *Battle) (Result, error) {
	title := KindBattle
	if b.boss {
		title = KindBossBattle
	}
	announcer := b.announcer()
	if announcer != nil {
		announcer.Notify(rules.EventBattleStart, character.BattleStart{Kind: title, Starter: b.Starter()})
	}
	r.logger.Debug("battle started",
		zap.String("kind", title),
		zap.Int("combatants", len(b.order)))

	cursor := NewTurnCursor(b.order)
	turns := 0
	for b.state == StateOngoing {
		actor := cursor.Next()
		if actor == nil {
			break
		}
		turns++
		if err := r.takeTurn(b, actor); err != nil {
			r.logger.Debug("battle aborted",
				zap.String("actor", actor.Name()),
				zap.Int("round", cursor.Round()),
				zap.Error(err))
			return Result{}, err
		}
		b.settle()
	}

	result := Result{
		HeroTeamWon: b.state == StateHeroTeamWon,
		Boss:        b.boss,
		Rounds:      cursor.Round(),
		Turns:       turns,
	}
	if announcer != nil {
		announcer.Notify(rules.EventBattleEnd, result)
	}
	r.logger.Debug("battle ended",
		zap.Stringer("state", b.state),
		zap.Int("rounds", result.Rounds),
		zap.Int("turns", turns))
	return result, nil
}

func (r *Resolver) takeTurn(b *Battle, actor *character.Character) error {
	opponents := b.opponentsOf(actor)
	if !actor.Kind().PlayerControlled() {
		err := PolicyFor(actor.Kind()).Act(r.rng, actor, opponents)
		if errors.Is(err, errNoOpponents) {
			return nil
		}
		return err
	}
	return r.playerTurn(actor, opponents)
}

func (r *Resolver) playerTurn(actor *character.Character, opponents []*character.Character) error {
	if r.decisions == nil {
		return fmt.Errorf("%s: no decision provider", actor.Name())
	}

	action, err := rules.Select("action",
		func() (Action, error) { return r.decisions.ChooseAction(actor, opponents, actor.Inventory()) },
		func(a Action) bool { return a.ValidFor(actor, opponents) },
		func(notice rules.InvalidChoice) { actor.Notify(rules.EventInvalidChoice, notice) },
	)
	if err != nil {
		return fmt.Errorf("%s turn: %w", actor.Name(), err)
	}

	r.logger.Debug("player action",
		zap.String("actor", actor.Name()),
		zap.Stringer("action", action.Kind))

	switch action.Kind {
	case ActionAttack:
		return actor.Attack(r.rng, action.Target, action.Weapon, r.decisions)
	case ActionHeal:
		actor.Heal(PlayerHeal)
	case ActionUseItem:
		actor.UseConsumable(action.Item)
	case ActionPass:
		actor.Notify(rules.EventPass, nil)
	case ActionQuit:
		actor.Notify(rules.EventExitGame, nil)
		return rules.ErrQuit
	}
	return nil
}
