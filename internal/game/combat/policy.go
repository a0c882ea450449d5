package combat

import (
	"errors"

	"github.com/pathfall/pathfall/internal/game/character"
	"github.com/pathfall/pathfall/internal/game/random"
	"github.com/pathfall/pathfall/internal/game/rules"
)

// Policy plays the turn of a combatant that is not player controlled.
type Policy struct {
	AttackWeight       float64
	HealWeight         float64
	HealAmount         int
	DoubleAttackChance float64 // chance of a second attack on the same target
}

var (
	// EnemyPolicy attacks or heals with equal odds.
	EnemyPolicy = Policy{AttackWeight: 0.5, HealWeight: 0.5, HealAmount: 15}

	// BossPolicy favours attacking and may strike twice.
	BossPolicy = Policy{AttackWeight: 0.8, HealWeight: 0.2, HealAmount: 25, DoubleAttackChance: 0.3}
)

// PolicyFor returns the policy that plays characters of the given kind.
func PolicyFor(kind character.Kind) Policy {
	if kind == character.KindBoss {
		return BossPolicy
	}
	return EnemyPolicy
}

var errNoOpponents = errors.New("no opponent to attack")

// Act plays one turn for actor against the alive opponents.
func (p Policy) Act(rng random.Source, actor *character.Character, opponents []*character.Character) error {
	if random.Weighted(rng, []float64{p.AttackWeight, p.HealWeight}) != 0 {
		actor.Heal(p.HealAmount)
		return nil
	}
	if len(opponents) == 0 {
		return errNoOpponents
	}

	upgrades := RandomUpgrades{rng: rng}
	weapon := random.Pick(rng, append(actor.Weapons(), nil))
	target := random.Pick(rng, opponents)
	if err := actor.Attack(rng, target, weapon, upgrades); err != nil {
		return err
	}

	if p.DoubleAttackChance > 0 && random.Chance(rng, p.DoubleAttackChance) {
		actor.Notify(rules.EventBossDoubleAttack, target)
		return actor.Attack(rng, target, weapon, upgrades)
	}
	return nil
}

// RandomUpgrades picks level-up upgrades uniformly. It serves combatants
// that have no player behind them.
type RandomUpgrades struct {
	rng random.Source
}

// NewRandomUpgrades creates an upgrade chooser drawing from rng.
func NewRandomUpgrades(rng random.Source) RandomUpgrades {
	return RandomUpgrades{rng: rng}
}

// ChooseUpgrade implements character.UpgradeChooser.
func (u RandomUpgrades) ChooseUpgrade(*character.Character) (character.Upgrade, error) {
	return random.Pick(u.rng, character.Upgrades), nil
}
