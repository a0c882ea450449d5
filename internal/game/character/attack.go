package character

import (
	"github.com/pathfall/pathfall/internal/game/random"
	"github.com/pathfall/pathfall/internal/game/rules"
)

// AttackData is the payload of rules.EventAttack. Weapon is nil for an
// unarmed attack.
type AttackData struct {
	Target *Character
	Weapon *Weapon
}

// BattleStart is the payload of rules.EventBattleStart.
type BattleStart struct {
	Kind    string // "BATTLE START" or "BOSS BATTLE"
	Starter *Character
}

// RandomizeDamage returns a uniform value in [floor(0.9*base), floor(1.1*base)].
func RandomizeDamage(rng random.Source, base int) int {
	base = max(base, 0)
	return random.Between(rng, base*9/10, base*11/10)
}

// Attack hits target once, with weapon if it is not nil. Landing the blow
// that kills the target grants KillReward experience and may level the attacker up through upgrades.
func (c *Character) Attack(rng random.Source, target *Character, weapon *Weapon, upgrades UpgradeChooser) error {
	base := c.damage
	if weapon != nil {
		base += weapon.Damage
	}
	amount := RandomizeDamage(rng, base)

	wasAlive := target.IsAlive()
	c.Notify(rules.EventAttack, AttackData{Target: target, Weapon: weapon})
	target.TakeDamage(amount)

	if wasAlive && !target.IsAlive() {
		return c.GainExperience(KillReward, upgrades)
	}
	return nil
}
