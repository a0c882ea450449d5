package character

import (
	"fmt"

	"github.com/pathfall/pathfall/internal/game/rules"
)

// levelThresholds are the experience totals at which levels 2..10 start.
var levelThresholds = []int{20, 50, 100, 200, 500, 1000, 2000, 5000, 10000}

// KillReward is the experience an attacker gains for a kill.
const KillReward = 20

// Upgrade amounts applied on level up.
const (
	MaxHealthUpgrade = 20
	DamageUpgrade    = 5
)

// LevelFor returns the level reached with the given experience.
func LevelFor(experience int) int {
	level := 1
	for _, threshold := range levelThresholds {
		if experience < threshold {
			break
		}
		level++
	}
	return level
}

// Level returns the character's current level.
func (c *Character) Level() int {
	return LevelFor(c.experience)
}

// Upgrade is a permanent stat increase chosen on level up.
type Upgrade int

const (
	UpgradeMaxHealth Upgrade = iota + 1
	UpgradeDamage
)

// Upgrades lists the choices offered on level up, in display order.
var Upgrades = []Upgrade{UpgradeMaxHealth, UpgradeDamage}

// Valid reports whether u is one of the offered upgrades.
func (u Upgrade) Valid() bool {
	return u == UpgradeMaxHealth || u == UpgradeDamage
}

func (u Upgrade) String() string {
	switch u {
	case UpgradeMaxHealth:
		return "Increase Max HP"
	case UpgradeDamage:
		return "Increase Damage"
	default:
		return fmt.Sprintf("UPGRADE_%d", int(u))
	}
}

// UpgradeChooser picks the upgrade applied when a character levels up.
type UpgradeChooser interface {
	ChooseUpgrade(actor *Character) (Upgrade, error)
}

// GainExperience adds experience and levels the character up once if a
// threshold was crossed.
func (c *Character) GainExperience(amount int, upgrades UpgradeChooser) error {
	if amount <= 0 {
		return nil
	}
	before := c.Level()
	c.experience += amount
	c.Notify(rules.EventXPGained, amount)
	if c.Level() > before {
		return c.LevelUp(upgrades)
	}
	return nil
}

// LevelUp announces the new level and applies the upgrade picked by
// upgrades. Invalid picks are re-requested; errors from the chooser,
// including rules.ErrQuit, are returned without applying anything.
func (c *Character) LevelUp(upgrades UpgradeChooser) error {
	c.Notify(rules.EventLevelUp, c.Level())
	if upgrades == nil {
		return fmt.Errorf("%s: level up: no upgrade chooser", c.name)
	}

	choice, err := rules.Select("upgrade",
		func() (Upgrade, error) { return upgrades.ChooseUpgrade(c) },
		Upgrade.Valid,
		func(notice rules.InvalidChoice) { c.Notify(rules.EventInvalidChoice, notice) },
	)
	if err != nil {
		return fmt.Errorf("%s: level up: %w", c.name, err)
	}

	switch choice {
	case UpgradeMaxHealth:
		if err := c.IncreaseMaxHealth(c.MaxHealth() + MaxHealthUpgrade); err != nil {
			return err
		}
		c.health = c.MaxHealth()
	case UpgradeDamage:
		c.damage += DamageUpgrade
		c.Notify(rules.EventDamageIncreased, c.damage)
	}
	return nil
}
