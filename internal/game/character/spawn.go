package character

import (
	"github.com/pathfall/pathfall/internal/game/random"
)

var (
	enemyNames = []string{"Bandit", "Wolf", "Spider", "Skeleton", "Goblin"}
	enemyTypes = []string{"warrior", "beast", "undead", "monster"}
	bossNames  = []string{"Demon Lord", "Ancient Dragon", "Lich King", "Dark Sorcerer", "Giant Troll"}
)

// Enemy scaling rules.
const (
	enemyBaseHealth      = 80
	enemyExpPerHealth    = 15
	enemyMinDamage       = 12
	enemyMaxDamage       = 18
	enemyWeaponChance    = 0.4
	enemyWeaponMinDamage = 15
	enemyWeaponMaxDamage = 20
	bossWeaponBonus      = 15
)

// Starter hero stats.
const (
	StarterHealth       = 80
	StarterDamage       = 15
	StarterWeaponDamage = 18
)

// NewStarterHero creates the hero a new session starts with.
func NewStarterHero(rng random.Source, name string) *Character {
	hero := New(rng, Spec{
		Name:   name,
		Type:   "warrior",
		Kind:   KindHero,
		Health: StarterHealth,
		Damage: StarterDamage,
	})
	hero.AddItem(NewWeapon("Iron Sword", StarterWeaponDamage))
	return hero
}

// NewEnemy creates a regular enemy scaled from the hero's experience.
func NewEnemy(rng random.Source, hero *Character) *Character {
	name := random.Pick(rng, enemyNames)
	typ := random.Pick(rng, enemyTypes)
	multiplier := 0.7 + 0.3*rng.Float64()
	exp := int(float64(hero.Experience()) * multiplier)

	enemy := New(rng, Spec{
		Name:       name,
		Type:       typ,
		Kind:       KindEnemy,
		Health:     enemyBaseHealth + exp/enemyExpPerHealth,
		Damage:     random.Between(rng, enemyMinDamage, enemyMaxDamage),
		Experience: exp,
	})
	if random.Chance(rng, enemyWeaponChance) {
		enemy.AddItem(NewWeapon("Rusty Sword", random.Between(rng, enemyWeaponMinDamage, enemyWeaponMaxDamage)))
	}
	return enemy
}

// NewBoss creates the end-of-zone boss from the hero's current stats.
//
// The health upgrade is written straight to the stat after the boss was
// created at its base maximum, so a fresh boss starts below MaxHealth.
func NewBoss(rng random.Source, hero *Character) *Character {
	name := random.Pick(rng, bossNames)
	return newBossNamed(rng, name, hero)
}

func newBossNamed(rng random.Source, name string, hero *Character) *Character {
	health := hero.MaxHealth() * 12 / 10
	damage := hero.Damage()

	boss := New(rng, Spec{
		Name:       name,
		Type:       "boss",
		Kind:       KindBoss,
		Health:     health,
		Damage:     damage,
		Experience: hero.Experience() * 11 / 10,
	})
	boss.AddItem(NewWeapon("Legendary Axe", damage+bossWeaponBonus))
	boss.healthUpgrade = health * 3 / 10
	return boss
}
