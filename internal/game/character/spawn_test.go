package character

import (
	"testing"

	"github.com/pathfall/pathfall/internal/game/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewBossScalesFromHero(t *testing.T) {
	rng := random.New(11)
	hero := New(rng, Spec{Name: "John", Kind: KindHero, Health: 100, Damage: 15, Experience: 100})

	boss := newBossNamed(rng, "Lich King", hero)

	assert.Equal(t, KindBoss, boss.Kind())
	assert.Equal(t, "Lich King", boss.Name())
	assert.Equal(t, 110, boss.Experience())
	assert.Equal(t, 120, boss.BaseMaxHealth())
	assert.Equal(t, 36, boss.HealthUpgrade())
	assert.Equal(t, 156, boss.MaxHealth())
	assert.Equal(t, 120, boss.Health(), "the upgrade is not added to current health")
	assert.Equal(t, 15, boss.Damage())

	weapons := boss.Weapons()
	require.Len(t, weapons, 1)
	assert.Equal(t, "Legendary Axe", weapons[0].Name)
	assert.Equal(t, 30, weapons[0].Damage)
}

func TestNewBossPicksCatalogName(t *testing.T) {
	rng := random.New(4)
	hero := NewStarterHero(rng, "John")
	boss := NewBoss(rng, hero)
	assert.Contains(t, bossNames, boss.Name())
}

func TestNewEnemyStats(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		exp := rapid.IntRange(0, 5000).Draw(t, "exp")
		rng := random.New(seed)
		hero := New(rng, Spec{Name: "John", Kind: KindHero, Health: 100, Damage: 15, Experience: exp})

		enemy := NewEnemy(rng, hero)

		if enemy.Kind() != KindEnemy {
			t.Fatalf("kind = %v", enemy.Kind())
		}
		if enemy.Damage() < enemyMinDamage || enemy.Damage() > enemyMaxDamage {
			t.Fatalf("damage %d outside [%d, %d]", enemy.Damage(), enemyMinDamage, enemyMaxDamage)
		}
		lo, hi := exp*7/10-1, exp
		if enemy.Experience() < lo || enemy.Experience() > hi {
			t.Fatalf("experience %d outside [%d, %d] for hero experience %d", enemy.Experience(), lo, hi, exp)
		}
		if want := enemyBaseHealth + enemy.Experience()/enemyExpPerHealth; enemy.MaxHealth() != want {
			t.Fatalf("max health %d, want %d", enemy.MaxHealth(), want)
		}
		for _, w := range enemy.Weapons() {
			if w.Damage < enemyWeaponMinDamage || w.Damage > enemyWeaponMaxDamage {
				t.Fatalf("weapon damage %d out of range", w.Damage)
			}
		}
	})
}

func TestNewEnemyWeaponChance(t *testing.T) {
	rng := random.New(99)
	hero := NewStarterHero(rng, "John")

	armed := 0
	const trials = 5000
	for range trials {
		if len(NewEnemy(rng, hero).Weapons()) > 0 {
			armed++
		}
	}
	assert.InDelta(t, enemyWeaponChance, float64(armed)/trials, 0.03)
}

func TestNewStarterHero(t *testing.T) {
	hero := NewStarterHero(random.New(1), "John")

	assert.Equal(t, KindHero, hero.Kind())
	assert.Equal(t, StarterHealth, hero.Health())
	assert.Equal(t, StarterDamage, hero.Damage())
	require.Len(t, hero.Weapons(), 1)
	assert.Equal(t, StarterWeaponDamage, hero.Weapons()[0].Damage)
}
