// Package character holds the stat model shared by every combatant: health,
// damage, experience, inventory and the observer set each character uses to
// publish its state changes.
package character

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pathfall/pathfall/internal/game/random"
	"github.com/pathfall/pathfall/internal/game/rules"
)

// Kind is the behaviour tag of a character. The combat resolver consults it
// to decide whether a turn is played by the decision provider or by an AI
// policy.
type Kind int

const (
	KindHero Kind = iota
	KindEnemy
	KindBoss
)

func (k Kind) String() string {
	switch k {
	case KindHero:
		return "HERO"
	case KindEnemy:
		return "ENEMY"
	case KindBoss:
		return "BOSS"
	default:
		return "UNKNOWN"
	}
}

// PlayerControlled reports whether characters of this kind act through the
// decision provider.
func (k Kind) PlayerControlled() bool {
	return k == KindHero
}

// MinSpeed and MaxSpeed bound the turn speed drawn at creation.
const (
	MinSpeed = 1
	MaxSpeed = 20
)

// Observer receives the events a character publishes.
type Observer = rules.Observer[*Character]

// Spec describes a character to create.
type Spec struct {
	Name       string
	Type       string // faction tag: "warrior", "beast", "boss", ...
	Kind       Kind
	Health     int // base max health; the character starts at full health
	Damage     int
	Experience int
	Speed      int // 0 draws a speed in [MinSpeed, MaxSpeed]
}

// Character is a single combatant.
type Character struct {
	id            string
	name          string
	typ           string
	kind          Kind
	health        int
	baseMaxHealth int
	healthUpgrade int
	damage        int
	experience    int
	speed         int
	inventory     []Item
	observers     rules.Observers[*Character]
}

// New creates a character at full health. Its turn speed is drawn from rng
// unless spec.Speed is set, and its ID is always drawn from rng.
func New(rng random.Source, spec Spec) *Character {
	speed := spec.Speed
	if speed <= 0 {
		speed = random.Between(rng, MinSpeed, MaxSpeed)
	}
	health := max(spec.Health, 0)
	return &Character{
		id:            uuid.Must(uuid.NewRandomFromReader(rng)).String(),
		name:          spec.Name,
		typ:           spec.Type,
		kind:          spec.Kind,
		health:        health,
		baseMaxHealth: health,
		damage:        max(spec.Damage, 0),
		experience:    max(spec.Experience, 0),
		speed:         speed,
		inventory:     make([]Item, 0, 4),
	}
}

func (c *Character) ID() string         { return c.id }
func (c *Character) Name() string       { return c.name }
func (c *Character) Type() string       { return c.typ }
func (c *Character) Kind() Kind         { return c.kind }
func (c *Character) Health() int        { return c.health }
func (c *Character) BaseMaxHealth() int { return c.baseMaxHealth }
func (c *Character) HealthUpgrade() int { return c.healthUpgrade }
func (c *Character) Damage() int        { return c.damage }
func (c *Character) Experience() int    { return c.experience }
func (c *Character) Speed() int         { return c.speed }

// MaxHealth is the base maximum plus every health upgrade.
func (c *Character) MaxHealth() int {
	return c.baseMaxHealth + c.healthUpgrade
}

// IsAlive reports whether the character still has health left.
func (c *Character) IsAlive() bool {
	return c.health > 0
}

// HealthRatio returns Health/MaxHealth, or 0 when MaxHealth is 0.
func (c *Character) HealthRatio() float64 {
	maxHealth := c.MaxHealth()
	if maxHealth <= 0 {
		return 0
	}
	return float64(c.health) / float64(maxHealth)
}

func (c *Character) String() string {
	return fmt.Sprintf("%s (%d/%d HP)", c.name, c.health, c.MaxHealth())
}

// AddObserver registers an observer for this character's events.
func (c *Character) AddObserver(observer Observer) {
	c.observers.Add(observer)
}

// RemoveObserver unregisters an observer.
func (c *Character) RemoveObserver(observer Observer) {
	c.observers.Remove(observer)
}

// Observers returns the registered observers in registration order.
func (c *Character) Observers() []Observer {
	return c.observers.List()
}

// Notify publishes an event with this character as the subject.
func (c *Character) Notify(event rules.EventType, data any) {
	c.observers.Notify(c, event, data)
}

// TakeDamage lowers health by amount, flooring at zero. A character that
// drops to zero publishes EventDeath once; EventDamageTaken always follows
// with the raw amount.
func (c *Character) TakeDamage(amount int) {
	amount = max(amount, 0)
	wasAlive := c.IsAlive()
	c.health = max(c.health-amount, 0)
	if wasAlive && c.health == 0 {
		c.Notify(rules.EventDeath, nil)
	}
	c.Notify(rules.EventDamageTaken, amount)
}

// Heal raises health by amount, capped at MaxHealth. The event carries the
// requested amount, not the amount actually restored.
func (c *Character) Heal(amount int) {
	amount = max(amount, 0)
	c.health = min(c.health+amount, c.MaxHealth())
	c.Notify(rules.EventHeal, amount)
}

// IncreaseMaxHealth raises the maximum to newMax. The difference goes into
// the health upgrade and is also restored to current health. A newMax that
// does not exceed the current maximum is rejected with
// rules.ErrMaxHealthNotRaised and leaves the character untouched.
func (c *Character) IncreaseMaxHealth(newMax int) error {
	increase := newMax - c.MaxHealth()
	if increase <= 0 {
		err := fmt.Errorf("%s: max health %d -> %d: %w", c.name, c.MaxHealth(), newMax, rules.ErrMaxHealthNotRaised)
		c.Notify(rules.EventInvalidOperation, err)
		return err
	}
	c.healthUpgrade += increase
	c.health += increase
	c.Notify(rules.EventIncreaseHP, increase)
	return nil
}
