package character

import "fmt"

// Item is anything that can sit in an inventory.
type Item interface {
	ItemName() string
}

// Weapon adds its damage to the wielder's base damage.
type Weapon struct {
	Name   string
	Damage int
}

// NewWeapon creates a weapon.
func NewWeapon(name string, damage int) *Weapon {
	return &Weapon{Name: name, Damage: damage}
}

func (w *Weapon) ItemName() string { return w.Name }

func (w *Weapon) String() string {
	return fmt.Sprintf("%s (DMG: %d)", w.Name, w.Damage)
}

// Consumable is a single-use item applied to a character.
type Consumable interface {
	Item
	Value() int
	Apply(target *Character)
}

// HealPotion heals its target by a fixed value.
type HealPotion struct {
	Name   string
	Amount int
}

// NewHealPotion creates a heal potion.
func NewHealPotion(name string, amount int) *HealPotion {
	return &HealPotion{Name: name, Amount: amount}
}

func (p *HealPotion) ItemName() string { return p.Name }
func (p *HealPotion) Value() int       { return p.Amount }

// Apply heals the target.
func (p *HealPotion) Apply(target *Character) {
	target.Heal(p.Amount)
}

func (p *HealPotion) String() string {
	return fmt.Sprintf("%s (Value: %d)", p.Name, p.Amount)
}

// AddItem appends an item to the inventory.
func (c *Character) AddItem(item Item) {
	if item == nil {
		return
	}
	c.inventory = append(c.inventory, item)
}

// RemoveItem removes the given item by identity. It reports whether the
// item was found.
func (c *Character) RemoveItem(item Item) bool {
	for i, owned := range c.inventory {
		if owned == item {
			c.inventory = append(c.inventory[:i:i], c.inventory[i+1:]...)
			return true
		}
	}
	return false
}

// HasItem reports whether the item is in the inventory.
func (c *Character) HasItem(item Item) bool {
	for _, owned := range c.inventory {
		if owned == item {
			return true
		}
	}
	return false
}

// Inventory returns a snapshot of the inventory.
func (c *Character) Inventory() []Item {
	cpy := make([]Item, len(c.inventory))
	copy(cpy, c.inventory)
	return cpy
}

// Weapons returns the weapons in inventory order.
func (c *Character) Weapons() []*Weapon {
	var weapons []*Weapon
	for _, item := range c.inventory {
		if w, ok := item.(*Weapon); ok {
			weapons = append(weapons, w)
		}
	}
	return weapons
}

// Consumables returns the consumables in inventory order.
func (c *Character) Consumables() []Consumable {
	var consumables []Consumable
	for _, item := range c.inventory {
		if cons, ok := item.(Consumable); ok {
			consumables = append(consumables, cons)
		}
	}
	return consumables
}

// UseConsumable applies a consumable from the inventory to the character and
// removes it. It reports false, without effect, if the item is not owned.
func (c *Character) UseConsumable(item Consumable) bool {
	if !c.HasItem(item) {
		return false
	}
	item.Apply(c)
	c.RemoveItem(item)
	return true
}
