// Package combat resolves battles between two teams: turn order, player and
// AI actions, and the end-of-battle outcome.
package combat

import (
	"fmt"

	"github.com/pathfall/pathfall/internal/game/character"
)

// ActionKind identifies what a combatant does on its turn.
type ActionKind int

const (
	ActionAttack ActionKind = iota + 1
	ActionHeal
	ActionUseItem
	ActionPass
	ActionQuit
)

var actionKindNames = map[ActionKind]string{
	ActionAttack:  "attack",
	ActionHeal:    "heal",
	ActionUseItem: "use item",
	ActionPass:    "pass",
	ActionQuit:    "exit game",
}

func (k ActionKind) String() string {
	if name, ok := actionKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ACTION_%d", int(k))
}

// ActionKinds lists the player actions in menu order.
var ActionKinds = []ActionKind{ActionAttack, ActionPass, ActionHeal, ActionUseItem, ActionQuit}

// PlayerHeal is the health restored by the heal action.
const PlayerHeal = 20

// Action is a player's decision for one turn. Target and Weapon are only
// read for ActionAttack, Item only for ActionUseItem.
type Action struct {
	Kind   ActionKind
	Target *character.Character
	Weapon *character.Weapon
	Item   character.Consumable
}

// Attack builds an attack action. weapon may be nil for an unarmed attack.
func Attack(target *character.Character, weapon *character.Weapon) Action {
	return Action{Kind: ActionAttack, Target: target, Weapon: weapon}
}

// Heal builds a heal action.
func Heal() Action { return Action{Kind: ActionHeal} }

// UseItem builds an action applying a consumable from the actor's inventory.
func UseItem(item character.Consumable) Action {
	return Action{Kind: ActionUseItem, Item: item}
}

// Pass builds a pass action.
func Pass() Action { return Action{Kind: ActionPass} }

// Quit builds the action that ends the session.
func Quit() Action { return Action{Kind: ActionQuit} }

// ValidFor reports whether the action can be played by actor against the
// given alive opponents.
func (a Action) ValidFor(actor *character.Character, opponents []*character.Character) bool {
	switch a.Kind {
	case ActionAttack:
		if a.Target == nil || !a.Target.IsAlive() || !contains(opponents, a.Target) {
			return false
		}
		return a.Weapon == nil || actor.HasItem(a.Weapon)
	case ActionUseItem:
		return a.Item != nil && actor.HasItem(a.Item)
	case ActionHeal, ActionPass, ActionQuit:
		return true
	default:
		return false
	}
}

func contains(list []*character.Character, c *character.Character) bool {
	for _, m := range list {
		if m == c {
			return true
		}
	}
	return false
}

// ActionChooser supplies the actions of player-controlled combatants.
type ActionChooser interface {
	ChooseAction(actor *character.Character, opponents []*character.Character, inventory []character.Item) (Action, error)
}

// Decisions is everything a battle asks of the player.
type Decisions interface {
	ActionChooser
	character.UpgradeChooser
}
