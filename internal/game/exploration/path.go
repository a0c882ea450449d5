// Package exploration generates the stages of a zone: the paths offered at
// each stage, the event each chosen path produces and the final boss.
package exploration

import (
	"fmt"

	"github.com/pathfall/pathfall/internal/game/character"
	"github.com/pathfall/pathfall/internal/game/random"
)

// Difficulty controls the event odds of a path.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// EventKind is what happens on a chosen path.
type EventKind string

const (
	EventCombat EventKind = "combat"
	EventExp    EventKind = "exp"
	EventWeapon EventKind = "weapon"
	EventHeal   EventKind = "heal"
)

type weightedEvent struct {
	kind   EventKind
	weight float64
}

// eventTables are kept as ordered slices so draws replay for a given seed.
var eventTables = map[Difficulty][]weightedEvent{
	DifficultyEasy: {
		{EventExp, 0.35},
		{EventHeal, 0.25},
		{EventWeapon, 0.25},
		{EventCombat, 0.15},
	},
	DifficultyNormal: {
		{EventCombat, 0.30},
		{EventWeapon, 0.25},
		{EventExp, 0.25},
		{EventHeal, 0.20},
	},
	DifficultyHard: {
		{EventCombat, 0.50},
		{EventWeapon, 0.30},
		{EventExp, 0.20},
	},
}

// Event magnitudes used when a PathEvent carries no fixed value.
const (
	MinExpFind  = 15
	MaxExpFind  = 30
	MinHealFind = 20
	MaxHealFind = 40
)

// PathEvent is the event generated for a chosen path. Value and Weapon, when
// set, replace the randomized magnitude.
type PathEvent struct {
	Type   EventKind
	Value  int
	Weapon *character.Weapon
}

// Path is one of the routes offered at a stage.
type Path struct {
	Name        string
	Description string
	Difficulty  Difficulty
	Event       *PathEvent
}

func (p Path) String() string {
	return fmt.Sprintf("%s - %s (%s)", p.Name, p.Description, p.Difficulty)
}

// DrawEvent draws an event type from the path's difficulty table and stores
// the resulting event on the path. Unknown difficulties use the normal table.
func (p *Path) DrawEvent(rng random.Source) *PathEvent {
	table, ok := eventTables[p.Difficulty]
	if !ok {
		table = eventTables[DifficultyNormal]
	}
	weights := make([]float64, len(table))
	for i, entry := range table {
		weights[i] = entry.weight
	}
	p.Event = &PathEvent{Type: table[random.Weighted(rng, weights)].kind}
	return p.Event
}

var pathCatalog = []Path{
	{Name: "Dark Forest", Description: "A gloomy path through ancient trees", Difficulty: DifficultyNormal},
	{Name: "Mountain Pass", Description: "A treacherous climb up rocky slopes", Difficulty: DifficultyHard},
	{Name: "Riverside Trail", Description: "A peaceful path along a flowing river", Difficulty: DifficultyEasy},
	{Name: "Abandoned Mine", Description: "A dark tunnel full of mysteries", Difficulty: DifficultyHard},
	{Name: "Meadow Path", Description: "A sunny trail through open fields", Difficulty: DifficultyEasy},
	{Name: "Ancient Ruins", Description: "Crumbling stones of a forgotten civilization", Difficulty: DifficultyNormal},
	{Name: "Cave System", Description: "A network of dark underground passages", Difficulty: DifficultyHard},
	{Name: "Village Road", Description: "A well-traveled path near settlements", Difficulty: DifficultyEasy},
}

// Number of paths offered per stage.
const (
	MinPaths = 2
	MaxPaths = 4
)

// GeneratePaths offers between MinPaths and MaxPaths distinct paths from the
// catalog, in random order.
func GeneratePaths(rng random.Source) []Path {
	n := random.Between(rng, MinPaths, MaxPaths)
	picked := random.Sample(rng, len(pathCatalog), n)
	paths := make([]Path, len(picked))
	for i, idx := range picked {
		paths[i] = pathCatalog[idx]
	}
	return paths
}

type weaponTemplate struct {
	name      string
	minDamage int
	maxDamage int
}

var weaponCatalog = []weaponTemplate{
	{"Magic Blade", 25, 35},
	{"Flaming Sword", 28, 38},
	{"Ice Staff", 22, 32},
	{"Thunder Axe", 30, 40},
	{"Shadow Dagger", 20, 30},
	{"Holy Mace", 26, 36},
	{"Poison Spear", 24, 34},
	{"Crystal Bow", 27, 37},
}

// RandomWeapon draws a weapon from the treasure catalog with damage in the
// entry's range.
func RandomWeapon(rng random.Source) *character.Weapon {
	tmpl := random.Pick(rng, weaponCatalog)
	return character.NewWeapon(tmpl.name, random.Between(rng, tmpl.minDamage, tmpl.maxDamage))
}
