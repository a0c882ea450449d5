package character

import (
	"testing"

	"github.com/pathfall/pathfall/internal/game/random"
	"github.com/stretchr/testify/assert"
)

func member(name string, health int) *Character {
	return New(random.New(3), Spec{Name: name, Health: health, Damage: 5, Speed: 10})
}

func TestTeamWithOneSurvivorIsNotDefeated(t *testing.T) {
	fallen := member("Fallen", 10)
	fallen.TakeDamage(10)
	survivor := member("Survivor", 10)

	team := NewTeam("Heroes", fallen, survivor)

	assert.False(t, team.IsDefeated())
	assert.Equal(t, []*Character{survivor}, team.AliveMembers())
}

func TestTeamDefeated(t *testing.T) {
	a := member("A", 5)
	b := member("B", 5)
	team := NewTeam("Enemies", a, b)

	a.TakeDamage(5)
	assert.False(t, team.IsDefeated())
	b.TakeDamage(50)
	assert.True(t, team.IsDefeated())
	assert.Empty(t, team.AliveMembers())

	assert.True(t, NewTeam("Empty").IsDefeated())
}

func TestTeamMembership(t *testing.T) {
	a := member("A", 5)
	b := member("B", 5)
	c := member("C", 5)

	team := NewTeam("Heroes", a, b, a, nil)
	assert.Equal(t, 2, team.Len())

	team.Add(c)
	assert.Equal(t, []*Character{a, b, c}, team.Members())

	team.Remove(b)
	assert.False(t, team.Has(b))
	assert.Equal(t, []*Character{a, c}, team.Members())

	snapshot := team.Members()
	snapshot[0] = nil
	assert.Same(t, a, team.Members()[0], "Members returns a copy")
}
