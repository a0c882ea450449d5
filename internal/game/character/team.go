package character

// Team is an ordered group of characters fighting on the same side. It
// references its members but does not own them.
type Team struct {
	Name    string
	members []*Character
}

// NewTeam creates a team with the given members.
func NewTeam(name string, members ...*Character) *Team {
	t := &Team{Name: name}
	for _, m := range members {
		t.Add(m)
	}
	return t
}

// Add appends a member. Nil and duplicate members are ignored.
func (t *Team) Add(c *Character) {
	if c == nil || t.Has(c) {
		return
	}
	t.members = append(t.members, c)
}

// Remove drops a member, keeping the order of the others.
func (t *Team) Remove(c *Character) {
	for i, m := range t.members {
		if m == c {
			t.members = append(t.members[:i:i], t.members[i+1:]...)
			return
		}
	}
}

// Has reports whether c is a member.
func (t *Team) Has(c *Character) bool {
	for _, m := range t.members {
		if m == c {
			return true
		}
	}
	return false
}

// Members returns a snapshot of the members in team order.
func (t *Team) Members() []*Character {
	cpy := make([]*Character, len(t.members))
	copy(cpy, t.members)
	return cpy
}

// Len returns the number of members.
func (t *Team) Len() int {
	return len(t.members)
}

// IsDefeated reports whether no member has health left. An empty team is
// defeated.
func (t *Team) IsDefeated() bool {
	for _, m := range t.members {
		if m.health > 0 {
			return false
		}
	}
	return true
}

// AliveMembers returns the members with health left, in team order.
func (t *Team) AliveMembers() []*Character {
	alive := make([]*Character, 0, len(t.members))
	for _, m := range t.members {
		if m.health > 0 {
			alive = append(alive, m)
		}
	}
	return alive
}
