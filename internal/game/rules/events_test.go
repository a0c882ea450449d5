package rules

import (
	"errors"
	"testing"
)

type recordedEvent struct {
	subject string
	event   EventType
	data    any
}

type recorder struct {
	name   string
	events *[]string
	seen   []recordedEvent
}

func (r *recorder) Handle(subject string, event EventType, data any) {
	r.seen = append(r.seen, recordedEvent{subject: subject, event: event, data: data})
	if r.events != nil {
		*r.events = append(*r.events, r.name+":"+string(event))
	}
}

func TestObserversNotifyInRegistrationOrder(t *testing.T) {
	var order []string
	first := &recorder{name: "first", events: &order}
	second := &recorder{name: "second", events: &order}

	var obs Observers[string]
	obs.Add(first)
	obs.Add(second)

	obs.Notify("hero", EventHeal, 5)
	obs.Notify("hero", EventDeath, nil)

	expected := []string{"first:heal", "second:heal", "first:death", "second:death"}
	if len(order) != len(expected) {
		t.Fatalf("expected %d deliveries, got %d", len(expected), len(order))
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Fatalf("delivery %d: expected %s, got %s", i, expected[i], order[i])
		}
	}
	if first.seen[0].subject != "hero" || first.seen[0].data != 5 {
		t.Fatalf("unexpected first delivery: %+v", first.seen[0])
	}
}

func TestObserversRejectDuplicates(t *testing.T) {
	r := &recorder{name: "r"}

	var obs Observers[string]
	obs.Add(r)
	obs.Add(r)
	obs.Add(nil)

	if obs.Len() != 1 {
		t.Fatalf("expected 1 observer, got %d", obs.Len())
	}

	obs.Notify("hero", EventPass, nil)
	if len(r.seen) != 1 {
		t.Fatalf("expected a single delivery, got %d", len(r.seen))
	}
}

func TestObserversRemoveKeepsOrder(t *testing.T) {
	var order []string
	a := &recorder{name: "a", events: &order}
	b := &recorder{name: "b", events: &order}
	c := &recorder{name: "c", events: &order}

	var obs Observers[string]
	obs.Add(a)
	obs.Add(b)
	obs.Add(c)
	obs.Remove(b)
	obs.Remove(&recorder{name: "stranger"})

	if obs.Contains(b) {
		t.Fatal("removed observer still registered")
	}

	obs.Notify("hero", EventPass, nil)
	if len(order) != 2 || order[0] != "a:pass" || order[1] != "c:pass" {
		t.Fatalf("unexpected delivery order after removal: %v", order)
	}
}

type panicking struct{}

func (panicking) Handle(string, EventType, any) { panic("render failed") }

func TestObserversPropagatePanics(t *testing.T) {
	after := &recorder{name: "after"}

	var obs Observers[string]
	obs.Add(panicking{})
	obs.Add(after)

	defer func() {
		if recover() == nil {
			t.Fatal("expected observer panic to reach the caller")
		}
		if len(after.seen) != 0 {
			t.Fatal("observers after a failing one must not run")
		}
	}()
	obs.Notify("hero", EventAttack, nil)
}

func TestEventIsTerminal(t *testing.T) {
	if !EventBattleEnd.IsTerminal() {
		t.Fatal("EventBattleEnd should be terminal")
	}
	if !EventEndClassicMode.IsTerminal() {
		t.Fatal("EventEndClassicMode should be terminal")
	}
	if EventAttack.IsTerminal() {
		t.Fatal("EventAttack should not be terminal")
	}
	if EventHeal.IsTerminal() {
		t.Fatal("EventHeal should not be terminal")
	}
	if !EventBattleStats.IsTerminal() || !EventExitGame.IsTerminal() {
		t.Fatal("defeat summary and exit should be terminal")
	}
}

func TestSelectRetriesThenAccepts(t *testing.T) {
	answers := []int{7, -1, 2}
	var invalid []InvalidChoice

	got, err := Select("path", func() (int, error) {
		v := answers[0]
		answers = answers[1:]
		return v, nil
	}, func(v int) bool { return v >= 0 && v < 3 }, func(c InvalidChoice) {
		invalid = append(invalid, c)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if len(invalid) != 2 || invalid[0].Attempt != 1 || invalid[1].Attempt != 2 || invalid[1].Decision != "path" {
		t.Fatalf("unexpected invalid notices: %+v", invalid)
	}
}

func TestSelectGivesUpAfterThreeInvalid(t *testing.T) {
	calls := 0
	_, err := Select("upgrade", func() (int, error) {
		calls++
		return 99, nil
	}, func(int) bool { return false }, nil)

	if !errors.Is(err, ErrProtocolViolation) {
		t.Fatalf("expected ErrProtocolViolation, got %v", err)
	}
	if calls != MaxInvalidSelections {
		t.Fatalf("expected %d requests, got %d", MaxInvalidSelections, calls)
	}
}

func TestSelectPropagatesQuit(t *testing.T) {
	_, err := Select("action", func() (int, error) {
		return 0, ErrQuit
	}, func(int) bool { return true }, nil)
	if !errors.Is(err, ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}
}
