package rules

//go:generate go tool mockgen -destination=../mocks/observer_mock.go -package=mocks . Observer

// Observer reacts to events published by a subject of type S.
type Observer[S any] interface {
	Handle(subject S, event EventType, data any)
}

// Observers is an ordered observer set owned by a single subject.
//
// Delivery is synchronous: Notify calls every registered observer in
// registration order on the caller's goroutine and returns once the last
// one has returned. There is no isolation; a panicking observer unwinds
// through Notify into the code that mutated the subject. Adding or removing
// observers from inside Handle while a Notify pass is running is undefined.
//
// Observers are compared with ==, so they must be comparable values
// (pointers in practice).
type Observers[S any] struct {
	list []Observer[S]
}

// Add registers an observer. Adding one already present is a no-op.
func (o *Observers[S]) Add(observer Observer[S]) {
	if observer == nil || o.Contains(observer) {
		return
	}
	o.list = append(o.list, observer)
}

// Remove unregisters an observer, keeping the order of the others.
func (o *Observers[S]) Remove(observer Observer[S]) {
	for i, existing := range o.list {
		if existing == observer {
			o.list = append(o.list[:i:i], o.list[i+1:]...)
			return
		}
	}
}

// Contains reports whether the observer is registered.
func (o *Observers[S]) Contains(observer Observer[S]) bool {
	for _, existing := range o.list {
		if existing == observer {
			return true
		}
	}
	return false
}

// Len returns the number of registered observers.
func (o *Observers[S]) Len() int {
	return len(o.list)
}

// List returns a copy of the registered observers in registration order.
func (o *Observers[S]) List() []Observer[S] {
	cpy := make([]Observer[S], len(o.list))
	copy(cpy, o.list)
	return cpy
}

// Notify delivers the event to all registered observers synchronously.
func (o *Observers[S]) Notify(subject S, event EventType, data any) {
	for _, observer := range o.list {
		observer.Handle(subject, event, data)
	}
}
