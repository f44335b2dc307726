// Package listener provides a minimal publish/subscribe primitive whose
// subscriber edges are weak: a Set never keeps its listeners alive. Listener
// lifetime is owned by whatever holds a strong reference to the listener.
package listener

import "weak"

// Listener receives events published by a Set.
type Listener[C any] interface {
	OnEvent(ctx C) error
}

// Set is a set of weakly referenced listeners of type *T. The zero value is
// ready to use. A Set is not safe for concurrent use.
type Set[T any, PT interface {
	*T
	Listener[C]
}, C any] struct {
	listeners map[weak.Pointer[T]]struct{}
}

// Add registers l. Adding the same listener twice has no further effect.
func (s *Set[T, PT, C]) Add(l PT) {
	if l == nil {
		return
	}
	if s.listeners == nil {
		s.listeners = make(map[weak.Pointer[T]]struct{})
	}
	s.listeners[weak.Make((*T)(l))] = struct{}{}
}

// Notify calls OnEvent on every live listener. Listeners that have been
// garbage collected are dropped without being invoked. Iteration order is
// unspecified. The first error stops the fan-out and is returned.
func (s *Set[T, PT, C]) Notify(ctx C) error {
	if len(s.listeners) == 0 {
		return nil
	}

	// OnEvent may reach back into this set, so iterate over a snapshot.
	snapshot := make([]weak.Pointer[T], 0, len(s.listeners))
	for wp := range s.listeners {
		snapshot = append(snapshot, wp)
	}

	for _, wp := range snapshot {
		l := wp.Value()
		if l == nil {
			delete(s.listeners, wp)
			continue
		}
		if err := PT(l).OnEvent(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of live listeners, pruning dead entries.
func (s *Set[T, PT, C]) Len() int {
	for wp := range s.listeners {
		if wp.Value() == nil {
			delete(s.listeners, wp)
		}
	}
	return len(s.listeners)
}
