// Package event provides a small typed publish/subscribe helper.
package event

import "sync"

// Emitter delivers values of type E to subscribed handlers.
// Handlers run synchronously on the emitting goroutine, in subscription order.
type Emitter[E any] struct {
	// +checklocks:mu
	handlers []subscription[E]
	// +checklocks:mu
	nextID uint64
	mu     sync.RWMutex
}

type subscription[E any] struct {
	id uint64
	fn func(E)
}

// Subscribe registers handler and returns a function that removes it.
// Calling the returned function more than once is a no-op.
func (e *Emitter[E]) Subscribe(handler func(E)) (unsubscribe func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextID++
	id := e.nextID
	e.handlers = append(e.handlers, subscription[E]{id: id, fn: handler})

	var once sync.Once
	return func() {
		once.Do(func() { e.remove(id) })
	}
}

func (e *Emitter[E]) remove(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, s := range e.handlers {
		if s.id == id {
			e.handlers = append(e.handlers[:i:i], e.handlers[i+1:]...)
			return
		}
	}
}

// Len returns the number of subscribed handlers.
func (e *Emitter[E]) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.handlers)
}

// Emit sends v to every handler subscribed at the time of the call.
// Handlers may subscribe or unsubscribe while being called; changes take
// effect from the next Emit. Must not be called with lock held.
func (e *Emitter[E]) Emit(v E) {
	e.mu.RLock()
	handlers := make([]subscription[E], len(e.handlers))
	copy(handlers, e.handlers)
	e.mu.RUnlock()

	for _, h := range handlers {
		h.fn(v)
	}
}
