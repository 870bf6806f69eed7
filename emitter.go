package logger

import "sync"

// EventRecord is the event fired once for every record the logger creates.
const EventRecord = "record"

// Handler receives a record at creation time.
type Handler func(Record)

type subscription struct {
	id      int
	handler Handler
}

// emitter dispatches named events to ordered subscriber lists.
type emitter struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string][]subscription
}

func newEmitter() *emitter {
	return &emitter{subs: make(map[string][]subscription)}
}

// subscribe registers a handler for an event and returns its id. Handlers
// for the same event are notified in subscription order.
func (e *emitter) subscribe(event string, h Handler) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	e.subs[event] = append(e.subs[event], subscription{id: e.nextID, handler: h})
	return e.nextID
}

// unsubscribe removes the handler with the given id. Unknown ids are ignored.
func (e *emitter) unsubscribe(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for event, list := range e.subs {
		for i, sub := range list {
			if sub.id == id {
				e.subs[event] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// emit notifies every subscriber of the event, in subscription order. The
// handler list is snapshotted first so handlers may subscribe or unsubscribe
// without deadlocking. Delivery is at-most-once; late subscribers never see
// past events.
func (e *emitter) emit(event string, r Record) {
	e.mu.RLock()
	list := e.subs[event]
	handlers := make([]Handler, len(list))
	for i, sub := range list {
		handlers[i] = sub.handler
	}
	e.mu.RUnlock()

	for _, h := range handlers {
		notify(h, r)
	}
}

// notify runs a single handler. A panicking handler is recovered so the
// remaining handlers still run.
func notify(h Handler, r Record) {
	defer func() {
		_ = recover()
	}()
	h(r)
}
