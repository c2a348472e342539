package domcmp

import "slices"

// ListenerID identifies a registered event listener.
type ListenerID uint64

type listener struct {
	id    ListenerID
	owner ID
	fn    Listener
}

type deferredEvent struct {
	name string
	data any
}

// bus maps event names to listeners in registration order. Listeners are
// indexed by owning component so disabling a component drops its listeners
// without scanning every event.
type bus struct {
	listeners map[string][]listener
	events    map[ListenerID]string
	owned     map[ID][]ListenerID
	next      ListenerID
}

func newBus() *bus {
	return &bus{
		listeners: make(map[string][]listener),
		events:    make(map[ListenerID]string),
		owned:     make(map[ID][]ListenerID),
	}
}

func (b *bus) add(event string, owner ID, fn Listener) ListenerID {
	b.next++
	id := b.next
	b.listeners[event] = append(b.listeners[event], listener{id: id, owner: owner, fn: fn})
	b.events[id] = event
	if owner != NoID {
		b.owned[owner] = append(b.owned[owner], id)
	}
	return id
}

func (b *bus) remove(event string, id ListenerID) bool {
	list, ok := b.listeners[event]
	if !ok {
		return false
	}
	i := slices.IndexFunc(list, func(l listener) bool { return l.id == id })
	if i < 0 {
		return false
	}
	owner := list[i].owner
	list = slices.Delete(list, i, i+1)
	if len(list) == 0 {
		delete(b.listeners, event)
	} else {
		b.listeners[event] = list
	}
	delete(b.events, id)
	if owner != NoID {
		b.owned[owner] = slices.DeleteFunc(b.owned[owner], func(x ListenerID) bool { return x == id })
		if len(b.owned[owner]) == 0 {
			delete(b.owned, owner)
		}
	}
	return true
}

// purge drops every listener owned by a component and returns how many
// were removed.
func (b *bus) purge(owner ID) int {
	ids := slices.Clone(b.owned[owner])
	n := 0
	for _, id := range ids {
		if b.remove(b.events[id], id) {
			n++
		}
	}
	delete(b.owned, owner)
	return n
}

func (b *bus) live(id ListenerID) bool {
	_, ok := b.events[id]
	return ok
}

func (b *bus) snapshot(event string) []listener {
	return slices.Clone(b.listeners[event])
}

func (b *bus) count(event string) int {
	return len(b.listeners[event])
}

// AddEventListener subscribes fn to event. The listener has no owning
// component and stays until RemoveEventListener.
func (e *Engine) AddEventListener(event string, fn Listener) ListenerID {
	return e.bus.add(event, NoID, fn)
}

// RemoveEventListener unsubscribes a listener. It is a no-op, returning
// false, when the event has no listeners or the id is unknown.
func (e *Engine) RemoveEventListener(event string, id ListenerID) bool {
	return e.bus.remove(event, id)
}

// ListenerCount returns the number of listeners subscribed to event.
func (e *Engine) ListenerCount(event string) int {
	return e.bus.count(event)
}

// DispatchEvent delivers data to every listener of event, synchronously and
// in registration order. Before Init completes the event is queued instead
// and delivered, in dispatch order, right after initialization.
func (e *Engine) DispatchEvent(event string, data any) {
	if !e.initialized {
		e.deferred = append(e.deferred, deferredEvent{name: event, data: data})
		e.log.Debug("event deferred", "engine", e.id, "event", event)
		e.emit(TraceEvent{Kind: TraceDefer, Name: event, Data: data})
		return
	}
	e.deliver(event, data)
}

// Deferred returns the number of events waiting for Init.
func (e *Engine) Deferred() int {
	return len(e.deferred)
}

func (e *Engine) deliver(event string, data any) {
	for _, l := range e.bus.snapshot(event) {
		// A listener earlier in this pass may have removed a later one.
		if !e.bus.live(l.id) {
			continue
		}
		owner := ""
		if c := e.Lookup(l.owner); c != nil {
			owner = c.path
		}
		e.emit(TraceEvent{Kind: TraceDeliver, Component: owner, Name: event, Data: data})
		l.fn(data)
	}
}

// flush drains the deferred queue exactly once.
func (e *Engine) flush() {
	queue := e.deferred
	e.deferred = nil
	for _, ev := range queue {
		e.deliver(ev.name, ev.data)
	}
}
