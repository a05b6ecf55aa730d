package message

import (
	"slices"

	"go.uber.org/zap"
)

// Handler receives a delivered message.
type Handler func(msg Message)

type subscriber struct {
	id      string
	handler Handler
}

// Bus queues messages and delivers them to subscribers once per frame.
//
// SendMessage only enqueues. DispatchMessages delivers everything queued so far to a
// snapshot of the subscribers taken when the dispatch starts; messages sent and
// subscriptions changed from inside a handler take effect on the next dispatch.
// Subscribers of one type are called in the order they subscribed.
//
// A Bus is not safe for concurrent use.
type Bus struct {
	subscribers map[Type][]subscriber
	queue       []Message
	dispatching bool
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[Type][]subscriber),
	}
}

// AddSubscriber registers handler under id for each of the given types. Subscribing an
// id again to a type replaces its handler and keeps its position.
func (b *Bus) AddSubscriber(id string, types []Type, handler Handler) {
	if handler == nil {
		zap.L().Warn("Ignoring subscriber without handler", zap.String("subscriber", id))
		return
	}
	for _, t := range types {
		subs := b.subscribers[t]
		idx := slices.IndexFunc(subs, func(s subscriber) bool { return s.id == id })
		if idx >= 0 {
			subs = slices.Clone(subs)
			subs[idx].handler = handler
			b.subscribers[t] = subs
			continue
		}
		b.subscribers[t] = append(slices.Clip(subs), subscriber{id: id, handler: handler})
	}
}

// RemoveSubscriber unregisters id from the given types.
func (b *Bus) RemoveSubscriber(id string, types []Type) {
	for _, t := range types {
		subs := b.subscribers[t]
		idx := slices.IndexFunc(subs, func(s subscriber) bool { return s.id == id })
		if idx < 0 {
			continue
		}
		subs = slices.Delete(slices.Clone(subs), idx, idx+1)
		if len(subs) == 0 {
			delete(b.subscribers, t)
			continue
		}
		b.subscribers[t] = subs
	}
}

// SendMessage queues msg for the next dispatch.
func (b *Bus) SendMessage(msg Message) {
	if msg == nil {
		return
	}
	b.queue = append(b.queue, msg)
}

// DispatchMessages delivers every queued message in send order.
func (b *Bus) DispatchMessages() {
	if b.dispatching {
		zap.L().Warn("DispatchMessages called while dispatching")
		return
	}
	if len(b.queue) == 0 {
		return
	}

	queue := b.queue
	b.queue = nil

	// Subscriber slices are never written in place, so holding the current ones is
	// enough for a stable view.
	snapshot := make(map[Type][]subscriber, len(b.subscribers))
	for t, subs := range b.subscribers {
		snapshot[t] = subs
	}

	b.dispatching = true
	defer func() { b.dispatching = false }()

	for _, msg := range queue {
		for _, s := range snapshot[msg.Type()] {
			s.handler(msg)
		}
	}
}

// Pending returns the number of queued messages.
func (b *Bus) Pending() int {
	return len(b.queue)
}

// HasSubscriber reports whether id is subscribed to t.
func (b *Bus) HasSubscriber(id string, t Type) bool {
	return slices.ContainsFunc(b.subscribers[t], func(s subscriber) bool { return s.id == id })
}
