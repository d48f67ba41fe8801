package universe

// DomainEvent is a fact about a completed primary mutation. The store emits
// events after the mutation is applied; subscribers run synchronously in
// emission order, outside the store's lock, so they may call back into the
// store.
type DomainEvent interface{}

type AssignmentAdded struct {
	Assignment Assignment
}

type AssignmentDeleted struct {
	ID string
}

type EventAdded struct {
	Event Event
}

type EventDeleted struct {
	ID string
}

type MessageAdded struct {
	Message ChatMessage
}

type MessageRead struct {
	MessageID string
}

type FriendStatusChanged struct {
	FriendID string
	Status   FriendStatus
}

// Subscribe registers a handler for every subsequent domain event. Handlers
// are invoked on the mutating goroutine before the mutator returns.
func (s *Store) Subscribe(fn func(DomainEvent)) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

func (s *Store) publish(events ...DomainEvent) {
	s.mu.RLock()
	subs := make([]func(DomainEvent), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.RUnlock()
	for _, event := range events {
		for _, fn := range subs {
			fn(event)
		}
	}
}
