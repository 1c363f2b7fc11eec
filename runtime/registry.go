package runtime

import "chat-relay/domain"

// Sessions maps a user to the outbox of its live connection.
// It is owned by the Coordinator goroutine and is not safe for concurrent use.
type Sessions struct {
	entries map[domain.UserID]*Outbox
}

func NewSessions() *Sessions {
	return &Sessions{entries: make(map[domain.UserID]*Outbox)}
}

// Register associates the user with handle, last register wins.
// The handle it replaces, if any, is returned so the caller can close it.
func (s *Sessions) Register(userID domain.UserID, handle *Outbox) (evicted *Outbox) {
	previous, ok := s.entries[userID]
	s.entries[userID] = handle
	if ok && previous != handle {
		return previous
	}
	return nil
}

// Unregister removes the association only when the stored handle is the caller's.
// A stale unregister racing a newer register for the same user is ignored.
func (s *Sessions) Unregister(userID domain.UserID, handle *Outbox) bool {
	current, ok := s.entries[userID]
	if !ok || current != handle {
		return false
	}
	delete(s.entries, userID)
	return true
}

func (s *Sessions) Lookup(userID domain.UserID) (*Outbox, bool) {
	handle, ok := s.entries[userID]
	return handle, ok
}

func (s *Sessions) Len() int {
	return len(s.entries)
}

// drain removes every session and returns their handles.
func (s *Sessions) drain() []*Outbox {
	handles := make([]*Outbox, 0, len(s.entries))
	for id, handle := range s.entries {
		handles = append(handles, handle)
		delete(s.entries, id)
	}
	return handles
}
