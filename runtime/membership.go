package runtime

import (
	"chat-relay/domain"

	"github.com/samber/lo"
)

// Set holds the members of one room, one handle per user.
type Set map[domain.UserID]*Outbox

type Member struct {
	UserID domain.UserID
	Outbox *Outbox
}

// Membership maps rooms to their members.
// A room exists only while it has at least one member.
// It is owned by the Coordinator goroutine and is not safe for concurrent use.
type Membership struct {
	rooms map[domain.RoomID]Set
}

func NewMembership() *Membership {
	return &Membership{rooms: make(map[domain.RoomID]Set)}
}

// Join inserts the user in the room, creating the room on the fly.
// It returns false when the user was already a member through the same handle.
// A different handle for the same user replaces the previous one.
func (m *Membership) Join(roomID domain.RoomID, userID domain.UserID, handle *Outbox) bool {
	members, ok := m.rooms[roomID]
	if !ok {
		members = make(Set)
		m.rooms[roomID] = members
	}
	if current, ok := members[userID]; ok && current == handle {
		return false
	}
	members[userID] = handle
	return true
}

// Leave removes the user from the room. When handle is not nil the removal
// only happens if it matches the member's handle.
// If no one is left in the room, the room entry is removed entirely.
func (m *Membership) Leave(roomID domain.RoomID, userID domain.UserID, handle *Outbox) bool {
	members, ok := m.rooms[roomID]
	if !ok {
		return false
	}
	current, ok := members[userID]
	if !ok || (handle != nil && current != handle) {
		return false
	}
	delete(members, userID)
	if len(members) == 0 {
		delete(m.rooms, roomID)
	}
	return true
}

// Members returns a snapshot of the room, nil if the room doesn't exist.
func (m *Membership) Members(roomID domain.RoomID) []Member {
	members, ok := m.rooms[roomID]
	if !ok {
		return nil
	}
	return lo.MapToSlice(members, func(userID domain.UserID, handle *Outbox) Member {
		return Member{UserID: userID, Outbox: handle}
	})
}

func (m *Membership) Member(roomID domain.RoomID, userID domain.UserID) (*Outbox, bool) {
	handle, ok := m.rooms[roomID][userID]
	return handle, ok
}

func (m *Membership) IsMember(roomID domain.RoomID, userID domain.UserID) bool {
	_, ok := m.Member(roomID, userID)
	return ok
}

func (m *Membership) Rooms() []domain.RoomID {
	return lo.Keys(m.rooms)
}

func (m *Membership) Len() int {
	return len(m.rooms)
}

func (m *Membership) clear() {
	clear(m.rooms)
}
