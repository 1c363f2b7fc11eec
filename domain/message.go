// Package domain contains core concepts of the chat relay.
// This file defines relay messages and their wire envelope.
// Messages are immutable once built: they are serialized once and the same
// bytes are copied to every recipient.
package domain

import (
	"chat-relay/errors"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type UserID string

type Kind string

const (
	KindText    Kind = "text"
	KindTyping  Kind = "typing"
	KindRead    Kind = "read"
	KindJoin    Kind = "join"
	KindLeave   Kind = "leave"
	KindSystem  Kind = "system"
	KindPrivate Kind = "private"
)

// Valid reports whether k belongs to the closed set of relay kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindText, KindTyping, KindRead, KindJoin, KindLeave, KindSystem, KindPrivate:
		return true
	}
	return false
}

// Message is the outbound envelope shared by every kind.
// Kind-specific fields:
//   - text, private: Content (Lang when detected)
//   - read: MessageID
//   - join, leave: UserID
//   - system: Content, no SenderID
type Message struct {
	ID          uuid.UUID `json:"id"`
	Kind        Kind      `json:"kind"`
	RoomID      RoomID    `json:"room_id,omitempty"`
	SenderID    UserID    `json:"sender_id,omitempty"`
	RecipientID UserID    `json:"recipient_id,omitempty"`
	UserID      UserID    `json:"user_id,omitempty"`
	Content     string    `json:"content,omitempty"`
	MessageID   string    `json:"message_id,omitempty"`
	Lang        string    `json:"lang,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

func newMessage(kind Kind, room RoomID, sender UserID, at time.Time) Message {
	return Message{
		ID:        uuid.New(),
		Kind:      kind,
		RoomID:    room,
		SenderID:  sender,
		Timestamp: at.UTC(),
	}
}

func NewText(room RoomID, sender UserID, content, lang string, at time.Time) Message {
	m := newMessage(KindText, room, sender, at)
	m.Content = content
	m.Lang = lang
	return m
}

func NewTyping(room RoomID, sender UserID, at time.Time) Message {
	return newMessage(KindTyping, room, sender, at)
}

func NewRead(room RoomID, sender UserID, messageID string, at time.Time) Message {
	m := newMessage(KindRead, room, sender, at)
	m.MessageID = messageID
	return m
}

func NewJoin(room RoomID, user UserID, at time.Time) Message {
	m := newMessage(KindJoin, room, user, at)
	m.UserID = user
	return m
}

func NewLeave(room RoomID, user UserID, at time.Time) Message {
	m := newMessage(KindLeave, room, user, at)
	m.UserID = user
	return m
}

// NewSystem builds a message without sender: it is delivered to every member.
func NewSystem(room RoomID, content string, at time.Time) Message {
	m := newMessage(KindSystem, room, "", at)
	m.Content = content
	return m
}

func NewPrivate(from, to UserID, content, lang string, at time.Time) Message {
	m := newMessage(KindPrivate, "", from, at)
	m.RecipientID = to
	m.Content = content
	m.Lang = lang
	return m
}

// Encode serializes the message for the outbound channels.
func (m Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// DecodeMessage parses an outbound envelope by inspecting its kind discriminant
// and checking the kind-specific fields are present.
func DecodeMessage(data []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return Message{}, fmt.Errorf("%w: %v", errors.ErrInvalidFrame, err)
	}
	if err := m.validate(); err != nil {
		return Message{}, err
	}
	return m, nil
}

func (m Message) validate() error {
	if !m.Kind.Valid() {
		return fmt.Errorf("%w: %q", errors.ErrUnknownKind, m.Kind)
	}
	switch m.Kind {
	case KindText, KindTyping, KindRead:
		if m.RoomID == "" || m.SenderID == "" {
			return fmt.Errorf("%w: %s requires room_id and sender_id", errors.ErrInvalidFrame, m.Kind)
		}
		if m.Kind == KindRead && m.MessageID == "" {
			return fmt.Errorf("%w: read requires message_id", errors.ErrInvalidFrame)
		}
	case KindJoin, KindLeave:
		if m.RoomID == "" || m.UserID == "" {
			return fmt.Errorf("%w: %s requires room_id and user_id", errors.ErrInvalidFrame, m.Kind)
		}
	case KindSystem:
		if m.RoomID == "" || m.SenderID != "" {
			return fmt.Errorf("%w: system requires room_id and no sender", errors.ErrInvalidFrame)
		}
	case KindPrivate:
		if m.SenderID == "" || m.RecipientID == "" {
			return fmt.Errorf("%w: private requires sender_id and recipient_id", errors.ErrInvalidFrame)
		}
	}
	return nil
}
