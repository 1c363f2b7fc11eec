package domain

import (
	"chat-relay/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMessage_Encode_Decode_Text(t *testing.T) {
	req := require.New(t)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	// Given a text message
	msg := NewText("r1", "alice", "hi", "en", at)

	// When it goes through the wire
	data, err := msg.Encode()
	req.NoError(err)
	decoded, err := DecodeMessage(data)

	// Then every field survives
	req.NoError(err)
	req.Equal(msg, decoded)
	req.Contains(string(data), `"kind":"text"`)
}

func TestMessage_System_HasNoSender(t *testing.T) {
	req := require.New(t)
	msg := NewSystem("r1", "maintenance at noon", time.Now())

	data, err := msg.Encode()
	req.NoError(err)

	req.Empty(msg.SenderID)
	req.NotContains(string(data), "sender_id")
}

func TestMessage_JoinLeave_CarryUser(t *testing.T) {
	req := require.New(t)
	join := NewJoin("r1", "bob", time.Now())
	leave := NewLeave("r1", "bob", time.Now())

	req.Equal(KindJoin, join.Kind)
	req.Equal(UserID("bob"), join.UserID)
	req.Equal(KindLeave, leave.Kind)
	req.Equal(UserID("bob"), leave.UserID)
	req.NotEqual(join.ID, leave.ID)
}

func TestDecodeMessage_Rejects(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  error
	}{
		{name: "not json", data: "{", err: errors.ErrInvalidFrame},
		{name: "unknown kind", data: `{"kind":"shout","room_id":"r1","sender_id":"a"}`, err: errors.ErrUnknownKind},
		{name: "read without message id", data: `{"kind":"read","room_id":"r1","sender_id":"a"}`, err: errors.ErrInvalidFrame},
		{name: "join without user", data: `{"kind":"join","room_id":"r1"}`, err: errors.ErrInvalidFrame},
		{name: "system with sender", data: `{"kind":"system","room_id":"r1","sender_id":"a"}`, err: errors.ErrInvalidFrame},
		{name: "private without recipient", data: `{"kind":"private","sender_id":"a","content":"x"}`, err: errors.ErrInvalidFrame},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeMessage([]byte(tt.data))
			require.ErrorIs(t, err, tt.err)
		})
	}
}
