package domain

import (
	"chat-relay/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFrame(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Frame
		err      error
	}{
		{
			name:     "Room message",
			input:    `{"kind":"message","content":"hello"}`,
			expected: Frame{Kind: FrameMessage, Content: "hello"},
		},
		{
			name:     "Legacy type discriminant",
			input:    `{"type":"message","content":"hello","recipient_id":"bob"}`,
			expected: Frame{Kind: FrameMessage, Type: FrameMessage, Content: "hello", RecipientID: "bob"},
		},
		{
			name:     "Read receipt",
			input:    `{"kind":"read","message_id":"m-1","room_id":"r1"}`,
			expected: Frame{Kind: FrameRead, MessageID: "m-1", RoomID: "r1"},
		},
		{
			name:     "Leave without room",
			input:    `{"kind":"leave"}`,
			expected: Frame{Kind: FrameLeave},
		},
		{name: "Malformed json", input: `{"kind":`, err: errors.ErrInvalidFrame},
		{name: "Unknown kind", input: `{"kind":"dance"}`, err: errors.ErrInvalidFrame},
		{name: "Missing kind", input: `{"content":"x"}`, err: errors.ErrInvalidFrame},
		{name: "Blank message", input: `{"kind":"message","content":"  "}`, err: errors.ErrInvalidFrame},
		{name: "Read without id", input: `{"kind":"read"}`, err: errors.ErrInvalidFrame},
		{name: "Join without room", input: `{"kind":"join"}`, err: errors.ErrInvalidFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			frame, err := ParseFrame([]byte(tt.input))
			if tt.err != nil {
				req.ErrorIs(err, tt.err)
				return
			}
			req.NoError(err)
			req.Equal(tt.expected, frame)
		})
	}
}

func TestFrame_IsDirect(t *testing.T) {
	req := require.New(t)
	req.True(Frame{Kind: FrameMessage, RecipientID: "bob"}.IsDirect())
	req.False(Frame{Kind: FrameMessage}.IsDirect())
	req.False(Frame{Kind: FrameTyping, RecipientID: "bob"}.IsDirect())
}
