package domain

import (
	"chat-relay/errors"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type FrameKind string

const (
	FrameMessage FrameKind = "message"
	FrameTyping  FrameKind = "typing"
	FrameRead    FrameKind = "read"
	FrameJoin    FrameKind = "join"
	FrameLeave   FrameKind = "leave"
)

// Frame is what a client writes on its connection.
// Older clients send the discriminant as "type", newer ones as "kind".
type Frame struct {
	Kind        FrameKind `json:"kind" validate:"required,oneof=message typing read join leave"`
	Type        FrameKind `json:"type,omitempty" validate:"-"`
	Content     string    `json:"content"`
	RoomID      RoomID    `json:"room_id,omitempty" validate:"max=128"`
	RecipientID UserID    `json:"recipient_id,omitempty" validate:"max=128"`
	MessageID   string    `json:"message_id,omitempty" validate:"max=128"`
}

// ParseFrame decodes and validates an inbound frame.
func ParseFrame(data []byte) (Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return Frame{}, fmt.Errorf("%w: %v", errors.ErrInvalidFrame, err)
	}
	if f.Kind == "" {
		f.Kind = f.Type
	}
	f.Kind = FrameKind(strings.ToLower(string(f.Kind)))
	if err := validate.Struct(f); err != nil {
		return Frame{}, fmt.Errorf("%w: %v", errors.ErrInvalidFrame, err)
	}

	switch f.Kind {
	case FrameMessage:
		if strings.TrimSpace(f.Content) == "" {
			return Frame{}, fmt.Errorf("%w: empty content", errors.ErrInvalidFrame)
		}
	case FrameRead:
		if f.MessageID == "" {
			return Frame{}, fmt.Errorf("%w: read requires message_id", errors.ErrInvalidFrame)
		}
	case FrameJoin:
		if f.RoomID == "" {
			return Frame{}, fmt.Errorf("%w: join requires room_id", errors.ErrInvalidFrame)
		}
	}
	return f, nil
}

// IsDirect reports whether a message frame targets a single peer.
func (f Frame) IsDirect() bool {
	return f.Kind == FrameMessage && f.RecipientID != ""
}
