package services

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/moderation"
	"chat-relay/runtime"
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"
)

const DefaultMaxContentLength = 2000

// Relay is the command surface of the coordinator.
type Relay interface {
	Dispatch(ctx context.Context, cmd runtime.Command) error
	Members(ctx context.Context, roomID domain.RoomID) ([]domain.UserID, error)
	IsMember(ctx context.Context, roomID domain.RoomID, userID domain.UserID) (bool, error)
	Stats(ctx context.Context) (runtime.Stats, error)
}

type IChatService interface {
	Connect(ctx context.Context, userID domain.UserID, outbox *runtime.Outbox) error
	Join(ctx context.Context, roomID domain.RoomID, userID domain.UserID, outbox *runtime.Outbox) error
	Leave(ctx context.Context, roomID domain.RoomID, userID domain.UserID, outbox *runtime.Outbox) error
	Disconnect(ctx context.Context, userID domain.UserID, outbox *runtime.Outbox, rooms []domain.RoomID) error
	PostMessage(ctx context.Context, roomID domain.RoomID, sender domain.UserID, content string) error
	SendDirect(ctx context.Context, from, to domain.UserID, content string) error
	Typing(ctx context.Context, roomID domain.RoomID, sender domain.UserID) error
	Read(ctx context.Context, roomID domain.RoomID, sender domain.UserID, messageID string) error
	System(ctx context.Context, roomID domain.RoomID, content string) error
	Members(ctx context.Context, roomID domain.RoomID) ([]domain.UserID, error)
	IsMember(ctx context.Context, roomID domain.RoomID, userID domain.UserID) (bool, error)
	Stats(ctx context.Context) (runtime.Stats, error)
}

// ChatService turns use cases into coordinator commands.
// Text content is checked for length, censored and tagged with its language
// before it enters the relay.
type ChatService struct {
	log              *slog.Logger
	relay            Relay
	moderator        *moderation.Moderator
	maxContentLength int
}

func NewChatService(log *slog.Logger, relay Relay, moderator *moderation.Moderator, maxContentLength int) *ChatService {
	if maxContentLength <= 0 {
		maxContentLength = DefaultMaxContentLength
	}
	return &ChatService{log: log, relay: relay, moderator: moderator, maxContentLength: maxContentLength}
}

func (s *ChatService) Connect(ctx context.Context, userID domain.UserID, outbox *runtime.Outbox) error {
	return s.relay.Dispatch(ctx, runtime.RegisterSession{User: userID, Outbox: outbox})
}

func (s *ChatService) Join(ctx context.Context, roomID domain.RoomID, userID domain.UserID, outbox *runtime.Outbox) error {
	return s.relay.Dispatch(ctx, runtime.JoinRoom{Room: roomID, User: userID, Outbox: outbox})
}

func (s *ChatService) Leave(ctx context.Context, roomID domain.RoomID, userID domain.UserID, outbox *runtime.Outbox) error {
	return s.relay.Dispatch(ctx, runtime.LeaveRoom{Room: roomID, User: userID, Outbox: outbox})
}

// Disconnect is the terminal transition of a session: every joined room is
// left, then the session is unregistered. Repeating it is harmless.
func (s *ChatService) Disconnect(ctx context.Context, userID domain.UserID, outbox *runtime.Outbox, rooms []domain.RoomID) error {
	for _, roomID := range rooms {
		if err := s.Leave(ctx, roomID, userID, outbox); err != nil {
			return err
		}
	}
	return s.relay.Dispatch(ctx, runtime.UnregisterSession{User: userID, Outbox: outbox})
}

func (s *ChatService) PostMessage(ctx context.Context, roomID domain.RoomID, sender domain.UserID, content string) error {
	content, lang, err := s.prepare(sender, content)
	if err != nil {
		return err
	}
	return s.relay.Dispatch(ctx, runtime.Broadcast{Room: roomID, Sender: sender, Content: content, Lang: lang})
}

func (s *ChatService) SendDirect(ctx context.Context, from, to domain.UserID, content string) error {
	content, lang, err := s.prepare(from, content)
	if err != nil {
		return err
	}
	return s.relay.Dispatch(ctx, runtime.DirectSend{From: from, To: to, Content: content, Lang: lang})
}

func (s *ChatService) Typing(ctx context.Context, roomID domain.RoomID, sender domain.UserID) error {
	return s.relay.Dispatch(ctx, runtime.Typing{Room: roomID, Sender: sender})
}

func (s *ChatService) Read(ctx context.Context, roomID domain.RoomID, sender domain.UserID, messageID string) error {
	return s.relay.Dispatch(ctx, runtime.Read{Room: roomID, Sender: sender, MessageID: messageID})
}

// System content is operator-authored and is not censored.
func (s *ChatService) System(ctx context.Context, roomID domain.RoomID, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return errors.ErrInvalidRequest
	}
	if utf8.RuneCountInString(content) > s.maxContentLength {
		return errors.ErrContentTooLong
	}
	return s.relay.Dispatch(ctx, runtime.System{Room: roomID, Content: content})
}

func (s *ChatService) Members(ctx context.Context, roomID domain.RoomID) ([]domain.UserID, error) {
	return s.relay.Members(ctx, roomID)
}

func (s *ChatService) IsMember(ctx context.Context, roomID domain.RoomID, userID domain.UserID) (bool, error) {
	return s.relay.IsMember(ctx, roomID, userID)
}

func (s *ChatService) Stats(ctx context.Context) (runtime.Stats, error) {
	return s.relay.Stats(ctx)
}

func (s *ChatService) prepare(sender domain.UserID, content string) (string, string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", "", errors.ErrInvalidRequest
	}
	if utf8.RuneCountInString(content) > s.maxContentLength {
		return "", "", errors.ErrContentTooLong
	}
	lang := moderation.DetectLanguage(content)
	if s.moderator != nil {
		censored, words := s.moderator.Censor(content)
		if len(words) > 0 {
			s.log.Info("Message censored", "sender", sender, "words", len(words), "lang", lang)
			content = censored
		}
	}
	return content, lang, nil
}
