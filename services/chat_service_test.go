package services

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/moderation"
	"chat-relay/runtime"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// recordingRelay keeps the dispatched commands in order.
type recordingRelay struct {
	commands []runtime.Command
}

func (r *recordingRelay) Dispatch(_ context.Context, cmd runtime.Command) error {
	r.commands = append(r.commands, cmd)
	return nil
}

func (r *recordingRelay) Members(context.Context, domain.RoomID) ([]domain.UserID, error) {
	return []domain.UserID{"alice"}, nil
}

func (r *recordingRelay) IsMember(_ context.Context, _ domain.RoomID, userID domain.UserID) (bool, error) {
	return userID == "alice", nil
}

func (r *recordingRelay) Stats(context.Context) (runtime.Stats, error) {
	return runtime.Stats{Sessions: 1}, nil
}

func newChatService(t *testing.T, maxLength int) (*ChatService, *recordingRelay) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	mod, err := moderation.NewModerator([]string{"badger"}, '*', log)
	require.NoError(t, err)
	relay := &recordingRelay{}
	return NewChatService(log, relay, &mod, maxLength), relay
}

func TestChatService_PostMessage(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc, relay := newChatService(t, 0)

	// When a message containing a censored word is posted
	err := svc.PostMessage(ctx, "r1", "alice", "  The badger is sleeping in the garden while the children are playing with their friends  ")

	// Then a censored, trimmed, language-tagged broadcast is dispatched
	req.NoError(err)
	req.Equal([]runtime.Command{runtime.Broadcast{
		Room:    "r1",
		Sender:  "alice",
		Content: "The ****** is sleeping in the garden while the children are playing with their friends",
		Lang:    "en",
	}}, relay.commands)
}

func TestChatService_rejects_invalid_content(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		content string
		err     error
	}{
		{"Blank", "   ", errors.ErrInvalidRequest},
		{"Too long", strings.Repeat("é", 11), errors.ErrContentTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			svc, relay := newChatService(t, 10)

			req.ErrorIs(svc.PostMessage(ctx, "r1", "alice", tt.content), tt.err)
			req.ErrorIs(svc.SendDirect(ctx, "alice", "bob", tt.content), tt.err)
			req.ErrorIs(svc.System(ctx, "r1", tt.content), tt.err)
			req.Empty(relay.commands)
		})
	}
}

func TestChatService_SendDirect(t *testing.T) {
	req := require.New(t)
	svc, relay := newChatService(t, 0)

	req.NoError(svc.SendDirect(context.Background(), "alice", "bob", "hey"))

	req.Equal([]runtime.Command{runtime.DirectSend{From: "alice", To: "bob", Content: "hey"}}, relay.commands)
}

func TestChatService_Disconnect_leaves_rooms_then_unregisters(t *testing.T) {
	req := require.New(t)
	svc, relay := newChatService(t, 0)
	outbox := runtime.NewOutbox("alice", 1)

	req.NoError(svc.Disconnect(context.Background(), "alice", outbox, []domain.RoomID{"r1", "r2"}))

	req.Equal([]runtime.Command{
		runtime.LeaveRoom{Room: "r1", User: "alice", Outbox: outbox},
		runtime.LeaveRoom{Room: "r2", User: "alice", Outbox: outbox},
		runtime.UnregisterSession{User: "alice", Outbox: outbox},
	}, relay.commands)
}

func TestChatService_forwards_signals(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc, relay := newChatService(t, 0)
	outbox := runtime.NewOutbox("alice", 1)

	req.NoError(svc.Connect(ctx, "alice", outbox))
	req.NoError(svc.Join(ctx, "r1", "alice", outbox))
	req.NoError(svc.Typing(ctx, "r1", "alice"))
	req.NoError(svc.Read(ctx, "r1", "alice", "m-1"))
	req.NoError(svc.System(ctx, "r1", " maintenance "))

	req.Equal([]runtime.Command{
		runtime.RegisterSession{User: "alice", Outbox: outbox},
		runtime.JoinRoom{Room: "r1", User: "alice", Outbox: outbox},
		runtime.Typing{Room: "r1", Sender: "alice"},
		runtime.Read{Room: "r1", Sender: "alice", MessageID: "m-1"},
		runtime.System{Room: "r1", Content: "maintenance"},
	}, relay.commands)

	members, err := svc.Members(ctx, "r1")
	req.NoError(err)
	req.Equal([]domain.UserID{"alice"}, members)
	ok, err := svc.IsMember(ctx, "r1", "bob")
	req.NoError(err)
	req.False(ok)
}
