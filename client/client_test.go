package client_test

import (
	"chat-relay/auth"
	"chat-relay/client"
	"chat-relay/domain"
	httpx "chat-relay/infrastructure/http"
	"chat-relay/infrastructure/ws"
	"chat-relay/repositories"
	"chat-relay/runtime"
	"chat-relay/services"
	"context"
	stdErrors "errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// startRelay serves the whole relay in process.
func startRelay(t *testing.T) (*httptest.Server, *runtime.Coordinator) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)

	coord := runtime.NewCoordinator(log, 64, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- coord.Run(ctx) }()

	users := repositories.NewUserRepository(db)
	authService := services.NewAuthService(log, users, auth.NewTokenManager("a-test-secret-of-decent-length", time.Hour))
	chatService := services.NewChatService(log, coord, nil, 0)
	server := httptest.NewServer(httpx.NewRouter(httpx.Dependencies{
		Log:       log,
		Auth:      authService,
		Users:     users,
		Rooms:     services.NewRoomService(log, repositories.NewRoomRepository(db), repositories.NewRoomIndex(writer, log)),
		Chat:      chatService,
		WebSocket: ws.NewHandler(log, authService, chatService, 0, nil, nil),
	}))
	t.Cleanup(func() {
		server.Close()
		cancel()
		<-done
		_ = writer.Close()
		_ = db.Close()
	})
	return server, coord
}

func signUp(t *testing.T, c *client.Client, username string) *client.Client {
	t.Helper()
	session, err := c.Register(context.Background(), auth.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "ComplexPass123!",
	})
	require.NoError(t, err)
	return c.WithToken(session.Token)
}

func receive(t *testing.T, chat *client.Chat) domain.Message {
	t.Helper()
	type result struct {
		msg domain.Message
		err error
	}
	got := make(chan result, 1)
	go func() {
		msg, err := chat.Receive()
		got <- result{msg, err}
	}()
	select {
	case r := <-got:
		require.NoError(t, r.err)
		return r.msg
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
		return domain.Message{}
	}
}

func TestClient_rooms(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	server, _ := startRelay(t)
	alice := signUp(t, client.New(server.URL, ""), "alice")

	room, err := alice.CreateRoom(ctx, "gophers", false)
	req.NoError(err)

	rooms, err := alice.Rooms(ctx, "goph")
	req.NoError(err)
	req.Len(rooms, 1)
	req.Equal(room.ID, rooms[0].ID)

	// Without a token the API refuses
	_, err = client.New(server.URL, "").Rooms(ctx, "")
	var apiErr *client.APIError
	req.True(stdErrors.As(err, &apiErr))
	req.Equal(http.StatusUnauthorized, apiErr.Status)
}

func TestClient_login(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	server, _ := startRelay(t)
	anonymous := client.New(server.URL, "")
	signUp(t, anonymous, "alice")

	session, err := anonymous.Login(ctx, auth.LoginRequest{Username: "alice", Password: "ComplexPass123!"})
	req.NoError(err)
	req.NotEmpty(session.Token)

	_, err = anonymous.Login(ctx, auth.LoginRequest{Username: "alice", Password: "nope"})
	var apiErr *client.APIError
	req.True(stdErrors.As(err, &apiErr))
	req.Equal(http.StatusUnauthorized, apiErr.Status)
}

func TestClient_chat(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	server, coord := startRelay(t)
	anonymous := client.New(server.URL, "")
	alice := signUp(t, anonymous, "alice")
	bob := signUp(t, anonymous, "bob")

	// Given alice then bob in r1
	aliceChat, err := alice.Dial(ctx, "r1")
	req.NoError(err)
	req.Eventually(func() bool {
		members, err := coord.Members(ctx, "r1")
		return err == nil && len(members) == 1
	}, 2*time.Second, 10*time.Millisecond)
	bobChat, err := bob.Dial(ctx, "r1")
	req.NoError(err)
	t.Cleanup(func() { _ = bobChat.Close() })
	req.Equal(domain.KindJoin, receive(t, aliceChat).Kind)

	members, err := alice.Members(ctx, "r1")
	req.NoError(err)
	req.Len(members, 2)

	// When alice speaks, bob hears her
	req.NoError(aliceChat.Say("", "hello bob"))
	msg := receive(t, bobChat)
	req.Equal(domain.KindText, msg.Kind)
	req.Equal("hello bob", msg.Content)

	// When alice closes her session, bob sees her leave
	req.NoError(aliceChat.Close())
	msg = receive(t, bobChat)
	req.Equal(domain.KindLeave, msg.Kind)
}
