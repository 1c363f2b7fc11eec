// Package httpx exposes the REST surface and mounts the WebSocket endpoint.
package httpx

import (
	"chat-relay/observability"
	"chat-relay/repositories"
	"chat-relay/services"
	"log/slog"
	"net/http"
)

type Dependencies struct {
	Log            *slog.Logger
	Auth           services.IAuthService
	Users          repositories.IUserRepository
	Rooms          services.IRoomService
	Chat           services.IChatService
	Monitor        *observability.Monitor
	WebSocket      http.Handler
	Metrics        http.Handler
	AllowedOrigins []string
}

// NewRouter wires every route and the shared middleware.
func NewRouter(deps Dependencies) http.Handler {
	mw := NewMiddleware(deps.Log, deps.Auth, deps.AllowedOrigins)
	authAPI := &AuthAPI{log: deps.Log, auth: deps.Auth}
	userAPI := &UserAPI{users: deps.Users}
	roomAPI := &RoomAPI{rooms: deps.Rooms, chat: deps.Chat}
	statusAPI := &StatusAPI{chat: deps.Chat, monitor: deps.Monitor}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", statusAPI.Health)
	mux.HandleFunc("GET /stats", statusAPI.Stats)
	if deps.Metrics != nil {
		mux.Handle("GET /metrics", deps.Metrics)
	}

	// The WebSocket handler authenticates on its own: browsers cannot set headers on upgrade.
	if deps.WebSocket != nil {
		mux.Handle("GET /api/v1/ws", deps.WebSocket)
	}

	mux.HandleFunc("POST /api/v1/auth/register", authAPI.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authAPI.Login)

	mux.Handle("GET /api/v1/users", mw.Auth(http.HandlerFunc(userAPI.List)))

	mux.Handle("POST /api/v1/rooms", mw.Auth(http.HandlerFunc(roomAPI.Create)))
	mux.Handle("GET /api/v1/rooms", mw.Auth(http.HandlerFunc(roomAPI.List)))
	mux.Handle("GET /api/v1/rooms/{id}", mw.Auth(http.HandlerFunc(roomAPI.Get)))
	mux.Handle("GET /api/v1/rooms/{id}/members", mw.Auth(http.HandlerFunc(roomAPI.Members)))
	mux.Handle("GET /api/v1/rooms/{id}/members/{user}", mw.Auth(http.HandlerFunc(roomAPI.IsMember)))
	mux.Handle("POST /api/v1/rooms/{id}/system", mw.Auth(http.HandlerFunc(roomAPI.System)))

	return mw.Wrap(mux)
}
