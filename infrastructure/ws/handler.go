// Package ws adapts WebSocket connections to the relay.
package ws

import (
	"chat-relay/auth"
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/runtime"
	"chat-relay/services"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// Handler authenticates the upgrade request, then runs one Connection per socket.
type Handler struct {
	log            *slog.Logger
	upgrader       websocket.Upgrader
	verifier       TokenVerifier
	chat           services.IChatService
	outboxCapacity int
	metrics        contract.ConnectionMetrics
}

func NewHandler(log *slog.Logger, verifier TokenVerifier, chat services.IChatService,
	outboxCapacity int, metrics contract.ConnectionMetrics, allowedOrigins []string) *Handler {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Handler{
		log:            log,
		verifier:       verifier,
		chat:           chat,
		outboxCapacity: outboxCapacity,
		metrics:        metrics,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, err := h.verifier.Verify(auth.TokenFromRequest(r))
	if err != nil {
		h.log.Debug("WebSocket upgrade refused", "remote", r.RemoteAddr, "error", err)
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	room := domain.RoomID(r.URL.Query().Get("room_id"))
	if room == "" {
		room = domain.DefaultRoom
	}

	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader already replied with an HTTP error
		h.log.Warn("WebSocket upgrade failed", "user_id", identity.UserID, "error", err)
		return
	}
	h.metrics.ConnectionAccepted()

	conn := newConnection(h.log, ws, h.chat, h.metrics, identity.UserID,
		runtime.NewOutbox(identity.UserID, h.outboxCapacity))
	conn.serve(r.Context(), room)
}

// originChecker accepts every origin when none is configured or "*" is listed.
func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		if origin == "*" {
			return func(*http.Request) bool { return true }
		}
		set[origin] = struct{}{}
	}
	return func(r *http.Request) bool {
		if len(set) == 0 {
			return true
		}
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

type noopMetrics struct{}

func (noopMetrics) ConnectionAccepted()   {}
func (noopMetrics) FrameDropped(_ string) {}
