package httpx

import (
	"chat-relay/auth"
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/observability"
	"chat-relay/repositories"
	"chat-relay/runtime"
	"chat-relay/services"
	"context"
	"log/slog"
	"net/http"
	"time"
)

const livenessTimeout = 2 * time.Second

type AuthAPI struct {
	log  *slog.Logger
	auth services.IAuthService
}

func (a *AuthAPI) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	session, err := a.auth.Register(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, session)
}

func (a *AuthAPI) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	session, err := a.auth.Login(req)
	if err != nil {
		a.log.Debug("Login refused", "username", req.Username, "error", err)
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, session)
}

type UserAPI struct {
	users repositories.IUserRepository
}

func (u *UserAPI) List(w http.ResponseWriter, _ *http.Request) {
	users, err := u.users.FindAll()
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, users)
}

type RoomAPI struct {
	rooms services.IRoomService
	chat  services.IChatService
}

func (a *RoomAPI) Create(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())
	var req domain.CreateRoom
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	req.CreatedBy = identity.UserID
	room, err := a.rooms.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, room)
}

func (a *RoomAPI) List(w http.ResponseWriter, r *http.Request) {
	rooms, err := a.rooms.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	if rooms == nil {
		rooms = []domain.Room{}
	}
	writeData(w, http.StatusOK, rooms)
}

func (a *RoomAPI) Get(w http.ResponseWriter, r *http.Request) {
	room, err := a.rooms.Get(r.Context(), domain.RoomID(r.PathValue("id")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, room)
}

type membersResponse struct {
	RoomID  domain.RoomID   `json:"room_id"`
	Members []domain.UserID `json:"members"`
}

// Members lists the live members of a room, persisted or not.
func (a *RoomAPI) Members(w http.ResponseWriter, r *http.Request) {
	roomID := domain.RoomID(r.PathValue("id"))
	members, err := a.chat.Members(r.Context(), roomID)
	if err != nil {
		writeError(w, err)
		return
	}
	if members == nil {
		members = []domain.UserID{}
	}
	writeData(w, http.StatusOK, membersResponse{RoomID: roomID, Members: members})
}

type membershipResponse struct {
	RoomID   domain.RoomID `json:"room_id"`
	UserID   domain.UserID `json:"user_id"`
	IsMember bool          `json:"is_member"`
}

func (a *RoomAPI) IsMember(w http.ResponseWriter, r *http.Request) {
	roomID := domain.RoomID(r.PathValue("id"))
	userID := domain.UserID(r.PathValue("user"))
	ok, err := a.chat.IsMember(r.Context(), roomID, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, membershipResponse{RoomID: roomID, UserID: userID, IsMember: ok})
}

type systemRequest struct {
	Content string `json:"content"`
}

func (a *RoomAPI) System(w http.ResponseWriter, r *http.Request) {
	var req systemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := a.chat.System(r.Context(), domain.RoomID(r.PathValue("id")), req.Content); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusAccepted, nil)
}

type statsResponse struct {
	Relay   runtime.Stats          `json:"relay"`
	Process observability.Snapshot `json:"process"`
}

type StatusAPI struct {
	chat    services.IChatService
	monitor *observability.Monitor
}

// Health answers 503 when the coordinator does not answer a query in time.
func (s *StatusAPI) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), livenessTimeout)
	defer cancel()
	if _, err := s.chat.Stats(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, ApiResponse{Error: errors.ErrRelayUnavailable.Error()})
		return
	}
	writeData(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *StatusAPI) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), livenessTimeout)
	defer cancel()
	stats, err := s.chat.Stats(ctx)
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, ApiResponse{Error: errors.ErrRelayUnavailable.Error()})
		return
	}
	resp := statsResponse{Relay: stats}
	if s.monitor != nil {
		resp.Process = s.monitor.GetLatest()
	}
	writeData(w, http.StatusOK, resp)
}
