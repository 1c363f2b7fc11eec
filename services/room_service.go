package services

import (
	"chat-relay/auth"
	"chat-relay/domain"
	"chat-relay/repositories"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IRoomService interface {
	Create(ctx context.Context, req domain.CreateRoom) (domain.Room, error)
	Get(ctx context.Context, id domain.RoomID) (domain.Room, error)
	List(ctx context.Context, query string) ([]domain.Room, error)
}

// RoomService manages persisted room records. Live membership stays in the relay.
type RoomService struct {
	log   *slog.Logger
	repo  repositories.IRoomRepository
	index repositories.IRoomIndex
	now   func() time.Time
}

func NewRoomService(log *slog.Logger, repo repositories.IRoomRepository, index repositories.IRoomIndex) *RoomService {
	return &RoomService{log: log, repo: repo, index: index, now: time.Now}
}

func (s *RoomService) Create(_ context.Context, req domain.CreateRoom) (domain.Room, error) {
	if err := auth.Validate(req); err != nil {
		return domain.Room{}, err
	}
	room := domain.Room{
		ID:        domain.RoomID(uuid.NewString()),
		Name:      req.Name,
		CreatedBy: req.CreatedBy,
		IsPrivate: req.IsPrivate,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(room); err != nil {
		return domain.Room{}, fmt.Errorf("room creation failed: %w", err)
	}
	// The record is the source of truth: a failed indexing only degrades search.
	if err := s.index.Index(room); err != nil {
		s.log.Warn("Room not indexed", "room_id", room.ID, "error", err)
	}
	s.log.Info("Room created", "room_id", room.ID, "name", room.Name, "created_by", room.CreatedBy)
	return room, nil
}

func (s *RoomService) Get(_ context.Context, id domain.RoomID) (domain.Room, error) {
	return s.repo.FindByID(id)
}

// List returns every room, or the rooms whose name matches query, best match first.
func (s *RoomService) List(ctx context.Context, query string) ([]domain.Room, error) {
	if query == "" {
		return s.repo.FindAll()
	}
	ids, err := s.index.Search(ctx, query, repositories.DefaultSearchSize)
	if err != nil {
		return nil, err
	}
	rooms := lo.FilterMap(ids, func(id domain.RoomID, _ int) (domain.Room, bool) {
		room, err := s.repo.FindByID(id)
		if err != nil {
			s.log.Debug("Indexed room without record", "room_id", id, "error", err)
			return domain.Room{}, false
		}
		return room, true
	})
	return rooms, nil
}
