package services

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/mocks"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoomService_Create(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIRoomRepository(ctrl)
	index := mocks.NewMockIRoomIndex(ctrl)
	svc := NewRoomService(logs.GetLoggerFromLevel(slog.LevelDebug), repo, index)
	at := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return at }

	// Given the record is stored and the name indexed
	repo.EXPECT().Create(gomock.Any()).Return(nil)
	index.EXPECT().Index(gomock.Any()).Return(errors.ErrInvalidRequest)

	// When creating a room, even if indexing fails
	room, err := svc.Create(context.Background(), domain.CreateRoom{Name: "general", CreatedBy: "u-1"})

	// Then the room is returned
	req.NoError(err)
	req.NotEmpty(room.ID)
	req.Equal("general", room.Name)
	req.Equal(domain.UserID("u-1"), room.CreatedBy)
	req.Equal(at, room.CreatedAt)
}

func TestRoomService_Create_invalid(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	svc := NewRoomService(logs.GetLoggerFromLevel(slog.LevelDebug), mocks.NewMockIRoomRepository(ctrl), mocks.NewMockIRoomIndex(ctrl))

	_, err := svc.Create(context.Background(), domain.CreateRoom{Name: ""})

	req.ErrorIs(err, errors.ErrInvalidRequest)
}

func TestRoomService_List(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIRoomRepository(ctrl)
	index := mocks.NewMockIRoomIndex(ctrl)
	svc := NewRoomService(logs.GetLoggerFromLevel(slog.LevelDebug), repo, index)

	general := domain.Room{ID: "r-1", Name: "general"}
	gophers := domain.Room{ID: "r-2", Name: "gophers"}

	// Without query every record is listed
	repo.EXPECT().FindAll().Return([]domain.Room{gophers, general}, nil)
	rooms, err := svc.List(ctx, "")
	req.NoError(err)
	req.Len(rooms, 2)

	// With a query, hits without record are skipped
	index.EXPECT().Search(ctx, "go", 20).Return([]domain.RoomID{"r-2", "r-ghost"}, nil)
	repo.EXPECT().FindByID(domain.RoomID("r-2")).Return(gophers, nil)
	repo.EXPECT().FindByID(domain.RoomID("r-ghost")).Return(domain.Room{}, errors.ErrRoomNotFound)
	rooms, err = svc.List(ctx, "go")
	req.NoError(err)
	req.Equal([]domain.Room{gophers}, rooms)
}
