package repositories

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestRoomRepository(t *testing.T) {
	req := require.New(t)
	repo := NewRoomRepository(openInMemory(t))
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	general := domain.Room{ID: "r-1", Name: "general", CreatedBy: "u-1", CreatedAt: base}
	random := domain.Room{ID: "r-2", Name: "random", CreatedBy: "u-1", IsPrivate: true, CreatedAt: base.Add(time.Minute)}
	req.NoError(repo.Create(general))
	req.NoError(repo.Create(random))

	found, err := repo.FindByID("r-2")
	req.NoError(err)
	req.Equal(random, found)

	_, err = repo.FindByID("r-404")
	req.ErrorIs(err, errors.ErrRoomNotFound)

	rooms, err := repo.FindAll()
	req.NoError(err)
	req.Equal([]domain.Room{random, general}, rooms)
}

func TestRoomIndex_Search(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	req.NoError(err)
	defer func() { _ = writer.Close() }()
	index := NewRoomIndex(writer, logs.GetLoggerFromLevel(slog.LevelDebug))

	// Given three indexed rooms
	req.NoError(index.Index(domain.Room{ID: "r-1", Name: "Golang gophers"}))
	req.NoError(index.Index(domain.Room{ID: "r-2", Name: "Rust lovers"}))
	req.NoError(index.Index(domain.Room{ID: "r-3", Name: "Go tooling"}))

	// Then a whole word matches
	ids, err := index.Search(ctx, "rust", 10)
	req.NoError(err)
	req.Equal([]domain.RoomID{"r-2"}, ids)

	// And a prefix matches every word starting with it
	ids, err = index.Search(ctx, "go", 10)
	req.NoError(err)
	req.ElementsMatch([]domain.RoomID{"r-1", "r-3"}, ids)

	// And a blank query returns nothing
	ids, err = index.Search(ctx, "  ", 10)
	req.NoError(err)
	req.Empty(ids)
}

func TestRoomIndex_Update_replaces_name(t *testing.T) {
	req := require.New(t)
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	req.NoError(err)
	defer func() { _ = writer.Close() }()
	index := NewRoomIndex(writer, logs.GetLoggerFromLevel(slog.LevelDebug))

	req.NoError(index.Index(domain.Room{ID: "r-1", Name: "kitchen"}))
	req.NoError(index.Index(domain.Room{ID: "r-1", Name: "garden"}))

	ids, err := index.Search(context.Background(), "kitchen", 10)
	req.NoError(err)
	req.Empty(ids)
	ids, err = index.Search(context.Background(), "garden", 10)
	req.NoError(err)
	req.Equal([]domain.RoomID{"r-1"}, ids)
}
