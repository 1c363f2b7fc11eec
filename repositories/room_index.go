//go:generate go run go.uber.org/mock/mockgen -source=room_index.go -destination=../mocks/mock_room_index.go -package=mocks
package repositories

import (
	"chat-relay/domain"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/blugelabs/bluge"
)

const (
	roomNameField     = "name"
	DefaultSearchSize = 20
)

type IRoomIndex interface {
	Index(room domain.Room) error
	Search(ctx context.Context, query string, limit int) ([]domain.RoomID, error)
}

// RoomIndex is a full-text index over room names.
type RoomIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewRoomIndex(writer *bluge.Writer, log *slog.Logger) *RoomIndex {
	return &RoomIndex{writer: writer, log: log}
}

func (i *RoomIndex) Index(room domain.Room) error {
	doc := bluge.NewDocument(string(room.ID)).
		AddField(bluge.NewTextField(roomNameField, room.Name).StoreValue())
	if err := i.writer.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("room indexing failed: %w", err)
	}
	return nil
}

// Search matches whole words of the name, or the start of a word for the last term typed.
func (i *RoomIndex) Search(ctx context.Context, query string, limit int) ([]domain.RoomID, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultSearchSize
	}

	terms := strings.Fields(strings.ToLower(query))
	q := bluge.NewBooleanQuery().
		AddShould(bluge.NewMatchQuery(query).SetField(roomNameField)).
		AddShould(bluge.NewPrefixQuery(terms[len(terms)-1]).SetField(roomNameField)).
		SetMinShould(1)

	reader, err := i.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("index reader unavailable: %w", err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			i.log.Warn("Closing index reader failed", "error", err)
		}
	}()

	dmi, err := reader.Search(ctx, bluge.NewTopNSearch(limit, q))
	if err != nil {
		return nil, fmt.Errorf("room search failed: %w", err)
	}

	var ids []domain.RoomID
	match, err := dmi.Next()
	for err == nil && match != nil {
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				ids = append(ids, domain.RoomID(value))
				return false
			}
			return true
		})
		if err != nil {
			break
		}
		match, err = dmi.Next()
	}
	if err != nil {
		return nil, fmt.Errorf("room search iteration failed: %w", err)
	}
	return ids, nil
}
