package domain

import "time"

type RoomID string

// DefaultRoom is joined by connections that do not name a room.
const DefaultRoom RoomID = "default"

// Room is the persisted description of a room.
// Live membership is owned by the runtime coordinator, not by this record.
type Room struct {
	ID        RoomID    `json:"id"`
	Name      string    `json:"name"`
	CreatedBy UserID    `json:"created_by"`
	IsPrivate bool      `json:"is_private"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateRoom struct {
	Name      string `json:"name" validate:"required,min=1,max=64"`
	IsPrivate bool   `json:"is_private"`
	CreatedBy UserID `json:"-"`
}
