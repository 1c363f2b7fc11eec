// Package domain contains core concepts of the chat relay.
// This file defines users and the verified identity handed to connections.
package domain

import "time"

type OnlineStatus string

const (
	StatusOnline  OnlineStatus = "online"
	StatusOffline OnlineStatus = "offline"
)

type User struct {
	ID           UserID       `json:"id"`
	FullName     string       `json:"full_name"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Roles        []string     `json:"roles"`
	Status       OnlineStatus `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Identity is what the auth layer returns once a token has been verified.
type Identity struct {
	UserID   UserID
	Username string
	Roles    []string
}
