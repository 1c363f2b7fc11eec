// Package client talks to a relay over its REST and WebSocket surfaces.
package client

import (
	"bytes"
	"chat-relay/auth"
	"chat-relay/domain"
	"chat-relay/services"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultTimeout = 10 * time.Second

// APIError is a non-successful REST response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, http.StatusText(e.Status), e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
}

// WithToken returns a copy authenticating with token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

func (c *Client) Register(ctx context.Context, req auth.RegisterRequest) (services.Session, error) {
	var session services.Session
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", req, &session)
	return session, err
}

func (c *Client) Login(ctx context.Context, req auth.LoginRequest) (services.Session, error) {
	var session services.Session
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", req, &session)
	return session, err
}

func (c *Client) Rooms(ctx context.Context, query string) ([]domain.Room, error) {
	path := "/api/v1/rooms"
	if query != "" {
		path += "?q=" + url.QueryEscape(query)
	}
	var rooms []domain.Room
	err := c.do(ctx, http.MethodGet, path, nil, &rooms)
	return rooms, err
}

func (c *Client) CreateRoom(ctx context.Context, name string, private bool) (domain.Room, error) {
	var room domain.Room
	err := c.do(ctx, http.MethodPost, "/api/v1/rooms", domain.CreateRoom{Name: name, IsPrivate: private}, &room)
	return room, err
}

func (c *Client) Members(ctx context.Context, roomID domain.RoomID) ([]domain.UserID, error) {
	var resp struct {
		Members []domain.UserID `json:"members"`
	}
	err := c.do(ctx, http.MethodGet, "/api/v1/rooms/"+url.PathEscape(string(roomID))+"/members", nil, &resp)
	return resp.Members, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request failed: %w", err)
		}
		payload = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &APIError{Status: resp.StatusCode, Message: "unreadable response"}
	}
	if !env.Success {
		return &APIError{Status: resp.StatusCode, Message: env.Error}
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}
