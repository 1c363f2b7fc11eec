package client

import (
	"chat-relay/domain"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
)

// Chat is a live WebSocket session. Send may be called from any goroutine,
// Receive from a single one.
type Chat struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Dial opens a session joined to room, the server default room when empty.
func (c *Client) Dial(ctx context.Context, room domain.RoomID) (*Chat, error) {
	u, err := url.Parse(c.baseURL + "/api/v1/ws")
	if err != nil {
		return nil, err
	}
	u.Scheme = strings.Replace(u.Scheme, "http", "ws", 1)
	if room != "" {
		u.RawQuery = url.Values{"room_id": {string(room)}}.Encode()
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.token)
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, u.String(), header)
	if err != nil {
		if resp != nil {
			return nil, &APIError{Status: resp.StatusCode, Message: err.Error()}
		}
		return nil, fmt.Errorf("dial %s failed: %w", u.Redacted(), err)
	}
	return &Chat{conn: conn}, nil
}

func (c *Chat) Send(frame domain.Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(frame)
}

func (c *Chat) Say(room domain.RoomID, content string) error {
	return c.Send(domain.Frame{Kind: domain.FrameMessage, RoomID: room, Content: content})
}

func (c *Chat) Whisper(to domain.UserID, content string) error {
	return c.Send(domain.Frame{Kind: domain.FrameMessage, RecipientID: to, Content: content})
}

func (c *Chat) Join(room domain.RoomID) error {
	return c.Send(domain.Frame{Kind: domain.FrameJoin, RoomID: room})
}

// Receive blocks until the next relay message or the end of the session.
func (c *Chat) Receive() (domain.Message, error) {
	_, data, err := c.conn.ReadMessage()
	if err != nil {
		return domain.Message{}, err
	}
	return domain.DecodeMessage(data)
}

// Close leaves every room then closes the socket.
func (c *Chat) Close() error {
	_ = c.Send(domain.Frame{Kind: domain.FrameLeave})
	return c.conn.Close()
}
