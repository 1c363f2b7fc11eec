package ws

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/runtime"
	"chat-relay/services"
	"context"
	stdErrors "errors"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Frame drop reasons reported to metrics.
const (
	dropInvalid   = "invalid"
	dropNotJoined = "not_joined"
	dropRejected  = "rejected"
)

var errLeft = stdErrors.New("connection left")

// Connection is one live socket. The read pump turns frames into chat
// commands, the write pump drains the outbox. joined is only touched by the
// read pump.
type Connection struct {
	log     *slog.Logger
	ws      *websocket.Conn
	chat    services.IChatService
	metrics contract.ConnectionMetrics
	user    domain.UserID
	outbox  *runtime.Outbox
	room    domain.RoomID
	joined  map[domain.RoomID]struct{}
}

func newConnection(log *slog.Logger, ws *websocket.Conn, chat services.IChatService,
	metrics contract.ConnectionMetrics, user domain.UserID, outbox *runtime.Outbox) *Connection {
	return &Connection{
		log:     log.With("user_id", user),
		ws:      ws,
		chat:    chat,
		metrics: metrics,
		user:    user,
		outbox:  outbox,
		joined:  make(map[domain.RoomID]struct{}),
	}
}

// serve blocks until the connection is over. Whatever ends it, every joined
// room is left and the session unregistered before it returns.
func (c *Connection) serve(ctx context.Context, room domain.RoomID) {
	written := make(chan struct{})
	go func() {
		defer close(written)
		c.writePump()
	}()

	if err := c.open(ctx, room); err != nil {
		c.log.Warn("Session opening failed", "room_id", room, "error", err)
	} else {
		c.readPump(ctx)
	}

	c.close(ctx)
	<-written
}

func (c *Connection) open(ctx context.Context, room domain.RoomID) error {
	if err := c.chat.Connect(ctx, c.user, c.outbox); err != nil {
		return err
	}
	if err := c.chat.Join(ctx, room, c.user, c.outbox); err != nil {
		return err
	}
	c.room = room
	c.joined[room] = struct{}{}
	c.log.Info("Connection opened", "room_id", room)
	return nil
}

func (c *Connection) close(ctx context.Context) {
	rooms := make([]domain.RoomID, 0, len(c.joined))
	for room := range c.joined {
		rooms = append(rooms, room)
	}
	// The request context may already be canceled; queued leaves must still go out.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeWait)
	defer cancel()
	if err := c.chat.Disconnect(ctx, c.user, c.outbox, rooms); err != nil {
		c.log.Warn("Disconnect not dispatched", "error", err)
	}
	// Lets the write pump finish even if the coordinator never handles the leave.
	c.outbox.Close()
	c.log.Info("Connection closed", "rooms", len(rooms), "dropped", c.outbox.Dropped())
}

func (c *Connection) readPump(ctx context.Context) {
	defer c.ws.Close()

	c.ws.SetReadLimit(maxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				c.log.Warn("Read error", "error", err)
			}
			return
		}
		if err := c.handle(ctx, data); stdErrors.Is(err, errLeft) {
			return
		}
	}
}

// handle applies one inbound frame. Only errLeft ends the connection:
// anything invalid or rejected is dropped and the socket stays open.
func (c *Connection) handle(ctx context.Context, data []byte) error {
	frame, err := domain.ParseFrame(data)
	if err != nil {
		c.drop(dropInvalid, err)
		return nil
	}

	switch frame.Kind {
	case domain.FrameLeave:
		return errLeft
	case domain.FrameJoin:
		if err := c.chat.Join(ctx, frame.RoomID, c.user, c.outbox); err != nil {
			c.drop(dropRejected, err)
			return nil
		}
		c.joined[frame.RoomID] = struct{}{}
		return nil
	}

	if frame.IsDirect() {
		if err := c.chat.SendDirect(ctx, c.user, frame.RecipientID, frame.Content); err != nil {
			c.drop(dropRejected, err)
		}
		return nil
	}

	room, ok := c.target(frame.RoomID)
	if !ok {
		c.drop(dropNotJoined, nil)
		return nil
	}
	switch frame.Kind {
	case domain.FrameMessage:
		err = c.chat.PostMessage(ctx, room, c.user, frame.Content)
	case domain.FrameTyping:
		err = c.chat.Typing(ctx, room, c.user)
	case domain.FrameRead:
		err = c.chat.Read(ctx, room, c.user, frame.MessageID)
	}
	if err != nil {
		c.drop(dropRejected, err)
	}
	return nil
}

// target resolves the room a frame addresses: its own room_id, or the
// connection room. Rooms this connection has not joined are refused.
func (c *Connection) target(room domain.RoomID) (domain.RoomID, bool) {
	if room == "" {
		room = c.room
	}
	_, ok := c.joined[room]
	return room, ok
}

func (c *Connection) drop(reason string, err error) {
	c.metrics.FrameDropped(reason)
	c.log.Debug("Frame dropped", "reason", reason, "error", err)
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case message, ok := <-c.outbox.C():
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Closed by leave, eviction or shutdown
				_ = c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
