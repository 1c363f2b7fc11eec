// Package runtime owns the relay state: sessions, room membership and fan-out.
// It orchestrates delivery without containing transport or persistence concerns.
package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

const DefaultCommandBufferSize = 1024

// Ensure *Coordinator implements the contract.Worker interface at compile time.
var _ contract.Worker = (*Coordinator)(nil)

// Coordinator is the single writer of the relay state.
// Any number of goroutines submit commands through Dispatch; Run drains them
// one at a time so no two mutations interleave and every fan-out sees the
// membership produced by the commands ordered before it.
// Sessions and Membership are never touched outside the Run goroutine.
type Coordinator struct {
	log      *slog.Logger
	commands chan Command
	sessions *Sessions
	rooms    *Membership
	metrics  contract.RelayMetrics
	now      func() time.Time
}

type Stats struct {
	Sessions int `json:"sessions"`
	Rooms    int `json:"rooms"`
	Pending  int `json:"pending_commands"`
	Capacity int `json:"command_capacity"`
}

func NewCoordinator(log *slog.Logger, bufferSize int, metrics contract.RelayMetrics) *Coordinator {
	if bufferSize <= 0 {
		bufferSize = DefaultCommandBufferSize
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Coordinator{
		log:      log,
		commands: make(chan Command, bufferSize),
		sessions: NewSessions(),
		rooms:    NewMembership(),
		metrics:  metrics,
		now:      time.Now,
	}
}

// Dispatch queues cmd. It blocks while the queue is full, until ctx is done.
// Commands already queued are processed even if their sender goes away.
func (c *Coordinator) Dispatch(ctx context.Context, cmd Command) error {
	select {
	case c.commands <- cmd:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes commands until ctx is canceled, then closes every outbox so
// the connections draining them terminate.
func (c *Coordinator) Run(ctx context.Context) error {
	c.log.Info("Coordinator started")
	for {
		select {
		case <-ctx.Done():
			c.shutdown()
			c.log.Info("Coordinator stopped")
			return nil
		case cmd := <-c.commands:
			c.handle(cmd)
		}
	}
}

func (c *Coordinator) handle(cmd Command) {
	switch cmd := cmd.(type) {
	case RegisterSession:
		c.register(cmd)
	case UnregisterSession:
		c.unregister(cmd)
	case JoinRoom:
		c.join(cmd)
	case LeaveRoom:
		c.leave(cmd)
	case Broadcast:
		c.roomSend(domain.NewText(cmd.Room, cmd.Sender, cmd.Content, cmd.Lang, c.now()), cmd.Sender)
	case Typing:
		c.roomSend(domain.NewTyping(cmd.Room, cmd.Sender, c.now()), cmd.Sender)
	case Read:
		c.roomSend(domain.NewRead(cmd.Room, cmd.Sender, cmd.MessageID, c.now()), cmd.Sender)
	case System:
		c.roomSend(domain.NewSystem(cmd.Room, cmd.Content, c.now()), "")
	case DirectSend:
		c.direct(cmd)
	case inspect:
		c.runQuery(cmd)
		return
	default:
		c.log.Warn("Unknown command", "type", fmt.Sprintf("%T", cmd))
		return
	}
	c.metrics.Population(c.sessions.Len(), c.rooms.Len())
}

func (c *Coordinator) register(cmd RegisterSession) {
	if evicted := c.sessions.Register(cmd.User, cmd.Outbox); evicted != nil {
		c.log.Info("Session replaced by a newer connection", "user_id", cmd.User)
		evicted.Close()
	}
	c.log.Debug("Session registered", "user_id", cmd.User, "sessions", c.sessions.Len())
}

func (c *Coordinator) unregister(cmd UnregisterSession) {
	if !c.sessions.Unregister(cmd.User, cmd.Outbox) {
		c.log.Debug("Stale or repeated unregister ignored", "user_id", cmd.User)
		return
	}
	cmd.Outbox.Close()
	c.log.Debug("Session unregistered", "user_id", cmd.User, "sessions", c.sessions.Len())
}

// join only accepts the handle currently registered for the user: a join
// queued by an evicted connection must not displace the live one.
func (c *Coordinator) join(cmd JoinRoom) {
	if current, ok := c.sessions.Lookup(cmd.User); !ok || current != cmd.Outbox || cmd.Outbox.Closed() {
		c.log.Debug("Join from an unregistered handle ignored", "room_id", cmd.Room, "user_id", cmd.User)
		return
	}
	if !c.rooms.Join(cmd.Room, cmd.User, cmd.Outbox) {
		c.log.Debug("Already a member", "room_id", cmd.Room, "user_id", cmd.User)
		return
	}
	c.fanout(domain.NewJoin(cmd.Room, cmd.User, c.now()), cmd.User)
	c.log.Debug("Room joined", "room_id", cmd.Room, "user_id", cmd.User)
}

// leave notifies the remaining members before the slot is freed, so a
// later join with the same user id can never be confused with this departure.
func (c *Coordinator) leave(cmd LeaveRoom) {
	handle, ok := c.rooms.Member(cmd.Room, cmd.User)
	if !ok {
		c.log.Debug("Not a member, leave ignored", "room_id", cmd.Room, "user_id", cmd.User)
		return
	}
	if cmd.Outbox != nil && cmd.Outbox != handle {
		c.log.Debug("Stale leave ignored", "room_id", cmd.Room, "user_id", cmd.User)
		return
	}
	c.fanout(domain.NewLeave(cmd.Room, cmd.User, c.now()), cmd.User)
	c.rooms.Leave(cmd.Room, cmd.User, handle)
	if c.sessions.Unregister(cmd.User, handle) {
		handle.Close()
	}
	c.log.Debug("Room left", "room_id", cmd.Room, "user_id", cmd.User)
}

func (c *Coordinator) runQuery(cmd inspect) {
	defer close(cmd.done)
	cmd.fn()
}

func (c *Coordinator) roomSend(msg domain.Message, exclude domain.UserID) {
	if c.fanout(msg, exclude) == 0 {
		c.metrics.RoutingMiss(msg.Kind, "no_recipient")
		c.log.Debug("No recipient in room", "room_id", msg.RoomID, "kind", msg.Kind)
	}
}

// fanout serializes msg once and pushes it to every member but exclude.
func (c *Coordinator) fanout(msg domain.Message, exclude domain.UserID) int {
	members := c.rooms.Members(msg.RoomID)
	if len(members) == 0 {
		return 0
	}
	payload, err := msg.Encode()
	if err != nil {
		c.log.Error("Message encoding failed", "kind", msg.Kind, "error", err)
		return 0
	}
	delivered := 0
	for _, m := range members {
		if exclude != "" && m.UserID == exclude {
			continue
		}
		if c.deliver(m.Outbox, payload, msg.Kind) {
			delivered++
		}
	}
	return delivered
}

// direct delivers to the recipient when registered and echoes to the sender.
// An absent recipient is not reported to the sender.
func (c *Coordinator) direct(cmd DirectSend) {
	msg := domain.NewPrivate(cmd.From, cmd.To, cmd.Content, cmd.Lang, c.now())
	payload, err := msg.Encode()
	if err != nil {
		c.log.Error("Message encoding failed", "kind", msg.Kind, "error", err)
		return
	}
	if handle, ok := c.sessions.Lookup(cmd.To); ok {
		c.deliver(handle, payload, msg.Kind)
	} else {
		c.metrics.RoutingMiss(msg.Kind, "absent_recipient")
		c.log.Debug("Direct recipient not connected", "from", cmd.From, "to", cmd.To)
	}
	if cmd.From == cmd.To {
		return
	}
	if handle, ok := c.sessions.Lookup(cmd.From); ok {
		c.deliver(handle, payload, msg.Kind)
	}
}

func (c *Coordinator) deliver(handle *Outbox, payload []byte, kind domain.Kind) bool {
	accepted, evicted := handle.Push(payload)
	if evicted {
		c.metrics.Dropped(kind)
		c.log.Debug("Outbox full, oldest message dropped", "user_id", handle.Owner())
	}
	if accepted {
		c.metrics.Enqueued(kind)
	}
	return accepted
}

func (c *Coordinator) shutdown() {
	closed := 0
	for _, handle := range c.sessions.drain() {
		handle.Close()
		closed++
	}
	for _, roomID := range c.rooms.Rooms() {
		for _, m := range c.rooms.Members(roomID) {
			m.Outbox.Close()
		}
	}
	c.rooms.clear()
	c.metrics.Population(0, 0)
	c.log.Debug("Outboxes closed", "count", closed)
}

// query runs fn on the coordinator goroutine and waits for it.
func (c *Coordinator) query(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	if err := c.Dispatch(ctx, inspect{fn: fn, done: done}); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Members returns the user ids currently in the room.
func (c *Coordinator) Members(ctx context.Context, roomID domain.RoomID) ([]domain.UserID, error) {
	var members []domain.UserID
	err := c.query(ctx, func() {
		members = lo.Map(c.rooms.Members(roomID), func(m Member, _ int) domain.UserID {
			return m.UserID
		})
	})
	return members, err
}

func (c *Coordinator) IsMember(ctx context.Context, roomID domain.RoomID, userID domain.UserID) (bool, error) {
	var ok bool
	err := c.query(ctx, func() {
		ok = c.rooms.IsMember(roomID, userID)
	})
	return ok, err
}

func (c *Coordinator) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	err := c.query(ctx, func() {
		stats = Stats{
			Sessions: c.sessions.Len(),
			Rooms:    c.rooms.Len(),
			Pending:  len(c.commands),
			Capacity: cap(c.commands),
		}
	})
	return stats, err
}

type noopMetrics struct{}

func (noopMetrics) Enqueued(domain.Kind)            {}
func (noopMetrics) Dropped(domain.Kind)             {}
func (noopMetrics) RoutingMiss(domain.Kind, string) {}
func (noopMetrics) Population(int, int)             {}
