package runtime

import "chat-relay/domain"

// Command is processed by the Coordinator, one at a time, in submission order.
// The set is closed: only types of this package implement it.
type Command interface {
	isCommand()
}

type RegisterSession struct {
	User   domain.UserID
	Outbox *Outbox
}

type UnregisterSession struct {
	User   domain.UserID
	Outbox *Outbox
}

// JoinRoom adds User to Room. It is ignored unless Outbox is the handle
// currently registered for User.
type JoinRoom struct {
	Room   domain.RoomID
	User   domain.UserID
	Outbox *Outbox
}

// LeaveRoom removes User from Room. A nil Outbox removes whichever handle is
// in the room; otherwise a mismatching handle makes it a no-op.
type LeaveRoom struct {
	Room   domain.RoomID
	User   domain.UserID
	Outbox *Outbox
}

type Broadcast struct {
	Room    domain.RoomID
	Sender  domain.UserID
	Content string
	Lang    string
}

type Typing struct {
	Room   domain.RoomID
	Sender domain.UserID
}

type Read struct {
	Room      domain.RoomID
	Sender    domain.UserID
	MessageID string
}

type System struct {
	Room    domain.RoomID
	Content string
}

type DirectSend struct {
	From    domain.UserID
	To      domain.UserID
	Content string
	Lang    string
}

// inspect runs fn on the coordinator goroutine, serialized with mutations.
type inspect struct {
	fn   func()
	done chan struct{}
}

func (RegisterSession) isCommand()   {}
func (UnregisterSession) isCommand() {}
func (JoinRoom) isCommand()          {}
func (LeaveRoom) isCommand()         {}
func (Broadcast) isCommand()         {}
func (Typing) isCommand()            {}
func (Read) isCommand()              {}
func (System) isCommand()            {}
func (DirectSend) isCommand()        {}
func (inspect) isCommand()           {}
