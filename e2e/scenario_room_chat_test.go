package e2e

import (
	"chat-relay/domain"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type RoomChatSuite struct {
	BaseRelaySuite
}

func TestRoomChatSuite(t *testing.T) {
	suite.Run(t, new(RoomChatSuite))
}

func (s *RoomChatSuite) TestBroadcastThenLeave() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	t := s.T()
	room := domain.RoomID("e2e-" + uuid.NewString()[:8])

	s.Step(t, "Alice and Bob join "+string(room))
	alice := s.NewUser(ctx, "alice")
	bob := s.NewUser(ctx, "bob")
	aliceChat, err := alice.Dial(ctx, room)
	s.Require().NoError(err)
	s.Require().Eventually(func() bool {
		members, err := alice.Members(ctx, room)
		return err == nil && len(members) == 1
	}, 5*time.Second, 50*time.Millisecond)
	bobChat, err := bob.Dial(ctx, room)
	s.Require().NoError(err)
	defer bobChat.Close()

	joined, err := aliceChat.Receive()
	s.Require().NoError(err)
	s.Equal(domain.KindJoin, joined.Kind)

	s.Step(t, "Alice broadcasts")
	s.Require().NoError(aliceChat.Say(room, "hello from e2e"))
	msg, err := bobChat.Receive()
	s.Require().NoError(err)
	s.Equal(domain.KindText, msg.Kind)
	s.Equal("hello from e2e", msg.Content)

	s.Step(t, "Alice leaves")
	s.Require().NoError(aliceChat.Close())
	left, err := bobChat.Receive()
	s.Require().NoError(err)
	s.Equal(domain.KindLeave, left.Kind)

	members, err := bob.Members(ctx, room)
	s.Require().NoError(err)
	s.Len(members, 1)
}
