package e2e

import (
	"chat-relay/auth"
	"chat-relay/client"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

type BaseRelaySuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseRelaySuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.RelayURL == "" {
		s.T().Skip("RELAY_URL not set")
	}
}

// Step prints a colorized header for a scenario step in logs.
func (s *BaseRelaySuite) Step(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}

// NewUser registers a throwaway account and returns a client authenticated as it.
func (s *BaseRelaySuite) NewUser(ctx context.Context, prefix string) *client.Client {
	anonymous := client.New(s.Config.RelayURL, "")
	username := prefix + uuid.NewString()[:8]
	session, err := anonymous.Register(ctx, auth.RegisterRequest{
		Username: username,
		Email:    username + "@e2e.example",
		Password: "E2e-Password-123",
	})
	s.Require().NoError(err)
	return anonymous.WithToken(session.Token)
}
