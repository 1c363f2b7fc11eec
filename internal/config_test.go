package internal

import (
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_defaults(t *testing.T) {
	req := require.New(t)
	var config Config

	err := env.Unmarshal(env.EnvSet{
		"BADGER_FILEPATH":      "/tmp/badger",
		"BLUGE_FILEPATH":       "/tmp/bluge",
		"JWT_SECRET":           "0123456789abcdef0123456789abcdef",
		"CORS_ALLOWED_ORIGINS": "http://a.example, ,http://b.example",
	}, &config)

	req.NoError(err)
	req.NoError(config.Validate())
	req.Equal(8080, config.Port)
	req.Equal(100, config.OutboxCapacity)
	req.Equal(24*time.Hour, config.AuthTokenDuration)
	req.Equal([]string{"http://a.example", "http://b.example"}, config.AllowedOrigins())
}

func TestConfig_Validate(t *testing.T) {
	req := require.New(t)
	config := Config{JwtSecret: "short", OutboxCapacity: 100, CommandBufferSize: 10}
	req.Error(config.Validate())

	config.JwtSecret = "0123456789abcdef0123456789abcdef"
	config.OutboxCapacity = 0
	req.Error(config.Validate())
}

func TestCharacterRune(t *testing.T) {
	req := require.New(t)

	r, err := CharacterRune("€")
	req.NoError(err)
	req.Equal('€', r)

	_, err = CharacterRune("**")
	req.Error(err)
	_, err = CharacterRune("")
	req.Error(err)
}
