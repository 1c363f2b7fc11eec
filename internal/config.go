package internal

import (
	"fmt"
	"strings"
	"time"
)

// Config is the relay server configuration, read from the environment.
type Config struct {
	Host               string        `env:"HOST,default=0.0.0.0"`
	Port               int           `env:"PORT,default=8080"`
	GrpcPort           int           `env:"GRPC_PORT,default=9090"`
	LogLevel           string        `env:"LOG_LEVEL,default=INFO"`
	BadgerFilepath     string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath      string        `env:"BLUGE_FILEPATH,required=true"`
	OutboxCapacity     int           `env:"OUTBOX_CAPACITY,default=100"`
	CommandBufferSize  int           `env:"COMMAND_BUFFER_SIZE,default=1024"`
	RestartInterval    time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	MetricInterval     time.Duration `env:"METRIC_INTERVAL,default=5s"`
	AuthTokenDuration  time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	JwtSecret          string        `env:"JWT_SECRET,required=true"`
	MaxContentLength   int           `env:"MAX_CONTENT_LENGTH,default=2000"`
	CharReplacement    string        `env:"CHARACTER_REPLACEMENT,default=*"`
	CorsAllowedOrigins string        `env:"CORS_ALLOWED_ORIGINS,default=*"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

func (c Config) Validate() error {
	if len(c.JwtSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 bytes long")
	}
	if c.OutboxCapacity <= 0 {
		return fmt.Errorf("OUTBOX_CAPACITY must be positive, got %d", c.OutboxCapacity)
	}
	if c.CommandBufferSize <= 0 {
		return fmt.Errorf("COMMAND_BUFFER_SIZE must be positive, got %d", c.CommandBufferSize)
	}
	return nil
}

// AllowedOrigins splits the comma separated CORS_ALLOWED_ORIGINS.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.CorsAllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
