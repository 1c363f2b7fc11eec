package runtime

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestCoordinator_panicking_query_still_releases_caller(t *testing.T) {
	req := require.New(t)
	c := NewCoordinator(logs.GetLoggerFromLevel(slog.LevelDebug), 1, nil)
	done := make(chan struct{})

	// When the query function panics
	req.Panics(func() {
		c.handle(inspect{fn: func() { panic("boom") }, done: done})
	})

	// Then the waiting caller is released
	select {
	case <-done:
	default:
		t.Fatal("done was not closed")
	}
}
