package runtime_test

import (
	"chat-relay/runtime"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func drain(o *runtime.Outbox) []string {
	var out []string
	for {
		select {
		case msg, ok := <-o.C():
			if !ok {
				return out
			}
			out = append(out, string(msg))
		default:
			return out
		}
	}
}

func TestOutbox_Push_keeps_most_recent_when_full(t *testing.T) {
	req := require.New(t)

	// Given an outbox of capacity 3
	o := runtime.NewOutbox("alice", 3)

	// When 5 messages are pushed without any consumer
	var evictions int
	for i := 1; i <= 5; i++ {
		accepted, evicted := o.Push([]byte(fmt.Sprintf("m%d", i)))
		req.True(accepted)
		if evicted {
			evictions++
		}
	}

	// Then only the 3 most recent remain, in order
	req.Equal(2, evictions)
	req.Equal(uint64(2), o.Dropped())
	req.Equal([]string{"m3", "m4", "m5"}, drain(o))
}

func TestOutbox_capacity_plus_one(t *testing.T) {
	req := require.New(t)
	o := runtime.NewOutbox("alice", runtime.DefaultOutboxCapacity)

	for i := 0; i <= runtime.DefaultOutboxCapacity; i++ {
		o.Push([]byte(fmt.Sprintf("%d", i)))
	}

	got := drain(o)
	req.Len(got, runtime.DefaultOutboxCapacity)
	req.Equal("1", got[0])
	req.Equal(fmt.Sprintf("%d", runtime.DefaultOutboxCapacity), got[len(got)-1])
}

func TestOutbox_default_capacity(t *testing.T) {
	req := require.New(t)
	req.Equal(runtime.DefaultOutboxCapacity, runtime.NewOutbox("alice", 0).Cap())
	req.Equal(7, runtime.NewOutbox("alice", 7).Cap())
}

func TestOutbox_Close(t *testing.T) {
	req := require.New(t)

	// Given an outbox holding two messages
	o := runtime.NewOutbox("alice", 4)
	o.Push([]byte("a"))
	o.Push([]byte("b"))

	// When it is closed twice
	o.Close()
	o.Close()

	// Then pushes are refused and queued messages are still readable
	accepted, evicted := o.Push([]byte("c"))
	req.False(accepted)
	req.False(evicted)
	req.True(o.Closed())
	req.Equal([]string{"a", "b"}, drain(o))

	_, ok := <-o.C()
	req.False(ok)
}

func TestOutbox_concurrent_push_and_drain(t *testing.T) {
	req := require.New(t)
	o := runtime.NewOutbox("alice", 8)

	var received int
	done := make(chan struct{})
	go func() {
		defer close(done)
		for range o.C() {
			received++
		}
	}()

	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				o.Push([]byte("x"))
			}
		}()
	}
	wg.Wait()
	o.Close()
	<-done

	req.Equal(uint64(1000), uint64(received)+o.Dropped())
}
