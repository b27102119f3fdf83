package leadqueue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sunvolt/solarsite/internal/domain/lead"
)

func TestImmediateDispatcherDeliversRecord(t *testing.T) {
	var (
		mu       sync.Mutex
		received []lead.Record
	)
	done := make(chan struct{})

	dispatcher := NewImmediateDispatcher(nil)
	dispatcher.SetHandler(func(_ context.Context, rec lead.Record) {
		mu.Lock()
		received = append(received, rec)
		mu.Unlock()
		close(done)
	})

	err := dispatcher.Enqueue(context.Background(), lead.Record{Location: "Jaipur", SystemSizeKw: "3 kW"})
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler was not invoked")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 1)
	require.Equal(t, "Jaipur", received[0].Location)
}

func TestImmediateDispatcherOutlivesCancelledRequest(t *testing.T) {
	done := make(chan struct{})
	var handlerErr error

	dispatcher := NewImmediateDispatcher(func(ctx context.Context, _ lead.Record) {
		handlerErr = ctx.Err()
		close(done)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, dispatcher.Enqueue(ctx, lead.Record{}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler was not invoked")
	}
	require.NoError(t, handlerErr)
}

func TestImmediateDispatcherNilHandler(t *testing.T) {
	dispatcher := NewImmediateDispatcher(nil)
	require.NoError(t, dispatcher.Enqueue(context.Background(), lead.Record{}))
}
