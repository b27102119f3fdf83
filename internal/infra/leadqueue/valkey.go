package leadqueue

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/sunvolt/solarsite/internal/domain/lead"
)

// ValkeyDispatcher buffers records in a Valkey list and delivers them to a
// handler from a worker loop. Enqueue returns as soon as the push lands, so
// the estimate response never waits on the database.
type ValkeyDispatcher struct {
	client      valkey.Client
	queueKey    string
	handler     Handler
	logger      *slog.Logger
	stop        chan struct{}
	done        chan struct{}
	stopOnce    sync.Once
	startOnce   sync.Once
	pollTimeout time.Duration
}

// NewValkeyDispatcher constructs a Valkey-backed dispatcher.
func NewValkeyDispatcher(client valkey.Client, queueKey string, logger *slog.Logger) *ValkeyDispatcher {
	if queueKey == "" {
		queueKey = "solarsite:leads"
	}
	return &ValkeyDispatcher{
		client:      client,
		queueKey:    queueKey,
		logger:      logger,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
		pollTimeout: 5 * time.Second,
	}
}

// SetHandler starts the worker loop that pops records and invokes the handler.
// The loop starts once; done is closed when it exits.
func (d *ValkeyDispatcher) SetHandler(handler Handler) {
	d.handler = handler
	if handler == nil {
		return
	}
	d.startOnce.Do(func() { go d.consume() })
}

// Enqueue pushes a record onto the queue.
func (d *ValkeyDispatcher) Enqueue(ctx context.Context, rec lead.Record) error {
	encoded, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	cmd := d.client.B().Lpush().Key(d.queueKey).Element(string(encoded)).Build()
	return d.client.Do(ctx, cmd).Error()
}

// Close stops the worker loop. Records already in the list stay there until
// the next start.
func (d *ValkeyDispatcher) Close() {
	d.stopOnce.Do(func() { close(d.stop) })
}

func (d *ValkeyDispatcher) consume() {
	defer close(d.done)
	ctx := context.Background()
	for {
		select {
		case <-d.stop:
			return
		default:
		}
		resp := d.client.Do(ctx, d.client.B().Brpop().Key(d.queueKey).Timeout(d.pollTimeout.Seconds()).Build())
		values, err := resp.ToArray()
		if err != nil {
			// A closed client surfaces as a pop error during shutdown.
			select {
			case <-d.stop:
				return
			default:
			}
			if !valkey.IsValkeyNil(err) {
				d.logger.Warn("lead queue pop failed", "error", err)
			}
			continue
		}
		if len(values) < 2 || d.handler == nil {
			continue
		}
		raw, err := values[1].ToString()
		if err != nil {
			d.logger.Warn("lead queue payload decode failed", "error", err)
			continue
		}
		var rec lead.Record
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			d.logger.Warn("lead queue unmarshal failed", "error", err)
			continue
		}
		d.handler(ctx, rec)
	}
}

var _ lead.Dispatcher = (*ValkeyDispatcher)(nil)
var _ HandlerDispatcher = (*ValkeyDispatcher)(nil)
