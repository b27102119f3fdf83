package leadqueue

import (
	"context"

	"github.com/sunvolt/solarsite/internal/domain/lead"
)

// Handler consumes dispatched records, typically by writing them to the
// lead repository.
type Handler func(ctx context.Context, rec lead.Record)

// HandlerDispatcher supports setting a handler for record delivery.
type HandlerDispatcher interface {
	lead.Dispatcher
	SetHandler(handler Handler)
}

// ImmediateDispatcher hands each record to the handler on enqueue. It is
// the fallback when no Valkey queue is configured.
type ImmediateDispatcher struct {
	handler Handler
}

// NewImmediateDispatcher constructs the dispatcher.
func NewImmediateDispatcher(handler Handler) *ImmediateDispatcher {
	return &ImmediateDispatcher{handler: handler}
}

// SetHandler replaces the handler used for dispatched records.
func (d *ImmediateDispatcher) SetHandler(handler Handler) {
	d.handler = handler
}

// Enqueue invokes the handler in the background. The handler outlives the
// request context so a visitor disconnecting does not abort the write.
func (d *ImmediateDispatcher) Enqueue(ctx context.Context, rec lead.Record) error {
	if d.handler == nil {
		return nil
	}
	go d.handler(context.WithoutCancel(ctx), rec)
	return nil
}

var _ lead.Dispatcher = (*ImmediateDispatcher)(nil)
var _ HandlerDispatcher = (*ImmediateDispatcher)(nil)
