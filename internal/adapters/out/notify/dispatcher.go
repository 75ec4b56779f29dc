// Package notify provides the fire-and-forget change-event dispatcher.
// Events published after successful mutations are queued on a bounded buffer
// and delivered by a background goroutine; a full buffer drops the event
// rather than blocking the publisher.
package notify

import (
	"context"
	"sync"

	"fieldservice/internal/core/events"

	"go.uber.org/zap"
)

// DefaultBufferSize is the event queue capacity used by NewDispatcher.
const DefaultBufferSize = 256

// Sink receives events from the dispatcher, one at a time, on the
// dispatcher's delivery goroutine. Delivery errors are logged and the event
// is not retried.
type Sink interface {
	Deliver(ctx context.Context, event events.Event) error
}

// Dispatcher implements ports.ChangeNotifier on top of a buffered channel.
type Dispatcher struct {
	sink   Sink
	logger *zap.Logger

	queue chan events.Event
	done  chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewDispatcher creates a dispatcher delivering to the given sink and starts
// its delivery goroutine. Call Stop to drain the queue and shut it down.
func NewDispatcher(sink Sink, logger *zap.Logger) *Dispatcher {
	return NewDispatcherWithBuffer(sink, logger, DefaultBufferSize)
}

// NewDispatcherWithBuffer creates a dispatcher with a custom queue capacity.
func NewDispatcherWithBuffer(sink Sink, logger *zap.Logger, bufferSize int) *Dispatcher {
	d := &Dispatcher{
		sink:   sink,
		logger: logger,
		queue:  make(chan events.Event, bufferSize),
		done:   make(chan struct{}),
	}

	go d.deliverLoop()
	return d
}

// Publish enqueues an event for asynchronous delivery. Publish never blocks:
// when the queue is full or the dispatcher is stopped the event is dropped
// and the drop is logged.
func (d *Dispatcher) Publish(event events.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		d.logger.Warn("change event dropped, notifier stopped",
			zap.String("event_type", string(event.Type)),
			zap.String("work_order_id", event.WorkOrderID))
		return
	}

	select {
	case d.queue <- event:
	default:
		d.logger.Warn("change event dropped, queue full",
			zap.String("event_type", string(event.Type)),
			zap.String("work_order_id", event.WorkOrderID))
	}
}

// Stop closes the queue, waits for the already-enqueued events to be
// delivered, and stops the delivery goroutine.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}

func (d *Dispatcher) deliverLoop() {
	defer close(d.done)

	for event := range d.queue {
		if err := d.sink.Deliver(context.Background(), event); err != nil {
			d.logger.Warn("change event delivery failed",
				zap.String("event_type", string(event.Type)),
				zap.String("work_order_id", event.WorkOrderID),
				zap.Error(err))
		}
	}
}
