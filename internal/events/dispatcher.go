package events

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	AppointmentBooked        = "appointment_booked"
	AppointmentCancelled     = "appointment_cancelled"
	AppointmentStatusChanged = "appointment_status_changed"
)

type Event struct {
	Type          string    `json:"type"`
	AppointmentID uint      `json:"appointment_id"`
	ActorID       uint      `json:"actor_id"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Publisher delivers one event to whoever listens for appointment changes.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	publisher Publisher
	log       *logrus.Logger
	queue     chan Event
	timeout   time.Duration

	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(publisher Publisher, log *logrus.Logger, size int) *Dispatcher {
	if size <= 0 {
		size = 100
	}

	d := &Dispatcher{
		publisher: publisher,
		log:       log,
		queue:     make(chan Event, size),
		timeout:   5 * time.Second,
		done:      make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		if err := d.publisher.Publish(ctx, ev); err != nil {
			d.log.WithError(err).
				WithField("event", ev.Type).
				WithField("appointment_id", ev.AppointmentID).
				Warn("event publish failed")
		}
		cancel()
	}
}

// Dispatch never blocks the request: when the queue is full the event is
// dropped and logged. A nil or closed Dispatcher discards everything.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.WithField("event", ev.Type).Warn("dispatcher closed, dropping event")
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.WithField("event", ev.Type).Warn("event queue full, dropping event")
	}
}

// Close stops accepting events and waits for the queue to drain.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.queue)
		d.mu.Unlock()
	})
	<-d.done
}
