package audit

import (
	"go.uber.org/zap"

	"github.com/medpoint/hospital-scheduler/internal/metrics"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	logger  *Logger
	log     *zap.Logger
	metrics *metrics.Collector
	queue   chan Event
}

func NewDispatcher(logger *Logger, log *zap.Logger, m *metrics.Collector) *Dispatcher {
	d := &Dispatcher{
		logger:  logger,
		log:     log,
		metrics: m,
		queue:   make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Error("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
			continue
		}
		d.metrics.AuditEntriesTotal.Inc()
	}
}

// Dispatch never blocks a request: when the queue is full the event is
// dropped and counted. A nil dispatcher discards everything, which
// keeps the trail optional for callers that run without storage.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		d.metrics.AuditBufferDropped.Inc()
		d.log.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
		)
	}
}
