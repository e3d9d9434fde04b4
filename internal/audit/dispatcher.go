package audit

import "github.com/rs/zerolog/log"

// Event captures one appointment status transition.
type Event struct {
	ShopID        uint
	BarberID      uint
	ClientID      uint
	AppointmentID uint

	// Resulting status after the transition.
	Status string
}

// Recorder accepts transition events. Usecases depend on this rather than
// the concrete dispatcher so tests can capture events synchronously.
type Recorder interface {
	Dispatch(ev Event)
}

// Dispatcher writes events from a background worker. The audit trail is for
// reporting, not correctness: a write failure is logged and dropped, and a
// full queue sheds events rather than blocking the transition that produced
// them.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(ev); err != nil {
			log.Error().Err(err).
				Uint("appointment_id", ev.AppointmentID).
				Str("status", ev.Status).
				Msg("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Warn().Uint("appointment_id", ev.AppointmentID).Msg("audit queue full, dropping event")
	}
}

var _ Recorder = (*Dispatcher)(nil)
