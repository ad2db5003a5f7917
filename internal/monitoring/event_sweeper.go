package monitoring

import (
	"time"

	"github.com/mbelda/fridgechef-be/internal/services"
	"github.com/rs/zerolog/log"
)

// EventSweeper periodically removes audit events older than the configured
// retention window.
type EventSweeper struct {
	eventSvc  services.EventServiceProvider
	retention time.Duration
	ticker    *time.Ticker
	done      chan bool
}

// NewEventSweeper creates a new EventSweeper.
func NewEventSweeper(eventSvc services.EventServiceProvider, retention time.Duration) *EventSweeper {
	return &EventSweeper{
		eventSvc:  eventSvc,
		retention: retention,
		done:      make(chan bool),
	}
}

// Run starts the periodic sweep.
func (es *EventSweeper) Run() {
	log.Info().Dur("retention", es.retention).Msg("Starting background event sweeper...")
	es.ticker = time.NewTicker(1 * time.Hour)
	defer es.ticker.Stop()

	// Run once immediately on start
	es.sweep()

	for {
		select {
		case <-es.done:
			log.Info().Msg("Stopping background event sweeper.")
			return
		case <-es.ticker.C:
			es.sweep()
		}
	}
}

// Stop halts the periodic sweep.
func (es *EventSweeper) Stop() {
	es.done <- true
}

func (es *EventSweeper) sweep() {
	cutoff := time.Now().Add(-es.retention)
	removed, err := es.eventSvc.PruneOlderThan(cutoff)
	if err != nil {
		log.Error().Err(err).Msg("EventSweeper: Failed to prune old events")
		return
	}
	if removed > 0 {
		log.Info().Int64("removed", removed).Msg("EventSweeper: Pruned old events")
	}
}
