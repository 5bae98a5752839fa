package jobs

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/hrithikcode/TO-DO-LIST/internal/revocation"
)

// Scheduler runs periodic maintenance. The only job today is sweeping the
// in-memory revocation registry; the redis registry relies on key TTLs
// instead and needs no sweep.
type Scheduler struct {
	cron     *cron.Cron
	registry *revocation.MemoryRegistry
	log      zerolog.Logger
}

func NewScheduler(registry *revocation.MemoryRegistry, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		registry: registry,
		log:      log,
	}
}

func (s *Scheduler) Start() error {
	if s.registry == nil {
		return nil
	}

	if _, err := s.cron.AddFunc("0 0 * * * *", s.sweepRevocations); err != nil { // hourly
		return err
	}

	s.cron.Start()
	return nil
}

// Stop waits for any running job to finish, up to a short deadline.
func (s *Scheduler) Stop() {
	done := s.cron.Stop().Done()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.log.Warn().Msg("scheduler stop timed out")
	}
}

func (s *Scheduler) sweepRevocations() {
	removed := s.registry.Sweep()
	if removed > 0 {
		s.log.Info().Int("removed", removed).Msg("swept expired revocation entries")
	}
}
