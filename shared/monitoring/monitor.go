package monitoring

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Monitor tracks request outcomes for the health endpoint. Guarded by a
// mutex: the server handles requests concurrently even though each request
// is internally sequential.
type Monitor struct {
	mu             sync.Mutex
	served         int
	failed         int
	lastRunSuccess bool
	lastRunTime    time.Time
}

func NewMonitor() *Monitor {
	return &Monitor{}
}

func (m *Monitor) RecordSuccess(summary string, duration time.Duration) {
	m.mu.Lock()
	m.served++
	m.lastRunSuccess = true
	m.lastRunTime = time.Now()
	m.mu.Unlock()

	log.Info().Msgf("Analysis completed - %s (took %v)", summary, duration)
}

func (m *Monitor) RecordFailure(err error, duration time.Duration) {
	m.mu.Lock()
	m.failed++
	m.lastRunSuccess = false
	m.lastRunTime = time.Now()
	m.mu.Unlock()

	log.Warn().Msgf("Analysis failed: %v (took %v)", err, duration)
}

func (m *Monitor) IsHealthy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lastRunTime.IsZero() {
		return true // No requests yet, assume healthy
	}
	return m.lastRunSuccess
}

func (m *Monitor) StatusSummary() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lastRunTime.IsZero() {
		return "No analyses yet"
	}

	outcome := "ok"
	if !m.lastRunSuccess {
		outcome = "failed"
	}
	return fmt.Sprintf("%d served, %d failed, last run %s at %s",
		m.served, m.failed, outcome, m.lastRunTime.Format("Jan 2 15:04"))
}
