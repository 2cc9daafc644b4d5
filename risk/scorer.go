package risk

import (
	"math/rand"
	"sync"
	"time"
)

// Firmware older than this gets a flat risk bump.
const staleFirmwareAge = 180 // days

// maxResidual bounds the random residual factor: [0, 2] inclusive.
const maxResidual = 2

// Rand is the source of the residual risk factor. Production uses the
// locked package-level math/rand source; tests substitute a fixed sequence.
type Rand interface {
	Intn(n int) int
}

// globalRand delegates to the package-level math/rand functions, which are
// safe for concurrent use.
type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// Scorer computes device risk levels from the base risk table plus
// firmware-age and residual adjustments
type Scorer struct {
	table *Table

	mu  sync.Mutex
	rng Rand
}

// NewScorer creates a scorer backed by the shared package-level random source
func NewScorer(table *Table) *Scorer {
	return &Scorer{table: table, rng: globalRand{}}
}

// NewScorerWithRand creates a scorer with an injected random source.
// The source is serialized behind the scorer's mutex, so it does not need
// to be safe for concurrent use itself.
func NewScorerWithRand(table *Table, rng Rand) *Scorer {
	return &Scorer{table: table, rng: rng}
}

// Table returns the scorer's base risk table
func (s *Scorer) Table() *Table {
	return s.table
}

// Score computes the risk level for a device:
// base risk from the table, +2 when the firmware is more than 180 whole
// days old, plus a random residual in [0, 2] for unmodeled exposure.
// The result is unclamped; unknown type/version pairs start from 0.
func (s *Scorer) Score(deviceType, firmwareVersion string, createdAt, now time.Time) int {
	base := s.table.BaseRisk(deviceType, firmwareVersion)

	ageDays := int(now.Sub(createdAt).Hours() / 24)
	if ageDays > staleFirmwareAge {
		base += 2
	}

	s.mu.Lock()
	base += s.rng.Intn(maxResidual + 1)
	s.mu.Unlock()

	return base
}
