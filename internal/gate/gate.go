// Package gate decides whether the time-limited routes are still served.
//
// The gate opens at process start and closes for good once the wall clock reaches
// the configured cutoff. No state is stored; every call re-reads the clock.
package gate

import "time"

// ClosedMessage is the plain-text body returned once the gate has closed.
const ClosedMessage = "This endpoint is no longer available"

// IsOpen reports whether now is strictly before cutoff.
func IsOpen(now, cutoff time.Time) bool {
	return now.Before(cutoff)
}

// Gate pairs a cutoff with the clock it is compared against.
type Gate struct {
	cutoff time.Time
	now    func() time.Time
}

// New returns a Gate using the wall clock.
func New(cutoff time.Time) *Gate {
	return NewWithClock(cutoff, time.Now)
}

// NewWithClock returns a Gate reading the time from now. A nil now falls back to time.Now.
func NewWithClock(cutoff time.Time, now func() time.Time) *Gate {
	if now == nil {
		now = time.Now
	}
	return &Gate{cutoff: cutoff, now: now}
}

// Open reports whether gated routes may still run.
func (g *Gate) Open() bool {
	return IsOpen(g.now(), g.cutoff)
}

// Cutoff returns the configured expiry instant.
func (g *Gate) Cutoff() time.Time {
	return g.cutoff
}
