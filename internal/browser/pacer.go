package browser

import (
	"context"
	"math"

	"golang.org/x/time/rate"
)

// Pacer spaces out page navigations so parallel scenarios do not hammer the
// public demo site. A nil Pacer, or one built with a zero rate, never waits.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer allows perSecond navigations per second with a burst of one per
// started second. Zero or negative disables pacing.
func NewPacer(perSecond float64) *Pacer {
	if perSecond <= 0 {
		return &Pacer{}
	}
	burst := int(math.Ceil(perSecond))
	return &Pacer{limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Wait blocks until the next navigation may start or ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.limiter == nil {
		return nil
	}
	return p.limiter.Wait(ctx)
}

// Enabled reports whether the pacer ever waits.
func (p *Pacer) Enabled() bool {
	return p != nil && p.limiter != nil
}
