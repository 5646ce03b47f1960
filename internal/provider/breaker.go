package provider

import (
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"StockScribe/internal/model"
)

// BreakerProvider wraps another provider with a circuit breaker so that a
// failing upstream gets a recovery window between watch runs instead of
// being hammered every cycle. Empty frames count as successes; only
// transport and decode errors trip the breaker.
type BreakerProvider struct {
	inner Provider
	cb    *gobreaker.CircuitBreaker
}

func NewBreakerProvider(inner Provider) *BreakerProvider {
	settings := gobreaker.Settings{
		Name:        inner.Name(),
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			zap.S().Warnw("provider circuit state changed",
				"provider", name, "from", from.String(), "to", to.String())
		},
	}
	return &BreakerProvider{inner: inner, cb: gobreaker.NewCircuitBreaker(settings)}
}

func (b *BreakerProvider) Name() string { return b.inner.Name() }

func (b *BreakerProvider) Fetch(symbol string, q Query) (*model.Frame, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.Fetch(symbol, q)
	})
	if err != nil {
		return nil, err
	}
	return out.(*model.Frame), nil
}
