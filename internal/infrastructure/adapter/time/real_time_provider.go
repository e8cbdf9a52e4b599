package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/adspark/internal/domain/port/core"
)

// RealTimeProvider implements core.TimeProvider on top of the wall clock
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current UTC time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

func (p *RealTimeProvider) Sleep(d core.Duration) {
	time.Sleep(d.Std())
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

// NewTicker starts a ticker; the caller owns Stop
func (p *RealTimeProvider) NewTicker(d core.Duration) *time.Ticker {
	return time.NewTicker(d.Std())
}
