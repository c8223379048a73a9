package account

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RateSource supplies the published EUR to RON exchange rate. The account
// depends on this interface, not on a concrete implementation, so tests
// can substitute a fixed-value double.
//
//go:generate mockgen -destination=mocks/mock_interface.go -source=interface.go RateSource,Clock
type RateSource interface {
	// EurRonRate returns how many RON one EUR buys. Implementations may
	// block on network I/O; they must honor the context and return an
	// error wrapping domain.ErrRateUnavailable on any failure.
	EurRonRate(ctx context.Context) (decimal.Decimal, error)
}

// Clock abstracts wall-clock time so daily-limit rollover and record
// timestamps are deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
