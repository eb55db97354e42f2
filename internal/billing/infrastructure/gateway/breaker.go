package gateway

import (
	"context"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/sportsms/courtside/internal/billing/domain"
)

// BreakerConfig configures the circuit breaker wrapped around a gateway.
type BreakerConfig struct {
	// MaxRequests is the number of probes allowed in half-open state.
	MaxRequests uint32

	// Interval is the cyclic period of the closed state.
	Interval time.Duration

	// Timeout is the period of the open state.
	Timeout time.Duration

	// FailureThreshold is the consecutive failure count that trips the breaker.
	FailureThreshold uint32
}

// DefaultBreakerConfig returns a sensible default configuration.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:      3,
		Interval:         10 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// BreakerGateway wraps a gateway with a circuit breaker so a provider outage
// fails fast instead of holding verification requests open.
type BreakerGateway struct {
	inner   domain.PaymentGateway
	breaker *gobreaker.CircuitBreaker[domain.VerificationResult]
}

// NewBreakerGateway wraps inner with a circuit breaker named after the provider.
func NewBreakerGateway(name string, inner domain.PaymentGateway, config BreakerConfig, logger *slog.Logger) *BreakerGateway {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("gateway circuit breaker state changed",
				slog.String("gateway", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	}

	return &BreakerGateway{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker[domain.VerificationResult](settings),
	}
}

// Verify runs the inner verification through the breaker. An open breaker
// surfaces as an error, never as a payment verdict.
func (g *BreakerGateway) Verify(ctx context.Context, payment *domain.Payment) (domain.VerificationResult, error) {
	return g.breaker.Execute(func() (domain.VerificationResult, error) {
		return g.inner.Verify(ctx, payment)
	})
}
