package gateway

import (
	"fmt"

	"github.com/sportsms/courtside/internal/billing/domain"
	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
)

// Registry maps provider tags to their gateways.
type Registry struct {
	gateways map[domain.PaymentProvider]domain.PaymentGateway
	fallback domain.PaymentGateway
}

// NewRegistry creates a registry with the given fallback gateway for
// providers without a dedicated integration.
func NewRegistry(fallback domain.PaymentGateway) *Registry {
	return &Registry{
		gateways: make(map[domain.PaymentProvider]domain.PaymentGateway),
		fallback: fallback,
	}
}

// Register binds a provider tag to a gateway.
func (r *Registry) Register(provider domain.PaymentProvider, gateway domain.PaymentGateway) {
	r.gateways[provider] = gateway
}

// For resolves the gateway for a provider. Known providers without a
// registered gateway fall back; unknown providers are rejected.
func (r *Registry) For(provider domain.PaymentProvider) (domain.PaymentGateway, error) {
	if !domain.KnownProvider(provider) {
		return nil, sharedDomain.ValidationError(fmt.Sprintf("unknown payment provider %q", provider))
	}
	if gateway, ok := r.gateways[provider]; ok {
		return gateway, nil
	}
	return r.fallback, nil
}
