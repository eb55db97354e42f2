package domain

import "context"

// VerificationResult is a gateway's verdict on a payment. A transport or
// provider outage never arrives here; it surfaces as an error from Verify so
// callers can tell "try again" from "payment rejected".
type VerificationResult struct {
	Status  PaymentStatus
	Message string
}

// PaymentGateway verifies a payment against its external provider.
// Implementations must be idempotent under retry: verifying the same payment
// twice yields the same terminal status.
type PaymentGateway interface {
	Verify(ctx context.Context, payment *Payment) (VerificationResult, error)
}

// GatewayRegistry resolves the gateway for a provider tag. An unknown
// provider is a validation error.
type GatewayRegistry interface {
	For(provider PaymentProvider) (PaymentGateway, error)
}
