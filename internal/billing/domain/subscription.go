package domain

import (
	"time"

	"github.com/google/uuid"

	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
)

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionExpired   SubscriptionStatus = "EXPIRED"
	SubscriptionSuspended SubscriptionStatus = "SUSPENDED"
)

// Subscription is the billing aggregate. The only directed lifecycle path is
// ACTIVE -> EXPIRED -> SUSPENDED, driven by the periodic sweep; payment
// verification is the single way back to ACTIVE. Subscriptions are never
// deleted, only superseded.
type Subscription struct {
	sharedDomain.BaseAggregateRoot
	subscriberType SubscriberType
	subscriberID   uuid.UUID
	planID         uuid.UUID
	status         SubscriptionStatus
	startDate      time.Time
	endDate        time.Time
	graceEndDate   time.Time
	autoRenew      bool
}

// NewSubscription creates an ACTIVE subscription starting today, with the
// end date computed from the plan's billing period and the grace end from
// the plan's grace days.
func NewSubscription(subscriberType SubscriberType, subscriberID uuid.UUID, plan *Plan, autoRenew bool, today time.Time) (*Subscription, error) {
	switch subscriberType {
	case SubscriberClub, SubscriberPlayer, SubscriberLeague:
	default:
		return nil, sharedDomain.ValidationError("unknown subscriber type")
	}
	if subscriberID == uuid.Nil {
		return nil, sharedDomain.ValidationError("subscriber id is required")
	}

	today = sharedDomain.DateOf(today)
	endDate := plan.PeriodEnd(today)

	s := &Subscription{
		BaseAggregateRoot: sharedDomain.NewBaseAggregateRoot(),
		subscriberType:    subscriberType,
		subscriberID:      subscriberID,
		planID:            plan.ID(),
		status:            SubscriptionActive,
		startDate:         today,
		endDate:           endDate,
		graceEndDate:      plan.GraceEnd(endDate),
		autoRenew:         autoRenew,
	}
	s.AddDomainEvent(NewSubscriptionCreated(s))
	return s, nil
}

// RehydrateSubscription recreates a subscription from persisted state.
func RehydrateSubscription(
	entity sharedDomain.BaseEntity,
	subscriberType SubscriberType,
	subscriberID uuid.UUID,
	planID uuid.UUID,
	status SubscriptionStatus,
	startDate, endDate, graceEndDate time.Time,
	autoRenew bool,
) *Subscription {
	return &Subscription{
		BaseAggregateRoot: sharedDomain.RehydrateBaseAggregateRoot(entity),
		subscriberType:    subscriberType,
		subscriberID:      subscriberID,
		planID:            planID,
		status:            status,
		startDate:         startDate,
		endDate:           endDate,
		graceEndDate:      graceEndDate,
		autoRenew:         autoRenew,
	}
}

func (s *Subscription) SubscriberType() SubscriberType { return s.subscriberType }
func (s *Subscription) SubscriberID() uuid.UUID        { return s.subscriberID }
func (s *Subscription) PlanID() uuid.UUID              { return s.planID }
func (s *Subscription) Status() SubscriptionStatus     { return s.status }
func (s *Subscription) StartDate() time.Time           { return s.startDate }
func (s *Subscription) EndDate() time.Time             { return s.endDate }
func (s *Subscription) GraceEndDate() time.Time        { return s.graceEndDate }
func (s *Subscription) AutoRenew() bool                { return s.autoRenew }

// StatusFor computes the lifecycle state the subscription should hold on the
// given day. SUSPENDED takes precedence over EXPIRED when both grace end and
// end date are in the past; a subscription still inside its grace window is
// EXPIRED, not SUSPENDED. Pure function of (subscription, today), so the
// sweep is idempotent.
func (s *Subscription) StatusFor(today time.Time) SubscriptionStatus {
	today = sharedDomain.DateOf(today)
	switch {
	case s.endDate.Before(today) && s.graceEndDate.Before(today):
		return SubscriptionSuspended
	case s.endDate.Before(today):
		return SubscriptionExpired
	default:
		return s.status
	}
}

// Reevaluate transitions the subscription to the state StatusFor computes.
// It reports whether the status changed.
func (s *Subscription) Reevaluate(today time.Time) bool {
	next := s.StatusFor(today)
	if next == s.status {
		return false
	}
	prev := s.status
	s.status = next
	s.Touch()
	s.AddDomainEvent(NewSubscriptionStatusChanged(s, prev))
	return true
}

// Reactivate returns the subscription to ACTIVE. Only called when a payment
// for it verifies as PAID; there is no other way back to ACTIVE.
func (s *Subscription) Reactivate() {
	if s.status == SubscriptionActive {
		return
	}
	prev := s.status
	s.status = SubscriptionActive
	s.Touch()
	s.AddDomainEvent(NewSubscriptionStatusChanged(s, prev))
}
