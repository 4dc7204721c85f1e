package policy

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/parametriclabs/policyd/internal/adapter"
	"github.com/parametriclabs/policyd/internal/auth"
	"github.com/parametriclabs/policyd/internal/domain"
	"github.com/parametriclabs/policyd/internal/logger"
	"github.com/parametriclabs/policyd/internal/messaging"
	"github.com/parametriclabs/policyd/internal/oracle"
	"github.com/parametriclabs/policyd/internal/store"
	"github.com/parametriclabs/policyd/internal/treasury"
)

// InitializeInput carries the immutable terms of a new policy
type InitializeInput struct {
	Authority        domain.Identity
	PolicyHolder     domain.Identity
	OracleFeedID     domain.Identity
	TriggerThreshold int64
	CoverageAmount   uint64
	PremiumAmount    uint64
	ExpiryTime       time.Time
}

// Engine defines the policy lifecycle operations. Every operation checks
// authorization before touching any port, checks the temporal guard where
// the lifecycle requires one, and commits its status mutation together with
// its fund movement. On failure nothing is mutated; there are no retries.
//
//go:generate mockgen -source=engine.go -destination=../mocks/enginemock/engine.go -package=enginemock -mock_names=Engine=MockEngine
type Engine interface {
	// Initialize creates an Active policy for a pair; authority only
	Initialize(ctx context.Context, subject string, input InitializeInput) (*domain.Policy, error)
	// Purchase collects the premium into escrow; holder only, pre-expiry
	Purchase(ctx context.Context, subject string, authority, holder domain.Identity) (*domain.Policy, error)
	// CheckTrigger reads the oracle and, when the condition is met, marks
	// the payout triggered; authority only, pre-expiry. The boolean reports
	// whether the condition was met.
	CheckTrigger(ctx context.Context, subject string, authority, holder domain.Identity) (*domain.Policy, bool, error)
	// ExecutePayout releases the coverage amount to the holder; authority only
	ExecutePayout(ctx context.Context, subject string, authority, holder domain.Identity) (*domain.Policy, error)
	// Cancel refunds the premium to the holder; holder only, pre-expiry
	Cancel(ctx context.Context, subject string, authority, holder domain.Identity) (*domain.Policy, error)
	// UpdateOracle replaces the policy's oracle feed; authority only, any status
	UpdateOracle(ctx context.Context, subject string, authority, holder, feed domain.Identity) (*domain.Policy, error)
}

type engine struct {
	store     store.Store
	treasury  treasury.Treasury
	prices    oracle.PriceSource
	publisher messaging.Publisher
	deriver   *auth.Deriver
	clock     adapter.Clock
}

// NewEngine creates the lifecycle engine
func NewEngine(
	s store.Store,
	t treasury.Treasury,
	prices oracle.PriceSource,
	publisher messaging.Publisher,
	deriver *auth.Deriver,
	clock adapter.Clock,
) Engine {
	return &engine{
		store:     s,
		treasury:  t,
		prices:    prices,
		publisher: publisher,
		deriver:   deriver,
		clock:     clock,
	}
}

func (e *engine) Initialize(ctx context.Context, subject string, input InitializeInput) (*domain.Policy, error) {
	if err := auth.RequireSubject(subject, input.Authority); err != nil {
		return nil, err
	}

	policy := &domain.Policy{
		Authority:        input.Authority,
		PolicyHolder:     input.PolicyHolder,
		OracleFeedID:     input.OracleFeedID,
		TriggerThreshold: input.TriggerThreshold,
		CoverageAmount:   input.CoverageAmount,
		PremiumAmount:    input.PremiumAmount,
		ExpiryTime:       input.ExpiryTime,
		CreatedTime:      e.clock.Now().UTC(),
		Status:           domain.StatusActive,
	}

	if err := e.store.CreatePolicy(ctx, policy); err != nil {
		return nil, err
	}

	// The escrow account is created up front so the purchase transaction
	// only moves funds.
	escrow, err := e.deriver.EscrowIdentity(input.Authority, input.PolicyHolder)
	if err != nil {
		return nil, err
	}
	if err := e.store.EnsureAccount(ctx, escrow); err != nil {
		return nil, err
	}

	e.publishEvent(ctx, domain.EventPolicyInitialized, policy, 0)

	return policy, nil
}

func (e *engine) Purchase(ctx context.Context, subject string, authority, holder domain.Identity) (*domain.Policy, error) {
	if err := auth.RequireSubject(subject, holder); err != nil {
		return nil, err
	}

	policy, err := e.store.GetPolicy(ctx, authority, holder)
	if err != nil {
		return nil, err
	}
	if policy.Status != domain.StatusActive {
		return nil, domain.ErrPolicyNotActive
	}
	if policy.Expired(e.clock.Now()) {
		return nil, domain.ErrPolicyExpired
	}

	escrow, err := e.deriver.EscrowIdentity(authority, holder)
	if err != nil {
		return nil, err
	}

	updated, err := e.store.ApplyTransition(ctx, store.TransitionInput{
		Authority:      authority,
		PolicyHolder:   holder,
		ExpectedStatus: domain.StatusActive,
		NewStatus:      domain.StatusPurchased,
		ConflictErr:    domain.ErrPolicyNotActive,
		OccurredAt:     e.clock.Now().UTC(),
		Movement:       e.treasury.Premium(holder, escrow, policy.PremiumAmount),
	})
	if err != nil {
		return nil, err
	}

	e.publishEvent(ctx, domain.EventPolicyPurchased, updated, updated.PremiumAmount)

	return updated, nil
}

func (e *engine) CheckTrigger(ctx context.Context, subject string, authority, holder domain.Identity) (*domain.Policy, bool, error) {
	if err := auth.RequireSubject(subject, authority); err != nil {
		return nil, false, err
	}

	policy, err := e.store.GetPolicy(ctx, authority, holder)
	if err != nil {
		return nil, false, err
	}
	if policy.Status != domain.StatusPurchased {
		return nil, false, domain.ErrPolicyNotPurchased
	}
	if policy.Expired(e.clock.Now()) {
		return nil, false, domain.ErrPolicyExpired
	}

	reading, err := e.prices.ReadPrice(ctx, policy.OracleFeedID)
	if err != nil {
		return nil, false, err
	}

	if !domain.EvaluateTrigger(policy.TriggerKind(), policy.TriggerThreshold, reading) {
		// Condition not met is a successful check with no mutation
		return policy, false, nil
	}

	updated, err := e.store.ApplyTransition(ctx, store.TransitionInput{
		Authority:      authority,
		PolicyHolder:   holder,
		ExpectedStatus: domain.StatusPurchased,
		NewStatus:      domain.StatusTriggeredPayout,
		ConflictErr:    domain.ErrPolicyNotPurchased,
		OccurredAt:     e.clock.Now().UTC(),
		TriggerPrice:   &reading.Price,
	})
	if err != nil {
		return nil, false, err
	}

	e.publishEvent(ctx, domain.EventPolicyTriggered, updated, 0)

	return updated, true, nil
}

func (e *engine) ExecutePayout(ctx context.Context, subject string, authority, holder domain.Identity) (*domain.Policy, error) {
	if err := auth.RequireSubject(subject, authority); err != nil {
		return nil, err
	}

	policy, err := e.store.GetPolicy(ctx, authority, holder)
	if err != nil {
		return nil, err
	}
	if policy.Status != domain.StatusTriggeredPayout {
		return nil, domain.ErrPayoutNotTriggered
	}

	// Payout remains executable after expiry: a triggered policy is owed
	// its coverage regardless of when the payout lands.
	cap, err := e.deriver.Capability(authority, holder)
	if err != nil {
		return nil, err
	}
	movement, err := e.treasury.Payout(cap, holder, policy.CoverageAmount)
	if err != nil {
		return nil, err
	}

	updated, err := e.store.ApplyTransition(ctx, store.TransitionInput{
		Authority:      authority,
		PolicyHolder:   holder,
		ExpectedStatus: domain.StatusTriggeredPayout,
		NewStatus:      domain.StatusPaidOut,
		ConflictErr:    domain.ErrPayoutNotTriggered,
		OccurredAt:     e.clock.Now().UTC(),
		Movement:       movement,
	})
	if err != nil {
		return nil, err
	}

	e.publishEvent(ctx, domain.EventPolicyPaidOut, updated, updated.CoverageAmount)

	return updated, nil
}

func (e *engine) Cancel(ctx context.Context, subject string, authority, holder domain.Identity) (*domain.Policy, error) {
	if err := auth.RequireSubject(subject, holder); err != nil {
		return nil, err
	}

	policy, err := e.store.GetPolicy(ctx, authority, holder)
	if err != nil {
		return nil, err
	}
	if policy.Status != domain.StatusPurchased {
		return nil, domain.ErrPolicyCannotBeCancelled
	}
	if policy.Expired(e.clock.Now()) {
		return nil, domain.ErrPolicyExpired
	}

	cap, err := e.deriver.Capability(authority, holder)
	if err != nil {
		return nil, err
	}
	movement, err := e.treasury.Refund(cap, holder, policy.PremiumAmount)
	if err != nil {
		return nil, err
	}

	updated, err := e.store.ApplyTransition(ctx, store.TransitionInput{
		Authority:      authority,
		PolicyHolder:   holder,
		ExpectedStatus: domain.StatusPurchased,
		NewStatus:      domain.StatusCancelled,
		ConflictErr:    domain.ErrPolicyCannotBeCancelled,
		OccurredAt:     e.clock.Now().UTC(),
		Movement:       movement,
	})
	if err != nil {
		return nil, err
	}

	e.publishEvent(ctx, domain.EventPolicyCancelled, updated, updated.PremiumAmount)

	return updated, nil
}

func (e *engine) UpdateOracle(ctx context.Context, subject string, authority, holder, feed domain.Identity) (*domain.Policy, error) {
	if err := auth.RequireSubject(subject, authority); err != nil {
		return nil, err
	}

	// The feed can be replaced in any state, including after expiry
	if err := e.store.UpdateOracleFeed(ctx, authority, holder, feed); err != nil {
		return nil, err
	}

	return e.store.GetPolicy(ctx, authority, holder)
}

// publishEvent emits a lifecycle event for a committed transition. Events
// are observability: a publish failure is logged and never unwinds the
// commit it describes.
func (e *engine) publishEvent(ctx context.Context, eventType domain.LifecycleEventType, policy *domain.Policy, amount uint64) {
	record, err := domain.EncodeRecord(policy)
	if err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("policy", policy.Key()),
			zap.String("event_type", string(eventType)))
		return
	}

	event := &domain.LifecycleEvent{
		EventID:      ulid.MustNewDefault(e.clock.Now()).String(),
		Type:         eventType,
		Authority:    policy.Authority,
		PolicyHolder: policy.PolicyHolder,
		Amount:       amount,
		TriggerPrice: policy.TriggerPrice,
		Record:       record,
		OccurredAt:   e.clock.Now().UTC(),
	}

	if err := e.publisher.PublishEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("policy", policy.Key()),
			zap.String("event_type", string(eventType)))
	}
}
