package store

import (
	"context"
	"time"

	"github.com/parametriclabs/policyd/internal/domain"
	"github.com/parametriclabs/policyd/internal/store/schema"
)

// Movement describes a fund transfer committed atomically with a status
// transition: the debit, the credit, and the ledger entry all land in the
// same transaction or not at all.
type Movement struct {
	From      domain.Identity
	To        domain.Identity
	Amount    uint64
	EntryType schema.LedgerEntryType
	EntryID   string
	Metadata  []byte
}

// TransitionInput is one atomic lifecycle transition against a policy row.
// The prior status is re-checked inside the transaction; a stale view fails
// with ConflictErr instead of committing twice.
type TransitionInput struct {
	Authority    domain.Identity
	PolicyHolder domain.Identity
	// ExpectedStatus is the exact prior status the transition requires
	ExpectedStatus domain.PolicyStatus
	// NewStatus is the status written on success
	NewStatus domain.PolicyStatus
	// ConflictErr is returned when the row is not in ExpectedStatus
	ConflictErr error
	// OccurredAt is written to the timestamp column paired with NewStatus
	OccurredAt time.Time
	// TriggerPrice is recorded only on the trigger transition
	TriggerPrice *int64
	// Movement, when set, moves funds in the same transaction
	Movement *Movement
}

// ListPoliciesFilter narrows ListPolicies results
type ListPoliciesFilter struct {
	Authority    *domain.Identity
	PolicyHolder *domain.Identity
	Status       *domain.PolicyStatus
	Limit        int
	Offset       int
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreatePolicy inserts a new Active policy; ErrPolicyExists when the
	// (authority, policy holder) pair already has a record
	CreatePolicy(ctx context.Context, policy *domain.Policy) error
	// GetPolicy retrieves the record for a pair; ErrPolicyNotFound when absent
	GetPolicy(ctx context.Context, authority, holder domain.Identity) (*domain.Policy, error)
	// ListPolicies retrieves policies matching the filter, newest first
	ListPolicies(ctx context.Context, filter ListPoliciesFilter) ([]*domain.Policy, error)
	// UpdateOracleFeed replaces the oracle feed id for a pair
	UpdateOracleFeed(ctx context.Context, authority, holder, feed domain.Identity) error
	// ApplyTransition commits one lifecycle transition together with its
	// optional fund movement; aborts with no partial state on any failure
	ApplyTransition(ctx context.Context, input TransitionInput) (*domain.Policy, error)
	// SweepExpired marks overdue non-terminal policies Expired and returns
	// the records it transitioned, up to batchSize per call
	SweepExpired(ctx context.Context, now time.Time, batchSize int) ([]*domain.Policy, error)

	// EnsureAccount creates a custodial balance for an identity if absent
	EnsureAccount(ctx context.Context, owner domain.Identity) error
	// GetBalance returns the current balance for an identity's account
	GetBalance(ctx context.Context, owner domain.Identity) (uint64, error)
	// Deposit credits an identity's account (ops/test funding path)
	Deposit(ctx context.Context, owner domain.Identity, amount uint64, entryID string) error
}
