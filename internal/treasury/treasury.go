package treasury

import (
	"context"
	"errors"

	"github.com/oklog/ulid/v2"

	"github.com/parametriclabs/policyd/internal/adapter"
	"github.com/parametriclabs/policyd/internal/auth"
	"github.com/parametriclabs/policyd/internal/domain"
	"github.com/parametriclabs/policyd/internal/store"
	"github.com/parametriclabs/policyd/internal/store/schema"
)

// ErrInvalidCapability rejects escrow-outbound movements built without a
// minted capability token.
var ErrInvalidCapability = errors.New("escrow capability is not valid")

// Treasury builds the fund movements that accompany lifecycle transitions
// and manages custodial account funding. Inbound movements name the escrow
// freely; outbound movements require a capability token, so escrow funds can
// only leave through code holding the service escrow key.
//
//go:generate mockgen -source=treasury.go -destination=../mocks/treasury.go -package=mocks -mock_names=Treasury=MockTreasury
type Treasury interface {
	Premium(holder, escrow domain.Identity, amount uint64) *store.Movement
	Refund(cap auth.EscrowCapability, holder domain.Identity, amount uint64) (*store.Movement, error)
	Payout(cap auth.EscrowCapability, holder domain.Identity, amount uint64) (*store.Movement, error)
	Deposit(ctx context.Context, owner domain.Identity, amount uint64) error
	Balance(ctx context.Context, owner domain.Identity) (uint64, error)
}

type treasury struct {
	store store.Store
	clock adapter.Clock
}

func New(s store.Store, clock adapter.Clock) Treasury {
	return &treasury{store: s, clock: clock}
}

// Premium moves the premium from the holder into the pair's escrow account
func (t *treasury) Premium(holder, escrow domain.Identity, amount uint64) *store.Movement {
	return &store.Movement{
		From:      holder,
		To:        escrow,
		Amount:    amount,
		EntryType: schema.LedgerEntryPremiumPayment,
		EntryID:   t.newEntryID(),
	}
}

// Refund returns the escrowed premium to the holder on cancellation
func (t *treasury) Refund(cap auth.EscrowCapability, holder domain.Identity, amount uint64) (*store.Movement, error) {
	if !cap.Valid() {
		return nil, ErrInvalidCapability
	}
	return &store.Movement{
		From:      cap.Escrow(),
		To:        holder,
		Amount:    amount,
		EntryType: schema.LedgerEntryPremiumRefund,
		EntryID:   t.newEntryID(),
	}, nil
}

// Payout moves the coverage amount from escrow to the holder
func (t *treasury) Payout(cap auth.EscrowCapability, holder domain.Identity, amount uint64) (*store.Movement, error) {
	if !cap.Valid() {
		return nil, ErrInvalidCapability
	}
	return &store.Movement{
		From:      cap.Escrow(),
		To:        holder,
		Amount:    amount,
		EntryType: schema.LedgerEntryPayout,
		EntryID:   t.newEntryID(),
	}, nil
}

// Deposit credits an account with externally provided funds
func (t *treasury) Deposit(ctx context.Context, owner domain.Identity, amount uint64) error {
	return t.store.Deposit(ctx, owner, amount, t.newEntryID())
}

// Balance reads the current custodial balance for an identity
func (t *treasury) Balance(ctx context.Context, owner domain.Identity) (uint64, error) {
	return t.store.GetBalance(ctx, owner)
}

func (t *treasury) newEntryID() string {
	return ulid.MustNewDefault(t.clock.Now()).String()
}
