package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parametriclabs/policyd/internal/domain"
	"github.com/parametriclabs/policyd/internal/store/schema"
)

func testIdentity(tag byte) domain.Identity {
	const hexdigits = "0123456789abcdef"
	pair := string([]byte{hexdigits[tag>>4], hexdigits[tag&0x0f]})
	return domain.Identity(strings.Repeat(pair, 32))
}

func buildTestPolicy(authority, holder domain.Identity) *domain.Policy {
	return &domain.Policy{
		Authority:        authority,
		PolicyHolder:     holder,
		OracleFeedID:     testIdentity(0xfe),
		TriggerThreshold: 100,
		CoverageAmount:   1000,
		PremiumAmount:    50,
		ExpiryTime:       time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second),
		CreatedTime:      time.Now().UTC().Truncate(time.Second),
		Status:           domain.StatusActive,
	}
}

func newEntryID() string {
	return ulid.MustNewDefault(time.Now()).String()
}

func TestCreateAndGetPolicy(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	s := NewPGStore(testDB)

	p := buildTestPolicy(testIdentity(0x01), testIdentity(0x02))
	require.NoError(t, s.CreatePolicy(ctx, p))

	got, err := s.GetPolicy(ctx, p.Authority, p.PolicyHolder)
	require.NoError(t, err)
	assert.Equal(t, p.Authority, got.Authority)
	assert.Equal(t, p.PolicyHolder, got.PolicyHolder)
	assert.Equal(t, domain.StatusActive, got.Status)
	assert.Equal(t, uint64(1000), got.CoverageAmount)
	assert.Nil(t, got.PurchasedTime)
	assert.Nil(t, got.TriggerPrice)
}

func TestCreatePolicyDuplicatePair(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	s := NewPGStore(testDB)

	p := buildTestPolicy(testIdentity(0x01), testIdentity(0x02))
	require.NoError(t, s.CreatePolicy(ctx, p))

	err := s.CreatePolicy(ctx, buildTestPolicy(p.Authority, p.PolicyHolder))
	assert.ErrorIs(t, err, domain.ErrPolicyExists)

	// A different holder under the same authority is a distinct record
	other := buildTestPolicy(p.Authority, testIdentity(0x03))
	assert.NoError(t, s.CreatePolicy(ctx, other))
}

func TestGetPolicyNotFound(t *testing.T) {
	cleanTables(t)
	s := NewPGStore(testDB)

	_, err := s.GetPolicy(context.Background(), testIdentity(0x0a), testIdentity(0x0b))
	assert.ErrorIs(t, err, domain.ErrPolicyNotFound)
}

func TestApplyTransitionWithMovement(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	s := NewPGStore(testDB)

	authority, holder, escrow := testIdentity(0x01), testIdentity(0x02), testIdentity(0xee)
	p := buildTestPolicy(authority, holder)
	require.NoError(t, s.CreatePolicy(ctx, p))
	require.NoError(t, s.Deposit(ctx, holder, 100, newEntryID()))

	now := time.Now().UTC().Truncate(time.Second)
	updated, err := s.ApplyTransition(ctx, TransitionInput{
		Authority:      authority,
		PolicyHolder:   holder,
		ExpectedStatus: domain.StatusActive,
		NewStatus:      domain.StatusPurchased,
		ConflictErr:    domain.ErrPolicyNotActive,
		OccurredAt:     now,
		Movement: &Movement{
			From:      holder,
			To:        escrow,
			Amount:    50,
			EntryType: schema.LedgerEntryPremiumPayment,
			EntryID:   newEntryID(),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPurchased, updated.Status)
	require.NotNil(t, updated.PurchasedTime)
	assert.True(t, now.Equal(*updated.PurchasedTime))

	holderBalance, err := s.GetBalance(ctx, holder)
	require.NoError(t, err)
	assert.Equal(t, uint64(50), holderBalance)

	escrowBalance, err := s.GetBalance(ctx, escrow)
	require.NoError(t, err)
	assert.Equal(t, uint64(50), escrowBalance)

	var entries []schema.LedgerEntry
	require.NoError(t, testDB.Where("entry_type = ?", schema.LedgerEntryPremiumPayment).Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, string(holder), entries[0].FromIdentity)
	assert.Equal(t, string(escrow), entries[0].ToIdentity)
	assert.Equal(t, uint64(50), entries[0].Amount)
}

func TestApplyTransitionStatusConflict(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	s := NewPGStore(testDB)

	authority, holder := testIdentity(0x01), testIdentity(0x02)
	p := buildTestPolicy(authority, holder)
	require.NoError(t, s.CreatePolicy(ctx, p))

	// The policy is Active; demanding Purchased must fail with the caller's error
	_, err := s.ApplyTransition(ctx, TransitionInput{
		Authority:      authority,
		PolicyHolder:   holder,
		ExpectedStatus: domain.StatusPurchased,
		NewStatus:      domain.StatusCancelled,
		ConflictErr:    domain.ErrPolicyCannotBeCancelled,
		OccurredAt:     time.Now().UTC(),
	})
	assert.ErrorIs(t, err, domain.ErrPolicyCannotBeCancelled)

	got, err := s.GetPolicy(ctx, authority, holder)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, got.Status)
}

func TestApplyTransitionMissingPolicy(t *testing.T) {
	cleanTables(t)
	s := NewPGStore(testDB)

	_, err := s.ApplyTransition(context.Background(), TransitionInput{
		Authority:      testIdentity(0x0a),
		PolicyHolder:   testIdentity(0x0b),
		ExpectedStatus: domain.StatusActive,
		NewStatus:      domain.StatusPurchased,
		ConflictErr:    domain.ErrPolicyNotActive,
		OccurredAt:     time.Now().UTC(),
	})
	assert.ErrorIs(t, err, domain.ErrPolicyNotFound)
}

func TestApplyTransitionInsufficientFundsRollsBack(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	s := NewPGStore(testDB)

	authority, holder, escrow := testIdentity(0x01), testIdentity(0x02), testIdentity(0xee)
	p := buildTestPolicy(authority, holder)
	require.NoError(t, s.CreatePolicy(ctx, p))
	require.NoError(t, s.Deposit(ctx, holder, 10, newEntryID()))

	_, err := s.ApplyTransition(ctx, TransitionInput{
		Authority:      authority,
		PolicyHolder:   holder,
		ExpectedStatus: domain.StatusActive,
		NewStatus:      domain.StatusPurchased,
		ConflictErr:    domain.ErrPolicyNotActive,
		OccurredAt:     time.Now().UTC(),
		Movement: &Movement{
			From:      holder,
			To:        escrow,
			Amount:    50,
			EntryType: schema.LedgerEntryPremiumPayment,
			EntryID:   newEntryID(),
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	// The failed movement must not leave the status advance behind
	got, err := s.GetPolicy(ctx, authority, holder)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, got.Status)
	assert.Nil(t, got.PurchasedTime)

	balance, err := s.GetBalance(ctx, holder)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), balance)

	var count int64
	require.NoError(t, testDB.Model(&schema.LedgerEntry{}).
		Where("entry_type = ?", schema.LedgerEntryPremiumPayment).Count(&count).Error)
	assert.Zero(t, count)
}

func TestApplyTransitionDuplicateCommitsOnce(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	s := NewPGStore(testDB)

	authority, holder, escrow := testIdentity(0x01), testIdentity(0x02), testIdentity(0xee)
	p := buildTestPolicy(authority, holder)
	require.NoError(t, s.CreatePolicy(ctx, p))
	require.NoError(t, s.Deposit(ctx, holder, 100, newEntryID()))

	input := TransitionInput{
		Authority:      authority,
		PolicyHolder:   holder,
		ExpectedStatus: domain.StatusActive,
		NewStatus:      domain.StatusPurchased,
		ConflictErr:    domain.ErrPolicyNotActive,
		OccurredAt:     time.Now().UTC(),
		Movement: &Movement{
			From:      holder,
			To:        escrow,
			Amount:    50,
			EntryType: schema.LedgerEntryPremiumPayment,
			EntryID:   newEntryID(),
		},
	}

	_, err := s.ApplyTransition(ctx, input)
	require.NoError(t, err)

	// A second attempt with the same expected prior status sees the stale
	// view rejected; the first transfer remains the only one.
	input.Movement.EntryID = newEntryID()
	_, err = s.ApplyTransition(ctx, input)
	assert.ErrorIs(t, err, domain.ErrPolicyNotActive)

	balance, err := s.GetBalance(ctx, holder)
	require.NoError(t, err)
	assert.Equal(t, uint64(50), balance)

	escrowBalance, err := s.GetBalance(ctx, escrow)
	require.NoError(t, err)
	assert.Equal(t, uint64(50), escrowBalance)
}

func TestApplyTransitionRecordsTriggerPrice(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	s := NewPGStore(testDB)

	authority, holder := testIdentity(0x01), testIdentity(0x02)
	p := buildTestPolicy(authority, holder)
	p.Status = domain.StatusPurchased
	require.NoError(t, s.CreatePolicy(ctx, p))

	price := int64(150)
	updated, err := s.ApplyTransition(ctx, TransitionInput{
		Authority:      authority,
		PolicyHolder:   holder,
		ExpectedStatus: domain.StatusPurchased,
		NewStatus:      domain.StatusTriggeredPayout,
		ConflictErr:    domain.ErrPolicyNotPurchased,
		OccurredAt:     time.Now().UTC(),
		TriggerPrice:   &price,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusTriggeredPayout, updated.Status)
	require.NotNil(t, updated.TriggerPrice)
	assert.Equal(t, int64(150), *updated.TriggerPrice)
	assert.NotNil(t, updated.TriggeredTime)
}

func TestUpdateOracleFeed(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	s := NewPGStore(testDB)

	authority, holder := testIdentity(0x01), testIdentity(0x02)
	require.NoError(t, s.CreatePolicy(ctx, buildTestPolicy(authority, holder)))

	newFeed := testIdentity(0xfd)
	require.NoError(t, s.UpdateOracleFeed(ctx, authority, holder, newFeed))

	got, err := s.GetPolicy(ctx, authority, holder)
	require.NoError(t, err)
	assert.Equal(t, newFeed, got.OracleFeedID)

	err = s.UpdateOracleFeed(ctx, testIdentity(0x0a), testIdentity(0x0b), newFeed)
	assert.ErrorIs(t, err, domain.ErrPolicyNotFound)
}

func TestSweepExpired(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	s := NewPGStore(testDB)

	now := time.Now().UTC().Truncate(time.Second)

	overdue := buildTestPolicy(testIdentity(0x01), testIdentity(0x02))
	overdue.ExpiryTime = now.Add(-time.Hour)
	require.NoError(t, s.CreatePolicy(ctx, overdue))

	overduePurchased := buildTestPolicy(testIdentity(0x01), testIdentity(0x03))
	overduePurchased.ExpiryTime = now.Add(-time.Minute)
	overduePurchased.Status = domain.StatusPurchased
	require.NoError(t, s.CreatePolicy(ctx, overduePurchased))

	live := buildTestPolicy(testIdentity(0x01), testIdentity(0x04))
	require.NoError(t, s.CreatePolicy(ctx, live))

	paidOut := buildTestPolicy(testIdentity(0x01), testIdentity(0x05))
	paidOut.ExpiryTime = now.Add(-time.Hour)
	paidOut.Status = domain.StatusPaidOut
	require.NoError(t, s.CreatePolicy(ctx, paidOut))

	swept, err := s.SweepExpired(ctx, now, 100)
	require.NoError(t, err)
	assert.Len(t, swept, 2)
	for _, p := range swept {
		assert.Equal(t, domain.StatusExpired, p.Status)
	}

	// Terminal and unexpired rows are untouched
	got, err := s.GetPolicy(ctx, live.Authority, live.PolicyHolder)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, got.Status)

	got, err = s.GetPolicy(ctx, paidOut.Authority, paidOut.PolicyHolder)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaidOut, got.Status)

	// Idempotent: nothing left to sweep
	swept, err = s.SweepExpired(ctx, now, 100)
	require.NoError(t, err)
	assert.Empty(t, swept)
}

func TestListPolicies(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	s := NewPGStore(testDB)

	authority := testIdentity(0x01)
	for i := byte(0x10); i < 0x14; i++ {
		p := buildTestPolicy(authority, testIdentity(i))
		p.CreatedTime = time.Now().UTC().Add(-time.Duration(i) * time.Minute)
		require.NoError(t, s.CreatePolicy(ctx, p))
	}

	all, err := s.ListPolicies(ctx, ListPoliciesFilter{Authority: &authority})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	status := domain.StatusActive
	limited, err := s.ListPolicies(ctx, ListPoliciesFilter{Status: &status, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestDepositAndBalance(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	s := NewPGStore(testDB)

	owner := testIdentity(0x07)

	balance, err := s.GetBalance(ctx, owner)
	require.NoError(t, err)
	assert.Zero(t, balance, "unfunded account reads as zero")

	require.NoError(t, s.Deposit(ctx, owner, 25, newEntryID()))
	require.NoError(t, s.Deposit(ctx, owner, 75, newEntryID()))

	balance, err = s.GetBalance(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), balance)
}

func TestPurchaseCancelRoundTripRestoresBalances(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	s := NewPGStore(testDB)

	authority, holder, escrow := testIdentity(0x01), testIdentity(0x02), testIdentity(0xee)
	p := buildTestPolicy(authority, holder)
	require.NoError(t, s.CreatePolicy(ctx, p))
	require.NoError(t, s.Deposit(ctx, holder, 100, newEntryID()))

	_, err := s.ApplyTransition(ctx, TransitionInput{
		Authority:      authority,
		PolicyHolder:   holder,
		ExpectedStatus: domain.StatusActive,
		NewStatus:      domain.StatusPurchased,
		ConflictErr:    domain.ErrPolicyNotActive,
		OccurredAt:     time.Now().UTC(),
		Movement: &Movement{
			From:      holder,
			To:        escrow,
			Amount:    50,
			EntryType: schema.LedgerEntryPremiumPayment,
			EntryID:   newEntryID(),
		},
	})
	require.NoError(t, err)

	updated, err := s.ApplyTransition(ctx, TransitionInput{
		Authority:      authority,
		PolicyHolder:   holder,
		ExpectedStatus: domain.StatusPurchased,
		NewStatus:      domain.StatusCancelled,
		ConflictErr:    domain.ErrPolicyCannotBeCancelled,
		OccurredAt:     time.Now().UTC(),
		Movement: &Movement{
			From:      escrow,
			To:        holder,
			Amount:    50,
			EntryType: schema.LedgerEntryPremiumRefund,
			EntryID:   newEntryID(),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, updated.Status)
	require.NotNil(t, updated.CancelledTime)

	holderBalance, err := s.GetBalance(ctx, holder)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), holderBalance, "refund restores the holder balance")

	escrowBalance, err := s.GetBalance(ctx, escrow)
	require.NoError(t, err)
	assert.Zero(t, escrowBalance, "escrow holds nothing after the round trip")

	var entries int64
	require.NoError(t, testDB.Model(&schema.LedgerEntry{}).Count(&entries).Error)
	assert.EqualValues(t, 3, entries, "deposit, premium and refund each leave a trail")
}
