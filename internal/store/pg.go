package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/parametriclabs/policyd/internal/domain"
	"github.com/parametriclabs/policyd/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the tables this store manages
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Policy{},
		&schema.EscrowAccount{},
		&schema.LedgerEntry{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults: 20 open, 5 idle,
// 5m lifetime, 10m idle time.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// CreatePolicy inserts a new policy row for a pair
func (s *pgStore) CreatePolicy(ctx context.Context, policy *domain.Policy) error {
	row := policyToRow(policy)

	// ON CONFLICT DO NOTHING against the pair index; zero rows affected
	// means the registry already holds a record for this pair.
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "authority"}, {Name: "policy_holder"}},
		DoNothing: true,
	}).Create(row)
	if res.Error != nil {
		return fmt.Errorf("failed to create policy: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrPolicyExists
	}

	return nil
}

// GetPolicy retrieves the record for a pair
func (s *pgStore) GetPolicy(ctx context.Context, authority, holder domain.Identity) (*domain.Policy, error) {
	var row schema.Policy
	err := s.db.WithContext(ctx).
		Where("authority = ? AND policy_holder = ?", string(authority), string(holder)).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPolicyNotFound
		}
		return nil, fmt.Errorf("failed to get policy: %w", err)
	}

	return rowToPolicy(&row), nil
}

// ListPolicies retrieves policies matching the filter, newest first
func (s *pgStore) ListPolicies(ctx context.Context, filter ListPoliciesFilter) ([]*domain.Policy, error) {
	query := s.db.WithContext(ctx).Model(&schema.Policy{})
	if filter.Authority != nil {
		query = query.Where("authority = ?", string(*filter.Authority))
	}
	if filter.PolicyHolder != nil {
		query = query.Where("policy_holder = ?", string(*filter.PolicyHolder))
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var rows []schema.Policy
	if err := query.Order("created_time DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}

	policies := make([]*domain.Policy, len(rows))
	for i := range rows {
		policies[i] = rowToPolicy(&rows[i])
	}
	return policies, nil
}

// UpdateOracleFeed replaces the oracle feed id for a pair
func (s *pgStore) UpdateOracleFeed(ctx context.Context, authority, holder, feed domain.Identity) error {
	res := s.db.WithContext(ctx).Model(&schema.Policy{}).
		Where("authority = ? AND policy_holder = ?", string(authority), string(holder)).
		Update("oracle_feed_id", string(feed))
	if res.Error != nil {
		return fmt.Errorf("failed to update oracle feed: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrPolicyNotFound
	}

	return nil
}

// ApplyTransition commits one lifecycle transition together with its optional
// fund movement as a single transaction.
func (s *pgStore) ApplyTransition(ctx context.Context, input TransitionInput) (*domain.Policy, error) {
	var updated schema.Policy

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"status": string(input.NewStatus),
		}
		if col := timestampColumn(input.NewStatus); col != "" {
			updates[col] = input.OccurredAt
		}
		if input.TriggerPrice != nil {
			updates["trigger_price"] = *input.TriggerPrice
		}

		// The exact prior status is part of the WHERE clause: a concurrent
		// duplicate of the same transition sees zero rows affected and the
		// whole transaction aborts, leaving a single committed transfer.
		res := tx.Model(&schema.Policy{}).
			Where("authority = ? AND policy_holder = ? AND status = ?",
				string(input.Authority), string(input.PolicyHolder), string(input.ExpectedStatus)).
			Updates(updates)
		if res.Error != nil {
			return fmt.Errorf("failed to update policy status: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			var exists int64
			if err := tx.Model(&schema.Policy{}).
				Where("authority = ? AND policy_holder = ?", string(input.Authority), string(input.PolicyHolder)).
				Count(&exists).Error; err != nil {
				return fmt.Errorf("failed to check policy existence: %w", err)
			}
			if exists == 0 {
				return domain.ErrPolicyNotFound
			}
			if input.ConflictErr != nil {
				return input.ConflictErr
			}
			return fmt.Errorf("policy not in expected status %s", input.ExpectedStatus)
		}

		if input.Movement != nil {
			if err := moveFunds(tx, input.Authority, input.PolicyHolder, input.Movement); err != nil {
				return err
			}
		}

		if err := tx.Where("authority = ? AND policy_holder = ?",
			string(input.Authority), string(input.PolicyHolder)).First(&updated).Error; err != nil {
			return fmt.Errorf("failed to reload policy: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return rowToPolicy(&updated), nil
}

// moveFunds debits, credits, and records one transfer inside tx
func moveFunds(tx *gorm.DB, authority, holder domain.Identity, m *Movement) error {
	// The debit guard doubles as the insufficient-funds check: the balance
	// condition in the WHERE clause makes overdrafts unrepresentable.
	res := tx.Model(&schema.EscrowAccount{}).
		Where("owner_identity = ? AND balance >= ?", string(m.From), m.Amount).
		Update("balance", gorm.Expr("balance - ?", m.Amount))
	if res.Error != nil {
		return fmt.Errorf("failed to debit %s: %w", m.From, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrInsufficientFunds
	}

	if err := creditAccount(tx, m.To, m.Amount); err != nil {
		return err
	}

	entry := schema.LedgerEntry{
		ID:           m.EntryID,
		Authority:    string(authority),
		PolicyHolder: string(holder),
		EntryType:    m.EntryType,
		FromIdentity: string(m.From),
		ToIdentity:   string(m.To),
		Amount:       m.Amount,
		Metadata:     m.Metadata,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}

	return nil
}

// creditAccount creates the target account if needed and adds amount
func creditAccount(tx *gorm.DB, owner domain.Identity, amount uint64) error {
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_identity"}},
		DoNothing: true,
	}).Create(&schema.EscrowAccount{OwnerIdentity: string(owner)}).Error; err != nil {
		return fmt.Errorf("failed to ensure account %s: %w", owner, err)
	}

	res := tx.Model(&schema.EscrowAccount{}).
		Where("owner_identity = ?", string(owner)).
		Update("balance", gorm.Expr("balance + ?", amount))
	if res.Error != nil {
		return fmt.Errorf("failed to credit %s: %w", owner, res.Error)
	}

	return nil
}

// SweepExpired marks overdue non-terminal policies Expired in one batch
func (s *pgStore) SweepExpired(ctx context.Context, now time.Time, batchSize int) ([]*domain.Policy, error) {
	var swept []*domain.Policy

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []schema.Policy
		// SKIP LOCKED lets concurrent sweeper instances partition the work
		err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("status IN ? AND expiry_time <= ?",
				[]string{string(domain.StatusActive), string(domain.StatusPurchased)}, now).
			Limit(batchSize).
			Find(&rows).Error
		if err != nil {
			return fmt.Errorf("failed to select expired policies: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}

		ids := make([]uint64, len(rows))
		for i := range rows {
			ids[i] = rows[i].ID
		}

		if err := tx.Model(&schema.Policy{}).
			Where("id IN ?", ids).
			Update("status", string(domain.StatusExpired)).Error; err != nil {
			return fmt.Errorf("failed to expire policies: %w", err)
		}

		swept = make([]*domain.Policy, len(rows))
		for i := range rows {
			rows[i].Status = string(domain.StatusExpired)
			swept[i] = rowToPolicy(&rows[i])
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return swept, nil
}

// EnsureAccount creates a custodial balance for an identity if absent
func (s *pgStore) EnsureAccount(ctx context.Context, owner domain.Identity) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_identity"}},
		DoNothing: true,
	}).Create(&schema.EscrowAccount{OwnerIdentity: string(owner)}).Error
	if err != nil {
		return fmt.Errorf("failed to ensure account: %w", err)
	}

	return nil
}

// GetBalance returns the current balance for an identity's account.
// An account that was never funded reads as zero.
func (s *pgStore) GetBalance(ctx context.Context, owner domain.Identity) (uint64, error) {
	var account schema.EscrowAccount
	err := s.db.WithContext(ctx).
		Where("owner_identity = ?", string(owner)).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}

	return account.Balance, nil
}

// Deposit credits an identity's account and records the funding entry
func (s *pgStore) Deposit(ctx context.Context, owner domain.Identity, amount uint64, entryID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := creditAccount(tx, owner, amount); err != nil {
			return err
		}

		entry := schema.LedgerEntry{
			ID:           entryID,
			Authority:    string(owner),
			PolicyHolder: string(owner),
			EntryType:    schema.LedgerEntryDeposit,
			FromIdentity: string(owner),
			ToIdentity:   string(owner),
			Amount:       amount,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to append ledger entry: %w", err)
		}

		return nil
	})
}

// timestampColumn maps a target status to the timestamp column set exactly
// once on that transition. Expired has no paired column; the sweep leaves
// only the status change.
func timestampColumn(status domain.PolicyStatus) string {
	switch status {
	case domain.StatusPurchased:
		return "purchased_time"
	case domain.StatusTriggeredPayout:
		return "triggered_time"
	case domain.StatusPaidOut:
		return "payout_time"
	case domain.StatusCancelled:
		return "cancelled_time"
	}
	return ""
}

func policyToRow(p *domain.Policy) *schema.Policy {
	return &schema.Policy{
		Authority:        string(p.Authority),
		PolicyHolder:     string(p.PolicyHolder),
		OracleFeedID:     string(p.OracleFeedID),
		TriggerThreshold: p.TriggerThreshold,
		CoverageAmount:   p.CoverageAmount,
		PremiumAmount:    p.PremiumAmount,
		ExpiryTime:       p.ExpiryTime,
		CreatedTime:      p.CreatedTime,
		PurchasedTime:    p.PurchasedTime,
		TriggeredTime:    p.TriggeredTime,
		PayoutTime:       p.PayoutTime,
		CancelledTime:    p.CancelledTime,
		TriggerPrice:     p.TriggerPrice,
		Status:           string(p.Status),
	}
}

func rowToPolicy(row *schema.Policy) *domain.Policy {
	return &domain.Policy{
		Authority:        domain.Identity(row.Authority),
		PolicyHolder:     domain.Identity(row.PolicyHolder),
		OracleFeedID:     domain.Identity(row.OracleFeedID),
		TriggerThreshold: row.TriggerThreshold,
		CoverageAmount:   row.CoverageAmount,
		PremiumAmount:    row.PremiumAmount,
		ExpiryTime:       row.ExpiryTime,
		CreatedTime:      row.CreatedTime,
		PurchasedTime:    row.PurchasedTime,
		TriggeredTime:    row.TriggeredTime,
		PayoutTime:       row.PayoutTime,
		CancelledTime:    row.CancelledTime,
		TriggerPrice:     row.TriggerPrice,
		Status:           domain.PolicyStatus(row.Status),
	}
}
