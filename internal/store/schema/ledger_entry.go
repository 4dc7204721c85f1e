package schema

import (
	"time"

	"gorm.io/datatypes"
)

// LedgerEntryType labels the purpose of a fund movement
type LedgerEntryType string

const (
	LedgerEntryPremiumPayment LedgerEntryType = "premium_payment"
	LedgerEntryPremiumRefund  LedgerEntryType = "premium_refund"
	LedgerEntryPayout         LedgerEntryType = "payout"
	LedgerEntryDeposit        LedgerEntryType = "deposit"
)

// LedgerEntry represents the ledger_entries table - an append-only audit
// trail of every fund movement. Entries are written in the same transaction
// as the movement they describe.
type LedgerEntry struct {
	// ID is a ULID assigned by the caller at commit time
	ID string `gorm:"column:id;primaryKey;type:varchar(26)"`
	// Authority identifies the policy pair the movement belongs to
	Authority string `gorm:"column:authority;not null;type:varchar(64);index:idx_ledger_pair,priority:1"`
	// PolicyHolder identifies the policy pair the movement belongs to
	PolicyHolder string `gorm:"column:policy_holder;not null;type:varchar(64);index:idx_ledger_pair,priority:2"`
	// EntryType is the movement's purpose
	EntryType LedgerEntryType `gorm:"column:entry_type;not null;type:varchar(20)"`
	// FromIdentity is the debited balance owner
	FromIdentity string `gorm:"column:from_identity;not null;type:varchar(64)"`
	// ToIdentity is the credited balance owner
	ToIdentity string `gorm:"column:to_identity;not null;type:varchar(64)"`
	// Amount is the moved amount
	Amount uint64 `gorm:"column:amount;not null;type:numeric(20,0)"`
	// Metadata carries optional context (trigger price, event id)
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	// CreatedAt is the movement timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the LedgerEntry model
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}
