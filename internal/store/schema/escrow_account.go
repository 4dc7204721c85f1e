package schema

import (
	"time"
)

// EscrowAccount represents the escrow_accounts table - custodial balances.
// Holder accounts and per-policy escrow accounts share this table; a policy's
// escrow account is owned by the deterministically derived escrow identity.
type EscrowAccount struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// OwnerIdentity is the identity whose funds this balance holds
	OwnerIdentity string `gorm:"column:owner_identity;not null;unique;type:varchar(64)"`
	// Balance is the current custodial balance (numeric to cover the full unsigned range)
	Balance uint64 `gorm:"column:balance;not null;default:0;type:numeric(20,0)"`
	// CreatedAt is the row creation timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the row update timestamp
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the EscrowAccount model
func (EscrowAccount) TableName() string {
	return "escrow_accounts"
}
