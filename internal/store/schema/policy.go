package schema

import (
	"time"
)

// Policy represents the policies table - one row per (authority, policy holder)
// pair. Terminal rows are retained as an audit trail and never deleted.
type Policy struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Authority is the administrative identity for the policy
	Authority string `gorm:"column:authority;not null;type:varchar(64);uniqueIndex:idx_policies_pair,priority:1"`
	// PolicyHolder is the identity that pays premium and receives payout
	PolicyHolder string `gorm:"column:policy_holder;not null;type:varchar(64);uniqueIndex:idx_policies_pair,priority:2"`
	// OracleFeedID identifies the price feed consulted at trigger-check time
	OracleFeedID string `gorm:"column:oracle_feed_id;not null;type:varchar(64)"`
	// TriggerThreshold is the signed comparison value for the derived trigger predicate
	TriggerThreshold int64 `gorm:"column:trigger_threshold;not null"`
	// CoverageAmount is paid out to the holder when the policy triggers
	CoverageAmount uint64 `gorm:"column:coverage_amount;not null;type:numeric(20,0)"`
	// PremiumAmount is paid by the holder to activate coverage
	PremiumAmount uint64 `gorm:"column:premium_amount;not null;type:numeric(20,0)"`
	// ExpiryTime is the instant after which no purchase/trigger/cancel succeeds
	ExpiryTime time.Time `gorm:"column:expiry_time;not null;type:timestamptz;index:idx_policies_expiry"`
	// CreatedTime is set once at initialization
	CreatedTime time.Time `gorm:"column:created_time;not null;type:timestamptz"`
	// PurchasedTime is set exactly once when the premium is collected
	PurchasedTime *time.Time `gorm:"column:purchased_time;type:timestamptz"`
	// TriggeredTime is set exactly once when the trigger condition is observed
	TriggeredTime *time.Time `gorm:"column:triggered_time;type:timestamptz"`
	// PayoutTime is set exactly once when coverage is released
	PayoutTime *time.Time `gorm:"column:payout_time;type:timestamptz"`
	// CancelledTime is set exactly once when the premium is refunded
	CancelledTime *time.Time `gorm:"column:cancelled_time;type:timestamptz"`
	// TriggerPrice is the oracle price observed at the moment the trigger fired
	TriggerPrice *int64 `gorm:"column:trigger_price"`
	// Status is the lifecycle state; transitions are monotone
	Status string `gorm:"column:status;not null;type:varchar(20);index:idx_policies_expiry,priority:2"`
	// CreatedAt is the row creation timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the row update timestamp
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Policy model
func (Policy) TableName() string {
	return "policies"
}
