package domain

import (
	"fmt"
	"regexp"
	"time"
)

// Identity is a 32-byte principal identifier, hex-encoded (64 lowercase hex
// characters). Authorities, policy holders, escrow accounts and oracle feeds
// all share this identifier space.
type Identity string

var identityRegexp = regexp.MustCompile(`^[0-9a-f]{64}$`)

// Valid checks if an identity is well-formed
func (i Identity) Valid() bool {
	return identityRegexp.MatchString(string(i))
}

// Bytes returns the decoded 32-byte representation of the identity.
// It must only be called on a valid identity.
func (i Identity) Bytes() [32]byte {
	var out [32]byte
	for idx := 0; idx < 32; idx++ {
		out[idx] = hexByte(i[idx*2])<<4 | hexByte(i[idx*2+1])
	}
	return out
}

func hexByte(c byte) byte {
	if c >= 'a' {
		return c - 'a' + 10
	}
	return c - '0'
}

// IdentityFromBytes encodes a 32-byte value as an Identity
func IdentityFromBytes(b [32]byte) Identity {
	const hexdigits = "0123456789abcdef"
	out := make([]byte, 64)
	for i, c := range b {
		out[i*2] = hexdigits[c>>4]
		out[i*2+1] = hexdigits[c&0x0f]
	}
	return Identity(out)
}

// PolicyStatus represents the lifecycle state of a policy
type PolicyStatus string

const (
	StatusActive          PolicyStatus = "active"
	StatusPurchased       PolicyStatus = "purchased"
	StatusTriggeredPayout PolicyStatus = "triggered_payout"
	StatusPaidOut         PolicyStatus = "paid_out"
	StatusCancelled       PolicyStatus = "cancelled"
	StatusExpired         PolicyStatus = "expired"
)

// IsValidStatus checks if a status is one of the known lifecycle states
func IsValidStatus(s PolicyStatus) bool {
	switch s {
	case StatusActive, StatusPurchased, StatusTriggeredPayout,
		StatusPaidOut, StatusCancelled, StatusExpired:
		return true
	}
	return false
}

// Terminal reports whether the status has no outgoing transitions.
// Terminal records are retained as an audit trail and never move funds again.
func (s PolicyStatus) Terminal() bool {
	return s == StatusPaidOut || s == StatusCancelled || s == StatusExpired
}

// statusCodes maps each status to its wire byte for the fixed-width record
// layout. The numbering follows the order of the lifecycle enum.
var statusCodes = map[PolicyStatus]byte{
	StatusActive:          0,
	StatusPurchased:       1,
	StatusTriggeredPayout: 2,
	StatusPaidOut:         3,
	StatusCancelled:       4,
	StatusExpired:         5,
}

var statusFromCode = map[byte]PolicyStatus{
	0: StatusActive,
	1: StatusPurchased,
	2: StatusTriggeredPayout,
	3: StatusPaidOut,
	4: StatusCancelled,
	5: StatusExpired,
}

// TriggerKind is the payout predicate derived from the trigger threshold
type TriggerKind string

const (
	TriggerPriceAbove      TriggerKind = "price_above"
	TriggerPriceBelow      TriggerKind = "price_below"
	TriggerVolatilityAbove TriggerKind = "volatility_above"
)

// DeriveTriggerKind selects the condition kind from the sign of the
// threshold: positive thresholds compare above, all others below. The
// volatility kind exists in the predicate set but is not reachable through
// this derivation; no public operation selects it.
func DeriveTriggerKind(threshold int64) TriggerKind {
	if threshold > 0 {
		return TriggerPriceAbove
	}
	return TriggerPriceBelow
}

// PriceReading is one observation from an oracle feed
type PriceReading struct {
	Price       int64     `json:"price"`
	Confidence  uint64    `json:"confidence"`
	PublishedAt time.Time `json:"published_at"`
}

// EvaluateTrigger reports whether a price reading satisfies the trigger
// predicate for the given kind and threshold.
func EvaluateTrigger(kind TriggerKind, threshold int64, reading PriceReading) bool {
	switch kind {
	case TriggerPriceAbove:
		return reading.Price > threshold
	case TriggerPriceBelow:
		return reading.Price < threshold
	case TriggerVolatilityAbove:
		if reading.Price == 0 {
			return false
		}
		return int64(reading.Confidence)*100/reading.Price > threshold
	}
	return false
}

// Policy is the durable record for one parametric insurance policy,
// uniquely addressed by its (authority, policy holder) pair.
type Policy struct {
	Authority        Identity
	PolicyHolder     Identity
	OracleFeedID     Identity
	TriggerThreshold int64
	CoverageAmount   uint64
	PremiumAmount    uint64
	ExpiryTime       time.Time
	CreatedTime      time.Time
	PurchasedTime    *time.Time
	TriggeredTime    *time.Time
	PayoutTime       *time.Time
	CancelledTime    *time.Time
	TriggerPrice     *int64
	Status           PolicyStatus
}

// TriggerKind returns the condition kind derived from the stored threshold
func (p *Policy) TriggerKind() TriggerKind {
	return DeriveTriggerKind(p.TriggerThreshold)
}

// Expired reports whether the policy's expiry time has passed at now
func (p *Policy) Expired(now time.Time) bool {
	return !now.Before(p.ExpiryTime)
}

// Key returns the unique addressing key for the policy's pair
func (p *Policy) Key() string {
	return fmt.Sprintf("%s:%s", p.Authority, p.PolicyHolder)
}

// LifecycleEventType labels a committed lifecycle transition for the
// messaging surface.
type LifecycleEventType string

const (
	EventPolicyInitialized LifecycleEventType = "initialized"
	EventPolicyPurchased   LifecycleEventType = "purchased"
	EventPolicyTriggered   LifecycleEventType = "triggered"
	EventPolicyPaidOut     LifecycleEventType = "paid_out"
	EventPolicyCancelled   LifecycleEventType = "cancelled"
	EventPolicyExpired     LifecycleEventType = "expired"
)

// LifecycleEvent is published after every committed transition
type LifecycleEvent struct {
	EventID      string             `json:"event_id"`
	Type         LifecycleEventType `json:"type"`
	Authority    Identity           `json:"authority"`
	PolicyHolder Identity           `json:"policy_holder"`
	Amount       uint64             `json:"amount,omitempty"`
	TriggerPrice *int64             `json:"trigger_price,omitempty"`
	Record       []byte             `json:"record"`
	OccurredAt   time.Time          `json:"occurred_at"`
}
