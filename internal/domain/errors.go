package domain

import "errors"

var (
	// ErrUnauthorized is returned when the caller has not proven control of
	// the identity an operation requires
	ErrUnauthorized = errors.New("caller is not authorized for this policy")

	// ErrPolicyNotFound is returned when no record exists for an
	// (authority, policy holder) pair
	ErrPolicyNotFound = errors.New("policy not found")

	// ErrPolicyExists is returned when initializing a pair that already has a record
	ErrPolicyExists = errors.New("policy already exists for this pair")

	// ErrPolicyNotActive is returned when purchase is attempted outside the Active state
	ErrPolicyNotActive = errors.New("policy is not active")

	// ErrPolicyNotPurchased is returned when a trigger check is attempted
	// outside the Purchased state
	ErrPolicyNotPurchased = errors.New("policy has not been purchased")

	// ErrPayoutNotTriggered is returned when payout is attempted before the
	// trigger condition has been observed
	ErrPayoutNotTriggered = errors.New("payout has not been triggered")

	// ErrPolicyCannotBeCancelled is returned when cancellation is attempted
	// outside the Purchased state
	ErrPolicyCannotBeCancelled = errors.New("policy cannot be cancelled")

	// ErrPolicyExpired is returned when a guarded transition is attempted at
	// or after the policy's expiry time
	ErrPolicyExpired = errors.New("policy has expired")

	// ErrInvalidOracleData is returned when an oracle feed is malformed,
	// stale, or unparseable
	ErrInvalidOracleData = errors.New("invalid oracle data")

	// ErrInsufficientFunds is returned when the debited balance cannot cover
	// the requested transfer
	ErrInsufficientFunds = errors.New("insufficient funds")
)
