package dto

import (
	"encoding/base64"
	"errors"
	"time"

	"github.com/parametriclabs/policyd/internal/domain"
)

// CreatePolicyRequest carries the immutable terms of a new policy
type CreatePolicyRequest struct {
	Authority        string    `json:"authority" binding:"required"`
	PolicyHolder     string    `json:"policy_holder" binding:"required"`
	OracleFeedID     string    `json:"oracle_feed_id" binding:"required"`
	TriggerThreshold int64     `json:"trigger_threshold"`
	CoverageAmount   uint64    `json:"coverage_amount" binding:"required"`
	PremiumAmount    uint64    `json:"premium_amount" binding:"required"`
	ExpiryTime       time.Time `json:"expiry_time" binding:"required"`
}

// Validate checks the request beyond binding tags
func (r *CreatePolicyRequest) Validate() error {
	if !domain.Identity(r.Authority).Valid() {
		return errors.New("authority must be 64 lowercase hex characters")
	}
	if !domain.Identity(r.PolicyHolder).Valid() {
		return errors.New("policy_holder must be 64 lowercase hex characters")
	}
	if !domain.Identity(r.OracleFeedID).Valid() {
		return errors.New("oracle_feed_id must be 64 lowercase hex characters")
	}
	if r.Authority == r.PolicyHolder {
		return errors.New("authority and policy_holder must differ")
	}
	return nil
}

// UpdateOracleRequest replaces a policy's oracle feed
type UpdateOracleRequest struct {
	OracleFeedID string `json:"oracle_feed_id" binding:"required"`
}

func (r *UpdateOracleRequest) Validate() error {
	if !domain.Identity(r.OracleFeedID).Valid() {
		return errors.New("oracle_feed_id must be 64 lowercase hex characters")
	}
	return nil
}

// DepositRequest funds a custodial account
type DepositRequest struct {
	Amount uint64 `json:"amount" binding:"required"`
}

// PolicyResponse represents a policy record
type PolicyResponse struct {
	Authority        string     `json:"authority"`
	PolicyHolder     string     `json:"policy_holder"`
	OracleFeedID     string     `json:"oracle_feed_id"`
	TriggerThreshold int64      `json:"trigger_threshold"`
	TriggerKind      string     `json:"trigger_kind"`
	CoverageAmount   uint64     `json:"coverage_amount"`
	PremiumAmount    uint64     `json:"premium_amount"`
	ExpiryTime       time.Time  `json:"expiry_time"`
	CreatedTime      time.Time  `json:"created_time"`
	PurchasedTime    *time.Time `json:"purchased_time,omitempty"`
	TriggeredTime    *time.Time `json:"triggered_time,omitempty"`
	PayoutTime       *time.Time `json:"payout_time,omitempty"`
	CancelledTime    *time.Time `json:"cancelled_time,omitempty"`
	TriggerPrice     *int64     `json:"trigger_price,omitempty"`
	Status           string     `json:"status"`
}

// NewPolicyResponse converts a domain policy to its API representation
func NewPolicyResponse(p *domain.Policy) PolicyResponse {
	return PolicyResponse{
		Authority:        string(p.Authority),
		PolicyHolder:     string(p.PolicyHolder),
		OracleFeedID:     string(p.OracleFeedID),
		TriggerThreshold: p.TriggerThreshold,
		TriggerKind:      string(p.TriggerKind()),
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

// CheckTriggerResponse reports the outcome of a trigger check
type CheckTriggerResponse struct {
	TriggerMet bool           `json:"trigger_met"`
	Policy     PolicyResponse `json:"policy"`
}

// RecordResponse carries the fixed-width policy snapshot
type RecordResponse struct {
	Record string `json:"record"`
	Size   int    `json:"size"`
}

// NewRecordResponse encodes a record snapshot for transport
func NewRecordResponse(record []byte) RecordResponse {
	return RecordResponse{
		Record: base64.StdEncoding.EncodeToString(record),
		Size:   len(record),
	}
}

// BalanceResponse reports a custodial account balance
type BalanceResponse struct {
	Identity string `json:"identity"`
	Balance  uint64 `json:"balance"`
}

// ListPoliciesResponse wraps a policy listing
type ListPoliciesResponse struct {
	Policies []PolicyResponse `json:"policies"`
	Total    int              `json:"total"`
}
