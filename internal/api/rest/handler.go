package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parametriclabs/policyd/internal/api/middleware"
	"github.com/parametriclabs/policyd/internal/api/rest/dto"
	"github.com/parametriclabs/policyd/internal/domain"
	"github.com/parametriclabs/policyd/internal/policy"
	"github.com/parametriclabs/policyd/internal/store"
	"github.com/parametriclabs/policyd/internal/treasury"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CreatePolicy initializes a policy for a pair (authority JWT)
	// POST /api/v1/policies
	CreatePolicy(c *gin.Context)

	// GetPolicy retrieves a single policy by its pair
	// GET /api/v1/policies/:authority/:holder
	GetPolicy(c *gin.Context)

	// ListPolicies retrieves policies with optional filters
	// GET /api/v1/policies?authority=<id>&holder=<id>&status=<status>&limit=<limit>&offset=<offset>
	ListPolicies(c *gin.Context)

	// GetPolicyRecord returns the fixed-width snapshot of a policy
	// GET /api/v1/policies/:authority/:holder/record
	GetPolicyRecord(c *gin.Context)

	// PurchasePolicy collects the premium into escrow (holder JWT)
	// POST /api/v1/policies/:authority/:holder/purchase
	PurchasePolicy(c *gin.Context)

	// CheckTrigger evaluates the trigger condition against the oracle (authority JWT)
	// POST /api/v1/policies/:authority/:holder/check-trigger
	CheckTrigger(c *gin.Context)

	// ExecutePayout releases the coverage amount to the holder (authority JWT)
	// POST /api/v1/policies/:authority/:holder/payout
	ExecutePayout(c *gin.Context)

	// CancelPolicy refunds the premium to the holder (holder JWT)
	// POST /api/v1/policies/:authority/:holder/cancel
	CancelPolicy(c *gin.Context)

	// UpdateOracle replaces the policy's oracle feed (authority JWT)
	// PUT /api/v1/policies/:authority/:holder/oracle
	UpdateOracle(c *gin.Context)

	// Deposit funds a custodial account (API key; ops/test funding)
	// POST /api/v1/accounts/:identity/deposit
	Deposit(c *gin.Context)

	// GetBalance reads a custodial account balance
	// GET /api/v1/accounts/:identity/balance
	GetBalance(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	engine   policy.Engine
	treasury treasury.Treasury
	store    store.Store
}

// NewHandler creates a new REST API handler
func NewHandler(engine policy.Engine, t treasury.Treasury, s store.Store) Handler {
	return &handler{
		engine:   engine,
		treasury: t,
		store:    s,
	}
}

// pairParams parses and validates the :authority/:holder path segments
func pairParams(c *gin.Context) (domain.Identity, domain.Identity, bool) {
	authority := domain.Identity(c.Param("authority"))
	holder := domain.Identity(c.Param("holder"))
	if !authority.Valid() {
		respondBadRequest(c, "Invalid authority identity")
		return "", "", false
	}
	if !holder.Valid() {
		respondBadRequest(c, "Invalid policy holder identity")
		return "", "", false
	}
	return authority, holder, true
}

// CreatePolicy initializes a policy for a pair
func (h *handler) CreatePolicy(c *gin.Context) {
	var req dto.CreatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	created, err := h.engine.Initialize(c.Request.Context(), middleware.AuthSubject(c), policy.InitializeInput{
		Authority:        domain.Identity(req.Authority),
		PolicyHolder:     domain.Identity(req.PolicyHolder),
		OracleFeedID:     domain.Identity(req.OracleFeedID),
		TriggerThreshold: req.TriggerThreshold,
		CoverageAmount:   req.CoverageAmount,
		PremiumAmount:    req.PremiumAmount,
		ExpiryTime:       req.ExpiryTime,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewPolicyResponse(created))
}

// GetPolicy retrieves a single policy by its pair
func (h *handler) GetPolicy(c *gin.Context) {
	authority, holder, ok := pairParams(c)
	if !ok {
		return
	}

	p, err := h.store.GetPolicy(c.Request.Context(), authority, holder)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPolicyResponse(p))
}

// ListPolicies retrieves policies with optional filters
func (h *handler) ListPolicies(c *gin.Context) {
	queryParams, err := ParseListPoliciesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	filter := store.ListPoliciesFilter{
		Limit:  queryParams.Limit,
		Offset: queryParams.Offset,
	}
	if queryParams.Authority != "" {
		authority := domain.Identity(queryParams.Authority)
		filter.Authority = &authority
	}
	if queryParams.PolicyHolder != "" {
		holder := domain.Identity(queryParams.PolicyHolder)
		filter.PolicyHolder = &holder
	}
	if queryParams.Status != "" {
		status := domain.PolicyStatus(queryParams.Status)
		filter.Status = &status
	}

	policies, err := h.store.ListPolicies(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err, "Failed to list policies")
		return
	}

	response := dto.ListPoliciesResponse{
		Policies: make([]dto.PolicyResponse, len(policies)),
		Total:    len(policies),
	}
	for i, p := range policies {
		response.Policies[i] = dto.NewPolicyResponse(p)
	}

	c.JSON(http.StatusOK, response)
}

// GetPolicyRecord returns the fixed-width snapshot of a policy
func (h *handler) GetPolicyRecord(c *gin.Context) {
	authority, holder, ok := pairParams(c)
	if !ok {
		return
	}

	p, err := h.store.GetPolicy(c.Request.Context(), authority, holder)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	record, err := domain.EncodeRecord(p)
	if err != nil {
		respondInternalError(c, err, "Failed to encode policy record")
		return
	}

	c.JSON(http.StatusOK, dto.NewRecordResponse(record))
}

// PurchasePolicy collects the premium into escrow
func (h *handler) PurchasePolicy(c *gin.Context) {
	authority, holder, ok := pairParams(c)
	if !ok {
		return
	}

	p, err := h.engine.Purchase(c.Request.Context(), middleware.AuthSubject(c), authority, holder)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPolicyResponse(p))
}

// CheckTrigger evaluates the trigger condition against the oracle
func (h *handler) CheckTrigger(c *gin.Context) {
	authority, holder, ok := pairParams(c)
	if !ok {
		return
	}

	p, met, err := h.engine.CheckTrigger(c.Request.Context(), middleware.AuthSubject(c), authority, holder)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckTriggerResponse{
		TriggerMet: met,
		Policy:     dto.NewPolicyResponse(p),
	})
}

// ExecutePayout releases the coverage amount to the holder
func (h *handler) ExecutePayout(c *gin.Context) {
	authority, holder, ok := pairParams(c)
	if !ok {
		return
	}

	p, err := h.engine.ExecutePayout(c.Request.Context(), middleware.AuthSubject(c), authority, holder)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPolicyResponse(p))
}

// CancelPolicy refunds the premium to the holder
func (h *handler) CancelPolicy(c *gin.Context) {
	authority, holder, ok := pairParams(c)
	if !ok {
		return
	}

	p, err := h.engine.Cancel(c.Request.Context(), middleware.AuthSubject(c), authority, holder)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPolicyResponse(p))
}

// UpdateOracle replaces the policy's oracle feed
func (h *handler) UpdateOracle(c *gin.Context) {
	authority, holder, ok := pairParams(c)
	if !ok {
		return
	}

	var req dto.UpdateOracleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	p, err := h.engine.UpdateOracle(c.Request.Context(), middleware.AuthSubject(c), authority, holder, domain.Identity(req.OracleFeedID))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPolicyResponse(p))
}

// Deposit funds a custodial account
func (h *handler) Deposit(c *gin.Context) {
	identity := domain.Identity(c.Param("identity"))
	if !identity.Valid() {
		respondBadRequest(c, "Invalid identity")
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := h.treasury.Deposit(c.Request.Context(), identity, req.Amount); err != nil {
		respondInternalError(c, err, "Failed to deposit")
		return
	}

	balance, err := h.treasury.Balance(c.Request.Context(), identity)
	if err != nil {
		respondInternalError(c, err, "Failed to read balance")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		Identity: string(identity),
		Balance:  balance,
	})
}

// GetBalance reads a custodial account balance
func (h *handler) GetBalance(c *gin.Context) {
	identity := domain.Identity(c.Param("identity"))
	if !identity.Valid() {
		respondBadRequest(c, "Invalid identity")
		return
	}

	balance, err := h.treasury.Balance(c.Request.Context(), identity)
	if err != nil {
		respondInternalError(c, err, "Failed to read balance")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		Identity: string(identity),
		Balance:  balance,
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "policyd-api",
	})
}
