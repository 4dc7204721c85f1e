package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/parametriclabs/policyd/internal/domain"
)

const MAX_PAGE_SIZE = 100

// ListPoliciesQueryParams holds query parameters for GET /policies
type ListPoliciesQueryParams struct {
	// Filters
	Authority    string `form:"authority"`
	PolicyHolder string `form:"holder"`
	Status       string `form:"status"`

	// Pagination
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ParseListPoliciesQuery parses query parameters for GET /policies
func ParseListPoliciesQuery(c *gin.Context) (*ListPoliciesQueryParams, error) {
	var params ListPoliciesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limit
	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}
	if params.Limit <= 0 {
		params.Limit = 20
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	return &params, nil
}

// Validate checks filter values beyond binding
func (p *ListPoliciesQueryParams) Validate() error {
	if p.Authority != "" && !domain.Identity(p.Authority).Valid() {
		return fmt.Errorf("authority must be 64 lowercase hex characters")
	}
	if p.PolicyHolder != "" && !domain.Identity(p.PolicyHolder).Valid() {
		return fmt.Errorf("holder must be 64 lowercase hex characters")
	}
	if p.Status != "" && !domain.IsValidStatus(domain.PolicyStatus(p.Status)) {
		return fmt.Errorf("unknown status %q", p.Status)
	}
	return nil
}
