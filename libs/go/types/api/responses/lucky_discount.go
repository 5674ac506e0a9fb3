package responses

import (
	"time"

	"github.com/aurajewels/storefront-api/libs/go/types/business"
)

// HealthResponse is returned by the liveness probe
type HealthResponse struct {
	Status string `json:"status"`
}

// LuckyDiscountEvaluationResponse is the outcome of an eligibility check
type LuckyDiscountEvaluationResponse struct {
	IsEligible    bool                   `json:"is_eligible"`
	LuckyNumber   int                    `json:"lucky_number"`
	Message       string                 `json:"message"`
	LoginTime     string                 `json:"login_time"`
	LoginAt       time.Time              `json:"login_at"`
	Authenticated bool                   `json:"authenticated"`
	MatchedRule   *business.DiscountRule `json:"matched_rule"`
}

// LuckyDiscountClaimResponse wraps a claim. Claim is null when the rule was
// no longer active. Error is set when the claim was stored but could not be emailed.
type LuckyDiscountClaimResponse struct {
	Claim *business.DiscountClaim `json:"claim"`
	Error string                  `json:"error,omitempty"`
}

// ListLuckyDiscountClaimsResponse lists a customer's claims, newest first
type ListLuckyDiscountClaimsResponse struct {
	Object string                   `json:"object"`
	Data   []business.DiscountClaim `json:"data"`
}

// ListLuckyDiscountRulesResponse lists rules for the admin console
type ListLuckyDiscountRulesResponse struct {
	Object string                  `json:"object"`
	Data   []business.DiscountRule `json:"data"`
}
