package business

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DiscountRule is an admin-configured lucky discount rule.
type DiscountRule struct {
	ID                     uuid.UUID `json:"id"`
	Name                   string    `json:"name"`
	Description            string    `json:"description"`
	LuckyNumbers           []int32   `json:"lucky_numbers"`
	LoginWindowStart       *string   `json:"login_window_start,omitempty"` // HH:MM:SS
	LoginWindowEnd         *string   `json:"login_window_end,omitempty"`   // HH:MM:SS
	DiscountPercent        int32     `json:"discount_percent"`
	DiscountCode           *string   `json:"discount_code,omitempty"`
	MinOrderValueCents     int64     `json:"min_order_value_cents"`
	MaxDiscountAmountCents *int64    `json:"max_discount_amount_cents,omitempty"`
	IsActive               bool      `json:"is_active"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// HasWindow reports whether the rule restricts matching to a time-of-day window.
func (r DiscountRule) HasWindow() bool {
	return r.LoginWindowStart != nil && r.LoginWindowEnd != nil
}

// ClaimCode returns the code handed to a customer who matched this rule with luckyNumber.
func (r DiscountRule) ClaimCode(luckyNumber int) string {
	if r.DiscountCode != nil && *r.DiscountCode != "" {
		return *r.DiscountCode
	}
	return FallbackDiscountCode(luckyNumber)
}

// FallbackDiscountCode synthesizes a code for rules without a fixed one.
func FallbackDiscountCode(luckyNumber int) string {
	return fmt.Sprintf("LUCKY%d", luckyNumber)
}

// EligibilityResult is the outcome of one lucky number evaluation.
// IsEligible is true exactly when MatchedRule is set.
type EligibilityResult struct {
	IsEligible  bool          `json:"is_eligible"`
	MatchedRule *DiscountRule `json:"matched_rule"`
	LuckyNumber int           `json:"lucky_number"`
	Message     string        `json:"message"`
}

// DiscountClaim is a persisted, immutable record of a claimed lucky discount.
type DiscountClaim struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	RuleID       uuid.UUID `json:"rule_id"`
	LuckyNumber  int32     `json:"lucky_number"`
	LoginTime    string    `json:"login_time"` // HH:MM:SS
	DiscountCode string    `json:"discount_code"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsExpired reports whether the claim can no longer be redeemed at now.
func (c DiscountClaim) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// DiscountRedemption is the result of checking a claim code against an order.
type DiscountRedemption struct {
	ClaimID             uuid.UUID `json:"claim_id"`
	RuleID              uuid.UUID `json:"rule_id"`
	DiscountCode        string    `json:"discount_code"`
	DiscountPercent     int32     `json:"discount_percent"`
	OrderValueCents     int64     `json:"order_value_cents"`
	DiscountAmountCents int64     `json:"discount_amount_cents"`
	FinalAmountCents    int64     `json:"final_amount_cents"`
	ExpiresAt           time.Time `json:"expires_at"`
}
