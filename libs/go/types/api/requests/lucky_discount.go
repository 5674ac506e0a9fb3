package requests

// EvaluateLuckyDiscountRequest is the body of an eligibility check. LoginAt
// defaults to the time the request is received.
type EvaluateLuckyDiscountRequest struct {
	LoginAt *string `json:"login_at,omitempty"` // RFC3339
}

// ClaimLuckyDiscountRequest claims the rule an evaluation matched.
type ClaimLuckyDiscountRequest struct {
	RuleID       string `json:"rule_id" binding:"required"`
	LuckyNumber  *int   `json:"lucky_number" binding:"required"`
	LoginTime    string `json:"login_time" binding:"required"` // HH:MM:SS
	CustomerName string `json:"customer_name,omitempty"`
}

// ValidateLuckyDiscountCodeRequest checks a claimed code against an order total
type ValidateLuckyDiscountCodeRequest struct {
	DiscountCode    string `json:"discount_code" binding:"required"`
	OrderValueCents int64  `json:"order_value_cents" binding:"required"`
}

// LuckyDiscountRuleRequest is the body for creating or replacing a rule
type LuckyDiscountRuleRequest struct {
	Name                   string  `json:"name" binding:"required"`
	Description            string  `json:"description,omitempty"`
	LuckyNumbers           []int32 `json:"lucky_numbers" binding:"required"`
	LoginWindowStart       *string `json:"login_window_start,omitempty"`
	LoginWindowEnd         *string `json:"login_window_end,omitempty"`
	DiscountPercent        int32   `json:"discount_percent"`
	DiscountCode           *string `json:"discount_code,omitempty"`
	MinOrderValueCents     int64   `json:"min_order_value_cents"`
	MaxDiscountAmountCents *int64  `json:"max_discount_amount_cents,omitempty"`
	IsActive               *bool   `json:"is_active,omitempty"` // omitted: active on create, unchanged on update
}

// SetLuckyDiscountRuleActiveRequest toggles a rule
type SetLuckyDiscountRuleActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
