package params

import "github.com/google/uuid"

// RecordLuckyDiscountClaimParams contains parameters for recording a claim
type RecordLuckyDiscountClaimParams struct {
	UserID      uuid.UUID
	RuleID      uuid.UUID
	LuckyNumber int
	LoginTime   string // HH:MM:SS in the store time zone
}

// ClaimLuckyDiscountParams contains parameters for recording a claim and emailing its code
type ClaimLuckyDiscountParams struct {
	RecordLuckyDiscountClaimParams
	Email        string
	CustomerName string
}

// ValidateLuckyDiscountCodeParams contains parameters for a redemption check
type ValidateLuckyDiscountCodeParams struct {
	UserID          uuid.UUID
	DiscountCode    string
	OrderValueCents int64
}

// LuckyDiscountRuleParams contains the admin-editable fields of a rule
type LuckyDiscountRuleParams struct {
	Name                   string
	Description            string
	LuckyNumbers           []int32
	LoginWindowStart       *string
	LoginWindowEnd         *string
	DiscountPercent        int32
	DiscountCode           *string
	MinOrderValueCents     int64
	MaxDiscountAmountCents *int64
	// IsActive nil means active on create and unchanged on update
	IsActive *bool
}
