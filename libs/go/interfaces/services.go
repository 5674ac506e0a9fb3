package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aurajewels/storefront-api/libs/go/services"
	"github.com/aurajewels/storefront-api/libs/go/types/api/params"
	"github.com/aurajewels/storefront-api/libs/go/types/business"
)

// LuckyDiscountService handles lucky number evaluation, claims and redemption checks
type LuckyDiscountService interface {
	EvaluateEligibility(ctx context.Context, userID *uuid.UUID, loginAt time.Time) (*services.EligibilityEvaluation, error)
	RecordClaim(ctx context.Context, params params.RecordLuckyDiscountClaimParams) (*business.DiscountClaim, error)
	ClaimAndNotify(ctx context.Context, params params.ClaimLuckyDiscountParams) (*business.DiscountClaim, error)
	ListClaims(ctx context.Context, userID uuid.UUID) ([]business.DiscountClaim, error)
	ValidateClaimCode(ctx context.Context, params params.ValidateLuckyDiscountCodeParams) (*business.DiscountRedemption, error)
}

// LuckyDiscountRuleService handles admin management of lucky discount rules
type LuckyDiscountRuleService interface {
	ListRules(ctx context.Context) ([]business.DiscountRule, error)
	GetRule(ctx context.Context, id uuid.UUID) (*business.DiscountRule, error)
	CreateRule(ctx context.Context, params params.LuckyDiscountRuleParams) (*business.DiscountRule, error)
	UpdateRule(ctx context.Context, id uuid.UUID, params params.LuckyDiscountRuleParams) (*business.DiscountRule, error)
	SetRuleActive(ctx context.Context, id uuid.UUID, active bool) (*business.DiscountRule, error)
	DeleteRule(ctx context.Context, id uuid.UUID) error
}

// EmailService handles email sending operations
type EmailService interface {
	SendLuckyDiscountEmail(ctx context.Context, data business.LuckyDiscountEmailData) (string, error)
}

var (
	_ LuckyDiscountService     = (*services.LuckyDiscountService)(nil)
	_ LuckyDiscountRuleService = (*services.LuckyDiscountService)(nil)
	_ EmailService             = (*services.EmailService)(nil)
)
