package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/aurajewels/storefront-api/libs/go/db"
	"github.com/aurajewels/storefront-api/libs/go/helpers"
	"github.com/aurajewels/storefront-api/libs/go/logger"
	"github.com/aurajewels/storefront-api/libs/go/lucky"
	"github.com/aurajewels/storefront-api/libs/go/types/api/params"
	"github.com/aurajewels/storefront-api/libs/go/types/business"
)

// ClaimValidity is how long a claimed discount code stays redeemable.
const ClaimValidity = 24 * time.Hour

var (
	ErrNotificationDelivery = errors.New("discount code email could not be delivered")
	ErrRuleNotFound         = errors.New("lucky discount rule not found")
	ErrInvalidRule          = errors.New("invalid lucky discount rule")
	ErrInvalidClaim         = errors.New("invalid lucky discount claim")
	ErrClaimNotFound        = errors.New("lucky discount claim not found")
	ErrClaimExpired         = errors.New("lucky discount code has expired")
	ErrRuleInactive         = errors.New("lucky discount rule is no longer active")
	ErrMinimumOrderNotMet   = errors.New("order value is below the minimum for this discount")
	ErrInvalidOrderValue    = errors.New("order value must be positive")
)

// LuckyDiscountMailer sends the discount code of a new claim.
type LuckyDiscountMailer interface {
	SendLuckyDiscountEmail(ctx context.Context, data business.LuckyDiscountEmailData) (string, error)
}

// EligibilityEvaluation is an eligibility result together with the login
// instant it was computed for.
type EligibilityEvaluation struct {
	business.EligibilityResult
	LoginTime string    `json:"login_time"`
	LoginAt   time.Time `json:"login_at"`
}

// LuckyDiscountService evaluates, records and redeems lucky discounts.
type LuckyDiscountService struct {
	queries  db.Querier
	cache    RuleCache
	mailer   LuckyDiscountMailer
	location *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

// LuckyDiscountOption configures a LuckyDiscountService.
type LuckyDiscountOption func(*LuckyDiscountService)

// WithRuleCache replaces the default in-memory rule cache.
func WithRuleCache(cache RuleCache) LuckyDiscountOption {
	return func(s *LuckyDiscountService) {
		if cache != nil {
			s.cache = cache
		}
	}
}

// WithStoreLocation sets the time zone lucky numbers and windows are read in.
func WithStoreLocation(loc *time.Location) LuckyDiscountOption {
	return func(s *LuckyDiscountService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) LuckyDiscountOption {
	return func(s *LuckyDiscountService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewLuckyDiscountService creates a new lucky discount service
func NewLuckyDiscountService(queries db.Querier, mailer LuckyDiscountMailer, opts ...LuckyDiscountOption) *LuckyDiscountService {
	s := &LuckyDiscountService{
		queries:  queries,
		cache:    NewMemoryRuleCache(DefaultRuleCacheTTL),
		mailer:   mailer,
		location: time.UTC,
		now:      time.Now,
		logger:   logger.Log,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// EvaluateEligibility derives the lucky number for loginAt and matches it
// against the active rules. A nil userID means the visitor is not signed in,
// in which case the rule store is not consulted.
func (s *LuckyDiscountService) EvaluateEligibility(ctx context.Context, userID *uuid.UUID, loginAt time.Time) (*EligibilityEvaluation, error) {
	local := loginAt.In(s.location)
	in := lucky.EvaluationInput{
		Authenticated: userID != nil,
		LuckyNumber:   lucky.GenerateLuckyNumber(local),
		ClockTime:     lucky.ClockTime(local),
	}

	if in.Authenticated {
		rules, err := s.activeRules(ctx)
		if err != nil {
			return nil, err
		}
		in.Rules = rules
	}

	result := lucky.Evaluate(in)
	if result.IsEligible {
		s.logger.Info("lucky number matched rule",
			zap.String("user_id", userID.String()),
			zap.Int("lucky_number", result.LuckyNumber),
			zap.String("rule_id", result.MatchedRule.ID.String()),
			zap.String("login_time", in.ClockTime))
	}

	return &EligibilityEvaluation{
		EligibilityResult: result,
		LoginTime:         in.ClockTime,
		LoginAt:           local,
	}, nil
}

// RecordClaim persists a claim for a rule from the cached active set. When the
// rule is no longer among the active rules it returns nil, nil.
func (s *LuckyDiscountService) RecordClaim(ctx context.Context, p params.RecordLuckyDiscountClaimParams) (*business.DiscountClaim, error) {
	claim, _, err := s.recordClaim(ctx, p)
	return claim, err
}

// ClaimAndNotify records a claim and emails its code. A failed email is
// reported with ErrNotificationDelivery alongside the already persisted claim.
func (s *LuckyDiscountService) ClaimAndNotify(ctx context.Context, p params.ClaimLuckyDiscountParams) (*business.DiscountClaim, error) {
	if strings.TrimSpace(p.Email) == "" {
		return nil, fmt.Errorf("%w: recipient email is required", ErrInvalidClaim)
	}

	claim, rule, err := s.recordClaim(ctx, p.RecordLuckyDiscountClaimParams)
	if err != nil || claim == nil {
		return claim, err
	}

	if s.mailer == nil {
		return claim, fmt.Errorf("%w: %w", ErrNotificationDelivery, ErrEmailDisabled)
	}

	emailID, err := s.mailer.SendLuckyDiscountEmail(ctx, business.LuckyDiscountEmailData{
		Email:           p.Email,
		CustomerName:    p.CustomerName,
		DiscountCode:    claim.DiscountCode,
		DiscountPercent: rule.DiscountPercent,
		LuckyNumber:     claim.LuckyNumber,
		ExpiresAt:       claim.ExpiresAt,
	})
	if err != nil {
		s.logger.Error("failed to email lucky discount code",
			zap.Error(err),
			zap.String("claim_id", claim.ID.String()),
			zap.String("user_id", claim.UserID.String()))
		return claim, fmt.Errorf("%w: %w", ErrNotificationDelivery, err)
	}

	s.logger.Info("lucky discount code emailed",
		zap.String("claim_id", claim.ID.String()),
		zap.String("email_id", emailID))
	return claim, nil
}

func (s *LuckyDiscountService) recordClaim(ctx context.Context, p params.RecordLuckyDiscountClaimParams) (*business.DiscountClaim, *business.DiscountRule, error) {
	if p.UserID == uuid.Nil {
		return nil, nil, fmt.Errorf("%w: user id is required", ErrInvalidClaim)
	}
	if p.LuckyNumber < 0 || p.LuckyNumber > 119 {
		return nil, nil, fmt.Errorf("%w: lucky number %d is out of range", ErrInvalidClaim, p.LuckyNumber)
	}
	loginTime, err := helpers.ClockToPgTime(p.LoginTime)
	if err != nil || !lucky.IsClockTime(p.LoginTime) {
		return nil, nil, fmt.Errorf("%w: login time must be HH:MM:SS", ErrInvalidClaim)
	}

	rules, err := s.activeRules(ctx)
	if err != nil {
		return nil, nil, err
	}
	rule := findRule(rules, p.RuleID)
	if rule == nil {
		s.logger.Warn("claim references a rule outside the active set, skipping",
			zap.String("user_id", p.UserID.String()),
			zap.String("rule_id", p.RuleID.String()),
			zap.Int("lucky_number", p.LuckyNumber))
		return nil, nil, nil
	}

	createdAt := s.now()
	row, err := s.queries.CreateLuckyDiscountClaim(ctx, db.CreateLuckyDiscountClaimParams{
		UserID:       p.UserID,
		RuleID:       rule.ID,
		LuckyNumber:  int32(p.LuckyNumber),
		LoginTime:    loginTime,
		DiscountCode: rule.ClaimCode(p.LuckyNumber),
		ExpiresAt:    helpers.TimeToNullableTimestamptz(createdAt.Add(ClaimValidity)),
		CreatedAt:    helpers.TimeToNullableTimestamptz(createdAt),
	})
	if err != nil {
		s.logger.Error("failed to create lucky discount claim",
			zap.Error(err),
			zap.String("user_id", p.UserID.String()),
			zap.String("rule_id", rule.ID.String()))
		return nil, nil, fmt.Errorf("failed to create claim: %w", err)
	}

	claim := toBusinessClaim(row)
	s.logger.Info("lucky discount claimed",
		zap.String("claim_id", claim.ID.String()),
		zap.String("user_id", claim.UserID.String()),
		zap.String("rule_id", claim.RuleID.String()),
		zap.Time("expires_at", claim.ExpiresAt))
	return &claim, rule, nil
}

// ListClaims returns a user's claims, newest first.
func (s *LuckyDiscountService) ListClaims(ctx context.Context, userID uuid.UUID) ([]business.DiscountClaim, error) {
	rows, err := s.queries.ListLuckyDiscountClaimsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}
	claims := make([]business.DiscountClaim, 0, len(rows))
	for _, row := range rows {
		claims = append(claims, toBusinessClaim(row))
	}
	return claims, nil
}

// ValidateClaimCode checks that the user's code can be applied to an order of
// the given value and computes the discount.
func (s *LuckyDiscountService) ValidateClaimCode(ctx context.Context, p params.ValidateLuckyDiscountCodeParams) (*business.DiscountRedemption, error) {
	if p.OrderValueCents <= 0 {
		return nil, ErrInvalidOrderValue
	}
	code := strings.TrimSpace(p.DiscountCode)

	row, err := s.queries.GetLuckyDiscountClaimByCode(ctx, db.GetLuckyDiscountClaimByCodeParams{
		UserID:       p.UserID,
		DiscountCode: code,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClaimNotFound
		}
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}
	claim := toBusinessClaim(row)
	if claim.IsExpired(s.now()) {
		return nil, ErrClaimExpired
	}

	ruleRow, err := s.queries.GetLuckyDiscountRule(ctx, claim.RuleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRuleInactive
		}
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}
	rule := toBusinessRule(ruleRow)
	if !rule.IsActive {
		return nil, ErrRuleInactive
	}
	if p.OrderValueCents < rule.MinOrderValueCents {
		return nil, fmt.Errorf("%w: minimum is %d cents", ErrMinimumOrderNotMet, rule.MinOrderValueCents)
	}

	amount := p.OrderValueCents * int64(rule.DiscountPercent) / 100
	if rule.MaxDiscountAmountCents != nil && amount > *rule.MaxDiscountAmountCents {
		amount = *rule.MaxDiscountAmountCents
	}

	return &business.DiscountRedemption{
		ClaimID:             claim.ID,
		RuleID:              rule.ID,
		DiscountCode:        claim.DiscountCode,
		DiscountPercent:     rule.DiscountPercent,
		OrderValueCents:     p.OrderValueCents,
		DiscountAmountCents: amount,
		FinalAmountCents:    p.OrderValueCents - amount,
		ExpiresAt:           claim.ExpiresAt,
	}, nil
}

// ListRules returns every rule that has not been deleted.
func (s *LuckyDiscountService) ListRules(ctx context.Context) ([]business.DiscountRule, error) {
	rows, err := s.queries.ListLuckyDiscountRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	return toBusinessRules(rows), nil
}

func (s *LuckyDiscountService) GetRule(ctx context.Context, id uuid.UUID) (*business.DiscountRule, error) {
	row, err := s.queries.GetLuckyDiscountRule(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}
	rule := toBusinessRule(row)
	return &rule, nil
}

func (s *LuckyDiscountService) CreateRule(ctx context.Context, p params.LuckyDiscountRuleParams) (*business.DiscountRule, error) {
	fields, err := ruleFields(p)
	if err != nil {
		return nil, err
	}

	row, err := s.queries.CreateLuckyDiscountRule(ctx, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to create rule: %w", err)
	}
	s.invalidateRules(ctx)

	rule := toBusinessRule(row)
	s.logger.Info("lucky discount rule created",
		zap.String("rule_id", rule.ID.String()),
		zap.Int32s("lucky_numbers", rule.LuckyNumbers))
	return &rule, nil
}

func (s *LuckyDiscountService) UpdateRule(ctx context.Context, id uuid.UUID, p params.LuckyDiscountRuleParams) (*business.DiscountRule, error) {
	fields, err := ruleFields(p)
	if err != nil {
		return nil, err
	}

	row, err := s.queries.UpdateLuckyDiscountRule(ctx, db.UpdateLuckyDiscountRuleParams{
		ID:                     id,
		Name:                   fields.Name,
		Description:            fields.Description,
		LuckyNumbers:           fields.LuckyNumbers,
		LoginWindowStart:       fields.LoginWindowStart,
		LoginWindowEnd:         fields.LoginWindowEnd,
		DiscountPercent:        fields.DiscountPercent,
		DiscountCode:           fields.DiscountCode,
		MinOrderValueCents:     fields.MinOrderValueCents,
		MaxDiscountAmountCents: fields.MaxDiscountAmountCents,
		IsActive:               helpers.BoolPtrToNullableBool(p.IsActive),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to update rule: %w", err)
	}
	s.invalidateRules(ctx)

	rule := toBusinessRule(row)
	s.logger.Info("lucky discount rule updated", zap.String("rule_id", rule.ID.String()))
	return &rule, nil
}

func (s *LuckyDiscountService) SetRuleActive(ctx context.Context, id uuid.UUID, active bool) (*business.DiscountRule, error) {
	row, err := s.queries.SetLuckyDiscountRuleActive(ctx, db.SetLuckyDiscountRuleActiveParams{
		ID:       id,
		IsActive: active,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to update rule status: %w", err)
	}
	s.invalidateRules(ctx)

	rule := toBusinessRule(row)
	s.logger.Info("lucky discount rule status changed",
		zap.String("rule_id", rule.ID.String()),
		zap.Bool("is_active", rule.IsActive))
	return &rule, nil
}

// DeleteRule soft-deletes a rule. Claims keep referencing it.
func (s *LuckyDiscountService) DeleteRule(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetRule(ctx, id); err != nil {
		return err
	}
	if err := s.queries.DeleteLuckyDiscountRule(ctx, id); err != nil {
		return fmt.Errorf("failed to delete rule: %w", err)
	}
	s.invalidateRules(ctx)

	s.logger.Info("lucky discount rule deleted", zap.String("rule_id", id.String()))
	return nil
}

// activeRules reads the active rule list through the cache. Cache failures
// fall back to the rule store and skip the write-back.
func (s *LuckyDiscountService) activeRules(ctx context.Context) ([]business.DiscountRule, error) {
	rules, generation, ok, err := s.cache.Get(ctx)
	cacheReadable := err == nil
	if err != nil {
		s.logger.Warn("rule cache read failed, loading from database", zap.Error(err))
	} else if ok {
		return rules, nil
	}

	rows, err := s.queries.ListActiveLuckyDiscountRules(ctx)
	if err != nil {
		s.logger.Error("failed to load active lucky discount rules", zap.Error(err))
		return nil, fmt.Errorf("failed to load active rules: %w", err)
	}
	rules = toBusinessRules(rows)

	if cacheReadable {
		if err := s.cache.Set(ctx, generation, rules); err != nil {
			s.logger.Warn("failed to cache active rules", zap.Error(err))
		}
	}
	return rules, nil
}

func (s *LuckyDiscountService) invalidateRules(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("failed to invalidate rule cache", zap.Error(err))
	}
}

func findRule(rules []business.DiscountRule, id uuid.UUID) *business.DiscountRule {
	for i := range rules {
		if rules[i].ID == id {
			return &rules[i]
		}
	}
	return nil
}

// ruleFields validates admin input and converts it to column values.
func ruleFields(p params.LuckyDiscountRuleParams) (db.CreateLuckyDiscountRuleParams, error) {
	if err := ValidateRuleParams(p); err != nil {
		return db.CreateLuckyDiscountRuleParams{}, err
	}

	start, err := helpers.ClockPtrToPgTime(p.LoginWindowStart)
	if err != nil {
		return db.CreateLuckyDiscountRuleParams{}, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	end, err := helpers.ClockPtrToPgTime(p.LoginWindowEnd)
	if err != nil {
		return db.CreateLuckyDiscountRuleParams{}, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}

	var code *string
	if p.DiscountCode != nil {
		trimmed := strings.TrimSpace(*p.DiscountCode)
		code = &trimmed
	}

	return db.CreateLuckyDiscountRuleParams{
		Name:                   strings.TrimSpace(p.Name),
		Description:            helpers.StringToNullableText(p.Description),
		LuckyNumbers:           p.LuckyNumbers,
		LoginWindowStart:       start,
		LoginWindowEnd:         end,
		DiscountPercent:        p.DiscountPercent,
		DiscountCode:           helpers.StringPtrToNullableText(code),
		MinOrderValueCents:     p.MinOrderValueCents,
		MaxDiscountAmountCents: helpers.Int64PtrToNullableInt8(p.MaxDiscountAmountCents),
		IsActive:               p.IsActive == nil || *p.IsActive,
	}, nil
}

// ValidateRuleParams reports the first problem with an admin rule definition.
func ValidateRuleParams(p params.LuckyDiscountRuleParams) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRule)
	}
	if len(p.LuckyNumbers) == 0 {
		return fmt.Errorf("%w: at least one lucky number is required", ErrInvalidRule)
	}
	for _, n := range p.LuckyNumbers {
		if n < 0 {
			return fmt.Errorf("%w: lucky numbers must not be negative", ErrInvalidRule)
		}
	}
	if p.DiscountPercent < 0 || p.DiscountPercent > 100 {
		return fmt.Errorf("%w: discount percent must be between 0 and 100", ErrInvalidRule)
	}
	if p.MinOrderValueCents < 0 {
		return fmt.Errorf("%w: minimum order value must not be negative", ErrInvalidRule)
	}
	if p.MaxDiscountAmountCents != nil && *p.MaxDiscountAmountCents < 0 {
		return fmt.Errorf("%w: maximum discount amount must not be negative", ErrInvalidRule)
	}
	if (p.LoginWindowStart == nil) != (p.LoginWindowEnd == nil) {
		return fmt.Errorf("%w: login window needs both start and end", ErrInvalidRule)
	}
	if p.LoginWindowStart != nil {
		if !lucky.IsClockTime(*p.LoginWindowStart) || !lucky.IsClockTime(*p.LoginWindowEnd) {
			return fmt.Errorf("%w: login window must use HH:MM:SS", ErrInvalidRule)
		}
		if *p.LoginWindowStart > *p.LoginWindowEnd {
			return fmt.Errorf("%w: login window start must not be after its end", ErrInvalidRule)
		}
	}
	return nil
}

func toBusinessRule(row db.LuckyDiscountRule) business.DiscountRule {
	rule := business.DiscountRule{
		ID:                     row.ID,
		Name:                   row.Name,
		LuckyNumbers:           row.LuckyNumbers,
		LoginWindowStart:       helpers.PgTimeToClockPtr(row.LoginWindowStart),
		LoginWindowEnd:         helpers.PgTimeToClockPtr(row.LoginWindowEnd),
		DiscountPercent:        row.DiscountPercent,
		DiscountCode:           helpers.NullableTextToStringPtr(row.DiscountCode),
		MinOrderValueCents:     row.MinOrderValueCents,
		MaxDiscountAmountCents: helpers.NullableInt8ToInt64Ptr(row.MaxDiscountAmountCents),
		IsActive:               row.IsActive,
		CreatedAt:              row.CreatedAt.Time,
		UpdatedAt:              row.UpdatedAt.Time,
	}
	if row.Description.Valid {
		rule.Description = row.Description.String
	}
	if rule.LuckyNumbers == nil {
		rule.LuckyNumbers = []int32{}
	}
	return rule
}

func toBusinessRules(rows []db.LuckyDiscountRule) []business.DiscountRule {
	rules := make([]business.DiscountRule, 0, len(rows))
	for _, row := range rows {
		rules = append(rules, toBusinessRule(row))
	}
	return rules
}

func toBusinessClaim(row db.LuckyDiscountClaim) business.DiscountClaim {
	return business.DiscountClaim{
		ID:           row.ID,
		UserID:       row.UserID,
		RuleID:       row.RuleID,
		LuckyNumber:  row.LuckyNumber,
		LoginTime:    helpers.PgTimeToClock(row.LoginTime),
		DiscountCode: row.DiscountCode,
		ExpiresAt:    row.ExpiresAt.Time,
		CreatedAt:    row.CreatedAt.Time,
	}
}
