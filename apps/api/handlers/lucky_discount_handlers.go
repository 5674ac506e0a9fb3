package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aurajewels/storefront-api/libs/go/client/auth"
	"github.com/aurajewels/storefront-api/libs/go/constants"
	"github.com/aurajewels/storefront-api/libs/go/interfaces"
	"github.com/aurajewels/storefront-api/libs/go/logger"
	"github.com/aurajewels/storefront-api/libs/go/middleware"
	"github.com/aurajewels/storefront-api/libs/go/services"
	"github.com/aurajewels/storefront-api/libs/go/types/api/params"
	"github.com/aurajewels/storefront-api/libs/go/types/api/requests"
	"github.com/aurajewels/storefront-api/libs/go/types/api/responses"
)

// LuckyDiscountHandler serves the customer facing lucky discount endpoints
type LuckyDiscountHandler struct {
	common  *CommonServices
	service interfaces.LuckyDiscountService
	now     func() time.Time
	logger  *zap.Logger
}

// NewLuckyDiscountHandler creates a handler with interface dependencies
func NewLuckyDiscountHandler(common *CommonServices, service interfaces.LuckyDiscountService, now func() time.Time) *LuckyDiscountHandler {
	if now == nil {
		now = time.Now
	}
	log := zap.NewNop()
	if common != nil {
		log = common.GetLogger()
	}
	return &LuckyDiscountHandler{
		common:  common,
		service: service,
		now:     now,
		logger:  log,
	}
}

func (h *LuckyDiscountHandler) eventLogger(c *gin.Context) *logger.StructuredLogger {
	return logger.NewStructuredLoggerFrom(h.logger, logger.ComponentLuckyDiscount).
		WithCorrelationID(middleware.GetCorrelationID(c)).
		WithUserID(c.GetString(constants.ContextUserID))
}

// Evaluate godoc
// @Summary Evaluate lucky discount eligibility
// @Description Derives the lucky number from the login time and matches it against the active rules. Anonymous visitors always get a non-eligible result.
// @Tags lucky-discount
// @Accept json
// @Produce json
// @Param body body requests.EvaluateLuckyDiscountRequest false "Login time override"
// @Success 200 {object} responses.LuckyDiscountEvaluationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security Bearer
// @Router /lucky-discount/evaluate [post]
func (h *LuckyDiscountHandler) Evaluate(c *gin.Context) {
	var req requests.EvaluateLuckyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	loginAt := h.now()
	if req.LoginAt != nil && *req.LoginAt != "" {
		parsed, err := time.Parse(time.RFC3339, *req.LoginAt)
		if err != nil {
			sendError(c, http.StatusBadRequest, "login_at must be an RFC3339 timestamp", err)
			return
		}
		loginAt = parsed
	}

	var userID *uuid.UUID
	if id, ok := auth.UserIDFromContext(c); ok {
		userID = &id
	}

	evaluation, err := h.service.EvaluateEligibility(c.Request.Context(), userID, loginAt)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to evaluate lucky discount", err)
		return
	}

	ruleID := ""
	if evaluation.MatchedRule != nil {
		ruleID = evaluation.MatchedRule.ID.String()
	}
	h.eventLogger(c).LogEligibilityEvent(evaluation.LuckyNumber, evaluation.LoginTime, evaluation.IsEligible, ruleID)

	sendSuccess(c, http.StatusOK, responses.LuckyDiscountEvaluationResponse{
		IsEligible:    evaluation.IsEligible,
		LuckyNumber:   evaluation.LuckyNumber,
		Message:       evaluation.Message,
		LoginTime:     evaluation.LoginTime,
		LoginAt:       evaluation.LoginAt,
		Authenticated: userID != nil,
		MatchedRule:   evaluation.MatchedRule,
	})
}

// Claim godoc
// @Summary Claim a lucky discount
// @Description Records a claim for the matched rule and emails the discount code to the signed-in customer. Returns 409 with a null claim when the rule is no longer active, and 502 with the stored claim when the email could not be sent.
// @Tags lucky-discount
// @Accept json
// @Produce json
// @Param body body requests.ClaimLuckyDiscountRequest true "Claim"
// @Success 201 {object} responses.LuckyDiscountClaimResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} responses.LuckyDiscountClaimResponse
// @Failure 502 {object} responses.LuckyDiscountClaimResponse
// @Security Bearer
// @Router /lucky-discount/claims [post]
func (h *LuckyDiscountHandler) Claim(c *gin.Context) {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		sendError(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	var req requests.ClaimLuckyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	ruleID, err := uuid.Parse(req.RuleID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid rule ID format", err)
		return
	}

	email := c.GetString(constants.ContextUserEmail)
	if email == "" {
		sendError(c, http.StatusBadRequest, "Your account has no email address to send the code to", nil)
		return
	}
	customerName := strings.TrimSpace(req.CustomerName)
	if customerName == "" {
		customerName = c.GetString(constants.ContextUserName)
	}

	claim, err := h.service.ClaimAndNotify(c.Request.Context(), params.ClaimLuckyDiscountParams{
		RecordLuckyDiscountClaimParams: params.RecordLuckyDiscountClaimParams{
			UserID:      userID,
			RuleID:      ruleID,
			LuckyNumber: *req.LuckyNumber,
			LoginTime:   req.LoginTime,
		},
		Email:        email,
		CustomerName: customerName,
	})

	claimID := ""
	if claim != nil {
		claimID = claim.ID.String()
	}
	h.eventLogger(c).LogClaimEvent(claimID, ruleID.String(), *req.LuckyNumber, err == nil && claim != nil)

	switch {
	case err != nil && errors.Is(err, services.ErrNotificationDelivery) && claim != nil:
		h.logger.Warn("lucky discount claimed but email failed",
			zap.Error(err),
			zap.String("claim_id", claimID))
		sendSuccess(c, http.StatusBadGateway, responses.LuckyDiscountClaimResponse{
			Claim: claim,
			Error: "Your discount was saved but we could not email the code. You can find it in your account.",
		})
	case errors.Is(err, services.ErrInvalidClaim):
		sendError(c, http.StatusBadRequest, err.Error(), err)
	case err != nil:
		sendError(c, http.StatusInternalServerError, "Failed to claim lucky discount", err)
	case claim == nil:
		sendSuccess(c, http.StatusConflict, responses.LuckyDiscountClaimResponse{Claim: nil})
	default:
		sendSuccess(c, http.StatusCreated, responses.LuckyDiscountClaimResponse{Claim: claim})
	}
}

// ListClaims godoc
// @Summary List the signed-in customer's lucky discount claims
// @Tags lucky-discount
// @Produce json
// @Success 200 {object} responses.ListLuckyDiscountClaimsResponse
// @Failure 401 {object} ErrorResponse
// @Security Bearer
// @Router /lucky-discount/claims [get]
func (h *LuckyDiscountHandler) ListClaims(c *gin.Context) {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		sendError(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	claims, err := h.service.ListClaims(c.Request.Context(), userID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list claims", err)
		return
	}
	sendSuccess(c, http.StatusOK, responses.ListLuckyDiscountClaimsResponse{
		Object: "list",
		Data:   claims,
	})
}

// ValidateCode godoc
// @Summary Check a lucky discount code against an order total
// @Tags lucky-discount
// @Accept json
// @Produce json
// @Param body body requests.ValidateLuckyDiscountCodeRequest true "Code and order value"
// @Success 200 {object} business.DiscountRedemption
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security Bearer
// @Router /lucky-discount/redeem/validate [post]
func (h *LuckyDiscountHandler) ValidateCode(c *gin.Context) {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		sendError(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	var req requests.ValidateLuckyDiscountCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	redemption, err := h.service.ValidateClaimCode(c.Request.Context(), params.ValidateLuckyDiscountCodeParams{
		UserID:          userID,
		DiscountCode:    req.DiscountCode,
		OrderValueCents: req.OrderValueCents,
	})
	if err != nil {
		status, message := luckyDiscountErrorStatus(err)
		sendError(c, status, message, err)
		return
	}
	sendSuccess(c, http.StatusOK, redemption)
}

// luckyDiscountErrorStatus maps service errors to an HTTP status and a
// message safe to show the caller.
func luckyDiscountErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrInvalidRule),
		errors.Is(err, services.ErrInvalidClaim),
		errors.Is(err, services.ErrInvalidOrderValue):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrRuleNotFound),
		errors.Is(err, services.ErrClaimNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, services.ErrClaimExpired),
		errors.Is(err, services.ErrRuleInactive),
		errors.Is(err, services.ErrMinimumOrderNotMet):
		return http.StatusUnprocessableEntity, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
