package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aurajewels/storefront-api/libs/go/constants"
	"github.com/aurajewels/storefront-api/libs/go/interfaces"
	"github.com/aurajewels/storefront-api/libs/go/types/api/params"
	"github.com/aurajewels/storefront-api/libs/go/types/api/requests"
	"github.com/aurajewels/storefront-api/libs/go/types/api/responses"
)

// LuckyDiscountRuleHandler serves admin management of lucky discount rules
type LuckyDiscountRuleHandler struct {
	common  *CommonServices
	service interfaces.LuckyDiscountRuleService
	logger  *zap.Logger
}

// NewLuckyDiscountRuleHandler creates a handler with interface dependencies
func NewLuckyDiscountRuleHandler(common *CommonServices, service interfaces.LuckyDiscountRuleService) *LuckyDiscountRuleHandler {
	log := zap.NewNop()
	if common != nil {
		log = common.GetLogger()
	}
	return &LuckyDiscountRuleHandler{
		common:  common,
		service: service,
		logger:  log,
	}
}

// ListRules godoc
// @Summary List lucky discount rules
// @Tags admin
// @Produce json
// @Success 200 {object} responses.ListLuckyDiscountRulesResponse
// @Security Bearer
// @Router /admin/lucky-discount/rules [get]
func (h *LuckyDiscountRuleHandler) ListRules(c *gin.Context) {
	rules, err := h.service.ListRules(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list rules", err)
		return
	}
	sendSuccess(c, http.StatusOK, responses.ListLuckyDiscountRulesResponse{
		Object: "list",
		Data:   rules,
	})
}

// GetRule godoc
// @Summary Get a lucky discount rule
// @Tags admin
// @Produce json
// @Param rule_id path string true "Rule ID"
// @Success 200 {object} business.DiscountRule
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /admin/lucky-discount/rules/{rule_id} [get]
func (h *LuckyDiscountRuleHandler) GetRule(c *gin.Context) {
	ruleID, ok := parseRuleID(c)
	if !ok {
		return
	}

	rule, err := h.service.GetRule(c.Request.Context(), ruleID)
	if err != nil {
		status, message := luckyDiscountErrorStatus(err)
		sendError(c, status, message, err)
		return
	}
	sendSuccess(c, http.StatusOK, rule)
}

// CreateRule godoc
// @Summary Create a lucky discount rule
// @Tags admin
// @Accept json
// @Produce json
// @Param body body requests.LuckyDiscountRuleRequest true "Rule"
// @Success 201 {object} business.DiscountRule
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /admin/lucky-discount/rules [post]
func (h *LuckyDiscountRuleHandler) CreateRule(c *gin.Context) {
	var req requests.LuckyDiscountRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	rule, err := h.service.CreateRule(c.Request.Context(), ruleParamsFromRequest(req))
	if err != nil {
		status, message := luckyDiscountErrorStatus(err)
		sendError(c, status, message, err)
		return
	}

	h.logger.Info("admin created lucky discount rule",
		zap.String("rule_id", rule.ID.String()),
		zap.String("admin_id", c.GetString(constants.ContextUserID)))
	sendSuccess(c, http.StatusCreated, rule)
}

// UpdateRule godoc
// @Summary Replace a lucky discount rule
// @Description Leaving out is_active keeps the rule's current status.
// @Tags admin
// @Accept json
// @Produce json
// @Param rule_id path string true "Rule ID"
// @Param body body requests.LuckyDiscountRuleRequest true "Rule"
// @Success 200 {object} business.DiscountRule
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /admin/lucky-discount/rules/{rule_id} [put]
func (h *LuckyDiscountRuleHandler) UpdateRule(c *gin.Context) {
	ruleID, ok := parseRuleID(c)
	if !ok {
		return
	}

	var req requests.LuckyDiscountRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	rule, err := h.service.UpdateRule(c.Request.Context(), ruleID, ruleParamsFromRequest(req))
	if err != nil {
		status, message := luckyDiscountErrorStatus(err)
		sendError(c, status, message, err)
		return
	}
	sendSuccess(c, http.StatusOK, rule)
}

// SetRuleActive godoc
// @Summary Activate or deactivate a lucky discount rule
// @Tags admin
// @Accept json
// @Produce json
// @Param rule_id path string true "Rule ID"
// @Param body body requests.SetLuckyDiscountRuleActiveRequest true "Status"
// @Success 200 {object} business.DiscountRule
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /admin/lucky-discount/rules/{rule_id}/active [patch]
func (h *LuckyDiscountRuleHandler) SetRuleActive(c *gin.Context) {
	ruleID, ok := parseRuleID(c)
	if !ok {
		return
	}

	var req requests.SetLuckyDiscountRuleActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	rule, err := h.service.SetRuleActive(c.Request.Context(), ruleID, *req.IsActive)
	if err != nil {
		status, message := luckyDiscountErrorStatus(err)
		sendError(c, status, message, err)
		return
	}
	sendSuccess(c, http.StatusOK, rule)
}

// DeleteRule godoc
// @Summary Delete a lucky discount rule
// @Description Existing claims keep their codes; the rule stops matching immediately.
// @Tags admin
// @Produce json
// @Param rule_id path string true "Rule ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /admin/lucky-discount/rules/{rule_id} [delete]
func (h *LuckyDiscountRuleHandler) DeleteRule(c *gin.Context) {
	ruleID, ok := parseRuleID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteRule(c.Request.Context(), ruleID); err != nil {
		status, message := luckyDiscountErrorStatus(err)
		sendError(c, status, message, err)
		return
	}

	h.logger.Info("admin deleted lucky discount rule",
		zap.String("rule_id", ruleID.String()),
		zap.String("admin_id", c.GetString(constants.ContextUserID)))
	sendSuccessMessage(c, http.StatusOK, "Rule deleted")
}

func parseRuleID(c *gin.Context) (uuid.UUID, bool) {
	ruleID, err := uuid.Parse(c.Param("rule_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid rule ID format", err)
		return uuid.Nil, false
	}
	return ruleID, true
}

// ruleParamsFromRequest converts the admin body. A missing is_active is left
// to the service: new rules start active, updates keep the stored flag.
func ruleParamsFromRequest(req requests.LuckyDiscountRuleRequest) params.LuckyDiscountRuleParams {
	return params.LuckyDiscountRuleParams{
		Name:                   req.Name,
		Description:            req.Description,
		LuckyNumbers:           req.LuckyNumbers,
		LoginWindowStart:       req.LoginWindowStart,
		LoginWindowEnd:         req.LoginWindowEnd,
		DiscountPercent:        req.DiscountPercent,
		DiscountCode:           req.DiscountCode,
		MinOrderValueCents:     req.MinOrderValueCents,
		MaxDiscountAmountCents: req.MaxDiscountAmountCents,
		IsActive:               req.IsActive,
	}
}
