package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/aurajewels/storefront-api/libs/go/mocks"
	"github.com/aurajewels/storefront-api/libs/go/services"
	"github.com/aurajewels/storefront-api/libs/go/types/api/params"
	"github.com/aurajewels/storefront-api/libs/go/types/business"
)

func newRuleRouter(t *testing.T, service *mocks.MockLuckyDiscountRuleService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	handler := NewLuckyDiscountRuleHandler(NewCommonServices(CommonServicesConfig{Logger: zap.NewNop()}), service)

	admin := &testUser{id: uuid.New(), email: "owner@aurajewels.in"}
	router := gin.New()
	rules := router.Group("/admin/lucky-discount/rules", withUser(admin))
	rules.GET("", handler.ListRules)
	rules.POST("", handler.CreateRule)
	rules.GET("/:rule_id", handler.GetRule)
	rules.PUT("/:rule_id", handler.UpdateRule)
	rules.PATCH("/:rule_id/active", handler.SetRuleActive)
	rules.DELETE("/:rule_id", handler.DeleteRule)
	return router
}

func TestLuckyDiscountRuleHandler_CreateRule(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(s *mocks.MockLuckyDiscountRuleService)
		expectedStatus int
	}{
		{
			name: "defaults to active",
			body: map[string]interface{}{
				"name":             "Festive sevens",
				"lucky_numbers":    []int{7, 77},
				"discount_percent": 15,
			},
			setupMocks: func(s *mocks.MockLuckyDiscountRuleService) {
				s.EXPECT().CreateRule(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, p params.LuckyDiscountRuleParams) (*business.DiscountRule, error) {
						assert.Nil(t, p.IsActive)
						assert.Equal(t, []int32{7, 77}, p.LuckyNumbers)
						return &business.DiscountRule{ID: uuid.New(), Name: p.Name, LuckyNumbers: p.LuckyNumbers, IsActive: true}, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "explicitly inactive",
			body: map[string]interface{}{
				"name":          "Draft",
				"lucky_numbers": []int{3},
				"is_active":     false,
			},
			setupMocks: func(s *mocks.MockLuckyDiscountRuleService) {
				s.EXPECT().CreateRule(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, p params.LuckyDiscountRuleParams) (*business.DiscountRule, error) {
						require.NotNil(t, p.IsActive)
						assert.False(t, *p.IsActive)
						return &business.DiscountRule{ID: uuid.New(), Name: p.Name}, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "service rejects window",
			body: map[string]interface{}{
				"name":               "Morning",
				"lucky_numbers":      []int{1},
				"login_window_start": "09:00",
			},
			setupMocks: func(s *mocks.MockLuckyDiscountRuleService) {
				s.EXPECT().CreateRule(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: login window needs both start and end", services.ErrInvalidRule))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing lucky numbers",
			body:           map[string]interface{}{"name": "Empty"},
			setupMocks:     func(s *mocks.MockLuckyDiscountRuleService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed json",
			body:           `{"name":`,
			setupMocks:     func(s *mocks.MockLuckyDiscountRuleService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := mocks.NewMockLuckyDiscountRuleServiceForTest(t)
			tt.setupMocks(service)

			w := doJSON(newRuleRouter(t, service), http.MethodPost, "/admin/lucky-discount/rules", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestLuckyDiscountRuleHandler_GetRule(t *testing.T) {
	ruleID := uuid.New()

	t.Run("found", func(t *testing.T) {
		service := mocks.NewMockLuckyDiscountRuleServiceForTest(t)
		service.EXPECT().GetRule(gomock.Any(), ruleID).Return(&business.DiscountRule{ID: ruleID, Name: "Sevens"}, nil)

		w := doJSON(newRuleRouter(t, service), http.MethodGet, "/admin/lucky-discount/rules/"+ruleID.String(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var rule business.DiscountRule
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rule))
		assert.Equal(t, "Sevens", rule.Name)
	})

	t.Run("not found", func(t *testing.T) {
		service := mocks.NewMockLuckyDiscountRuleServiceForTest(t)
		service.EXPECT().GetRule(gomock.Any(), ruleID).Return(nil, services.ErrRuleNotFound)

		w := doJSON(newRuleRouter(t, service), http.MethodGet, "/admin/lucky-discount/rules/"+ruleID.String(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		service := mocks.NewMockLuckyDiscountRuleServiceForTest(t)

		w := doJSON(newRuleRouter(t, service), http.MethodGet, "/admin/lucky-discount/rules/seven", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid rule ID format")
	})
}

func TestLuckyDiscountRuleHandler_UpdateRule(t *testing.T) {
	ruleID := uuid.New()

	t.Run("unknown rule", func(t *testing.T) {
		service := mocks.NewMockLuckyDiscountRuleServiceForTest(t)
		service.EXPECT().UpdateRule(gomock.Any(), ruleID, gomock.Any()).Return(nil, services.ErrRuleNotFound)

		w := doJSON(newRuleRouter(t, service), http.MethodPut, "/admin/lucky-discount/rules/"+ruleID.String(), map[string]interface{}{
			"name":          "Sevens",
			"lucky_numbers": []int{7},
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("omitted is_active leaves the status alone", func(t *testing.T) {
		service := mocks.NewMockLuckyDiscountRuleServiceForTest(t)
		service.EXPECT().UpdateRule(gomock.Any(), ruleID, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ uuid.UUID, p params.LuckyDiscountRuleParams) (*business.DiscountRule, error) {
				assert.Nil(t, p.IsActive)
				return &business.DiscountRule{ID: ruleID, Name: p.Name, IsActive: false}, nil
			})

		w := doJSON(newRuleRouter(t, service), http.MethodPut, "/admin/lucky-discount/rules/"+ruleID.String(), map[string]interface{}{
			"name":          "Sevens",
			"lucky_numbers": []int{7},
		})

		require.Equal(t, http.StatusOK, w.Code)
		var rule business.DiscountRule
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rule))
		assert.False(t, rule.IsActive)
	})

	t.Run("explicit is_active is passed on", func(t *testing.T) {
		service := mocks.NewMockLuckyDiscountRuleServiceForTest(t)
		service.EXPECT().UpdateRule(gomock.Any(), ruleID, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ uuid.UUID, p params.LuckyDiscountRuleParams) (*business.DiscountRule, error) {
				require.NotNil(t, p.IsActive)
				assert.True(t, *p.IsActive)
				return &business.DiscountRule{ID: ruleID, IsActive: true}, nil
			})

		w := doJSON(newRuleRouter(t, service), http.MethodPut, "/admin/lucky-discount/rules/"+ruleID.String(), map[string]interface{}{
			"name":          "Sevens",
			"lucky_numbers": []int{7},
			"is_active":     true,
		})

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLuckyDiscountRuleHandler_SetRuleActive(t *testing.T) {
	ruleID := uuid.New()

	t.Run("deactivate", func(t *testing.T) {
		service := mocks.NewMockLuckyDiscountRuleServiceForTest(t)
		service.EXPECT().SetRuleActive(gomock.Any(), ruleID, false).Return(&business.DiscountRule{ID: ruleID}, nil)

		w := doJSON(newRuleRouter(t, service), http.MethodPatch,
			"/admin/lucky-discount/rules/"+ruleID.String()+"/active", map[string]bool{"is_active": false})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing flag", func(t *testing.T) {
		service := mocks.NewMockLuckyDiscountRuleServiceForTest(t)

		w := doJSON(newRuleRouter(t, service), http.MethodPatch,
			"/admin/lucky-discount/rules/"+ruleID.String()+"/active", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLuckyDiscountRuleHandler_DeleteAndList(t *testing.T) {
	ruleID := uuid.New()
	service := mocks.NewMockLuckyDiscountRuleServiceForTest(t)
	gomock.InOrder(
		service.EXPECT().DeleteRule(gomock.Any(), ruleID).Return(nil),
		service.EXPECT().ListRules(gomock.Any()).Return([]business.DiscountRule{}, nil),
	)
	router := newRuleRouter(t, service)

	w := doJSON(router, http.MethodDelete, "/admin/lucky-discount/rules/"+ruleID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Rule deleted"}`, w.Body.String())

	w = doJSON(router, http.MethodGet, "/admin/lucky-discount/rules", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"object":"list","data":[]}`, w.Body.String())
}

func TestLuckyDiscountErrorStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: name is required", services.ErrInvalidRule), http.StatusBadRequest},
		{services.ErrInvalidOrderValue, http.StatusBadRequest},
		{services.ErrClaimNotFound, http.StatusNotFound},
		{services.ErrClaimExpired, http.StatusUnprocessableEntity},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		status, message := luckyDiscountErrorStatus(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
		if tt.status == http.StatusInternalServerError {
			assert.Equal(t, "Internal server error", message)
		} else {
			assert.Equal(t, tt.err.Error(), message)
		}
	}
}
