package middleware

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performValidation(t *testing.T, config ValidationConfig, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var validated map[string]interface{}
	router := gin.New()
	router.POST("/test", ValidateInput(config), func(c *gin.Context) {
		v, exists := c.Get("validatedBody")
		assert.True(t, exists)
		validated, _ = v.(map[string]interface{})
		c.JSON(200, gin.H{"status": "ok"})
	})

	var bodyBytes []byte
	if body != nil {
		var err error
		bodyBytes, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest("POST", "/test", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = int64(len(bodyBytes))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w, validated
}

func errorMessages(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var response ValidationErrors
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	out := make(map[string]string, len(response.Errors))
	for _, e := range response.Errors {
		out[e.Field] = e.Message
	}
	return out
}

func TestValidateInput(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		config         ValidationConfig
		body           interface{}
		expectedStatus int
		expectedErrors map[string]string
	}{
		{
			name:   "valid rule",
			config: CreateLuckyDiscountRuleValidation,
			body: map[string]interface{}{
				"name":               "Evening gold",
				"lucky_numbers":      []int{7, 30},
				"login_window_start": "18:00:00",
				"login_window_end":   "21:00:00",
				"discount_percent":   15,
				"discount_code":      "GOLD15",
				"is_active":          true,
			},
			expectedStatus: 200,
		},
		{
			name:   "rule without window",
			config: CreateLuckyDiscountRuleValidation,
			body: map[string]interface{}{
				"name":               "Any time",
				"lucky_numbers":      []int{0},
				"login_window_start": nil,
				"login_window_end":   nil,
				"discount_percent":   5,
			},
			expectedStatus: 200,
		},
		{
			name:   "missing lucky numbers",
			config: CreateLuckyDiscountRuleValidation,
			body: map[string]interface{}{
				"name":             "Broken",
				"discount_percent": 10,
			},
			expectedStatus: 400,
			expectedErrors: map[string]string{"lucky_numbers": "lucky_numbers is required"},
		},
		{
			name:   "negative lucky number",
			config: CreateLuckyDiscountRuleValidation,
			body: map[string]interface{}{
				"name":             "Broken",
				"lucky_numbers":    []int{3, -1},
				"discount_percent": 10,
			},
			expectedStatus: 400,
			expectedErrors: map[string]string{"lucky_numbers": "item 1 must be at least 0"},
		},
		{
			name:   "fractional lucky number",
			config: CreateLuckyDiscountRuleValidation,
			body: map[string]interface{}{
				"name":             "Broken",
				"lucky_numbers":    []float64{2.5},
				"discount_percent": 10,
			},
			expectedStatus: 400,
			expectedErrors: map[string]string{"lucky_numbers": "item 0 must be a whole number"},
		},
		{
			name:   "percent above 100",
			config: CreateLuckyDiscountRuleValidation,
			body: map[string]interface{}{
				"name":             "Too generous",
				"lucky_numbers":    []int{1},
				"discount_percent": 101,
			},
			expectedStatus: 400,
			expectedErrors: map[string]string{"discount_percent": "must be at most 100"},
		},
		{
			name:   "malformed window",
			config: CreateLuckyDiscountRuleValidation,
			body: map[string]interface{}{
				"name":               "Broken window",
				"lucky_numbers":      []int{1},
				"discount_percent":   10,
				"login_window_start": "9:00",
				"login_window_end":   "24:00:00",
			},
			expectedStatus: 400,
			expectedErrors: map[string]string{
				"login_window_start": "must be a time of day in HH:MM:SS format",
				"login_window_end":   "must be a time of day in HH:MM:SS format",
			},
		},
		{
			name:   "discount code with spaces",
			config: CreateLuckyDiscountRuleValidation,
			body: map[string]interface{}{
				"name":             "Bad code",
				"lucky_numbers":    []int{1},
				"discount_percent": 10,
				"discount_code":    "GOLD 15",
			},
			expectedStatus: 400,
			expectedErrors: map[string]string{"discount_code": "may only contain letters, digits, hyphens and underscores"},
		},
		{
			name:   "unknown field",
			config: ClaimLuckyDiscountValidation,
			body: map[string]interface{}{
				"rule_id":      "3f1c1c8e-7f3c-4a53-9c55-1e1d3f0f0a11",
				"lucky_number": 30,
				"login_time":   "14:07:23",
				"discount":     99,
			},
			expectedStatus: 400,
			expectedErrors: map[string]string{"discount": "unknown field"},
		},
		{
			name:   "valid claim",
			config: ClaimLuckyDiscountValidation,
			body: map[string]interface{}{
				"rule_id":      "3f1c1c8e-7f3c-4a53-9c55-1e1d3f0f0a11",
				"lucky_number": 30,
				"login_time":   "14:07:23",
			},
			expectedStatus: 200,
		},
		{
			name:   "lucky number out of range",
			config: ClaimLuckyDiscountValidation,
			body: map[string]interface{}{
				"rule_id":      "3f1c1c8e-7f3c-4a53-9c55-1e1d3f0f0a11",
				"lucky_number": 120,
				"login_time":   "14:07:23",
			},
			expectedStatus: 400,
			expectedErrors: map[string]string{"lucky_number": "must be at most 119"},
		},
		{
			name:   "invalid rule id",
			config: ClaimLuckyDiscountValidation,
			body: map[string]interface{}{
				"rule_id":      "rule-1",
				"lucky_number": 30,
				"login_time":   "14:07:23",
			},
			expectedStatus: 400,
			expectedErrors: map[string]string{"rule_id": "must be a valid UUID"},
		},
		{
			name:           "empty evaluate body",
			config:         EvaluateLuckyDiscountValidation,
			body:           nil,
			expectedStatus: 200,
		},
		{
			name:           "bad login_at",
			config:         EvaluateLuckyDiscountValidation,
			body:           map[string]interface{}{"login_at": "yesterday"},
			expectedStatus: 400,
			expectedErrors: map[string]string{"login_at": "must be an RFC3339 timestamp"},
		},
		{
			name:           "zero order value",
			config:         ValidateLuckyDiscountCodeValidation,
			body:           map[string]interface{}{"discount_code": "LUCKY30", "order_value_cents": 0},
			expectedStatus: 400,
			expectedErrors: map[string]string{"order_value_cents": "must be at least 1"},
		},
		{
			name:           "toggle requires is_active",
			config:         SetLuckyDiscountRuleActiveValidation,
			body:           map[string]interface{}{},
			expectedStatus: 400,
			expectedErrors: map[string]string{"is_active": "is_active is required"},
		},
		{
			name: "request too large",
			config: ValidationConfig{
				MaxBodySize: 10,
			},
			body:           map[string]interface{}{"data": "This is a much longer string than 10 bytes"},
			expectedStatus: 413,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := performValidation(t, tt.config, tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)

			if len(tt.expectedErrors) > 0 {
				got := errorMessages(t, w)
				for field, msg := range tt.expectedErrors {
					assert.Equal(t, msg, got[field], "field %s", field)
				}
			}
		})
	}
}

func TestValidateInput_KeepsRuleTextVerbatim(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w, validated := performValidation(t, CreateLuckyDiscountRuleValidation, map[string]interface{}{
		"name":             "Rings & Things",
		"description":      `Say "hello" to <b>gold</b>`,
		"lucky_numbers":    []int{7},
		"discount_percent": 10,
	})
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "Rings & Things", validated["name"])
	assert.Equal(t, `Say "hello" to <b>gold</b>`, validated["description"])
}

func TestLuckyDiscountRuleRules_UsePresets(t *testing.T) {
	byField := make(map[string]ValidationRule, len(luckyDiscountRuleRules))
	for _, rule := range luckyDiscountRuleRules {
		byField[rule.Field] = rule
	}

	name := byField["name"]
	assert.True(t, name.Required)
	assert.Equal(t, NameValidation.MaxLength, name.MaxLength)

	description := byField["description"]
	assert.False(t, description.Required)
	assert.Equal(t, DescriptionValidation.MaxLength, description.MaxLength)

	minOrder := byField["min_order_value_cents"]
	assert.False(t, minOrder.Required)
	require.NotNil(t, minOrder.Min)
	assert.Equal(t, 0.0, *minOrder.Min)

	// Binding a preset must not touch the shared value
	assert.Empty(t, NameValidation.Field)
	assert.True(t, AmountValidation.Required)
}

func TestValidateInput_CustomerNameOptional(t *testing.T) {
	gin.SetMode(gin.TestMode)

	claim := map[string]interface{}{
		"rule_id":      "3f1c1c8e-7f3c-4a53-9c55-1e1d3f0f0a11",
		"lucky_number": 30,
		"login_time":   "14:07:23",
	}
	w, _ := performValidation(t, ClaimLuckyDiscountValidation, claim)
	assert.Equal(t, 200, w.Code)

	claim["customer_name"] = strings.Repeat("a", 101)
	w, _ = performValidation(t, ClaimLuckyDiscountValidation, claim)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, errorMessages(t, w), "customer_name")
}

func TestValidateInput_InvalidJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/test", ValidateInput(ClaimLuckyDiscountValidation), func(c *gin.Context) {
		c.Status(200)
	})
	req := httptest.NewRequest("POST", "/test", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}
