package middleware

import (
	"fmt"
)

// Common validation configurations for the lucky discount endpoints

// luckyDiscountRuleRules are shared by rule create and update
var luckyDiscountRuleRules = []ValidationRule{
	bindField("name", NameValidation),
	bindField("description", DescriptionValidation),
	{
		Field:     "lucky_numbers",
		Type:      "integer_array",
		Required:  true,
		MinLength: 1,
		MaxLength: 50,
		Min:       float64Ptr(0),
	},
	{
		Field:    "login_window_start",
		Type:     "clock",
		Required: false,
	},
	{
		Field:    "login_window_end",
		Type:     "clock",
		Required: false,
	},
	{
		Field:    "discount_percent",
		Type:     "integer",
		Required: true,
		Min:      float64Ptr(0),
		Max:      float64Ptr(100),
	},
	{
		Field:     "discount_code",
		Type:      "string",
		Required:  false,
		MaxLength: 32,
		Custom:    validateDiscountCode,
	},
	bindField("min_order_value_cents", optional(AmountValidation)),
	bindField("max_discount_amount_cents", optional(AmountValidation)),
	{
		Field:    "is_active",
		Type:     "boolean",
		Required: false,
	},
}

// CreateLuckyDiscountRuleValidation validates admin rule creation
var CreateLuckyDiscountRuleValidation = ValidationConfig{
	MaxBodySize:        64 * 1024,
	AllowUnknownFields: false,
	Rules:              luckyDiscountRuleRules,
}

// UpdateLuckyDiscountRuleValidation validates admin rule replacement
var UpdateLuckyDiscountRuleValidation = ValidationConfig{
	MaxBodySize:        64 * 1024,
	AllowUnknownFields: false,
	Rules:              luckyDiscountRuleRules,
}

// SetLuckyDiscountRuleActiveValidation validates the activation toggle
var SetLuckyDiscountRuleActiveValidation = ValidationConfig{
	MaxBodySize:        1024,
	AllowUnknownFields: false,
	Rules: []ValidationRule{
		{
			Field:    "is_active",
			Type:     "boolean",
			Required: true,
		},
	},
}

// EvaluateLuckyDiscountValidation validates an eligibility check
var EvaluateLuckyDiscountValidation = ValidationConfig{
	MaxBodySize:        1024,
	AllowUnknownFields: false,
	Rules: []ValidationRule{
		{
			Field:    "login_at",
			Type:     "timestamp",
			Required: false,
		},
	},
}

// ClaimLuckyDiscountValidation validates a claim request
var ClaimLuckyDiscountValidation = ValidationConfig{
	MaxBodySize:        4 * 1024,
	AllowUnknownFields: false,
	Rules: []ValidationRule{
		bindField("rule_id", IDValidation),
		{
			Field:    "lucky_number",
			Type:     "integer",
			Required: true,
			Min:      float64Ptr(0),
			Max:      float64Ptr(119),
		},
		{
			Field:    "login_time",
			Type:     "clock",
			Required: true,
		},
		bindField("customer_name", optional(NameValidation)),
	},
}

// ValidateLuckyDiscountCodeValidation validates a redemption check
var ValidateLuckyDiscountCodeValidation = ValidationConfig{
	MaxBodySize:        1024,
	AllowUnknownFields: false,
	Rules: []ValidationRule{
		{
			Field:     "discount_code",
			Type:      "string",
			Required:  true,
			MinLength: 1,
			MaxLength: 32,
			Custom:    validateDiscountCode,
		},
		{
			Field:    "order_value_cents",
			Type:     "integer",
			Required: true,
			Min:      float64Ptr(1),
		},
	},
}

func validateDiscountCode(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if str == "" {
		return nil
	}
	if !DiscountCodeRegex.MatchString(str) {
		return fmt.Errorf("may only contain letters, digits, hyphens and underscores")
	}
	return nil
}
