package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"fmt"
	"math"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aurajewels/storefront-api/libs/go/logger"
)

// ValidationRule defines a single validation rule
type ValidationRule struct {
	Field         string                  // Field name to validate
	Required      bool                    // Whether the field is required
	Type          string                  // Expected type: string, number, integer, integer_array, boolean, uuid, email, clock, timestamp
	MinLength     int                     // Minimum length for strings
	MaxLength     int                     // Maximum length for strings
	Pattern       string                  // Regex pattern for validation
	Min           *float64                // Minimum value for numbers
	Max           *float64                // Maximum value for numbers
	AllowedValues []string                // List of allowed values
	Custom        func(interface{}) error // Custom validation function
}

// ValidationConfig holds validation rules for an endpoint
type ValidationConfig struct {
	Rules              []ValidationRule
	MaxBodySize        int64 // Maximum request body size in bytes
	AllowUnknownFields bool  // Whether to allow fields not in rules
}

// Common regex patterns
var (
	EmailRegex        = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	DiscountCodeRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	ClockRegex        = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9]$`)
)

// Validation errors
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// ValidateInput creates a validation middleware with the given configuration
func ValidateInput(config ValidationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Check request size
		if config.MaxBodySize > 0 && c.Request.ContentLength > config.MaxBodySize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("Request body too large. Maximum size: %d bytes", config.MaxBodySize),
			})
			c.Abort()
			return
		}

		// Parse request body; an empty body validates as an empty object
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unable to read request body",
			})
			c.Abort()
			return
		}
		body := map[string]interface{}{}
		if len(bytes.TrimSpace(raw)) > 0 {
			if err := json.Unmarshal(raw, &body); err != nil || body == nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": "Invalid JSON in request body",
				})
				c.Abort()
				return
			}
		}

		// Validate fields
		errors := validateFields(body, config.Rules, config.AllowUnknownFields)
		if len(errors) > 0 {
			c.JSON(http.StatusBadRequest, ValidationErrors{Errors: errors})
			c.Abort()
			return
		}

		// Store validated body back to context for handler use
		bodyBytes, _ := json.Marshal(body)
		c.Set("validatedBody", body)
		c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

		c.Next()
	}
}

// validateFields validates the fields according to the rules
func validateFields(data map[string]interface{}, rules []ValidationRule, allowUnknown bool) []ValidationError {
	var errors []ValidationError
	validatedFields := make(map[string]bool)

	// Check each rule
	for _, rule := range rules {
		validatedFields[rule.Field] = true
		value, exists := data[rule.Field]

		// Check required fields
		if rule.Required && (!exists || value == nil || value == "") {
			errors = append(errors, ValidationError{
				Field:   rule.Field,
				Message: fmt.Sprintf("%s is required", rule.Field),
			})
			continue
		}

		// Skip validation if field doesn't exist and not required
		if !exists || value == nil {
			continue
		}

		// Validate based on type
		switch rule.Type {
		case "string":
			if err := validateString(value, rule); err != nil {
				errors = append(errors, ValidationError{
					Field:   rule.Field,
					Message: err.Error(),
				})
			}

		case "number", "float":
			if err := validateNumber(value, rule); err != nil {
				errors = append(errors, ValidationError{
					Field:   rule.Field,
					Message: err.Error(),
				})
			}

		case "integer", "int":
			if err := validateInteger(value, rule); err != nil {
				errors = append(errors, ValidationError{
					Field:   rule.Field,
					Message: err.Error(),
				})
			}

		case "integer_array":
			if err := validateIntegerArray(value, rule); err != nil {
				errors = append(errors, ValidationError{
					Field:   rule.Field,
					Message: err.Error(),
				})
			}

		case "clock":
			if err := validateClock(value); err != nil {
				errors = append(errors, ValidationError{
					Field:   rule.Field,
					Message: err.Error(),
				})
			}

		case "timestamp":
			if err := validateTimestamp(value); err != nil {
				errors = append(errors, ValidationError{
					Field:   rule.Field,
					Message: err.Error(),
				})
			}

		case "boolean", "bool":
			if _, ok := value.(bool); !ok {
				errors = append(errors, ValidationError{
					Field:   rule.Field,
					Message: "must be a boolean",
				})
			}

		case "uuid":
			if err := validateUUID(value); err != nil {
				errors = append(errors, ValidationError{
					Field:   rule.Field,
					Message: err.Error(),
				})
			}

		case "email":
			if err := validateEmail(value); err != nil {
				errors = append(errors, ValidationError{
					Field:   rule.Field,
					Message: err.Error(),
				})
			}

		case "array":
			if _, ok := value.([]interface{}); !ok {
				errors = append(errors, ValidationError{
					Field:   rule.Field,
					Message: "must be an array",
				})
			}

		case "object":
			if _, ok := value.(map[string]interface{}); !ok {
				errors = append(errors, ValidationError{
					Field:   rule.Field,
					Message: "must be an object",
				})
			}
		}

		// Custom validation
		if rule.Custom != nil {
			if err := rule.Custom(value); err != nil {
				errors = append(errors, ValidationError{
					Field:   rule.Field,
					Message: err.Error(),
				})
			}
		}
	}

	// Check for unknown fields
	if !allowUnknown {
		for field := range data {
			if !validatedFields[field] {
				errors = append(errors, ValidationError{
					Field:   field,
					Message: "unknown field",
				})
			}
		}
	}

	return errors
}

// String validation
func validateString(value interface{}, rule ValidationRule) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}

	// Check length
	length := utf8.RuneCountInString(str)
	if rule.MinLength > 0 && length < rule.MinLength {
		return fmt.Errorf("must be at least %d characters long", rule.MinLength)
	}
	if rule.MaxLength > 0 && length > rule.MaxLength {
		return fmt.Errorf("must be at most %d characters long", rule.MaxLength)
	}

	// Check pattern
	if rule.Pattern != "" {
		regex, err := regexp.Compile(rule.Pattern)
		if err != nil {
			logger.Log.Error("Invalid regex pattern", zap.String("pattern", rule.Pattern), zap.Error(err))
			return fmt.Errorf("invalid validation pattern")
		}
		if !regex.MatchString(str) {
			return fmt.Errorf("invalid format")
		}
	}

	// Check allowed values
	if len(rule.AllowedValues) > 0 {
		allowed := false
		for _, v := range rule.AllowedValues {
			if str == v {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("must be one of: %s", strings.Join(rule.AllowedValues, ", "))
		}
	}

	return nil
}

// Number validation
func validateNumber(value interface{}, rule ValidationRule) error {
	var num float64
	switch v := value.(type) {
	case float64:
		num = v
	case int:
		num = float64(v)
	case int64:
		num = float64(v)
	default:
		return fmt.Errorf("must be a number")
	}

	if rule.Min != nil && num < *rule.Min {
		return fmt.Errorf("must be at least %v", *rule.Min)
	}
	if rule.Max != nil && num > *rule.Max {
		return fmt.Errorf("must be at most %v", *rule.Max)
	}

	return nil
}

// UUID validation
func validateUUID(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}

	if _, err := uuid.Parse(str); err != nil {
		return fmt.Errorf("must be a valid UUID")
	}

	return nil
}

// Email validation
func validateEmail(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}

	if !EmailRegex.MatchString(str) {
		return fmt.Errorf("must be a valid email address")
	}

	return nil
}

// Integer validation
func validateInteger(value interface{}, rule ValidationRule) error {
	if err := validateNumber(value, rule); err != nil {
		return err
	}
	if f, ok := value.(float64); ok && f != math.Trunc(f) {
		return fmt.Errorf("must be a whole number")
	}
	return nil
}

// Integer array validation; Min and Max apply to every element
func validateIntegerArray(value interface{}, rule ValidationRule) error {
	items, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("must be an array of whole numbers")
	}
	if rule.MinLength > 0 && len(items) < rule.MinLength {
		return fmt.Errorf("must contain at least %d items", rule.MinLength)
	}
	if rule.MaxLength > 0 && len(items) > rule.MaxLength {
		return fmt.Errorf("must contain at most %d items", rule.MaxLength)
	}
	for i, item := range items {
		if err := validateInteger(item, rule); err != nil {
			return fmt.Errorf("item %d %s", i, err.Error())
		}
	}
	return nil
}

// Time-of-day validation (HH:MM:SS)
func validateClock(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if !ClockRegex.MatchString(str) {
		return fmt.Errorf("must be a time of day in HH:MM:SS format")
	}
	return nil
}

// RFC3339 timestamp validation
func validateTimestamp(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if _, err := time.Parse(time.RFC3339, str); err != nil {
		return fmt.Errorf("must be an RFC3339 timestamp")
	}
	return nil
}

// Common validation configurations. Bind them with bindField before use.
// Strings are stored as sent; HTML escaping happens where they are rendered.
var (
	// IDValidation for UUID parameters
	IDValidation = ValidationRule{
		Type:     "uuid",
		Required: true,
	}

	// NameValidation for display names
	NameValidation = ValidationRule{
		Type:      "string",
		Required:  true,
		MinLength: 1,
		MaxLength: 100,
	}

	// DescriptionValidation for description fields
	DescriptionValidation = ValidationRule{
		Type:      "string",
		Required:  false,
		MaxLength: 1000,
	}

	// AmountValidation for monetary amounts in cents
	AmountValidation = ValidationRule{
		Type:     "integer",
		Required: true,
		Min:      float64Ptr(0),
	}
)

// bindField returns a copy of rule bound to name
func bindField(name string, rule ValidationRule) ValidationRule {
	rule.Field = name
	return rule
}

// optional returns a copy of rule that may be omitted or left empty
func optional(rule ValidationRule) ValidationRule {
	rule.Required = false
	rule.MinLength = 0
	return rule
}

// Helper function to create float64 pointer
func float64Ptr(f float64) *float64 {
	return &f
}
