package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockQuerierForTest creates a new mock Querier for testing
func NewMockQuerierForTest(t *testing.T) *MockQuerier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockQuerier(ctrl)
}

// NewMockLuckyDiscountServiceForTest creates a new mock LuckyDiscountService for testing
func NewMockLuckyDiscountServiceForTest(t *testing.T) *MockLuckyDiscountService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockLuckyDiscountService(ctrl)
}

// NewMockLuckyDiscountRuleServiceForTest creates a new mock LuckyDiscountRuleService for testing
func NewMockLuckyDiscountRuleServiceForTest(t *testing.T) *MockLuckyDiscountRuleService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockLuckyDiscountRuleService(ctrl)
}

// NewMockEmailSenderForTest creates a new mock EmailSender for testing
func NewMockEmailSenderForTest(t *testing.T) *MockEmailSender {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockEmailSender(ctrl)
}
