package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/aurajewels/storefront-api/libs/go/logger"
	"github.com/aurajewels/storefront-api/libs/go/mocks"
	"github.com/aurajewels/storefront-api/libs/go/services"
	"github.com/aurajewels/storefront-api/libs/go/types/business"
)

func init() {
	logger.InitLogger("test")
}

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestEmailService_SendLuckyDiscountEmail(t *testing.T) {
	expiresAt := time.Date(2026, 3, 15, 4, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		data        business.LuckyDiscountEmailData
		setupMocks  func(sender *mocks.MockEmailSender)
		wantID      string
		wantErr     bool
		errorString string
	}{
		{
			name: "sends code with customer name and local expiry",
			data: business.LuckyDiscountEmailData{
				Email:           "priya@example.com",
				CustomerName:    "Priya",
				DiscountCode:    "LUCKY7",
				DiscountPercent: 15,
				LuckyNumber:     7,
				ExpiresAt:       expiresAt,
			},
			setupMocks: func(sender *mocks.MockEmailSender) {
				sender.EXPECT().Send(gomock.Any()).DoAndReturn(func(req *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
					assert.Equal(t, []string{"priya@example.com"}, req.To)
					assert.Equal(t, "Aura Jewels <offers@aurajewels.test>", req.From)
					assert.Equal(t, "Your lucky number 7 unlocked 15% off", req.Subject)
					assert.Contains(t, req.Html, "Hi Priya,")
					assert.Contains(t, req.Html, "LUCKY7")
					assert.Contains(t, req.Text, "Discount code: LUCKY7")
					assert.Contains(t, req.Text, "Sunday, March 15, 2026 at 10:00 AM IST")
					assert.NotEmpty(t, req.Headers["X-Entity-Ref-ID"])
					assert.Contains(t, req.Tags, resend.Tag{Name: "category", Value: "lucky_discount"})
					assert.Contains(t, req.Tags, resend.Tag{Name: "discount_percent", Value: "15"})
					return &resend.SendEmailResponse{Id: "email_123"}, nil
				})
			},
			wantID: "email_123",
		},
		{
			name: "greets anonymous customers generically",
			data: business.LuckyDiscountEmailData{
				Email:           "guest@example.com",
				DiscountCode:    "LUCKY42",
				DiscountPercent: 10,
				LuckyNumber:     42,
				ExpiresAt:       expiresAt,
			},
			setupMocks: func(sender *mocks.MockEmailSender) {
				sender.EXPECT().Send(gomock.Any()).DoAndReturn(func(req *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
					assert.Contains(t, req.Text, "Hi there,")
					return &resend.SendEmailResponse{Id: "email_456"}, nil
				})
			},
			wantID: "email_456",
		},
		{
			name:        "rejects missing recipient",
			data:        business.LuckyDiscountEmailData{DiscountCode: "LUCKY7"},
			setupMocks:  func(sender *mocks.MockEmailSender) {},
			wantErr:     true,
			errorString: "recipient email is required",
		},
		{
			name: "wraps provider failure",
			data: business.LuckyDiscountEmailData{Email: "priya@example.com", DiscountCode: "LUCKY7"},
			setupMocks: func(sender *mocks.MockEmailSender) {
				sender.EXPECT().Send(gomock.Any()).Return(nil, errors.New("rate limited"))
			},
			wantErr:     true,
			errorString: "failed to send email: rate limited",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := mocks.NewMockEmailSenderForTest(t)
			tt.setupMocks(sender)
			service := services.NewEmailServiceWithSender(sender, "offers@aurajewels.test", "Aura Jewels", mustLocation(t, "Asia/Kolkata"), zap.NewNop())

			id, err := service.SendLuckyDiscountEmail(context.Background(), tt.data)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorString)
				assert.Empty(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestEmailService_Disabled(t *testing.T) {
	service := services.NewEmailService("", "offers@aurajewels.test", "Aura Jewels", nil, zap.NewNop())
	assert.False(t, service.Enabled())

	_, err := service.SendLuckyDiscountEmail(context.Background(), business.LuckyDiscountEmailData{
		Email:        "priya@example.com",
		DiscountCode: "LUCKY7",
	})
	assert.ErrorIs(t, err, services.ErrEmailDisabled)
}

func TestEmailService_SendLuckyDiscountEmail_Delivery(t *testing.T) {
	data := business.LuckyDiscountEmailData{
		Email:           "priya@example.com",
		DiscountCode:    "LUCKY7",
		DiscountPercent: 10,
		LuckyNumber:     7,
		ExpiresAt:       time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("bare from address without a display name", func(t *testing.T) {
		sender := mocks.NewMockEmailSenderForTest(t)
		sender.EXPECT().Send(gomock.Any()).DoAndReturn(func(req *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
			assert.Equal(t, "offers@aurajewels.test", req.From)
			assert.Equal(t, []resend.Tag{
				{Name: "category", Value: "lucky_discount"},
				{Name: "discount_percent", Value: "10"},
			}, req.Tags)
			return &resend.SendEmailResponse{Id: "email_789"}, nil
		})
		service := services.NewEmailServiceWithSender(sender, "offers@aurajewels.test", "", nil, nil)

		id, err := service.SendLuckyDiscountEmail(context.Background(), data)
		require.NoError(t, err)
		assert.Equal(t, "email_789", id)
	})

	t.Run("honours cancelled context", func(t *testing.T) {
		sender := mocks.NewMockEmailSenderForTest(t)
		service := services.NewEmailServiceWithSender(sender, "offers@aurajewels.test", "", nil, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := service.SendLuckyDiscountEmail(ctx, data)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
