package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	texttemplate "text/template"
	"time"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/aurajewels/storefront-api/libs/go/types/business"
)

// ErrEmailDisabled is returned when no Resend API key was configured.
var ErrEmailDisabled = errors.New("email delivery is not configured")

// ExpiryLayout renders claim expiry in the lucky discount email.
const ExpiryLayout = "Monday, January 2, 2006 at 3:04 PM MST"

const defaultCustomerName = "there"

// EmailSender is the part of the Resend client the service depends on.
type EmailSender interface {
	Send(req *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type EmailService struct {
	sender    EmailSender
	logger    *zap.Logger
	fromEmail string
	fromName  string
	location  *time.Location
}

// NewEmailService builds a Resend-backed sender. An empty apiKey yields a
// service that refuses to send with ErrEmailDisabled.
func NewEmailService(apiKey string, fromEmail string, fromName string, location *time.Location, logger *zap.Logger) *EmailService {
	var sender EmailSender
	if apiKey != "" {
		sender = resend.NewClient(apiKey).Emails
	}
	return NewEmailServiceWithSender(sender, fromEmail, fromName, location, logger)
}

// NewEmailServiceWithSender builds the service around an existing sender.
func NewEmailServiceWithSender(sender EmailSender, fromEmail string, fromName string, location *time.Location, logger *zap.Logger) *EmailService {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailService{
		sender:    sender,
		logger:    logger,
		fromEmail: fromEmail,
		fromName:  fromName,
		location:  location,
	}
}

// Enabled reports whether the service can deliver mail.
func (s *EmailService) Enabled() bool {
	return s.sender != nil
}

// luckyDiscountView is what the lucky discount templates render.
type luckyDiscountView struct {
	CustomerName    string
	DiscountCode    string
	DiscountPercent int32
	LuckyNumber     int32
	ExpiresAt       string
}

// SendLuckyDiscountEmail delivers the discount code of a fresh claim. It returns
// the Resend message id.
func (s *EmailService) SendLuckyDiscountEmail(ctx context.Context, data business.LuckyDiscountEmailData) (string, error) {
	if data.Email == "" {
		return "", fmt.Errorf("recipient email is required")
	}

	view := luckyDiscountView{
		CustomerName:    data.CustomerName,
		DiscountCode:    data.DiscountCode,
		DiscountPercent: data.DiscountPercent,
		LuckyNumber:     data.LuckyNumber,
		ExpiresAt:       data.ExpiresAt.In(s.location).Format(ExpiryLayout),
	}
	if view.CustomerName == "" {
		view.CustomerName = defaultCustomerName
	}

	var htmlBody bytes.Buffer
	if err := luckyDiscountHTML.Execute(&htmlBody, view); err != nil {
		return "", fmt.Errorf("failed to render HTML template: %w", err)
	}
	var textBody bytes.Buffer
	if err := luckyDiscountText.Execute(&textBody, view); err != nil {
		return "", fmt.Errorf("failed to render text template: %w", err)
	}

	return s.send(ctx, &resend.SendEmailRequest{
		From:    s.from(),
		To:      []string{data.Email},
		Subject: fmt.Sprintf("Your lucky number %d unlocked %d%% off", data.LuckyNumber, data.DiscountPercent),
		Html:    htmlBody.String(),
		Text:    textBody.String(),
		Headers: map[string]string{
			"X-Entity-Ref-ID": uuid.New().String(),
		},
		Tags: []resend.Tag{
			{Name: "category", Value: "lucky_discount"},
			{Name: "discount_percent", Value: strconv.Itoa(int(data.DiscountPercent))},
		},
	})
}

func (s *EmailService) send(ctx context.Context, req *resend.SendEmailRequest) (string, error) {
	if s.sender == nil {
		s.logger.Warn("email delivery disabled, dropping message",
			zap.Strings("to", req.To),
			zap.String("subject", req.Subject))
		return "", ErrEmailDisabled
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sent, err := s.sender.Send(req)
	if err != nil {
		s.logger.Error("failed to send email",
			zap.Error(err),
			zap.Strings("to", req.To),
			zap.String("subject", req.Subject))
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("email sent successfully",
		zap.String("email_id", sent.Id),
		zap.Strings("to", req.To),
		zap.String("subject", req.Subject))

	return sent.Id, nil
}

func (s *EmailService) from() string {
	if s.fromName == "" {
		return s.fromEmail
	}
	return fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
}

var luckyDiscountHTML = template.Must(template.New("lucky_discount_html").Parse(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Georgia, serif; line-height: 1.6; color: #2d2a26; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #1f1b16; color: #e8c872; padding: 24px; text-align: center; }
        .content { padding: 20px; }
        .code { font-size: 28px; letter-spacing: 4px; font-weight: bold; text-align: center; border: 2px dashed #c9a227; padding: 16px; margin: 16px 0; }
        .expiry { background-color: #fff8e1; border: 1px solid #e8c872; padding: 10px; margin: 10px 0; }
        .footer { text-align: center; padding: 20px; font-size: 12px; color: #777; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h2>Your lucky number is {{.LuckyNumber}}!</h2>
        </div>
        <div class="content">
            <p>Hi {{.CustomerName}},</p>
            <p>Your login landed on a lucky number and won you <strong>{{.DiscountPercent}}% off</strong> your next order.</p>
            <div class="code">{{.DiscountCode}}</div>
            <div class="expiry">
                <p>Use this code at checkout before <strong>{{.ExpiresAt}}</strong>.</p>
            </div>
            <p>Happy shopping!</p>
        </div>
        <div class="footer">
            <p>You received this email because you claimed a lucky discount.</p>
        </div>
    </div>
</body>
</html>`))

var luckyDiscountText = texttemplate.Must(texttemplate.New("lucky_discount_text").Parse(`Hi {{.CustomerName}},

Your lucky number {{.LuckyNumber}} won you {{.DiscountPercent}}% off your next order.

Discount code: {{.DiscountCode}}

Use this code at checkout before {{.ExpiresAt}}.

Happy shopping!
`))
