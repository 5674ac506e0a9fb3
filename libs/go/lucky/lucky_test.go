package lucky_test

import (
	"testing"
	"time"

	"github.com/aurajewels/storefront-api/libs/go/lucky"
	"github.com/aurajewels/storefront-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newRule(numbers ...int32) business.DiscountRule {
	return business.DiscountRule{
		ID:              uuid.New(),
		Name:            "Lucky rule",
		LuckyNumbers:    numbers,
		DiscountPercent: 10,
		IsActive:        true,
	}
}

func TestGenerateLuckyNumber(t *testing.T) {
	login := time.Date(2024, 5, 1, 14, 7, 23, 0, time.UTC)

	assert.Equal(t, 30, lucky.GenerateLuckyNumber(login))
	assert.Equal(t, lucky.GenerateLuckyNumber(login), lucky.GenerateLuckyNumber(login))
	assert.Equal(t, "14:07:23", lucky.ClockTime(login))
}

func TestGenerateLuckyNumber_UsesLocalClock(t *testing.T) {
	// India is UTC+05:30, so the minute component shifts by 30.
	ist := time.FixedZone("IST", 5*3600+30*60)
	login := time.Date(2024, 5, 1, 8, 10, 5, 0, time.UTC)

	assert.Equal(t, 15, lucky.GenerateLuckyNumber(login))
	assert.Equal(t, 45, lucky.GenerateLuckyNumber(login.In(ist)))
}

func TestGenerateLuckyNumber_Range(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for m := 0; m < 60; m++ {
		for s := 0; s < 60; s++ {
			n := lucky.GenerateLuckyNumber(base.Add(time.Duration(m)*time.Minute + time.Duration(s)*time.Second))
			require.GreaterOrEqual(t, n, 0)
			require.LessOrEqual(t, n, 119)
			require.Equal(t, m+s, n)
		}
	}
}

func TestIsClockTime(t *testing.T) {
	assert.True(t, lucky.IsClockTime("00:00:00"))
	assert.True(t, lucky.IsClockTime("23:59:59"))
	assert.False(t, lucky.IsClockTime("24:00:00"))
	assert.False(t, lucky.IsClockTime("9:00:00"))
	assert.False(t, lucky.IsClockTime("09:00"))
	assert.False(t, lucky.IsClockTime(""))
}

func TestEvaluate(t *testing.T) {
	windowed := newRule(1)
	windowed.LoginWindowStart = strPtr("10:00:00")
	windowed.LoginWindowEnd = strPtr("12:00:00")

	exact := newRule(30)
	exact.DiscountPercent = 15

	tests := []struct {
		name          string
		authenticated bool
		luckyNumber   int
		clock         string
		rules         []business.DiscountRule
		wantEligible  bool
		wantMessage   string
	}{
		{
			name:          "exact match",
			authenticated: true,
			luckyNumber:   30,
			clock:         "14:07:23",
			rules:         []business.DiscountRule{exact},
			wantEligible:  true,
			wantMessage:   lucky.WinMessage(30, 15),
		},
		{
			name:          "minute of hour match",
			authenticated: true,
			luckyNumber:   95,
			clock:         "10:45:50",
			rules:         []business.DiscountRule{newRule(45)},
			wantEligible:  true,
			wantMessage:   lucky.WinMessage(95, 10),
		},
		{
			name:          "substring match",
			authenticated: true,
			luckyNumber:   31,
			clock:         "10:15:16",
			rules:         []business.DiscountRule{newRule(3)},
			wantEligible:  true,
			wantMessage:   lucky.WinMessage(31, 10),
		},
		{
			name:          "divisibility match",
			authenticated: true,
			luckyNumber:   48,
			clock:         "10:20:28",
			rules:         []business.DiscountRule{newRule(6)},
			wantEligible:  true,
			wantMessage:   lucky.WinMessage(48, 10),
		},
		{
			name:          "divisibility by one matches everything",
			authenticated: true,
			luckyNumber:   47,
			clock:         "10:20:27",
			rules:         []business.DiscountRule{newRule(1)},
			wantEligible:  true,
			wantMessage:   lucky.WinMessage(47, 10),
		},
		{
			name:          "zero is skipped for divisibility",
			authenticated: true,
			luckyNumber:   31,
			clock:         "10:15:16",
			rules:         []business.DiscountRule{newRule(0)},
			wantEligible:  false,
			wantMessage:   lucky.TryAgainMessage(31),
		},
		{
			name:          "no predicate matches",
			authenticated: true,
			luckyNumber:   30,
			clock:         "14:07:23",
			rules:         []business.DiscountRule{newRule(11)},
			wantEligible:  false,
			wantMessage:   lucky.TryAgainMessage(30),
		},
		{
			name:          "after window end",
			authenticated: true,
			luckyNumber:   1,
			clock:         "12:00:01",
			rules:         []business.DiscountRule{windowed},
			wantEligible:  false,
			wantMessage:   lucky.TryAgainMessage(1),
		},
		{
			name:          "before window start",
			authenticated: true,
			luckyNumber:   118,
			clock:         "09:59:59",
			rules:         []business.DiscountRule{windowed},
			wantEligible:  false,
			wantMessage:   lucky.TryAgainMessage(118),
		},
		{
			name:          "window end is inclusive",
			authenticated: true,
			luckyNumber:   0,
			clock:         "12:00:00",
			rules:         []business.DiscountRule{windowed},
			wantEligible:  true,
			wantMessage:   lucky.WinMessage(0, 10),
		},
		{
			name:          "window start is inclusive",
			authenticated: true,
			luckyNumber:   0,
			clock:         "10:00:00",
			rules:         []business.DiscountRule{windowed},
			wantEligible:  true,
			wantMessage:   lucky.WinMessage(0, 10),
		},
		{
			name:          "no rules",
			authenticated: true,
			luckyNumber:   30,
			clock:         "14:07:23",
			rules:         nil,
			wantEligible:  false,
			wantMessage:   "",
		},
		{
			name:          "not authenticated",
			authenticated: false,
			luckyNumber:   30,
			clock:         "14:07:23",
			rules:         []business.DiscountRule{exact},
			wantEligible:  false,
			wantMessage:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := lucky.Evaluate(lucky.EvaluationInput{
				Authenticated: tt.authenticated,
				LuckyNumber:   tt.luckyNumber,
				ClockTime:     tt.clock,
				Rules:         tt.rules,
			})

			assert.Equal(t, tt.wantEligible, result.IsEligible)
			assert.Equal(t, tt.wantEligible, result.MatchedRule != nil)
			assert.Equal(t, tt.luckyNumber, result.LuckyNumber)
			assert.Equal(t, tt.wantMessage, result.Message)
		})
	}
}

func TestEvaluate_ExactMatchCarriesRule(t *testing.T) {
	rule := newRule(30)
	rule.DiscountPercent = 15

	result := lucky.Evaluate(lucky.EvaluationInput{
		Authenticated: true,
		LuckyNumber:   30,
		ClockTime:     "14:07:23",
		Rules:         []business.DiscountRule{rule},
	})

	require.True(t, result.IsEligible)
	require.NotNil(t, result.MatchedRule)
	assert.Equal(t, rule.ID, result.MatchedRule.ID)
	assert.Equal(t, int32(15), result.MatchedRule.DiscountPercent)
}

func TestEvaluate_FirstMatchWins(t *testing.T) {
	first := newRule(30)
	second := newRule(30)
	second.DiscountPercent = 50

	for i := 0; i < 20; i++ {
		result := lucky.Evaluate(lucky.EvaluationInput{
			Authenticated: true,
			LuckyNumber:   30,
			ClockTime:     "14:07:23",
			Rules:         []business.DiscountRule{first, second},
		})
		require.NotNil(t, result.MatchedRule)
		assert.Equal(t, first.ID, result.MatchedRule.ID)
	}
}

func TestEvaluate_SkipsWindowedRuleAndFallsThrough(t *testing.T) {
	windowed := newRule(30)
	windowed.LoginWindowStart = strPtr("20:00:00")
	windowed.LoginWindowEnd = strPtr("21:00:00")
	open := newRule(30)

	result := lucky.Evaluate(lucky.EvaluationInput{
		Authenticated: true,
		LuckyNumber:   30,
		ClockTime:     "14:07:23",
		Rules:         []business.DiscountRule{windowed, open},
	})

	require.True(t, result.IsEligible)
	assert.Equal(t, open.ID, result.MatchedRule.ID)
}

func TestEvaluate_HalfWindowIsIgnored(t *testing.T) {
	rule := newRule(30)
	rule.LoginWindowStart = strPtr("20:00:00")

	result := lucky.Evaluate(lucky.EvaluationInput{
		Authenticated: true,
		LuckyNumber:   30,
		ClockTime:     "14:07:23",
		Rules:         []business.DiscountRule{rule},
	})

	assert.True(t, result.IsEligible)
}

func TestEvaluate_EligibilityMatchesRulePresence(t *testing.T) {
	rules := []business.DiscountRule{newRule(97), newRule(113)}
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	for offset := 0; offset < 3600; offset += 7 {
		login := base.Add(time.Duration(offset) * time.Second)
		result := lucky.Evaluate(lucky.EvaluationInput{
			Authenticated: true,
			LuckyNumber:   lucky.GenerateLuckyNumber(login),
			ClockTime:     lucky.ClockTime(login),
			Rules:         rules,
		})
		require.Equal(t, result.IsEligible, result.MatchedRule != nil)
		require.NotEmpty(t, result.Message)
	}
}

func TestWithinWindow(t *testing.T) {
	assert.True(t, lucky.WithinWindow("10:00:00", "10:00:00", "12:00:00"))
	assert.True(t, lucky.WithinWindow("11:30:00", "10:00:00", "12:00:00"))
	assert.True(t, lucky.WithinWindow("12:00:00", "10:00:00", "12:00:00"))
	assert.False(t, lucky.WithinWindow("12:00:01", "10:00:00", "12:00:00"))
	assert.False(t, lucky.WithinWindow("09:59:59", "10:00:00", "12:00:00"))
}

func TestDiscountRule_ClaimCode(t *testing.T) {
	rule := newRule(7)
	assert.Equal(t, "LUCKY42", rule.ClaimCode(42))

	rule.DiscountCode = strPtr("GOLD15")
	assert.Equal(t, "GOLD15", rule.ClaimCode(42))

	rule.DiscountCode = strPtr("")
	assert.Equal(t, "LUCKY42", rule.ClaimCode(42))
}
