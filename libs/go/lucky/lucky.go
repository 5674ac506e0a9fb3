// Package lucky derives lucky numbers from login instants and matches them
// against lucky discount rules.
package lucky

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aurajewels/storefront-api/libs/go/types/business"
)

// ClockLayout is the time-of-day layout used for login times and rule windows.
const ClockLayout = "15:04:05"

// GenerateLuckyNumber returns minute-of-hour plus second-of-minute of t in
// t's own location. The result is always within 0..119.
func GenerateLuckyNumber(t time.Time) int {
	return t.Minute() + t.Second()
}

// ClockTime formats t as HH:MM:SS.
func ClockTime(t time.Time) string {
	return t.Format(ClockLayout)
}

// IsClockTime reports whether s is a well formed HH:MM:SS value.
func IsClockTime(s string) bool {
	if len(s) != len(ClockLayout) {
		return false
	}
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

// WithinWindow reports whether clock lies inside the inclusive [start, end]
// window. Values are compared as HH:MM:SS strings.
func WithinWindow(clock, start, end string) bool {
	return clock >= start && clock <= end
}

// EvaluationInput carries everything a single evaluation needs. Rules are
// evaluated in the given order.
type EvaluationInput struct {
	Authenticated bool
	LuckyNumber   int
	ClockTime     string
	Rules         []business.DiscountRule
}

// Evaluate matches the lucky number against the rules and returns the first
// match. Without an authenticated user or without rules it returns a result
// with an empty message.
func Evaluate(in EvaluationInput) business.EligibilityResult {
	if !in.Authenticated || len(in.Rules) == 0 {
		return business.EligibilityResult{LuckyNumber: in.LuckyNumber}
	}

	minute := clockMinute(in.ClockTime)
	for i := range in.Rules {
		rule := in.Rules[i]
		if rule.HasWindow() && !WithinWindow(in.ClockTime, *rule.LoginWindowStart, *rule.LoginWindowEnd) {
			continue
		}
		if matchesAny(in.LuckyNumber, minute, rule.LuckyNumbers) {
			return business.EligibilityResult{
				IsEligible:  true,
				MatchedRule: &rule,
				LuckyNumber: in.LuckyNumber,
				Message:     WinMessage(in.LuckyNumber, rule.DiscountPercent),
			}
		}
	}

	return business.EligibilityResult{
		LuckyNumber: in.LuckyNumber,
		Message:     TryAgainMessage(in.LuckyNumber),
	}
}

// WinMessage is shown when a rule matched.
func WinMessage(luckyNumber int, discountPercent int32) string {
	return fmt.Sprintf("🎉 Congratulations! Your lucky number %d won you %d%% off!", luckyNumber, discountPercent)
}

// TryAgainMessage is shown when no rule matched.
func TryAgainMessage(luckyNumber int) string {
	return fmt.Sprintf("Your lucky number is %d. No luck this time, try again later!", luckyNumber)
}

// matchesAny applies every predicate to every configured number. Substring and
// divisibility matches are deliberately broad: a configured 1 matches anything.
func matchesAny(generated, minute int, configured []int32) bool {
	generatedStr := strconv.Itoa(generated)
	for _, c := range configured {
		n := int(c)
		switch {
		case n == generated:
			return true
		case n == minute:
			return true
		case strings.Contains(generatedStr, strconv.Itoa(n)):
			return true
		case n != 0 && generated%n == 0:
			return true
		}
	}
	return false
}

// clockMinute extracts MM from HH:MM:SS, or -1 when the clock is malformed.
func clockMinute(clock string) int {
	parts := strings.Split(clock, ":")
	if len(parts) < 2 {
		return -1
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return -1
	}
	return m
}
