package business

import "time"

// LuckyDiscountEmailData holds the interpolated fields of the lucky discount email.
type LuckyDiscountEmailData struct {
	Email           string
	CustomerName    string
	DiscountCode    string
	DiscountPercent int32
	LuckyNumber     int32
	ExpiresAt       time.Time
}
