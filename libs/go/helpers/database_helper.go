package helpers

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const clockLayout = "15:04:05"

// StringToNullableText converts string to nullable pgtype.Text
func StringToNullableText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// StringPtrToNullableText converts an optional string to pgtype.Text
func StringPtrToNullableText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return StringToNullableText(*s)
}

// NullableTextToStringPtr returns nil for NULL text
func NullableTextToStringPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

// TimeToNullableTimestamptz converts time to nullable pgtype.Timestamptz
func TimeToNullableTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// Int64ToNullableInt8 converts int64 to nullable pgtype.Int8
func Int64ToNullableInt8(i int64) pgtype.Int8 {
	return pgtype.Int8{Int64: i, Valid: true}
}

// Int64PtrToNullableInt8 converts an optional int64 to pgtype.Int8
func Int64PtrToNullableInt8(i *int64) pgtype.Int8 {
	if i == nil {
		return pgtype.Int8{Valid: false}
	}
	return Int64ToNullableInt8(*i)
}

// BoolPtrToNullableBool converts an optional bool to pgtype.Bool
func BoolPtrToNullableBool(b *bool) pgtype.Bool {
	if b == nil {
		return pgtype.Bool{Valid: false}
	}
	return pgtype.Bool{Bool: *b, Valid: true}
}

// NullableInt8ToInt64Ptr returns nil for NULL int8
func NullableInt8ToInt64Ptr(i pgtype.Int8) *int64 {
	if !i.Valid {
		return nil
	}
	v := i.Int64
	return &v
}

// ClockToPgTime converts an HH:MM:SS clock string to a postgres TIME value
func ClockToPgTime(clock string) (pgtype.Time, error) {
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return pgtype.Time{}, fmt.Errorf("invalid clock time %q: %w", clock, err)
	}
	seconds := int64(t.Hour()*3600 + t.Minute()*60 + t.Second())
	return pgtype.Time{Microseconds: seconds * int64(time.Second/time.Microsecond), Valid: true}, nil
}

// ClockPtrToPgTime converts an optional clock string, NULL when absent
func ClockPtrToPgTime(clock *string) (pgtype.Time, error) {
	if clock == nil {
		return pgtype.Time{Valid: false}, nil
	}
	return ClockToPgTime(*clock)
}

// PgTimeToClock formats a postgres TIME as HH:MM:SS; sub-second precision is dropped
func PgTimeToClock(t pgtype.Time) string {
	total := t.Microseconds / int64(time.Second/time.Microsecond)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// PgTimeToClockPtr returns nil for NULL time
func PgTimeToClockPtr(t pgtype.Time) *string {
	if !t.Valid {
		return nil
	}
	s := PgTimeToClock(t)
	return &s
}
