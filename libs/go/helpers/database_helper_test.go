package helpers

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockToPgTime(t *testing.T) {
	pt, err := ClockToPgTime("14:07:23")
	require.NoError(t, err)
	assert.True(t, pt.Valid)
	assert.Equal(t, int64((14*3600+7*60+23)*1_000_000), pt.Microseconds)
	assert.Equal(t, "14:07:23", PgTimeToClock(pt))

	_, err = ClockToPgTime("25:00:00")
	assert.Error(t, err)
}

func TestClockPtrToPgTime(t *testing.T) {
	pt, err := ClockPtrToPgTime(nil)
	require.NoError(t, err)
	assert.False(t, pt.Valid)
	assert.Nil(t, PgTimeToClockPtr(pt))

	clock := "00:00:00"
	pt, err = ClockPtrToPgTime(&clock)
	require.NoError(t, err)
	require.NotNil(t, PgTimeToClockPtr(pt))
	assert.Equal(t, "00:00:00", *PgTimeToClockPtr(pt))
}

func TestNullableConversions(t *testing.T) {
	assert.False(t, StringToNullableText("").Valid)
	assert.Nil(t, NullableTextToStringPtr(pgtype.Text{}))
	s := "GOLD15"
	assert.Equal(t, "GOLD15", *NullableTextToStringPtr(StringPtrToNullableText(&s)))

	assert.Nil(t, NullableInt8ToInt64Ptr(Int64PtrToNullableInt8(nil)))
	v := int64(5000)
	assert.Equal(t, int64(5000), *NullableInt8ToInt64Ptr(Int64PtrToNullableInt8(&v)))

	assert.False(t, BoolPtrToNullableBool(nil).Valid)
	off := false
	assert.Equal(t, pgtype.Bool{Bool: false, Valid: true}, BoolPtrToNullableBool(&off))
}
