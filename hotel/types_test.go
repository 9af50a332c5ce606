package hotel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/royalstay/ledger/hotel"
)

// =============================================================================
// MONEY TESTS
// =============================================================================

func TestMoney_ExactDecimalArithmetic(t *testing.T) {
	// 149.99 x 3 must be exactly 449.97, no float drift.
	rate := hotel.MustParseMoney("149.99")
	assert.Equal(t, "449.97", rate.MulInt(3).String())

	total := hotel.MustParseMoney("449.97").Sub(hotel.MustParseMoney("75.00"))
	assert.Equal(t, "374.97", total.String())
	assert.True(t, total.Equal(hotel.MustParseMoney("374.97")))
}

func TestMoney_MinAndSigns(t *testing.T) {
	a := hotel.MustParseMoney("75.00")
	b := hotel.MustParseMoney("89.994")

	assert.True(t, a.Min(b).Equal(a))
	assert.True(t, b.Min(a).Equal(a))
	assert.True(t, a.Neg().IsNegative())
	assert.True(t, hotel.ZeroMoney().IsZero())
	assert.False(t, hotel.ZeroMoney().IsPositive())
}

func TestMustParseMoney_MalformedYieldsZero(t *testing.T) {
	assert.True(t, hotel.MustParseMoney("not-a-number").IsZero())
}

func TestMoney_StringRendersTwoDecimals(t *testing.T) {
	assert.Equal(t, "100.00", hotel.NewMoneyFromInt(100).String())
	assert.Equal(t, "12.50", hotel.MustParseMoney("12.5").String())
}

// =============================================================================
// DATE TESTS
// =============================================================================

func TestNightsBetween(t *testing.T) {
	in := hotel.NewDate(2026, time.March, 10)

	assert.Equal(t, 3, hotel.NightsBetween(in, in.AddDays(3)))
	assert.Equal(t, 0, hotel.NightsBetween(in, in), "same-day range is zero nights")
	assert.Equal(t, -2, hotel.NightsBetween(in, in.AddDays(-2)))
}

func TestDate_IgnoresTimeOfDay(t *testing.T) {
	// Two timestamps on the same calendar day are the same Date.
	morning := hotel.DateOf(time.Date(2026, time.March, 10, 6, 0, 0, 0, time.UTC))
	evening := hotel.DateOf(time.Date(2026, time.March, 10, 23, 30, 0, 0, time.UTC))

	assert.True(t, morning.Equal(evening))
	assert.Equal(t, 1, hotel.NightsBetween(morning, evening.AddDays(1)))
}

func TestDate_Ordering(t *testing.T) {
	d := hotel.NewDate(2026, time.March, 10)

	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.AddDays(1).After(d))
	assert.False(t, d.After(d))
	assert.Equal(t, "2026-03-10", d.String())
}
