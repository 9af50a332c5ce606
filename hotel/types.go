/*
Package hotel provides the core booking and invoicing engine for the
Royal Stay ledger.

PURPOSE:
  This package contains the entity types and rules that must stay
  consistent under mutation: bookings against rooms, accrued service
  charges, loyalty discounts, and the invoices derived from all of them.
  The Ledger is the single orchestrator with authority to mutate the
  entity graph.

KEY CONCEPTS IN THIS FILE (types.go):
  - Money: A currency amount backed by decimal.Decimal
  - Date: A day-granularity point in time (stays are counted in nights)
  - Guest/Room/Booking IDs: Type-safe identifiers

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal to avoid floating-point errors
  2. Type Safety: Strong typing for IDs prevents mixing guest/room/booking IDs
  3. Identity over ownership: Bookings reference rooms and guests by ID;
     the Ledger owns the entity graph and resolves references
  4. Derived values: An invoice is always recomputed in full from its
     inputs, never incrementally patched

USAGE:
  rate := hotel.MustParseMoney("149.99")
  in := hotel.NewDate(2026, time.March, 10)
  out := in.AddDays(3)
  nights := hotel.NightsBetween(in, out) // 3

SEE ALSO:
  - ledger.go: The orchestrator owning the entity graph
  - invoice.go: Recompute algorithm
  - errors.go: Failure taxonomy
*/
package hotel

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Currency amount
// =============================================================================

type Money struct {
	Value decimal.Decimal
}

func NewMoney(value float64) Money {
	return Money{Value: decimal.NewFromFloat(value)}
}

func NewMoneyFromInt(value int) Money {
	return Money{Value: decimal.NewFromInt(int64(value))}
}

// MustParseMoney parses an exact decimal literal like "12.50".
// Returns zero on malformed input.
func MustParseMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{Value: decimal.Zero}
	}
	return Money{Value: d}
}

func ZeroMoney() Money { return Money{Value: decimal.Zero} }

func (m Money) Add(b Money) Money           { return Money{Value: m.Value.Add(b.Value)} }
func (m Money) Sub(b Money) Money           { return Money{Value: m.Value.Sub(b.Value)} }
func (m Money) Neg() Money                  { return Money{Value: m.Value.Neg()} }
func (m Money) Mul(s decimal.Decimal) Money { return Money{Value: m.Value.Mul(s)} }
func (m Money) MulInt(n int) Money {
	return Money{Value: m.Value.Mul(decimal.NewFromInt(int64(n)))}
}
func (m Money) IsZero() bool             { return m.Value.IsZero() }
func (m Money) IsNegative() bool         { return m.Value.IsNegative() }
func (m Money) IsPositive() bool         { return m.Value.IsPositive() }
func (m Money) Equal(b Money) bool       { return m.Value.Equal(b.Value) }
func (m Money) GreaterThan(b Money) bool { return m.Value.GreaterThan(b.Value) }
func (m Money) LessThan(b Money) bool    { return m.Value.LessThan(b.Value) }
func (m Money) String() string           { return m.Value.StringFixed(2) }

func (m Money) Min(b Money) Money {
	if m.LessThan(b) {
		return m
	}
	return b
}

// =============================================================================
// IDENTIFIERS
// =============================================================================

type GuestID string
type RoomID string
type BookingID string
type FeedbackID string

// =============================================================================
// DATE - Day-granularity time point (stays are whole-day ranges)
// =============================================================================

type Date struct {
	Time time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func Today() Date { return DateOf(time.Now()) }

func (d Date) Before(other Date) bool { return d.normalize().Before(other.normalize()) }
func (d Date) After(other Date) bool  { return d.normalize().After(other.normalize()) }
func (d Date) Equal(other Date) bool  { return d.normalize().Equal(other.normalize()) }
func (d Date) IsZero() bool           { return d.Time.IsZero() }

func (d Date) AddDays(n int) Date { return Date{Time: d.Time.AddDate(0, 0, n)} }

func (d Date) normalize() time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string { return d.Time.Format("2006-01-02") }

// NightsBetween counts whole days between two dates. A same-day range is
// zero nights.
func NightsBetween(from, to Date) int {
	return int(to.normalize().Sub(from.normalize()).Hours() / 24)
}
