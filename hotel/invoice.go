/*
invoice.go - Derived, recomputable invoice breakdown

PURPOSE:
  An Invoice is a pure function of its booking's room rate, stay length,
  service charges, and the guest's loyalty balance at recompute time.
  Every recompute re-derives the full line-item list from scratch; the
  invoice is never incrementally patched.

ALGORITHM (per recompute):
  1. Clear line items.
  2. Room line: "Room <id> (<n> nights)" at nights x nightly rate.
     A same-day range yields a 0.00 line, not a rejection.
  3. One line per service charge, insertion order, fixed price.
  4. total = sum of amounts so far.
  5. If the guest holds points > 0:
       discount = min(points x 0.10, total x 0.20)
     When discount > 0, append a negative "Loyalty Discount" line and
     subtract it from the total.

INVARIANTS:
  - total == sum(lineItems.amount), exactly, after every recompute.
  - Recompute is idempotent given unchanged inputs.
  - Recompute never redeems points; only an explicit redemption call
    mutates the loyalty balance.

CALLER CONTRACT:
  Recompute triggers are invoice generation and service addition. A
  later change to the loyalty balance does NOT re-trigger; callers
  regenerate the invoice to see an updated discount.

SEE ALSO:
  - booking.go: Invoice identity is memoized on the booking
*/
package hotel

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// LINE ITEMS
// =============================================================================

type LineItem struct {
	Description string
	Amount      Money
}

// =============================================================================
// DISCOUNT RULES
// =============================================================================

var (
	discountPerPoint = MustParseMoney("0.10")
	discountCapRate  = decimal.NewFromFloat(0.20)
)

// =============================================================================
// INVOICE
// =============================================================================

// Invoice identity (Number, IssuedOn) is stable across the booking's
// life; only the breakdown changes on recompute.
type Invoice struct {
	Number    string
	BookingID BookingID
	IssuedOn  Date

	lineItems []LineItem
	total     Money
}

// LineItems returns a copy of the current breakdown, in order.
func (inv *Invoice) LineItems() []LineItem {
	out := make([]LineItem, len(inv.lineItems))
	copy(out, inv.lineItems)
	return out
}

func (inv *Invoice) Total() Money { return inv.total }

// recompute re-derives the full breakdown from the booking's current
// state. The room rate and loyalty balance are resolved by the Ledger.
func (inv *Invoice) recompute(b *Booking, nightlyRate Money, loyaltyPoints int) {
	inv.lineItems = inv.lineItems[:0]

	nights := b.Nights()
	roomTotal := nightlyRate.MulInt(nights)
	inv.lineItems = append(inv.lineItems, LineItem{
		Description: fmt.Sprintf("Room %s (%d nights)", b.RoomID, nights),
		Amount:      roomTotal,
	})

	for _, svc := range b.services {
		inv.lineItems = append(inv.lineItems, LineItem{
			Description: svc.Description,
			Amount:      svc.Price,
		})
	}

	total := ZeroMoney()
	for _, item := range inv.lineItems {
		total = total.Add(item.Amount)
	}

	if loyaltyPoints > 0 {
		discount := discountPerPoint.MulInt(loyaltyPoints).Min(total.Mul(discountCapRate))
		if discount.IsPositive() {
			inv.lineItems = append(inv.lineItems, LineItem{
				Description: "Loyalty Discount",
				Amount:      discount.Neg(),
			})
			total = total.Sub(discount)
		}
	}

	inv.total = total
}
