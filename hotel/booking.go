/*
booking.go - Booking lifecycle state machine

PURPOSE:
  A Booking binds a guest and a room over a date range and exclusively
  owns zero-or-one invoice plus an ordered sequence of service charges.

STATE MACHINE:
  Confirmed -> Cancelled (terminal, never reversed).
  Construction requires an available room and flips it unavailable as a
  single logical step inside the Ledger's critical section: both happen
  or neither does.

RULES:
  - addService appends in insertion order; rejected with InvalidState
    once the booking is cancelled.
  - cancel is idempotent: cancelling an already-cancelled booking
    returns success without re-flipping room availability.
  - ensureInvoice memoizes the invoice: the first call constructs it,
    later calls return the same object. Identity (invoice number) is
    stable; only recompute changes the breakdown.

SEE ALSO:
  - ledger.go: The only component allowed to construct bookings
  - invoice.go: Recompute algorithm
*/
package hotel

import (
	"fmt"

	"github.com/google/uuid"
)

// =============================================================================
// STATUS
// =============================================================================

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
)

// =============================================================================
// BOOKING
// =============================================================================

// Booking references its room and guest by ID; the Ledger resolves
// them. This keeps the ownership graph acyclic even though the guest's
// history references the booking back.
type Booking struct {
	ID        BookingID
	GuestID   GuestID
	RoomID    RoomID
	CheckIn   Date
	CheckOut  Date
	CreatedOn Date

	status   BookingStatus
	invoice  *Invoice
	services []*ServiceCharge
}

func (b *Booking) Status() BookingStatus { return b.status }

// Nights counts the whole-day stay duration. Zero for a same-day range.
func (b *Booking) Nights() int { return NightsBetween(b.CheckIn, b.CheckOut) }

// Services returns the charge sequence in insertion order.
func (b *Booking) Services() []*ServiceCharge {
	out := make([]*ServiceCharge, len(b.services))
	copy(out, b.services)
	return out
}

// Invoice returns the memoized invoice, or nil if none was generated yet.
func (b *Booking) Invoice() *Invoice { return b.invoice }

// ensureInvoice constructs the invoice on first call. It does NOT
// compute the breakdown; the Ledger recomputes after resolving the room
// rate and loyalty balance.
func (b *Booking) ensureInvoice(issuedOn Date) *Invoice {
	if b.invoice == nil {
		b.invoice = &Invoice{
			Number:    newInvoiceNumber(issuedOn),
			BookingID: b.ID,
			IssuedOn:  issuedOn,
		}
	}
	return b.invoice
}

// addService appends a charge. Rejected once cancelled.
func (b *Booking) addService(svc *ServiceCharge) error {
	if b.status == BookingCancelled {
		return &InvalidStateError{Op: "add service", State: "cancelled booking"}
	}
	b.services = append(b.services, svc)
	return nil
}

// markCancelled transitions to Cancelled. Returns false when the
// booking was already cancelled, so the caller does not re-apply room
// availability side effects.
func (b *Booking) markCancelled() bool {
	if b.status == BookingCancelled {
		return false
	}
	b.status = BookingCancelled
	return true
}

func newInvoiceNumber(issuedOn Date) string {
	return fmt.Sprintf("INV-%s-%s", issuedOn.Time.Format("20060102"), uuid.NewString()[:8])
}
