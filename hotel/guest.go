/*
guest.go - Guest records and loyalty enrollment

PURPOSE:
  A Guest is a directory entry with contact details, a booking history,
  and an optional loyalty account. The booking history stores booking
  IDs rather than booking objects so the ownership graph stays acyclic
  (the Ledger owns bookings; guests only reference them back).

SEE ALSO:
  - loyalty.go: LoyaltyAccount created lazily by EnrollLoyalty
  - ledger.go: RegisterGuest / FindGuest
*/
package hotel

import "time"

type Guest struct {
	ID           GuestID
	Name         string
	Email        string
	Phone        string
	Address      string
	RegisteredAt time.Time

	loyalty  *LoyaltyAccount
	bookings []BookingID
}

// Loyalty returns the guest's loyalty account, or nil if not enrolled.
func (g *Guest) Loyalty() *LoyaltyAccount { return g.loyalty }

// EnrollLoyalty creates the loyalty account on first call and returns
// the same account on every subsequent call.
func (g *Guest) EnrollLoyalty() *LoyaltyAccount {
	if g.loyalty == nil {
		g.loyalty = NewLoyaltyAccount()
	}
	return g.loyalty
}

// Bookings returns the guest's booking history, oldest first.
func (g *Guest) Bookings() []BookingID {
	out := make([]BookingID, len(g.bookings))
	copy(out, g.bookings)
	return out
}

// loyaltyPoints reads the redeemable balance for invoice recompute.
// Zero when the guest is not enrolled.
func (g *Guest) loyaltyPoints() int {
	if g.loyalty == nil {
		return 0
	}
	return g.loyalty.Points()
}

func (g *Guest) addBooking(id BookingID) {
	g.bookings = append(g.bookings, id)
}
