/*
ports.go - Capability interfaces the core depends on

PURPOSE:
  The core calls out across exactly three boundaries: charging a
  payment, searching the room catalog, and resolving guests. Each is a
  capability interface here; the Ledger itself satisfies the catalog
  and directory capabilities over its in-memory graph, and gateway
  implementations live outside the core.

  Archive is the optional persistence collaborator: an append-only
  record of issued invoices, completed payments, and feedback. Archive
  failures are logged and never fail the originating operation; the
  in-memory graph remains the source of truth.

SEE ALSO:
  - gateway/: PaymentGateway implementations per method
  - store/sqlite/: Archive implementation
*/
package hotel

// PaymentGateway charges an amount through one payment method. A
// completed record carries a transaction ID; a failed charge returns
// an error and no record.
type PaymentGateway interface {
	Charge(amount Money, date Date, details PaymentDetails) (*PaymentRecord, error)
}

// RoomCatalog searches bookable rooms. A nil category matches all
// categories; only available rooms are returned.
type RoomCatalog interface {
	SearchRooms(category *RoomCategory) []*Room
}

// GuestDirectory resolves and registers guests.
type GuestDirectory interface {
	FindGuest(id GuestID) (*Guest, error)
	RegisterGuest(name, email, phone, address string) (*Guest, error)
}

// Archive records operational outcomes append-only. Implementations
// must tolerate duplicate invoice numbers across recomputes by
// recording the latest breakdown.
type Archive interface {
	RecordInvoice(inv *Invoice) error
	RecordPayment(bookingID BookingID, rec *PaymentRecord) error
	RecordFeedback(fb *Feedback) error
}

// NopArchive discards everything. Used when no archive is configured.
type NopArchive struct{}

func (NopArchive) RecordInvoice(*Invoice) error                  { return nil }
func (NopArchive) RecordPayment(BookingID, *PaymentRecord) error { return nil }
func (NopArchive) RecordFeedback(*Feedback) error                { return nil }
