/*
ledger.go - The booking ledger (orchestrator)

PURPOSE:
  The Ledger is the only component with authority to create bookings
  against rooms, trigger invoice recomputation, and apply cancellation
  side effects. It owns the long-lived entity graph (rooms, guests,
  bookings, feedback) exclusively.

CRITICAL SECTIONS:
  One mutex guards the graph. Room-availability flip and booking
  construction happen inside a single critical section so a race can
  never double-book; invoice recompute runs under the same lock since
  it reads mutable guest/service state and writes the invoice in place.

ERROR POLICY:
  Every failure returns a typed error from errors.go and leaves the
  graph untouched. No retries; operations are deterministic and local.

EXAMPLE FLOW:
  ledger := hotel.NewLedger(hotel.WithGateway(hotel.MethodCredit, gw))
  guest, _ := ledger.RegisterGuest("Jane Smith", "jane@example.com", "555-0102", "")
  booking, _ := ledger.CreateBooking(guest.ID, "201", in, out)
  ledger.RequestService(booking.ID, hotel.ServiceRequest{Kind: hotel.ServiceHousekeeping, Housekeeping: hotel.HousekeepingDeep})
  inv, _ := ledger.GenerateInvoice(booking.ID)
  rec, _ := ledger.RequestPayment(booking.ID, hotel.MethodCredit, details)

SEE ALSO:
  - booking.go: Lifecycle rules enforced per booking
  - ports.go: Capabilities consumed (gateway) and provided (catalog, directory)
*/
package hotel

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// =============================================================================
// LEDGER
// =============================================================================

type Ledger struct {
	mu  sync.Mutex
	now func() time.Time
	log zerolog.Logger

	gateways map[PaymentMethod]PaymentGateway
	archive  Archive

	rooms    map[RoomID]*Room
	roomIDs  []RoomID
	guests   map[GuestID]*Guest
	bookings map[BookingID]*Booking
	payments map[BookingID][]*PaymentRecord
	feedback []*Feedback
}

// Compile-time checks: the ledger provides the catalog and directory
// capabilities over its own graph.
var (
	_ RoomCatalog    = (*Ledger)(nil)
	_ GuestDirectory = (*Ledger)(nil)
)

type Option func(*Ledger)

// WithClock overrides the time source. Used by tests and replays.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithLogger attaches a structured logger. Default is a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(l *Ledger) { l.log = log }
}

// WithGateway registers the payment gateway for one method.
func WithGateway(method PaymentMethod, gw PaymentGateway) Option {
	return func(l *Ledger) { l.gateways[method] = gw }
}

// WithArchive attaches the append-only operational archive.
func WithArchive(a Archive) Option {
	return func(l *Ledger) { l.archive = a }
}

func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		now:      time.Now,
		log:      zerolog.Nop(),
		gateways: make(map[PaymentMethod]PaymentGateway),
		archive:  NopArchive{},
		rooms:    make(map[RoomID]*Room),
		guests:   make(map[GuestID]*Guest),
		bookings: make(map[BookingID]*Booking),
		payments: make(map[BookingID][]*PaymentRecord),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// =============================================================================
// ROOM CATALOG
// =============================================================================

// AddRoom registers a room with the ledger. Room IDs are unique.
func (l *Ledger) AddRoom(room *Room) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.rooms[room.ID]; exists {
		return &ArgumentError{Field: "room id", Reason: "already registered: " + string(room.ID)}
	}
	l.rooms[room.ID] = room
	l.roomIDs = append(l.roomIDs, room.ID)
	return nil
}

// Room looks up a room by ID.
func (l *Ledger) Room(id RoomID) (*Room, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	room, ok := l.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// SearchRooms returns available rooms, optionally filtered by category,
// in registration order.
func (l *Ledger) SearchRooms(category *RoomCategory) []*Room {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []*Room
	for _, id := range l.roomIDs {
		room := l.rooms[id]
		if !room.available {
			continue
		}
		if category != nil && room.Category != *category {
			continue
		}
		out = append(out, room)
	}
	return out
}

// =============================================================================
// GUEST DIRECTORY
// =============================================================================

// RegisterGuest adds a guest to the directory.
func (l *Ledger) RegisterGuest(name, email, phone, address string) (*Guest, error) {
	if name == "" {
		return nil, &ArgumentError{Field: "name", Reason: "must not be empty"}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	guest := &Guest{
		ID:           GuestID(uuid.NewString()),
		Name:         name,
		Email:        email,
		Phone:        phone,
		Address:      address,
		RegisteredAt: l.now(),
	}
	l.guests[guest.ID] = guest
	l.log.Info().Str("guest", string(guest.ID)).Str("name", name).Msg("guest registered")
	return guest, nil
}

// FindGuest looks up a guest by ID.
func (l *Ledger) FindGuest(id GuestID) (*Guest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	guest, ok := l.guests[id]
	if !ok {
		return nil, ErrGuestNotFound
	}
	return guest, nil
}

// =============================================================================
// BOOKING LIFECYCLE
// =============================================================================

// CreateBooking books a room for a guest over [checkIn, checkOut).
// The availability check, booking construction, and availability flip
// are one atomic step: a rejected booking never flips the flag.
func (l *Ledger) CreateBooking(guestID GuestID, roomID RoomID, checkIn, checkOut Date) (*Booking, error) {
	if !checkOut.After(checkIn) {
		return nil, &ArgumentError{Field: "date range", Reason: "check-out must be after check-in"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	guest, ok := l.guests[guestID]
	if !ok {
		return nil, ErrGuestNotFound
	}
	room, ok := l.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	if !room.available {
		return nil, &RoomUnavailableError{RoomID: roomID}
	}

	booking := &Booking{
		ID:        BookingID(uuid.NewString()),
		GuestID:   guestID,
		RoomID:    roomID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		CreatedOn: DateOf(l.now()),
		status:    BookingConfirmed,
	}
	l.bookings[booking.ID] = booking
	guest.addBooking(booking.ID)
	room.markUnavailable()

	l.log.Info().
		Str("booking", string(booking.ID)).
		Str("room", string(roomID)).
		Str("guest", string(guestID)).
		Int("nights", booking.Nights()).
		Msg("booking created")
	return booking, nil
}

// Booking looks up a booking by ID.
func (l *Ledger) Booking(id BookingID) (*Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	booking, ok := l.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// CancelBooking transitions the booking to Cancelled and frees its
// room. Idempotent: cancelling twice succeeds without a second
// availability flip, and issued payment records are never touched.
func (l *Ledger) CancelBooking(id BookingID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	booking, ok := l.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}
	if !booking.markCancelled() {
		return nil // already cancelled
	}
	if room, ok := l.rooms[booking.RoomID]; ok {
		room.markAvailable()
	}
	l.log.Info().Str("booking", string(id)).Str("room", string(booking.RoomID)).Msg("booking cancelled")
	return nil
}

// =============================================================================
// INVOICING
// =============================================================================

// GenerateInvoice returns the booking's memoized invoice, recomputed
// from the current room rate, stay, service charges, and loyalty
// balance. The invoice object and number are stable across calls.
func (l *Ledger) GenerateInvoice(id BookingID) (*Invoice, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.generateInvoiceLocked(id)
}

func (l *Ledger) generateInvoiceLocked(id BookingID) (*Invoice, error) {
	booking, ok := l.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	room, ok := l.rooms[booking.RoomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	guest, ok := l.guests[booking.GuestID]
	if !ok {
		return nil, ErrGuestNotFound
	}

	inv := booking.ensureInvoice(DateOf(l.now()))
	inv.recompute(booking, room.NightlyRate, guest.loyaltyPoints())

	if err := l.archive.RecordInvoice(inv); err != nil {
		l.log.Warn().Err(err).Str("invoice", inv.Number).Msg("archive write failed")
	}
	return inv, nil
}

// =============================================================================
// SERVICE REQUESTS
// =============================================================================

// ServiceRequest carries the kind plus kind-specific fields for
// dispatch. Only the fields for Kind are read.
type ServiceRequest struct {
	Kind         ServiceKind
	Housekeeping HousekeepingType
	Items        []string
	Vehicle      VehicleType
	Destination  string
}

// RequestService constructs the priced charge for the request and
// appends it to the booking. When an invoice already exists it is
// recomputed so the new charge appears immediately.
func (l *Ledger) RequestService(id BookingID, req ServiceRequest) (*ServiceCharge, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	booking, ok := l.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}

	var (
		svc *ServiceCharge
		err error
	)
	switch req.Kind {
	case ServiceHousekeeping:
		svc, err = NewHousekeeping(l.now(), booking.RoomID, req.Housekeeping)
	case ServiceRoomService:
		svc, err = NewRoomService(l.now(), booking.RoomID, req.Items)
	case ServiceTransportation:
		svc, err = NewTransportation(l.now(), booking.RoomID, req.Vehicle, req.Destination)
	default:
		return nil, &UnsupportedMethodError{Kind: "service", Method: string(req.Kind)}
	}
	if err != nil {
		return nil, err
	}

	if err := booking.addService(svc); err != nil {
		return nil, err
	}

	if booking.invoice != nil {
		if _, err := l.generateInvoiceLocked(id); err != nil {
			return nil, err
		}
	}

	l.log.Info().
		Str("booking", string(id)).
		Str("kind", string(req.Kind)).
		Str("price", svc.Price.String()).
		Msg("service added")
	return svc, nil
}

// =============================================================================
// PAYMENTS
// =============================================================================

// RequestPayment ensures an invoice exists (generating one if absent)
// and charges its total through the gateway registered for the method.
func (l *Ledger) RequestPayment(id BookingID, method PaymentMethod, details PaymentDetails) (*PaymentRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	inv, err := l.generateInvoiceLocked(id)
	if err != nil {
		return nil, err
	}

	gw, ok := l.gateways[method]
	if !ok {
		return nil, &UnsupportedMethodError{Kind: "payment", Method: string(method)}
	}

	rec, err := gw.Charge(inv.Total(), DateOf(l.now()), details)
	if err != nil {
		return nil, err
	}
	l.payments[id] = append(l.payments[id], rec)

	if err := l.archive.RecordPayment(id, rec); err != nil {
		l.log.Warn().Err(err).Str("booking", string(id)).Msg("archive write failed")
	}
	l.log.Info().
		Str("booking", string(id)).
		Str("method", string(method)).
		Str("amount", rec.Amount.String()).
		Str("txn", rec.TransactionID).
		Msg("payment completed")
	return rec, nil
}

// Payments returns the payment records taken against a booking, oldest
// first. Records are never mutated after the gateway returns them.
func (l *Ledger) Payments(id BookingID) []*PaymentRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*PaymentRecord, len(l.payments[id]))
	copy(out, l.payments[id])
	return out
}

// =============================================================================
// FEEDBACK
// =============================================================================

// SubmitFeedback records a rated comment. The stay date defaults to
// the submission date when zero.
func (l *Ledger) SubmitFeedback(guestID GuestID, rating int, comment string, stayDate Date) (*Feedback, error) {
	if rating < 1 || rating > 5 {
		return nil, &ArgumentError{Field: "rating", Reason: "must be between 1 and 5"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.guests[guestID]; !ok {
		return nil, ErrGuestNotFound
	}

	submitted := DateOf(l.now())
	if stayDate.IsZero() {
		stayDate = submitted
	}
	fb := &Feedback{
		ID:          FeedbackID(uuid.NewString()),
		GuestID:     guestID,
		Rating:      rating,
		Comment:     comment,
		SubmittedOn: submitted,
		StayDate:    stayDate,
	}
	l.feedback = append(l.feedback, fb)

	if err := l.archive.RecordFeedback(fb); err != nil {
		l.log.Warn().Err(err).Str("feedback", string(fb.ID)).Msg("archive write failed")
	}
	return fb, nil
}

// Feedback returns all submitted feedback, oldest first.
func (l *Ledger) Feedback() []*Feedback {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*Feedback, len(l.feedback))
	copy(out, l.feedback)
	return out
}
