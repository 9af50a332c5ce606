package hotel_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royalstay/ledger/hotel"
)

// =============================================================================
// TEST SETUP
// =============================================================================

// fixedNow pins the clock so invoice numbers and dates are reproducible.
var fixedNow = time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

func newTestLedger(t *testing.T, opts ...hotel.Option) *hotel.Ledger {
	t.Helper()
	opts = append([]hotel.Option{hotel.WithClock(func() time.Time { return fixedNow })}, opts...)
	return hotel.NewLedger(opts...)
}

func addRoom(t *testing.T, ledger *hotel.Ledger, id hotel.RoomID, category hotel.RoomCategory, rate string) *hotel.Room {
	t.Helper()
	room, err := hotel.NewRoom(id, category, hotel.MustParseMoney(rate))
	require.NoError(t, err)
	require.NoError(t, ledger.AddRoom(room))
	return room
}

func registerGuest(t *testing.T, ledger *hotel.Ledger, name string, points int) *hotel.Guest {
	t.Helper()
	guest, err := ledger.RegisterGuest(name, "guest@example.com", "555-0100", "")
	require.NoError(t, err)
	if points >= 0 {
		require.NoError(t, guest.EnrollLoyalty().AddPoints(points))
	}
	return guest
}

func stay(nights int) (hotel.Date, hotel.Date) {
	in := hotel.NewDate(2026, time.March, 10)
	return in, in.AddDays(nights)
}

// stubGateway records charges and returns completed records.
type stubGateway struct {
	charged []hotel.Money
	err     error
}

func (g *stubGateway) Charge(amount hotel.Money, date hotel.Date, _ hotel.PaymentDetails) (*hotel.PaymentRecord, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.charged = append(g.charged, amount)
	return &hotel.PaymentRecord{
		Amount:        amount,
		Date:          date,
		Method:        hotel.MethodCredit,
		Status:        hotel.PaymentCompleted,
		TransactionID: "TEST-TXN",
	}, nil
}

// failingArchive always errors; archive failures must never fail the
// originating operation.
type failingArchive struct{}

func (failingArchive) RecordInvoice(*hotel.Invoice) error { return errors.New("archive down") }
func (failingArchive) RecordPayment(hotel.BookingID, *hotel.PaymentRecord) error {
	return errors.New("archive down")
}
func (failingArchive) RecordFeedback(*hotel.Feedback) error { return errors.New("archive down") }

// =============================================================================
// BOOKING LIFECYCLE TESTS
// =============================================================================

func TestCreateBooking_FlipsRoomUnavailable(t *testing.T) {
	// GIVEN: An available Deluxe room
	// WHEN: A guest books it
	// THEN: The booking is Confirmed, the room is unavailable, and the
	//       guest's history references the booking

	ledger := newTestLedger(t)
	room := addRoom(t, ledger, "201", hotel.CategoryDeluxe, "149.99")
	guest := registerGuest(t, ledger, "Jane Smith", -1)

	in, out := stay(3)
	booking, err := ledger.CreateBooking(guest.ID, room.ID, in, out)
	require.NoError(t, err)

	assert.Equal(t, hotel.BookingConfirmed, booking.Status())
	assert.Equal(t, 3, booking.Nights())
	assert.False(t, room.Available(), "booked room must be unavailable")
	assert.Equal(t, []hotel.BookingID{booking.ID}, guest.Bookings())
}

func TestCreateBooking_UnavailableRoom_Rejected(t *testing.T) {
	// GIVEN: A room already booked by another guest
	// WHEN: A second guest tries to book it
	// THEN: RoomUnavailable, and nothing changes: no booking recorded,
	//       no history entry for the second guest

	ledger := newTestLedger(t)
	room := addRoom(t, ledger, "201", hotel.CategoryDeluxe, "149.99")
	first := registerGuest(t, ledger, "Jane Smith", -1)
	second := registerGuest(t, ledger, "John Doe", -1)

	in, out := stay(3)
	_, err := ledger.CreateBooking(first.ID, room.ID, in, out)
	require.NoError(t, err)

	booking, err := ledger.CreateBooking(second.ID, room.ID, in, out)
	assert.Nil(t, booking)
	assert.ErrorIs(t, err, hotel.ErrRoomUnavailable)

	var unavailable *hotel.RoomUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, room.ID, unavailable.RoomID)
	assert.Empty(t, second.Bookings(), "rejected booking must leave no trace")
}

func TestCreateBooking_BadDateRange_Rejected(t *testing.T) {
	// GIVEN: A registered guest and an available room
	// WHEN: Booking with check-out not strictly after check-in
	// THEN: InvalidArgument, and the room stays available

	ledger := newTestLedger(t)
	room := addRoom(t, ledger, "101", hotel.CategoryStandard, "99.99")
	guest := registerGuest(t, ledger, "Jane Smith", -1)

	day := hotel.NewDate(2026, time.March, 10)

	_, err := ledger.CreateBooking(guest.ID, room.ID, day, day)
	assert.ErrorIs(t, err, hotel.ErrInvalidArgument, "same-day range rejected")

	_, err = ledger.CreateBooking(guest.ID, room.ID, day, day.AddDays(-1))
	assert.ErrorIs(t, err, hotel.ErrInvalidArgument, "inverted range rejected")

	assert.True(t, room.Available())
}

func TestCreateBooking_UnknownGuestOrRoom(t *testing.T) {
	ledger := newTestLedger(t)
	room := addRoom(t, ledger, "101", hotel.CategoryStandard, "99.99")
	guest := registerGuest(t, ledger, "Jane Smith", -1)
	in, out := stay(2)

	_, err := ledger.CreateBooking("no-such-guest", room.ID, in, out)
	assert.ErrorIs(t, err, hotel.ErrGuestNotFound)

	_, err = ledger.CreateBooking(guest.ID, "999", in, out)
	assert.ErrorIs(t, err, hotel.ErrRoomNotFound)
}

func TestCancelBooking_FreesRoomForRebooking(t *testing.T) {
	// GIVEN: A confirmed booking
	// WHEN: It is cancelled
	// THEN: The room is available again and another guest can book it

	ledger := newTestLedger(t)
	room := addRoom(t, ledger, "201", hotel.CategoryDeluxe, "149.99")
	first := registerGuest(t, ledger, "Jane Smith", -1)
	second := registerGuest(t, ledger, "John Doe", -1)

	in, out := stay(3)
	booking, err := ledger.CreateBooking(first.ID, room.ID, in, out)
	require.NoError(t, err)

	require.NoError(t, ledger.CancelBooking(booking.ID))
	assert.Equal(t, hotel.BookingCancelled, booking.Status())
	assert.True(t, room.Available())

	_, err = ledger.CreateBooking(second.ID, room.ID, in, out)
	assert.NoError(t, err, "cancelled room must be rebookable")
}

func TestCancelBooking_Idempotent_NoSecondAvailabilityFlip(t *testing.T) {
	// GIVEN: Guest A's booking was cancelled and guest B rebooked the room
	// WHEN: Guest A's booking is cancelled a second time
	// THEN: The call succeeds but B's room must NOT be freed

	ledger := newTestLedger(t)
	room := addRoom(t, ledger, "201", hotel.CategoryDeluxe, "149.99")
	a := registerGuest(t, ledger, "Jane Smith", -1)
	b := registerGuest(t, ledger, "John Doe", -1)

	in, out := stay(3)
	bookingA, err := ledger.CreateBooking(a.ID, room.ID, in, out)
	require.NoError(t, err)
	require.NoError(t, ledger.CancelBooking(bookingA.ID))

	_, err = ledger.CreateBooking(b.ID, room.ID, in, out)
	require.NoError(t, err)
	require.False(t, room.Available())

	assert.NoError(t, ledger.CancelBooking(bookingA.ID), "repeat cancel succeeds")
	assert.False(t, room.Available(), "repeat cancel must not free B's room")
}

func TestCancelBooking_Unknown(t *testing.T) {
	ledger := newTestLedger(t)
	err := ledger.CancelBooking("no-such-booking")
	assert.ErrorIs(t, err, hotel.ErrBookingNotFound)
}

// =============================================================================
// SERVICE REQUEST TESTS
// =============================================================================

func TestRequestService_AppendsInOrder(t *testing.T) {
	// GIVEN: A confirmed booking
	// WHEN: Three services are requested
	// THEN: They appear on the booking in insertion order with table prices

	ledger := newTestLedger(t)
	room := addRoom(t, ledger, "201", hotel.CategoryDeluxe, "149.99")
	guest := registerGuest(t, ledger, "Jane Smith", -1)
	in, out := stay(3)
	booking, err := ledger.CreateBooking(guest.ID, room.ID, in, out)
	require.NoError(t, err)

	_, err = ledger.RequestService(booking.ID, hotel.ServiceRequest{
		Kind: hotel.ServiceHousekeeping, Housekeeping: hotel.HousekeepingDeep})
	require.NoError(t, err)
	_, err = ledger.RequestService(booking.ID, hotel.ServiceRequest{
		Kind: hotel.ServiceRoomService, Items: []string{"Club Sandwich", "Lemonade"}})
	require.NoError(t, err)
	_, err = ledger.RequestService(booking.ID, hotel.ServiceRequest{
		Kind: hotel.ServiceTransportation, Vehicle: hotel.VehicleLimo, Destination: "Airport"})
	require.NoError(t, err)

	services := booking.Services()
	require.Len(t, services, 3)
	assert.Equal(t, "Deep Cleaning", services[0].Description)
	assert.Equal(t, hotel.MustParseMoney("25.00"), services[0].Price)
	assert.Equal(t, "Room Service Order", services[1].Description)
	assert.Equal(t, hotel.MustParseMoney("25.00"), services[1].Price)
	assert.Equal(t, "Limo to Airport", services[2].Description)
	assert.Equal(t, hotel.MustParseMoney("100.00"), services[2].Price)
}

func TestRequestService_CancelledBooking_Rejected(t *testing.T) {
	// GIVEN: A cancelled booking
	// WHEN: A service is requested against it
	// THEN: InvalidState, and no charge is appended

	ledger := newTestLedger(t)
	room := addRoom(t, ledger, "201", hotel.CategoryDeluxe, "149.99")
	guest := registerGuest(t, ledger, "Jane Smith", -1)
	in, out := stay(3)
	booking, err := ledger.CreateBooking(guest.ID, room.ID, in, out)
	require.NoError(t, err)
	require.NoError(t, ledger.CancelBooking(booking.ID))

	_, err = ledger.RequestService(booking.ID, hotel.ServiceRequest{
		Kind: hotel.ServiceHousekeeping, Housekeeping: hotel.HousekeepingDeep})

	assert.ErrorIs(t, err, hotel.ErrInvalidState)
	assert.Empty(t, booking.Services())
}

func TestRequestService_UnknownKind_Rejected(t *testing.T) {
	ledger := newTestLedger(t)
	room := addRoom(t, ledger, "201", hotel.CategoryDeluxe, "149.99")
	guest := registerGuest(t, ledger, "Jane Smith", -1)
	in, out := stay(3)
	booking, err := ledger.CreateBooking(guest.ID, room.ID, in, out)
	require.NoError(t, err)

	_, err = ledger.RequestService(booking.ID, hotel.ServiceRequest{Kind: "spa"})
	assert.ErrorIs(t, err, hotel.ErrUnsupportedMethod)
}

func TestRequestService_UnknownPricingParameter_Rejected(t *testing.T) {
	// GIVEN: A confirmed booking
	// WHEN: Requesting housekeeping with an unrecognized cleaning type
	// THEN: InvalidArgument, never a silent 0.00 charge

	ledger := newTestLedger(t)
	room := addRoom(t, ledger, "201", hotel.CategoryDeluxe, "149.99")
	guest := registerGuest(t, ledger, "Jane Smith", -1)
	in, out := stay(3)
	booking, err := ledger.CreateBooking(guest.ID, room.ID, in, out)
	require.NoError(t, err)

	_, err = ledger.RequestService(booking.ID, hotel.ServiceRequest{
		Kind: hotel.ServiceHousekeeping, Housekeeping: "Sparkling"})
	assert.ErrorIs(t, err, hotel.ErrInvalidArgument)

	_, err = ledger.RequestService(booking.ID, hotel.ServiceRequest{
		Kind: hotel.ServiceTransportation, Vehicle: "Helicopter", Destination: "Airport"})
	assert.ErrorIs(t, err, hotel.ErrInvalidArgument)

	assert.Empty(t, booking.Services())
}

func TestRequestService_DoesNotCreateInvoice(t *testing.T) {
	// Adding a service before any invoice exists must not conjure one up.

	ledger := newTestLedger(t)
	room := addRoom(t, ledger, "201", hotel.CategoryDeluxe, "149.99")
	guest := registerGuest(t, ledger, "Jane Smith", -1)
	in, out := stay(3)
	booking, err := ledger.CreateBooking(guest.ID, room.ID, in, out)
	require.NoError(t, err)

	_, err = ledger.RequestService(booking.ID, hotel.ServiceRequest{
		Kind: hotel.ServiceHousekeeping, Housekeeping: hotel.HousekeepingEco})
	require.NoError(t, err)

	assert.Nil(t, booking.Invoice())
}

// =============================================================================
// INVOICE TESTS
// =============================================================================

func TestGenerateInvoice_DeluxeThreeNightsWithDiscount(t *testing.T) {
	// GIVEN: A 3-night Deluxe stay at 149.99 and a guest holding 750 points
	// WHEN: The invoice is generated
	// THEN: Room line 449.97, discount min(75.00, 89.994) = 75.00,
	//       total 374.97, and total == sum of line amounts

	ledger := newTestLedger(t)
	room := addRoom(t, ledger, "201", hotel.CategoryDeluxe, "149.99")
	guest := registerGuest(t, ledger, "Jane Smith", 750)
	in, out := stay(3)
	booking, err := ledger.CreateBooking(guest.ID, room.ID, in, out)
	require.NoError(t, err)

	inv, err := ledger.GenerateInvoice(booking.ID)
	require.NoError(t, err)

	items := inv.LineItems()
	require.Len(t, items, 2)
	assert.Equal(t, "Room 201 (3 nights)", items[0].Description)
	assert.Equal(t, hotel.MustParseMoney("449.97"), items[0].Amount)
	assert.Equal(t, "Loyalty Discount", items[1].Description)
	assert.Equal(t, hotel.MustParseMoney("-75.00"), items[1].Amount)
	assert.Equal(t, hotel.MustParseMoney("374.97"), inv.Total())

	sum := hotel.ZeroMoney()
	for _, item := range items {
		sum = sum.Add(item.Amount)
	}
	assert.True(t, inv.Total().Equal(sum), "total must equal the sum of line amounts")
}

func TestGenerateInvoice_NoLoyalty_NoDiscountLine(t *testing.T) {
	ledger := newTestLedger(t)
	room := addRoom(t, ledger, "101", hotel.CategoryStandard, "99.99")
	guest := registerGuest(t, ledger, "Robert Johnson", -1) // not enrolled
	in, out := stay(2)
	booking, err := ledger.CreateBooking(guest.ID, room.ID, in, out)
	require.NoError(t, err)

	inv, err := ledger.GenerateInvoice(booking.ID)
	require.NoError(t, err)

	items := inv.LineItems()
	require.Len(t, items, 1)
	assert.Equal(t, "Room 101 (2 nights)", items[0].Description)
	assert.Equal(t, hotel.MustParseMoney("199.98"), inv.Total())
}

func TestGenerateInvoice_DiscountCappedAtTwentyPercent(t *testing.T) {
	// GIVEN: A guest holding far more points than the cap allows
	// WHEN: The invoice is generated for a 449.97 stay
	// THEN: The discount is 20% of the pre-discount total, not points x 0.10

	ledger := newTestLedger(t)
	room := addRoom(t, ledger, "201", hotel.CategoryDeluxe, "149.99")
	guest := registerGuest(t, ledger, "Jane Smith", 10000)
	in, out := stay(3)
	booking, err := ledger.CreateBooking(guest.ID, room.ID, in, out)
	require.NoError(t, err)

	inv, err := ledger.GenerateInvoice(booking.ID)
	require.NoError(t, err)

	items := inv.LineItems()
	require.Len(t, items, 2)
	assert.Equal(t, hotel.MustParseMoney("-89.994"), items[1].Amount)
	assert.Equal(t, hotel.MustParseMoney("359.976"), inv.Total())
}

func TestGenerateInvoice_StableIdentityAcrossCalls(t *testing.T) {
	// The invoice number and object are memoized per booking; repeated
	// generation recomputes the breakdown but never re-issues.

	ledger := newTestLedger(t)
	room := addRoom(t, ledger, "201", hotel.CategoryDeluxe, "149.99")
	guest := registerGuest(t, ledger, "Jane Smith", 750)
	in, out := stay(3)
	booking, err := ledger.CreateBooking(guest.ID, room.ID, in, out)
	require.NoError(t, err)

	first, err := ledger.GenerateInvoice(booking.ID)
	require.NoError(t, err)
	second, err := ledger.GenerateInvoice(booking.ID)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, first.Number, second.Number)
	assert.Contains(t, first.Number, "INV-20260301-")
	assert.Equal(t, hotel.MustParseMoney("374.97"), second.Total(), "recompute is idempotent")
}

func TestGenerateInvoice_DoesNotChaseLoyaltyChanges(t *testing.T) {
	// GIVEN: An invoice generated while the guest held 750 points
	// WHEN: The guest's balance later grows to 1000
	// THEN: The held invoice is unchanged until explicitly regenerated

	ledger := newTestLedger(t)
	room := addRoom(t, ledger, "201", hotel.CategoryDeluxe, "149.99")
	guest := registerGuest(t, ledger, "Jane Smith", 750)
	in, out := stay(3)
	booking, err := ledger.CreateBooking(guest.ID, room.ID, in, out)
	require.NoError(t, err)

	inv, err := ledger.GenerateInvoice(booking.ID)
	require.NoError(t, err)
	require.Equal(t, hotel.MustParseMoney("374.97"), inv.Total())

	require.NoError(t, guest.Loyalty().AddPoints(250))
	assert.Equal(t, hotel.MustParseMoney("374.97"), inv.Total(), "no recompute without regeneration")

	regenerated, err := ledger.GenerateInvoice(booking.ID)
	require.NoError(t, err)
	// 1000 points: min(100.00, 89.994) = 89.994
	assert.Equal(t, hotel.MustParseMoney("359.976"), regenerated.Total())
}

func TestRequestService_RecomputesExistingInvoice(t *testing.T) {
	// GIVEN: An already-generated invoice for a 3-night Deluxe stay (750 pts)
	// WHEN: A Deep cleaning is added
	// THEN: The same invoice now carries the service line and the new total

	ledger := newTestLedger(t)
	room := addRoom(t, ledger, "201", hotel.CategoryDeluxe, "149.99")
	guest := registerGuest(t, ledger, "Jane Smith", 750)
	in, out := stay(3)
	booking, err := ledger.CreateBooking(guest.ID, room.ID, in, out)
	require.NoError(t, err)

	inv, err := ledger.GenerateInvoice(booking.ID)
	require.NoError(t, err)
	require.Equal(t, hotel.MustParseMoney("374.97"), inv.Total())

	_, err = ledger.RequestService(booking.ID, hotel.ServiceRequest{
		Kind: hotel.ServiceHousekeeping, Housekeeping: hotel.HousekeepingDeep})
	require.NoError(t, err)

	items := inv.LineItems()
	require.Len(t, items, 3)
	assert.Equal(t, "Deep Cleaning", items[1].Description)
	// 449.97 + 25.00 = 474.97; discount still min(75.00, 94.994) = 75.00
	assert.Equal(t, hotel.MustParseMoney("399.97"), inv.Total())
}

func TestGenerateInvoice_ArchiveFailureDoesNotFail(t *testing.T) {
	// Archive writes are best-effort; the in-memory graph is the source
	// of truth.

	ledger := newTestLedger(t, hotel.WithArchive(failingArchive{}))
	room := addRoom(t, ledger, "201", hotel.CategoryDeluxe, "149.99")
	guest := registerGuest(t, ledger, "Jane Smith", -1)
	in, out := stay(3)
	booking, err := ledger.CreateBooking(guest.ID, room.ID, in, out)
	require.NoError(t, err)

	inv, err := ledger.GenerateInvoice(booking.ID)
	assert.NoError(t, err)
	assert.NotNil(t, inv)
}

// =============================================================================
// PAYMENT TESTS
// =============================================================================

func TestRequestPayment_ChargesInvoiceTotal(t *testing.T) {
	// GIVEN: A 3-night Deluxe booking for a guest with 750 points
	// WHEN: A credit payment is requested
	// THEN: The gateway is charged the discounted total and the record is kept

	gw := &stubGateway{}
	ledger := newTestLedger(t, hotel.WithGateway(hotel.MethodCredit, gw))
	room := addRoom(t, ledger, "201", hotel.CategoryDeluxe, "149.99")
	guest := registerGuest(t, ledger, "Jane Smith", 750)
	in, out := stay(3)
	booking, err := ledger.CreateBooking(guest.ID, room.ID, in, out)
	require.NoError(t, err)

	rec, err := ledger.RequestPayment(booking.ID, hotel.MethodCredit, hotel.PaymentDetails{})
	require.NoError(t, err)

	assert.Equal(t, hotel.MustParseMoney("374.97"), rec.Amount)
	assert.Equal(t, hotel.PaymentCompleted, rec.Status)
	require.Len(t, gw.charged, 1)
	assert.Equal(t, hotel.MustParseMoney("374.97"), gw.charged[0])

	records := ledger.Payments(booking.ID)
	require.Len(t, records, 1)
	assert.Equal(t, rec, records[0])
}

func TestRequestPayment_GeneratesInvoiceWhenAbsent(t *testing.T) {
	gw := &stubGateway{}
	ledger := newTestLedger(t, hotel.WithGateway(hotel.MethodCredit, gw))
	room := addRoom(t, ledger, "101", hotel.CategoryStandard, "99.99")
	guest := registerGuest(t, ledger, "Robert Johnson", -1)
	in, out := stay(2)
	booking, err := ledger.CreateBooking(guest.ID, room.ID, in, out)
	require.NoError(t, err)
	require.Nil(t, booking.Invoice())

	_, err = ledger.RequestPayment(booking.ID, hotel.MethodCredit, hotel.PaymentDetails{})
	require.NoError(t, err)

	require.NotNil(t, booking.Invoice())
	assert.Equal(t, hotel.MustParseMoney("199.98"), booking.Invoice().Total())
}

func TestRequestPayment_UnsupportedMethod(t *testing.T) {
	ledger := newTestLedger(t) // no gateways registered
	room := addRoom(t, ledger, "101", hotel.CategoryStandard, "99.99")
	guest := registerGuest(t, ledger, "Jane Smith", -1)
	in, out := stay(2)
	booking, err := ledger.CreateBooking(guest.ID, room.ID, in, out)
	require.NoError(t, err)

	_, err = ledger.RequestPayment(booking.ID, "barter", hotel.PaymentDetails{})
	assert.ErrorIs(t, err, hotel.ErrUnsupportedMethod)
	assert.Empty(t, ledger.Payments(booking.ID))
}

func TestRequestPayment_GatewayFailure_NoRecordKept(t *testing.T) {
	gw := &stubGateway{err: errors.New("processor timeout")}
	ledger := newTestLedger(t, hotel.WithGateway(hotel.MethodCredit, gw))
	room := addRoom(t, ledger, "101", hotel.CategoryStandard, "99.99")
	guest := registerGuest(t, ledger, "Jane Smith", -1)
	in, out := stay(2)
	booking, err := ledger.CreateBooking(guest.ID, room.ID, in, out)
	require.NoError(t, err)

	_, err = ledger.RequestPayment(booking.ID, hotel.MethodCredit, hotel.PaymentDetails{})
	assert.Error(t, err)
	assert.Empty(t, ledger.Payments(booking.ID))
}

func TestCancelBooking_KeepsPaymentRecords(t *testing.T) {
	// Cancellation never touches issued payment records.

	gw := &stubGateway{}
	ledger := newTestLedger(t, hotel.WithGateway(hotel.MethodCredit, gw))
	room := addRoom(t, ledger, "201", hotel.CategoryDeluxe, "149.99")
	guest := registerGuest(t, ledger, "Jane Smith", -1)
	in, out := stay(3)
	booking, err := ledger.CreateBooking(guest.ID, room.ID, in, out)
	require.NoError(t, err)

	_, err = ledger.RequestPayment(booking.ID, hotel.MethodCredit, hotel.PaymentDetails{})
	require.NoError(t, err)
	require.NoError(t, ledger.CancelBooking(booking.ID))

	assert.Len(t, ledger.Payments(booking.ID), 1)
}

// =============================================================================
// ROOM CATALOG TESTS
// =============================================================================

func TestSearchRooms_FiltersAvailabilityAndCategory(t *testing.T) {
	// GIVEN: Two Standard and one Deluxe room, one Standard booked
	// WHEN: Searching with and without a category filter
	// THEN: Only available rooms match, in registration order

	ledger := newTestLedger(t)
	addRoom(t, ledger, "101", hotel.CategoryStandard, "99.99")
	addRoom(t, ledger, "102", hotel.CategoryStandard, "99.99")
	addRoom(t, ledger, "201", hotel.CategoryDeluxe, "149.99")
	guest := registerGuest(t, ledger, "Jane Smith", -1)

	in, out := stay(2)
	_, err := ledger.CreateBooking(guest.ID, "101", in, out)
	require.NoError(t, err)

	all := ledger.SearchRooms(nil)
	require.Len(t, all, 2)
	assert.Equal(t, hotel.RoomID("102"), all[0].ID)
	assert.Equal(t, hotel.RoomID("201"), all[1].ID)

	standard := hotel.CategoryStandard
	filtered := ledger.SearchRooms(&standard)
	require.Len(t, filtered, 1)
	assert.Equal(t, hotel.RoomID("102"), filtered[0].ID)
}

func TestAddRoom_DuplicateID_Rejected(t *testing.T) {
	ledger := newTestLedger(t)
	addRoom(t, ledger, "101", hotel.CategoryStandard, "99.99")

	dup, err := hotel.NewRoom("101", hotel.CategoryDeluxe, hotel.MustParseMoney("149.99"))
	require.NoError(t, err)
	assert.ErrorIs(t, ledger.AddRoom(dup), hotel.ErrInvalidArgument)
}

// =============================================================================
// GUEST DIRECTORY TESTS
// =============================================================================

func TestRegisterGuest_EmptyName_Rejected(t *testing.T) {
	ledger := newTestLedger(t)
	_, err := ledger.RegisterGuest("", "a@example.com", "", "")
	assert.ErrorIs(t, err, hotel.ErrInvalidArgument)
}

func TestFindGuest_Unknown(t *testing.T) {
	ledger := newTestLedger(t)
	_, err := ledger.FindGuest("no-such-guest")
	assert.ErrorIs(t, err, hotel.ErrGuestNotFound)
}

// =============================================================================
// FEEDBACK TESTS
// =============================================================================

func TestSubmitFeedback_RatingBounds(t *testing.T) {
	// Ratings outside [1,5] are rejected before the guest lookup.

	ledger := newTestLedger(t)
	guest := registerGuest(t, ledger, "Jane Smith", -1)

	for _, rating := range []int{0, 6, -1} {
		_, err := ledger.SubmitFeedback(guest.ID, rating, "meh", hotel.Date{})
		assert.ErrorIs(t, err, hotel.ErrInvalidArgument, "rating %d", rating)
	}
	assert.Empty(t, ledger.Feedback())
}

func TestSubmitFeedback_StayDateDefaultsToSubmission(t *testing.T) {
	ledger := newTestLedger(t)
	guest := registerGuest(t, ledger, "Jane Smith", -1)

	fb, err := ledger.SubmitFeedback(guest.ID, 5, "Lovely stay", hotel.Date{})
	require.NoError(t, err)

	assert.Equal(t, hotel.DateOf(fixedNow), fb.SubmittedOn)
	assert.Equal(t, fb.SubmittedOn, fb.StayDate)
	assert.Len(t, ledger.Feedback(), 1)
}

func TestSubmitFeedback_UnknownGuest(t *testing.T) {
	ledger := newTestLedger(t)
	_, err := ledger.SubmitFeedback("no-such-guest", 4, "nice", hotel.Date{})
	assert.ErrorIs(t, err, hotel.ErrGuestNotFound)
}

func TestFeedback_ManagementResponse(t *testing.T) {
	ledger := newTestLedger(t)
	guest := registerGuest(t, ledger, "Jane Smith", -1)

	fb, err := ledger.SubmitFeedback(guest.ID, 2, "Slow check-in", hotel.Date{})
	require.NoError(t, err)
	require.Empty(t, fb.Response())

	fb.AddResponse("We have added front-desk staff for peak hours.")
	assert.Equal(t, "We have added front-desk staff for peak hours.", fb.Response())
}
