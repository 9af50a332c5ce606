/*
handlers.go - HTTP API handlers for the booking ledger

PURPOSE:
  Exposes the booking engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the ledger.

ENDPOINTS:
  Rooms:
    GET    /api/rooms                      Search available rooms (?category=)
    GET    /api/rooms/{id}                 Room details

  Guests:
    POST   /api/guests                     Register guest
    GET    /api/guests/{id}                Guest details with loyalty + history
    POST   /api/guests/{id}/loyalty        Enroll in loyalty program
    POST   /api/guests/{id}/loyalty/points Add points
    POST   /api/guests/{id}/loyalty/redeem Redeem points
    POST   /api/guests/{id}/loyalty/free-night Convert points to a free night

  Bookings:
    POST   /api/bookings                   Create booking
    GET    /api/bookings/{id}              Booking details
    DELETE /api/bookings/{id}              Cancel booking
    POST   /api/bookings/{id}/invoice      Generate/recompute invoice
    POST   /api/bookings/{id}/services     Request an ancillary service
    POST   /api/bookings/{id}/payments     Charge the invoice total
    GET    /api/bookings/{id}/payments     Payment records

  Feedback:
    POST   /api/feedback                   Submit feedback
    GET    /api/feedback                   List feedback

ERROR HANDLING:
  Domain errors map onto HTTP status:
  - 400: InvalidArgument, InsufficientBalance, UnsupportedMethod, InvalidState
  - 404: Missing room/guest/booking
  - 409: RoomUnavailable
  - 500: Everything else

SECURITY NOTE:
  No authentication middleware. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/royalstay/ledger/hotel"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds the ledger all endpoints delegate to.
type Handler struct {
	Ledger *hotel.Ledger
}

func NewHandler(ledger *hotel.Ledger) *Handler {
	return &Handler{Ledger: ledger}
}

// =============================================================================
// ROOM HANDLERS
// =============================================================================

// SearchRooms returns available rooms, optionally filtered by category.
func (h *Handler) SearchRooms(w http.ResponseWriter, r *http.Request) {
	var category *hotel.RoomCategory
	if c := r.URL.Query().Get("category"); c != "" {
		cat := hotel.RoomCategory(c)
		category = &cat
	}

	rooms := h.Ledger.SearchRooms(category)
	dtos := make([]RoomDTO, len(rooms))
	for i, room := range rooms {
		dtos[i] = toRoomDTO(room)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetRoom returns a single room.
func (h *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.Ledger.Room(hotel.RoomID(chi.URLParam(r, "id")))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRoomDTO(room))
}

// =============================================================================
// GUEST HANDLERS
// =============================================================================

// RegisterGuest adds a guest to the directory.
func (h *Handler) RegisterGuest(w http.ResponseWriter, r *http.Request) {
	var req RegisterGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	guest, err := h.Ledger.RegisterGuest(req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGuestDTO(guest))
}

// GetGuest returns guest details with loyalty status and history.
func (h *Handler) GetGuest(w http.ResponseWriter, r *http.Request) {
	guest, err := h.Ledger.FindGuest(hotel.GuestID(chi.URLParam(r, "id")))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGuestDTO(guest))
}

// EnrollLoyalty enrolls the guest; repeat calls return the same account.
func (h *Handler) EnrollLoyalty(w http.ResponseWriter, r *http.Request) {
	guest, err := h.Ledger.FindGuest(hotel.GuestID(chi.URLParam(r, "id")))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	acct := guest.EnrollLoyalty()
	writeJSON(w, http.StatusOK, LoyaltyDTO{
		Points:           acct.Points(),
		Tier:             string(acct.Tier()),
		FreeNightsEarned: acct.FreeNightsEarned(),
	})
}

// AddPoints credits loyalty points.
func (h *Handler) AddPoints(w http.ResponseWriter, r *http.Request) {
	h.mutatePoints(w, r, func(acct *hotel.LoyaltyAccount, n int) error {
		return acct.AddPoints(n)
	})
}

// RedeemPoints debits loyalty points.
func (h *Handler) RedeemPoints(w http.ResponseWriter, r *http.Request) {
	h.mutatePoints(w, r, func(acct *hotel.LoyaltyAccount, n int) error {
		return acct.RedeemPoints(n)
	})
}

func (h *Handler) mutatePoints(w http.ResponseWriter, r *http.Request, op func(*hotel.LoyaltyAccount, int) error) {
	guest, err := h.Ledger.FindGuest(hotel.GuestID(chi.URLParam(r, "id")))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	acct := guest.Loyalty()
	if acct == nil {
		writeError(w, http.StatusBadRequest, "Guest is not enrolled in the loyalty program", nil)
		return
	}

	var req PointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := op(acct, req.Points); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, LoyaltyDTO{
		Points:           acct.Points(),
		Tier:             string(acct.Tier()),
		FreeNightsEarned: acct.FreeNightsEarned(),
	})
}

// EarnFreeNight converts 200 points into a free night. The negative
// outcome (not enough points) is reported in the body, not as an error.
func (h *Handler) EarnFreeNight(w http.ResponseWriter, r *http.Request) {
	guest, err := h.Ledger.FindGuest(hotel.GuestID(chi.URLParam(r, "id")))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	acct := guest.Loyalty()
	if acct == nil {
		writeError(w, http.StatusBadRequest, "Guest is not enrolled in the loyalty program", nil)
		return
	}

	earned := acct.EarnFreeNight()
	writeJSON(w, http.StatusOK, map[string]any{
		"earned": earned,
		"loyalty": LoyaltyDTO{
			Points:           acct.Points(),
			Tier:             string(acct.Tier()),
			FreeNightsEarned: acct.FreeNightsEarned(),
		},
	})
}

// =============================================================================
// BOOKING HANDLERS
// =============================================================================

// CreateBooking books a room for a guest.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid check_in date", err)
		return
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid check_out date", err)
		return
	}

	booking, err := h.Ledger.CreateBooking(
		hotel.GuestID(req.GuestID), hotel.RoomID(req.RoomID), checkIn, checkOut)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBookingDTO(booking))
}

// GetBooking returns booking details.
func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.Ledger.Booking(hotel.BookingID(chi.URLParam(r, "id")))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingDTO(booking))
}

// CancelBooking cancels a booking and frees its room. Idempotent.
func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	if err := h.Ledger.CancelBooking(hotel.BookingID(chi.URLParam(r, "id"))); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GenerateInvoice returns the booking's invoice, recomputed from
// current state.
func (h *Handler) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	inv, err := h.Ledger.GenerateInvoice(hotel.BookingID(chi.URLParam(r, "id")))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toInvoiceDTO(inv))
}

// RequestService adds an ancillary service to the booking.
func (h *Handler) RequestService(w http.ResponseWriter, r *http.Request) {
	var req ServiceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	svc, err := h.Ledger.RequestService(hotel.BookingID(chi.URLParam(r, "id")), hotel.ServiceRequest{
		Kind:         hotel.ServiceKind(req.Kind),
		Housekeeping: hotel.HousekeepingType(req.Housekeeping),
		Items:        req.Items,
		Vehicle:      hotel.VehicleType(req.Vehicle),
		Destination:  req.Destination,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toServiceDTO(svc))
}

// RequestPayment charges the invoice total through the requested method.
func (h *Handler) RequestPayment(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	rec, err := h.Ledger.RequestPayment(
		hotel.BookingID(chi.URLParam(r, "id")),
		hotel.PaymentMethod(req.Method),
		hotel.PaymentDetails{
			CardNumber:  req.CardNumber,
			CardHolder:  req.CardHolder,
			ExpiryDate:  req.ExpiryDate,
			CVV:         req.CVV,
			WalletType:  req.WalletType,
			PhoneNumber: req.PhoneNumber,
		})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPaymentDTO(rec))
}

// ListPayments returns payment records for a booking.
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	id := hotel.BookingID(chi.URLParam(r, "id"))
	if _, err := h.Ledger.Booking(id); err != nil {
		writeDomainError(w, err)
		return
	}
	records := h.Ledger.Payments(id)
	dtos := make([]PaymentDTO, len(records))
	for i, rec := range records {
		dtos[i] = toPaymentDTO(rec)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// FEEDBACK HANDLERS
// =============================================================================

// SubmitFeedback records a rated comment from a guest.
func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var stayDate hotel.Date
	if req.StayDate != "" {
		var err error
		stayDate, err = parseDate(req.StayDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid stay_date", err)
			return
		}
	}

	fb, err := h.Ledger.SubmitFeedback(hotel.GuestID(req.GuestID), req.Rating, req.Comment, stayDate)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFeedbackDTO(fb))
}

// ListFeedback returns all submitted feedback.
func (h *Handler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	feedback := h.Ledger.Feedback()
	dtos := make([]FeedbackDTO, len(feedback))
	for i, fb := range feedback {
		dtos[i] = toFeedbackDTO(fb)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// HELPERS
// =============================================================================

func parseDate(s string) (hotel.Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return hotel.Date{}, err
	}
	return hotel.DateOf(t), nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case hotel.IsNotFound(err):
		writeError(w, http.StatusNotFound, "Not found", err)
	case errors.Is(err, hotel.ErrRoomUnavailable):
		writeError(w, http.StatusConflict, "Room unavailable", err)
	case hotel.IsClientError(err):
		writeError(w, http.StatusBadRequest, "Request rejected", err)
	default:
		writeError(w, http.StatusInternalServerError, "Internal error", err)
	}
}
