/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types
  decouple the internal domain model from the external API contract,
  allowing field renaming and version evolution without touching the
  engine.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers and the ledger, not in DTOs. DTOs are
  pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"time"

	"github.com/royalstay/ledger/hotel"
)

// =============================================================================
// ROOMS
// =============================================================================

type RoomDTO struct {
	ID              string   `json:"id"`
	Category        string   `json:"category"`
	NightlyRate     string   `json:"nightly_rate"`
	Available       bool     `json:"available"`
	Amenities       []string `json:"amenities"`
	MaxOccupancy    int      `json:"max_occupancy"`
	HasBalcony      bool     `json:"has_balcony"`
	SeparateBedroom bool     `json:"separate_bedroom"`
}

func toRoomDTO(r *hotel.Room) RoomDTO {
	return RoomDTO{
		ID:              string(r.ID),
		Category:        string(r.Category),
		NightlyRate:     r.NightlyRate.String(),
		Available:       r.Available(),
		Amenities:       r.Amenities(),
		MaxOccupancy:    r.MaxOccupancy(),
		HasBalcony:      r.HasBalcony(),
		SeparateBedroom: r.SeparateBedroom(),
	}
}

// =============================================================================
// GUESTS & LOYALTY
// =============================================================================

type GuestDTO struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address,omitempty"`
	RegisteredAt string      `json:"registered_at"`
	Loyalty      *LoyaltyDTO `json:"loyalty,omitempty"`
	Bookings     []string    `json:"bookings"`
}

type LoyaltyDTO struct {
	Points           int    `json:"points"`
	Tier             string `json:"tier"`
	FreeNightsEarned int    `json:"free_nights_earned"`
}

func toGuestDTO(g *hotel.Guest) GuestDTO {
	dto := GuestDTO{
		ID:           string(g.ID),
		Name:         g.Name,
		Email:        g.Email,
		Phone:        g.Phone,
		Address:      g.Address,
		RegisteredAt: g.RegisteredAt.Format(time.RFC3339),
		Bookings:     []string{},
	}
	for _, id := range g.Bookings() {
		dto.Bookings = append(dto.Bookings, string(id))
	}
	if acct := g.Loyalty(); acct != nil {
		dto.Loyalty = &LoyaltyDTO{
			Points:           acct.Points(),
			Tier:             string(acct.Tier()),
			FreeNightsEarned: acct.FreeNightsEarned(),
		}
	}
	return dto
}

type RegisterGuestRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

type PointsRequest struct {
	Points int `json:"points"`
}

// =============================================================================
// BOOKINGS
// =============================================================================

type BookingDTO struct {
	ID        string       `json:"id"`
	GuestID   string       `json:"guest_id"`
	RoomID    string       `json:"room_id"`
	CheckIn   string       `json:"check_in"`
	CheckOut  string       `json:"check_out"`
	CreatedOn string       `json:"created_on"`
	Status    string       `json:"status"`
	Nights    int          `json:"nights"`
	Services  []ServiceDTO `json:"services"`
}

func toBookingDTO(b *hotel.Booking) BookingDTO {
	dto := BookingDTO{
		ID:        string(b.ID),
		GuestID:   string(b.GuestID),
		RoomID:    string(b.RoomID),
		CheckIn:   b.CheckIn.String(),
		CheckOut:  b.CheckOut.String(),
		CreatedOn: b.CreatedOn.String(),
		Status:    string(b.Status()),
		Nights:    b.Nights(),
		Services:  []ServiceDTO{},
	}
	for _, svc := range b.Services() {
		dto.Services = append(dto.Services, toServiceDTO(svc))
	}
	return dto
}

type CreateBookingRequest struct {
	GuestID  string `json:"guest_id"`
	RoomID   string `json:"room_id"`
	CheckIn  string `json:"check_in"`  // 2006-01-02
	CheckOut string `json:"check_out"` // 2006-01-02
}

// =============================================================================
// SERVICES
// =============================================================================

type ServiceDTO struct {
	Kind        string   `json:"kind"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Status      string   `json:"status"`
	RequestedAt string   `json:"requested_at"`
	Items       []string `json:"items,omitempty"`
	Vehicle     string   `json:"vehicle,omitempty"`
	Destination string   `json:"destination,omitempty"`
}

func toServiceDTO(s *hotel.ServiceCharge) ServiceDTO {
	return ServiceDTO{
		Kind:        string(s.Kind),
		Description: s.Description,
		Price:       s.Price.String(),
		Status:      string(s.Status()),
		RequestedAt: s.RequestedAt.Format(time.RFC3339),
		Items:       s.Items,
		Vehicle:     string(s.Vehicle),
		Destination: s.Destination,
	}
}

type ServiceRequestDTO struct {
	Kind         string   `json:"kind"` // housekeeping | roomservice | transportation
	Housekeeping string   `json:"housekeeping_type,omitempty"`
	Items        []string `json:"items,omitempty"`
	Vehicle      string   `json:"vehicle,omitempty"`
	Destination  string   `json:"destination,omitempty"`
}

// =============================================================================
// INVOICES
// =============================================================================

type InvoiceDTO struct {
	Number    string        `json:"number"`
	BookingID string        `json:"booking_id"`
	IssuedOn  string        `json:"issued_on"`
	LineItems []LineItemDTO `json:"line_items"`
	Total     string        `json:"total"`
}

type LineItemDTO struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

func toInvoiceDTO(inv *hotel.Invoice) InvoiceDTO {
	dto := InvoiceDTO{
		Number:    inv.Number,
		BookingID: string(inv.BookingID),
		IssuedOn:  inv.IssuedOn.String(),
		LineItems: []LineItemDTO{},
		Total:     inv.Total().String(),
	}
	for _, item := range inv.LineItems() {
		dto.LineItems = append(dto.LineItems, LineItemDTO{
			Description: item.Description,
			Amount:      item.Amount.String(),
		})
	}
	return dto
}

// =============================================================================
// PAYMENTS
// =============================================================================

type PaymentDTO struct {
	Amount        string `json:"amount"`
	Date          string `json:"date"`
	Method        string `json:"method"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
	CardHolder    string `json:"card_holder,omitempty"`
	MaskedCard    string `json:"masked_card,omitempty"`
	WalletType    string `json:"wallet_type,omitempty"`
	PhoneNumber   string `json:"phone_number,omitempty"`
}

func toPaymentDTO(rec *hotel.PaymentRecord) PaymentDTO {
	return PaymentDTO{
		Amount:        rec.Amount.String(),
		Date:          rec.Date.String(),
		Method:        string(rec.Method),
		Status:        string(rec.Status),
		TransactionID: rec.TransactionID,
		CardHolder:    rec.CardHolder,
		MaskedCard:    rec.MaskedCard,
		WalletType:    rec.WalletType,
		PhoneNumber:   rec.PhoneNumber,
	}
}

type PaymentRequest struct {
	Method      string `json:"method"` // credit | debit | mobile
	CardNumber  string `json:"card_number,omitempty"`
	CardHolder  string `json:"card_holder,omitempty"`
	ExpiryDate  string `json:"expiry_date,omitempty"`
	CVV         string `json:"cvv,omitempty"`
	WalletType  string `json:"wallet_type,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// =============================================================================
// FEEDBACK
// =============================================================================

type FeedbackDTO struct {
	ID          string `json:"id"`
	GuestID     string `json:"guest_id"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	SubmittedOn string `json:"submitted_on"`
	StayDate    string `json:"stay_date"`
	Response    string `json:"response,omitempty"`
}

func toFeedbackDTO(fb *hotel.Feedback) FeedbackDTO {
	return FeedbackDTO{
		ID:          string(fb.ID),
		GuestID:     string(fb.GuestID),
		Rating:      fb.Rating,
		Comment:     fb.Comment,
		SubmittedOn: fb.SubmittedOn.String(),
		StayDate:    fb.StayDate.String(),
		Response:    fb.Response(),
	}
}

type FeedbackRequest struct {
	GuestID  string `json:"guest_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	StayDate string `json:"stay_date,omitempty"` // 2006-01-02
}

// =============================================================================
// ERRORS
// =============================================================================

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
