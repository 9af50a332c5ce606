/*
service.go - Ancillary service charges and their pricing rules

PURPOSE:
  A ServiceCharge is a priced ancillary request (housekeeping, room
  service, transportation) attached to a booking. Price is fixed once
  at construction from a kind-specific rate table and never changes.

PRICING TABLE:
  Housekeeping:   Standard 0.00 | Deep 25.00 | Eco 15.00
  RoomService:    itemCount x 12.50 (an empty order prices at 0.00)
  Transportation: Sedan 35.00 | SUV 50.00 | Limo 100.00

  An unrecognized housekeeping type or vehicle type is rejected with
  InvalidArgument rather than priced at zero.

STATUS:
  Pending -> Completed only; terminal.

SEE ALSO:
  - booking.go: Charges are owned by a booking in insertion order
  - invoice.go: One line item per charge, sign preserved
*/
package hotel

import (
	"fmt"
	"time"
)

// =============================================================================
// KINDS AND STATUS
// =============================================================================

type ServiceKind string

const (
	ServiceHousekeeping   ServiceKind = "housekeeping"
	ServiceRoomService    ServiceKind = "roomservice"
	ServiceTransportation ServiceKind = "transportation"
)

type ServiceStatus string

const (
	ServicePending   ServiceStatus = "Pending"
	ServiceCompleted ServiceStatus = "Completed"
)

type HousekeepingType string

const (
	HousekeepingStandard HousekeepingType = "Standard"
	HousekeepingDeep     HousekeepingType = "Deep"
	HousekeepingEco      HousekeepingType = "Eco"
)

type VehicleType string

const (
	VehicleSedan VehicleType = "Sedan"
	VehicleSUV   VehicleType = "SUV"
	VehicleLimo  VehicleType = "Limo"
)

// =============================================================================
// RATE TABLES - Evaluated once at construction
// =============================================================================

var housekeepingRates = map[HousekeepingType]Money{
	HousekeepingStandard: MustParseMoney("0.00"),
	HousekeepingDeep:     MustParseMoney("25.00"),
	HousekeepingEco:      MustParseMoney("15.00"),
}

var transportationRates = map[VehicleType]Money{
	VehicleSedan: MustParseMoney("35.00"),
	VehicleSUV:   MustParseMoney("50.00"),
	VehicleLimo:  MustParseMoney("100.00"),
}

var roomServiceItemRate = MustParseMoney("12.50")

// =============================================================================
// SERVICE CHARGE - Tagged variant carrying kind-specific payload
// =============================================================================

type ServiceCharge struct {
	RequestedAt time.Time
	RoomID      RoomID
	Kind        ServiceKind
	Description string
	Price       Money

	// Kind-specific payload; only the fields for Kind are set.
	HousekeepingType HousekeepingType
	Items            []string
	Vehicle          VehicleType
	Destination      string

	status ServiceStatus
}

// NewHousekeeping prices a cleaning request from the housekeeping table.
func NewHousekeeping(requestedAt time.Time, roomID RoomID, hkType HousekeepingType) (*ServiceCharge, error) {
	price, ok := housekeepingRates[hkType]
	if !ok {
		return nil, &ArgumentError{Field: "housekeeping type", Reason: "unknown type " + string(hkType)}
	}
	return &ServiceCharge{
		RequestedAt:      requestedAt,
		RoomID:           roomID,
		Kind:             ServiceHousekeeping,
		Description:      fmt.Sprintf("%s Cleaning", hkType),
		Price:            price,
		HousekeepingType: hkType,
		status:           ServicePending,
	}, nil
}

// NewRoomService prices an order at a flat per-item rate. An empty
// order is allowed and prices at zero.
func NewRoomService(requestedAt time.Time, roomID RoomID, items []string) (*ServiceCharge, error) {
	ordered := make([]string, len(items))
	copy(ordered, items)
	return &ServiceCharge{
		RequestedAt: requestedAt,
		RoomID:      roomID,
		Kind:        ServiceRoomService,
		Description: "Room Service Order",
		Price:       roomServiceItemRate.MulInt(len(ordered)),
		Items:       ordered,
		status:      ServicePending,
	}, nil
}

// NewTransportation prices a ride from the vehicle table.
func NewTransportation(requestedAt time.Time, roomID RoomID, vehicle VehicleType, destination string) (*ServiceCharge, error) {
	price, ok := transportationRates[vehicle]
	if !ok {
		return nil, &ArgumentError{Field: "vehicle type", Reason: "unknown type " + string(vehicle)}
	}
	return &ServiceCharge{
		RequestedAt: requestedAt,
		RoomID:      roomID,
		Kind:        ServiceTransportation,
		Description: fmt.Sprintf("%s to %s", vehicle, destination),
		Price:       price,
		Vehicle:     vehicle,
		Destination: destination,
		status:      ServicePending,
	}, nil
}

func (s *ServiceCharge) Status() ServiceStatus { return s.status }

// Complete marks the service as done. Terminal; completing twice is a no-op.
func (s *ServiceCharge) Complete() { s.status = ServiceCompleted }
