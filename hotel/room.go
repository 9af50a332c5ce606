/*
room.go - Rooms and room categories

PURPOSE:
  A Room is an availability flag plus a nightly rate. Categories
  (Standard/Deluxe/Suite) differ only in their fixed amenity set and
  occupancy metadata, fixed at construction from a category table.

INVARIANT:
  The available flag is the single source of truth for bookability and
  is mutated only by the Ledger (markUnavailable/markAvailable are
  unexported). Room itself does not guard against double-booking; the
  Ledger's critical section does.

SEE ALSO:
  - ledger.go: CreateBooking / CancelBooking flip availability
*/
package hotel

// =============================================================================
// ROOM CATEGORY - Tagged variant with fixed metadata per category
// =============================================================================

type RoomCategory string

const (
	CategoryStandard RoomCategory = "Standard"
	CategoryDeluxe   RoomCategory = "Deluxe"
	CategorySuite    RoomCategory = "Suite"
)

// categorySpec fixes the amenity list and occupancy metadata for a
// category. Immutable after construction; rooms never override it.
type categorySpec struct {
	Amenities       []string
	MaxOccupancy    int
	HasBalcony      bool
	SeparateBedroom bool
}

var categorySpecs = map[RoomCategory]categorySpec{
	CategoryStandard: {
		Amenities:    []string{"Wi-Fi", "Television", "Air Conditioning"},
		MaxOccupancy: 2,
	},
	CategoryDeluxe: {
		Amenities:    []string{"Wi-Fi", "Television", "Air Conditioning", "Mini-Bar", "Coffee Maker"},
		MaxOccupancy: 4,
		HasBalcony:   true,
	},
	CategorySuite: {
		Amenities: []string{"Wi-Fi", "Television", "Air Conditioning", "Mini-Bar",
			"Coffee Maker", "Jacuzzi", "Living Area"},
		MaxOccupancy:    6,
		HasBalcony:      true,
		SeparateBedroom: true,
	},
}

// =============================================================================
// ROOM
// =============================================================================

type Room struct {
	ID          RoomID
	Category    RoomCategory
	NightlyRate Money

	available bool
}

// NewRoom constructs an available room. The category must be one of the
// known categories and the nightly rate must not be negative.
func NewRoom(id RoomID, category RoomCategory, nightlyRate Money) (*Room, error) {
	if id == "" {
		return nil, &ArgumentError{Field: "room id", Reason: "must not be empty"}
	}
	if _, ok := categorySpecs[category]; !ok {
		return nil, &ArgumentError{Field: "room category", Reason: "unknown category " + string(category)}
	}
	if nightlyRate.IsNegative() {
		return nil, &ArgumentError{Field: "nightly rate", Reason: "must not be negative"}
	}
	return &Room{
		ID:          id,
		Category:    category,
		NightlyRate: nightlyRate,
		available:   true,
	}, nil
}

func (r *Room) Available() bool { return r.available }

// Amenities returns a copy of the category's fixed amenity list.
func (r *Room) Amenities() []string {
	spec := categorySpecs[r.Category]
	out := make([]string, len(spec.Amenities))
	copy(out, spec.Amenities)
	return out
}

func (r *Room) MaxOccupancy() int     { return categorySpecs[r.Category].MaxOccupancy }
func (r *Room) HasBalcony() bool      { return categorySpecs[r.Category].HasBalcony }
func (r *Room) SeparateBedroom() bool { return categorySpecs[r.Category].SeparateBedroom }

// Availability mutation is reserved for the Ledger.
func (r *Room) markUnavailable() { r.available = false }
func (r *Room) markAvailable()   { r.available = true }
