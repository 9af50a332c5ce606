/*
seed.go - Demo data for local development

PURPOSE:
  Loads the sample inventory a fresh instance starts from: six rooms
  across the three categories and three guests, two of them enrolled
  in the loyalty program. Enabled via the SEED config toggle.
*/
package api

import "github.com/royalstay/ledger/hotel"

// SeedSampleData populates the ledger with the demo inventory.
func SeedSampleData(ledger *hotel.Ledger) error {
	rooms := []struct {
		id       hotel.RoomID
		category hotel.RoomCategory
		rate     string
	}{
		{"101", hotel.CategoryStandard, "99.99"},
		{"102", hotel.CategoryStandard, "99.99"},
		{"201", hotel.CategoryDeluxe, "149.99"},
		{"202", hotel.CategoryDeluxe, "149.99"},
		{"301", hotel.CategorySuite, "249.99"},
		{"302", hotel.CategorySuite, "249.99"},
	}
	for _, r := range rooms {
		room, err := hotel.NewRoom(r.id, r.category, hotel.MustParseMoney(r.rate))
		if err != nil {
			return err
		}
		if err := ledger.AddRoom(room); err != nil {
			return err
		}
	}

	guests := []struct {
		name, email, phone string
		points             int
		enroll             bool
	}{
		{"John Doe", "john@example.com", "555-0101", 300, true},
		{"Jane Smith", "jane@example.com", "555-0102", 750, true},
		{"Robert Johnson", "robert@example.com", "555-0103", 0, false},
	}
	for _, g := range guests {
		guest, err := ledger.RegisterGuest(g.name, g.email, g.phone, "")
		if err != nil {
			return err
		}
		if g.enroll {
			if err := guest.EnrollLoyalty().AddPoints(g.points); err != nil {
				return err
			}
		}
	}
	return nil
}
