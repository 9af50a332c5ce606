/*
Package sqlite provides a SQLite-backed implementation of the ledger's
Archive capability.

PURPOSE:
  Persistence of the core entity graph is an external collaborator's
  concern; the core stays a pure in-memory graph. What this package
  persists is the operational record around it: issued invoices with
  their line-item breakdown, completed payments, and guest feedback.

KEY TABLES:
  invoices:      One row per invoice number, latest recompute wins
  invoice_lines: Ordered breakdown per invoice
  payments:      One row per completed transaction, never updated
  feedback:      One row per submission, never updated

RECOMPUTE SEMANTICS:
  An invoice is re-derived in full every time it goes stale, so the
  archive upserts the invoice row and rewrites its lines inside one
  SQL transaction. Payments and feedback are append-only.

CONCURRENCY:
  Uses sync.Mutex around writes. SQLite is opened in WAL mode so
  readers don't block the single writer.

USAGE:
  archive, err := sqlite.New("./data/royalstay.db")
  if err != nil {
      log.Fatal(err)
  }
  defer archive.Close()

  ledger := hotel.NewLedger(hotel.WithArchive(archive))

SEE ALSO:
  - hotel/ports.go: Archive interface definition
  - hotel/ledger.go: Where archive writes are triggered
*/
package sqlite

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/royalstay/ledger/hotel"
)

// Archive implements hotel.Archive using SQLite.
type Archive struct {
	db *sql.DB
	mu sync.Mutex
}

var _ hotel.Archive = (*Archive)(nil)

// New creates a SQLite archive at the given path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Archive, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	a := &Archive{db: db}
	if err := a.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return a, nil
}

// Close closes the database connection.
func (a *Archive) Close() error {
	return a.db.Close()
}

func (a *Archive) migrate() error {
	schema := `
	-- Invoices (latest recompute wins; identity is the invoice number)
	CREATE TABLE IF NOT EXISTS invoices (
		number TEXT PRIMARY KEY,
		booking_id TEXT NOT NULL,
		issued_on TEXT NOT NULL,
		total TEXT NOT NULL,
		recorded_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_invoices_booking
		ON invoices(booking_id);

	-- Ordered line-item breakdown, rewritten with each invoice record
	CREATE TABLE IF NOT EXISTS invoice_lines (
		invoice_number TEXT NOT NULL,
		position INTEGER NOT NULL,
		description TEXT NOT NULL,
		amount TEXT NOT NULL,
		PRIMARY KEY (invoice_number, position)
	);

	-- Payments (append-only; records are never mutated after completion)
	CREATE TABLE IF NOT EXISTS payments (
		transaction_id TEXT PRIMARY KEY,
		booking_id TEXT NOT NULL,
		method TEXT NOT NULL,
		amount TEXT NOT NULL,
		paid_on TEXT NOT NULL,
		status TEXT NOT NULL,
		recorded_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_payments_booking
		ON payments(booking_id);

	-- Feedback (append-only)
	CREATE TABLE IF NOT EXISTS feedback (
		id TEXT PRIMARY KEY,
		guest_id TEXT NOT NULL,
		rating INTEGER NOT NULL,
		comment TEXT,
		submitted_on TEXT NOT NULL,
		stay_date TEXT NOT NULL,
		recorded_at TEXT NOT NULL
	);
	`
	_, err := a.db.Exec(schema)
	return err
}

// =============================================================================
// ARCHIVE WRITES
// =============================================================================

// RecordInvoice upserts the invoice and rewrites its breakdown
// atomically, so the archive always holds the latest recompute.
func (a *Archive) RecordInvoice(inv *hotel.Invoice) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	tx, err := a.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO invoices (number, booking_id, issued_on, total, recorded_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(number) DO UPDATE SET total = excluded.total, recorded_at = excluded.recorded_at`,
		inv.Number, string(inv.BookingID), inv.IssuedOn.String(), inv.Total().String(), now())
	if err != nil {
		return fmt.Errorf("upsert invoice: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM invoice_lines WHERE invoice_number = ?`, inv.Number); err != nil {
		return fmt.Errorf("clear lines: %w", err)
	}
	for i, item := range inv.LineItems() {
		_, err := tx.Exec(`
			INSERT INTO invoice_lines (invoice_number, position, description, amount)
			VALUES (?, ?, ?, ?)`,
			inv.Number, i, item.Description, item.Amount.String())
		if err != nil {
			return fmt.Errorf("insert line %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// RecordPayment appends a completed payment.
func (a *Archive) RecordPayment(bookingID hotel.BookingID, rec *hotel.PaymentRecord) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, err := a.db.Exec(`
		INSERT INTO payments (transaction_id, booking_id, method, amount, paid_on, status, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.TransactionID, string(bookingID), string(rec.Method),
		rec.Amount.String(), rec.Date.String(), string(rec.Status), now())
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// RecordFeedback appends a feedback submission.
func (a *Archive) RecordFeedback(fb *hotel.Feedback) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, err := a.db.Exec(`
		INSERT INTO feedback (id, guest_id, rating, comment, submitted_on, stay_date, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(fb.ID), string(fb.GuestID), fb.Rating, fb.Comment,
		fb.SubmittedOn.String(), fb.StayDate.String(), now())
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

// =============================================================================
// READ-BACK QUERIES
// =============================================================================

// ArchivedInvoice is the persisted form of an invoice.
type ArchivedInvoice struct {
	Number    string
	BookingID string
	IssuedOn  string
	Total     string
	Lines     []ArchivedLine
}

type ArchivedLine struct {
	Description string
	Amount      string
}

// LoadInvoice reads an archived invoice with its breakdown.
func (a *Archive) LoadInvoice(number string) (*ArchivedInvoice, error) {
	inv := &ArchivedInvoice{}
	err := a.db.QueryRow(`
		SELECT number, booking_id, issued_on, total FROM invoices WHERE number = ?`, number).
		Scan(&inv.Number, &inv.BookingID, &inv.IssuedOn, &inv.Total)
	if err != nil {
		return nil, fmt.Errorf("load invoice: %w", err)
	}

	rows, err := a.db.Query(`
		SELECT description, amount FROM invoice_lines
		WHERE invoice_number = ? ORDER BY position`, number)
	if err != nil {
		return nil, fmt.Errorf("load lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var line ArchivedLine
		if err := rows.Scan(&line.Description, &line.Amount); err != nil {
			return nil, err
		}
		inv.Lines = append(inv.Lines, line)
	}
	return inv, rows.Err()
}

// CountPayments returns the number of archived payments for a booking.
func (a *Archive) CountPayments(bookingID hotel.BookingID) (int, error) {
	var n int
	err := a.db.QueryRow(`SELECT COUNT(*) FROM payments WHERE booking_id = ?`, string(bookingID)).Scan(&n)
	return n, err
}

// CountFeedback returns the number of archived feedback rows.
func (a *Archive) CountFeedback() (int, error) {
	var n int
	err := a.db.QueryRow(`SELECT COUNT(*) FROM feedback`).Scan(&n)
	return n, err
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
