/*
payment.go - Payment records and method variants

PURPOSE:
  A PaymentRecord is the result of charging an invoice total through
  the external payment capability. The core never mutates a record
  after the gateway returns it; Pending -> Completed is the gateway's
  transition to make.

METHODS:
  credit | debit | mobile, modeled as a tagged method plus a details
  struct rather than a subclass per method. Unrecognized method strings
  fail dispatch with UnsupportedMethod.

SEE ALSO:
  - ports.go: PaymentGateway capability interface
  - ledger.go: RequestPayment dispatch
*/
package hotel

// =============================================================================
// METHODS
// =============================================================================

type PaymentMethod string

const (
	MethodCredit PaymentMethod = "credit"
	MethodDebit  PaymentMethod = "debit"
	MethodMobile PaymentMethod = "mobile"
)

// PaymentDetails carries method-specific fields. Card fields apply to
// credit/debit; wallet fields to mobile.
type PaymentDetails struct {
	CardNumber string
	CardHolder string
	ExpiryDate string
	CVV        string

	WalletType  string
	PhoneNumber string
}

// =============================================================================
// PAYMENT RECORD
// =============================================================================

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
)

type PaymentRecord struct {
	Amount        Money
	Date          Date
	Method        PaymentMethod
	Status        PaymentStatus
	TransactionID string

	// Retained method detail; card numbers are stored masked.
	CardHolder  string
	MaskedCard  string
	WalletType  string
	PhoneNumber string
}

// MaskCard keeps only the last four digits of a card number.
func MaskCard(number string) string {
	if len(number) <= 4 {
		return number
	}
	return "**** **** **** " + number[len(number)-4:]
}
