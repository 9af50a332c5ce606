/*
Package gateway provides in-process implementations of the payment
capability the booking ledger depends on.

PURPOSE:
  One gateway per payment method: credit card, debit card, mobile
  wallet. Each validates its method-specific fields, then returns a
  completed payment record carrying a transaction ID with the method's
  prefix (CC- / DC- / MW-). No real processor is contacted; these stand
  in for the external collaborator behind hotel.PaymentGateway.

VALIDATION:
  Card methods require number, holder, expiry, and CVV. The wallet
  method requires wallet type and phone number. Missing fields fail
  with InvalidArgument and produce no record.

RECORDS:
  Returned records are already Completed. The core never mutates them
  afterward; card numbers are retained masked to the last four digits.

SEE ALSO:
  - hotel/ports.go: The PaymentGateway interface
  - hotel/ledger.go: RequestPayment dispatch by method
*/
package gateway

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/royalstay/ledger/hotel"
)

// =============================================================================
// CREDIT CARD
// =============================================================================

type CreditCard struct{}

var _ hotel.PaymentGateway = CreditCard{}

func (CreditCard) Charge(amount hotel.Money, date hotel.Date, details hotel.PaymentDetails) (*hotel.PaymentRecord, error) {
	if err := validateCard(details); err != nil {
		return nil, err
	}
	return &hotel.PaymentRecord{
		Amount:        amount,
		Date:          date,
		Method:        hotel.MethodCredit,
		Status:        hotel.PaymentCompleted,
		TransactionID: transactionID("CC", date),
		CardHolder:    details.CardHolder,
		MaskedCard:    hotel.MaskCard(details.CardNumber),
	}, nil
}

// =============================================================================
// DEBIT CARD
// =============================================================================

type DebitCard struct{}

var _ hotel.PaymentGateway = DebitCard{}

func (DebitCard) Charge(amount hotel.Money, date hotel.Date, details hotel.PaymentDetails) (*hotel.PaymentRecord, error) {
	if err := validateCard(details); err != nil {
		return nil, err
	}
	return &hotel.PaymentRecord{
		Amount:        amount,
		Date:          date,
		Method:        hotel.MethodDebit,
		Status:        hotel.PaymentCompleted,
		TransactionID: transactionID("DC", date),
		CardHolder:    details.CardHolder,
		MaskedCard:    hotel.MaskCard(details.CardNumber),
	}, nil
}

// =============================================================================
// MOBILE WALLET
// =============================================================================

type MobileWallet struct{}

var _ hotel.PaymentGateway = MobileWallet{}

func (MobileWallet) Charge(amount hotel.Money, date hotel.Date, details hotel.PaymentDetails) (*hotel.PaymentRecord, error) {
	if details.WalletType == "" {
		return nil, &hotel.ArgumentError{Field: "wallet type", Reason: "must not be empty"}
	}
	if details.PhoneNumber == "" {
		return nil, &hotel.ArgumentError{Field: "phone number", Reason: "must not be empty"}
	}
	return &hotel.PaymentRecord{
		Amount:        amount,
		Date:          date,
		Method:        hotel.MethodMobile,
		Status:        hotel.PaymentCompleted,
		TransactionID: transactionID("MW", date),
		WalletType:    details.WalletType,
		PhoneNumber:   details.PhoneNumber,
	}, nil
}

// =============================================================================
// WIRING
// =============================================================================

// Options registers all three gateways on a ledger.
func Options() []hotel.Option {
	return []hotel.Option{
		hotel.WithGateway(hotel.MethodCredit, CreditCard{}),
		hotel.WithGateway(hotel.MethodDebit, DebitCard{}),
		hotel.WithGateway(hotel.MethodMobile, MobileWallet{}),
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func validateCard(details hotel.PaymentDetails) error {
	switch {
	case details.CardNumber == "":
		return &hotel.ArgumentError{Field: "card number", Reason: "must not be empty"}
	case details.CardHolder == "":
		return &hotel.ArgumentError{Field: "card holder", Reason: "must not be empty"}
	case details.ExpiryDate == "":
		return &hotel.ArgumentError{Field: "expiry date", Reason: "must not be empty"}
	case details.CVV == "":
		return &hotel.ArgumentError{Field: "cvv", Reason: "must not be empty"}
	}
	return nil
}

func transactionID(prefix string, date hotel.Date) string {
	return fmt.Sprintf("%s-%s-%s", prefix, date.Time.Format("20060102"), uuid.NewString()[:8])
}
