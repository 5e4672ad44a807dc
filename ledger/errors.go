package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrOrderNotFound       = errors.New("order not found")

	// ErrProductInactive marks a product that exists but was taken off sale.
	ErrProductInactive = errors.New("product not available for purchase")

	// ErrAlreadyProcessed is returned when an admin action hits a transaction
	// that is no longer pending. Statuses are one-way.
	ErrAlreadyProcessed = errors.New("transaction already processed")

	// ErrGatewayBusy is returned while another deposit holds the collection
	// QR lease. Callers fail fast instead of queuing.
	ErrGatewayBusy = errors.New("payment gateway busy, try again shortly")

	ErrInvalidSignature   = errors.New("invalid webhook signature")
	ErrBankDetailsMissing = errors.New("bank details required before withdrawal")

	// ErrInsufficientBalance is the errors.Is target for
	// InsufficientBalanceError.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// InsufficientBalanceError carries the amounts the caller needs to act on.
type InsufficientBalanceError struct {
	Required  float64
	Available float64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: required %.2f, available %.2f", e.Required, e.Available)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}
