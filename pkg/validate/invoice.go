package validate

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ShiraazMoollatjie/goluhn"
)

var ErrInvalidInvoiceNumber = errors.New("invalid invoice number")

// InvoiceNumber zero-pads the transaction id and appends a Luhn check digit.
func InvoiceNumber(id int) string {
	_, full, err := goluhn.Calculate(fmt.Sprintf("%06d", id))
	if err != nil {
		return ""
	}
	return full
}

func IsLuhn(s string) bool {
	return goluhn.Validate(s) == nil
}

// ParseInvoiceNumber returns the transaction id behind an invoice number.
func ParseInvoiceNumber(s string) (int, error) {
	if len(s) < 2 || !IsLuhn(s) {
		return 0, ErrInvalidInvoiceNumber
	}
	id, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || id <= 0 {
		return 0, ErrInvalidInvoiceNumber
	}
	return id, nil
}
