// Package payment builds UPI payment links and their QR codes.
package payment

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

const (
	PayeeName = "Krishna Verma"
	Currency  = "INR"
	QRSize    = 256
)

var ErrInvalidAmount = errors.New("amount must be a positive number")

// ParseAmount accepts a positive decimal such as "250" or "99.5".
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

func UPIURI(upiID string, amount decimal.Decimal) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%s&cu=%s",
		upiID, url.PathEscape(PayeeName), amount.StringFixed(2), Currency)
}

// QR renders the UPI link for amount as a PNG.
func QR(upiID, rawAmount string) ([]byte, error) {
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(UPIURI(upiID, amount), qrcode.Medium, QRSize)
}
