// Package export renders the transaction ledger as CSV and XLSX downloads.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/GlebRadaev/bloodbank/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	DateLayout = "2006-01-02 15:04:05"

	CSVFilename  = "transactions_export.csv"
	XLSXFilename = "transactions_export.xlsx"
)

var Header = []string{
	"Invoice ID",
	"Patient Name",
	"Hospital Name",
	"Blood Group",
	"Units",
	"Total Amount (INR)",
	"Payment Status",
	"UTR Number",
	"Date",
}

func Row(t domain.Transaction) []string {
	return []string{
		strconv.Itoa(t.ID),
		t.PatientName,
		t.HospitalName,
		t.BloodGroup,
		strconv.Itoa(t.Units),
		decimal.NewFromFloat(t.TotalAmount).StringFixed(2),
		t.PaymentStatus,
		t.UTR(),
		t.Date.Format(DateLayout),
	}
}

// WriteCSV writes the header and one record per transaction, in the order given.
func WriteCSV(w io.Writer, transactions []domain.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, t := range transactions {
		if err := cw.Write(Row(t)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
