package domain

import "time"

const (
	DefaultProfileImage = "default.svg"

	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
)

// BloodGroups lists the groups accepted by forms and the issuance API.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

type User struct {
	ID           int       `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FullName     string    `db:"full_name"`
	Bio          string    `db:"bio"`
	BloodGroup   *string   `db:"blood_group"`
	ProfileImage string    `db:"profile_image"`
	CreatedAt    time.Time `db:"created_at"`
}

// DisplayName falls back to the username when no full name was given.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

type Donor struct {
	ID               int        `db:"id"`
	Name             string     `db:"name"`
	BloodGroup       string     `db:"blood_group"`
	Phone            string     `db:"phone"`
	LastDonationDate *time.Time `db:"last_donation_date"`
}

type BloodStock struct {
	ID         int    `db:"id"`
	BloodGroup string `db:"blood_group"`
	Units      int    `db:"units"`
}

// Transaction is an append-only ledger entry written by blood issuance.
type Transaction struct {
	ID            int       `db:"id"`
	PatientName   string    `db:"patient_name"`
	HospitalName  string    `db:"hospital_name"`
	BloodGroup    string    `db:"blood_group"`
	Units         int       `db:"units"`
	TotalAmount   float64   `db:"total_amount"`
	Date          time.Time `db:"date"`
	PaymentStatus string    `db:"payment_status"`
	UTRNumber     *string   `db:"utr_number"`
}

func (t *Transaction) UTR() string {
	if t.UTRNumber == nil {
		return ""
	}
	return *t.UTRNumber
}
