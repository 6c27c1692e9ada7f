package dto

type DonorForm struct {
	Name       string `validate:"required,max=100"`
	BloodGroup string `validate:"required,bloodgroup"`
	Phone      string `validate:"required,max=20"`
}
