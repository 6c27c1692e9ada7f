package dto

type ContactForm struct {
	Name    string `validate:"required,max=100"`
	Email   string `validate:"required,email"`
	Subject string `validate:"required,max=200"`
	Message string `validate:"required"`
}

type ConfirmDonationRequestDTO struct {
	Amount string `json:"amount" example:"500"`
	UTR    string `json:"utr" example:"412345678901"`
	Name   string `json:"name" example:"Asha"`
	Email  string `json:"email" validate:"omitempty,email" example:"asha@example.com"`
}

type ConfirmDonationResponseDTO struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"Receipt sent!"`
}
