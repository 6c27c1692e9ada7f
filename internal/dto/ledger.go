package dto

import "encoding/json"

type IssueBloodRequestDTO struct {
	Patient    string      `json:"patient" validate:"required,max=100" example:"Ravi Kumar"`
	Hospital   string      `json:"hospital" validate:"required,max=100" example:"City Hospital"`
	BloodGroup string      `json:"blood_group" validate:"required,bloodgroup" example:"O+"`
	Units      json.Number `json:"units" swaggertype:"integer" example:"2"`
	UTR        string      `json:"utr" validate:"max=50" example:"412345678901"`
}

type IssueBloodResponseDTO struct {
	Status   string `json:"status" example:"success"`
	Redirect string `json:"redirect,omitempty" example:"/transactions"`
	Message  string `json:"message" example:"Blood Issued Successfully"`
}
