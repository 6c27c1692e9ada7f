package support

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/GlebRadaev/bloodbank/internal/dto"
	"github.com/GlebRadaev/bloodbank/internal/service/supportservice"
	"github.com/GlebRadaev/bloodbank/internal/web"
	"github.com/GlebRadaev/bloodbank/pkg/auth"
	"github.com/GlebRadaev/bloodbank/pkg/payment"
	"github.com/GlebRadaev/bloodbank/pkg/utils"
	"github.com/GlebRadaev/bloodbank/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=support.go -destination=mock_support.go -package=support

type Service interface {
	Contact(ctx context.Context, in supportservice.ContactInput)
	ConfirmDonation(ctx context.Context, userID int, in supportservice.DonationReceipt) (*supportservice.DonationReceipt, error)
}

type SupportHandler struct {
	supportService Service
	view           *web.View
	upiID          string
}

func New(supportService Service, view *web.View, upiID string) *SupportHandler {
	return &SupportHandler{
		supportService: supportService,
		view:           view,
		upiID:          upiID,
	}
}

func (h *SupportHandler) Landing(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, r, http.StatusOK, "landing", "Blood Bank", nil)
}

func (h *SupportHandler) About(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, r, http.StatusOK, "about", "About", nil)
}

func (h *SupportHandler) ContactPage(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, r, http.StatusOK, "contact", "Contact", nil)
}

func (h *SupportHandler) Contact(w http.ResponseWriter, r *http.Request) {
	form := dto.ContactForm{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Subject: strings.TrimSpace(r.PostFormValue("subject")),
		Message: strings.TrimSpace(r.PostFormValue("message")),
	}
	if err := validate.Struct(form); err != nil {
		h.view.Flash(w, r, "danger", err.Error())
		h.view.Redirect(w, r, "/contact")
		return
	}

	h.supportService.Contact(r.Context(), supportservice.ContactInput{
		Name:    form.Name,
		Email:   form.Email,
		Subject: form.Subject,
		Message: form.Message,
	})
	h.view.Flash(w, r, "success", "Message sent successfully! Check your email for confirmation.")
	h.view.Redirect(w, r, "/contact")
}

func (h *SupportHandler) SupportUs(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, r, http.StatusOK, "support_us", "Support Us", nil)
}

// GenerateQR returns a PNG with the UPI payment link for ?amount=.
func (h *SupportHandler) GenerateQR(w http.ResponseWriter, r *http.Request) {
	png, err := payment.QR(h.upiID, r.URL.Query().Get("amount"))
	if errors.Is(err, payment.ErrInvalidAmount) {
		http.Error(w, "Invalid amount", http.StatusBadRequest)
		return
	}
	if err != nil {
		zap.L().Error("can't encode qr", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// ConfirmDonation godoc
//
//	@Summary		Confirm a UPI donation
//	@Description	Email a receipt for a donation paid through the UPI QR code. Blank name and email fall back to the account details.
//	@Tags			Support
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ConfirmDonationRequestDTO	true	"Donation details"
//	@Success		200		{object}	dto.ConfirmDonationResponseDTO	"Receipt sent"
//	@Failure		400		{object}	utils.Response					"Invalid request"
//	@Failure		302		{string}	string							"Not logged in, redirected to /login"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/confirm_donation [post]
func (h *SupportHandler) ConfirmDonation(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var req dto.ConfirmDonationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	_, err := h.supportService.ConfirmDonation(r.Context(), userID, supportservice.DonationReceipt{
		Amount: strings.TrimSpace(req.Amount),
		UTR:    strings.TrimSpace(req.UTR),
		Name:   strings.TrimSpace(req.Name),
		Email:  strings.TrimSpace(req.Email),
	})
	if err != nil {
		zap.L().Error("can't confirm donation", zap.Int("user_id", userID), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ConfirmDonationResponseDTO{
		Status:  utils.StatusSuccess,
		Message: "Receipt sent!",
	})
}
