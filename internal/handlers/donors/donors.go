package donors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/GlebRadaev/bloodbank/internal/domain"
	"github.com/GlebRadaev/bloodbank/internal/dto"
	"github.com/GlebRadaev/bloodbank/internal/service/donorservice"
	"github.com/GlebRadaev/bloodbank/internal/web"
	"github.com/GlebRadaev/bloodbank/pkg/validate"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=donors.go -destination=mock_donors.go -package=donors

type Service interface {
	AddDonor(ctx context.Context, name, bloodGroup, phone string) (*domain.Donor, error)
	RecordDonation(ctx context.Context, donorID int) (*domain.Donor, error)
	DeleteDonor(ctx context.Context, donorID int) error
	ListDonors(ctx context.Context) ([]domain.Donor, error)
}

type DonorHandler struct {
	donorService Service
	view         *web.View
}

func New(donorService Service, view *web.View) *DonorHandler {
	return &DonorHandler{
		donorService: donorService,
		view:         view,
	}
}

func donorID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil && id > 0
}

func (h *DonorHandler) AddDonorPage(w http.ResponseWriter, r *http.Request) {
	donors, err := h.donorService.ListDonors(r.Context())
	if err != nil {
		h.view.ServerError(w, r, err)
		return
	}
	h.view.Render(w, r, http.StatusOK, "add_donor", "Add Donor", donors)
}

func (h *DonorHandler) AddDonor(w http.ResponseWriter, r *http.Request) {
	form := dto.DonorForm{
		Name:       strings.TrimSpace(r.PostFormValue("name")),
		BloodGroup: r.PostFormValue("blood_group"),
		Phone:      strings.TrimSpace(r.PostFormValue("phone")),
	}
	if err := validate.Struct(form); err != nil {
		h.view.Flash(w, r, "danger", err.Error())
		h.view.Redirect(w, r, "/add_donor")
		return
	}

	if _, err := h.donorService.AddDonor(r.Context(), form.Name, form.BloodGroup, form.Phone); err != nil {
		h.view.ServerError(w, r, err)
		return
	}
	h.view.Flash(w, r, "success", "Donor added!")
	h.view.Redirect(w, r, "/dashboard")
}

// Donate records one unit from the donor. Unknown donors are ignored.
func (h *DonorHandler) Donate(w http.ResponseWriter, r *http.Request) {
	id, ok := donorID(r)
	if !ok {
		h.view.Redirect(w, r, "/dashboard")
		return
	}

	donor, err := h.donorService.RecordDonation(r.Context(), id)
	if err != nil {
		h.view.ServerError(w, r, err)
		return
	}
	if donor != nil {
		h.view.Flash(w, r, "success", fmt.Sprintf("Thank you %s! Stock updated.", donor.Name))
	}
	h.view.Redirect(w, r, "/dashboard")
}

func (h *DonorHandler) DeleteDonor(w http.ResponseWriter, r *http.Request) {
	id, ok := donorID(r)
	if !ok {
		h.view.NotFound(w, r)
		return
	}

	err := h.donorService.DeleteDonor(r.Context(), id)
	switch {
	case errors.Is(err, donorservice.ErrDonorNotFound):
		h.view.NotFound(w, r)
	case err != nil:
		h.view.ServerError(w, r, err)
	default:
		h.view.Flash(w, r, "info", "Donor deleted.")
		h.view.Redirect(w, r, "/dashboard")
	}
}
