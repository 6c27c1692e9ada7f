package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/bloodbank/internal/domain"
	"github.com/GlebRadaev/bloodbank/internal/dto"
	"github.com/GlebRadaev/bloodbank/internal/service/ledgerservice"
	"github.com/GlebRadaev/bloodbank/internal/web"
	"github.com/GlebRadaev/bloodbank/pkg/export"
	"github.com/GlebRadaev/bloodbank/pkg/utils"
	"github.com/GlebRadaev/bloodbank/pkg/validate"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=ledger.go -destination=mock_ledger.go -package=ledger

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Service interface {
	IssueBlood(ctx context.Context, in ledgerservice.IssueInput) (*domain.Transaction, error)
	Dashboard(ctx context.Context) (*ledgerservice.Dashboard, error)
	ListStock(ctx context.Context) ([]domain.BloodStock, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	GetTransaction(ctx context.Context, id int) (*domain.Transaction, error)
}

type LedgerHandler struct {
	ledgerService Service
	view          *web.View
}

func New(ledgerService Service, view *web.View) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
		view:          view,
	}
}

func (h *LedgerHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.ledgerService.Dashboard(r.Context())
	if err != nil {
		h.view.ServerError(w, r, err)
		return
	}
	h.view.Render(w, r, http.StatusOK, "dashboard", "Dashboard", dashboard)
}

func (h *LedgerHandler) IssueBloodPage(w http.ResponseWriter, r *http.Request) {
	stock, err := h.ledgerService.ListStock(r.Context())
	if err != nil {
		h.view.ServerError(w, r, err)
		return
	}
	h.view.Render(w, r, http.StatusOK, "issue_blood", "Issue Blood", stock)
}

// IssueBlood godoc
//
//	@Summary		Issue blood units
//	@Description	Take units of one blood group out of stock and record a paid transaction at 500 INR per unit.
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.IssueBloodRequestDTO	true	"Issuance request"
//	@Success		200		{object}	dto.IssueBloodResponseDTO	"Blood issued"
//	@Failure		400		{object}	utils.Response				"Invalid request or insufficient stock"
//	@Failure		302		{string}	string						"Not logged in, redirected to /login"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/issue_blood [post]
func (h *LedgerHandler) IssueBlood(w http.ResponseWriter, r *http.Request) {
	var req dto.IssueBloodRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	units, err := strconv.Atoi(req.Units.String())
	if err != nil || units < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Units must be a whole number of at least 1")
		return
	}

	_, err = h.ledgerService.IssueBlood(r.Context(), ledgerservice.IssueInput{
		Patient:    req.Patient,
		Hospital:   req.Hospital,
		BloodGroup: req.BloodGroup,
		Units:      units,
		UTR:        req.UTR,
	})
	if err != nil {
		var insufficient *ledgerservice.InsufficientStockError
		switch {
		case errors.As(err, &insufficient):
			utils.RespondWithError(w, http.StatusBadRequest, insufficient.Error())
		case errors.Is(err, ledgerservice.ErrInvalidUnits):
			utils.RespondWithError(w, http.StatusBadRequest, "Units must be a whole number of at least 1")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return
	}

	h.view.Flash(w, r, "success", "Blood Issued Successfully")
	utils.RespondWithJSON(w, http.StatusOK, dto.IssueBloodResponseDTO{
		Status:   utils.StatusSuccess,
		Redirect: "/transactions",
		Message:  "Blood Issued Successfully",
	})
}

func (h *LedgerHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.ledgerService.ListTransactions(r.Context())
	if err != nil {
		h.view.ServerError(w, r, err)
		return
	}
	h.view.Render(w, r, http.StatusOK, "transactions", "Transactions", transactions)
}

func (h *LedgerHandler) transaction(w http.ResponseWriter, r *http.Request) (*domain.Transaction, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		h.view.NotFound(w, r)
		return nil, false
	}
	t, err := h.ledgerService.GetTransaction(r.Context(), id)
	switch {
	case errors.Is(err, ledgerservice.ErrTransactionNotFound):
		h.view.NotFound(w, r)
		return nil, false
	case err != nil:
		h.view.ServerError(w, r, err)
		return nil, false
	}
	return t, true
}

func (h *LedgerHandler) TransactionDetails(w http.ResponseWriter, r *http.Request) {
	t, ok := h.transaction(w, r)
	if !ok {
		return
	}
	h.view.Render(w, r, http.StatusOK, "transaction_details", "Transaction Details", t)
}

func (h *LedgerHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	t, ok := h.transaction(w, r)
	if !ok {
		return
	}
	h.view.Render(w, r, http.StatusOK, "invoice", "Invoice", t)
}

// InvoiceLookup resolves a printed invoice number back to its transaction.
func (h *LedgerHandler) InvoiceLookup(w http.ResponseWriter, r *http.Request) {
	id, err := validate.ParseInvoiceNumber(r.URL.Query().Get("number"))
	if err != nil {
		h.view.NotFound(w, r)
		return
	}
	h.view.Redirect(w, r, fmt.Sprintf("/invoice/%d", id))
}

func (h *LedgerHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.ledgerService.ListTransactions(r.Context())
	if err != nil {
		h.view.ServerError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, transactions); err != nil {
		h.view.ServerError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+export.CSVFilename)
	_, _ = buf.WriteTo(w)
}

func (h *LedgerHandler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.ledgerService.ListTransactions(r.Context())
	if err != nil {
		h.view.ServerError(w, r, err)
		return
	}

	data, err := export.XLSX(transactions)
	if err != nil {
		h.view.ServerError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+export.XLSXFilename)
	_, _ = w.Write(data)
}
