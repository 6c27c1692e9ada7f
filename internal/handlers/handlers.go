package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/bloodbank/docs"
	authhandlers "github.com/GlebRadaev/bloodbank/internal/handlers/auth"
	donorhandlers "github.com/GlebRadaev/bloodbank/internal/handlers/donors"
	ledgerhandlers "github.com/GlebRadaev/bloodbank/internal/handlers/ledger"
	profilehandlers "github.com/GlebRadaev/bloodbank/internal/handlers/profile"
	supporthandlers "github.com/GlebRadaev/bloodbank/internal/handlers/support"
	"github.com/GlebRadaev/bloodbank/internal/service"
	"github.com/GlebRadaev/bloodbank/internal/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	RegisterPage(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	LoginPage(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	ForgotPasswordPage(w http.ResponseWriter, r *http.Request)
	ForgotPassword(w http.ResponseWriter, r *http.Request)
	ResetPasswordPage(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
}

type ProfileHandler interface {
	Profile(w http.ResponseWriter, r *http.Request)
	EditProfilePage(w http.ResponseWriter, r *http.Request)
	EditProfile(w http.ResponseWriter, r *http.Request)
	DeleteAccountPage(w http.ResponseWriter, r *http.Request)
	DeleteAccount(w http.ResponseWriter, r *http.Request)
	Picture(w http.ResponseWriter, r *http.Request)
}

type DonorHandler interface {
	AddDonorPage(w http.ResponseWriter, r *http.Request)
	AddDonor(w http.ResponseWriter, r *http.Request)
	Donate(w http.ResponseWriter, r *http.Request)
	DeleteDonor(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	IssueBloodPage(w http.ResponseWriter, r *http.Request)
	IssueBlood(w http.ResponseWriter, r *http.Request)
	Transactions(w http.ResponseWriter, r *http.Request)
	TransactionDetails(w http.ResponseWriter, r *http.Request)
	Invoice(w http.ResponseWriter, r *http.Request)
	InvoiceLookup(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ExportXLSX(w http.ResponseWriter, r *http.Request)
}

type SupportHandler interface {
	Landing(w http.ResponseWriter, r *http.Request)
	About(w http.ResponseWriter, r *http.Request)
	ContactPage(w http.ResponseWriter, r *http.Request)
	Contact(w http.ResponseWriter, r *http.Request)
	SupportUs(w http.ResponseWriter, r *http.Request)
	GenerateQR(w http.ResponseWriter, r *http.Request)
	ConfirmDonation(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	ProfileHandler ProfileHandler
	DonorHandler   DonorHandler
	LedgerHandler  LedgerHandler
	SupportHandler SupportHandler

	view *web.View
}

func New(s *service.Services, view *web.View, uploader profilehandlers.Uploader, upiID string) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService, view),
		ProfileHandler: profilehandlers.New(s.ProfileService, uploader, view),
		DonorHandler:   donorhandlers.New(s.DonorService, view),
		LedgerHandler:  ledgerhandlers.New(s.LedgerService, view),
		SupportHandler: supporthandlers.New(s.SupportService, view, upiID),
		view:           view,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		h.view.LoadUser,
	)
	r.NotFound(h.view.NotFound)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/static/profile_pics/{name}", h.ProfileHandler.Picture)
	r.Handle("/static/*", http.StripPrefix("/static/", web.Static()))

	r.Get("/", h.SupportHandler.Landing)
	r.Get("/about", h.SupportHandler.About)
	r.Get("/contact", h.SupportHandler.ContactPage)
	r.Post("/contact", h.SupportHandler.Contact)

	r.Get("/register", h.AuthHandler.RegisterPage)
	r.Post("/register", h.AuthHandler.Register)
	r.Get("/login", h.AuthHandler.LoginPage)
	r.Post("/login", h.AuthHandler.Login)
	r.Get("/forgot_password", h.AuthHandler.ForgotPasswordPage)
	r.Post("/forgot_password", h.AuthHandler.ForgotPassword)
	r.Get("/reset_password/{token}", h.AuthHandler.ResetPasswordPage)
	r.Post("/reset_password/{token}", h.AuthHandler.ResetPassword)

	r.Group(func(r chi.Router) {
		r.Use(h.view.Sessions().RequireLogin)

		r.Get("/logout", h.AuthHandler.Logout)

		r.Get("/profile", h.ProfileHandler.Profile)
		r.Get("/edit_profile", h.ProfileHandler.EditProfilePage)
		r.Post("/edit_profile", h.ProfileHandler.EditProfile)
		r.Get("/delete_account", h.ProfileHandler.DeleteAccountPage)
		r.Post("/delete_account", h.ProfileHandler.DeleteAccount)

		r.Get("/dashboard", h.LedgerHandler.Dashboard)
		r.Get("/add_donor", h.DonorHandler.AddDonorPage)
		r.Post("/add_donor", h.DonorHandler.AddDonor)
		r.Get("/donate/{id}", h.DonorHandler.Donate)
		r.Get("/delete_donor/{id}", h.DonorHandler.DeleteDonor)

		r.Get("/issue_blood", h.LedgerHandler.IssueBloodPage)
		r.Post("/issue_blood", h.LedgerHandler.IssueBlood)
		r.Get("/transactions", h.LedgerHandler.Transactions)
		r.Get("/transaction_details/{id}", h.LedgerHandler.TransactionDetails)
		r.Get("/invoice/lookup", h.LedgerHandler.InvoiceLookup)
		r.Get("/invoice/{id}", h.LedgerHandler.Invoice)
		r.Get("/export_transactions_csv", h.LedgerHandler.ExportCSV)
		r.Get("/export_transactions_xlsx", h.LedgerHandler.ExportXLSX)

		r.Get("/support_us", h.SupportHandler.SupportUs)
		r.Get("/generate_qr", h.SupportHandler.GenerateQR)
		r.Post("/confirm_donation", h.SupportHandler.ConfirmDonation)
	})

	return r
}
