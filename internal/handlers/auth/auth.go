package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/GlebRadaev/bloodbank/internal/domain"
	"github.com/GlebRadaev/bloodbank/internal/dto"
	"github.com/GlebRadaev/bloodbank/internal/service/authservice"
	"github.com/GlebRadaev/bloodbank/internal/web"
	"github.com/GlebRadaev/bloodbank/pkg/validate"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

type Service interface {
	Register(ctx context.Context, in authservice.RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ValidateResetToken(token string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type AuthHandler struct {
	authService Service
	view        *web.View
}

func New(authService Service, view *web.View) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		view:        view,
	}
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, r, http.StatusOK, "register", "Register", nil)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	form := dto.RegisterForm{
		FullName:   strings.TrimSpace(r.PostFormValue("fullname")),
		Username:   strings.TrimSpace(r.PostFormValue("username")),
		Email:      strings.TrimSpace(r.PostFormValue("email")),
		Password:   r.PostFormValue("password"),
		BloodGroup: r.PostFormValue("blood_group"),
	}
	if err := validate.Struct(form); err != nil {
		h.view.Flash(w, r, "danger", err.Error())
		h.view.Render(w, r, http.StatusOK, "register", "Register", form)
		return
	}

	_, err := h.authService.Register(r.Context(), authservice.RegisterInput{
		FullName:   form.FullName,
		Username:   form.Username,
		Email:      form.Email,
		Password:   form.Password,
		BloodGroup: form.BloodGroup,
	})
	switch {
	case errors.Is(err, authservice.ErrEmailTaken):
		h.view.Flash(w, r, "danger", "Email already exists!")
		h.view.Render(w, r, http.StatusOK, "register", "Register", form)
	case errors.Is(err, authservice.ErrUsernameTaken):
		h.view.Flash(w, r, "danger", "Username already taken!")
		h.view.Render(w, r, http.StatusOK, "register", "Register", form)
	case err != nil:
		h.view.ServerError(w, r, err)
	default:
		h.view.Flash(w, r, "success", "Account created! Please login.")
		h.view.Redirect(w, r, "/login")
	}
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.view.Sessions().UserID(r); ok {
		h.view.Redirect(w, r, "/")
		return
	}
	h.view.Render(w, r, http.StatusOK, "login", "Login", nil)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.view.Sessions().UserID(r); ok {
		h.view.Redirect(w, r, "/")
		return
	}
	form := dto.LoginForm{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}
	if err := validate.Struct(form); err != nil {
		h.view.Flash(w, r, "danger", "Invalid credentials.")
		h.view.Render(w, r, http.StatusOK, "login", "Login", form.Email)
		return
	}

	user, err := h.authService.Authenticate(r.Context(), form.Email, form.Password)
	if err != nil {
		h.view.Flash(w, r, "danger", "Invalid credentials.")
		h.view.Render(w, r, http.StatusOK, "login", "Login", form.Email)
		return
	}
	if err := h.view.Sessions().Login(w, r, user.ID); err != nil {
		h.view.ServerError(w, r, err)
		return
	}
	h.view.Redirect(w, r, "/")
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.view.Sessions().Logout(w, r); err != nil {
		zap.L().Error("can't end session", zap.Error(err))
	}
	h.view.Flash(w, r, "info", "Logged out successfully.")
	h.view.Redirect(w, r, "/")
}

func (h *AuthHandler) ForgotPasswordPage(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, r, http.StatusOK, "forgot_password", "Forgot Password", nil)
}

// ForgotPassword answers the same way whether or not the email is on file.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	form := dto.ForgotPasswordForm{Email: strings.TrimSpace(r.PostFormValue("email"))}
	if err := validate.Struct(form); err != nil {
		h.view.Flash(w, r, "danger", err.Error())
		h.view.Render(w, r, http.StatusOK, "forgot_password", "Forgot Password", nil)
		return
	}

	err := h.authService.RequestPasswordReset(r.Context(), form.Email)
	if err != nil && !errors.Is(err, authservice.ErrUserNotFound) {
		h.view.ServerError(w, r, err)
		return
	}
	h.view.Flash(w, r, "info", "If that email is registered, a reset link is on its way.")
	h.view.Redirect(w, r, "/login")
}

func (h *AuthHandler) ResetPasswordPage(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if _, err := h.authService.ValidateResetToken(token); err != nil {
		h.view.Flash(w, r, "danger", "Link expired or invalid.")
		h.view.Redirect(w, r, "/forgot_password")
		return
	}
	h.view.Render(w, r, http.StatusOK, "reset_password", "Reset Password", token)
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	form := dto.ResetPasswordForm{Password: r.PostFormValue("password")}
	if err := validate.Struct(form); err != nil {
		h.view.Flash(w, r, "danger", err.Error())
		h.view.Render(w, r, http.StatusOK, "reset_password", "Reset Password", token)
		return
	}

	err := h.authService.ResetPassword(r.Context(), token, form.Password)
	switch {
	case errors.Is(err, authservice.ErrExpiredOrInvalidToken):
		h.view.Flash(w, r, "danger", "Link expired or invalid.")
		h.view.Redirect(w, r, "/forgot_password")
	case err != nil:
		h.view.ServerError(w, r, err)
	default:
		h.view.Flash(w, r, "success", "Password updated! Please login.")
		h.view.Redirect(w, r, "/login")
	}
}
