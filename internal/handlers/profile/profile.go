package profile

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/GlebRadaev/bloodbank/internal/domain"
	"github.com/GlebRadaev/bloodbank/internal/dto"
	"github.com/GlebRadaev/bloodbank/internal/service/authservice"
	"github.com/GlebRadaev/bloodbank/internal/web"
	"github.com/GlebRadaev/bloodbank/pkg/auth"
	"github.com/GlebRadaev/bloodbank/pkg/uploads"
	"github.com/GlebRadaev/bloodbank/pkg/validate"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=profile.go -destination=mock_profile.go -package=profile

// formOverhead leaves room for the text fields next to the picture.
const formOverhead = 64 << 10

type Service interface {
	GetUser(ctx context.Context, id int) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int, in authservice.ProfileInput) (*domain.User, error)
	SetProfileImage(ctx context.Context, id int, filename string) error
	DeleteAccount(ctx context.Context, id int) error
}

type Uploader interface {
	Save(userID int, original string, r io.Reader) (string, error)
	Dir() string
}

type ProfileHandler struct {
	profileService Service
	uploader       Uploader
	view           *web.View
}

func New(profileService Service, uploader Uploader, view *web.View) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		uploader:       uploader,
		view:           view,
	}
}

func (h *ProfileHandler) currentUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	userID, _ := auth.UserIDFromContext(r.Context())
	user, err := h.profileService.GetUser(r.Context(), userID)
	if errors.Is(err, authservice.ErrUserNotFound) {
		_ = h.view.Sessions().Logout(w, r)
		h.view.Redirect(w, r, "/login")
		return nil, false
	}
	if err != nil {
		h.view.ServerError(w, r, err)
		return nil, false
	}
	return user, true
}

func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	r = r.WithContext(web.WithUser(r.Context(), user))
	h.view.Render(w, r, http.StatusOK, "profile", "Profile", nil)
}

func (h *ProfileHandler) EditProfilePage(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	r = r.WithContext(web.WithUser(r.Context(), user))
	h.view.Render(w, r, http.StatusOK, "edit_profile", "Edit Profile", nil)
}

func (h *ProfileHandler) EditProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, uploads.MaxSize+formOverhead)
	if err := r.ParseMultipartForm(uploads.MaxSize); err != nil {
		h.view.Flash(w, r, "danger", "Upload failed. Pictures must be smaller than 2 MB.")
		h.view.Redirect(w, r, "/edit_profile")
		return
	}

	form := dto.ProfileForm{
		FullName:    strings.TrimSpace(r.FormValue("full_name")),
		Bio:         strings.TrimSpace(r.FormValue("bio")),
		Email:       strings.TrimSpace(r.FormValue("email")),
		RemovePhoto: r.FormValue("remove_photo") == "true",
	}
	if err := validate.Struct(form); err != nil {
		h.view.Flash(w, r, "danger", err.Error())
		h.view.Redirect(w, r, "/edit_profile")
		return
	}

	_, err := h.profileService.UpdateProfile(r.Context(), userID, authservice.ProfileInput{
		FullName:    form.FullName,
		Bio:         form.Bio,
		Email:       form.Email,
		RemovePhoto: form.RemovePhoto,
	})
	switch {
	case errors.Is(err, authservice.ErrEmailTaken):
		h.view.Flash(w, r, "danger", "Email already in use!")
		h.view.Redirect(w, r, "/edit_profile")
		return
	case err != nil:
		h.view.ServerError(w, r, err)
		return
	}

	if !form.RemovePhoto {
		if ok := h.savePicture(w, r, userID); !ok {
			return
		}
	}

	h.view.Flash(w, r, "success", "Profile updated!")
	h.view.Redirect(w, r, "/profile")
}

func (h *ProfileHandler) savePicture(w http.ResponseWriter, r *http.Request, userID int) bool {
	file, header, err := r.FormFile("profile_pic")
	if errors.Is(err, http.ErrMissingFile) {
		return true
	}
	if err != nil {
		h.view.ServerError(w, r, err)
		return false
	}
	defer file.Close()

	name, err := h.uploader.Save(userID, header.Filename, file)
	switch {
	case errors.Is(err, uploads.ErrUnsupportedType), errors.Is(err, uploads.ErrInvalidFilename):
		h.view.Flash(w, r, "danger", "Unsupported picture. Use png, jpg, gif or webp.")
		h.view.Redirect(w, r, "/edit_profile")
		return false
	case err != nil:
		h.view.ServerError(w, r, err)
		return false
	}

	if err := h.profileService.SetProfileImage(r.Context(), userID, name); err != nil {
		h.view.ServerError(w, r, err)
		return false
	}
	return true
}

func (h *ProfileHandler) DeleteAccountPage(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, r, http.StatusOK, "delete_account", "Delete Account", nil)
}

func (h *ProfileHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	err := h.profileService.DeleteAccount(r.Context(), userID)
	if err != nil && !errors.Is(err, authservice.ErrUserNotFound) {
		h.view.ServerError(w, r, err)
		return
	}
	if err := h.view.Sessions().Logout(w, r); err != nil {
		zap.L().Error("can't end session", zap.Error(err))
	}
	h.view.Flash(w, r, "info", "Your account has been deleted.")
	h.view.Redirect(w, r, "/")
}

// Picture serves uploaded avatars; the default one ships with the binary.
func (h *ProfileHandler) Picture(w http.ResponseWriter, r *http.Request) {
	name := filepath.Base(chi.URLParam(r, "name"))
	if name == domain.DefaultProfileImage {
		web.DefaultAvatar(w, r)
		return
	}
	if !strings.HasPrefix(name, "user_") {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, filepath.Join(h.uploader.Dir(), name))
}
