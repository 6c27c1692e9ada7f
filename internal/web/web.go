// Package web renders the server-side HTML pages and serves the embedded
// static assets.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/GlebRadaev/bloodbank/internal/domain"
	"github.com/GlebRadaev/bloodbank/internal/service/authservice"
	"github.com/GlebRadaev/bloodbank/pkg/auth"
	"github.com/GlebRadaev/bloodbank/pkg/validate"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

//go:generate mockgen -source=web.go -destination=mock_web.go -package=web

type ctxKey struct{}

// UserLoader resolves the account behind a session.
type UserLoader interface {
	GetUser(ctx context.Context, id int) (*domain.User, error)
}

// Page is the value every template is executed with.
type Page struct {
	Title       string
	User        *domain.User
	Flashes     []auth.Flash
	BloodGroups []string
	Data        any
}

type View struct {
	pages    map[string]*template.Template
	sessions *auth.SessionManager
	users    UserLoader
}

var funcs = template.FuncMap{
	"invoice": validate.InvoiceNumber,
	"money": func(amount float64) string {
		return decimal.NewFromFloat(amount).StringFixed(2)
	},
	"datetime": func(t time.Time) string {
		return t.Format("02 Jan 2006, 03:04 PM")
	},
	"date": func(t *time.Time) string {
		if t == nil {
			return "Never"
		}
		return t.Format("2006-01-02")
	},
	"avatar": func(name string) string {
		return "/static/profile_pics/" + name
	},
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}

func New(sessions *auth.SessionManager, users UserLoader) (*View, error) {
	entries, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	pages := make(map[string]*template.Template, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(path.Base(entry), ".html")
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", entry)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &View{
		pages:    pages,
		sessions: sessions,
		users:    users,
	}, nil
}

func (v *View) Sessions() *auth.SessionManager {
	return v.sessions
}

// LoadUser puts the logged in account, if any, into the request context.
// Sessions that point at a deleted account are cleared.
func (v *View) LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := v.sessions.UserID(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		user, err := v.users.GetUser(r.Context(), userID)
		if err != nil {
			if !errors.Is(err, authservice.ErrUserNotFound) {
				zap.L().Error("can't load session user", zap.Int("user_id", userID), zap.Error(err))
			}
			_ = v.sessions.Logout(w, r)
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, user)))
	})
}

func CurrentUser(ctx context.Context) *domain.User {
	user, _ := ctx.Value(ctxKey{}).(*domain.User)
	return user
}

func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

func (v *View) Render(w http.ResponseWriter, r *http.Request, status int, page, title string, data any) {
	tmpl, ok := v.pages[page]
	if !ok {
		zap.L().Error("unknown page", zap.String("page", page))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "layout.html", Page{
		Title:       title,
		User:        CurrentUser(r.Context()),
		Flashes:     v.sessions.Flashes(w, r),
		BloodGroups: domain.BloodGroups,
		Data:        data,
	})
	if err != nil {
		zap.L().Error("can't render page", zap.String("page", page), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (v *View) Flash(w http.ResponseWriter, r *http.Request, category, message string) {
	v.sessions.AddFlash(w, r, category, message)
}

func (v *View) Redirect(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusFound)
}

func (v *View) NotFound(w http.ResponseWriter, r *http.Request) {
	v.Render(w, r, http.StatusNotFound, "error", "Not Found", "The page you are looking for does not exist.")
}

func (v *View) ServerError(w http.ResponseWriter, r *http.Request, err error) {
	zap.L().Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	v.Render(w, r, http.StatusInternalServerError, "error", "Server Error", "Something went wrong. Please try again later.")
}

// Static serves the embedded css, js and images.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

// DefaultAvatar is served for accounts without an uploaded picture.
func DefaultAvatar(w http.ResponseWriter, r *http.Request) {
	data, err := staticFS.ReadFile("static/img/" + domain.DefaultProfileImage)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(data)
}
