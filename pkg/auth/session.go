package auth

import (
	"context"
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

type ContextKey string

const UserIDKey ContextKey = "userID"

const (
	sessionName = "bloodbank_session"
	userIDValue = "user_id"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

func init() {
	gob.Register(Flash{})
}

type SessionManager struct {
	store sessions.Store
}

func NewSessionManager(secretKey string) *SessionManager {
	store := sessions.NewCookieStore([]byte(secretKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionManager{store: store}
}

func (m *SessionManager) session(r *http.Request) *sessions.Session {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		// a cookie signed with another key; start over with a fresh session
		zap.L().Debug("discarding undecodable session", zap.Error(err))
	}
	return session
}

func (m *SessionManager) Login(w http.ResponseWriter, r *http.Request, userID int) error {
	session := m.session(r)
	session.Values[userIDValue] = userID
	return session.Save(r, w)
}

func (m *SessionManager) Logout(w http.ResponseWriter, r *http.Request) error {
	session := m.session(r)
	delete(session.Values, userIDValue)
	return session.Save(r, w)
}

func (m *SessionManager) UserID(r *http.Request) (int, bool) {
	id, ok := m.session(r).Values[userIDValue].(int)
	return id, ok && id > 0
}

func (m *SessionManager) AddFlash(w http.ResponseWriter, r *http.Request, category, message string) {
	session := m.session(r)
	session.AddFlash(Flash{Category: category, Message: message})
	if err := session.Save(r, w); err != nil {
		zap.L().Error("can't save flash", zap.Error(err))
	}
}

// Flashes drains the pending flash messages.
func (m *SessionManager) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	session := m.session(r)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(r, w); err != nil {
		zap.L().Error("can't save session", zap.Error(err))
	}
	flashes := make([]Flash, 0, len(raw))
	for _, f := range raw {
		if flash, ok := f.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	return flashes
}

// RequireLogin redirects anonymous visitors to the login page and stores the
// user id of everyone else under UserIDKey.
func (m *SessionManager) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := m.UserID(r)
		if !ok {
			m.AddFlash(w, r, "info", "Please log in to access this page.")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(UserIDKey).(int)
	return userID, ok
}
