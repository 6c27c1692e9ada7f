package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// carry copies the cookies set on a response into a fresh request, keeping
// the last value written for each name the way a browser does.
func carry(rec *httptest.ResponseRecorder, method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	latest := map[string]*http.Cookie{}
	var order []string
	for _, c := range rec.Result().Cookies() {
		if _, seen := latest[c.Name]; !seen {
			order = append(order, c.Name)
		}
		latest[c.Name] = c
	}
	for _, name := range order {
		req.AddCookie(latest[name])
	}
	return req
}

func TestSessionManager_LoginLogout(t *testing.T) {
	sm := NewSessionManager(testSecret)

	rec := httptest.NewRecorder()
	require.NoError(t, sm.Login(rec, httptest.NewRequest(http.MethodPost, "/login", nil), 7))

	req := carry(rec, http.MethodGet, "/profile")
	userID, ok := sm.UserID(req)
	assert.True(t, ok)
	assert.Equal(t, 7, userID)

	rec = httptest.NewRecorder()
	require.NoError(t, sm.Logout(rec, req))

	_, ok = sm.UserID(carry(rec, http.MethodGet, "/profile"))
	assert.False(t, ok)
}

func TestSessionManager_ForeignCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, NewSessionManager("other-secret").Login(rec, httptest.NewRequest(http.MethodPost, "/login", nil), 7))

	_, ok := NewSessionManager(testSecret).UserID(carry(rec, http.MethodGet, "/profile"))
	assert.False(t, ok)
}

func TestSessionManager_Flashes(t *testing.T) {
	sm := NewSessionManager(testSecret)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register", nil)
	sm.AddFlash(rec, req, "success", "Registration successful!")
	sm.AddFlash(rec, req, "info", "Check your inbox.")

	next := httptest.NewRecorder()
	req = carry(rec, http.MethodGet, "/login")
	flashes := sm.Flashes(next, req)
	assert.Equal(t, []Flash{
		{Category: "success", Message: "Registration successful!"},
		{Category: "info", Message: "Check your inbox."},
	}, flashes)

	assert.Empty(t, sm.Flashes(httptest.NewRecorder(), carry(next, http.MethodGet, "/login")))
}

func TestRequireLogin(t *testing.T) {
	sm := NewSessionManager(testSecret)
	var seen int
	protected := sm.RequireLogin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name         string
		request      func() *http.Request
		expectedCode int
		expectedID   int
	}{
		{
			name: "Anonymous visitor",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			},
			expectedCode: http.StatusFound,
		},
		{
			name: "Logged in user",
			request: func() *http.Request {
				rec := httptest.NewRecorder()
				_ = sm.Login(rec, httptest.NewRequest(http.MethodPost, "/login", nil), 3)
				return carry(rec, http.MethodGet, "/dashboard")
			},
			expectedCode: http.StatusOK,
			expectedID:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = 0
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, tt.request())

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedID, seen)
			if tt.expectedCode == http.StatusFound {
				assert.Equal(t, "/login", rec.Header().Get("Location"))
			}
		})
	}
}
