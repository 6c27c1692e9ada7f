package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/bloodbank/internal/domain"
	"github.com/GlebRadaev/bloodbank/internal/service/authservice"
	"github.com/GlebRadaev/bloodbank/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*View, *MockUserLoader) {
	ctrl := gomock.NewController(t)
	users := NewMockUserLoader(ctrl)
	view, err := New(auth.NewSessionManager("test-secret"), users)
	require.NoError(t, err)
	return view, users
}

func loggedIn(t *testing.T, sessions *auth.SessionManager, userID int, target string) *http.Request {
	rec := httptest.NewRecorder()
	require.NoError(t, sessions.Login(rec, httptest.NewRequest(http.MethodPost, "/login", nil), userID))
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestNew_ParsesEveryPage(t *testing.T) {
	view, _ := NewMock(t)
	for _, page := range []string{
		"landing", "about", "contact", "register", "login", "forgot_password", "reset_password",
		"dashboard", "profile", "edit_profile", "delete_account", "add_donor", "issue_blood",
		"transactions", "transaction_details", "invoice", "support_us", "error",
	} {
		assert.Contains(t, view.pages, page)
	}
}

func TestRender(t *testing.T) {
	view, _ := NewMock(t)
	donated := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	utr := "UTR1"
	user := &domain.User{ID: 1, Username: "alice", Email: "a@x.io", ProfileImage: domain.DefaultProfileImage}
	tr := &domain.Transaction{ID: 7, PatientName: "P", HospitalName: "City", BloodGroup: "O+", Units: 1, TotalAmount: 500, Date: donated, PaymentStatus: domain.PaymentPaid, UTRNumber: &utr}

	tests := []struct {
		name     string
		page     string
		user     *domain.User
		data     any
		contains []string
	}{
		{
			name:     "Anonymous landing",
			page:     "landing",
			contains: []string{"Get started", `href="/login"`},
		},
		{
			name:     "Logged in landing",
			page:     "landing",
			user:     user,
			contains: []string{"Go to dashboard", "/static/profile_pics/default.svg", "alice"},
		},
		{
			name: "Dashboard",
			page: "dashboard",
			user: user,
			data: map[string]any{
				"Stock":        []domain.BloodStock{{BloodGroup: "O+", Units: 0}},
				"Donors":       []domain.Donor{{ID: 3, Name: "A", BloodGroup: "O+", LastDonationDate: &donated}, {ID: 4, Name: "B", BloodGroup: "A-"}},
				"Transactions": []domain.Transaction{*tr},
			},
			contains: []string{"stat empty", "/donate/3", "2024-06-01", "Never", "500.00"},
		},
		{
			name:     "Invoice",
			page:     "invoice",
			user:     user,
			data:     tr,
			contains: []string{"Invoice 0000075", "UTR UTR1", "500.00"},
		},
		{
			name:     "Transactions",
			page:     "transactions",
			user:     user,
			data:     []domain.Transaction{*tr},
			contains: []string{"/invoice/7", "UTR1", "Paid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.user != nil {
				req = req.WithContext(WithUser(req.Context(), tt.user))
			}
			rec := httptest.NewRecorder()
			view.Render(rec, req, http.StatusOK, tt.page, "Title", tt.data)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			for _, s := range tt.contains {
				assert.Contains(t, rec.Body.String(), s)
			}
		})
	}
}

func TestRender_ShowsFlashes(t *testing.T) {
	view, _ := NewMock(t)
	req := httptest.NewRequest(http.MethodPost, "/register", nil)
	rec := httptest.NewRecorder()

	view.Flash(rec, req, "danger", "Email already exists!")
	view.Render(rec, req, http.StatusOK, "register", "Register", nil)

	assert.Contains(t, rec.Body.String(), `<div class="alert alert-danger">Email already exists!</div>`)
}

func TestNotFoundAndServerError(t *testing.T) {
	view, _ := NewMock(t)

	rec := httptest.NewRecorder()
	view.NotFound(rec, httptest.NewRequest(http.MethodGet, "/invoice/9", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	view.ServerError(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil), errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestLoadUser(t *testing.T) {
	view, users := NewMock(t)
	var seen *domain.User
	next := view.LoadUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CurrentUser(r.Context())
	}))

	tests := []struct {
		name      string
		request   func() *http.Request
		mockSetup func()
		expected  *domain.User
	}{
		{
			name:      "Anonymous",
			request:   func() *http.Request { return httptest.NewRequest(http.MethodGet, "/", nil) },
			mockSetup: func() {},
		},
		{
			name:    "Session user",
			request: func() *http.Request { return loggedIn(t, view.Sessions(), 5, "/") },
			mockSetup: func() {
				users.EXPECT().GetUser(gomock.Any(), 5).Return(&domain.User{ID: 5}, nil)
			},
			expected: &domain.User{ID: 5},
		},
		{
			name:    "Deleted account",
			request: func() *http.Request { return loggedIn(t, view.Sessions(), 6, "/") },
			mockSetup: func() {
				users.EXPECT().GetUser(gomock.Any(), 6).Return(nil, authservice.ErrUserNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			tt.mockSetup()
			next.ServeHTTP(httptest.NewRecorder(), tt.request())
			assert.Equal(t, tt.expected, seen)
		})
	}
}

func TestStatic(t *testing.T) {
	rec := httptest.NewRecorder()
	Static().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/css/style.css", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	DefaultAvatar(rec, httptest.NewRequest(http.MethodGet, "/static/profile_pics/default.svg", nil))
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<svg")
}

func TestCurrentUser_EmptyContext(t *testing.T) {
	assert.Nil(t, CurrentUser(context.Background()))
}
