package profile

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/GlebRadaev/bloodbank/internal/domain"
	"github.com/GlebRadaev/bloodbank/internal/service/authservice"
	"github.com/GlebRadaev/bloodbank/internal/web"
	"github.com/GlebRadaev/bloodbank/pkg/auth"
	"github.com/GlebRadaev/bloodbank/pkg/uploads"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ProfileHandler, *MockService, *MockUploader) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	uploader := NewMockUploader(ctrl)
	view, err := web.New(auth.NewSessionManager("test-secret"), web.NewMockUserLoader(ctrl))
	require.NoError(t, err)
	handler := New(service, uploader, view)
	return handler, service, uploader
}

func asUser(r *http.Request, id int) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, id))
}

func multipartRequest(t *testing.T, fields map[string]string, filename string, content []byte) *http.Request {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		part, err := mw.CreateFormFile("profile_pic", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/edit_profile", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return asUser(r, 1)
}

func TestProfileHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	tests := []struct {
		name             string
		prepareMock      func()
		expectedCode     int
		expectedLocation string
		expectedBody     string
	}{
		{
			name: "Shows the account",
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), 1).Return(&domain.User{
					ID:           1,
					Username:     "alice",
					Email:        "alice@example.com",
					FullName:     "Alice Doe",
					ProfileImage: domain.DefaultProfileImage,
					CreatedAt:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "Alice Doe",
		},
		{
			name: "Account gone",
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), 1).Return(nil, authservice.ErrUserNotFound)
			},
			expectedCode:     http.StatusFound,
			expectedLocation: "/login",
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Profile(w, asUser(httptest.NewRequest(http.MethodGet, "/profile", nil), 1))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedLocation, w.Header().Get("Location"))
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestEditProfileHandler(t *testing.T) {
	handler, service, uploader := NewMock(t)
	fields := map[string]string{"full_name": "Alice Doe", "email": "alice@example.com", "bio": "O+ donor"}
	input := authservice.ProfileInput{FullName: "Alice Doe", Email: "alice@example.com", Bio: "O+ donor"}

	tests := []struct {
		name             string
		request          func() *http.Request
		prepareMock      func()
		expectedCode     int
		expectedLocation string
	}{
		{
			name:    "Text fields only",
			request: func() *http.Request { return multipartRequest(t, fields, "", nil) },
			prepareMock: func() {
				service.EXPECT().UpdateProfile(gomock.Any(), 1, input).Return(&domain.User{ID: 1}, nil)
			},
			expectedCode:     http.StatusFound,
			expectedLocation: "/profile",
		},
		{
			name:    "With a new picture",
			request: func() *http.Request { return multipartRequest(t, fields, "Me.PNG", []byte("png")) },
			prepareMock: func() {
				service.EXPECT().UpdateProfile(gomock.Any(), 1, input).Return(&domain.User{ID: 1}, nil)
				uploader.EXPECT().Save(1, "Me.PNG", gomock.Any()).Return("user_1_me.png", nil)
				service.EXPECT().SetProfileImage(gomock.Any(), 1, "user_1_me.png").Return(nil)
			},
			expectedCode:     http.StatusFound,
			expectedLocation: "/profile",
		},
		{
			name: "Remove photo skips the upload",
			request: func() *http.Request {
				return multipartRequest(t, map[string]string{"email": "alice@example.com", "remove_photo": "true"}, "me.png", []byte("png"))
			},
			prepareMock: func() {
				service.EXPECT().UpdateProfile(gomock.Any(), 1, authservice.ProfileInput{Email: "alice@example.com", RemovePhoto: true}).
					Return(&domain.User{ID: 1}, nil)
			},
			expectedCode:     http.StatusFound,
			expectedLocation: "/profile",
		},
		{
			name:    "Unsupported picture",
			request: func() *http.Request { return multipartRequest(t, fields, "virus.exe", []byte("MZ")) },
			prepareMock: func() {
				service.EXPECT().UpdateProfile(gomock.Any(), 1, input).Return(&domain.User{ID: 1}, nil)
				uploader.EXPECT().Save(1, "virus.exe", gomock.Any()).Return("", uploads.ErrUnsupportedType)
			},
			expectedCode:     http.StatusFound,
			expectedLocation: "/edit_profile",
		},
		{
			name:    "Email in use",
			request: func() *http.Request { return multipartRequest(t, fields, "", nil) },
			prepareMock: func() {
				service.EXPECT().UpdateProfile(gomock.Any(), 1, input).Return(nil, authservice.ErrEmailTaken)
			},
			expectedCode:     http.StatusFound,
			expectedLocation: "/edit_profile",
		},
		{
			name:             "Invalid email",
			request:          func() *http.Request { return multipartRequest(t, map[string]string{"email": "nope"}, "", nil) },
			prepareMock:      func() {},
			expectedCode:     http.StatusFound,
			expectedLocation: "/edit_profile",
		},
		{
			name: "Picture too large",
			request: func() *http.Request {
				return multipartRequest(t, fields, "big.png", bytes.Repeat([]byte{1}, uploads.MaxSize+formOverhead))
			},
			prepareMock:      func() {},
			expectedCode:     http.StatusFound,
			expectedLocation: "/edit_profile",
		},
		{
			name:    "Internal server error",
			request: func() *http.Request { return multipartRequest(t, fields, "", nil) },
			prepareMock: func() {
				service.EXPECT().UpdateProfile(gomock.Any(), 1, input).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.EditProfile(w, tt.request())

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedLocation, w.Header().Get("Location"))
		})
	}
}

func TestDeleteAccountHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Deleted",
			prepareMock: func() {
				service.EXPECT().DeleteAccount(gomock.Any(), 1).Return(nil)
			},
			expectedCode: http.StatusFound,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().DeleteAccount(gomock.Any(), 1).Return(errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.DeleteAccount(w, asUser(httptest.NewRequest(http.MethodPost, "/delete_account", nil), 1))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusFound {
				assert.Equal(t, "/", w.Header().Get("Location"))
			}
		})
	}
}

func TestPictureHandler(t *testing.T) {
	handler, _, uploader := NewMock(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "user_1_me.png"), []byte("picture"), 0o644))
	uploader.EXPECT().Dir().Return(dir).AnyTimes()

	tests := []struct {
		name         string
		file         string
		expectedCode int
		expectedBody string
	}{
		{name: "Default avatar", file: domain.DefaultProfileImage, expectedCode: http.StatusOK, expectedBody: "<svg"},
		{name: "Uploaded picture", file: "user_1_me.png", expectedCode: http.StatusOK, expectedBody: "picture"},
		{name: "Missing picture", file: "user_2_me.png", expectedCode: http.StatusNotFound},
		{name: "Foreign file", file: "secrets.txt", expectedCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/static/profile_pics/"+tt.file, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("name", tt.file)
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			handler.Picture(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}
