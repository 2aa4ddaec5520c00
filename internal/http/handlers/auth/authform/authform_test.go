package authform

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/voucher-console/internal/http/middlewarectx"
	"github.com/magabrotheeeer/voucher-console/internal/http/pages"
	"github.com/magabrotheeeer/voucher-console/internal/models"
	services "github.com/magabrotheeeer/voucher-console/internal/services/auth"
	"github.com/magabrotheeeer/voucher-console/internal/upstream"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Submit(ctx context.Context, creds models.Credentials) (*services.Result, error) {
	args := m.Called(ctx, creds)
	res, _ := args.Get(0).(*services.Result)
	return res, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newHandler(t *testing.T, svc Service) *Handler {
	t.Helper()
	renderer, err := pages.New()
	require.NoError(t, err)
	return New(newNoopLogger(), svc, renderer, middlewarectx.SessionCookie{Name: "vc_session"})
}

func postForm(h http.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "vc_session" {
			return c
		}
	}
	return nil
}

func TestShow(t *testing.T) {
	h := newHandler(t, new(ServiceMock))

	rec := httptest.NewRecorder()
	h.Show(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `value="signup" checked`)
	assert.Contains(t, body, `value="USER" checked`)
	assert.Contains(t, body, `name="adminKey"`)
}

func TestServeHTTP_NavigatesOnlyOnAdminSignInSuccess(t *testing.T) {
	adminSignIn := url.Values{
		"mode":     {"signin"},
		"role":     {"ADMIN"},
		"email":    {"admin@shop.io"},
		"password": {"secret"},
		"adminKey": {"master"},
	}
	adminCreds := models.Credentials{
		Email:    "admin@shop.io",
		Password: "secret",
		AdminKey: "master",
		Mode:     models.ModeSignIn,
		Role:     models.RoleAdmin,
	}

	tests := []struct {
		name         string
		form         url.Values
		creds        models.Credentials
		result       *services.Result
		err          error
		wantStatus   int
		wantLocation string
		wantCookie   bool
		wantBody     string
	}{
		{
			name:  "admin sign in success",
			form:  adminSignIn,
			creds: adminCreds,
			result: &services.Result{
				NavigateToVoucher: true,
				SessionID:         "6f1c5a52-7b0f-4d7e-9d0c-5f7f0c1f3a10",
				SessionTTL:        time.Hour,
				Body:              map[string]any{"access_token": "tok"},
			},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/voucher",
			wantCookie:   true,
		},
		{
			name:       "admin sign in rejected",
			form:       adminSignIn,
			creds:      adminCreds,
			err:        &upstream.Error{StatusCode: http.StatusUnauthorized, Message: "Invalid admin key"},
			wantStatus: http.StatusBadGateway,
			wantBody:   "Invalid admin key",
		},
		{
			name:       "admin sign in without token",
			form:       adminSignIn,
			creds:      adminCreds,
			err:        services.ErrNoAccessToken,
			wantStatus: http.StatusBadGateway,
			wantBody:   "no access token was returned",
		},
		{
			name: "user sign in success stays on form",
			form: url.Values{
				"mode":     {"signin"},
				"role":     {"USER"},
				"email":    {"user@shop.io"},
				"password": {"secret"},
				"adminKey": {"ignored"},
			},
			creds: models.Credentials{
				Email:    "user@shop.io",
				Password: "secret",
				AdminKey: "ignored",
				Mode:     models.ModeSignIn,
				Role:     models.RoleUser,
			},
			result:     &services.Result{Body: map[string]any{"access_token": "tok"}},
			wantStatus: http.StatusOK,
			wantBody:   "Sign in successful.",
		},
		{
			name: "admin sign up success stays on form",
			form: url.Values{
				"mode":     {"signup"},
				"role":     {"ADMIN"},
				"email":    {"admin@shop.io"},
				"password": {"secret"},
				"adminKey": {"master"},
			},
			creds: models.Credentials{
				Email:    "admin@shop.io",
				Password: "secret",
				AdminKey: "master",
				Mode:     models.ModeSignUp,
				Role:     models.RoleAdmin,
			},
			result:     &services.Result{Body: map[string]any{"id": "1"}},
			wantStatus: http.StatusOK,
			wantBody:   "Sign up successful.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			svc.On("Submit", mock.Anything, tt.creds).Return(tt.result, tt.err).Once()

			rec := postForm(newHandler(t, svc), tt.form)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			if tt.wantCookie {
				c := sessionCookie(rec)
				require.NotNil(t, c)
				assert.Equal(t, tt.result.SessionID, c.Value)
				assert.Equal(t, 3600, c.MaxAge)
				assert.True(t, c.HttpOnly)
			} else {
				assert.Nil(t, sessionCookie(rec))
			}
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestServeHTTP_ValidationError(t *testing.T) {
	svc := new(ServiceMock)

	rec := postForm(newHandler(t, svc), url.Values{
		"mode":  {"signin"},
		"role":  {"ADMIN"},
		"email": {"not-an-email"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "field email must be a valid email")
	assert.Contains(t, body, "field password is a required field")
	assert.Contains(t, body, `value="not-an-email"`)
	svc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestServeHTTP_UnknownModeRejected(t *testing.T) {
	svc := new(ServiceMock)

	rec := postForm(newHandler(t, svc), url.Values{
		"mode":     {"reset"},
		"email":    {"user@shop.io"},
		"password": {"secret"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please correct the highlighted fields.")
	svc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestServeHTTP_TransportError(t *testing.T) {
	svc := new(ServiceMock)
	svc.On("Submit", mock.Anything, mock.Anything).Return(nil, errors.New("dial tcp: connection refused")).Once()

	rec := postForm(newHandler(t, svc), url.Values{
		"mode":     {"signup"},
		"email":    {"user@shop.io"},
		"password": {"secret"},
	})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authentication failed, please try again.")
}
