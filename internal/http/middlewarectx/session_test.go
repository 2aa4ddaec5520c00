package middlewarectx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/voucher-console/internal/http/middlewarectx"
	"github.com/magabrotheeeer/voucher-console/internal/models"
	"github.com/magabrotheeeer/voucher-console/internal/session"
)

type SessionStoreMock struct {
	mock.Mock
}

func (m *SessionStoreMock) Get(ctx context.Context, id string) (*models.Session, error) {
	args := m.Called(ctx, id)
	sess, _ := args.Get(0).(*models.Session)
	return sess, args.Error(1)
}

func TestSessionRequired(t *testing.T) {
	cookie := middlewarectx.SessionCookie{Name: "vc_session"}

	tests := []struct {
		name         string
		cookieValue  string
		stored       *models.Session
		storeErr     error
		wantStatus   int
		wantCalled   bool
		wantCleared  bool
		wantLocation string
	}{
		{
			name:         "no cookie",
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/",
		},
		{
			name:         "unknown session",
			cookieValue:  "sid-1",
			storeErr:     session.ErrNotFound,
			wantStatus:   http.StatusSeeOther,
			wantCleared:  true,
			wantLocation: "/",
		},
		{
			name:         "expired session",
			cookieValue:  "sid-1",
			stored:       &models.Session{AccessToken: "tok", ExpiresAt: time.Now().Add(-time.Minute)},
			wantStatus:   http.StatusSeeOther,
			wantCleared:  true,
			wantLocation: "/",
		},
		{
			name:        "live session",
			cookieValue: "sid-1",
			stored:      &models.Session{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour)},
			wantStatus:  http.StatusOK,
			wantCalled:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(SessionStoreMock)
			if tt.cookieValue != "" {
				store.On("Get", mock.Anything, tt.cookieValue).Return(tt.stored, tt.storeErr).Once()
			}

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				sess, ok := middlewarectx.SessionFrom(r.Context())
				assert.True(t, ok)
				assert.Equal(t, "tok", sess.AccessToken)
				assert.Equal(t, tt.cookieValue, middlewarectx.SessionIDFrom(r.Context()))
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/voucher", nil)
			if tt.cookieValue != "" {
				req.AddCookie(&http.Cookie{Name: "vc_session", Value: tt.cookieValue})
			}
			rec := httptest.NewRecorder()

			middlewarectx.SessionRequired(store, cookie, newNoopLogger())(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
			cleared := false
			for _, c := range rec.Result().Cookies() {
				if c.Name == "vc_session" && c.MaxAge < 0 {
					cleared = true
				}
			}
			assert.Equal(t, tt.wantCleared, cleared)
			store.AssertExpectations(t)
		})
	}
}

func TestSessionCookie_SetAndRead(t *testing.T) {
	cookie := middlewarectx.SessionCookie{Name: "vc_session", Secure: true}

	rec := httptest.NewRecorder()
	cookie.Set(rec, "sid-42", 30*time.Minute)

	cookies := rec.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		c := cookies[0]
		assert.Equal(t, "sid-42", c.Value)
		assert.Equal(t, 1800, c.MaxAge)
		assert.True(t, c.HttpOnly)
		assert.True(t, c.Secure)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "vc_session", Value: "sid-42"})
	id, ok := cookie.Read(req)
	assert.True(t, ok)
	assert.Equal(t, "sid-42", id)

	_, ok = cookie.Read(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
}
