package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions_Get(t *testing.T) {
	sessions := NewSessions()

	// GIVEN a request without a session cookie
	rec := httptest.NewRecorder()
	first := sessions.Get(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	// THEN a session is started and its cookie is set
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, first.ID, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 1, sessions.Len())

	// WHEN the cookie comes back
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	again := sessions.Get(rec, req)

	// THEN the same visitor is found and no new cookie is issued
	assert.Equal(t, first.ID, again.ID)
	assert.Nil(t, sessionCookie(rec))
	assert.Equal(t, 1, sessions.Len())
}

func TestSessions_UnknownCookieStartsNewSession(t *testing.T) {
	sessions := NewSessions()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "expired"})

	rec := httptest.NewRecorder()
	v := sessions.Get(rec, req)

	assert.NotEqual(t, "expired", v.ID)
	require.NotNil(t, sessionCookie(rec))

	// The new session is visible to later lookups within the same request.
	assert.Equal(t, v.ID, sessions.Get(httptest.NewRecorder(), req).ID)
	assert.Equal(t, 1, sessions.Len())
}

func TestSessions_Update(t *testing.T) {
	sessions := NewSessions()
	rec := httptest.NewRecorder()
	sessions.Get(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	cookie := sessionCookie(rec)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(cookie)
	got := sessions.Update(httptest.NewRecorder(), req, func(v *Visitor) {
		v.Cart = append(v.Cart, 7)
	})
	assert.Equal(t, []int{7}, got.Cart)

	// Mutating the returned copy does not leak into the session.
	got.Cart[0] = 99
	again := sessions.Get(httptest.NewRecorder(), req)
	assert.Equal(t, []int{7}, again.Cart)
}

func TestSessions_SignInAndOut(t *testing.T) {
	tests := []struct {
		name         string
		remember     bool
		expectMaxAge bool
	}{
		{name: "session cookie", remember: false},
		{name: "remember me", remember: true, expectMaxAge: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := NewSessions()
			rec := httptest.NewRecorder()
			sessions.Get(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			cookie := sessionCookie(rec)

			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			req.AddCookie(cookie)
			rec = httptest.NewRecorder()
			sessions.SignIn(rec, req, "customer-1", tt.remember)

			issued := sessionCookie(rec)
			if tt.expectMaxAge {
				require.NotNil(t, issued)
				assert.Equal(t, int(rememberFor.Seconds()), issued.MaxAge)
			} else {
				assert.Nil(t, issued)
			}
			assert.Equal(t, "customer-1", sessions.Get(httptest.NewRecorder(), req).CustomerID)

			sessions.SignOut(httptest.NewRecorder(), req)
			assert.Empty(t, sessions.Get(httptest.NewRecorder(), req).CustomerID)
		})
	}
}
