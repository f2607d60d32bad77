// Package storefronttest starts the stub storefront for tests that drive it
// with a browser.
package storefronttest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	"github.com/adyen/storefront-e2e/internal/storefront"
)

// NewServer serves the stub on a random local port until t finishes.
// Passwords are hashed with the cheapest bcrypt cost and requests are
// logged to t. wrap, when given, decorates the router.
func NewServer(t testing.TB, opts storefront.Options, wrap ...func(http.Handler) http.Handler) *httptest.Server {
	t.Helper()
	if opts.PasswordCost == 0 {
		opts.PasswordCost = bcrypt.MinCost
	}
	if opts.Logger == nil {
		opts.Logger = zaptest.NewLogger(t)
	}
	handler, err := storefront.NewHandler(opts)
	if err != nil {
		t.Fatalf("building stub storefront: %v", err)
	}
	for _, w := range wrap {
		handler = w(handler)
	}
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}
