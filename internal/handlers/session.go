package handlers

import (
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionCookie names the cookie holding the visitor id.
const SessionCookie = "storefront.session"

// rememberFor is how long a "Remember me" sign in survives a browser restart.
const rememberFor = 30 * 24 * time.Hour

// Visitor is the server side state of one browser session.
type Visitor struct {
	ID         string
	CustomerID string
	Cart       []int
	Wishlist   []int
	Compare    []int
}

func (v *Visitor) clone() Visitor {
	return Visitor{
		ID:         v.ID,
		CustomerID: v.CustomerID,
		Cart:       slices.Clone(v.Cart),
		Wishlist:   slices.Clone(v.Wishlist),
		Compare:    slices.Clone(v.Compare),
	}
}

// Sessions keeps visitors in memory, keyed by the session cookie.
type Sessions struct {
	mu       sync.Mutex
	visitors map[string]*Visitor
}

func NewSessions() *Sessions {
	return &Sessions{visitors: make(map[string]*Visitor)}
}

// Get returns a copy of the request's visitor, starting a session if the
// request carries no known cookie.
func (s *Sessions) Get(w http.ResponseWriter, r *http.Request) Visitor {
	return s.Update(w, r, func(*Visitor) {})
}

// Update applies fn to the request's visitor under the session lock and
// returns a copy of the result.
func (s *Sessions) Update(w http.ResponseWriter, r *http.Request, fn func(*Visitor)) Visitor {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.visitor(w, r)
	fn(v)
	return v.clone()
}

// SignIn attaches customerID to the visitor. With remember set the cookie
// outlives the browser session.
func (s *Sessions) SignIn(w http.ResponseWriter, r *http.Request, customerID string, remember bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.visitor(w, r)
	v.CustomerID = customerID
	if remember {
		setCookie(w, v.ID, int(rememberFor.Seconds()))
	}
}

// SignOut detaches the customer but keeps the cart and lists.
func (s *Sessions) SignOut(w http.ResponseWriter, r *http.Request) {
	s.Update(w, r, func(v *Visitor) { v.CustomerID = "" })
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visitors)
}

func (s *Sessions) visitor(w http.ResponseWriter, r *http.Request) *Visitor {
	for _, c := range r.CookiesNamed(SessionCookie) {
		if v, ok := s.visitors[c.Value]; ok {
			return v
		}
	}
	v := &Visitor{ID: uuid.New().String()}
	s.visitors[v.ID] = v
	setCookie(w, v.ID, 0)
	// Later lookups in the same request must find the new session.
	r.AddCookie(&http.Cookie{Name: SessionCookie, Value: v.ID})
	return v
}

func setCookie(w http.ResponseWriter, id string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
