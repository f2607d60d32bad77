package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/adyen/storefront-e2e/internal/models"
	"github.com/adyen/storefront-e2e/internal/services"
)

// ProductAction is what a product button adds the product to.
type ProductAction int

const (
	AddToCart ProductAction = iota
	AddToWishlist
	AddToCompare
)

func (a ProductAction) message() string {
	switch a {
	case AddToWishlist:
		return "The product has been added to your wishlist"
	case AddToCompare:
		return "The product has been added to your product comparison"
	default:
		return "The product has been added to your shopping cart"
	}
}

// ActionResponse is the JSON answer to an AJAX storefront action.
type ActionResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	CartCount     int    `json:"cartCount"`
	WishlistCount int    `json:"wishlistCount"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ProductActionHandler adds the product named by the {id} route parameter
// to the visitor's cart, wishlist or compare list.
type ProductActionHandler struct {
	sessions *Sessions
	catalog  *services.CatalogService
	action   ProductAction
	log      *zap.Logger
}

func NewProductActionHandler(sessions *Sessions, catalog *services.CatalogService, action ProductAction, log *zap.Logger) *ProductActionHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProductActionHandler{
		sessions: sessions,
		catalog:  catalog,
		action:   action,
		log:      log,
	}
}

func (h *ProductActionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		sendErrorResponse(w, "Invalid product id", http.StatusBadRequest)
		return
	}
	if _, ok := h.catalog.Product(id); !ok {
		sendErrorResponse(w, "No product found with the specified ID", http.StatusNotFound)
		return
	}

	visitor := h.sessions.Update(w, r, func(v *Visitor) {
		switch h.action {
		case AddToCart:
			v.Cart = append(v.Cart, id)
		case AddToWishlist:
			v.Wishlist = append(v.Wishlist, id)
		case AddToCompare:
			if !slices.Contains(v.Compare, id) {
				v.Compare = append(v.Compare, id)
			}
		}
	})
	h.log.Debug("product action", zap.Int("product_id", id), zap.Int("action", int(h.action)), zap.String("visitor", visitor.ID))

	sendJSON(w, http.StatusOK, ActionResponse{
		Success:       true,
		Message:       h.action.message(),
		CartCount:     len(visitor.Cart),
		WishlistCount: len(visitor.Wishlist),
	})
}

// MsgNewsletterSubscribed is returned for an accepted newsletter address.
const MsgNewsletterSubscribed = "Thank you for signing up! A verification email has been sent. We appreciate your interest."

// NewsletterHandler subscribes the posted email address.
type NewsletterHandler struct {
	customers services.CustomerService
	log       *zap.Logger
}

func NewNewsletterHandler(customers services.CustomerService, log *zap.Logger) *NewsletterHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &NewsletterHandler{customers: customers, log: log}
}

func (h *NewsletterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		sendErrorResponse(w, "Invalid form", http.StatusBadRequest)
		return
	}

	err := h.customers.SubscribeNewsletter(r.Context(), strings.TrimSpace(r.PostForm.Get("email")))
	var fieldErrs models.FieldErrors
	switch {
	case err == nil:
		sendJSON(w, http.StatusOK, ActionResponse{Success: true, Message: MsgNewsletterSubscribed})
	case errors.As(err, &fieldErrs):
		sendJSON(w, http.StatusOK, ActionResponse{Message: fieldErrs["Email"]})
	default:
		h.log.Error("subscribing to newsletter", zap.Error(err))
		sendErrorResponse(w, "Failed to subscribe", http.StatusInternalServerError)
	}
}

func sendJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// sendErrorResponse sends a JSON error response
func sendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	sendJSON(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
