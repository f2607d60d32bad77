package handlers

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/adyen/storefront-e2e/internal/models"
	"github.com/adyen/storefront-e2e/internal/services"
)

// Storefront copy for account outcomes.
const (
	MsgLoginNoAccount     = "No customer account found"
	MsgLoginWrongPassword = "The credentials provided are incorrect"
	MsgRecoveryEmailSent  = "Email with instructions has been sent to you."
	MsgRecoveryNotFound   = "Email not found."
)

// LoginContent is the login form state.
type LoginContent struct {
	Email      string
	RememberMe bool
	Failure    string
	Errors     models.FieldErrors
}

// LoginHandler serves and processes the sign in form at /login
type LoginHandler struct {
	view      *View
	layout    *Layout
	sessions  *Sessions
	customers services.CustomerService
	log       *zap.Logger
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(view *View, layout *Layout, sessions *Sessions, customers services.CustomerService) *LoginHandler {
	return &LoginHandler{
		view:      view,
		layout:    layout,
		sessions:  sessions,
		customers: customers,
		log:       layout.log,
	}
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		render(w, h.log, h.view, http.StatusOK, h.layout.Page(w, r, "Login", LoginContent{}))
	case http.MethodPost:
		h.post(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *LoginHandler) post(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	form := LoginContent{
		Email:      strings.TrimSpace(r.PostForm.Get("Email")),
		RememberMe: boolParam(r.PostForm, "RememberMe"),
	}

	customer, err := h.customers.Authenticate(r.Context(), form.Email, r.PostForm.Get("Password"))
	var fieldErrs models.FieldErrors
	switch {
	case err == nil:
		h.sessions.SignIn(w, r, customer.ID, form.RememberMe)
		h.log.Info("customer signed in", zap.String("customer_id", customer.ID))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	case errors.As(err, &fieldErrs):
		form.Errors = fieldErrs
	case errors.Is(err, models.ErrCustomerNotFound):
		form.Failure = MsgLoginNoAccount
	case errors.Is(err, models.ErrWrongPassword):
		form.Failure = MsgLoginWrongPassword
	default:
		h.log.Error("authenticating customer", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	render(w, h.log, h.view, http.StatusOK, h.layout.Page(w, r, "Login", form))
}

// LogoutHandler signs the visitor out and returns to the home page.
type LogoutHandler struct {
	sessions *Sessions
}

func NewLogoutHandler(sessions *Sessions) *LogoutHandler {
	return &LogoutHandler{sessions: sessions}
}

func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.sessions.SignOut(w, r)
	http.Redirect(w, r, "/", http.StatusFound)
}

// RegisterContent is the registration form state.
type RegisterContent struct {
	Form    models.Registration
	Failure string
	Errors  models.FieldErrors
}

// RegisterHandler serves and processes the registration form at /register
type RegisterHandler struct {
	view      *View
	layout    *Layout
	sessions  *Sessions
	customers services.CustomerService
	log       *zap.Logger
}

// NewRegisterHandler creates a new registration handler
func NewRegisterHandler(view *View, layout *Layout, sessions *Sessions, customers services.CustomerService) *RegisterHandler {
	return &RegisterHandler{
		view:      view,
		layout:    layout,
		sessions:  sessions,
		customers: customers,
		log:       layout.log,
	}
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		content := RegisterContent{Form: models.Registration{Newsletter: true}}
		render(w, h.log, h.view, http.StatusOK, h.layout.Page(w, r, "Register", content))
	case http.MethodPost:
		h.post(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *RegisterHandler) post(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	f := r.PostForm
	content := RegisterContent{Form: models.Registration{
		Gender:          models.Gender(f.Get("Gender")),
		FirstName:       f.Get("FirstName"),
		LastName:        f.Get("LastName"),
		Email:           f.Get("Email"),
		Company:         f.Get("Company"),
		Newsletter:      boolParam(f, "Newsletter"),
		Password:        f.Get("Password"),
		ConfirmPassword: f.Get("ConfirmPassword"),
	}}
	switch content.Form.Gender {
	case models.GenderMale, models.GenderFemale:
	default:
		content.Form.Gender = models.GenderUnspecified
	}

	customer, err := h.customers.Register(r.Context(), content.Form)
	var fieldErrs models.FieldErrors
	switch {
	case err == nil:
		h.sessions.SignIn(w, r, customer.ID, false)
		http.Redirect(w, r, "/registerresult/1", http.StatusSeeOther)
		return
	case errors.As(err, &fieldErrs):
		content.Errors = fieldErrs
	case errors.Is(err, models.ErrEmailExists):
		content.Failure = models.MsgEmailAlreadyExists
	default:
		h.log.Error("registering customer", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	content.Form.Password, content.Form.ConfirmPassword = "", ""
	render(w, h.log, h.view, http.StatusOK, h.layout.Page(w, r, "Register", content))
}

// RegisterResultHandler shows the page a successful registration lands on.
type RegisterResultHandler struct {
	view   *View
	layout *Layout
}

func NewRegisterResultHandler(view *View, layout *Layout) *RegisterResultHandler {
	return &RegisterResultHandler{view: view, layout: layout}
}

func (h *RegisterResultHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	render(w, h.layout.log, h.view, http.StatusOK, h.layout.Page(w, r, "Register", nil))
}

// RecoveryContent is the password recovery form state.
type RecoveryContent struct {
	Email  string
	Errors models.FieldErrors
}

// PasswordRecoveryHandler serves the recovery form at /passwordrecovery
type PasswordRecoveryHandler struct {
	view      *View
	layout    *Layout
	customers services.CustomerService
	log       *zap.Logger
}

func NewPasswordRecoveryHandler(view *View, layout *Layout, customers services.CustomerService) *PasswordRecoveryHandler {
	return &PasswordRecoveryHandler{
		view:      view,
		layout:    layout,
		customers: customers,
		log:       layout.log,
	}
}

func (h *PasswordRecoveryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		render(w, h.log, h.view, http.StatusOK, h.layout.Page(w, r, "Password Recovery", RecoveryContent{}))
	case http.MethodPost:
		h.post(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *PasswordRecoveryHandler) post(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	content := RecoveryContent{Email: strings.TrimSpace(r.PostForm.Get("Email"))}

	var notification *Notification
	err := h.customers.RequestPasswordRecovery(r.Context(), content.Email)
	var fieldErrs models.FieldErrors
	switch {
	case err == nil:
		notification = &Notification{Type: NotifySuccess, Text: MsgRecoveryEmailSent}
		content.Email = ""
	case errors.As(err, &fieldErrs):
		content.Errors = fieldErrs
	case errors.Is(err, models.ErrCustomerNotFound):
		notification = &Notification{Type: NotifyError, Text: MsgRecoveryNotFound}
	default:
		h.log.Error("requesting password recovery", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := h.layout.Page(w, r, "Password Recovery", content)
	data.Notification = notification
	render(w, h.log, h.view, http.StatusOK, data)
}

// CustomerInfoHandler shows the signed in customer's account page.
type CustomerInfoHandler struct {
	view   *View
	layout *Layout
}

func NewCustomerInfoHandler(view *View, layout *Layout) *CustomerInfoHandler {
	return &CustomerInfoHandler{view: view, layout: layout}
}

func (h *CustomerInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	data := h.layout.Page(w, r, "Account", nil)
	if data.Customer == nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	render(w, h.layout.log, h.view, http.StatusOK, data)
}
