package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"

	"agrirent/internal/api"
	"agrirent/internal/config"
	"agrirent/internal/session"

	"github.com/gin-gonic/gin"
)

// Handler translates browser requests into backend client calls
type Handler struct {
	cfg      *config.Config
	sessions session.Manager
}

// NewHandler creates the gateway handler set
func NewHandler(cfg *config.Config, sessions session.Manager) *Handler {
	return &Handler{cfg: cfg, sessions: sessions}
}

// redirectRecorder captures the client core's forced login navigation so the
// handler can express it as an HTTP response. Dashboard fetches run
// concurrently, so the flag is atomic.
type redirectRecorder struct {
	triggered atomic.Bool
}

func (r *redirectRecorder) LoginRedirect() {
	r.triggered.Store(true)
}

// clientFor builds a backend client bound to the request's session. Requests
// outside a session (login, register, public listing) get a throwaway
// in-memory token store.
func (h *Handler) clientFor(c *gin.Context) (*api.Client, *redirectRecorder) {
	var store session.Store
	if sessionID := c.GetString(sessionIDKey); sessionID != "" {
		store = h.sessions.Resolve(sessionID)
	} else {
		store = session.NewMemoryStore()
	}
	rec := &redirectRecorder{}
	return api.New(h.cfg.APIBaseURL, store, rec), rec
}

// respondError maps client errors onto gateway responses. An intercepted 401
// means the session token is already gone; the browser gets the hard redirect
// to the login view.
func (h *Handler) respondError(c *gin.Context, err error) {
	var validationErr *api.ValidationError
	var apiErr *api.APIError

	switch {
	case errors.Is(err, api.ErrUnauthorized):
		abortUnauthenticated(c)
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &apiErr):
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "backend unavailable"})
	}
}

// Health is the gateway health check handler
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "agrirent-gateway",
	})
}

// LoginView is the target of forced navigation for browser requests
func (h *Handler) LoginView(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "login required"})
}

// Register creates a new user account
func (h *Handler) Register(c *gin.Context) {
	var req api.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration payload"})
		return
	}

	client, _ := h.clientFor(c)
	profile, err := client.Register(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// Login exchanges credentials for a gateway session backed by the
// backend-issued bearer token.
func (h *Handler) Login(c *gin.Context) {
	var creds api.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credentials payload"})
		return
	}

	client, _ := h.clientFor(c)
	resp, err := client.Login(c.Request.Context(), creds)
	if err != nil {
		h.respondError(c, err)
		return
	}

	sessionID, err := h.sessions.Create(c.Request.Context(), resp.Token, h.cfg.SessionMaxAge)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.SetCookie(SessionCookie, sessionID, h.cfg.SessionMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"fullName": resp.FullName,
		"email":    resp.Email,
	})
}

// Logout destroys the gateway session
func (h *Handler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(SessionCookie); err == nil {
		if err := h.sessions.Destroy(c.Request.Context(), sessionID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to destroy session"})
			return
		}
	}
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Explore serves the public equipment catalog; no session required
func (h *Handler) Explore(c *gin.Context) {
	client, _ := h.clientFor(c)
	equipment, err := client.AllEquipment(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, equipment)
}

// Profile serves the current user's profile
func (h *Handler) Profile(c *gin.Context) {
	client, _ := h.clientFor(c)
	profile, err := client.Profile(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// resourceResult is one independently fetched dashboard resource
type resourceResult struct {
	Data  any    `json:"data"`
	Error string `json:"error,omitempty"`
}

func toResourceResult[T any](r api.Result[T]) resourceResult {
	if r.Err != nil {
		return resourceResult{Error: r.Err.Error()}
	}
	return resourceResult{Data: r.Value}
}

// DashboardView serves profile, bookings, and owned equipment as independent
// results so the page can render partial data.
func (h *Handler) DashboardView(c *gin.Context) {
	client, rec := h.clientFor(c)
	d := client.FetchDashboard(c.Request.Context())

	if rec.triggered.Load() {
		abortUnauthenticated(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":   toResourceResult(d.Profile),
		"bookings":  toResourceResult(d.Bookings),
		"equipment": toResourceResult(d.Equipment),
	})
}

// ListBookings serves the current user's bookings
func (h *Handler) ListBookings(c *gin.Context) {
	client, _ := h.clientFor(c)
	bookings, err := client.UserBookings(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBooking reserves equipment for a rental date
func (h *Handler) CreateBooking(c *gin.Context) {
	var req api.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking payload"})
		return
	}

	client, _ := h.clientFor(c)
	booking, err := client.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// UpdateBooking changes an existing booking
func (h *Handler) UpdateBooking(c *gin.Context) {
	var req api.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking payload"})
		return
	}

	client, _ := h.clientFor(c)
	booking, err := client.UpdateBooking(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// DeleteBooking removes a booking
func (h *Handler) DeleteBooking(c *gin.Context) {
	client, _ := h.clientFor(c)
	if err := client.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}

// ListEquipment serves equipment owned by the current user
func (h *Handler) ListEquipment(c *gin.Context) {
	client, _ := h.clientFor(c)
	equipment, err := client.MyEquipment(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, equipment)
}

// CreateEquipment forwards a browser multipart submission to the backend
func (h *Handler) CreateEquipment(c *gin.Context) {
	form, cleanup, err := equipmentFormFromRequest(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer cleanup()

	client, _ := h.clientFor(c)
	equipment, err := client.CreateEquipment(c.Request.Context(), form)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, equipment)
}

// UpdateEquipment forwards a browser multipart update to the backend
func (h *Handler) UpdateEquipment(c *gin.Context) {
	form, cleanup, err := equipmentFormFromRequest(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer cleanup()

	client, _ := h.clientFor(c)
	equipment, err := client.UpdateEquipment(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, equipment)
}

// DeleteEquipment removes a piece of equipment
func (h *Handler) DeleteEquipment(c *gin.Context) {
	client, _ := h.clientFor(c)
	if err := client.DeleteEquipment(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "equipment deleted"})
}

// equipmentFormFromRequest maps an incoming browser multipart form onto the
// backend submission. The returned cleanup closes the image file and must be
// called after the submission completes.
func equipmentFormFromRequest(c *gin.Context) (api.EquipmentForm, func(), error) {
	form := api.EquipmentForm{
		Name:          c.PostForm("name"),
		Description:   c.PostForm("description"),
		Condition:     api.Condition(c.PostForm("condition")),
		RentalPrice:   c.PostForm("rentalPrice"),
		OwnerName:     c.PostForm("ownerName"),
		Address:       c.PostForm("address"),
		ContactNumber: c.PostForm("contactNumber"),
	}
	cleanup := func() {}

	if raw := c.PostForm("availabilityDate"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &form.Availability); err != nil {
			return form, cleanup, &api.ValidationError{
				Field:   "availabilityDate",
				Message: "availability date range is not valid JSON",
			}
		}
	}

	file, header, err := c.Request.FormFile("image")
	if err == nil {
		form.Image = &api.ImageFile{Name: header.Filename, Reader: file}
		cleanup = func() { file.Close() }
	}

	return form, cleanup, nil
}
