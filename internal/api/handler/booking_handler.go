package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/casavia/realty-system/internal/api/metrics"
	"github.com/casavia/realty-system/internal/core/domain"
	"github.com/casavia/realty-system/internal/core/ports"
)

// BookingHandler handles visit booking requests and the status lifecycle.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

type createBookingRequest struct {
	PropertyID    string `json:"property_id" validate:"required"`
	VisitDate     string `json:"visit_date"  validate:"required,datetime=2006-01-02"`
	VisitTime     string `json:"visit_time"  validate:"required,datetime=15:04"`
	CustomerNotes string `json:"notes"`
}

type updateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes"`
}

type bookingResponse struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	VisitDate       string    `json:"visit_date"`
	VisitTime       string    `json:"visit_time"`
	CustomerNotes   string    `json:"customer_notes,omitempty"`
	OwnerNotes      string    `json:"owner_notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	PropertyID      string    `json:"property_id"`
	PropertyAddress string    `json:"property_address,omitempty"`
	PropertyCity    string    `json:"property_city,omitempty"`
	OwnerID         string    `json:"owner_id"`
	OwnerName       string    `json:"owner_name,omitempty"`
	CustomerID      string    `json:"customer_id"`
	CustomerName    string    `json:"customer_name,omitempty"`
}

func toBookingResponse(d *ports.BookingDetail) bookingResponse {
	return bookingResponse{
		ID:              d.ID,
		Status:          string(d.Status),
		PaymentStatus:   string(d.PaymentStatus),
		VisitDate:       d.VisitDate,
		VisitTime:       d.VisitTime,
		CustomerNotes:   d.CustomerNotes,
		OwnerNotes:      d.OwnerNotes,
		CreatedAt:       d.CreatedAt,
		PropertyID:      d.PropertyID,
		PropertyAddress: d.PropertyAddress,
		PropertyCity:    d.PropertyCity,
		OwnerID:         d.OwnerID,
		OwnerName:       d.OwnerName,
		CustomerID:      d.CustomerID,
		CustomerName:    d.CustomerName,
	}
}

func toBookingResponses(items []*ports.BookingDetail) []bookingResponse {
	out := make([]bookingResponse, 0, len(items))
	for _, d := range items {
		out = append(out, toBookingResponse(d))
	}
	return out
}

// Create handles POST /api/bookings. The customer side is always the caller.
//
// @Summary      Request a visit
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Visit request"
// @Success      201   {object}  bookingResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.Create(c.Request().Context(), ctxIdentity(c), ports.CreateBookingInput{
		PropertyID:    req.PropertyID,
		VisitDate:     req.VisitDate,
		VisitTime:     req.VisitTime,
		CustomerNotes: req.CustomerNotes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toBookingResponse(detail))
}

// Get handles GET /api/bookings/:id. Participants and admins only.
//
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  bookingResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/bookings/{id} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), ctxIdentity(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponse(detail))
}

// MyBookings handles GET /api/bookings/my/customer: the caller's bookings as customer.
//
// @Summary      List my visit requests
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   bookingResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/bookings/my/customer [get]
func (h *BookingHandler) MyBookings(c echo.Context) error {
	items, err := h.service.ListForCustomer(c.Request().Context(), ctxIdentity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponses(items))
}

// OwnerBookings handles GET /api/bookings/my/owner: bookings against the
// caller's listings.
//
// @Summary      List bookings on my listings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   bookingResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/bookings/my/owner [get]
func (h *BookingHandler) OwnerBookings(c echo.Context) error {
	items, err := h.service.ListForOwner(c.Request().Context(), ctxIdentity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponses(items))
}

// UpdateStatus handles PATCH /api/bookings/:id/status.
//
// @Summary      Update booking status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Booking ID"
// @Param        body  body      updateBookingStatusRequest  true  "Target status and optional notes"
// @Success      200   {object}  bookingResponse
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	var req updateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.UpdateStatus(c.Request().Context(), ctxIdentity(c), c.Param("id"), domain.BookingStatus(req.Status), req.Notes)
	if err != nil {
		return err
	}

	metrics.BookingTransitionsTotal.WithLabelValues(string(detail.Status)).Inc()
	return c.JSON(http.StatusOK, toBookingResponse(detail))
}

// ConfirmPayment handles POST /api/payments/booking/:id/confirm-manual. Owner-side
// or admin only.
//
// @Summary      Confirm booking payment
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  bookingResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/payments/booking/{id}/confirm-manual [post]
func (h *BookingHandler) ConfirmPayment(c echo.Context) error {
	detail, err := h.service.ConfirmPayment(c.Request().Context(), ctxIdentity(c), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.PaymentsConfirmedTotal.Inc()
	return c.JSON(http.StatusOK, toBookingResponse(detail))
}
