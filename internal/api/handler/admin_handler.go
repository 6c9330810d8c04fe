package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/casavia/realty-system/internal/core/ports"
)

// AdminHandler exposes the admin surface. Every route behind it is mounted
// under RequireRole(ADMIN); the services enforce the same restriction again.
type AdminHandler struct {
	properties ports.PropertyService
	bookings   ports.BookingService
	contacts   ports.ContactService
}

func NewAdminHandler(properties ports.PropertyService, bookings ports.BookingService, contacts ports.ContactService) *AdminHandler {
	return &AdminHandler{properties: properties, bookings: bookings, contacts: contacts}
}

// ListProperties handles GET /api/admin/properties: all listings in any status.
//
// @Summary      List all listings
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Property
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/properties [get]
func (h *AdminHandler) ListProperties(c echo.Context) error {
	items, err := h.properties.ListAll(c.Request().Context(), ctxIdentity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// DeleteProperty handles DELETE /api/admin/properties/:id.
//
// @Summary      Delete any listing
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Property ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/properties/{id} [delete]
func (h *AdminHandler) DeleteProperty(c echo.Context) error {
	if err := h.properties.Delete(c.Request().Context(), ctxIdentity(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListBookings handles GET /api/admin/bookings: every booking in the system.
//
// @Summary      List all bookings
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   bookingResponse
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/bookings [get]
func (h *AdminHandler) ListBookings(c echo.Context) error {
	items, err := h.bookings.ListAll(c.Request().Context(), ctxIdentity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponses(items))
}

// ListMessages handles GET /api/admin/messages.
//
// @Summary      List contact messages
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.ContactMessage
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/messages [get]
func (h *AdminHandler) ListMessages(c echo.Context) error {
	items, err := h.contacts.ListAll(c.Request().Context(), ctxIdentity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// MarkMessageRead handles PUT /api/admin/messages/:id/read.
//
// @Summary      Mark a contact message read
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Message ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/messages/{id}/read [put]
func (h *AdminHandler) MarkMessageRead(c echo.Context) error {
	if err := h.contacts.MarkRead(c.Request().Context(), ctxIdentity(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
