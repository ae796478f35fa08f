package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"womencare-server/internal/services"
	"womencare-server/internal/utils"
)

// AdminHandler handles the booking review endpoints. Any logged-in user
// passes the session gate; there is no separate admin role.
type AdminHandler struct {
	Booking *services.BookingService
	Log     zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(booking *services.BookingService, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{Booking: booking, Log: log}
}

// ListBookings handles the admin booking list, newest first, with each
// booking carrying its lab name.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Booking.ListBookings(c.Request.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("booking list failed")
		utils.InternalServerError(c)
		return
	}

	utils.Success(c, "Bookings", bookings)
}

// DeleteBooking removes a booking and redirects back to the list. Deleting
// an id that no longer exists is a no-op success.
func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	if err := h.Booking.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		h.Log.Error().Err(err).Msg("booking delete failed")
		utils.InternalServerError(c)
		return
	}

	c.Redirect(http.StatusFound, "/admin/bookings")
}
