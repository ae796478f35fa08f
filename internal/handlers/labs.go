package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"womencare-server/internal/middleware"
	"womencare-server/internal/services"
	"womencare-server/internal/utils"
)

// LabHandler handles lab browsing and slot booking requests.
type LabHandler struct {
	Booking *services.BookingService
	Log     zerolog.Logger
}

// NewLabHandler creates a new LabHandler.
func NewLabHandler(booking *services.BookingService, log zerolog.Logger) *LabHandler {
	return &LabHandler{Booking: booking, Log: log}
}

// Directory handles the lab/doctor listing page. The greeting name comes
// from the session when logged in, or a query parameter otherwise.
func (h *LabHandler) Directory(c *gin.Context) {
	directory, err := h.Booking.ListLabs(c.Request.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("lab listing failed")
		utils.InternalServerError(c)
		return
	}

	name := middleware.SessionUserName(c)
	if name == "" {
		name = c.Query("name")
	}

	utils.Success(c, "Labs and doctors", gin.H{
		"name":    name,
		"labs":    directory.Labs,
		"doctors": directory.Doctors,
	})
}

// BookingForm handles the booking form page for one lab, prefilled from the
// session user or a query-supplied email when either resolves to a profile.
func (h *LabHandler) BookingForm(c *gin.Context) {
	prefillEmail := middleware.SessionUserEmail(c)
	if prefillEmail == "" {
		prefillEmail = c.Query("email")
	}

	page, err := h.Booking.GetBookingForm(c.Request.Context(), c.Param("id"), prefillEmail)
	if err != nil {
		if errors.Is(err, services.ErrLabNotFound) {
			utils.NotFound(c, "Lab not found")
			return
		}
		h.Log.Error().Err(err).Msg("booking form failed")
		utils.InternalServerError(c)
		return
	}

	utils.Success(c, "Book a slot", page)
}

// BookingRequest represents the slot-booking form submission.
type BookingRequest struct {
	LabID string `form:"labId" json:"labId"`
	Name  string `form:"name" json:"name"`
	Phone string `form:"phone" json:"phone"`
	Email string `form:"email" json:"email"`
	Date  string `form:"date" json:"date"`
	Time  string `form:"time" json:"time"`
	Notes string `form:"notes" json:"notes"`
}

// SubmitBooking validates and persists a slot booking. Validation failures
// re-render the form with the collected errors and the original input.
func (h *LabHandler) SubmitBooking(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequest(c, "Invalid booking form: "+err.Error())
		return
	}

	prefillEmail := middleware.SessionUserEmail(c)
	if prefillEmail == "" {
		prefillEmail = req.Email
	}

	confirmation, invalid, err := h.Booking.SubmitBooking(c.Request.Context(), services.BookingForm{
		LabID: req.LabID,
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Date:  req.Date,
		Time:  req.Time,
		Notes: req.Notes,
	}, prefillEmail)
	if err != nil {
		if errors.Is(err, services.ErrLabNotFound) {
			utils.NotFound(c, "Lab not found")
			return
		}
		h.Log.Error().Err(err).Msg("booking submit failed")
		utils.InternalServerError(c)
		return
	}
	if invalid != nil {
		utils.FormMessage(c, "Please correct the highlighted fields", invalid)
		return
	}

	utils.Created(c, "Slot booked successfully", confirmation)
}
