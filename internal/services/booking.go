package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"womencare-server/internal/mailer"
	"womencare-server/internal/models"
	"womencare-server/internal/store"
)

// BookingService lists labs, validates and persists slot bookings, and
// exposes the admin booking views.
type BookingService struct {
	labs     store.LabStore
	bookings store.BookingStore
	users    store.UserStore
	doctors  []models.Doctor
	mailer   mailer.Mailer
	validate *validator.Validate
	log      zerolog.Logger
}

// NewBookingService creates a new BookingService. The doctors slice is the
// read-only reference list shown alongside labs.
func NewBookingService(labs store.LabStore, bookings store.BookingStore, users store.UserStore, doctors []models.Doctor, m mailer.Mailer, log zerolog.Logger) *BookingService {
	return &BookingService{
		labs:     labs,
		bookings: bookings,
		users:    users,
		doctors:  doctors,
		mailer:   m,
		validate: validator.New(),
		log:      log,
	}
}

// LabDirectory is the lab listing plus the static doctor reference list.
type LabDirectory struct {
	Labs    []models.Lab    `json:"labs"`
	Doctors []models.Doctor `json:"doctors"`
}

// ListLabs returns all labs and the doctor reference list.
func (s *BookingService) ListLabs(ctx context.Context) (*LabDirectory, error) {
	labs, err := s.labs.List(ctx)
	if err != nil {
		return nil, err
	}
	return &LabDirectory{Labs: labs, Doctors: s.doctors}, nil
}

// BookingForm carries the slot-booking fields as submitted.
type BookingForm struct {
	LabID string `json:"labId"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Notes string `json:"notes,omitempty"`
}

// FieldError is one violated booking validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// BookingPage is the booking form context: the lab, an optional prefill
// profile, and on re-render the original input plus collected errors.
type BookingPage struct {
	Lab     *models.Lab           `json:"lab"`
	Prefill *models.UserSanitized `json:"prefill,omitempty"`
	Form    *BookingForm          `json:"form,omitempty"`
	Errors  []FieldError          `json:"errors,omitempty"`
}

// BookingConfirmation is returned after a successful booking.
type BookingConfirmation struct {
	Lab     models.Lab     `json:"lab"`
	Booking models.Booking `json:"booking"`
}

// GetBookingForm resolves the lab and optional prefill profile for the
// booking form. prefillEmail comes from the session or a query parameter;
// an email that matches no user simply yields no prefill.
func (s *BookingService) GetBookingForm(ctx context.Context, labID, prefillEmail string) (*BookingPage, error) {
	lab, err := s.labs.FindByID(ctx, labID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrLabNotFound
		}
		return nil, err
	}

	page := BookingPage{Lab: lab}
	if prefill, err := s.lookupPrefill(ctx, prefillEmail); err != nil {
		return nil, err
	} else if prefill != nil {
		page.Prefill = prefill
	}
	return &page, nil
}

// ValidateBookingForm runs every rule independently and collects all
// violations rather than short-circuiting on the first.
func (s *BookingService) ValidateBookingForm(form BookingForm) []FieldError {
	var errs []FieldError

	if form.LabID == "" {
		errs = append(errs, FieldError{Field: "labId", Message: "lab is required"})
	}
	if strings.TrimSpace(form.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if phone := strings.TrimSpace(form.Phone); phone != "" && len(phone) < 7 {
		errs = append(errs, FieldError{Field: "phone", Message: "phone number looks too short"})
	}
	if form.Email != "" {
		if err := s.validate.Var(form.Email, "email"); err != nil {
			errs = append(errs, FieldError{Field: "email", Message: "email address is not valid"})
		}
	}
	if form.Date == "" {
		errs = append(errs, FieldError{Field: "date", Message: "date is required"})
	} else if _, err := time.Parse("2006-01-02", form.Date); err != nil {
		errs = append(errs, FieldError{Field: "date", Message: "date must be a valid YYYY-MM-DD date"})
	}
	if form.Time == "" {
		errs = append(errs, FieldError{Field: "time", Message: "time is required"})
	}

	return errs
}

// SubmitBooking validates and persists a slot booking. On validation failure
// it returns the form page re-populated with the original input and the
// collected errors so the form state survives the round trip. On success the
// confirmation email is dispatched without awaiting its outcome.
func (s *BookingService) SubmitBooking(ctx context.Context, form BookingForm, prefillEmail string) (*BookingConfirmation, *BookingPage, error) {
	if fieldErrs := s.ValidateBookingForm(form); len(fieldErrs) > 0 {
		page, err := s.rerenderPage(ctx, form, prefillEmail, fieldErrs)
		if err != nil {
			return nil, nil, err
		}
		return nil, page, nil
	}

	lab, err := s.labs.FindByID(ctx, form.LabID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrLabNotFound
		}
		return nil, nil, err
	}

	booking := models.Booking{
		LabID: lab.ID,
		Name:  strings.TrimSpace(form.Name),
		Phone: strings.TrimSpace(form.Phone),
		Email: form.Email,
		Date:  form.Date,
		Time:  form.Time,
		Notes: form.Notes,
	}
	if err := s.bookings.Create(ctx, &booking); err != nil {
		return nil, nil, err
	}

	// Fire-and-forget: the response never waits on mail delivery and a
	// failed send never rolls the booking back.
	go s.dispatchConfirmation(booking, *lab)

	s.log.Info().Str("bookingId", booking.ID).Str("labId", lab.ID).Msg("booking created")
	return &BookingConfirmation{Lab: *lab, Booking: booking}, nil, nil
}

func (s *BookingService) dispatchConfirmation(booking models.Booking, lab models.Lab) {
	if err := s.mailer.SendBookingConfirmation(booking, lab); err != nil {
		s.log.Error().Err(err).Str("bookingId", booking.ID).Msg("booking confirmation email failed")
	}
}

// rerenderPage rebuilds the form page after a validation failure. The lab is
// re-fetched and may be absent; the page is returned either way so the user
// sees their input and the errors.
func (s *BookingService) rerenderPage(ctx context.Context, form BookingForm, prefillEmail string, fieldErrs []FieldError) (*BookingPage, error) {
	page := BookingPage{Form: &form, Errors: fieldErrs}

	if form.LabID != "" {
		lab, err := s.labs.FindByID(ctx, form.LabID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		page.Lab = lab
	}

	prefill, err := s.lookupPrefill(ctx, prefillEmail)
	if err != nil {
		return nil, err
	}
	page.Prefill = prefill

	return &page, nil
}

func (s *BookingService) lookupPrefill(ctx context.Context, email string) (*models.UserSanitized, error) {
	if email == "" {
		return nil, nil
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	sanitized := user.Sanitize()
	return &sanitized, nil
}

// ListBookings returns all bookings newest first, joined in-memory against
// the lab names for display.
func (s *BookingService) ListBookings(ctx context.Context) ([]models.BookingView, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}

	labs, err := s.labs.List(ctx)
	if err != nil {
		return nil, err
	}
	labNames := make(map[string]string, len(labs))
	for _, lab := range labs {
		labNames[lab.ID] = lab.Name
	}

	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, models.BookingView{Booking: b, LabName: labNames[b.LabID]})
	}
	return views, nil
}

// DeleteBooking removes a booking. Deleting an id that does not exist is a
// no-op success.
func (s *BookingService) DeleteBooking(ctx context.Context, id string) error {
	return s.bookings.Delete(ctx, id)
}
