// Package mailer delivers best-effort booking confirmation emails.
// Delivery failures are the caller's to log; they must never affect the
// outcome of the booking that triggered them.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"womencare-server/internal/config"
	"womencare-server/internal/models"
)

// Mailer is the interface for sending booking confirmations.
type Mailer interface {
	SendBookingConfirmation(booking models.Booking, lab models.Lab) error
}

// New returns an SMTP mailer when the configuration carries enough settings
// to attempt delivery, and a silent no-op mailer otherwise.
func New(cfg config.SMTPConfig) Mailer {
	if !cfg.Enabled() {
		return NoopMailer{}
	}
	return &SMTPMailer{cfg: cfg}
}

// NoopMailer discards all messages. Used when mail is not configured.
type NoopMailer struct{}

// SendBookingConfirmation does nothing.
func (NoopMailer) SendBookingConfirmation(models.Booking, models.Lab) error {
	return nil
}

// SMTPMailer sends confirmations through a configured SMTP relay.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// SendBookingConfirmation composes and delivers a plain-text confirmation
// addressed to the booking's email. Bookings without an email are skipped.
func (m *SMTPMailer) SendBookingConfirmation(booking models.Booking, lab models.Lab) error {
	if booking.Email == "" {
		return nil
	}

	subject, body := ComposeConfirmation(booking, lab)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", booking.Email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send booking confirmation: %w", err)
	}
	return nil
}

// ComposeConfirmation builds the subject and plain-text body of a booking
// confirmation referencing the lab name, date, time and booking id.
func ComposeConfirmation(booking models.Booking, lab models.Lab) (subject, body string) {
	subject = fmt.Sprintf("Booking confirmed at %s", lab.Name)
	body = fmt.Sprintf(
		"Dear %s,\n\nYour lab slot has been booked.\n\nLab: %s\nDate: %s\nTime: %s\nBooking reference: %s\n\nPlease arrive 10 minutes early and carry a photo ID.\n",
		booking.Name, lab.Name, booking.Date, booking.Time, booking.ID,
	)
	return subject, body
}
