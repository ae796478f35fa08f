package store

import (
	"context"
	"errors"

	"womencare-server/internal/models"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// UserStore is the persistence interface for user accounts.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// PersonalStore is the persistence interface for questionnaire records.
type PersonalStore interface {
	Create(ctx context.Context, personal *models.Personal) error
}

// LabStore is the persistence interface for the lab reference data.
type LabStore interface {
	FindByID(ctx context.Context, id string) (*models.Lab, error)
	List(ctx context.Context) ([]models.Lab, error)
	// Upsert writes the given labs by ID, last write wins on fields.
	Upsert(ctx context.Context, labs []models.Lab) error
}

// BookingStore is the persistence interface for slot bookings.
type BookingStore interface {
	Create(ctx context.Context, booking *models.Booking) error
	// List returns all bookings ordered by creation time descending.
	List(ctx context.Context) ([]models.Booking, error)
	// Delete removes a booking by ID. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id string) error
}

// SessionStore is the persistence interface for login sessions.
type SessionStore interface {
	Create(ctx context.Context, session *models.Session) error
	FindByToken(ctx context.Context, token string) (*models.Session, error)
	// Delete destroys a session by token. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
}

// Stores bundles the per-entity stores handed to the services.
type Stores struct {
	Users     UserStore
	Personals PersonalStore
	Labs      LabStore
	Bookings  BookingStore
	Sessions  SessionStore
}
