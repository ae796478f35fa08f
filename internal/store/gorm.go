package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"womencare-server/internal/models"
)

// NewGormStores wires all entity stores onto one gorm connection.
func NewGormStores(db *gorm.DB) *Stores {
	return &Stores{
		Users:     &gormUserStore{db: db},
		Personals: &gormPersonalStore{db: db},
		Labs:      &gormLabStore{db: db},
		Bookings:  &gormBookingStore{db: db},
		Sessions:  &gormSessionStore{db: db},
	}
}

type gormUserStore struct {
	db *gorm.DB
}

func (s *gormUserStore) Create(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *gormUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *gormUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

type gormPersonalStore struct {
	db *gorm.DB
}

func (s *gormPersonalStore) Create(ctx context.Context, personal *models.Personal) error {
	return s.db.WithContext(ctx).Create(personal).Error
}

type gormLabStore struct {
	db *gorm.DB
}

func (s *gormLabStore) FindByID(ctx context.Context, id string) (*models.Lab, error) {
	var lab models.Lab
	if err := s.db.WithContext(ctx).First(&lab, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &lab, nil
}

func (s *gormLabStore) List(ctx context.Context) ([]models.Lab, error) {
	var labs []models.Lab
	if err := s.db.WithContext(ctx).Order("id asc").Find(&labs).Error; err != nil {
		return nil, err
	}
	return labs, nil
}

func (s *gormLabStore) Upsert(ctx context.Context, labs []models.Lab) error {
	if len(labs) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&labs).Error
}

type gormBookingStore struct {
	db *gorm.DB
}

func (s *gormBookingStore) Create(ctx context.Context, booking *models.Booking) error {
	return s.db.WithContext(ctx).Create(booking).Error
}

func (s *gormBookingStore) List(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *gormBookingStore) Delete(ctx context.Context, id string) error {
	// gorm's Delete is a no-op when no row matches, which is the behavior we want.
	return s.db.WithContext(ctx).Delete(&models.Booking{}, "id = ?", id).Error
}

type gormSessionStore struct {
	db *gorm.DB
}

func (s *gormSessionStore) Create(ctx context.Context, session *models.Session) error {
	return s.db.WithContext(ctx).Create(session).Error
}

func (s *gormSessionStore) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	if err := s.db.WithContext(ctx).First(&session, "token = ?", token).Error; err != nil {
		return nil, translate(err)
	}
	return &session, nil
}

func (s *gormSessionStore) Delete(ctx context.Context, token string) error {
	return s.db.WithContext(ctx).Delete(&models.Session{}, "token = ?", token).Error
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
