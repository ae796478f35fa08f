package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"womencare-server/internal/models"
	"womencare-server/internal/store"
)

// AuthService registers users, authenticates logins and manages sessions.
type AuthService struct {
	users      store.UserStore
	sessions   store.SessionStore
	sessionTTL time.Duration
	log        zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(users store.UserStore, sessions store.SessionStore, sessionTTL time.Duration, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		log:        log,
	}
}

// RegisterInput carries the signup form fields.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Register creates a new user account. The password is stored bcrypt-hashed.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	user := models.User{
		Name:  in.Name,
		Email: in.Email,
	}
	if err := user.SetPassword(in.Password); err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, &user); err != nil {
		return nil, err
	}

	s.log.Info().Str("userId", user.ID).Str("email", user.Email).Msg("user registered")
	return &user, nil
}

// Login verifies credentials and establishes a new session bound to the user.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnknownEmail
		}
		return nil, err
	}

	if !user.CheckPassword(password) {
		return nil, ErrBadPassword
	}

	session := models.Session{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		UserEmail: user.Email,
		UserName:  user.Name,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, &session); err != nil {
		return nil, err
	}

	s.log.Info().Str("userId", user.ID).Msg("session established")
	return &session, nil
}

// Logout destroys the session for the given token. Destroying a session that
// no longer exists is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}
