package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"womencare-server/internal/models"
	"womencare-server/internal/store"
)

// -- Mock stores --

type mockUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[string]*models.User)}
}

func (m *mockUserStore) Create(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return fmt.Errorf("duplicate email %q", user.Email)
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *mockUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *mockUserStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

type mockSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: make(map[string]*models.Session)}
}

func (m *mockSessionStore) Create(_ context.Context, session *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	session.CreatedAt = time.Now()
	m.sessions[session.Token] = session
	return nil
}

func (m *mockSessionStore) FindByToken(_ context.Context, token string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (m *mockSessionStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

func (m *mockSessionStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

type mockLabStore struct {
	mu   sync.Mutex
	labs map[string]models.Lab
}

func newMockLabStore(labs ...models.Lab) *mockLabStore {
	m := &mockLabStore{labs: make(map[string]models.Lab)}
	for _, lab := range labs {
		m.labs[lab.ID] = lab
	}
	return m
}

func (m *mockLabStore) FindByID(_ context.Context, id string) (*models.Lab, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	lab, ok := m.labs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &lab, nil
}

func (m *mockLabStore) List(_ context.Context) ([]models.Lab, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Lab, 0, len(m.labs))
	for _, lab := range m.labs {
		out = append(out, lab)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockLabStore) Upsert(_ context.Context, labs []models.Lab) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, lab := range labs {
		m.labs[lab.ID] = lab
	}
	return nil
}

type mockBookingStore struct {
	mu       sync.Mutex
	bookings []models.Booking
	clock    time.Time
}

func newMockBookingStore() *mockBookingStore {
	return &mockBookingStore{clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *mockBookingStore) Create(_ context.Context, booking *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	// Strictly increasing timestamps so descending order is deterministic.
	m.clock = m.clock.Add(time.Second)
	booking.CreatedAt = m.clock
	m.bookings = append(m.bookings, *booking)
	return nil
}

func (m *mockBookingStore) List(_ context.Context) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Booking, len(m.bookings))
	copy(out, m.bookings)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockBookingStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.bookings[:0]
	for _, b := range m.bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	m.bookings = kept
	return nil
}

func (m *mockBookingStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bookings)
}

type mockPersonalStore struct {
	mu      sync.Mutex
	records []models.Personal
}

func newMockPersonalStore() *mockPersonalStore {
	return &mockPersonalStore{}
}

func (m *mockPersonalStore) Create(_ context.Context, personal *models.Personal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if personal.ID == "" {
		personal.ID = uuid.New().String()
	}
	personal.CreatedAt = time.Now()
	m.records = append(m.records, *personal)
	return nil
}

// -- Mock mailer --

type mailerCall struct {
	Booking models.Booking
	Lab     models.Lab
}

type mockMailer struct {
	mu    sync.Mutex
	calls []mailerCall
	sent  chan struct{}
	err   error
}

func newMockMailer() *mockMailer {
	return &mockMailer{sent: make(chan struct{}, 16)}
}

func (m *mockMailer) SendBookingConfirmation(booking models.Booking, lab models.Lab) error {
	m.mu.Lock()
	m.calls = append(m.calls, mailerCall{Booking: booking, Lab: lab})
	m.mu.Unlock()
	m.sent <- struct{}{}
	return m.err
}

func (m *mockMailer) Calls() []mailerCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]mailerCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// waitForSend blocks until the mailer records a call or the timeout passes.
func (m *mockMailer) waitForSend(timeout time.Duration) bool {
	select {
	case <-m.sent:
		return true
	case <-time.After(timeout):
		return false
	}
}
