package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"womencare-server/internal/config"
	"womencare-server/internal/mailer"
	"womencare-server/internal/middleware"
	"womencare-server/internal/models"
	"womencare-server/internal/services"
	"womencare-server/internal/store"
)

// -- In-memory stores for the full-surface tests --

type memUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func (m *memUserStore) Create(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	m.users[user.ID] = user
	return nil
}

func (m *memUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, store.ErrNotFound
}

type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func (m *memSessionStore) Create(_ context.Context, session *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.Token] = session
	return nil
}

func (m *memSessionStore) FindByToken(_ context.Context, token string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[token]; ok {
		return s, nil
	}
	return nil, store.ErrNotFound
}

func (m *memSessionStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

type memLabStore struct {
	mu   sync.Mutex
	labs map[string]models.Lab
}

func (m *memLabStore) FindByID(_ context.Context, id string) (*models.Lab, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if lab, ok := m.labs[id]; ok {
		return &lab, nil
	}
	return nil, store.ErrNotFound
}

func (m *memLabStore) List(_ context.Context) ([]models.Lab, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Lab, 0, len(m.labs))
	for _, lab := range m.labs {
		out = append(out, lab)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memLabStore) Upsert(_ context.Context, labs []models.Lab) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, lab := range labs {
		m.labs[lab.ID] = lab
	}
	return nil
}

type memBookingStore struct {
	mu       sync.Mutex
	bookings []models.Booking
	clock    time.Time
}

func (m *memBookingStore) Create(_ context.Context, booking *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	m.clock = m.clock.Add(time.Second)
	booking.CreatedAt = m.clock
	m.bookings = append(m.bookings, *booking)
	return nil
}

func (m *memBookingStore) List(_ context.Context) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Booking, len(m.bookings))
	copy(out, m.bookings)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memBookingStore) Delete(_ context.Context, id string) error {
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

func (m *memBookingStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bookings)
}

type memPersonalStore struct {
	mu      sync.Mutex
	records []models.Personal
}

func (m *memPersonalStore) Create(_ context.Context, personal *models.Personal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if personal.ID == "" {
		personal.ID = uuid.New().String()
	}
	m.records = append(m.records, *personal)
	return nil
}

// testApp wires the real router surface onto in-memory stores.
type testApp struct {
	router   *gin.Engine
	bookings *memBookingStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	stores := &store.Stores{
		Users:     &memUserStore{users: make(map[string]*models.User)},
		Sessions:  &memSessionStore{sessions: make(map[string]*models.Session)},
		Labs:      &memLabStore{labs: make(map[string]models.Lab)},
		Bookings:  &memBookingStore{clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		Personals: &memPersonalStore{},
	}
	if err := stores.Labs.Upsert(context.Background(), models.LabSeed()); err != nil {
		t.Fatalf("seeding labs: %v", err)
	}

	cfg := &config.Config{Environment: "development", SessionSecret: "test-secret", SessionTTLHours: 24}
	log := zerolog.Nop()

	authService := services.NewAuthService(stores.Users, stores.Sessions, 24*time.Hour, log)
	intakeService := services.NewIntakeService(stores.Personals, log)
	bookingService := services.NewBookingService(stores.Labs, stores.Bookings, stores.Users,
		models.DefaultDoctors(), mailer.NoopMailer{}, log)

	pageHandler := NewPageHandler()
	authHandler := NewAuthHandler(authService, cfg, log)
	precautionsHandler := NewPrecautionsHandler(intakeService, log)
	labHandler := NewLabHandler(bookingService, log)
	adminHandler := NewAdminHandler(bookingService, log)

	router := gin.New()
	router.Use(middleware.SessionMiddleware(stores.Sessions, cfg.SessionSecret, log))
	router.GET("/", pageHandler.Home)
	router.GET("/signup", pageHandler.SignupPage)
	router.POST("/signup", authHandler.Signup)
	router.GET("/login", pageHandler.LoginPage)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)
	router.GET("/precautions", pageHandler.Precautions)
	router.POST("/personalPrecautions", precautionsHandler.Submit)
	router.GET("/doctor", labHandler.Directory)
	router.GET("/book-slot/:id", labHandler.BookingForm)
	router.POST("/book-slot", labHandler.SubmitBooking)
	admin := router.Group("/admin")
	admin.Use(middleware.RequireSession())
	admin.GET("/bookings", adminHandler.ListBookings)
	admin.GET("/bookings/delete/:id", adminHandler.DeleteBooking)

	return &testApp{router: router, bookings: stores.Bookings.(*memBookingStore)}
}

func (app *testApp) postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	return rec
}

func (app *testApp) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	return rec
}

func signupForm() url.Values {
	return url.Values{
		"name":             {"Jane Doe"},
		"email":            {"jane@example.com"},
		"password":         {"hunter22"},
		"confirm_password": {"hunter22"},
	}
}

// login signs up and logs in, returning the session cookie.
func (app *testApp) login(t *testing.T) *http.Cookie {
	t.Helper()
	if rec := app.postForm("/signup", signupForm()); rec.Code != http.StatusFound {
		t.Fatalf("signup failed with status %d: %s", rec.Code, rec.Body.String())
	}
	rec := app.postForm("/login", url.Values{
		"email":    {"jane@example.com"},
		"password": {"hunter22"},
	})
	if rec.Code != http.StatusFound {
		t.Fatalf("login failed with status %d: %s", rec.Code, rec.Body.String())
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}

func TestSignup_RedirectsToLogin(t *testing.T) {
	app := newTestApp(t)

	rec := app.postForm("/signup", signupForm())
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %q", loc)
	}
}

func TestSignup_DuplicateEmailRerendersForm(t *testing.T) {
	app := newTestApp(t)
	app.postForm("/signup", signupForm())

	rec := app.postForm("/signup", signupForm())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 re-render, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Email already registered") {
		t.Errorf("expected duplicate-email message, got %s", rec.Body.String())
	}
}

func TestLogin_WrongPasswordRerendersForm(t *testing.T) {
	app := newTestApp(t)
	app.postForm("/signup", signupForm())

	rec := app.postForm("/login", url.Values{
		"email":    {"jane@example.com"},
		"password": {"wrong"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 re-render, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Incorrect password") {
		t.Errorf("expected bad-password message, got %s", rec.Body.String())
	}
}

func TestLogin_UnregisteredEmailStringRerendersForm(t *testing.T) {
	app := newTestApp(t)
	app.postForm("/signup", signupForm())

	rec := app.postForm("/login", url.Values{
		"email":    {"notanemail"},
		"password": {"hunter22"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 re-render, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Email not registered") {
		t.Errorf("expected unknown-email message, got %s", rec.Body.String())
	}
}

func TestSignup_AcceptsAnyEmailString(t *testing.T) {
	app := newTestApp(t)

	form := signupForm()
	form.Set("email", "notanemail")
	rec := app.postForm("/signup", form)
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %q", loc)
	}
}

func TestAdminBookings_GatedOnSession(t *testing.T) {
	app := newTestApp(t)

	if rec := app.get("/admin/bookings"); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without a session, got %d", rec.Code)
	}

	cookie := app.login(t)
	if rec := app.get("/admin/bookings", cookie); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with a session, got %d", rec.Code)
	}
}

func TestBookSlot_MalformedDateDoesNotPersist(t *testing.T) {
	app := newTestApp(t)

	rec := app.postForm("/book-slot", url.Values{
		"labId": {"lab1"},
		"name":  {"Jane Doe"},
		"date":  {"13/40/2024"},
		"time":  {"10:00"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 re-render, got %d", rec.Code)
	}
	if app.bookings.count() != 0 {
		t.Errorf("malformed booking was persisted: %d bookings", app.bookings.count())
	}

	var resp struct {
		Data struct {
			Errors []services.FieldError `json:"errors"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal re-render payload: %v", err)
	}
	hasDateError := false
	for _, fe := range resp.Data.Errors {
		if fe.Field == "date" {
			hasDateError = true
		}
	}
	if !hasDateError {
		t.Errorf("expected a date error, got %+v", resp.Data.Errors)
	}
}

func TestBookSlot_ValidFormCreatesBooking(t *testing.T) {
	app := newTestApp(t)

	rec := app.postForm("/book-slot", url.Values{
		"labId": {"lab1"},
		"name":  {"Jane Doe"},
		"date":  {"2025-06-01"},
		"time":  {"10:00"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if app.bookings.count() != 1 {
		t.Fatalf("expected exactly 1 booking, got %d", app.bookings.count())
	}
}

func TestBookSlot_UnknownLabIs404(t *testing.T) {
	app := newTestApp(t)

	if rec := app.get("/book-slot/nope"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown lab, got %d", rec.Code)
	}
}

func TestAdminDeleteBooking_RedirectsAndRemoves(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t)

	rec := app.postForm("/book-slot", url.Values{
		"labId": {"lab2"},
		"name":  {"Jane Doe"},
		"date":  {"2025-06-01"},
		"time":  {"09:30"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("booking failed: %d", rec.Code)
	}
	var created struct {
		Data services.BookingConfirmation `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal confirmation: %v", err)
	}

	del := app.get(fmt.Sprintf("/admin/bookings/delete/%s", created.Data.Booking.ID), cookie)
	if del.Code != http.StatusFound {
		t.Fatalf("expected 302 after delete, got %d", del.Code)
	}
	if loc := del.Header().Get("Location"); loc != "/admin/bookings" {
		t.Errorf("expected redirect to /admin/bookings, got %q", loc)
	}
	if app.bookings.count() != 0 {
		t.Errorf("booking not deleted: %d remain", app.bookings.count())
	}

	// Deleting the same id again is a no-op success.
	again := app.get(fmt.Sprintf("/admin/bookings/delete/%s", created.Data.Booking.ID), cookie)
	if again.Code != http.StatusFound {
		t.Fatalf("expected 302 for no-op delete, got %d", again.Code)
	}
}

func TestLogout_RedirectsHomeAndKillsSession(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t)

	rec := app.get("/logout", cookie)
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %q", loc)
	}

	if rec := app.get("/admin/bookings", cookie); rec.Code != http.StatusForbidden {
		t.Fatalf("session survived logout: got %d", rec.Code)
	}
}

func TestPersonalPrecautions_StoresSubmission(t *testing.T) {
	app := newTestApp(t)

	rec := app.postForm("/personalPrecautions", url.Values{
		"fullName":       {"Jane Doe"},
		"age":            {"29"},
		"gestationalAge": {"22"},
		"nausea":         {"occasional"},
		"diet":           {"vegetarian"},
		"hemoglobin":     {"11.2"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data models.Personal `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal saved record: %v", err)
	}
	if resp.Data.FullName != "Jane Doe" || resp.Data.Age != 29 {
		t.Errorf("saved record wrong: %+v", resp.Data)
	}
	if resp.Data.Symptoms.Data().Nausea != "occasional" {
		t.Errorf("symptoms not nested: %+v", resp.Data.Symptoms.Data())
	}
}
