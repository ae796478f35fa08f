package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"womencare-server/internal/config"
	"womencare-server/internal/middleware"
	"womencare-server/internal/services"
	"womencare-server/internal/utils"
)

// AuthHandler handles signup, login and logout requests.
type AuthHandler struct {
	Auth *services.AuthService
	Cfg  *config.Config
	Log  zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *services.AuthService, cfg *config.Config, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Cfg: cfg, Log: log}
}

// SignupRequest represents the signup form submission. Email shape is not
// checked at bind time: the signup flow stores whatever address was typed,
// and login resolves unknown strings through the not-registered path.
type SignupRequest struct {
	Name            string `form:"name" json:"name" binding:"required"`
	Email           string `form:"email" json:"email" binding:"required"`
	Password        string `form:"password" json:"password" binding:"required"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password" binding:"required"`
}

// Signup handles user registration. On success the client is redirected to
// the login page; input failures re-render the form with a message.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequest(c, "Invalid signup form: "+err.Error())
		return
	}

	_, err := h.Auth.Register(c.Request.Context(), services.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	switch {
	case errors.Is(err, services.ErrPasswordMismatch):
		utils.FormMessage(c, "Passwords do not match", nil)
	case errors.Is(err, services.ErrEmailTaken):
		utils.FormMessage(c, "Email already registered", nil)
	case err != nil:
		h.Log.Error().Err(err).Msg("signup failed")
		utils.InternalServerError(c)
	default:
		c.Redirect(http.StatusFound, "/login")
	}
}

// LoginRequest represents the login form submission.
type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// Login handles user login. On success a session cookie is set and the
// client is redirected to the precautions page.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequest(c, "Invalid login form: "+err.Error())
		return
	}

	session, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrUnknownEmail):
		utils.FormMessage(c, "Email not registered", nil)
		return
	case errors.Is(err, services.ErrBadPassword):
		utils.FormMessage(c, "Incorrect password", nil)
		return
	case err != nil:
		h.Log.Error().Err(err).Msg("login failed")
		utils.InternalServerError(c)
		return
	}

	c.SetCookie(
		middleware.SessionCookieName,
		middleware.SignSessionToken(session.Token, h.Cfg.SessionSecret),
		h.Cfg.SessionTTLHours*60*60,
		"/",
		"",
		h.Cfg.Environment != "development",
		true,
	)
	c.Redirect(http.StatusFound, "/precautions")
}

// Logout destroys the current session, clears the cookie and redirects home.
// Logging out without a session is not an error.
func (h *AuthHandler) Logout(c *gin.Context) {
	value, _ := c.Cookie(middleware.SessionCookieName)
	// An absent or tampered cookie verifies to "", and destroying no
	// session is not an error.
	token, _ := middleware.VerifySessionCookie(value, h.Cfg.SessionSecret)
	if err := h.Auth.Logout(c.Request.Context(), token); err != nil {
		h.Log.Error().Err(err).Msg("logout failed")
		utils.InternalServerError(c)
		return
	}

	c.SetCookie(
		middleware.SessionCookieName,
		"",
		-1,
		"/",
		"",
		h.Cfg.Environment != "development",
		true,
	)
	c.Redirect(http.StatusFound, "/")
}
