package handlers

import (
	"github.com/gin-gonic/gin"

	"womencare-server/internal/middleware"
	"womencare-server/internal/utils"
)

// PageHandler serves the static page endpoints.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Home handles the landing page.
func (h *PageHandler) Home(c *gin.Context) {
	utils.Success(c, "Welcome to WomenCare", nil)
}

// SignupPage handles the signup form page.
func (h *PageHandler) SignupPage(c *gin.Context) {
	utils.Success(c, "Signup", nil)
}

// LoginPage handles the login form page.
func (h *PageHandler) LoginPage(c *gin.Context) {
	utils.Success(c, "Login", nil)
}

// Precautions handles the precautions overview, prefilled with the session
// user's name when logged in.
func (h *PageHandler) Precautions(c *gin.Context) {
	utils.Success(c, "Precautions", gin.H{
		"name": middleware.SessionUserName(c),
	})
}

// PrecautionsForm handles the personal precautions intake form page.
func (h *PageHandler) PrecautionsForm(c *gin.Context) {
	utils.Success(c, "Personal precautions form", nil)
}

// Suggestions handles the placeholder suggestions page.
func (h *PageHandler) Suggestions(c *gin.Context) {
	utils.Success(c, "Suggestions page coming soon!", nil)
}
