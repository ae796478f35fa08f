package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"womencare-server/internal/models"
	"womencare-server/internal/store"
	"womencare-server/internal/utils"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "wc_session"

const sessionContextKey = "session"

// SignSessionToken builds the cookie value for a session token: the token
// followed by an HMAC-SHA256 signature under the session secret, so a
// tampered cookie never reaches the session store.
func SignSessionToken(token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return token + "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// VerifySessionCookie checks a cookie value's signature and returns the bare
// session token. A missing or invalid signature yields ok = false.
func VerifySessionCookie(value, secret string) (token string, ok bool) {
	token, _, found := strings.Cut(value, ".")
	if !found || token == "" {
		return "", false
	}
	if !hmac.Equal([]byte(value), []byte(SignSessionToken(token, secret))) {
		return "", false
	}
	return token, true
}

// SessionMiddleware resolves the session cookie against the session store and
// puts the session on the request context. Requests without a valid session
// pass through unauthenticated; expiry is checked here and expired rows are
// removed lazily.
func SessionMiddleware(sessions store.SessionStore, secret string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(SessionCookieName)
		if err != nil || value == "" {
			c.Next()
			return
		}

		token, ok := VerifySessionCookie(value, secret)
		if !ok {
			c.Next()
			return
		}

		session, err := sessions.FindByToken(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				log.Error().Err(err).Msg("session lookup failed")
			}
			c.Next()
			return
		}

		if session.Expired(time.Now()) {
			if err := sessions.Delete(c.Request.Context(), token); err != nil {
				log.Error().Err(err).Msg("expired session cleanup failed")
			}
			c.Next()
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// RequireSession gates a route on an active session. Any authenticated user
// passes; there is no role model.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetSessionFromContext(c); !ok {
			utils.Forbidden(c, "You must be logged in to access this page")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSessionFromContext returns the active session, if any.
func GetSessionFromContext(c *gin.Context) (*models.Session, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*models.Session)
	return session, ok
}

// SessionUserName returns the logged-in user's name, or "" when anonymous.
func SessionUserName(c *gin.Context) string {
	if session, ok := GetSessionFromContext(c); ok {
		return session.UserName
	}
	return ""
}

// SessionUserEmail returns the logged-in user's email, or "" when anonymous.
func SessionUserEmail(c *gin.Context) string {
	if session, ok := GetSessionFromContext(c); ok {
		return session.UserEmail
	}
	return ""
}
