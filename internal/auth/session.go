package auth

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/beken0w/yatube/internal/models"
)

// SessionCookie is the name of the session cookie
const SessionCookie = "yatube_session"

const actorContextKey = "actor"

// Claims are the session claims carried in the signed cookie
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// IssueToken signs a session token for the user
func (s *Service) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken validates a session token and returns its claims
func (s *Service) ParseToken(raw string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenExpired
	}
	return &claims, nil
}

// SetSessionCookie writes the session cookie on the response
func (s *Service) SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(SessionCookie, token, int(s.sessionTTL/time.Second), "/", "", false, true)
}

// ClearSessionCookie removes the session cookie
func (s *Service) ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}

// Middleware resolves the current actor from the session cookie and
// stores it in the request context. Requests without a valid session
// proceed anonymously.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(SessionCookie)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		claims, err := s.ParseToken(raw)
		if err != nil {
			c.Next()
			return
		}

		user, err := s.users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil || user == nil {
			c.Next()
			return
		}

		c.Set(actorContextKey, user)
		c.Next()
	}
}

// CurrentActor returns the authenticated user for the request, or nil
func CurrentActor(c *gin.Context) *models.User {
	value, ok := c.Get(actorContextKey)
	if !ok {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// RequireActor aborts with a login redirect when the request is
// anonymous, preserving the originally requested path as the return
// target.
func RequireActor(c *gin.Context) *models.User {
	actor := CurrentActor(c)
	if actor == nil {
		c.Redirect(http.StatusFound, LoginRedirect(c.Request.URL.Path))
		c.Abort()
		return nil
	}
	return actor
}

// LoginRedirect builds the login URL with the return target. The path
// is query-escaped with slashes kept literal, so a plain path reads
// as-is while query metacharacters in it cannot split the parameter.
func LoginRedirect(next string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(next), "%2F", "/")
	return "/auth/login/?next=" + escaped
}
