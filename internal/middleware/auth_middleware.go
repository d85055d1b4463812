package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/pkg/apperrors"
	"github.com/yigit/intlportal/internal/pkg/auth"
)

// Context keys set by the authentication middleware.
const (
	ContextUserID    = "userID"
	ContextEmail     = "email"
	ContextRole      = "roleType"
	ContextSessionID = "sessionID"
)

// SessionChecker reports whether a session is still open. A token outlives
// its session after logout, so the signature alone is not enough.
type SessionChecker interface {
	Active(sessionID string) bool
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	sessions   SessionChecker
	cookieName string
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, sessions SessionChecker, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		sessions:   sessions,
		cookieName: cookieName,
	}
}

// authenticate extracts and checks the session token from the Authorization
// header, falling back to the session cookie.
func (m *AuthMiddleware) authenticate(c *gin.Context) (*auth.Claims, error) {
	tokenString := ""
	if header := c.GetHeader("Authorization"); header != "" {
		var err error
		if tokenString, err = auth.ExtractBearerToken(header); err != nil {
			return nil, err
		}
	} else if cookie, err := c.Cookie(m.cookieName); err == nil {
		tokenString = cookie
	}
	if tokenString == "" {
		return nil, apperrors.ErrSessionNotFound
	}

	claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
	if err != nil {
		return nil, err
	}
	if !m.sessions.Active(claims.SessionID()) {
		return nil, apperrors.ErrSessionNotFound
	}
	return claims, nil
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextEmail, claims.Email)
	c.Set(ContextRole, claims.Role)
	c.Set(ContextSessionID, claims.SessionID())
}

// JWTAuth middleware for API routes. Failures are answered with 401.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.authenticate(c)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			errorDetails := "Invalid token"
			switch {
			case errors.Is(err, apperrors.ErrTokenExpired):
				errorCode = dto.ErrorCodeExpiredToken
				errorDetails = "Token has expired"
			case errors.Is(err, apperrors.ErrSessionNotFound):
				errorCode = dto.ErrorCodeUnauthorized
				errorDetails = "No active session"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Authentication required").WithDetails(errorDetails)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// PageAuth middleware for HTML routes. Without a session the browser is
// sent to loginPath.
func (m *AuthMiddleware) PageAuth(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.authenticate(c)
		if err != nil {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// RoleRequired middleware to check if user has one of the required roles
func (m *AuthMiddleware) RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("User role not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		current, _ := role.(models.Role)
		for _, r := range roles {
			if current == r {
				c.Next()
				return
			}
		}

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
			WithDetails("This screen is not available for your role")
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	}
}

// SessionID returns the session id stored by the auth middleware.
func SessionID(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}

// Role returns the role stored by the auth middleware.
func Role(c *gin.Context) models.Role {
	role, _ := c.Get(ContextRole)
	r, _ := role.(models.Role)
	return r
}
