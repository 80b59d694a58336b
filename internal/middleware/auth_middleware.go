package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	appauth "github.com/hooplannedthis/api/internal/app/auth"
	"github.com/hooplannedthis/api/internal/app/models/dto"
	"github.com/hooplannedthis/api/internal/pkg/auth"
)

// AdminTokenHeader carries the admin unlock token when the Authorization
// header is used by the member session
const AdminTokenHeader = "X-Admin-Token"

// AuthMiddleware builds the authorization context of each request
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, details string) {
	errorDetail := dto.NewErrorDetail(code, "Authentication failed").WithDetails(details)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}

func tokenErrorCode(err error) (dto.ErrorCode, string) {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return dto.ErrorCodeExpiredToken, "Token has expired"
	case errors.Is(err, auth.ErrInvalidFormat):
		return dto.ErrorCodeInvalidToken, "Invalid token format"
	default:
		return dto.ErrorCodeInvalidToken, "Invalid token"
	}
}

// Authenticate reads the optional tokens and stores an appauth.Context.
// Requests without tokens continue anonymously; a presented token that does
// not validate is rejected.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		ac := appauth.Anonymous

		if header := strings.TrimSpace(c.GetHeader("Authorization")); header != "" {
			tokenString, err := auth.ExtractBearerToken(header)
			if err != nil {
				abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token format")
				return
			}

			// The bearer token is either an admin unlock token or a member session
			if claims, adminErr := m.jwtService.ValidateAdminToken(tokenString); adminErr == nil {
				ac.Admin = claims.Admin
			} else {
				claims, err := m.jwtService.ValidateMemberToken(tokenString)
				if err != nil {
					if errors.Is(adminErr, auth.ErrExpiredToken) {
						err = adminErr
					}
					code, details := tokenErrorCode(err)
					abortUnauthorized(c, code, details)
					return
				}
				id, _ := claims.MemberID()
				ac.MemberID = id
				ac.Email = claims.Email
			}
		}

		if adminToken := strings.TrimSpace(c.GetHeader(AdminTokenHeader)); adminToken != "" {
			claims, err := m.jwtService.ValidateAdminToken(strings.TrimPrefix(adminToken, "Bearer "))
			if err != nil {
				code, details := tokenErrorCode(err)
				abortUnauthorized(c, code, details)
				return
			}
			ac.Admin = claims.Admin
		}

		appauth.Set(c, ac)
		c.Next()
	}
}

// RequireAdmin lets only unlocked admin requests through
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := appauth.FromGin(c).RequireAdmin(); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Admin access is locked").
				WithDetails("Unlock admin access with POST /api/v1/admin/unlock")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}
		c.Next()
	}
}

// RequireMember lets only requests with a member session through
func (m *AuthMiddleware) RequireMember() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !appauth.FromGin(c).IsMember() {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Member session token missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}
		c.Next()
	}
}
