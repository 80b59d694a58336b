// Package auth carries the per-request authorization context. Middleware
// builds it from the bearer token; handlers and route groups only read it.
package auth

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hooplannedthis/api/internal/pkg/apperrors"
)

// contextKey is where the Context lives in the gin context
const contextKey = "authContext"

// Context is the caller's identity for one request
type Context struct {
	MemberID uuid.UUID
	Email    string
	Admin    bool
}

// Anonymous is the context of a request without a valid token
var Anonymous = Context{}

// IsMember reports whether a member token was presented
func (c Context) IsMember() bool {
	return c.MemberID != uuid.Nil
}

// RequireAdmin fails unless the admin unlock token was presented
func (c Context) RequireAdmin() error {
	if !c.Admin {
		return apperrors.NewForbiddenError("Admin access is locked")
	}
	return nil
}

// RequireMember returns the caller's member id
func (c Context) RequireMember() (uuid.UUID, error) {
	if !c.IsMember() {
		return uuid.Nil, fmt.Errorf("%w: member token required", apperrors.ErrUnauthorized)
	}
	return c.MemberID, nil
}

// Set stores the context on the request
func Set(ctx *gin.Context, c Context) {
	ctx.Set(contextKey, c)
}

// FromGin returns the stored context, or Anonymous
func FromGin(ctx *gin.Context) Context {
	if v, ok := ctx.Get(contextKey); ok {
		if c, ok := v.(Context); ok {
			return c
		}
	}
	return Anonymous
}
