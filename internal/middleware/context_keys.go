package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const (
	// userIDKey is the key used to store the authenticated user's ID.
	userIDKey = contextKey("userID")
	// orgIDKey holds the organization the token was issued for.
	orgIDKey = contextKey("orgID")
	// shopsKey holds the shop ids the token grants access to.
	shopsKey = contextKey("shops")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userIDVal, exists := c.Get(string(userIDKey)); exists {
		userID, ok := userIDVal.(string)
		return userID, ok
	}
	return GetUserIDFromCtx(c.Request.Context())
}

// GetUserIDFromCtx retrieves the authenticated user ID from a standard context.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetOrgIDFromCtx retrieves the caller's organization, or "" when unknown.
func GetOrgIDFromCtx(ctx context.Context) string {
	orgID, _ := ctx.Value(orgIDKey).(string)
	return orgID
}

// WithActor returns a copy of ctx carrying the caller identity.
// Used by the auth middleware and by tests that call services directly.
func WithActor(ctx context.Context, userID, orgID string, shops []string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	ctx = context.WithValue(ctx, orgIDKey, orgID)
	return context.WithValue(ctx, shopsKey, shops)
}

func shopsFromCtx(ctx context.Context) []string {
	shops, _ := ctx.Value(shopsKey).([]string)
	return shops
}
