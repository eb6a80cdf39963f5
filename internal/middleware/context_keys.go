package middleware

import "context"

const (
	userIDKey    = contextKey("userID")
	tenantIDsKey = contextKey("tenantIDs")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetTenantIDsFromContext returns the tenants the authenticated caller may act on.
func GetTenantIDsFromContext(ctx context.Context) []string {
	tenantIDs, _ := ctx.Value(tenantIDsKey).([]string)
	return tenantIDs
}
