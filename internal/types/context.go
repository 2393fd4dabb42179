package types

import "context"

type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
	CtxUserID    ContextKey = "ctx_user_id"
	CtxUserRole  ContextKey = "ctx_user_role"
	CtxMemberID  ContextKey = "ctx_member_id"
)

// DefaultUserID is attributed to mutations performed outside an
// authenticated request, such as the seeder and the billing scheduler.
const DefaultUserID = "system"

func GetRequestID(ctx context.Context) string {
	return ctxString(ctx, CtxRequestID)
}

func GetUserID(ctx context.Context) string {
	if id := ctxString(ctx, CtxUserID); id != "" {
		return id
	}
	return DefaultUserID
}

func GetUserRole(ctx context.Context) UserRole {
	return UserRole(ctxString(ctx, CtxUserRole))
}

// GetMemberID returns the member bound to a portal session, if any.
func GetMemberID(ctx context.Context) string {
	return ctxString(ctx, CtxMemberID)
}

func ctxString(ctx context.Context, key ContextKey) string {
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}
