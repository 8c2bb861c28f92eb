package http

import (
	"context"

	"cashbook-backend/internal/domain"
)

type sessionKey struct{}

type requestUserKey struct{}

// requestUser is set by the logging middleware and filled by the auth middleware further in,
// so the access log can name the caller after the inner request has finished.
type requestUser struct {
	userID string
}

func withSession(ctx context.Context, session domain.Session) context.Context {
	if holder, ok := ctx.Value(requestUserKey{}).(*requestUser); ok {
		holder.userID = session.UserID
	}
	return context.WithValue(ctx, sessionKey{}, session)
}

func withRequestUser(ctx context.Context) (context.Context, *requestUser) {
	holder := &requestUser{}
	return context.WithValue(ctx, requestUserKey{}, holder), holder
}

// SessionFromContext returns the session placed on the request by the auth middleware.
// Public routes see the zero session.
func SessionFromContext(ctx context.Context) domain.Session {
	session, _ := ctx.Value(sessionKey{}).(domain.Session)
	return session
}
