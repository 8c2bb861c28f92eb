package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"cashbook-backend/internal/config"
	"cashbook-backend/internal/logger"
	"cashbook-backend/internal/security"

	"github.com/gorilla/mux"
)

type AuthMiddleware struct {
	tokenManager security.TokenManager
}

func NewAuthMiddleware(tm security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokenManager: tm}
}

// Handler authenticates requests to non-public routes and puts the caller's session on the context.
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		routeName := ""
		if route := mux.CurrentRoute(r); route != nil {
			routeName = route.GetName()
		}

		// Public endpoint - skip auth
		if config.GetSecurityLevel(routeName) == config.SecurityPublic {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := extractToken(r)
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "authorization token is not provided")
			return
		}

		session, err := m.tokenManager.Authenticate(token)
		if err != nil {
			logger.Debug("Rejected bearer token", "route", routeName, "error", err)
			msg := "invalid token"
			switch {
			case errors.Is(err, security.ErrExpiredToken):
				msg = "token has expired"
			case errors.Is(err, security.ErrWrongTokenType):
				msg = "access token required"
			}
			writeMessage(w, http.StatusUnauthorized, msg)
			return
		}

		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), session)))
	})
}

func extractToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		header = header[7:]
	}
	token := strings.TrimSpace(header)
	return token, token != ""
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LoggingMiddleware writes one access log line per request.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		ctx, caller := withRequestUser(r.Context())
		next.ServeHTTP(rec, r.WithContext(ctx))

		args := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if caller.userID != "" {
			args = append(args, "user_id", caller.userID)
		}
		if rec.status >= http.StatusInternalServerError {
			logger.Warn("HTTP request", args...)
			return
		}
		logger.Info("HTTP request", args...)
	})
}

// RecoveryMiddleware turns a handler panic into a 500.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				logger.Error("Panic while serving request", "method", r.Method, "path", r.URL.Path, "panic", p)
				writeMessage(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
