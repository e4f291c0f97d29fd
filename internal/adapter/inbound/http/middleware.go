package http

import (
	"net/http"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/0xsj/overwatch-pkg/log"

	"github.com/azkarapp/azkar-backend/internal/app/service"
)

const bearerScheme = "Bearer "

// Authenticate resolves the caller's session from the Authorization header.
// A missing header yields an anonymous session; a present but invalid token
// is rejected so a caller with an expired credential gets a clear 401 instead
// of silently downgrading to the login path.
func Authenticate(tokenService service.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !strings.HasPrefix(header, bearerScheme) {
				writeError(w, http.StatusUnauthorized, "invalid authorization header")
				return
			}

			claims, err := tokenService.ValidateAccessToken(strings.TrimPrefix(header, bearerScheme))
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			session := authenticatedSession(claims)
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// RequireUser rejects requests whose session is anonymous.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !SessionFromContext(r.Context()).IsAuthenticated() {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Logging logs each request with its status, duration, and request id.
func Logging(logger log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				log.String("method", r.Method),
				log.String("path", r.URL.Path),
				log.Any("status", ww.Status()),
				log.Any("duration", time.Since(start).String()),
				log.String("request_id", chimiddleware.GetReqID(r.Context())),
			)
		})
	}
}
