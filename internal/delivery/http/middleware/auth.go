package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "opternportal/internal/delivery/http/helpers"
	"opternportal/internal/domain"
)

type contextKey string

const identityKey contextKey = "identity"

// SetIdentity returns a context carrying the authenticated identity. Used by auth middleware.
func SetIdentity(ctx context.Context, id *domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the authenticated identity from the context, if present.
func IdentityFromContext(ctx context.Context) (*domain.Identity, bool) {
	id, ok := ctx.Value(identityKey).(*domain.Identity)
	return id, ok && id != nil
}

// RequireIdentity returns a wrapper that resolves the Bearer token through the identity
// provider and stores the identity in the request context. Invalid or missing
// credentials get a 401; provider failures get a 500. next is not called in either case.
func RequireIdentity(provider domain.IdentityProvider, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "Unauthorized.")
				return
			}
			id, err := provider.Resolve(r.Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "Unauthorized.")
					return
				}
				logger.ErrorContext(r.Context(), "identity lookup failed",
					"path", r.URL.Path, "request_id", RequestIDFromContext(r.Context()), "err", err)
				h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "Unexpected server error.")
				return
			}
			next(w, r.WithContext(SetIdentity(r.Context(), id)))
		}
	}
}

// bearerToken extracts the token from an Authorization header. The scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
