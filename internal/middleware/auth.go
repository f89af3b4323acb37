package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/consorcio/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// ParticipantIDKey is the context key for the authenticated participant ID.
	ParticipantIDKey contextKey = "participant_id"
	// EmailKey is the context key for storing the authenticated user's email.
	EmailKey contextKey = "email"
)

// GetParticipantID extracts the participant ID from the context.
// Returns empty string if not found.
func GetParticipantID(ctx context.Context) string {
	id, _ := ctx.Value(ParticipantIDKey).(string)
	return id
}

// GetEmail extracts the user email from the context.
// Returns empty string if not found.
func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

// WithParticipantID returns a copy of ctx carrying the given identity.
func WithParticipantID(ctx context.Context, participantID, email string) context.Context {
	ctx = context.WithValue(ctx, ParticipantIDKey, participantID)
	return context.WithValue(ctx, EmailKey, email)
}

func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// RequireAuth returns an interceptor that validates JWT tokens and requires authentication.
// Procedures listed in public skip the check (e.g. Login and Register).
func RequireAuth(jwtManager *auth.JWTManager, public ...string) connect.UnaryInterceptorFunc {
	skip := make(map[string]bool, len(public))
	for _, procedure := range public {
		skip[procedure] = true
	}

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if skip[req.Spec().Procedure] {
				return next(ctx, req)
			}

			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			tokenString, ok := bearerToken(authHeader)
			if !ok {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(tokenString)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			return next(WithParticipantID(ctx, claims.ParticipantID, claims.Email), req)
		}
	}
}

// OptionalAuth returns an interceptor that validates JWT tokens if present, but allows
// requests without authentication.
func OptionalAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if tokenString, ok := bearerToken(req.Header().Get("Authorization")); ok {
				// Invalid tokens are ignored
				if claims, err := jwtManager.Validate(tokenString); err == nil {
					ctx = WithParticipantID(ctx, claims.ParticipantID, claims.Email)
				}
			}

			return next(ctx, req)
		}
	}
}
