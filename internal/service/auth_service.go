package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/consorcio/internal/auth"
	"github.com/mmynk/consorcio/internal/middleware"
	"github.com/mmynk/consorcio/internal/models"
	"github.com/mmynk/consorcio/internal/storage"
	"github.com/mmynk/consorcio/pkg/api"
)

var (
	errNoParticipantForEmail = errors.New("no participant is registered with this email")
	errEmailMismatch         = errors.New("email does not belong to this participant")
)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	store         storage.Store
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, store storage.Store, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		store:         store,
		logger:        logger,
	}
}

// Register creates login credentials for an existing participant.
func (s *AuthService) Register(ctx context.Context, req *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error) {
	s.logger.Info("Register request", "email", req.Msg.Email, "participant_id", req.Msg.ParticipantID)

	if strings.TrimSpace(req.Msg.Email) == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	participant, err := s.resolveParticipant(ctx, req.Msg.ParticipantID, req.Msg.Email)
	if err != nil {
		s.logger.Warn("Registration rejected", "email", req.Msg.Email, "error", err)
		switch {
		case errors.Is(err, errNoParticipantForEmail):
			return nil, connect.NewError(connect.CodeNotFound, err)
		case errors.Is(err, errEmailMismatch):
			return nil, connect.NewError(connect.CodePermissionDenied, err)
		default:
			return nil, storageError(err)
		}
	}

	user, err := s.authenticator.Register(ctx, participant.ID, req.Msg.Email, req.Msg.Password)
	if err != nil {
		s.logger.Error("Registration failed", "email", req.Msg.Email, "error", err)
		switch {
		case errors.Is(err, auth.ErrEmailExists):
			return nil, connect.NewError(connect.CodeAlreadyExists, err)
		case errors.Is(err, auth.ErrWeakPassword):
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		default:
			return nil, connect.NewError(connect.CodeInternal, err)
		}
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User registered successfully", "user_id", user.ID, "participant_id", user.ParticipantID)
	return connect.NewResponse(&api.RegisterResponse{
		User:  toAPIUser(user),
		Token: token,
	}), nil
}

// resolveParticipant finds the participant a login is created for, by ID
// when given and otherwise by email. The email must be the participant's
// own in both cases.
func (s *AuthService) resolveParticipant(ctx context.Context, participantID, email string) (*models.Participant, error) {
	if participantID != "" {
		p, err := s.store.GetParticipant(ctx, participantID)
		if err != nil {
			return nil, err
		}
		if !sameEmail(p.Email, email) {
			return nil, fmt.Errorf("%w: %s", errEmailMismatch, participantID)
		}
		return p, nil
	}

	participants, err := s.store.ListParticipants(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range participants {
		if sameEmail(p.Email, email) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", errNoParticipantForEmail, email)
}

func sameEmail(a, b string) bool {
	a = strings.TrimSpace(a)
	return a != "" && strings.EqualFold(a, strings.TrimSpace(b))
}

// Login authenticates a user and returns a JWT token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	s.logger.Info("Login request", "email", req.Msg.Email)

	if req.Msg.Email == "" || req.Msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	user, err := s.authenticator.Authenticate(ctx, req.Msg.Email, req.Msg.Password)
	if err != nil {
		s.logger.Warn("Login failed", "email", req.Msg.Email, "error", err)
		if errors.Is(err, auth.ErrUserDisabled) {
			return nil, connect.NewError(connect.CodePermissionDenied, err)
		}
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User logged in successfully", "user_id", user.ID, "participant_id", user.ParticipantID)
	return connect.NewResponse(&api.LoginResponse{
		User:  toAPIUser(user),
		Token: token,
	}), nil
}

// GetCurrentUser returns the login and participant record of the caller.
func (s *AuthService) GetCurrentUser(ctx context.Context, req *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error) {
	participantID := middleware.GetParticipantID(ctx)
	if participantID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	s.logger.Info("GetCurrentUser request", "participant_id", participantID)

	participant, err := s.store.GetParticipant(ctx, participantID)
	if err != nil {
		s.logger.Error("GetCurrentUser failed", "participant_id", participantID, "error", err)
		return nil, storageError(err)
	}

	user, err := s.store.GetUserByEmail(ctx, middleware.GetEmail(ctx))
	if err != nil {
		s.logger.Error("GetCurrentUser failed", "participant_id", participantID, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&api.GetCurrentUserResponse{
		User:        toAPIUser(user),
		Participant: toAPIParticipant(participant),
	}), nil
}
