package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/consorcio/internal/models"
	"github.com/mmynk/consorcio/internal/storage"
	"github.com/mmynk/consorcio/pkg/api"
)

var errMissingParticipantID = errors.New("participant_id is required")

// ParticipantService implements the Connect ParticipantService.
type ParticipantService struct {
	store storage.Store
}

// NewParticipantService creates a new ParticipantService with the given storage backend.
func NewParticipantService(store storage.Store) *ParticipantService {
	return &ParticipantService{store: store}
}

// CreateParticipant registers a new consorcio member.
func (s *ParticipantService) CreateParticipant(ctx context.Context, req *connect.Request[api.CreateParticipantRequest]) (*connect.Response[api.CreateParticipantResponse], error) {
	slog.Info("CreateParticipant request received", "name", req.Msg.Name, "unit", req.Msg.Unit)

	p := &models.Participant{
		Name:   strings.TrimSpace(req.Msg.Name),
		Email:  strings.TrimSpace(req.Msg.Email),
		Phone:  strings.TrimSpace(req.Msg.Phone),
		Unit:   strings.TrimSpace(req.Msg.Unit),
		Active: true,
	}
	if req.Msg.Active != nil {
		p.Active = *req.Msg.Active
	}
	if err := p.Validate(); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.store.CreateParticipant(ctx, p); err != nil {
		slog.Error("CreateParticipant failed", "error", err)
		return nil, storageError(err)
	}

	slog.Info("Participant created", "participant_id", p.ID)

	return connect.NewResponse(&api.CreateParticipantResponse{
		Participant: toAPIParticipant(p),
	}), nil
}

// GetParticipant retrieves a participant by ID.
func (s *ParticipantService) GetParticipant(ctx context.Context, req *connect.Request[api.GetParticipantRequest]) (*connect.Response[api.GetParticipantResponse], error) {
	slog.Info("GetParticipant request received", "participant_id", req.Msg.ParticipantID)

	if req.Msg.ParticipantID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingParticipantID)
	}

	p, err := s.store.GetParticipant(ctx, req.Msg.ParticipantID)
	if err != nil {
		slog.Error("GetParticipant failed", "participant_id", req.Msg.ParticipantID, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&api.GetParticipantResponse{
		Participant: toAPIParticipant(p),
	}), nil
}

// ListParticipants retrieves all participants, active or not.
func (s *ParticipantService) ListParticipants(ctx context.Context, req *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	slog.Info("ListParticipants request received")

	participants, err := s.store.ListParticipants(ctx)
	if err != nil {
		slog.Error("ListParticipants failed", "error", err)
		return nil, storageError(err)
	}

	out := make([]*api.Participant, len(participants))
	for i, p := range participants {
		out[i] = toAPIParticipant(p)
	}

	slog.Info("ListParticipants successful", "count", len(out))

	return connect.NewResponse(&api.ListParticipantsResponse{
		Participants: out,
	}), nil
}

// UpdateParticipant replaces the editable fields of a participant.
func (s *ParticipantService) UpdateParticipant(ctx context.Context, req *connect.Request[api.UpdateParticipantRequest]) (*connect.Response[api.UpdateParticipantResponse], error) {
	slog.Info("UpdateParticipant request received", "participant_id", req.Msg.ParticipantID)

	if req.Msg.ParticipantID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingParticipantID)
	}

	p := &models.Participant{
		ID:     req.Msg.ParticipantID,
		Name:   strings.TrimSpace(req.Msg.Name),
		Email:  strings.TrimSpace(req.Msg.Email),
		Phone:  strings.TrimSpace(req.Msg.Phone),
		Unit:   strings.TrimSpace(req.Msg.Unit),
		Active: req.Msg.Active,
	}
	if err := p.Validate(); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.store.UpdateParticipant(ctx, p); err != nil {
		slog.Error("UpdateParticipant failed", "participant_id", p.ID, "error", err)
		return nil, storageError(err)
	}

	// Fetch updated participant to get CreatedAt
	updated, err := s.store.GetParticipant(ctx, p.ID)
	if err != nil {
		slog.Error("Failed to fetch updated participant", "error", err)
		return nil, storageError(err)
	}

	slog.Info("Participant updated", "participant_id", p.ID)

	return connect.NewResponse(&api.UpdateParticipantResponse{
		Participant: toAPIParticipant(updated),
	}), nil
}

// DeleteParticipant removes a participant with no expenses or payments.
func (s *ParticipantService) DeleteParticipant(ctx context.Context, req *connect.Request[api.DeleteParticipantRequest]) (*connect.Response[api.DeleteParticipantResponse], error) {
	slog.Info("DeleteParticipant request received", "participant_id", req.Msg.ParticipantID)

	if req.Msg.ParticipantID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingParticipantID)
	}

	if err := s.store.DeleteParticipant(ctx, req.Msg.ParticipantID); err != nil {
		slog.Error("DeleteParticipant failed", "participant_id", req.Msg.ParticipantID, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Participant deleted", "participant_id", req.Msg.ParticipantID)

	return connect.NewResponse(&api.DeleteParticipantResponse{}), nil
}
