package services

import (
	"errors"

	"github.com/HAKEEM243/Masambukidi/internal/models"
	"github.com/HAKEEM243/Masambukidi/internal/refcode"
	"github.com/HAKEEM243/Masambukidi/internal/store"
	"github.com/benbjohnson/clock"
)

// PermissionService manages usage permission tickets.
type PermissionService struct {
	permissions store.PermissionRequestStore
	refs        *refcode.Generator
	clock       clock.Clock
}

func NewPermissionService(permissions store.PermissionRequestStore, refs *refcode.Generator, clk clock.Clock) *PermissionService {
	return &PermissionService{permissions: permissions, refs: refs, clock: clk}
}

type SubmitPermissionInput struct {
	RequesterName      string
	RequesterEmail     string
	UsagePurpose       string
	ContentDescription string
}

// Submit creates a pending request with a fresh AUT ticket.
func (s *PermissionService) Submit(in SubmitPermissionInput) (*models.PermissionRequest, error) {
	if in.RequesterName == "" || in.RequesterEmail == "" || in.UsagePurpose == "" || in.ContentDescription == "" {
		return nil, ValidationError("Champs obligatoires manquants")
	}

	request := &models.PermissionRequest{
		TicketNumber:       s.refs.Ref(refcode.PrefixPermission),
		RequesterName:      in.RequesterName,
		RequesterEmail:     in.RequesterEmail,
		UsagePurpose:       in.UsagePurpose,
		ContentDescription: in.ContentDescription,
		Status:             models.PermissionPending,
		CreatedAt:          s.clock.Now().UTC(),
	}
	if err := s.permissions.Create(request); err != nil {
		return nil, err
	}
	return request, nil
}

// List returns requests newest first.
func (s *PermissionService) List() ([]models.PermissionRequest, error) {
	requests, err := s.permissions.List()
	if err != nil {
		return nil, err
	}
	out := make([]models.PermissionRequest, 0, len(requests))
	for i := len(requests) - 1; i >= 0; i-- {
		out = append(out, requests[i])
	}
	return out, nil
}

type RespondPermissionInput struct {
	Status          string
	AdminNotes      string
	RejectionReason string
}

// Respond records the admin decision and stamps RespondedAt.
func (s *PermissionService) Respond(id uint, in RespondPermissionInput) (*models.PermissionRequest, error) {
	if in.Status != models.PermissionApproved && in.Status != models.PermissionRejected {
		return nil, ValidationError("Statut invalide")
	}

	request, err := s.permissions.GetByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrPermissionNotFound
	}
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	request.Status = in.Status
	request.AdminNotes = in.AdminNotes
	request.RejectionReason = in.RejectionReason
	request.RespondedAt = &now

	if err := s.permissions.Update(request); err != nil {
		return nil, err
	}
	return request, nil
}
