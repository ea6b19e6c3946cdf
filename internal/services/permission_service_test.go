package services

import (
	"testing"
	"time"

	"github.com/HAKEEM243/Masambukidi/internal/models"
	"github.com/HAKEEM243/Masambukidi/internal/refcode"
	"github.com/HAKEEM243/Masambukidi/internal/store/memory"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPermissionService(t *testing.T) *PermissionService {
	t.Helper()
	mock := clock.NewMock()
	mock.Set(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
	stores := memory.New()
	return NewPermissionService(stores.Permissions, refcode.New(mock), mock)
}

func TestPermissionSubmit(t *testing.T) {
	svc := newPermissionService(t)

	request, err := svc.Submit(SubmitPermissionInput{
		RequesterName:      "Studio K",
		RequesterEmail:     "studio@example.com",
		UsagePurpose:       "Documentaire",
		ContentDescription: "Extraits de discours publics",
	})
	require.NoError(t, err)
	assert.Regexp(t, `^AUT-20260314-\d{4}$`, request.TicketNumber)
	assert.Equal(t, models.PermissionPending, request.Status)
	assert.Nil(t, request.RespondedAt)
}

func TestPermissionSubmitMissingFields(t *testing.T) {
	svc := newPermissionService(t)

	_, err := svc.Submit(SubmitPermissionInput{RequesterName: "Seul"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "Champs obligatoires manquants", err.Error())
}

func TestPermissionRespond(t *testing.T) {
	svc := newPermissionService(t)

	request, err := svc.Submit(SubmitPermissionInput{
		RequesterName:      "Studio K",
		RequesterEmail:     "studio@example.com",
		UsagePurpose:       "Documentaire",
		ContentDescription: "Extraits",
	})
	require.NoError(t, err)

	updated, err := svc.Respond(request.ID, RespondPermissionInput{
		Status:          models.PermissionRejected,
		RejectionReason: "Usage commercial non couvert",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PermissionRejected, updated.Status)
	assert.Equal(t, "Usage commercial non couvert", updated.RejectionReason)
	require.NotNil(t, updated.RespondedAt)
}

func TestPermissionRespondInvalidStatus(t *testing.T) {
	svc := newPermissionService(t)

	_, err := svc.Respond(1, RespondPermissionInput{Status: "peut-etre"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "Statut invalide", err.Error())

	_, err = svc.Respond(9, RespondPermissionInput{Status: models.PermissionApproved})
	assert.ErrorIs(t, err, ErrPermissionNotFound)
}

func TestPermissionListNewestFirst(t *testing.T) {
	svc := newPermissionService(t)

	for _, name := range []string{"Premier", "Second"} {
		_, err := svc.Submit(SubmitPermissionInput{
			RequesterName:      name,
			RequesterEmail:     "x@example.com",
			UsagePurpose:       "usage",
			ContentDescription: "desc",
		})
		require.NoError(t, err)
	}

	requests, err := svc.List()
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "Second", requests[0].RequesterName)
}
