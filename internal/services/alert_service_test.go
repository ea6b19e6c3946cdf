package services

import (
	"testing"
	"time"

	"github.com/HAKEEM243/Masambukidi/internal/models"
	"github.com/HAKEEM243/Masambukidi/internal/store/memory"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAlertService(t *testing.T) *AlertService {
	t.Helper()
	mock := clock.NewMock()
	mock.Set(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
	stores := memory.New()
	return NewAlertService(stores.Alerts, stores.Subscribers, mock)
}

func TestSubscribeValidation(t *testing.T) {
	svc := newAlertService(t)

	for _, email := range []string{"", "pas-un-email", "a@b", "a b@c.com"} {
		err := svc.Subscribe(email, "X")
		require.Error(t, err, email)
		assert.True(t, IsValidation(err))
		assert.Equal(t, "Email invalide", err.Error())
	}
}

func TestSubscribeIdempotentReactivation(t *testing.T) {
	svc := newAlertService(t)

	require.NoError(t, svc.Subscribe("fan@example.com", "Fan"))
	require.NoError(t, svc.Subscribe("fan@example.com", "Fan"))

	subs, err := svc.Subscribers()
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.True(t, subs[0].IsActive)
}

func TestBroadcastCountsOnly(t *testing.T) {
	svc := newAlertService(t)

	require.NoError(t, svc.Subscribe("a@example.com", "A"))
	require.NoError(t, svc.Subscribe("b@example.com", "B"))

	sent, total, err := svc.Broadcast()
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	assert.Equal(t, 2, total)
}

func TestAlertLifecycle(t *testing.T) {
	svc := newAlertService(t)

	alert, err := svc.AddDetection(AddAlertInput{
		Platform:    "tiktok",
		URL:         "https://tiktok.com/@x/video/5",
		Description: "Republication non autorisée",
		Source:      "crawler",
	})
	require.NoError(t, err)
	assert.Equal(t, models.AlertNew, alert.Status)
	assert.True(t, alert.AutoDetected)

	active, err := svc.ActiveAlerts()
	require.NoError(t, err)
	require.Len(t, active, 1)

	reviewed, err := svc.Review(alert.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AlertReviewing, reviewed.Status)

	// Reviewing alerts stay publicly visible.
	active, err = svc.ActiveAlerts()
	require.NoError(t, err)
	assert.Len(t, active, 1)

	_, err = svc.Review(99)
	assert.ErrorIs(t, err, ErrAlertNotFound)
}
