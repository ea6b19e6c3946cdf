package services

import (
	"testing"
	"time"

	"github.com/HAKEEM243/Masambukidi/internal/models"
	"github.com/HAKEEM243/Masambukidi/internal/refcode"
	"github.com/HAKEEM243/Masambukidi/internal/store"
	"github.com/HAKEEM243/Masambukidi/internal/store/memory"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLegalEnv(t *testing.T) (*LegalService, *ReportService, *store.Stores, *clock.Mock) {
	t.Helper()
	mock := clock.NewMock()
	mock.Set(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
	stores := memory.New()
	refs := refcode.New(mock)
	return NewLegalService(stores.LegalCases, stores.Reports, refs, mock),
		NewReportService(stores, refs, mock), stores, mock
}

func TestCreateCaseSnapshotsReport(t *testing.T) {
	legal, reports, _, _ := newLegalEnv(t)

	report, err := reports.Submit(SubmitReportInput{
		URL:           "https://tiktok.com/@fake/video/9",
		Platform:      "tiktok",
		AbuseType:     "impersonation",
		Description:   "Faux compte usurpant le nom",
		ReporterEmail: "temoin@example.com",
	})
	require.NoError(t, err)

	legalCase, err := legal.CreateCase(CreateCaseInput{
		ReportID:     report.ID,
		OffenderName: "Compte Anonyme",
	})
	require.NoError(t, err)

	assert.Regexp(t, `^JUR-20260314-\d{4}$`, legalCase.CaseNumber)
	assert.Equal(t, models.CaseDraft, legalCase.Status)
	assert.Equal(t, models.CaseMiseEnDemeure, legalCase.CaseType)
	assert.Equal(t, report.RefNumber, legalCase.RefNumber)
	assert.Equal(t, report.URL, legalCase.ReportURL)
	assert.Equal(t, report.Platform, legalCase.Platform)
	assert.Equal(t, report.AbuseType, legalCase.AbuseType)
	assert.Contains(t, legalCase.DocumentContent, "MISE EN DEMEURE")
	assert.Contains(t, legalCase.DocumentContent, legalCase.CaseNumber)
	assert.Nil(t, legalCase.SignedAt)
}

func TestCreateCaseUnknownReport(t *testing.T) {
	legal, _, stores, _ := newLegalEnv(t)

	_, err := legal.CreateCase(CreateCaseInput{ReportID: 7})
	assert.ErrorIs(t, err, ErrReportNotFound)

	cases, err := stores.LegalCases.List()
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestSignCase(t *testing.T) {
	legal, reports, _, mock := newLegalEnv(t)

	report, err := reports.Submit(SubmitReportInput{
		URL: "https://x.com/p/1", Platform: "x", AbuseType: "other",
		Description: "d", ReporterEmail: "a@b.co",
	})
	require.NoError(t, err)
	legalCase, err := legal.CreateCase(CreateCaseInput{ReportID: report.ID})
	require.NoError(t, err)

	mock.Add(time.Hour)
	signed, err := legal.Sign(legalCase.ID, "")
	require.NoError(t, err)
	assert.Equal(t, models.CaseSigned, signed.Status)
	assert.Equal(t, DefaultSignature, signed.LawyerSignature)
	require.NotNil(t, signed.SignedAt)
	firstStamp := *signed.SignedAt

	// Signed is terminal.
	mock.Add(time.Hour)
	_, err = legal.Sign(legalCase.ID, "Maître K.")
	assert.ErrorIs(t, err, ErrCaseAlreadySigned)

	kept, err := legal.GetByID(legalCase.ID)
	require.NoError(t, err)
	require.NotNil(t, kept.SignedAt)
	assert.Equal(t, firstStamp, *kept.SignedAt)
	assert.Equal(t, DefaultSignature, kept.LawyerSignature)
}

func TestSignUnknownCase(t *testing.T) {
	legal, _, _, _ := newLegalEnv(t)

	_, err := legal.Sign(3, "sig")
	assert.ErrorIs(t, err, ErrCaseNotFound)
}
