package services

import (
	"errors"

	"github.com/HAKEEM243/Masambukidi/internal/legaldoc"
	"github.com/HAKEEM243/Masambukidi/internal/models"
	"github.com/HAKEEM243/Masambukidi/internal/refcode"
	"github.com/HAKEEM243/Masambukidi/internal/store"
	"github.com/benbjohnson/clock"
)

// DefaultSignature is recorded when a case is signed without an explicit
// signature payload.
const DefaultSignature = "Signé électroniquement"

// LegalService derives legal cases from reports and drives the
// draft→signed state machine.
type LegalService struct {
	cases   store.LegalCaseStore
	reports store.ReportStore
	refs    *refcode.Generator
	clock   clock.Clock
}

func NewLegalService(cases store.LegalCaseStore, reports store.ReportStore, refs *refcode.Generator, clk clock.Clock) *LegalService {
	return &LegalService{cases: cases, reports: reports, refs: refs, clock: clk}
}

type CreateCaseInput struct {
	ReportID           uint
	CaseType           string
	OffenderName       string
	OffenderEmail      string
	OffenderPlatformID string
}

// CreateCase builds a draft case from a report, snapshotting the report
// fields at creation time and generating the JUR code and notice text.
func (s *LegalService) CreateCase(in CreateCaseInput) (*models.LegalCase, error) {
	report, err := s.reports.GetByID(in.ReportID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}

	caseType := in.CaseType
	if caseType == "" {
		caseType = models.CaseMiseEnDemeure
	}

	now := s.clock.Now().UTC()
	legalCase := &models.LegalCase{
		CaseNumber:         s.refs.Ref(refcode.PrefixLegalCase),
		ReportID:           report.ID,
		CaseType:           caseType,
		OffenderName:       in.OffenderName,
		OffenderEmail:      in.OffenderEmail,
		OffenderPlatformID: in.OffenderPlatformID,
		Status:             models.CaseDraft,
		RefNumber:          report.RefNumber,
		ReportURL:          report.URL,
		Platform:           report.Platform,
		ReportDesc:         report.Description,
		AbuseType:          report.AbuseType,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	legalCase.DocumentContent = legaldoc.BuildNotice(legalCase, now)

	if err := s.cases.Create(legalCase); err != nil {
		return nil, err
	}
	return legalCase, nil
}

// Sign transitions a draft case to signed. Signed is terminal: signing an
// already-signed case is rejected and the original SignedAt is untouched.
func (s *LegalService) Sign(id uint, signature string) (*models.LegalCase, error) {
	legalCase, err := s.cases.GetByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrCaseNotFound
	}
	if err != nil {
		return nil, err
	}
	if legalCase.Status == models.CaseSigned {
		return nil, ErrCaseAlreadySigned
	}

	if signature == "" {
		signature = DefaultSignature
	}
	now := s.clock.Now().UTC()
	legalCase.Status = models.CaseSigned
	legalCase.SignedAt = &now
	legalCase.LawyerSignature = signature
	legalCase.UpdatedAt = now

	if err := s.cases.Update(legalCase); err != nil {
		return nil, err
	}
	return legalCase, nil
}

// GetByID fetches a case for document rendering.
func (s *LegalService) GetByID(id uint) (*models.LegalCase, error) {
	legalCase, err := s.cases.GetByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrCaseNotFound
	}
	return legalCase, err
}

// List returns cases newest first.
func (s *LegalService) List() ([]models.LegalCase, error) {
	cases, err := s.cases.List()
	if err != nil {
		return nil, err
	}
	out := make([]models.LegalCase, 0, len(cases))
	for i := len(cases) - 1; i >= 0; i-- {
		out = append(out, cases[i])
	}
	return out, nil
}
