package services

import (
	"errors"

	"github.com/HAKEEM243/Masambukidi/internal/models"
	"github.com/HAKEEM243/Masambukidi/internal/refcode"
	"github.com/HAKEEM243/Masambukidi/internal/store"
	"github.com/benbjohnson/clock"
)

// WhitelistService manages authorized content certificates.
type WhitelistService struct {
	authorized store.AuthorizedContentStore
	refs       *refcode.Generator
	clock      clock.Clock
}

func NewWhitelistService(authorized store.AuthorizedContentStore, refs *refcode.Generator, clk clock.Clock) *WhitelistService {
	return &WhitelistService{authorized: authorized, refs: refs, clock: clk}
}

type AddWhitelistInput struct {
	URL             string
	BeneficiaryName string
	ContentType     string
}

// Add creates an active whitelist entry with a fresh CERT code. Duplicate
// active entries for the same URL are permitted.
func (s *WhitelistService) Add(in AddWhitelistInput) (*models.AuthorizedContent, error) {
	if in.URL == "" {
		return nil, ValidationError("URL requise")
	}

	now := s.clock.Now().UTC()
	entry := &models.AuthorizedContent{
		CertNumber:      s.refs.Ref(refcode.PrefixCertificate),
		URL:             in.URL,
		BeneficiaryName: in.BeneficiaryName,
		ContentType:     in.ContentType,
		IsActive:        true,
		DateAuthorized:  now,
		CreatedAt:       now,
	}
	if err := s.authorized.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// CheckAuthorization scans for an active entry matching the URL exactly
// (no normalization). When duplicates exist the earliest active entry in
// insertion order wins. A nil result means the content is not authorized.
func (s *WhitelistService) CheckAuthorization(url string) (*models.AuthorizedContent, error) {
	if url == "" {
		return nil, ValidationError("URL requise")
	}
	entries, err := s.authorized.List()
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].IsActive && entries[i].URL == url {
			return &entries[i], nil
		}
	}
	return nil, nil
}

// ListActive returns active entries in insertion order.
func (s *WhitelistService) ListActive() ([]models.AuthorizedContent, error) {
	entries, err := s.authorized.List()
	if err != nil {
		return nil, err
	}
	active := make([]models.AuthorizedContent, 0, len(entries))
	for _, e := range entries {
		if e.IsActive {
			active = append(active, e)
		}
	}
	return active, nil
}

// Deactivate soft-deletes an entry. The row is kept; only IsActive flips.
func (s *WhitelistService) Deactivate(id uint) (*models.AuthorizedContent, error) {
	entry, err := s.authorized.GetByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrWhitelistNotFound
	}
	if err != nil {
		return nil, err
	}
	entry.IsActive = false
	if err := s.authorized.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}
