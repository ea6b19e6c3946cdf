// Package memory is the default store backend: mutex-guarded slices that
// preserve insertion order. It matches the reference deployment model
// (process-resident state, no durability) while staying safe under the
// concurrent request handling of the HTTP server.
package memory

import (
	"sync"
	"time"

	"github.com/HAKEEM243/Masambukidi/internal/models"
	"github.com/HAKEEM243/Masambukidi/internal/store"
)

// New returns a fully wired in-memory store set.
func New() *store.Stores {
	return &store.Stores{
		Reports:     &reportStore{},
		Authorized:  &authorizedContentStore{},
		Permissions: &permissionRequestStore{},
		LegalCases:  &legalCaseStore{},
		Alerts:      &monitoringAlertStore{},
		Subscribers: &alertSubscriberStore{},
		Profiles:    &userProfileStore{},
		SystemLogs:  &systemLogStore{},
	}
}

type reportStore struct {
	mu      sync.RWMutex
	records []models.Report
	nextID  uint
}

func (s *reportStore) Create(r *models.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	r.ID = s.nextID
	s.records = append(s.records, *r)
	return nil
}

func (s *reportStore) GetByID(id uint) (*models.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.records {
		if s.records[i].ID == id {
			r := s.records[i]
			return &r, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *reportStore) GetByRefNumber(ref string) (*models.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.records {
		if s.records[i].RefNumber == ref {
			r := s.records[i]
			return &r, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *reportStore) Update(r *models.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == r.ID {
			s.records[i] = *r
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *reportStore) List() ([]models.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Report, len(s.records))
	copy(out, s.records)
	return out, nil
}

type authorizedContentStore struct {
	mu      sync.RWMutex
	records []models.AuthorizedContent
	nextID  uint
}

func (s *authorizedContentStore) Create(a *models.AuthorizedContent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	a.ID = s.nextID
	s.records = append(s.records, *a)
	return nil
}

func (s *authorizedContentStore) GetByID(id uint) (*models.AuthorizedContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.records {
		if s.records[i].ID == id {
			a := s.records[i]
			return &a, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *authorizedContentStore) Update(a *models.AuthorizedContent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == a.ID {
			s.records[i] = *a
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *authorizedContentStore) List() ([]models.AuthorizedContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AuthorizedContent, len(s.records))
	copy(out, s.records)
	return out, nil
}

type permissionRequestStore struct {
	mu      sync.RWMutex
	records []models.PermissionRequest
	nextID  uint
}

func (s *permissionRequestStore) Create(p *models.PermissionRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	p.ID = s.nextID
	s.records = append(s.records, *p)
	return nil
}

func (s *permissionRequestStore) GetByID(id uint) (*models.PermissionRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.records {
		if s.records[i].ID == id {
			p := s.records[i]
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *permissionRequestStore) Update(p *models.PermissionRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == p.ID {
			s.records[i] = *p
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *permissionRequestStore) List() ([]models.PermissionRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PermissionRequest, len(s.records))
	copy(out, s.records)
	return out, nil
}

type legalCaseStore struct {
	mu      sync.RWMutex
	records []models.LegalCase
	nextID  uint
}

func (s *legalCaseStore) Create(c *models.LegalCase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	c.ID = s.nextID
	s.records = append(s.records, *c)
	return nil
}

func (s *legalCaseStore) GetByID(id uint) (*models.LegalCase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.records {
		if s.records[i].ID == id {
			c := s.records[i]
			return &c, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *legalCaseStore) Update(c *models.LegalCase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == c.ID {
			s.records[i] = *c
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *legalCaseStore) List() ([]models.LegalCase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.LegalCase, len(s.records))
	copy(out, s.records)
	return out, nil
}

type monitoringAlertStore struct {
	mu      sync.RWMutex
	records []models.MonitoringAlert
	nextID  uint
}

func (s *monitoringAlertStore) Create(a *models.MonitoringAlert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	a.ID = s.nextID
	s.records = append(s.records, *a)
	return nil
}

func (s *monitoringAlertStore) GetByID(id uint) (*models.MonitoringAlert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.records {
		if s.records[i].ID == id {
			a := s.records[i]
			return &a, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *monitoringAlertStore) Update(a *models.MonitoringAlert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == a.ID {
			s.records[i] = *a
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *monitoringAlertStore) List() ([]models.MonitoringAlert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MonitoringAlert, len(s.records))
	copy(out, s.records)
	return out, nil
}

type alertSubscriberStore struct {
	mu      sync.RWMutex
	records []models.AlertSubscriber
	nextID  uint
}

func (s *alertSubscriberStore) Create(sub *models.AlertSubscriber) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	sub.ID = s.nextID
	s.records = append(s.records, *sub)
	return nil
}

func (s *alertSubscriberStore) GetByEmail(email string) (*models.AlertSubscriber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.records {
		if s.records[i].Email == email {
			sub := s.records[i]
			return &sub, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *alertSubscriberStore) Update(sub *models.AlertSubscriber) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == sub.ID {
			s.records[i] = *sub
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *alertSubscriberStore) List() ([]models.AlertSubscriber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AlertSubscriber, len(s.records))
	copy(out, s.records)
	return out, nil
}

type userProfileStore struct {
	mu      sync.RWMutex
	records []models.UserProfile
	nextID  uint
}

func (s *userProfileStore) Create(p *models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == 0 {
		s.nextID++
		p.ID = s.nextID
	} else if p.ID > s.nextID {
		s.nextID = p.ID
	}
	s.records = append(s.records, *p)
	return nil
}

func (s *userProfileStore) GetByID(id uint) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.records {
		if s.records[i].ID == id {
			p := s.records[i]
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}

type systemLogStore struct {
	mu      sync.Mutex
	records []models.SystemLog
}

func (s *systemLogStore) CreateBatch(entries []models.SystemLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, entries...)
	return nil
}

func (s *systemLogStore) DeleteOlderThan(cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.records[:0]
	var deleted int64
	for _, e := range s.records {
		if e.Timestamp.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	s.records = kept
	return deleted, nil
}
