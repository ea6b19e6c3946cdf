// Package postgres is the durable store backend, selected with
// STORAGE_DRIVER=postgres. It persists the same field sets and invariants
// as the in-memory backend.
package postgres

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/HAKEEM243/Masambukidi/internal/config"
	"github.com/HAKEEM243/Masambukidi/internal/models"
	"github.com/HAKEEM243/Masambukidi/internal/store"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database, configures the pool and migrates the schema.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.AutoMigrate(
		&models.Report{},
		&models.AuthorizedContent{},
		&models.PermissionRequest{},
		&models.LegalCase{},
		&models.MonitoringAlert{},
		&models.AlertSubscriber{},
		&models.UserProfile{},
		&models.SystemLog{},
	); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	slog.Info("database connected")
	return db, nil
}

// New wires GORM-backed repositories over an open connection.
func New(db *gorm.DB) *store.Stores {
	return &store.Stores{
		Reports:     &reportStore{db: db},
		Authorized:  &authorizedContentStore{db: db},
		Permissions: &permissionRequestStore{db: db},
		LegalCases:  &legalCaseStore{db: db},
		Alerts:      &monitoringAlertStore{db: db},
		Subscribers: &alertSubscriberStore{db: db},
		Profiles:    &userProfileStore{db: db},
		SystemLogs:  &systemLogStore{db: db},
	}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return err
}

type reportStore struct{ db *gorm.DB }

func (s *reportStore) Create(r *models.Report) error {
	return s.db.Create(r).Error
}

func (s *reportStore) GetByID(id uint) (*models.Report, error) {
	var r models.Report
	if err := s.db.First(&r, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &r, nil
}

func (s *reportStore) GetByRefNumber(ref string) (*models.Report, error) {
	var r models.Report
	if err := s.db.Where("ref_number = ?", ref).Order("id ASC").First(&r).Error; err != nil {
		return nil, translate(err)
	}
	return &r, nil
}

func (s *reportStore) Update(r *models.Report) error {
	res := s.db.Save(r)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *reportStore) List() ([]models.Report, error) {
	var out []models.Report
	if err := s.db.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

type authorizedContentStore struct{ db *gorm.DB }

func (s *authorizedContentStore) Create(a *models.AuthorizedContent) error {
	return s.db.Create(a).Error
}

func (s *authorizedContentStore) GetByID(id uint) (*models.AuthorizedContent, error) {
	var a models.AuthorizedContent
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (s *authorizedContentStore) Update(a *models.AuthorizedContent) error {
	res := s.db.Save(a)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *authorizedContentStore) List() ([]models.AuthorizedContent, error) {
	var out []models.AuthorizedContent
	if err := s.db.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

type permissionRequestStore struct{ db *gorm.DB }

func (s *permissionRequestStore) Create(p *models.PermissionRequest) error {
	return s.db.Create(p).Error
}

func (s *permissionRequestStore) GetByID(id uint) (*models.PermissionRequest, error) {
	var p models.PermissionRequest
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *permissionRequestStore) Update(p *models.PermissionRequest) error {
	res := s.db.Save(p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *permissionRequestStore) List() ([]models.PermissionRequest, error) {
	var out []models.PermissionRequest
	if err := s.db.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

type legalCaseStore struct{ db *gorm.DB }

func (s *legalCaseStore) Create(c *models.LegalCase) error {
	return s.db.Create(c).Error
}

func (s *legalCaseStore) GetByID(id uint) (*models.LegalCase, error) {
	var c models.LegalCase
	if err := s.db.First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *legalCaseStore) Update(c *models.LegalCase) error {
	res := s.db.Save(c)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *legalCaseStore) List() ([]models.LegalCase, error) {
	var out []models.LegalCase
	if err := s.db.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

type monitoringAlertStore struct{ db *gorm.DB }

func (s *monitoringAlertStore) Create(a *models.MonitoringAlert) error {
	return s.db.Create(a).Error
}

func (s *monitoringAlertStore) GetByID(id uint) (*models.MonitoringAlert, error) {
	var a models.MonitoringAlert
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (s *monitoringAlertStore) Update(a *models.MonitoringAlert) error {
	res := s.db.Save(a)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *monitoringAlertStore) List() ([]models.MonitoringAlert, error) {
	var out []models.MonitoringAlert
	if err := s.db.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

type alertSubscriberStore struct{ db *gorm.DB }

func (s *alertSubscriberStore) Create(sub *models.AlertSubscriber) error {
	return s.db.Create(sub).Error
}

func (s *alertSubscriberStore) GetByEmail(email string) (*models.AlertSubscriber, error) {
	var sub models.AlertSubscriber
	if err := s.db.Where("email = ?", email).First(&sub).Error; err != nil {
		return nil, translate(err)
	}
	return &sub, nil
}

func (s *alertSubscriberStore) Update(sub *models.AlertSubscriber) error {
	res := s.db.Save(sub)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *alertSubscriberStore) List() ([]models.AlertSubscriber, error) {
	var out []models.AlertSubscriber
	if err := s.db.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

type userProfileStore struct{ db *gorm.DB }

func (s *userProfileStore) Create(p *models.UserProfile) error {
	return s.db.Create(p).Error
}

func (s *userProfileStore) GetByID(id uint) (*models.UserProfile, error) {
	var p models.UserProfile
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

type systemLogStore struct{ db *gorm.DB }

func (s *systemLogStore) CreateBatch(entries []models.SystemLog) error {
	if len(entries) == 0 {
		return nil
	}
	return s.db.CreateInBatches(entries, 50).Error
}

func (s *systemLogStore) DeleteOlderThan(cutoff time.Time) (int64, error) {
	res := s.db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	return res.RowsAffected, res.Error
}
