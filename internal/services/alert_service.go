package services

import (
	"errors"
	"regexp"

	"github.com/HAKEEM243/Masambukidi/internal/models"
	"github.com/HAKEEM243/Masambukidi/internal/store"
	"github.com/benbjohnson/clock"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AlertService manages monitoring alerts and the alert mailing list.
type AlertService struct {
	alerts      store.MonitoringAlertStore
	subscribers store.AlertSubscriberStore
	clock       clock.Clock
}

func NewAlertService(alerts store.MonitoringAlertStore, subscribers store.AlertSubscriberStore, clk clock.Clock) *AlertService {
	return &AlertService{alerts: alerts, subscribers: subscribers, clock: clk}
}

// Subscribe activates the subscription for an email. Subscribing an
// already known email reactivates the existing row instead of adding one.
func (s *AlertService) Subscribe(email, name string) error {
	if !emailPattern.MatchString(email) {
		return ValidationError("Email invalide")
	}

	existing, err := s.subscribers.GetByEmail(email)
	if err == nil {
		existing.IsActive = true
		return s.subscribers.Update(existing)
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	return s.subscribers.Create(&models.AlertSubscriber{
		Email:     email,
		Name:      name,
		IsActive:  true,
		CreatedAt: s.clock.Now().UTC(),
	})
}

// Subscribers returns the full list, active or not.
func (s *AlertService) Subscribers() ([]models.AlertSubscriber, error) {
	return s.subscribers.List()
}

// Broadcast is a stub until an email provider is wired: it reports zero
// sent against the current subscriber total.
func (s *AlertService) Broadcast() (sent int, total int, err error) {
	subs, err := s.subscribers.List()
	if err != nil {
		return 0, 0, err
	}
	return 0, len(subs), nil
}

type AddAlertInput struct {
	Platform    string
	URL         string
	Description string
	Source      string
}

// AddDetection records a new monitoring alert.
func (s *AlertService) AddDetection(in AddAlertInput) (*models.MonitoringAlert, error) {
	alert := &models.MonitoringAlert{
		Platform:     in.Platform,
		URL:          in.URL,
		Description:  in.Description,
		Source:       in.Source,
		Status:       models.AlertNew,
		AutoDetected: true,
		DetectedAt:   s.clock.Now().UTC(),
	}
	if err := s.alerts.Create(alert); err != nil {
		return nil, err
	}
	return alert, nil
}

// ActiveAlerts returns the publicly visible alerts (new and reviewing).
func (s *AlertService) ActiveAlerts() ([]models.MonitoringAlert, error) {
	alerts, err := s.alerts.List()
	if err != nil {
		return nil, err
	}
	active := make([]models.MonitoringAlert, 0, len(alerts))
	for _, a := range alerts {
		if a.Status == models.AlertNew || a.Status == models.AlertReviewing {
			active = append(active, a)
		}
	}
	return active, nil
}

// Review moves an alert into the reviewing state.
func (s *AlertService) Review(id uint) (*models.MonitoringAlert, error) {
	alert, err := s.alerts.GetByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrAlertNotFound
	}
	if err != nil {
		return nil, err
	}
	alert.Status = models.AlertReviewing
	if err := s.alerts.Update(alert); err != nil {
		return nil, err
	}
	return alert, nil
}
