package services

import (
	"errors"
	"time"

	"github.com/HAKEEM243/Masambukidi/internal/models"
	"github.com/HAKEEM243/Masambukidi/internal/store"
)

// ProfileService serves the public member profile lookup.
type ProfileService struct {
	profiles store.UserProfileStore
}

func NewProfileService(profiles store.UserProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

func (s *ProfileService) Get(id uint) (*models.UserProfile, error) {
	profile, err := s.profiles.GetByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	return profile, err
}

// SeedProfiles loads the default member profiles into an empty store.
// Used by the in-memory backend, which starts cold on every boot.
func SeedProfiles(profiles store.UserProfileStore) error {
	defaults := []models.UserProfile{
		{
			ID:        1,
			FullName:  "Sarah Masambukidi",
			Email:     "sarah.masambukidi@example.com",
			Role:      "member",
			Status:    "active",
			JoinedAt:  time.Date(2024, 5, 18, 10, 24, 0, 0, time.UTC),
			AvatarURL: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?q=80&w=200&auto=format&fit=facearea&facepad=2",
		},
		{
			ID:        2,
			FullName:  "Jean Kulala",
			Email:     "jean.kulala@example.com",
			Role:      "editor",
			Status:    "active",
			JoinedAt:  time.Date(2023, 11, 2, 15, 40, 0, 0, time.UTC),
			AvatarURL: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?q=80&w=200&auto=format&fit=facearea&facepad=2",
		},
		{
			ID:        3,
			FullName:  "Amani Katiopa",
			Email:     "amani.katiopa@example.com",
			Role:      "reviewer",
			Status:    "suspended",
			JoinedAt:  time.Date(2022, 9, 12, 8, 15, 0, 0, time.UTC),
			AvatarURL: "https://images.unsplash.com/photo-1544723795-3fb6469f5b39?q=80&w=200&auto=format&fit=facearea&facepad=2",
		},
	}
	for i := range defaults {
		if err := profiles.Create(&defaults[i]); err != nil {
			return err
		}
	}
	return nil
}
