package services

import (
	"fmt"

	"github.com/HAKEEM243/Masambukidi/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// AuthService checks the admin credentials and hands out the static admin
// token. The password is hashed at startup so the plaintext is not kept
// resident after boot.
type AuthService struct {
	username     string
	passwordHash []byte
	token        string
}

func NewAuthService(cfg *config.Config) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &AuthService{
		username:     cfg.AdminUsername,
		passwordHash: hash,
		token:        cfg.AdminToken,
	}, nil
}

// Login returns the admin token on a correct username/password pair.
func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.username {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.token, nil
}
