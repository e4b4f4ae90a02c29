package auth

import (
	"golang.org/x/crypto/bcrypt"

	"showreel-backend/internal/config"
	"showreel-backend/pkg/jwt"
)

// Service authenticates the single admin principal against the
// credentials loaded from the environment.
type Service struct {
	cfg    config.AuthConfig
	tokens *jwt.Manager
}

func NewService(cfg config.AuthConfig, tokens *jwt.Manager) *Service {
	return &Service{cfg: cfg, tokens: tokens}
}

// Login checks the credentials and mints a session token.
func (s *Service) Login(req LoginRequest) (string, UserInfo, error) {
	if s.cfg.AdminPasswordHash == "" {
		return "", UserInfo{}, ErrServerMisconfigured
	}

	if req.Username != s.cfg.AdminUsername {
		return "", UserInfo{}, ErrInvalidCredentials
	}

	err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(req.Password))
	if err != nil {
		return "", UserInfo{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(req.Username)
	if err != nil {
		return "", UserInfo{}, err
	}

	return token, adminInfo(req.Username), nil
}

func adminInfo(username string) UserInfo {
	return UserInfo{ID: 1, Username: username, Role: "admin"}
}
