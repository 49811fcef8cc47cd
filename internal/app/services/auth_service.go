package services

import (
	"github.com/rs/zerolog"

	"github.com/owlconnect/owlconnect/internal/pkg/apperrors"
	"github.com/owlconnect/owlconnect/internal/pkg/auth"
)

// authService implements the shared-secret to signed-token exchange. There is
// no server-side session state; the token itself is the credential.
type authService struct {
	adminSecret string
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new auth service. adminSecret is either a bcrypt
// hash or a plaintext development secret.
func NewAuthService(adminSecret string, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		adminSecret: adminSecret,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Login exchanges the admin secret for a signed, time-limited admin token
func (s *authService) Login(password string) (string, int, error) {
	if !auth.CheckPassword(password, s.adminSecret) {
		s.logger.Warn().Msg("Admin login attempt with invalid secret")
		return "", 0, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateAdminToken()
	if err != nil {
		return "", 0, err
	}

	s.logger.Info().Int("expiresIn", expiresIn).Msg("Admin token issued")
	return token, expiresIn, nil
}
