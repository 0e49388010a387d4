package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cdb-lk/cpds-api/internal/models"
	"github.com/cdb-lk/cpds-api/internal/repository"
	appErrors "github.com/cdb-lk/cpds-api/pkg/errors"
)

// SessionStore records issued tokens so they can be revoked before expiry.
// A nil store disables revocation without disabling authentication.
type SessionStore interface {
	Save(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, tokenID string) (*models.Session, error)
	Revoke(ctx context.Context, tokenID string) error
}

// staticCredential is one fixed account. The credential table is a lookup,
// not a security mechanism: the deployment has exactly three accounts and
// provisioning happens by editing this table.
type staticCredential struct {
	ID       string
	Username string
	Password string
	Display  string
	Role     models.UserRole
}

var staticCredentials = []staticCredential{
	{ID: "1", Username: "admin", Password: "admin", Display: "Admin", Role: models.RoleAdmin},
	{ID: "2", Username: "hadpanagala", Password: "nursery1", Display: "Hadpanagala Nursery", Role: models.RoleHadpanagala},
	{ID: "3", Username: "walipitiya", Password: "nursery2", Display: "Walipitiya Nursery", Role: models.RoleWalipitiya},
}

// AuthConfig defines configuration for authentication flows.
type AuthConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

// AuthService authenticates the three fixed accounts and issues HS256
// access tokens. When a session store is attached, each token is recorded
// so logout can revoke it before expiry.
type AuthService struct {
	sessions  SessionStore
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(sessions SessionStore, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if config.Issuer == "" {
		config.Issuer = "cpds-api"
	}
	if config.Expiry <= 0 {
		config.Expiry = 24 * time.Hour
	}
	return &AuthService{sessions: sessions, validator: validate, logger: logger, config: config}
}

// Login authenticates a user and returns the issued token.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	cred, ok := lookupCredential(req.Username, req.Password)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}

	issuedAt := time.Now().UTC()
	expiresAt := issuedAt.Add(s.config.Expiry)
	tokenID := uuid.NewString()

	claims := &models.JWTClaims{
		UserID:   cred.ID,
		Username: cred.Display,
		Role:     cred.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Issuer:    s.config.Issuer,
			Subject:   cred.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create access token")
	}

	if s.sessions != nil {
		session := &models.Session{
			TokenID:   tokenID,
			UserID:    cred.ID,
			Username:  cred.Display,
			Role:      cred.Role,
			IssuedAt:  issuedAt,
			ExpiresAt: expiresAt,
			IPAddress: req.IP,
			UserAgent: req.UserAgent,
		}
		if err := s.sessions.Save(ctx, session); err != nil {
			s.logger.Warn("failed to persist session", zap.Error(err))
		}
	}

	s.logger.Info("login", zap.String("username", cred.Username), zap.String("role", string(cred.Role)))

	return &models.LoginResponse{
		AccessToken: signed,
		ExpiresIn:   int64(s.config.Expiry.Seconds()),
		IssuedAt:    issuedAt,
		User: models.UserInfo{
			ID:       cred.ID,
			Username: cred.Display,
			Role:     cred.Role,
		},
	}, nil
}

// Logout revokes the session behind the presented token, if any.
func (s *AuthService) Logout(ctx context.Context, claims *models.JWTClaims) error {
	if s.sessions == nil || claims == nil || claims.ID == "" {
		return nil
	}
	if err := s.sessions.Revoke(ctx, claims.ID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to revoke session")
	}
	return nil
}

// ValidateToken parses and verifies an access token. With a session store
// attached, tokens whose session was revoked are rejected.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}

	if s.sessions != nil && claims.ID != "" {
		if _, err := s.sessions.Get(ctx, claims.ID); err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return nil, appErrors.Clone(appErrors.ErrUnauthorized, "session revoked")
			}
			s.logger.Warn("session lookup failed", zap.Error(err))
		}
	}

	return claims, nil
}

func lookupCredential(username, password string) (*staticCredential, bool) {
	for i := range staticCredentials {
		cred := &staticCredentials[i]
		nameMatch := subtle.ConstantTimeCompare([]byte(cred.Username), []byte(username)) == 1
		passMatch := subtle.ConstantTimeCompare([]byte(cred.Password), []byte(password)) == 1
		if nameMatch && passMatch {
			return cred, true
		}
	}
	return nil, false
}
