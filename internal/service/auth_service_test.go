package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdb-lk/cpds-api/internal/models"
	"github.com/cdb-lk/cpds-api/internal/repository"
	appErrors "github.com/cdb-lk/cpds-api/pkg/errors"
)

type sessionStoreStub struct {
	sessions map[string]*models.Session
}

func newSessionStoreStub() *sessionStoreStub {
	return &sessionStoreStub{sessions: map[string]*models.Session{}}
}

func (s *sessionStoreStub) Save(_ context.Context, session *models.Session) error {
	s.sessions[session.TokenID] = session
	return nil
}

func (s *sessionStoreStub) Get(_ context.Context, tokenID string) (*models.Session, error) {
	session, ok := s.sessions[tokenID]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	return session, nil
}

func (s *sessionStoreStub) Revoke(_ context.Context, tokenID string) error {
	delete(s.sessions, tokenID)
	return nil
}

func testAuthService(sessions SessionStore) *AuthService {
	return NewAuthService(sessions, nil, nil, AuthConfig{Secret: "test-secret", Expiry: time.Hour})
}

func TestAuthServiceLoginCredentialMatrix(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantRole models.UserRole
		wantErr  bool
	}{
		{name: "admin", username: "admin", password: "admin", wantRole: models.RoleAdmin},
		{name: "hadpanagala operator", username: "hadpanagala", password: "nursery1", wantRole: models.RoleHadpanagala},
		{name: "walipitiya operator", username: "walipitiya", password: "nursery2", wantRole: models.RoleWalipitiya},
		{name: "wrong password", username: "admin", password: "nursery1", wantErr: true},
		{name: "unknown user", username: "ghost", password: "admin", wantErr: true},
		{name: "case sensitive", username: "Admin", password: "admin", wantErr: true},
	}

	svc := testAuthService(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Login(context.Background(), models.LoginRequest{Username: tt.username, Password: tt.password})
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, result.User.Role)
			assert.NotEmpty(t, result.AccessToken)
		})
	}
}

func TestAuthServiceLoginRequiresBothFields(t *testing.T) {
	svc := testAuthService(nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "admin"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateToken(t *testing.T) {
	svc := testAuthService(nil)

	result, err := svc.Login(context.Background(), models.LoginRequest{Username: "hadpanagala", Password: "nursery1"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleHadpanagala, claims.Role)
	assert.Equal(t, "2", claims.UserID)
	assert.Equal(t, "Hadpanagala Nursery", claims.Username)

	_, err = svc.ValidateToken(context.Background(), "not-a-token")
	require.Error(t, err)

	// Tokens signed with another secret are rejected.
	other := testAuthService(nil)
	other.config.Secret = "different"
	_, err = other.ValidateToken(context.Background(), result.AccessToken)
	require.Error(t, err)
}

func TestAuthServiceLogoutRevokesSession(t *testing.T) {
	sessions := newSessionStoreStub()
	svc := testAuthService(sessions)

	result, err := svc.Login(context.Background(), models.LoginRequest{Username: "admin", Password: "admin"})
	require.NoError(t, err)
	require.Len(t, sessions.sessions, 1)

	claims, err := svc.ValidateToken(context.Background(), result.AccessToken)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), claims))
	assert.Empty(t, sessions.sessions)

	_, err = svc.ValidateToken(context.Background(), result.AccessToken)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}
