package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"club-backend/internal/domains/auth"
	"club-backend/pkg/jwt"
)

type fakeEditorRepository struct {
	editors map[string]*auth.Editor
}

func (f *fakeEditorRepository) FindByEmail(_ context.Context, email string) (*auth.Editor, error) {
	e, ok := f.editors[email]
	if !ok {
		return nil, auth.ErrEditorNotFound
	}
	return e, nil
}

func newTestService(t *testing.T) (auth.AuthService, *jwt.Manager) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeEditorRepository{editors: map[string]*auth.Editor{
		"editor@club.org": {
			Email:        "editor@club.org",
			Name:         "Club Editor",
			PasswordHash: string(hash),
		},
	}}

	manager := jwt.NewManager("test-secret", time.Hour)
	return NewAuthService(repo, manager), manager
}

func TestLoginSuccess(t *testing.T) {
	svc, manager := newTestService(t)

	resp, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "editor@club.org",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "editor@club.org", resp.Email)
	assert.Equal(t, "Club Editor", resp.Name)

	claims, err := manager.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "editor@club.org", claims.Email)
	assert.Equal(t, "Club Editor", claims.Name)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "editor@club.org",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.Nil(t, resp, "no token on failed login")
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "stranger@club.org",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials,
		"unknown email must look identical to wrong password")
}

func TestLoginValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), &auth.LoginRequest{Email: "not-an-email", Password: "x"})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), &auth.LoginRequest{Email: "editor@club.org"})
	assert.Error(t, err)
}
