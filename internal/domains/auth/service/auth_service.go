package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"club-backend/internal/domains/auth"
	"club-backend/pkg/jwt"
	"club-backend/pkg/logger"
)

type authServiceImpl struct {
	repository auth.EditorRepository
	jwtManager *jwt.Manager
}

func NewAuthService(repo auth.EditorRepository, jwtManager *jwt.Manager) auth.AuthService {
	return &authServiceImpl{
		repository: repo,
		jwtManager: jwtManager,
	}
}

func (s *authServiceImpl) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	// ========== STEP 1: Validate Input ==========
	if req == nil {
		return nil, auth.ErrInvalidCredentials
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// ========== STEP 2: Lookup Editor ==========
	editor, err := s.repository.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrEditorNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		logger.Error("editor lookup failed", err)
		return nil, err
	}

	// ========== STEP 3: Verify Password ==========
	if err := bcrypt.CompareHashAndPassword([]byte(editor.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	// ========== STEP 4: Issue Token ==========
	token, err := s.jwtManager.GenerateToken(editor.Email, editor.Name)
	if err != nil {
		logger.Error("token generation failed", err)
		return nil, err
	}

	logger.Info("editor logged in", map[string]interface{}{
		"email": editor.Email,
	})

	return &auth.LoginResponse{
		Token: token,
		Email: editor.Email,
		Name:  editor.Name,
	}, nil
}
