package auth

import "context"

// AuthService là business contract cho access gate
type AuthService interface {
	// Login check credentials và issue JWT
	// Sai email hoặc sai password đều → ErrInvalidCredentials, không có token
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
}
