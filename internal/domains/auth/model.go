package auth

import (
	"time"

	"github.com/google/uuid"
)

// Editor là một người được phép vào admin surface
// Credential table nằm server-side, client chỉ nhận JWT
type Editor struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
