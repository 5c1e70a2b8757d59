package event

import (
	"context"

	"github.com/google/uuid"
)

// EventRepository là persistence contract cho events
type EventRepository interface {
	// List trả về toàn bộ events, sort date ascending
	List(ctx context.Context) ([]Event, error)

	// GetByID → ErrEventNotFound nếu không tồn tại
	GetByID(ctx context.Context, id uuid.UUID) (*Event, error)

	Create(ctx context.Context, e *Event) (*Event, error)

	// Update thay toàn bộ mutable fields, refresh updated_at
	Update(ctx context.Context, e *Event) error

	Delete(ctx context.Context, id uuid.UUID) error
}
