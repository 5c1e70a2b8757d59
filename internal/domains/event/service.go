package event

import (
	"context"

	"github.com/google/uuid"
)

// EventService là business contract cho event operations
type EventService interface {
	// List trả về public view: upcoming/past đã partition theo hôm nay (UTC)
	List(ctx context.Context) (*EventsResponse, error)

	// ManageList trả về danh sách cho admin form: chỉ upcoming
	ManageList(ctx context.Context) ([]EventResponse, error)

	// Submit: req.ID có mặt → update, không → create
	// is_past được snapshot tại thời điểm ghi
	Submit(ctx context.Context, req *SubmitEventRequest, authorEmail string) (*EventResponse, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
