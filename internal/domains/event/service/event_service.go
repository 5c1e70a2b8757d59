package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"club-backend/internal/domains/event"
	"club-backend/pkg/logger"
)

type eventServiceImpl struct {
	repository event.EventRepository
	now        func() time.Time
}

func NewEventService(repo event.EventRepository) event.EventService {
	return &eventServiceImpl{
		repository: repo,
		now:        time.Now,
	}
}

func (s *eventServiceImpl) List(ctx context.Context) (*event.EventsResponse, error) {
	events, err := s.repository.List(ctx)
	if err != nil {
		logger.Error("failed to list events", err)
		return nil, fmt.Errorf("list events: %w", err)
	}

	upcoming, past := event.Partition(events, event.Today(s.now()))

	return &event.EventsResponse{
		Upcoming: event.NewEventResponses(upcoming),
		Past:     event.NewEventResponses(past),
	}, nil
}

// ManageList chỉ trả upcoming: admin form quản lý events sắp tới,
// events đã qua không sửa được từ form
func (s *eventServiceImpl) ManageList(ctx context.Context) ([]event.EventResponse, error) {
	events, err := s.repository.List(ctx)
	if err != nil {
		logger.Error("failed to list events", err)
		return nil, fmt.Errorf("list events: %w", err)
	}

	upcoming, _ := event.Partition(events, event.Today(s.now()))
	return event.NewEventResponses(upcoming), nil
}

func (s *eventServiceImpl) Submit(ctx context.Context, req *event.SubmitEventRequest, authorEmail string) (*event.EventResponse, error) {
	// ========== STEP 1: Validate Input ==========
	if req == nil {
		return nil, fmt.Errorf("submit event: invalid request")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// ========== STEP 2: Build Date + IsPast Snapshot ==========
	// Date = (năm hiện tại, month, day) dựng thẳng trong UTC
	today := event.Today(s.now())
	date := event.DateFor(today.Year(), req.Month, req.Day)
	if date.Month() != time.Month(req.Month) || date.Day() != req.Day {
		// vd: 31/2 bị time.Date normalize sang tháng sau
		return nil, event.ErrInvalidDate
	}

	isPast := event.IsPastFor(date, today)
	if req.IsPast != nil {
		// Admin override: ép event vào bucket past/upcoming bất kể ngày
		isPast = *req.IsPast
	}

	entity := &event.Event{
		Date:        date,
		Type:        req.Type,
		Title:       req.Title,
		Summary:     req.Summary,
		Address:     req.Address,
		TimeFrom:    req.TimeFrom,
		Featured:    req.Featured,
		IsPast:      isPast,
		AuthorEmail: authorEmail,
	}
	if req.TimeTo != "" {
		timeTo := req.TimeTo
		entity.TimeTo = &timeTo
	}
	if req.RSVPLink != "" {
		link := req.RSVPLink
		entity.RSVPLink = &link
	}

	// ========== STEP 3: Create vs Update ==========
	// Khác với articles, update thay toàn bộ fields kể cả date
	var id uuid.UUID
	if req.ID != nil {
		entity.ID = *req.ID
		if err := s.repository.Update(ctx, entity); err != nil {
			return nil, err
		}
		id = *req.ID
	} else {
		created, err := s.repository.Create(ctx, entity)
		if err != nil {
			logger.Error("failed to create event", err)
			return nil, fmt.Errorf("create event: %w", err)
		}
		id = created.ID
	}

	// ========== STEP 4: Re-fetch ==========
	fresh, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload event after submit: %w", err)
	}

	resp := event.NewEventResponse(fresh)
	return &resp, nil
}

func (s *eventServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("event deleted", map[string]interface{}{
		"event_id": id.String(),
	})
	return nil
}
