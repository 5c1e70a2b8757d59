package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"club-backend/internal/domains/event"
)

type fakeEventRepository struct {
	events map[uuid.UUID]*event.Event
}

func newFakeRepo() *fakeEventRepository {
	return &fakeEventRepository{events: map[uuid.UUID]*event.Event{}}
}

func (f *fakeEventRepository) List(_ context.Context) ([]event.Event, error) {
	out := []event.Event{}
	for _, e := range f.events {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEventRepository) GetByID(_ context.Context, id uuid.UUID) (*event.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, event.ErrEventNotFound
	}
	clone := *e
	return &clone, nil
}

func (f *fakeEventRepository) Create(_ context.Context, e *event.Event) (*event.Event, error) {
	e.ID = uuid.New()
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	clone := *e
	f.events[e.ID] = &clone
	return e, nil
}

func (f *fakeEventRepository) Update(_ context.Context, e *event.Event) error {
	existing, ok := f.events[e.ID]
	if !ok {
		return event.ErrEventNotFound
	}
	clone := *e
	clone.CreatedAt = existing.CreatedAt
	clone.UpdatedAt = time.Now()
	f.events[e.ID] = &clone
	return nil
}

func (f *fakeEventRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.events[id]; !ok {
		return event.ErrEventNotFound
	}
	delete(f.events, id)
	return nil
}

// newServiceAt cố định "now" để test không phụ thuộc wall clock
func newServiceAt(repo event.EventRepository, now time.Time) event.EventService {
	return &eventServiceImpl{
		repository: repo,
		now:        func() time.Time { return now },
	}
}

func eventRequest(month, day int) *event.SubmitEventRequest {
	return &event.SubmitEventRequest{
		Month:    month,
		Day:      day,
		Type:     event.TypeSpeakerEvent,
		Title:    "Fireside Chat",
		Summary:  "A conversation with a trading desk head",
		Address:  "Uris Hall",
		TimeFrom: "19:00",
	}
}

func TestSubmitComputesIsPastSnapshot(t *testing.T) {
	// reference: hôm nay là 2024-06-01 UTC
	now := time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	svc := newServiceAt(repo, now)
	ctx := context.Background()

	t.Run("future date is not past", func(t *testing.T) {
		resp, err := svc.Submit(ctx, eventRequest(7, 10), "editor@club.org")
		require.NoError(t, err)
		assert.Equal(t, "2024-07-10", resp.Date)
		assert.False(t, resp.IsPast)
	})

	t.Run("same day is not past", func(t *testing.T) {
		resp, err := svc.Submit(ctx, eventRequest(6, 1), "editor@club.org")
		require.NoError(t, err)
		assert.False(t, resp.IsPast)
	})

	t.Run("yesterday is past", func(t *testing.T) {
		resp, err := svc.Submit(ctx, eventRequest(5, 31), "editor@club.org")
		require.NoError(t, err)
		assert.True(t, resp.IsPast)
	})

	t.Run("explicit override wins over date", func(t *testing.T) {
		req := eventRequest(12, 25)
		forced := true
		req.IsPast = &forced

		resp, err := svc.Submit(ctx, req, "editor@club.org")
		require.NoError(t, err)
		assert.True(t, resp.IsPast)
	})
}

func TestSubmitRejectsImpossibleDate(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	svc := newServiceAt(newFakeRepo(), now)

	_, err := svc.Submit(context.Background(), eventRequest(2, 31), "editor@club.org")
	assert.ErrorIs(t, err, event.ErrInvalidDate)
}

func TestSubmitValidationBlocksWrite(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	svc := newServiceAt(repo, now)

	req := eventRequest(6, 15)
	req.Title = ""

	_, err := svc.Submit(context.Background(), req, "editor@club.org")
	require.Error(t, err)
	assert.Empty(t, repo.events)
}

func TestSubmitUpdateReplacesDate(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	svc := newServiceAt(repo, now)
	ctx := context.Background()

	created, err := svc.Submit(ctx, eventRequest(6, 15), "editor@club.org")
	require.NoError(t, err)

	req := eventRequest(8, 20)
	req.ID = &created.ID

	updated, err := svc.Submit(ctx, req, "editor@club.org")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "2024-08-20", updated.Date)
}

func TestListPartitionsAndManageListFiltersUpcoming(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	svc := newServiceAt(repo, now)
	ctx := context.Background()

	_, err := svc.Submit(ctx, eventRequest(5, 31), "editor@club.org") // past
	require.NoError(t, err)
	_, err = svc.Submit(ctx, eventRequest(6, 10), "editor@club.org") // upcoming
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list.Upcoming, 1)
	assert.Len(t, list.Past, 1)

	manage, err := svc.ManageList(ctx)
	require.NoError(t, err)
	require.Len(t, manage, 1)
	assert.Equal(t, "2024-06-10", manage[0].Date)
}

func TestDeleteEvent(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	svc := newServiceAt(repo, now)
	ctx := context.Background()

	created, err := svc.Submit(ctx, eventRequest(6, 15), "editor@club.org")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), event.ErrEventNotFound)
}
