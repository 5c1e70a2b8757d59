package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"club-backend/internal/domains/event"
	"club-backend/pkg/cache"
	"club-backend/pkg/logger"
)

const (
	cacheKeyList     = "events:list"
	cachePatternAll  = "events:*"
	eventsCacheTTL   = 5 * time.Minute
	selectEventQuery = `
		SELECT id, event_date, event_type, title, summary, address,
		       time_from, time_to, rsvp_link, featured, is_past,
		       author_email, created_at, updated_at
		FROM events`
)

type postgresEventRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewEventRepository tạo Postgres-backed event repository với read-through cache
func NewEventRepository(pool *pgxpool.Pool, c cache.Cache) event.EventRepository {
	return &postgresEventRepository{
		pool:  pool,
		cache: c,
	}
}

func scanEvent(row pgx.Row, e *event.Event) error {
	return row.Scan(&e.ID, &e.Date, &e.Type, &e.Title, &e.Summary, &e.Address,
		&e.TimeFrom, &e.TimeTo, &e.RSVPLink, &e.Featured, &e.IsPast,
		&e.AuthorEmail, &e.CreatedAt, &e.UpdatedAt)
}

func (r *postgresEventRepository) List(ctx context.Context) ([]event.Event, error) {
	var cached []event.Event
	if hit, err := r.cache.Get(ctx, cacheKeyList, &cached); err == nil && hit {
		return cached, nil
	} else if err != nil {
		logger.Warn("event list cache read failed", err)
	}

	rows, err := r.pool.Query(ctx, selectEventQuery+` ORDER BY event_date ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []event.Event{}
	for rows.Next() {
		var e event.Event
		if err := scanEvent(rows, &e); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		// event_date là cột DATE, chuẩn hóa lại về UTC midnight cho chắc
		e.Date = event.Today(e.Date)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKeyList, events, eventsCacheTTL); err != nil {
		logger.Warn("event list cache write failed", err)
	}

	return events, nil
}

func (r *postgresEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	var e event.Event
	err := scanEvent(r.pool.QueryRow(ctx, selectEventQuery+` WHERE id = $1`, id), &e)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, event.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query event: %w", err)
	}
	e.Date = event.Today(e.Date)
	return &e, nil
}

func (r *postgresEventRepository) Create(ctx context.Context, e *event.Event) (*event.Event, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO events (event_date, event_type, title, summary, address,
		                    time_from, time_to, rsvp_link, featured, is_past,
		                    author_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
		RETURNING id, created_at, updated_at`,
		e.Date, e.Type, e.Title, e.Summary, e.Address,
		e.TimeFrom, e.TimeTo, e.RSVPLink, e.Featured, e.IsPast, e.AuthorEmail,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}

	r.invalidate(ctx)
	return e, nil
}

func (r *postgresEventRepository) Update(ctx context.Context, e *event.Event) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE events
		SET event_date = $2, event_type = $3, title = $4, summary = $5, address = $6,
		    time_from = $7, time_to = $8, rsvp_link = $9, featured = $10, is_past = $11,
		    author_email = $12, updated_at = now()
		WHERE id = $1`,
		e.ID, e.Date, e.Type, e.Title, e.Summary, e.Address,
		e.TimeFrom, e.TimeTo, e.RSVPLink, e.Featured, e.IsPast, e.AuthorEmail)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return event.ErrEventNotFound
	}

	r.invalidate(ctx)
	return nil
}

func (r *postgresEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return event.ErrEventNotFound
	}

	r.invalidate(ctx)
	return nil
}

func (r *postgresEventRepository) invalidate(ctx context.Context) {
	if err := r.cache.DeletePattern(ctx, cachePatternAll); err != nil {
		logger.Warn("event cache invalidation failed", err)
	}
}
