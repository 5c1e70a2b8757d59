package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"club-backend/internal/domains/auth"
)

type postgresEditorRepository struct {
	pool *pgxpool.Pool
}

// NewEditorRepository tạo Postgres-backed editor repository
// Bảng editors không đi qua cache: login phải luôn thấy credential mới nhất
func NewEditorRepository(pool *pgxpool.Pool) auth.EditorRepository {
	return &postgresEditorRepository{pool: pool}
}

func (r *postgresEditorRepository) FindByEmail(ctx context.Context, email string) (*auth.Editor, error) {
	var e auth.Editor
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, name, password_hash, created_at, updated_at
		FROM editors
		WHERE lower(email) = lower($1)`, email,
	).Scan(&e.ID, &e.Email, &e.Name, &e.PasswordHash, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, auth.ErrEditorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query editor: %w", err)
	}
	return &e, nil
}
