package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"club-backend/internal/domains/article"
	"club-backend/pkg/cache"
	"club-backend/pkg/database"
	"club-backend/pkg/logger"
)

const (
	cacheKeyListAll  = "articles:list:all"
	cacheKeyListFmt  = "articles:list:%s"
	cacheKeyByIDFmt  = "articles:id:%s"
	cachePatternAll  = "articles:*"
	articlesCacheTTL = 5 * time.Minute
)

type postgresArticleRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewArticleRepository tạo Postgres-backed article repository với read-through cache
func NewArticleRepository(pool *pgxpool.Pool, c cache.Cache) article.ArticleRepository {
	return &postgresArticleRepository{
		pool:  pool,
		cache: c,
	}
}

func listCacheKey(category string) string {
	if category == "" {
		return cacheKeyListAll
	}
	return fmt.Sprintf(cacheKeyListFmt, category)
}

func (r *postgresArticleRepository) List(ctx context.Context, category string) ([]article.Article, error) {
	key := listCacheKey(category)

	var cached []article.Article
	if hit, err := r.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	} else if err != nil {
		// Cache lỗi thì fall through xuống DB, không fail request
		logger.Warn("article list cache read failed", err)
	}

	query := `
		SELECT id, title, subtitle, category, subcategory, author_email, published_at, updated_at
		FROM articles`
	args := []interface{}{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY published_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	articles := []article.Article{}
	index := map[uuid.UUID]int{}
	ids := []uuid.UUID{}

	for rows.Next() {
		var a article.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Subtitle, &a.Category, &a.Subcategory,
			&a.AuthorEmail, &a.PublishedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		a.Blocks = []article.Block{}
		index[a.ID] = len(articles)
		articles = append(articles, a)
		ids = append(ids, a.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read articles: %w", err)
	}

	if len(ids) > 0 {
		blockRows, err := r.pool.Query(ctx, `
			SELECT id, article_id, block_type, block_order, content, image_url, image_alt
			FROM article_blocks
			WHERE article_id = ANY($1)
			ORDER BY article_id, block_order`, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to query article blocks: %w", err)
		}
		defer blockRows.Close()

		for blockRows.Next() {
			var b article.Block
			if err := blockRows.Scan(&b.ID, &b.ArticleID, &b.Type, &b.Order,
				&b.Content, &b.ImageURL, &b.ImageAlt); err != nil {
				return nil, fmt.Errorf("failed to scan article block: %w", err)
			}
			if i, ok := index[b.ArticleID]; ok {
				articles[i].Blocks = append(articles[i].Blocks, b)
			}
		}
		if err := blockRows.Err(); err != nil {
			return nil, fmt.Errorf("failed to read article blocks: %w", err)
		}
	}

	if err := r.cache.Set(ctx, key, articles, articlesCacheTTL); err != nil {
		logger.Warn("article list cache write failed", err)
	}

	return articles, nil
}

func (r *postgresArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (*article.Article, error) {
	key := fmt.Sprintf(cacheKeyByIDFmt, id)

	var cached article.Article
	if hit, err := r.cache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	} else if err != nil {
		logger.Warn("article cache read failed", err)
	}

	var a article.Article
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, subtitle, category, subcategory, author_email, published_at, updated_at
		FROM articles
		WHERE id = $1`, id,
	).Scan(&a.ID, &a.Title, &a.Subtitle, &a.Category, &a.Subcategory,
		&a.AuthorEmail, &a.PublishedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, article.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query article: %w", err)
	}

	a.Blocks = []article.Block{}
	rows, err := r.pool.Query(ctx, `
		SELECT id, article_id, block_type, block_order, content, image_url, image_alt
		FROM article_blocks
		WHERE article_id = $1
		ORDER BY block_order`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query article blocks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b article.Block
		if err := rows.Scan(&b.ID, &b.ArticleID, &b.Type, &b.Order,
			&b.Content, &b.ImageURL, &b.ImageAlt); err != nil {
			return nil, fmt.Errorf("failed to scan article block: %w", err)
		}
		a.Blocks = append(a.Blocks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read article blocks: %w", err)
	}

	if err := r.cache.Set(ctx, key, &a, articlesCacheTTL); err != nil {
		logger.Warn("article cache write failed", err)
	}

	return &a, nil
}

func (r *postgresArticleRepository) Create(ctx context.Context, a *article.Article) (*article.Article, error) {
	created, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*article.Article, error) {
		// published_at và updated_at do database gán
		err := tx.QueryRow(ctx, `
			INSERT INTO articles (title, subtitle, category, subcategory, author_email, published_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, now(), now())
			RETURNING id, published_at, updated_at`,
			a.Title, a.Subtitle, a.Category, a.Subcategory, a.AuthorEmail,
		).Scan(&a.ID, &a.PublishedAt, &a.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to insert article: %w", err)
		}

		if err := insertBlocks(ctx, tx, a.ID, a.Blocks); err != nil {
			return nil, err
		}

		return a, nil
	})
	if err != nil {
		return nil, err
	}

	r.invalidate(ctx)
	return created, nil
}

func (r *postgresArticleRepository) Update(ctx context.Context, a *article.Article) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		// published_at cố tình không nằm trong SET list
		tag, err := tx.Exec(ctx, `
			UPDATE articles
			SET title = $2, subtitle = $3, category = $4, subcategory = $5, updated_at = now()
			WHERE id = $1`,
			a.ID, a.Title, a.Subtitle, a.Category, a.Subcategory)
		if err != nil {
			return fmt.Errorf("failed to update article: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return article.ErrArticleNotFound
		}

		// Replace toàn bộ block set: delete hết rồi insert lại theo order mới
		if _, err := tx.Exec(ctx, `DELETE FROM article_blocks WHERE article_id = $1`, a.ID); err != nil {
			return fmt.Errorf("failed to delete old blocks: %w", err)
		}

		return insertBlocks(ctx, tx, a.ID, a.Blocks)
	})
	if err != nil {
		return err
	}

	r.invalidate(ctx)
	return nil
}

func (r *postgresArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM article_blocks WHERE article_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete article blocks: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete article: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return article.ErrArticleNotFound
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.invalidate(ctx)
	return nil
}

// insertBlocks insert block set với order 0..N-1 như caller đã gán
func insertBlocks(ctx context.Context, tx pgx.Tx, articleID uuid.UUID, blocks []article.Block) error {
	for _, b := range blocks {
		_, err := tx.Exec(ctx, `
			INSERT INTO article_blocks (article_id, block_type, block_order, content, image_url, image_alt)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			articleID, b.Type, b.Order, b.Content, b.ImageURL, b.ImageAlt)
		if err != nil {
			return fmt.Errorf("failed to insert block at order %d: %w", b.Order, err)
		}
	}
	return nil
}

// invalidate xóa mọi cached article view sau mutation
// Admin list luôn được re-fetch từ DB, không patch cache tại chỗ
func (r *postgresArticleRepository) invalidate(ctx context.Context) {
	if err := r.cache.DeletePattern(ctx, cachePatternAll); err != nil {
		logger.Warn("article cache invalidation failed", err)
	}
}
