package article

import (
	"context"

	"github.com/google/uuid"
)

// ArticleService là business contract cho article operations
type ArticleService interface {
	List(ctx context.Context, category string) ([]*ArticleResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ArticleDetailResponse, error)

	// Submit là reconciliation entry point: req.ID có mặt → update, không → create
	Submit(ctx context.Context, req *SubmitArticleRequest, authorEmail string) (*ArticleDetailResponse, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
