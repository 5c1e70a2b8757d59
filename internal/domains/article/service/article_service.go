package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"club-backend/internal/domains/article"
	"club-backend/pkg/logger"
)

type articleServiceImpl struct {
	repository article.ArticleRepository
}

func NewArticleService(repo article.ArticleRepository) article.ArticleService {
	return &articleServiceImpl{
		repository: repo,
	}
}

func (s *articleServiceImpl) List(ctx context.Context, category string) ([]*article.ArticleResponse, error) {
	articles, err := s.repository.List(ctx, category)
	if err != nil {
		logger.Error("failed to list articles", err)
		return nil, fmt.Errorf("list articles: %w", err)
	}

	responses := make([]*article.ArticleResponse, 0, len(articles))
	for i := range articles {
		responses = append(responses, article.NewArticleResponse(&articles[i]))
	}
	return responses, nil
}

func (s *articleServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*article.ArticleDetailResponse, error) {
	a, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return article.NewArticleDetailResponse(a), nil
}

func (s *articleServiceImpl) Submit(ctx context.Context, req *article.SubmitArticleRequest, authorEmail string) (*article.ArticleDetailResponse, error) {
	// ========== STEP 1: Validate Input ==========
	if req == nil {
		return nil, fmt.Errorf("submit article: invalid request")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// ========== STEP 2: Build Block Set ==========
	// Block rỗng hoàn toàn bị bỏ, order được đánh lại 0..N-1 theo thứ tự submit
	blocks := buildBlocks(req.Blocks)
	if len(blocks) == 0 {
		return nil, article.ErrNoBlocks
	}

	entity := &article.Article{
		Title:       article.DeriveTitle(blocks),
		Subtitle:    article.DeriveSubtitle(blocks),
		Category:    req.Category,
		Subcategory: req.Subcategory,
		AuthorEmail: authorEmail,
		Blocks:      blocks,
	}

	// ========== STEP 3: Create vs Update ==========
	var id uuid.UUID
	if req.ID != nil {
		// Update path: author và published_at của bản gốc được giữ nguyên
		existing, err := s.repository.GetByID(ctx, *req.ID)
		if err != nil {
			return nil, err
		}

		entity.ID = existing.ID
		entity.AuthorEmail = existing.AuthorEmail
		entity.PublishedAt = existing.PublishedAt

		if err := s.repository.Update(ctx, entity); err != nil {
			logger.Error("failed to update article", err)
			return nil, fmt.Errorf("update article: %w", err)
		}
		id = existing.ID
	} else {
		created, err := s.repository.Create(ctx, entity)
		if err != nil {
			logger.Error("failed to create article", err)
			return nil, fmt.Errorf("create article: %w", err)
		}
		id = created.ID
	}

	// ========== STEP 4: Re-fetch ==========
	// Response luôn là bản fresh từ persistence, không phải entity local
	fresh, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload article after submit: %w", err)
	}

	return article.NewArticleDetailResponse(fresh), nil
}

func (s *articleServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("article deleted", map[string]interface{}{
		"article_id": id.String(),
	})
	return nil
}

// buildBlocks map block inputs sang entities, bỏ block không có nội dung
func buildBlocks(inputs []article.BlockInput) []article.Block {
	blocks := make([]article.Block, 0, len(inputs))

	for _, in := range inputs {
		blockType := article.BlockType(in.Type)

		switch blockType {
		case article.BlockTypeImage:
			// Image block chưa upload xong (không có URL) thì bỏ qua, không corrupt block khác
			if in.ImageURL == "" {
				continue
			}
			imageURL := in.ImageURL
			b := article.Block{
				Type:     blockType,
				Order:    len(blocks),
				ImageURL: &imageURL,
			}
			if in.ImageAlt != "" {
				imageAlt := in.ImageAlt
				b.ImageAlt = &imageAlt
			}
			blocks = append(blocks, b)

		case article.BlockTypeTitle, article.BlockTypeSubtitle, article.BlockTypeText:
			if strings.TrimSpace(in.Content) == "" {
				continue
			}
			content := in.Content
			blocks = append(blocks, article.Block{
				Type:    blockType,
				Order:   len(blocks),
				Content: &content,
			})
		}
	}

	return blocks
}
