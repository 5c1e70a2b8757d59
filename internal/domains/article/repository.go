package article

import (
	"context"

	"github.com/google/uuid"
)

// ArticleRepository là persistence contract cho articles và blocks
// Mọi mutation lên block set phải atomic cùng với article row
type ArticleRepository interface {
	// List trả về articles (kèm blocks) mới nhất trước
	// category rỗng → tất cả
	List(ctx context.Context, category string) ([]Article, error)

	// GetByID trả về article kèm blocks đã sort theo order
	// Không tồn tại → ErrArticleNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*Article, error)

	// Create insert article + block set trong một transaction
	// published_at được gán bởi database
	Create(ctx context.Context, a *Article) (*Article, error)

	// Update thay mutable fields và replace toàn bộ block set trong một transaction
	// published_at không bao giờ bị đụng tới
	Update(ctx context.Context, a *Article) error

	// Delete xóa blocks rồi article trong một transaction
	Delete(ctx context.Context, id uuid.UUID) error
}
