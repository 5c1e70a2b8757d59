package article

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BlockType xác định loại của một content block
type BlockType string

const (
	BlockTypeTitle    BlockType = "title"
	BlockTypeSubtitle BlockType = "subtitle"
	BlockTypeText     BlockType = "text"
	BlockTypeImage    BlockType = "image"
)

// IsValid kiểm tra block type có nằm trong enum không
func (t BlockType) IsValid() bool {
	switch t {
	case BlockTypeTitle, BlockTypeSubtitle, BlockTypeText, BlockTypeImage:
		return true
	}
	return false
}

// Article là bài viết, sở hữu một danh sách block có thứ tự
// title/subtitle được derive từ blocks tại thời điểm create/update
type Article struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Subtitle    *string   `json:"subtitle,omitempty"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	AuthorEmail string    `json:"author_email"`
	PublishedAt time.Time `json:"published_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Blocks      []Block   `json:"blocks"`
}

// Block là một đơn vị nội dung của article
// Content dùng cho title/subtitle/text, ImageURL/ImageAlt chỉ cho image
type Block struct {
	ID        uuid.UUID `json:"id"`
	ArticleID uuid.UUID `json:"article_id"`
	Type      BlockType `json:"block_type"`
	Order     int       `json:"block_order"`
	Content   *string   `json:"content,omitempty"`
	ImageURL  *string   `json:"image_url,omitempty"`
	ImageAlt  *string   `json:"image_alt,omitempty"`
}

// DefaultTitle dùng khi article không có title block
const DefaultTitle = "Untitled"

// DeriveTitle lấy content của block type=title đầu tiên, default "Untitled"
func DeriveTitle(blocks []Block) string {
	for _, b := range blocks {
		if b.Type == BlockTypeTitle && b.Content != nil {
			if title := strings.TrimSpace(*b.Content); title != "" {
				return title
			}
		}
	}
	return DefaultTitle
}

// DeriveSubtitle lấy content của block type=subtitle đầu tiên, nil nếu không có
func DeriveSubtitle(blocks []Block) *string {
	for _, b := range blocks {
		if b.Type == BlockTypeSubtitle && b.Content != nil {
			if subtitle := strings.TrimSpace(*b.Content); subtitle != "" {
				return &subtitle
			}
		}
	}
	return nil
}
