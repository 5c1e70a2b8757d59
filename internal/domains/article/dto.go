package article

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"club-backend/internal/taxonomy"
)

// BlockInput là một block trong payload submit
type BlockInput struct {
	Type     string `json:"type"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
	ImageAlt string `json:"image_alt"`
}

func (b BlockInput) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Type,
			validation.Required,
			validation.In("title", "subtitle", "text", "image"),
		),
		validation.Field(&b.ImageURL, is.URL),
	)
}

// SubmitArticleRequest là payload của admin submit
// ID có mặt → update article đó, không có → create mới
type SubmitArticleRequest struct {
	ID          *uuid.UUID   `json:"id,omitempty"`
	Category    string       `json:"category"`
	Subcategory string       `json:"subcategory"`
	Blocks      []BlockInput `json:"blocks"`
}

func (r SubmitArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Category,
			validation.Required,
			validation.By(func(interface{}) error {
				if !taxonomy.IsValidCategory(r.Category) {
					return ErrInvalidCategory
				}
				return nil
			}),
		),
		validation.Field(&r.Subcategory,
			validation.Required,
			validation.By(func(interface{}) error {
				if !taxonomy.IsValidPair(r.Category, r.Subcategory) {
					return ErrInvalidSubcategory
				}
				return nil
			}),
		),
		validation.Field(&r.Blocks,
			validation.Required.Error("at least one content block is required"),
			validation.Length(1, 0),
		),
	)
}

// BlockResponse là block trả về cho client, đã sort theo order
type BlockResponse struct {
	Type     string `json:"type"`
	Order    int    `json:"order"`
	Content  string `json:"content,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	ImageAlt string `json:"image_alt,omitempty"`
}

// ArticleResponse dùng cho list view
type ArticleResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Subtitle        *string   `json:"subtitle,omitempty"`
	Category        string    `json:"category"`
	Subcategory     string    `json:"subcategory"`
	CategoryName    string    `json:"category_name"`
	SubcategoryName string    `json:"subcategory_name"`
	Summary         string    `json:"summary"`
	AuthorEmail     string    `json:"author_email"`
	PublishedAt     time.Time `json:"published_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ArticleDetailResponse dùng cho detail view: list fields + blocks + segments đã compose
type ArticleDetailResponse struct {
	ArticleResponse
	Blocks   []BlockResponse `json:"blocks"`
	Segments []Segment       `json:"segments"`
}

// NewArticleResponse map entity sang list DTO, gắn display names và summary
func NewArticleResponse(a *Article) *ArticleResponse {
	return &ArticleResponse{
		ID:              a.ID,
		Title:           a.Title,
		Subtitle:        a.Subtitle,
		Category:        a.Category,
		Subcategory:     a.Subcategory,
		CategoryName:    taxonomy.DisplayName(a.Category),
		SubcategoryName: taxonomy.DisplayName(a.Subcategory),
		Summary:         Summary(a),
		AuthorEmail:     a.AuthorEmail,
		PublishedAt:     a.PublishedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// NewArticleDetailResponse map entity sang detail DTO
func NewArticleDetailResponse(a *Article) *ArticleDetailResponse {
	blocks := make([]BlockResponse, 0, len(a.Blocks))
	for _, b := range a.Blocks {
		resp := BlockResponse{
			Type:  string(b.Type),
			Order: b.Order,
		}
		if b.Content != nil {
			resp.Content = *b.Content
		}
		if b.ImageURL != nil {
			resp.ImageURL = *b.ImageURL
		}
		if b.ImageAlt != nil {
			resp.ImageAlt = *b.ImageAlt
		}
		blocks = append(blocks, resp)
	}

	return &ArticleDetailResponse{
		ArticleResponse: *NewArticleResponse(a),
		Blocks:          blocks,
		Segments:        Compose(a.Blocks),
	}
}
