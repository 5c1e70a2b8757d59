package article

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSubmitRequest() SubmitArticleRequest {
	return SubmitArticleRequest{
		Category:    "energy",
		Subcategory: "oil",
		Blocks: []BlockInput{
			{Type: "title", Content: "Crude Outlook"},
			{Type: "text", Content: "body"},
		},
	}
}

func TestSubmitArticleRequestValidate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		req := validSubmitRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("missing category fails", func(t *testing.T) {
		req := validSubmitRequest()
		req.Category = ""
		assert.Error(t, req.Validate())
	})

	t.Run("unknown category fails", func(t *testing.T) {
		req := validSubmitRequest()
		req.Category = "livestock"
		assert.Error(t, req.Validate())
	})

	t.Run("subcategory from wrong category fails", func(t *testing.T) {
		req := validSubmitRequest()
		req.Subcategory = "gold"
		assert.Error(t, req.Validate())
	})

	t.Run("empty block list fails", func(t *testing.T) {
		req := validSubmitRequest()
		req.Blocks = nil
		assert.Error(t, req.Validate())
	})
}

func TestBlockInputValidate(t *testing.T) {
	assert.NoError(t, BlockInput{Type: "text", Content: "x"}.Validate())
	assert.NoError(t, BlockInput{Type: "image", ImageURL: "http://cdn/a.jpg"}.Validate())
	assert.Error(t, BlockInput{Type: "video"}.Validate())
	assert.Error(t, BlockInput{}.Validate())
}

func TestNewArticleResponseDisplayNames(t *testing.T) {
	a := &Article{
		Category:    "energy",
		Subcategory: "natural-gas",
	}
	resp := NewArticleResponse(a)
	assert.Equal(t, "Energy", resp.CategoryName)
	assert.Equal(t, "Natural Gas", resp.SubcategoryName)
	assert.Equal(t, "No content available.", resp.Summary)
}
