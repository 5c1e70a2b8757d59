package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"club-backend/internal/domains/article"
)

// fakeArticleRepository là in-memory repository cho service tests
type fakeArticleRepository struct {
	articles map[uuid.UUID]*article.Article
}

func newFakeRepo() *fakeArticleRepository {
	return &fakeArticleRepository{articles: map[uuid.UUID]*article.Article{}}
}

func (f *fakeArticleRepository) List(_ context.Context, category string) ([]article.Article, error) {
	out := []article.Article{}
	for _, a := range f.articles {
		if category == "" || a.Category == category {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeArticleRepository) GetByID(_ context.Context, id uuid.UUID) (*article.Article, error) {
	a, ok := f.articles[id]
	if !ok {
		return nil, article.ErrArticleNotFound
	}
	clone := *a
	return &clone, nil
}

func (f *fakeArticleRepository) Create(_ context.Context, a *article.Article) (*article.Article, error) {
	a.ID = uuid.New()
	a.PublishedAt = time.Now()
	a.UpdatedAt = a.PublishedAt
	clone := *a
	f.articles[a.ID] = &clone
	return a, nil
}

func (f *fakeArticleRepository) Update(_ context.Context, a *article.Article) error {
	existing, ok := f.articles[a.ID]
	if !ok {
		return article.ErrArticleNotFound
	}
	clone := *a
	clone.PublishedAt = existing.PublishedAt // cột này không nằm trong UPDATE
	clone.UpdatedAt = time.Now()
	f.articles[a.ID] = &clone
	return nil
}

func (f *fakeArticleRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.articles[id]; !ok {
		return article.ErrArticleNotFound
	}
	delete(f.articles, id)
	return nil
}

func submitRequest(blocks ...article.BlockInput) *article.SubmitArticleRequest {
	return &article.SubmitArticleRequest{
		Category:    "energy",
		Subcategory: "oil",
		Blocks:      blocks,
	}
}

func TestSubmitCreate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewArticleService(repo)
	ctx := context.Background()

	resp, err := svc.Submit(ctx, submitRequest(
		article.BlockInput{Type: "title", Content: "Crude Outlook"},
		article.BlockInput{Type: "text", Content: "Supply tightens."},
	), "editor@club.org")
	require.NoError(t, err)

	assert.Equal(t, "Crude Outlook", resp.Title)
	assert.Equal(t, "editor@club.org", resp.AuthorEmail)
	assert.False(t, resp.PublishedAt.IsZero())
	require.Len(t, resp.Blocks, 2)
	assert.Equal(t, 0, resp.Blocks[0].Order)
	assert.Equal(t, 1, resp.Blocks[1].Order)
}

func TestSubmitCreateWithoutTitleBlock(t *testing.T) {
	repo := newFakeRepo()
	svc := NewArticleService(repo)

	resp, err := svc.Submit(context.Background(), submitRequest(
		article.BlockInput{Type: "text", Content: "body only"},
	), "editor@club.org")
	require.NoError(t, err)
	assert.Equal(t, "Untitled", resp.Title)
}

func TestSubmitUpdatePreservesPublishedAtAndAuthor(t *testing.T) {
	repo := newFakeRepo()
	svc := NewArticleService(repo)
	ctx := context.Background()

	created, err := svc.Submit(ctx, submitRequest(
		article.BlockInput{Type: "title", Content: "Original"},
		article.BlockInput{Type: "text", Content: "v1"},
	), "author@club.org")
	require.NoError(t, err)

	req := submitRequest(
		article.BlockInput{Type: "title", Content: "Revised"},
		article.BlockInput{Type: "text", Content: "v2"},
	)
	req.ID = &created.ID

	updated, err := svc.Submit(ctx, req, "someone-else@club.org")
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Revised", updated.Title)
	assert.True(t, updated.PublishedAt.Equal(created.PublishedAt), "published_at must survive edits")
	assert.Equal(t, "author@club.org", updated.AuthorEmail)
}

func TestSubmitUpdateReplacesBlockSet(t *testing.T) {
	repo := newFakeRepo()
	svc := NewArticleService(repo)
	ctx := context.Background()

	created, err := svc.Submit(ctx, submitRequest(
		article.BlockInput{Type: "title", Content: "A"},
		article.BlockInput{Type: "text", Content: "B"},
		article.BlockInput{Type: "text", Content: "C"},
	), "editor@club.org")
	require.NoError(t, err)

	req := submitRequest(article.BlockInput{Type: "text", Content: "only block"})
	req.ID = &created.ID

	updated, err := svc.Submit(ctx, req, "editor@club.org")
	require.NoError(t, err)

	require.Len(t, updated.Blocks, 1)
	assert.Equal(t, "only block", updated.Blocks[0].Content)
	assert.Equal(t, 0, updated.Blocks[0].Order)
}

func TestSubmitRejectsInvalidSubcategory(t *testing.T) {
	repo := newFakeRepo()
	svc := NewArticleService(repo)

	req := submitRequest(article.BlockInput{Type: "text", Content: "body"})
	req.Subcategory = "gold" // thuộc metals, không thuộc energy

	_, err := svc.Submit(context.Background(), req, "editor@club.org")
	require.Error(t, err)
	assert.Empty(t, repo.articles, "validation failure must not write")
}

func TestSubmitRejectsAllEmptyBlocks(t *testing.T) {
	repo := newFakeRepo()
	svc := NewArticleService(repo)

	_, err := svc.Submit(context.Background(), submitRequest(
		article.BlockInput{Type: "text", Content: "   "},
		article.BlockInput{Type: "image"}, // chưa có URL
	), "editor@club.org")
	require.ErrorIs(t, err, article.ErrNoBlocks)
	assert.Empty(t, repo.articles)
}

func TestSubmitRoundTrip(t *testing.T) {
	repo := newFakeRepo()
	svc := NewArticleService(repo)
	ctx := context.Background()

	created, err := svc.Submit(ctx, submitRequest(
		article.BlockInput{Type: "title", Content: "A"},
		article.BlockInput{Type: "text", Content: "B"},
	), "editor@club.org")
	require.NoError(t, err)

	loaded, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)

	require.Len(t, loaded.Blocks, 2)
	assert.Equal(t, "title", loaded.Blocks[0].Type)
	assert.Equal(t, "A", loaded.Blocks[0].Content)
	assert.Equal(t, "text", loaded.Blocks[1].Type)
	assert.Equal(t, "B", loaded.Blocks[1].Content)
	assert.Equal(t, "energy", loaded.Category)
	assert.Equal(t, "oil", loaded.Subcategory)
}

func TestDeleteThenFetchReturnsNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := NewArticleService(repo)
	ctx := context.Background()

	created, err := svc.Submit(ctx, submitRequest(
		article.BlockInput{Type: "text", Content: "body"},
	), "editor@club.org")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, article.ErrArticleNotFound)
}
