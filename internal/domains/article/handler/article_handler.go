package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"club-backend/internal/domains/article"
	"club-backend/internal/infrastructure/storage"
	"club-backend/internal/shared/middleware"
	"club-backend/internal/shared/response"
	"club-backend/internal/taxonomy"
	"club-backend/pkg/logger"
)

// maxUploadSize giới hạn ảnh upload 10MB
const maxUploadSize = 10 << 20

// ============================================================
// HANDLER STRUCT
// ============================================================
type ArticleHandler struct {
	service article.ArticleService
	storage *storage.MinIOStorage
}

func NewArticleHandler(svc article.ArticleService, store *storage.MinIOStorage) *ArticleHandler {
	return &ArticleHandler{
		service: svc,
		storage: store,
	}
}

// ========== LIST: GET /api/v1/articles?category=energy ==========
func (h *ArticleHandler) List(c *gin.Context) {
	category := c.Query("category")
	if category != "" && !taxonomy.IsValidCategory(category) {
		response.BadRequest(c, "unknown category")
		return
	}

	articles, err := h.service.List(c.Request.Context(), category)
	if err != nil {
		response.InternalServerError(c, "failed to load articles")
		return
	}

	response.Success(c, http.StatusOK, articles)
}

// ========== DETAIL: GET /api/v1/articles/:id ==========
func (h *ArticleHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, article.ErrArticleNotFound) {
			response.NotFound(c, "article not found")
			return
		}
		response.InternalServerError(c, "failed to load article")
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== SUBMIT: POST /api/v1/admin/articles ==========
// Một endpoint cho cả create lẫn update: body có id → update
func (h *ArticleHandler) Submit(c *gin.Context) {
	var req article.SubmitArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), &req, middleware.GetEditorEmail(c))
	if err != nil {
		h.submitError(c, err)
		return
	}

	status := http.StatusCreated
	if req.ID != nil {
		status = http.StatusOK
	}
	response.Success(c, status, resp)
}

func (h *ArticleHandler) submitError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
		return
	}

	switch {
	case errors.Is(err, article.ErrArticleNotFound):
		response.NotFound(c, "article not found")
	case errors.Is(err, article.ErrNoBlocks),
		errors.Is(err, article.ErrInvalidCategory),
		errors.Is(err, article.ErrInvalidSubcategory),
		errors.Is(err, article.ErrInvalidBlockType):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("article submit failed", err)
		response.InternalServerError(c, "failed to save article")
	}
}

// ========== DELETE: DELETE /api/v1/admin/articles/:id ==========
// Xóa article + toàn bộ blocks (một transaction phía repository)
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, article.ErrArticleNotFound) {
			response.NotFound(c, "article not found")
			return
		}
		logger.Error("article delete failed", err)
		response.InternalServerError(c, "failed to delete article")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

// ========== UPLOAD: POST /api/v1/admin/uploads ==========
// Nhận multipart file, đẩy lên object storage, trả về public URL
// để client gắn vào image block
func (h *ArticleHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "missing file")
		return
	}
	if fileHeader.Size > maxUploadSize {
		response.BadRequest(c, "file too large (max 10MB)")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "failed to read file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.InternalServerError(c, "failed to read file")
		return
	}

	key := storage.ObjectKey(storage.ArticleImagePrefix, fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.storage.Upload(c.Request.Context(), key, data, contentType)
	if err != nil {
		logger.Error("image upload failed", err)
		response.InternalServerError(c, "failed to upload image")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"key": key,
		"url": url,
	})
}
