package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"club-backend/internal/domains/event"
	"club-backend/internal/shared/middleware"
	"club-backend/internal/shared/response"
	"club-backend/pkg/logger"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type EventHandler struct {
	service event.EventService
}

func NewEventHandler(svc event.EventService) *EventHandler {
	return &EventHandler{
		service: svc,
	}
}

// ========== LIST: GET /api/v1/events ==========
// Public view: upcoming/past đã partition sẵn
func (h *EventHandler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to load events")
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== MANAGE LIST: GET /api/v1/admin/events ==========
func (h *EventHandler) ManageList(c *gin.Context) {
	events, err := h.service.ManageList(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to load events")
		return
	}

	response.Success(c, http.StatusOK, events)
}

// ========== SUBMIT: POST /api/v1/admin/events ==========
func (h *EventHandler) Submit(c *gin.Context) {
	var req event.SubmitEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), &req, middleware.GetEditorEmail(c))
	if err != nil {
		var vErrs validation.Errors
		switch {
		case errors.As(err, &vErrs):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
		case errors.Is(err, event.ErrEventNotFound):
			response.NotFound(c, "event not found")
		case errors.Is(err, event.ErrInvalidDate), errors.Is(err, event.ErrInvalidRSVPURL):
			response.BadRequest(c, err.Error())
		default:
			logger.Error("event submit failed", err)
			response.InternalServerError(c, "failed to save event")
		}
		return
	}

	status := http.StatusCreated
	if req.ID != nil {
		status = http.StatusOK
	}
	response.Success(c, status, resp)
}

// ========== DELETE: DELETE /api/v1/admin/events/:id ==========
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			response.NotFound(c, "event not found")
			return
		}
		logger.Error("event delete failed", err)
		response.InternalServerError(c, "failed to delete event")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
