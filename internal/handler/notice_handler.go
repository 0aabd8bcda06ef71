package handler

import (
	"net/http"

	"github.com/campushub/portal-backend/internal/middleware"
	"github.com/campushub/portal-backend/internal/model"
	"github.com/campushub/portal-backend/internal/response"
	"github.com/campushub/portal-backend/internal/service"
	"github.com/campushub/portal-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// NoticeHandler handles notice board endpoints.
type NoticeHandler struct {
	noticeService *service.NoticeService
}

// NewNoticeHandler creates a new NoticeHandler.
func NewNoticeHandler(noticeService *service.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeService: noticeService}
}

// List godoc
// GET /api/v1/notices
// Returns the caller's department notice board, newest first.
func (h *NoticeHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)
	notices, err := h.noticeService.List(c.Request.Context(), claims.Department)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"notices": notices})
}

// Create godoc
// POST /api/v1/notices
// Posts a notice to the caller's department board. Teacher only.
func (h *NoticeHandler) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.CreateNoticeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	notice := &model.Notice{
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		Priority:   req.Priority,
		AuthorID:   claims.UserID,
		Department: claims.Department,
		ExpiresAt:  req.ExpiresAt,
	}

	if err := h.noticeService.Create(c.Request.Context(), notice); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"notice": notice})
}
