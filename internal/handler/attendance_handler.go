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

// AttendanceHandler handles attendance endpoints.
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// ListOwn godoc
// GET /api/v1/attendance
// Returns the authenticated student's own attendance records.
func (h *AttendanceHandler) ListOwn(c *gin.Context) {
	claims := middleware.GetClaims(c)
	records, err := h.attendanceService.ListByStudent(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"attendance": records})
}

// Mark godoc
// POST /api/v1/attendance
// Records a student's status for one subject-day. Teacher only.
// Re-marking the same (student, subject, date) overwrites the status.
func (h *AttendanceHandler) Mark(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.MarkAttendanceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	record, err := h.attendanceService.Mark(c.Request.Context(), &req, claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"record": record})
}
