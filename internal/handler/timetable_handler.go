package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/campushub/portal-backend/internal/export"
	"github.com/campushub/portal-backend/internal/middleware"
	"github.com/campushub/portal-backend/internal/response"
	"github.com/campushub/portal-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// TimetableHandler handles timetable endpoints.
type TimetableHandler struct {
	timetableService *service.TimetableService
}

// NewTimetableHandler creates a new TimetableHandler.
func NewTimetableHandler(timetableService *service.TimetableService) *TimetableHandler {
	return &TimetableHandler{timetableService: timetableService}
}

// Get godoc
// GET /api/v1/timetable
// Returns the caller's department timetable with slots in order.
func (h *TimetableHandler) Get(c *gin.Context) {
	claims := middleware.GetClaims(c)
	t, err := h.timetableService.GetByDepartment(c.Request.Context(), claims.Department)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"timetable": t})
}

// Export godoc
// GET /api/v1/timetable/export
// Downloads the department timetable as an XLSX workbook. Teacher only.
func (h *TimetableHandler) Export(c *gin.Context) {
	claims := middleware.GetClaims(c)
	t, err := h.timetableService.GetByDepartment(c.Request.Context(), claims.Department)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	buf, err := export.TimetableXLSX(t)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	filename := fmt.Sprintf("timetable-%s.xlsx", t.Department)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
