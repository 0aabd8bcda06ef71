package handler

import (
	"net/http"

	"github.com/campushub/portal-backend/internal/middleware"
	"github.com/campushub/portal-backend/internal/model"
	"github.com/campushub/portal-backend/internal/response"
	"github.com/campushub/portal-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles the role-shaped dashboard endpoint.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get godoc
// GET /api/v1/dashboard
// Returns the four dashboard panels for the caller's role. Panels are
// fetched concurrently and fail independently: a panel whose source
// errored comes back empty and listed under "unavailable".
func (h *DashboardHandler) Get(c *gin.Context) {
	claims := middleware.GetClaims(c)

	switch claims.Role {
	case model.RoleTeacher:
		data := h.dashboardService.ForTeacher(c.Request.Context(), claims.Department)
		response.Success(c, http.StatusOK, data)
	default:
		data := h.dashboardService.ForStudent(c.Request.Context(), claims.UserID, claims.Department)
		response.Success(c, http.StatusOK, data)
	}
}
