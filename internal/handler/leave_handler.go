package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/campushub/portal-backend/internal/middleware"
	"github.com/campushub/portal-backend/internal/model"
	"github.com/campushub/portal-backend/internal/response"
	"github.com/campushub/portal-backend/internal/service"
	"github.com/campushub/portal-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// LeaveHandler handles the leave application workflow endpoints.
type LeaveHandler struct {
	leaveService *service.LeaveService
}

// NewLeaveHandler creates a new LeaveHandler.
func NewLeaveHandler(leaveService *service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveService: leaveService}
}

// ListOwn godoc
// GET /api/v1/leaves
// Returns the authenticated student's own applications, newest first.
func (h *LeaveHandler) ListOwn(c *gin.Context) {
	claims := middleware.GetClaims(c)
	leaves, err := h.leaveService.ListByStudent(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"leaves": leaves})
}

// Submit godoc
// POST /api/v1/leaves
// Files a new pending application. 201 on success; the client re-fetches
// the list afterwards to show the new entry.
func (h *LeaveHandler) Submit(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.SubmitLeaveRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	leave, err := h.leaveService.Submit(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		if errors.Is(err, service.ErrLeaveDatesInvalid) {
			response.Fail(c, http.StatusBadRequest, response.ErrLeaveDatesInvalid)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"leave": leave})
}

// ListPending godoc
// GET /api/v1/leaves/pending
// Returns the pending queue for the teacher's department, oldest first.
func (h *LeaveHandler) ListPending(c *gin.Context) {
	claims := middleware.GetClaims(c)
	leaves, err := h.leaveService.ListPending(c.Request.Context(), claims.Department)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"leaves": leaves})
}

// Decide godoc
// POST /api/v1/leaves/:id/decision
// Approves or rejects a pending application. Decided applications are
// immutable; deciding one again returns a conflict.
func (h *LeaveHandler) Decide(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.DecideLeaveRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	leave, err := h.leaveService.Decide(c.Request.Context(), id, req.Status, claims.UserID, claims.Department)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLeaveAlreadyDecided):
			response.Fail(c, http.StatusConflict, response.ErrLeaveAlreadyDecided)
		case errors.Is(err, service.ErrLeaveWrongDepartment):
			response.Fail(c, http.StatusForbidden, response.ErrForbidden)
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"leave": leave})
}
