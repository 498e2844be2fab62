package task

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"taskhive/internal/middleware"
	"taskhive/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	taskGroup := protected.Group("/projects/:projectId/tasks")
	{
		taskGroup.POST("", h.Create)
		taskGroup.GET("", h.List)
		taskGroup.GET("/paginated", h.ListPaginated)
		taskGroup.GET("/:taskId", h.GetByID)
		taskGroup.PUT("/:taskId", h.Update)
		taskGroup.PATCH("/:taskId/status", h.UpdateStatus)
		taskGroup.DELETE("/:taskId", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	projectID, ok := pathID(c, "projectId", "Invalid project ID")
	if !ok {
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.Create(c.Request.Context(), middleware.PrincipalUID(c), projectID, req)
	if err != nil {
		h.writeError(c, err, "Failed to create task")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"task": t})
}

func (h *Handler) GetByID(c *gin.Context) {
	projectID, taskID, ok := taskPath(c)
	if !ok {
		return
	}

	t, err := h.service.GetByID(c.Request.Context(), middleware.PrincipalUID(c), projectID, taskID)
	if err != nil {
		h.writeError(c, err, "Failed to load task")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"task": t})
}

func (h *Handler) List(c *gin.Context) {
	projectID, ok := pathID(c, "projectId", "Invalid project ID")
	if !ok {
		return
	}

	tasks, err := h.service.List(c.Request.Context(), middleware.PrincipalUID(c), projectID)
	if err != nil {
		h.writeError(c, err, "Failed to list tasks")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tasks": tasks})
}

func (h *Handler) ListPaginated(c *gin.Context) {
	projectID, ok := pathID(c, "projectId", "Invalid project ID")
	if !ok {
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid page number")
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "20"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid page size")
		return
	}

	result, err := h.service.ListPaginated(c.Request.Context(), middleware.PrincipalUID(c), projectID, page, size)
	if err != nil {
		h.writeError(c, err, "Failed to list tasks")
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) Update(c *gin.Context) {
	projectID, taskID, ok := taskPath(c)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.Update(c.Request.Context(), middleware.PrincipalUID(c), projectID, taskID, req)
	if err != nil {
		h.writeError(c, err, "Failed to update task")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"task": t})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	projectID, taskID, ok := taskPath(c)
	if !ok {
		return
	}

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.UpdateStatus(c.Request.Context(), middleware.PrincipalUID(c), projectID, taskID, req.Status)
	if err != nil {
		h.writeError(c, err, "Failed to update task status")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"task": t})
}

func (h *Handler) Delete(c *gin.Context) {
	projectID, taskID, ok := taskPath(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.PrincipalUID(c), projectID, taskID); err != nil {
		h.writeError(c, err, "Failed to delete task")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "task deleted"})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrProjectNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, ErrBlankTitle), errors.Is(err, ErrProjectArchived), errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
	default:
		log.Printf("task handler: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func taskPath(c *gin.Context) (projectID, taskID int64, ok bool) {
	projectID, ok = pathID(c, "projectId", "Invalid project ID")
	if !ok {
		return 0, 0, false
	}
	taskID, ok = pathID(c, "taskId", "Invalid task ID")
	if !ok {
		return 0, 0, false
	}
	return projectID, taskID, true
}

func pathID(c *gin.Context, param, message string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", message)
		return 0, false
	}
	return id, true
}
