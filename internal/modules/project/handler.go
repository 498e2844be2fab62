package project

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
	projectGroup := protected.Group("/projects")
	{
		projectGroup.POST("", h.Create)
		projectGroup.GET("", h.ListMine)
		projectGroup.GET("/:projectId", h.GetByID)
		projectGroup.PUT("/:projectId", h.Update)
		projectGroup.PATCH("/:projectId/archive", h.Archive)
		projectGroup.POST("/:projectId/users", h.AddMember)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), middleware.PrincipalUID(c), req)
	if err != nil {
		h.writeError(c, err, "Failed to create project")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"project": p})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), middleware.PrincipalUID(c), id)
	if err != nil {
		h.writeError(c, err, "Failed to load project")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"project": p})
}

func (h *Handler) ListMine(c *gin.Context) {
	projects, err := h.service.ListMine(c.Request.Context(), middleware.PrincipalUID(c))
	if err != nil {
		h.writeError(c, err, "Failed to list projects")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"projects": projects})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), middleware.PrincipalUID(c), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update project")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"project": p})
}

func (h *Handler) Archive(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	p, err := h.service.Archive(c.Request.Context(), middleware.PrincipalUID(c), id)
	if err != nil {
		h.writeError(c, err, "Failed to archive project")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"project": p})
}

func (h *Handler) AddMember(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.AddMember(c.Request.Context(), middleware.PrincipalUID(c), id, req); err != nil {
		h.writeError(c, err, "Failed to add member")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "member added"})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", err.Error())
	case errors.Is(err, ErrBlankTitle), errors.Is(err, ErrArchived), errors.Is(err, ErrAlreadyArchived):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
	default:
		log.Printf("project handler: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func projectID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("projectId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid project ID")
		return 0, false
	}
	return id, true
}
