package task

import (
	"time"

	"taskhive/internal/domain"
)

type CreateRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Status      domain.TaskStatus `json:"status"`
	DueDate     *time.Time        `json:"due_date"`
}

type UpdateRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      domain.TaskStatus `json:"status"`
	DueDate     *time.Time        `json:"due_date"`
}

type StatusUpdateRequest struct {
	Status domain.TaskStatus `json:"status" binding:"required"`
}

// Page mirrors the paginated listing shape: zero-based page index.
type Page struct {
	Items      []domain.Task `json:"items"`
	Page       int           `json:"page"`
	Size       int           `json:"size"`
	TotalItems int64         `json:"total_items"`
}
