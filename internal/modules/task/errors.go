package task

import "errors"

var (
	ErrNotFound        = errors.New("task not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrForbidden       = errors.New("access denied")
	ErrBlankTitle      = errors.New("task title cannot be blank")
	ErrProjectArchived = errors.New("project is archived")
	ErrInvalidStatus   = errors.New("invalid task status")
)
