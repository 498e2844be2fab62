package project

import "errors"

var (
	ErrNotFound        = errors.New("project not found")
	ErrForbidden       = errors.New("access denied")
	ErrBlankTitle      = errors.New("project title cannot be blank")
	ErrArchived        = errors.New("cannot update archived project")
	ErrAlreadyArchived = errors.New("project is already archived")
	ErrUserNotFound    = errors.New("user not found")
)
