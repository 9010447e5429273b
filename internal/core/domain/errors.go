package domain

import "errors"

var (
	ErrProjectNotFound = errors.New("obra not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrNoSelection     = errors.New("no obra selected")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrDuplicateID     = errors.New("duplicate id")
)
