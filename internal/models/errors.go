package models

import "errors"

var (
	ErrValidation = errors.New("missing required fields")
	ErrNotFound   = errors.New("not found")
	ErrExternal   = errors.New("external service error")
	ErrStore      = errors.New("store error")
)
