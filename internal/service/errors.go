package service

import "errors"

// Service level failures; handlers map them to HTTP status codes
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)
