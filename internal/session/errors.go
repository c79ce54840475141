package session

import "errors"

var (
	ErrInvalidTransition  = errors.New("invalid session transition")
	ErrMissingConvertData = errors.New("notion api key and url are required")
	ErrMissingUploadData  = errors.New("github fields are required")
	ErrNoMarkdown         = errors.New("no converted markdown")
)
