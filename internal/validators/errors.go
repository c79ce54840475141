package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyAPIKey   = errors.New("notion api key is required")
	ErrEmptyPageURL  = errors.New("notion page url is required")
	ErrEmptyUsername = errors.New("github username is required")
	ErrEmptyToken    = errors.New("github token is required")
	ErrEmptyRepo     = errors.New("github repository is required")
	ErrEmptyFilename = errors.New("filename is required")
	ErrEmptyContent  = errors.New("content is required")
)
