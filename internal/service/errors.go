package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrInvalidNotionURL = errors.New("invalid notion url")
	ErrConversionFailed = errors.New("notion page conversion failed")

	ErrUploadFailed = errors.New("github upload failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
