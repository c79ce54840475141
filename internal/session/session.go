package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/notion-to-github/internal/app"
	"github.com/MKhiriev/notion-to-github/internal/pageurl"
	"github.com/MKhiriev/notion-to-github/internal/validators"
	"github.com/MKhiriev/notion-to-github/models"
)

// Status is the user-facing outcome of the last step.
type Status struct {
	Message string
	IsError bool
}

// Session is the state carried between the conversion and upload steps.
type Session struct {
	State State

	NotionAPIKey string
	NotionURL    string

	GitHubUsername string
	GitHubToken    string
	GitHubRepo     string
	Path           string
	Filename       string

	Markdown string

	// FileURL is the html_url of the last successful upload.
	FileURL string

	Status Status

	validator validators.Validator
}

func New() *Session {
	return &Session{validator: validators.NewRequestValidator()}
}

// BeginConvert moves idle, converted or uploaded to converting and returns
// the request to send. On missing input the state is left unchanged.
func (s *Session) BeginConvert(ctx context.Context) (models.ConversionRequest, error) {
	if s.State.Busy() {
		return models.ConversionRequest{}, fmt.Errorf("%w: convert from %s", ErrInvalidTransition, s.State)
	}

	req := models.ConversionRequest{APIKey: s.NotionAPIKey, PageURL: s.NotionURL}
	if err := s.validate(ctx, req); err != nil {
		s.fail(app.MsgConvertInputRequired)
		return models.ConversionRequest{}, fmt.Errorf("%w: %w", ErrMissingConvertData, err)
	}

	s.State = Converting
	s.Status = Status{}
	return req, nil
}

// CompleteConvert stores the Markdown and derives a filename when none has
// been entered yet.
func (s *Session) CompleteConvert(resp models.ConversionResponse) error {
	if s.State != Converting {
		return fmt.Errorf("%w: complete convert from %s", ErrInvalidTransition, s.State)
	}

	s.State = Converted
	s.Markdown = resp.Markdown
	s.FileURL = ""
	if s.Filename == "" {
		s.Filename = pageurl.DefaultFilename(s.NotionURL)
	}
	s.succeed(resp.Message)
	return nil
}

// FailConvert returns to idle and drops any previous Markdown.
func (s *Session) FailConvert(message string) error {
	if s.State != Converting {
		return fmt.Errorf("%w: fail convert from %s", ErrInvalidTransition, s.State)
	}

	s.State = Idle
	s.Markdown = ""
	s.FileURL = ""
	s.fail(message)
	return nil
}

// BeginUpload moves converted or uploaded to uploading and returns the
// request to send. On missing input the state is left unchanged.
func (s *Session) BeginUpload(ctx context.Context) (models.PublishRequest, error) {
	if !s.CanUpload() {
		if !s.State.Busy() {
			s.fail(app.MsgUploadNeedsMarkdown)
			return models.PublishRequest{}, ErrNoMarkdown
		}
		return models.PublishRequest{}, fmt.Errorf("%w: upload from %s", ErrInvalidTransition, s.State)
	}

	req := models.PublishRequest{
		Username: s.GitHubUsername,
		Token:    s.GitHubToken,
		Repo:     s.GitHubRepo,
		Path:     s.Path,
		Filename: s.Filename,
		Content:  s.Markdown,
	}
	err := s.validate(ctx, req,
		validators.FieldGitHubUsername,
		validators.FieldGitHubToken,
		validators.FieldGitHubRepo,
		validators.FieldFilename,
		validators.FieldContent,
	)
	if errors.Is(err, validators.ErrEmptyContent) {
		s.fail(app.MsgUploadNeedsMarkdown)
		return models.PublishRequest{}, ErrNoMarkdown
	}
	if err != nil {
		s.fail(app.MsgUploadInputRequired)
		return models.PublishRequest{}, fmt.Errorf("%w: %w", ErrMissingUploadData, err)
	}

	s.State = Uploading
	s.Status = Status{}
	return req, nil
}

func (s *Session) CompleteUpload(resp models.PublishResponse) error {
	if s.State != Uploading {
		return fmt.Errorf("%w: complete upload from %s", ErrInvalidTransition, s.State)
	}

	s.State = Uploaded
	s.FileURL = resp.URL
	s.succeed(resp.Message)
	return nil
}

// FailUpload returns to converted, keeping the Markdown for another attempt.
func (s *Session) FailUpload(message string) error {
	if s.State != Uploading {
		return fmt.Errorf("%w: fail upload from %s", ErrInvalidTransition, s.State)
	}

	s.State = Converted
	s.fail(message)
	return nil
}

// EditMarkdown replaces the converted Markdown without changing the state.
func (s *Session) EditMarkdown(markdown string) error {
	if s.State != Converted && s.State != Uploaded {
		return fmt.Errorf("%w: edit from %s", ErrInvalidTransition, s.State)
	}

	s.Markdown = markdown
	return nil
}

// CanUpload gates the upload step on converted Markdown being present.
func (s *Session) CanUpload() bool {
	return (s.State == Converted || s.State == Uploaded) && s.Markdown != ""
}

func (s *Session) validate(ctx context.Context, obj any, fields ...string) error {
	if s.validator == nil {
		s.validator = validators.NewRequestValidator()
	}
	return s.validator.Validate(ctx, obj, fields...)
}

func (s *Session) succeed(message string) {
	s.Status = Status{Message: message}
}

func (s *Session) fail(message string) {
	s.Status = Status{Message: message, IsError: true}
}
