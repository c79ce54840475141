package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/notion-to-github/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Field names used for field-level scoping. They match the JSON names of the
// request models, which is also how ozzo keys its errors.
const (
	FieldNotionAPIKey   = "notionAPIKey"
	FieldNotionURL      = "notionURL"
	FieldGitHubUsername = "githubUsername"
	FieldGitHubToken    = "githubToken"
	FieldGitHubRepo     = "githubRepo"
	FieldFilename       = "filename"
	FieldContent        = "content"
)

var fieldErrors = map[string]error{
	FieldNotionAPIKey:   ErrEmptyAPIKey,
	FieldNotionURL:      ErrEmptyPageURL,
	FieldGitHubUsername: ErrEmptyUsername,
	FieldGitHubToken:    ErrEmptyToken,
	FieldGitHubRepo:     ErrEmptyRepo,
	FieldFilename:       ErrEmptyFilename,
	FieldContent:        ErrEmptyContent,
}

// RequestValidator validates the conversion and publish requests.
//
// Without field arguments the default set is checked: both fields of a
// conversion request, and token, repository, filename and content of a
// publish request. The GitHub username is only checked when asked for.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ConversionRequest:
		return v.validateConversionRequest(&value, fields...)
	case *models.ConversionRequest:
		return v.validateConversionRequest(value, fields...)

	case models.PublishRequest:
		return v.validatePublishRequest(&value, fields...)
	case *models.PublishRequest:
		return v.validatePublishRequest(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateConversionRequest(req *models.ConversionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotionAPIKey, FieldNotionURL}
	}

	rules := make([]*validation.FieldRules, 0, len(fields))
	for _, f := range fields {
		switch f {
		case FieldNotionAPIKey:
			rules = append(rules, validation.Field(&req.APIKey, validation.Required))
		case FieldNotionURL:
			rules = append(rules, validation.Field(&req.PageURL, validation.Required))
		default:
			return ErrUnknownField
		}
	}

	return firstFieldError(validation.ValidateStruct(req, rules...), fields)
}

func (v *RequestValidator) validatePublishRequest(req *models.PublishRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldGitHubToken, FieldGitHubRepo, FieldFilename, FieldContent}
	}

	rules := make([]*validation.FieldRules, 0, len(fields))
	for _, f := range fields {
		switch f {
		case FieldGitHubUsername:
			rules = append(rules, validation.Field(&req.Username, validation.Required))
		case FieldGitHubToken:
			rules = append(rules, validation.Field(&req.Token, validation.Required))
		case FieldGitHubRepo:
			rules = append(rules, validation.Field(&req.Repo, validation.Required))
		case FieldFilename:
			rules = append(rules, validation.Field(&req.Filename, validation.Required))
		case FieldContent:
			rules = append(rules, validation.Field(&req.Content, validation.Required))
		default:
			return ErrUnknownField
		}
	}

	return firstFieldError(validation.ValidateStruct(req, rules...), fields)
}

// firstFieldError converts ozzo's per-field error map into the sentinel of
// the first failing field, in the order the fields were requested.
func firstFieldError(err error, fields []string) error {
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}

	for _, f := range fields {
		if fieldErr, ok := errs[f]; ok {
			return fmt.Errorf("%w: %w", fieldErrors[f], fieldErr)
		}
	}

	return err
}
