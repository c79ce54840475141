package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/notion-to-github/internal/validators"
	"github.com/MKhiriev/notion-to-github/models"
)

type ConversionValidationService struct {
	inner     ConversionService
	validator validators.Validator
}

func NewConversionValidationService() ConversionServiceWrapper {
	return &ConversionValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ConversionValidationService) Convert(ctx context.Context, req models.ConversionRequest) (models.ConversionResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ConversionResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Convert(ctx, req)
}

func (v *ConversionValidationService) Wrap(inner ConversionService) ConversionService {
	v.inner = inner
	return v
}

type PublishValidationService struct {
	inner     PublishService
	validator validators.Validator
}

func NewPublishValidationService() PublishServiceWrapper {
	return &PublishValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *PublishValidationService) Publish(ctx context.Context, req models.PublishRequest) (models.PublishResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.PublishResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Publish(ctx, req)
}

func (v *PublishValidationService) Wrap(inner PublishService) PublishService {
	v.inner = inner
	return v
}
