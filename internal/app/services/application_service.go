package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kartavya/website/internal/app/models"
	"github.com/kartavya/website/internal/pkg/apperrors"
	"github.com/kartavya/website/internal/pkg/email"
	"github.com/kartavya/website/internal/pkg/metrics"
	"github.com/kartavya/website/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// ApplicationWriter is the write side of the application repository
type ApplicationWriter interface {
	Create(ctx context.Context, app models.Application, clientToken string) (bool, error)
}

// SubmissionResult describes an accepted submission
type SubmissionResult struct {
	// Duplicate is set when the client token had already been used; nothing new was stored.
	Duplicate bool
}

// ApplicationService defines the interface for application submissions
type ApplicationService interface {
	Validate(app models.Application) map[string]string
	Submit(ctx context.Context, app models.Application, clientToken string) error
	SubmitApplication(ctx context.Context, app models.Application, clientToken string) (SubmissionResult, error)
}

// applicationServiceImpl implements ApplicationService
type applicationServiceImpl struct {
	writer   ApplicationWriter
	notifier email.Notifier
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(writer ApplicationWriter, notifier email.Notifier, m *metrics.Metrics, logger zerolog.Logger) ApplicationService {
	return &applicationServiceImpl{
		writer:   writer,
		notifier: notifier,
		metrics:  m,
		logger:   logger.With().Str("component", "application_service").Logger(),
	}
}

// Validate checks the field rules and returns per-field messages.
func (s *applicationServiceImpl) Validate(app models.Application) map[string]string {
	return validation.Struct(app)
}

// Submit stores app, satisfying views.ApplicationSubmitter.
func (s *applicationServiceImpl) Submit(ctx context.Context, app models.Application, clientToken string) error {
	_, err := s.SubmitApplication(ctx, app, clientToken)
	return err
}

// SubmitApplication validates and stores one application, then notifies staff.
// Insert failures come back wrapping apperrors.ErrSubmissionFailed.
func (s *applicationServiceImpl) SubmitApplication(ctx context.Context, app models.Application, clientToken string) (SubmissionResult, error) {
	if fields := s.Validate(app); len(fields) > 0 {
		s.metrics.ApplicationSubmitted(metrics.OutcomeInvalid)
		return SubmissionResult{}, apperrors.NewValidationError(fields)
	}
	if clientToken != "" {
		if _, err := uuid.Parse(clientToken); err != nil {
			s.metrics.ApplicationSubmitted(metrics.OutcomeInvalid)
			return SubmissionResult{}, apperrors.NewBadRequestError("client token must be a UUID")
		}
	}

	inserted, err := s.writer.Create(ctx, app, clientToken)
	if err != nil {
		s.metrics.ApplicationSubmitted(metrics.OutcomeFailed)
		return SubmissionResult{}, fmt.Errorf("%w: %w", apperrors.ErrSubmissionFailed, err)
	}

	if !inserted {
		s.logger.Info().Str("client_token", clientToken).Msg("Duplicate application submission absorbed")
		s.metrics.ApplicationSubmitted(metrics.OutcomeDuplicate)
		return SubmissionResult{Duplicate: true}, nil
	}

	s.metrics.ApplicationSubmitted(metrics.OutcomeAccepted)
	s.logger.Info().Str("ngo_name", app.NGOName).Msg("Application submitted")

	if s.notifier != nil {
		if err := s.notifier.NotifyApplication(app); err != nil {
			s.logger.Error().Err(err).Str("ngo_name", app.NGOName).Msg("Failed to notify staff about application")
		}
	}
	return SubmissionResult{}, nil
}
