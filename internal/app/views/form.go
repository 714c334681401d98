package views

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kartavya/website/internal/app/models"
	"github.com/kartavya/website/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// DefaultRevertAfter is how long the success panel stays before the form returns.
const DefaultRevertAfter = 5 * time.Second

// FormState is the phase of the application form
type FormState string

// Form phases
const (
	FormEditing    FormState = "editing"
	FormSubmitting FormState = "submitting"
	FormSuccess    FormState = "success"
)

// ApplicationSubmitter persists one application.
type ApplicationSubmitter interface {
	Submit(ctx context.Context, app models.Application, clientToken string) error
}

// FormConfig configures an ApplicationForm
type FormConfig struct {
	Submitter   ApplicationSubmitter
	Validate    func(models.Application) map[string]string
	RevertAfter time.Duration
	Logger      zerolog.Logger
}

// FormSnapshot is an immutable copy of the form for rendering.
type FormSnapshot struct {
	State       FormState
	Values      models.Application
	Error       string
	FieldErrors map[string]string
	ClientToken string
}

// ApplicationForm tracks the values and phase of one applicant's form.
type ApplicationForm struct {
	submitter   ApplicationSubmitter
	validate    func(models.Application) map[string]string
	revertAfter time.Duration
	logger      zerolog.Logger

	mu          sync.Mutex
	state       FormState
	values      models.Application
	err         string
	fieldErrors map[string]string
	clientToken string
	revertGen   uint64
	revert      *time.Timer
}

// NewApplicationForm returns an empty form in the editing state.
func NewApplicationForm(cfg FormConfig) *ApplicationForm {
	revertAfter := cfg.RevertAfter
	if revertAfter <= 0 {
		revertAfter = DefaultRevertAfter
	}
	return &ApplicationForm{
		submitter:   cfg.Submitter,
		validate:    cfg.Validate,
		revertAfter: revertAfter,
		logger:      cfg.Logger.With().Str("component", "application_form").Logger(),
		state:       FormEditing,
		clientToken: uuid.NewString(),
	}
}

// Set assigns one field.
func (f *ApplicationForm) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values.Set(field, value)
}

// SetValues replaces every field.
func (f *ApplicationForm) SetValues(app models.Application) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = app
}

// SetClientToken overrides the generated idempotency token, e.g. with the one
// carried by a posted form. Empty tokens are ignored.
func (f *ApplicationForm) SetClientToken(token string) {
	if token == "" {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clientToken = token
}

// Submit validates and inserts the current values exactly once. On success the
// fields are cleared and the form shows the success panel until RevertAfter
// elapses or Dismiss is called. On failure the values are kept and a generic
// error is shown.
func (f *ApplicationForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state == FormSubmitting {
		f.mu.Unlock()
		return apperrors.ErrSubmissionInFlight
	}
	f.err = ""
	f.fieldErrors = nil
	if f.validate != nil {
		if fields := f.validate(f.values); len(fields) > 0 {
			f.state = FormEditing
			f.fieldErrors = fields
			f.mu.Unlock()
			return apperrors.NewValidationError(fields)
		}
	}
	f.state = FormSubmitting
	values, token := f.values, f.clientToken
	f.mu.Unlock()

	err := f.submitter.Submit(ctx, values, token)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.logger.Error().Err(err).Str("ngo_name", values.NGOName).Msg("Error submitting application")
		f.state = FormEditing
		f.err = apperrors.SubmissionFailedMessage
		return fmt.Errorf("%w: %w", apperrors.ErrSubmissionFailed, err)
	}

	f.values = models.Application{}
	f.state = FormSuccess
	f.clientToken = uuid.NewString()
	f.scheduleRevertLocked()
	return nil
}

func (f *ApplicationForm) scheduleRevertLocked() {
	if f.revert != nil {
		f.revert.Stop()
	}
	f.revertGen++
	gen := f.revertGen
	f.revert = time.AfterFunc(f.revertAfter, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if gen == f.revertGen && f.state == FormSuccess {
			f.state = FormEditing
		}
	})
}

// Dismiss leaves the success panel immediately and cancels the pending revert.
func (f *ApplicationForm) Dismiss() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.revert != nil {
		f.revert.Stop()
		f.revert = nil
	}
	f.revertGen++
	if f.state == FormSuccess {
		f.state = FormEditing
	}
}

// RevertAfter is the configured success-panel duration.
func (f *ApplicationForm) RevertAfter() time.Duration {
	return f.revertAfter
}

// Snapshot returns a copy of the current state.
func (f *ApplicationForm) Snapshot() FormSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	var fields map[string]string
	if len(f.fieldErrors) > 0 {
		fields = make(map[string]string, len(f.fieldErrors))
		for k, v := range f.fieldErrors {
			fields[k] = v
		}
	}
	return FormSnapshot{
		State:       f.state,
		Values:      f.values,
		Error:       f.err,
		FieldErrors: fields,
		ClientToken: f.clientToken,
	}
}
