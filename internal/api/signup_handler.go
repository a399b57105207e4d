package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/signup-api/internal/api/shared"
	"github.com/phrazzld/signup-api/internal/domain"
	"github.com/phrazzld/signup-api/internal/metrics"
	"github.com/phrazzld/signup-api/internal/platform/logger"
	"github.com/phrazzld/signup-api/internal/redact"
)

// EmailValidator reports whether a string is a syntactically valid email.
// A non-nil error means the check could not be performed.
type EmailValidator interface {
	IsValid(email string) (bool, error)
}

// SignUpHandler handles the signup endpoint.
type SignUpHandler struct {
	emailValidator EmailValidator
	fields         *validator.Validate
	metrics        metrics.Recorder
	logger         *slog.Logger
}

// NewSignUpHandler creates a new SignUpHandler with the given dependencies.
// A nil recorder disables metrics and a nil logger falls back to slog.Default.
func NewSignUpHandler(
	emailValidator EmailValidator,
	recorder metrics.Recorder,
	logger *slog.Logger,
) (*SignUpHandler, error) {
	if emailValidator == nil {
		return nil, errors.New("email validator cannot be nil")
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SignUpHandler{
		emailValidator: emailValidator,
		fields:         newFieldValidator(),
		metrics:        recorder,
		logger:         logger.With(slog.String("component", "signup_handler")),
	}, nil
}

// newFieldValidator reports field errors under their JSON names.
func newFieldValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// SignUp handles the /signup endpoint.
func (h *SignUpHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest

	if err := shared.DecodeJSON(w, r, &req); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).
			Debug("failed to decode signup request", slog.String("error", err.Error()))
		h.metrics.RecordOutcome(metrics.OutcomeInvalidParam)
		shared.WriteHTTPResponse(w, r, shared.BadRequest(domain.NewInvalidParamError("body")))
		return
	}

	shared.WriteHTTPResponse(w, r, h.Handle(r.Context(), req))
}

// Handle runs the signup pipeline for one request: field presence, then
// email validity, then the success payload. It never panics and every
// outcome is one of the 400, 201 or 500 envelopes.
func (h *SignUpHandler) Handle(ctx context.Context, req SignUpRequest) shared.HTTPResponse {
	log := logger.FromContextOrDefault(ctx, h.logger)

	if param, missing := h.missingParam(req); missing {
		log.Debug("signup rejected", slog.String("reason", "missing_param"), slog.String("param", param))
		h.metrics.RecordOutcome(metrics.OutcomeMissingParam)
		return shared.BadRequest(domain.NewMissingParamError(param))
	}

	start := time.Now()
	valid, err := h.checkEmail(req.Email)
	h.metrics.ObserveEmailCheck(time.Since(start))

	if err != nil {
		log.Error("email validation failed",
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
		h.metrics.RecordOutcome(metrics.OutcomeServerError)
		return shared.ServerError()
	}

	if !valid {
		log.Debug("signup rejected", slog.String("reason", "invalid_param"), slog.String("param", "email"))
		h.metrics.RecordOutcome(metrics.OutcomeInvalidParam)
		return shared.BadRequest(domain.NewInvalidParamError("email"))
	}

	log.Info("signup accepted")
	h.metrics.RecordOutcome(metrics.OutcomeCreated)
	return shared.Created(SignUpResponse{Message: SignUpSuccessMessage})
}

// missingParam returns the JSON name of the first required field that is empty.
func (h *SignUpHandler) missingParam(req SignUpRequest) (string, bool) {
	err := h.fields.Struct(req)
	if err == nil {
		return "", false
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), true
	}

	// Struct only fails this way on a programming error; report the first field
	h.logger.Error("unexpected field validation error", slog.String("error", err.Error()))
	return "name", true
}

// checkEmail calls the email validator and turns a panic into an error.
func (h *SignUpHandler) checkEmail(email string) (valid bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			valid = false
			err = fmt.Errorf("email validator panicked: %v", rec)
		}
	}()

	valid, err = h.emailValidator.IsValid(email)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return valid, nil
}
