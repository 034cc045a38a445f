package threatindex

import (
	"errors"
	"fmt"
)

// Sentinel errors for common assessment failures.
// These can be checked with errors.Is().
var (
	// ErrInvalidInference indicates an inference failed ingestion
	// validation: confidence outside [0,1], an unknown reasoning mode,
	// or an unknown category tag. The whole assessment fails; there is
	// no partial scoring.
	ErrInvalidInference = errors.New("invalid inference data")

	// ErrHistoryUnavailable indicates the per-vault timeline could not
	// be read or appended. The assessment fails rather than silently
	// treating an outage as "no baseline".
	ErrHistoryUnavailable = errors.New("history unavailable")

	// ErrConcurrencyViolation indicates the single-writer-per-vault
	// invariant was violated mid-assessment. Never tolerated silently:
	// a violation would corrupt delta and velocity trend data.
	ErrConcurrencyViolation = errors.New("per-vault serialization violated")

	// ErrInvalidVaultID indicates an empty vault identifier.
	ErrInvalidVaultID = errors.New("vault id is required")
)

// Standard error codes carried by AssessmentError.
const (
	CodeInvalidInference     = "INVALID_INFERENCE"
	CodeHistoryUnavailable   = "HISTORY_UNAVAILABLE"
	CodeConcurrencyViolation = "CONCURRENCY_VIOLATION"
)

// AssessmentError is a structured failure for one assessment run. It carries
// the vault, the offending inference where applicable, a standard code, and
// the underlying cause, so callers can retry or report without parsing
// message text. Retry policy belongs to the caller; the engine never
// retries internally.
type AssessmentError struct {
	// VaultID identifies the vault whose assessment failed.
	VaultID string

	// InferenceID identifies the offending inference, when applicable.
	InferenceID string

	// Code is one of the standard error code constants.
	Code string

	// Message is a human-readable description.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *AssessmentError) Error() string {
	msg := fmt.Sprintf("assessment failed for vault %s [%s]: %s", e.VaultID, e.Code, e.Message)
	if e.InferenceID != "" {
		msg += fmt.Sprintf(" (inference %s)", e.InferenceID)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/errors.As chains.
func (e *AssessmentError) Unwrap() error {
	return e.Cause
}

// Is maps the error code onto the package sentinels, so
// errors.Is(err, ErrInvalidInference) works regardless of the cause chain.
func (e *AssessmentError) Is(target error) bool {
	switch target {
	case ErrInvalidInference:
		return e.Code == CodeInvalidInference
	case ErrHistoryUnavailable:
		return e.Code == CodeHistoryUnavailable
	case ErrConcurrencyViolation:
		return e.Code == CodeConcurrencyViolation
	default:
		return false
	}
}

func newAssessmentError(vaultID, inferenceID, code, message string, cause error) *AssessmentError {
	return &AssessmentError{
		VaultID:     vaultID,
		InferenceID: inferenceID,
		Code:        code,
		Message:     message,
		Cause:       cause,
	}
}
