package lifecycle

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by every engine operation. Callers match with
// errors.Is; the HTTP layer maps them to status codes.
var (
	// ErrReportNotFound is returned when the referenced report ID does not exist.
	ErrReportNotFound = errors.New("report not found")

	// ErrInvalidTransition is returned when the requested transition is not
	// legal from the report's current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrForbidden is returned when the caller's role or identity does not
	// satisfy the transition's actor guard.
	ErrForbidden = errors.New("caller not permitted")

	// ErrPreconditionFailed is returned when a required field is missing.
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrAlreadyProcessed is returned when a reward is requested for a report
	// that has already been paid out.
	ErrAlreadyProcessed = errors.New("reward already processed")

	// ErrValidation is returned for malformed input.
	ErrValidation = errors.New("validation error")
)

// ManagementSummaryRequiredError rejects completing an investigation whose
// management summary is still empty. Completion is never a silent no-op.
type ManagementSummaryRequiredError struct {
	ReportID string
}

func (e *ManagementSummaryRequiredError) Error() string {
	return fmt.Sprintf("management summary is required to complete investigation for report %s", e.ReportID)
}

func (e *ManagementSummaryRequiredError) Unwrap() error {
	return ErrPreconditionFailed
}

// InvalidTransitionError carries the state the report was actually in when
// an illegal transition was attempted.
type InvalidTransitionError struct {
	ReportID  string
	From      string
	Attempted string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("report %s: cannot %s from status %q", e.ReportID, e.Attempted, e.From)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// IneligibleInvestigatorError bars the previous investigator of a reopened
// case from picking it up again.
type IneligibleInvestigatorError struct {
	ReportID       string
	InvestigatorID string
}

func (e *IneligibleInvestigatorError) Error() string {
	return fmt.Sprintf("investigator %s is not eligible to investigate reopened report %s", e.InvestigatorID, e.ReportID)
}

func (e *IneligibleInvestigatorError) Unwrap() error {
	return ErrForbidden
}
