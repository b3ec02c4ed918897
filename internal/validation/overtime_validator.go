package validation

import (
	"fmt"
	"strings"
	"time"
)

// WindowInput is a raw in/out pair as submitted, before the builder turns it
// into a domain time window. Out may be nil for an open-ended window.
type WindowInput struct {
	In  time.Time
	Out *time.Time
}

// OvertimeValidator validates raw overtime submissions before an entry is
// built. It checks structure only; out-of-order in/out times are tolerated
// and clamp to zero minutes downstream.
type OvertimeValidator struct{}

// NewOvertimeValidator creates a new overtime validator
func NewOvertimeValidator() *OvertimeValidator {
	return &OvertimeValidator{}
}

// ValidateSubmission validates the builder's input contract: a usable date
// and at least one window, each with a present in-time.
func (ov *OvertimeValidator) ValidateSubmission(date time.Time, windows []WindowInput) error {
	validationError := NewValidationError()

	if date.IsZero() {
		validationError.AddRequiredError("date")
	}

	if len(windows) == 0 {
		validationError.AddRequiredError("time_windows")
	}

	for i, w := range windows {
		if w.In.IsZero() {
			validationError.AddRequiredError(fmt.Sprintf("time_windows[%d].in", i))
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateMechanicName checks the onboarding name field.
func (ov *OvertimeValidator) ValidateMechanicName(name string) error {
	if strings.TrimSpace(name) == "" {
		validationError := NewValidationError()
		validationError.AddRequiredError("name")
		return validationError
	}
	return nil
}

// ValidateMechanicID checks that an identifier was supplied.
func (ov *OvertimeValidator) ValidateMechanicID(id string) error {
	if strings.TrimSpace(id) == "" {
		validationError := NewValidationError()
		validationError.AddRequiredError("mechanic_id")
		return validationError
	}
	return nil
}

// ValidateMonthYear checks an optional month/year query pair: both absent or
// both present and in range.
func (ov *OvertimeValidator) ValidateMonthYear(month, year int) error {
	validationError := NewValidationError()

	if (month == 0) != (year == 0) {
		validationError.AddInvalidValueError("month_year", fmt.Sprintf("%d/%d", month, year),
			"month and year must be given together")
	}
	if month != 0 && (month < 1 || month > 12) {
		validationError.AddInvalidValueError("month", month, "must be between 1 and 12")
	}
	if year != 0 && (year < 2000 || year > 2100) {
		validationError.AddInvalidValueError("year", year, "must be between 2000 and 2100")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
