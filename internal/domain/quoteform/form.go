// Package quoteform models the quote request form as an explicit state machine.
//
// A Form is a value. Every transition returns the next Form; nothing is
// mutated in place, so the estimate shown for a form is always a pure function
// of its selection.
//
//	editing --BeginSubmit--> submitting --Succeeded--> editing (defaults)
//	   ^                         |
//	   |                         +--Failed--> failed (values kept)
//	   +----------BeginSubmit----------------------+
package quoteform

import (
	"errors"
	"strings"

	"dubiqo_quotes/internal/domain/entities"
	"dubiqo_quotes/internal/domain/pricing"

	"github.com/go-playground/validator/v10"
)

var (
	ErrSubmitInFlight = errors.New("quote submission already in flight")
	ErrInvalidForm    = errors.New("quote form has invalid fields")
)

type Status string

const (
	StatusEditing    Status = "editing"
	StatusSubmitting Status = "submitting"
	StatusFailed     Status = "failed"
)

// Field names used as keys in FieldErrors.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldProjectType = "projectType"
	FieldPageCount   = "pageCount"
	FieldUrgency     = "urgency"
)

const DefaultFailureMessage = "We couldn't send your quote request. Please try again."

var validate = validator.New()

type Form struct {
	Selection      entities.QuoteSelection `json:"selection"`
	Contact        entities.ContactDetails `json:"contact"`
	Status         Status                  `json:"status"`
	FieldErrors    map[string]string       `json:"field_errors,omitempty"`
	FailureMessage string                  `json:"failure_message,omitempty"`
}

// New returns an empty form with the default selection.
func New() Form {
	return Form{
		Selection: entities.DefaultSelection(),
		Status:    StatusEditing,
	}
}

// FromInput builds an editing form from values received in one piece, e.g. an
// HTTP request body.
func FromInput(sel entities.QuoteSelection, contact entities.ContactDetails) Form {
	f := New()
	f.Selection = sel.Normalized()
	f.Contact = contact
	return f
}

func (f Form) Busy() bool {
	return f.Status == StatusSubmitting
}

func (f Form) WithProjectType(p entities.ProjectType) Form {
	out := f.clone()
	out.Selection = f.Selection.WithProjectType(p)
	delete(out.FieldErrors, FieldProjectType)
	return out
}

func (f Form) WithPageCount(n int) (Form, error) {
	sel, err := f.Selection.WithPageCount(n)
	if err != nil {
		return f, err
	}
	out := f.clone()
	out.Selection = sel
	delete(out.FieldErrors, FieldPageCount)
	return out, nil
}

func (f Form) WithUrgency(u entities.Urgency) (Form, error) {
	sel, err := f.Selection.WithUrgency(u)
	if err != nil {
		return f, err
	}
	out := f.clone()
	out.Selection = sel
	delete(out.FieldErrors, FieldUrgency)
	return out, nil
}

func (f Form) ToggleFeature(id entities.FeatureID) Form {
	out := f.clone()
	out.Selection = f.Selection.ToggleFeature(id)
	return out
}

func (f Form) WithContact(c entities.ContactDetails) Form {
	out := f.clone()
	out.Contact = c
	delete(out.FieldErrors, FieldName)
	delete(out.FieldErrors, FieldEmail)
	return out
}

// Estimate is recomputed from the selection on every call.
func (f Form) Estimate() (*entities.PriceEstimate, error) {
	return pricing.Estimate(f.Selection)
}

func (f Form) DeliveryTime() string {
	return pricing.DeliveryTime(f.Selection.ProjectType, f.Selection.Urgency)
}

// Validate returns field-level messages for everything blocking a submit.
// An empty map means the form can be submitted.
func (f Form) Validate() map[string]string {
	errs := map[string]string{}
	c := f.Contact.Trimmed()

	if c.Name == "" {
		errs[FieldName] = "Name is required"
	}
	switch {
	case c.Email == "":
		errs[FieldEmail] = "Email is required"
	case validate.Var(c.Email, "email") != nil:
		errs[FieldEmail] = "Email is not valid"
	}
	if !f.Selection.ProjectType.IsSet() {
		errs[FieldProjectType] = "Please select a project type"
	}

	if !entities.IsValidPageCount(f.Selection.PageCount) {
		errs[FieldPageCount] = "Please select a valid number of pages"
	}
	if u := f.Selection.Urgency; u != "" && !u.Valid() {
		errs[FieldUrgency] = "Please select a valid timeline"
	}
	return errs
}

// BeginSubmit validates the form and, when valid, moves it to submitting and
// returns the submission to hand off. An invalid form comes back with field
// errors and ErrInvalidForm; no submission is produced.
func (f Form) BeginSubmit() (Form, *entities.QuoteSubmission, error) {
	if f.Busy() {
		return f, nil, ErrSubmitInFlight
	}

	if errs := f.Validate(); len(errs) > 0 {
		out := f.clone()
		out.FieldErrors = errs
		return out, nil, ErrInvalidForm
	}

	est, err := f.Estimate()
	if err != nil || est == nil {
		// Validate already covers both cases.
		return f, nil, ErrInvalidForm
	}

	sub := entities.NewQuoteSubmission(f.Contact, f.Selection, pricing.FormatRange(*est))

	out := f.clone()
	out.Status = StatusSubmitting
	out.FieldErrors = nil
	out.FailureMessage = ""
	return out, &sub, nil
}

// Succeeded resets the form to its defaults.
func (f Form) Succeeded() Form {
	return New()
}

// Failed keeps every entered value and records a retryable failure message.
func (f Form) Failed(message string) Form {
	out := f.clone()
	out.Status = StatusFailed
	if strings.TrimSpace(message) == "" {
		message = DefaultFailureMessage
	}
	out.FailureMessage = message
	return out
}

func (f Form) clone() Form {
	out := f
	out.Selection = f.Selection.Clone()
	if f.FieldErrors != nil {
		out.FieldErrors = make(map[string]string, len(f.FieldErrors))
		for k, v := range f.FieldErrors {
			out.FieldErrors[k] = v
		}
	}
	return out
}
