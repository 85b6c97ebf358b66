package entities

import (
	"slices"
	"strings"
	"time"
)

// PriceEstimate is the price range derived from a QuoteSelection.
//
// MinPrice <= MaxPrice always holds; both are whole currency units.
type PriceEstimate struct {
	MinPrice          int64   `json:"minPrice"`
	MaxPrice          int64   `json:"maxPrice"`
	UrgencyMultiplier float64 `json:"urgencyMultiplier"`
}

// ContactDetails are the free-form fields a client fills next to the selection.
type ContactDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Details string `json:"details,omitempty"`
}

func (c ContactDetails) Trimmed() ContactDetails {
	return ContactDetails{
		Name:    strings.TrimSpace(c.Name),
		Email:   strings.TrimSpace(c.Email),
		Phone:   strings.TrimSpace(c.Phone),
		Details: strings.TrimSpace(c.Details),
	}
}

// QuoteSubmission is the record handed to the notification collaborator.
//
// The JSON shape is the collaborator payload:
//
//	{name, email, phone?, projectType, pageCount, features, urgency,
//	 estimatedRangeText, additionalNotes}
type QuoteSubmission struct {
	Name               string      `json:"name"`
	Email              string      `json:"email"`
	Phone              string      `json:"phone,omitempty"`
	ProjectType        ProjectType `json:"projectType"`
	PageCount          int         `json:"pageCount"`
	Features           []FeatureID `json:"features"`
	Urgency            Urgency     `json:"urgency"`
	EstimatedRangeText string      `json:"estimatedRangeText"`
	AdditionalNotes    string      `json:"additionalNotes"`
}

func NewQuoteSubmission(contact ContactDetails, sel QuoteSelection, rangeText string) QuoteSubmission {
	contact = contact.Trimmed()
	sel = sel.Normalized()
	return QuoteSubmission{
		Name:               contact.Name,
		Email:              contact.Email,
		Phone:              contact.Phone,
		ProjectType:        sel.ProjectType,
		PageCount:          sel.PageCount,
		Features:           slices.Clone(sel.Features),
		Urgency:            sel.Urgency,
		EstimatedRangeText: rangeText,
		AdditionalNotes:    contact.Details,
	}
}

func (s QuoteSubmission) Selection() QuoteSelection {
	return NewSelection(s.ProjectType, s.PageCount, slices.Clone(s.Features), s.Urgency)
}

func (s QuoteSubmission) Contact() ContactDetails {
	return ContactDetails{Name: s.Name, Email: s.Email, Phone: s.Phone, Details: s.AdditionalNotes}
}

type QuoteRequestStatus string

const (
	QuoteRequestStatusPending QuoteRequestStatus = "pending"
	QuoteRequestStatusSent    QuoteRequestStatus = "sent"
	QuoteRequestStatusFailed  QuoteRequestStatus = "failed"
)

// QuoteRequest is a submitted quote as recorded by the service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (email-index): email
type QuoteRequest struct {
	ID                string             `json:"id"`
	Submission        QuoteSubmission    `json:"submission"`
	MinPrice          int64              `json:"min_price"`
	MaxPrice          int64              `json:"max_price"`
	UrgencyMultiplier float64            `json:"urgency_multiplier"`
	DeliveryTime      string             `json:"delivery_time"`
	Status            QuoteRequestStatus `json:"status"`
	FailureReason     string             `json:"failure_reason,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// NormalizeEmail is the form of an email used for lookups and locking.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
