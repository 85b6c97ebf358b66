package request

import (
	"dubiqo_quotes/internal/domain/entities"
)

// QuoteSelectionRequest is the selection part of the quote form. Zero values
// take the form defaults (1 page, normal urgency).
type QuoteSelectionRequest struct {
	ProjectType string   `json:"projectType" binding:"max=64"`
	PageCount   int      `json:"pageCount"`
	Features    []string `json:"features" binding:"max=32,dive,max=64"`
	Urgency     string   `json:"urgency" binding:"max=16"`
}

func (r QuoteSelectionRequest) ToSelection() entities.QuoteSelection {
	features := make([]entities.FeatureID, 0, len(r.Features))
	for _, f := range r.Features {
		features = append(features, entities.FeatureID(f))
	}
	return entities.NewSelection(entities.ProjectType(r.ProjectType), r.PageCount, features, entities.Urgency(r.Urgency))
}

// SubmitQuoteRequest is the full quote form. Required fields are checked by the
// form itself so that every missing field is reported at once.
type SubmitQuoteRequest struct {
	QuoteSelectionRequest
	Name    string `json:"name" binding:"max=200"`
	Email   string `json:"email" binding:"max=254"`
	Phone   string `json:"phone" binding:"max=40"`
	Details string `json:"details" binding:"max=5000"`
}

func (r SubmitQuoteRequest) Contact() entities.ContactDetails {
	return entities.ContactDetails{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Details: r.Details,
	}
}
