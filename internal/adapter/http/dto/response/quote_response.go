package response

import (
	"strconv"
	"time"

	"dubiqo_quotes/internal/domain/entities"
	"dubiqo_quotes/internal/domain/pricing"
	"dubiqo_quotes/internal/domain/quoteform"
	"dubiqo_quotes/internal/usecase"
	"dubiqo_quotes/pkg"
)

type BreakdownResponse struct {
	BasePrice         int64   `json:"base_price"`
	PageSurcharge     int64   `json:"page_surcharge"`
	FeatureSurcharge  int64   `json:"feature_surcharge"`
	Subtotal          int64   `json:"subtotal"`
	UrgencyMultiplier float64 `json:"urgency_multiplier"`
	Total             float64 `json:"total"`
}

// EstimateResponse carries a null estimate while no project type is chosen.
type EstimateResponse struct {
	Selection    entities.QuoteSelection `json:"selection"`
	Estimate     *entities.PriceEstimate `json:"estimate"`
	Breakdown    *BreakdownResponse      `json:"breakdown"`
	DeliveryTime string                  `json:"delivery_time"`
	RangeText    string                  `json:"range_text"`
}

func FromEstimateResult(r usecase.EstimateResult) EstimateResponse {
	out := EstimateResponse{
		Selection:    r.Selection,
		Estimate:     r.Estimate,
		DeliveryTime: r.DeliveryTime,
		RangeText:    r.RangeText,
	}
	if r.Breakdown != nil {
		b := BreakdownResponse(*r.Breakdown)
		out.Breakdown = &b
	}
	return out
}

type QuoteRequestResponse struct {
	ID                string                   `json:"id"`
	Submission        entities.QuoteSubmission `json:"submission"`
	MinPrice          int64                    `json:"min_price"`
	MaxPrice          int64                    `json:"max_price"`
	UrgencyMultiplier float64                  `json:"urgency_multiplier"`
	DeliveryTime      string                   `json:"delivery_time"`
	Status            string                   `json:"status"`
	FailureReason     string                   `json:"failure_reason,omitempty"`
	CreatedAt         time.Time                `json:"created_at"`
	UpdatedAt         time.Time                `json:"updated_at"`
}

func FromQuoteRequest(q entities.QuoteRequest) QuoteRequestResponse {
	return QuoteRequestResponse{
		ID:                q.ID,
		Submission:        q.Submission,
		MinPrice:          q.MinPrice,
		MaxPrice:          q.MaxPrice,
		UrgencyMultiplier: q.UrgencyMultiplier,
		DeliveryTime:      q.DeliveryTime,
		Status:            string(q.Status),
		FailureReason:     q.FailureReason,
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
	}
}

func FromQuoteRequests(qs []entities.QuoteRequest) []QuoteRequestResponse {
	out := make([]QuoteRequestResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuoteRequest(q))
	}
	return out
}

// FormResponse is the form state the client should render next.
type FormResponse struct {
	Selection      entities.QuoteSelection `json:"selection"`
	Contact        entities.ContactDetails `json:"contact"`
	Status         string                  `json:"status"`
	Busy           bool                    `json:"busy"`
	FieldErrors    map[string]string       `json:"field_errors,omitempty"`
	FailureMessage string                  `json:"failure_message,omitempty"`
	Estimate       *entities.PriceEstimate `json:"estimate"`
	DeliveryTime   string                  `json:"delivery_time"`
}

func FromForm(f quoteform.Form) FormResponse {
	out := FormResponse{
		Selection:      f.Selection,
		Contact:        f.Contact,
		Status:         string(f.Status),
		Busy:           f.Busy(),
		FieldErrors:    f.FieldErrors,
		FailureMessage: f.FailureMessage,
		DeliveryTime:   f.DeliveryTime(),
	}
	if est, err := f.Estimate(); err == nil {
		out.Estimate = est
	}
	return out
}

type SubmitQuoteResponse struct {
	QuoteRequest QuoteRequestResponse `json:"quote_request"`
	Form         FormResponse         `json:"form"`
}

// SubmitQuoteErrorResponse is the error body of POST /quotes: the usual error
// fields plus the form to render.
type SubmitQuoteErrorResponse struct {
	pkg.HTTPError
	Form FormResponse `json:"form"`
}

type ProjectTypeResponse struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	BasePrice int64  `json:"base_price"`
}

type FeatureResponse struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Surcharge int64  `json:"surcharge"`
}

type UrgencyResponse struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

type PageOptionResponse struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type CatalogResponse struct {
	ProjectTypes []ProjectTypeResponse `json:"project_types"`
	PageOptions  []PageOptionResponse  `json:"page_options"`
	Features     []FeatureResponse     `json:"features"`
	Urgencies    []UrgencyResponse     `json:"urgencies"`
}

var projectTypeLabels = map[entities.ProjectType]string{
	entities.ProjectTypeWebsite:   "Business Website",
	entities.ProjectTypePortfolio: "Portfolio",
	entities.ProjectTypeDashboard: "Dashboard / Web App",
	entities.ProjectTypeBilling:   "Billing System",
	entities.ProjectTypeEcommerce: "E-commerce Store",
	entities.ProjectTypeOther:     "Other",
}

var urgencyLabels = map[entities.Urgency]string{
	entities.UrgencyNormal: "Normal",
	entities.UrgencyUrgent: "Urgent",
	entities.UrgencyRush:   "Rush",
}

func NewCatalogResponse() CatalogResponse {
	out := CatalogResponse{}
	for _, p := range entities.ProjectTypes {
		out.ProjectTypes = append(out.ProjectTypes, ProjectTypeResponse{
			ID:        string(p),
			Label:     projectTypeLabels[p],
			BasePrice: pricing.BasePrice(p),
		})
	}
	for _, n := range entities.PageCountOptions {
		out.PageOptions = append(out.PageOptions, PageOptionResponse{Value: n, Label: pageLabel(n)})
	}
	for _, f := range pricing.FeatureCatalog() {
		out.Features = append(out.Features, FeatureResponse{ID: string(f.ID), Label: f.Label, Surcharge: f.Surcharge})
	}
	for _, u := range entities.Urgencies {
		m, _ := pricing.UrgencyMultiplier(u)
		out.Urgencies = append(out.Urgencies, UrgencyResponse{ID: string(u), Label: urgencyLabels[u], Multiplier: m})
	}
	return out
}

func pageLabel(n int) string {
	switch {
	case n == 1:
		return "1 page"
	case n >= 10:
		return "10+ pages"
	default:
		return strconv.Itoa(n) + " pages"
	}
}
