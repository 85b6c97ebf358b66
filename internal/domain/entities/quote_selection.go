package entities

import (
	"errors"
	"slices"
	"strings"
)

var (
	ErrInvalidPageCount = errors.New("invalid page count")
	ErrInvalidUrgency   = errors.New("invalid urgency")
)

// ProjectType is the kind of project a client asks a quote for.
//
// The empty value means "not chosen yet". Values outside the declared set are
// still accepted and priced with the fallback base price.
type ProjectType string

const (
	ProjectTypeWebsite   ProjectType = "website"
	ProjectTypePortfolio ProjectType = "portfolio"
	ProjectTypeDashboard ProjectType = "dashboard"
	ProjectTypeBilling   ProjectType = "billing"
	ProjectTypeEcommerce ProjectType = "ecommerce"
	ProjectTypeOther     ProjectType = "other"
)

// ProjectTypes lists every declared project type in display order.
var ProjectTypes = []ProjectType{
	ProjectTypeWebsite,
	ProjectTypePortfolio,
	ProjectTypeDashboard,
	ProjectTypeBilling,
	ProjectTypeEcommerce,
	ProjectTypeOther,
}

func (p ProjectType) IsSet() bool {
	return strings.TrimSpace(string(p)) != ""
}

func (p ProjectType) Known() bool {
	return slices.Contains(ProjectTypes, p)
}

type Urgency string

const (
	UrgencyNormal Urgency = "normal"
	UrgencyUrgent Urgency = "urgent"
	UrgencyRush   Urgency = "rush"
)

var Urgencies = []Urgency{UrgencyNormal, UrgencyUrgent, UrgencyRush}

func (u Urgency) Valid() bool {
	return slices.Contains(Urgencies, u)
}

// FeatureID identifies an add-on from the feature catalog.
type FeatureID string

const (
	FeatureSEO          FeatureID = "seo"
	FeatureCMS          FeatureID = "cms"
	FeaturePayment      FeatureID = "payment"
	FeatureAuth         FeatureID = "auth"
	FeatureAdmin        FeatureID = "admin"
	FeatureAnalytics    FeatureID = "analytics"
	FeatureBlog         FeatureID = "blog"
	FeatureMultilingual FeatureID = "multilingual"
)

const DefaultPageCount = 1

// PageCountOptions are the only page counts a client can pick. 10 stands for "10+".
var PageCountOptions = []int{1, 3, 5, 8, 10}

func IsValidPageCount(n int) bool {
	return slices.Contains(PageCountOptions, n)
}

// QuoteSelection is what the client picked in the quote form.
//
// It is a value: every transition returns a new selection and leaves the
// receiver untouched. Features are kept sorted and unique.
type QuoteSelection struct {
	ProjectType ProjectType `json:"projectType"`
	PageCount   int         `json:"pageCount"`
	Features    []FeatureID `json:"features"`
	Urgency     Urgency     `json:"urgency"`
}

func DefaultSelection() QuoteSelection {
	return QuoteSelection{
		PageCount: DefaultPageCount,
		Features:  []FeatureID{},
		Urgency:   UrgencyNormal,
	}
}

// NewSelection builds a normalized selection. Page count and urgency are not
// validated here; the estimator rejects out-of-range values.
func NewSelection(projectType ProjectType, pageCount int, features []FeatureID, urgency Urgency) QuoteSelection {
	return QuoteSelection{
		ProjectType: ProjectType(strings.TrimSpace(string(projectType))),
		PageCount:   pageCount,
		Features:    features,
		Urgency:     urgency,
	}.Normalized()
}

// Normalized fills defaults for zero values and canonicalizes the feature set.
func (s QuoteSelection) Normalized() QuoteSelection {
	out := s
	if out.PageCount == 0 {
		out.PageCount = DefaultPageCount
	}
	if strings.TrimSpace(string(out.Urgency)) == "" {
		out.Urgency = UrgencyNormal
	}
	out.Features = normalizeFeatures(s.Features)
	return out
}

func (s QuoteSelection) WithProjectType(p ProjectType) QuoteSelection {
	out := s.Clone()
	out.ProjectType = ProjectType(strings.TrimSpace(string(p)))
	return out
}

func (s QuoteSelection) WithPageCount(n int) (QuoteSelection, error) {
	if !IsValidPageCount(n) {
		return s, ErrInvalidPageCount
	}
	out := s.Clone()
	out.PageCount = n
	return out, nil
}

func (s QuoteSelection) WithUrgency(u Urgency) (QuoteSelection, error) {
	if !u.Valid() {
		return s, ErrInvalidUrgency
	}
	out := s.Clone()
	out.Urgency = u
	return out, nil
}

func (s QuoteSelection) HasFeature(id FeatureID) bool {
	return slices.Contains(s.Features, id)
}

func (s QuoteSelection) WithFeature(id FeatureID) QuoteSelection {
	out := s.Clone()
	out.Features = normalizeFeatures(append(out.Features, id))
	return out
}

func (s QuoteSelection) WithoutFeature(id FeatureID) QuoteSelection {
	out := s.Clone()
	out.Features = slices.DeleteFunc(out.Features, func(f FeatureID) bool { return f == id })
	return out
}

func (s QuoteSelection) ToggleFeature(id FeatureID) QuoteSelection {
	if s.HasFeature(id) {
		return s.WithoutFeature(id)
	}
	return s.WithFeature(id)
}

// Reset returns the default selection.
func (s QuoteSelection) Reset() QuoteSelection {
	return DefaultSelection()
}

func (s QuoteSelection) Equal(o QuoteSelection) bool {
	return s.ProjectType == o.ProjectType &&
		s.PageCount == o.PageCount &&
		s.Urgency == o.Urgency &&
		slices.Equal(normalizeFeatures(s.Features), normalizeFeatures(o.Features))
}

// Clone returns a copy that shares no memory with s.
func (s QuoteSelection) Clone() QuoteSelection {
	out := s
	out.Features = slices.Clone(s.Features)
	if out.Features == nil {
		out.Features = []FeatureID{}
	}
	return out
}

func normalizeFeatures(in []FeatureID) []FeatureID {
	out := make([]FeatureID, 0, len(in))
	for _, f := range in {
		f = FeatureID(strings.TrimSpace(string(f)))
		if f == "" {
			continue
		}
		out = append(out, f)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
