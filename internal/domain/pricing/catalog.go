// Package pricing turns a quote selection into a price range and a delivery label.
//
// Every table in this file is static configuration; nothing here is user-modifiable.
package pricing

import "dubiqo_quotes/internal/domain/entities"

// FeatureCatalogEntry is one add-on a client can select.
type FeatureCatalogEntry struct {
	ID        entities.FeatureID `json:"id"`
	Label     string             `json:"label"`
	Surcharge int64              `json:"surcharge"`
}

var featureCatalog = []FeatureCatalogEntry{
	{ID: entities.FeatureSEO, Label: "SEO Optimization", Surcharge: 2000},
	{ID: entities.FeatureCMS, Label: "Content Management System", Surcharge: 2500},
	{ID: entities.FeaturePayment, Label: "Payment Gateway Integration", Surcharge: 2000},
	{ID: entities.FeatureAuth, Label: "User Authentication", Surcharge: 1500},
	{ID: entities.FeatureAdmin, Label: "Admin Dashboard", Surcharge: 3000},
	{ID: entities.FeatureAnalytics, Label: "Analytics Integration", Surcharge: 1000},
	{ID: entities.FeatureBlog, Label: "Blog Section", Surcharge: 1500},
	{ID: entities.FeatureMultilingual, Label: "Multi-language Support", Surcharge: 2500},
}

// FeatureCatalog returns a copy of the feature catalog in display order.
func FeatureCatalog() []FeatureCatalogEntry {
	out := make([]FeatureCatalogEntry, len(featureCatalog))
	copy(out, featureCatalog)
	return out
}

func FeatureSurcharge(id entities.FeatureID) (int64, bool) {
	for _, f := range featureCatalog {
		if f.ID == id {
			return f.Surcharge, true
		}
	}
	return 0, false
}

const fallbackBasePrice int64 = 5000

var basePrices = map[entities.ProjectType]int64{
	entities.ProjectTypeWebsite:   5000,
	entities.ProjectTypePortfolio: 4999,
	entities.ProjectTypeDashboard: 12000,
	entities.ProjectTypeBilling:   12000,
	entities.ProjectTypeEcommerce: 15000,
	entities.ProjectTypeOther:     fallbackBasePrice,
}

// BasePrice returns the starting price of a project type. Unrecognized types
// are priced like a website.
func BasePrice(p entities.ProjectType) int64 {
	if v, ok := basePrices[p]; ok {
		return v
	}
	return fallbackBasePrice
}

// Urgency multipliers in percent so the arithmetic stays in integers.
var urgencyPercent = map[entities.Urgency]int64{
	entities.UrgencyNormal: 100,
	entities.UrgencyUrgent: 125,
	entities.UrgencyRush:   150,
}

func UrgencyMultiplier(u entities.Urgency) (float64, error) {
	pct, err := urgencyPercentOf(u)
	if err != nil {
		return 0, err
	}
	return float64(pct) / 100, nil
}

func urgencyPercentOf(u entities.Urgency) (int64, error) {
	if u == "" {
		u = entities.UrgencyNormal
	}
	pct, ok := urgencyPercent[u]
	if !ok {
		return 0, entities.ErrInvalidUrgency
	}
	return pct, nil
}

const (
	labelStandard  = "2-3 weeks"
	labelComplex   = "4-6 weeks"
	labelEcommerce = "6-8 weeks"
	labelRush      = "50% faster delivery"
	labelPriority  = "Priority delivery"
)

var deliveryLabels = map[entities.ProjectType]string{
	entities.ProjectTypeDashboard: labelComplex,
	entities.ProjectTypeBilling:   labelComplex,
	entities.ProjectTypeEcommerce: labelEcommerce,
}
