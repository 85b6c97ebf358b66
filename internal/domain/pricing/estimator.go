package pricing

import "dubiqo_quotes/internal/domain/entities"

const (
	perPageUpToFive   int64 = 750
	tierAboveFiveBase int64 = 3000
	perPageAboveFive  int64 = 500

	rangeLowPercent  int64 = 90
	rangeHighPercent int64 = 120
)

// Breakdown exposes the intermediate amounts of an estimate.
type Breakdown struct {
	BasePrice         int64   `json:"base_price"`
	PageSurcharge     int64   `json:"page_surcharge"`
	FeatureSurcharge  int64   `json:"feature_surcharge"`
	Subtotal          int64   `json:"subtotal"`
	UrgencyMultiplier float64 `json:"urgency_multiplier"`
	Total             float64 `json:"total"`
}

// Result pairs the estimate with the breakdown that produced it.
type Result struct {
	Estimate  entities.PriceEstimate
	Breakdown Breakdown
}

// Estimate computes the price range for a selection.
//
// A nil estimate with a nil error means the project type is unset and there
// is nothing to price yet.
func Estimate(sel entities.QuoteSelection) (*entities.PriceEstimate, error) {
	res, err := Calculate(sel)
	if err != nil || res == nil {
		return nil, err
	}
	return &res.Estimate, nil
}

// Calculate is Estimate plus the breakdown. It never performs I/O.
func Calculate(sel entities.QuoteSelection) (*Result, error) {
	if !sel.ProjectType.IsSet() {
		return nil, nil
	}
	if !entities.IsValidPageCount(sel.PageCount) {
		return nil, entities.ErrInvalidPageCount
	}
	pct, err := urgencyPercentOf(sel.Urgency)
	if err != nil {
		return nil, err
	}

	base := BasePrice(sel.ProjectType)
	pages := pageSurcharge(sel.PageCount)
	features := featureSurcharge(sel.Features)
	subtotal := base + pages + features

	// total in hundredths of a currency unit
	totalCents := subtotal * pct

	return &Result{
		Estimate: entities.PriceEstimate{
			MinPrice:          totalCents * rangeLowPercent / 10000,
			MaxPrice:          totalCents * rangeHighPercent / 10000,
			UrgencyMultiplier: float64(pct) / 100,
		},
		Breakdown: Breakdown{
			BasePrice:         base,
			PageSurcharge:     pages,
			FeatureSurcharge:  features,
			Subtotal:          subtotal,
			UrgencyMultiplier: float64(pct) / 100,
			Total:             float64(totalCents) / 100,
		},
	}, nil
}

// pageSurcharge charges 750 per page after the first up to five pages, and a
// flat 3000 plus 500 per page beyond five.
func pageSurcharge(n int) int64 {
	pages := int64(n)
	switch {
	case pages <= 1:
		return 0
	case pages <= 5:
		return (pages - 1) * perPageUpToFive
	default:
		return tierAboveFiveBase + (pages-5)*perPageAboveFive
	}
}

func featureSurcharge(ids []entities.FeatureID) int64 {
	var sum int64
	seen := make(map[entities.FeatureID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if v, ok := FeatureSurcharge(id); ok {
			sum += v
		}
	}
	return sum
}

// DeliveryTime returns the delivery label for a selection, or "" when the
// project type is unset. Urgent and rush replace the base label entirely.
func DeliveryTime(p entities.ProjectType, u entities.Urgency) string {
	if !p.IsSet() {
		return ""
	}
	switch u {
	case entities.UrgencyRush:
		return labelRush
	case entities.UrgencyUrgent:
		return labelPriority
	}
	if label, ok := deliveryLabels[p]; ok {
		return label
	}
	return labelStandard
}
