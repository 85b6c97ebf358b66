package interfaces

import (
	"context"

	"dubiqo_quotes/internal/domain/entities"
)

// IQuoteNotifier delivers a quote request to the agency.
//
// It reports success with true. A false result or a non-nil error are both
// treated as a failed hand-off.
type IQuoteNotifier interface {
	Name() string
	SendQuoteRequest(ctx context.Context, submission entities.QuoteSubmission) (bool, error)
}
