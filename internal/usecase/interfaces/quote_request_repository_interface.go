package interfaces

import (
	"context"

	"dubiqo_quotes/internal/domain/entities"
)

// IQuoteRequestRepository abstracts DynamoDB persistence for QuoteRequest.
//
// Lookups return a zero QuoteRequest (empty ID) when nothing matches.

type IQuoteRequestRepository interface {
	Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	ListByEmail(ctx context.Context, email string) ([]entities.QuoteRequest, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.QuoteRequestStatus, reason string) (entities.QuoteRequest, error)
}
