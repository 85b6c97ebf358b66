package notifications

import (
	"context"

	"dubiqo_quotes/internal/domain/entities"
	"dubiqo_quotes/internal/infrastructure/logger"
	"dubiqo_quotes/internal/usecase/interfaces"
)

// MockNotifier logs the submission and reports success. Local use only.
type MockNotifier struct {
	log logger.Logger
}

var _ interfaces.IQuoteNotifier = (*MockNotifier)(nil)

func NewMockNotifier(log logger.Logger) *MockNotifier {
	return &MockNotifier{log: log}
}

func (n *MockNotifier) Name() string { return "mock" }

func (n *MockNotifier) SendQuoteRequest(_ context.Context, s entities.QuoteSubmission) (bool, error) {
	n.log.Info("[quote][mock] quote request accepted", map[string]interface{}{
		"email":        s.Email,
		"project_type": s.ProjectType,
		"range":        s.EstimatedRangeText,
	})
	return true, nil
}
