package notifications

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"dubiqo_quotes/internal/domain/entities"
	"dubiqo_quotes/internal/infrastructure/config"
	"dubiqo_quotes/internal/infrastructure/database"
	"dubiqo_quotes/internal/infrastructure/logger"
	"dubiqo_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// New builds the notifier selected by cfg.Kind, bounded by cfg.Timeout.
func New(cfg config.NotifierConfig, awsCfg aws.Config, log logger.Logger) (interfaces.IQuoteNotifier, error) {
	var n interfaces.IQuoteNotifier
	switch cfg.Kind {
	case config.NotifierSES:
		n = NewSESNotifier(database.NewSESClient(awsCfg), cfg.SES.From, cfg.SES.To, log)
	case config.NotifierSNS:
		n = NewSNSNotifier(database.NewSNSClient(awsCfg), cfg.SNS.TopicARN, log)
	case config.NotifierWebhook:
		n = NewWebhookNotifier(cfg.Webhook.URL, cfg.Webhook.Token, &http.Client{Timeout: cfg.Timeout}, log)
	case config.NotifierMock, "":
		n = NewMockNotifier(log)
	default:
		return nil, fmt.Errorf("unknown notifier kind %q", cfg.Kind)
	}
	return WithTimeout(n, cfg.Timeout), nil
}

type timeoutNotifier struct {
	next    interfaces.IQuoteNotifier
	timeout time.Duration
}

// WithTimeout bounds every SendQuoteRequest call. A non-positive timeout
// returns n unchanged.
func WithTimeout(n interfaces.IQuoteNotifier, timeout time.Duration) interfaces.IQuoteNotifier {
	if timeout <= 0 {
		return n
	}
	return &timeoutNotifier{next: n, timeout: timeout}
}

func (t *timeoutNotifier) Name() string { return t.next.Name() }

func (t *timeoutNotifier) SendQuoteRequest(ctx context.Context, s entities.QuoteSubmission) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.SendQuoteRequest(ctx, s)
}
