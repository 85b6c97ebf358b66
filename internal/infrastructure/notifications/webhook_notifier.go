package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"dubiqo_quotes/internal/domain/entities"
	"dubiqo_quotes/internal/infrastructure/logger"
	"dubiqo_quotes/internal/usecase/interfaces"
)

// WebhookNotifier POSTs the submission payload to an edge function.
//
// A 2xx response whose body is empty or carries no "error" field counts as
// delivered.
type WebhookNotifier struct {
	url        string
	token      string
	httpClient *http.Client
	log        logger.Logger
}

var _ interfaces.IQuoteNotifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(url, token string, httpClient *http.Client, log logger.Logger) *WebhookNotifier {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &WebhookNotifier{url: url, token: token, httpClient: httpClient, log: log}
}

func (n *WebhookNotifier) Name() string { return "webhook" }

type webhookResponse struct {
	Success *bool  `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (n *WebhookNotifier) SendQuoteRequest(ctx context.Context, s entities.QuoteSubmission) (bool, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return false, fmt.Errorf("marshal quote request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if n.token != "" {
		req.Header.Set("Authorization", "Bearer "+n.token)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("webhook request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		n.log.Warn("[quote][webhook] non-2xx response", map[string]interface{}{
			"status": resp.StatusCode,
			"body":   string(body),
		})
		return false, fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	var parsed webhookResponse
	if len(bytes.TrimSpace(body)) > 0 && json.Unmarshal(body, &parsed) == nil {
		if parsed.Error != "" {
			return false, fmt.Errorf("webhook error: %s", parsed.Error)
		}
		if parsed.Success != nil && !*parsed.Success {
			return false, nil
		}
	}
	return true, nil
}
