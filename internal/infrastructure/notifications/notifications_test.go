package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"dubiqo_quotes/internal/domain/entities"
	"dubiqo_quotes/internal/infrastructure/config"
	"dubiqo_quotes/internal/infrastructure/logger"
	"dubiqo_quotes/internal/infrastructure/logger/loggertest"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSESClient struct {
	SendEmailFunc func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

func (m *mockSESClient) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	return m.SendEmailFunc(ctx, params, optFns...)
}

type mockSNSClient struct {
	PublishFunc func(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

func (m *mockSNSClient) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	return m.PublishFunc(ctx, params, optFns...)
}

func sampleSubmission() entities.QuoteSubmission {
	return entities.QuoteSubmission{
		Name:               "Asha Rao",
		Email:              "asha@example.com",
		Phone:              "+91 98765 43210",
		ProjectType:        entities.ProjectTypeDashboard,
		PageCount:          10,
		Features:           []entities.FeatureID{entities.FeatureAdmin, entities.FeaturePayment},
		Urgency:            entities.UrgencyRush,
		EstimatedRangeText: "₹27,000 - ₹36,000",
		AdditionalNotes:    "Need a CRM",
	}
}

func TestRenderBody(t *testing.T) {
	body, err := renderBody(sampleSubmission())
	require.NoError(t, err)

	assert.Contains(t, body, "Name:      Asha Rao")
	assert.Contains(t, body, "Phone:     +91 98765 43210")
	assert.Contains(t, body, "Pages:     10+")
	assert.Contains(t, body, "Features:  Admin Dashboard, Payment Gateway Integration")
	assert.Contains(t, body, "Estimate:  ₹27,000 - ₹36,000")
	assert.Contains(t, body, "Need a CRM")

	s := sampleSubmission()
	s.Phone, s.AdditionalNotes, s.Features, s.PageCount = "", "", nil, 3
	body, err = renderBody(s)
	require.NoError(t, err)
	assert.NotContains(t, body, "Phone:")
	assert.NotContains(t, body, "Details:")
	assert.Contains(t, body, "Features:  none")
	assert.Contains(t, body, "Pages:     3")
}

func TestSubject_Truncated(t *testing.T) {
	s := sampleSubmission()
	s.Name = strings.Repeat("x", 200)
	assert.Len(t, subject(s), 100)
}

func TestSubject_CutsOnRuneBoundary(t *testing.T) {
	s := sampleSubmission()
	prefix := "Quote request: dashboard from "
	// "é" starts at byte 99 and would be split by a byte cut
	s.Name = strings.Repeat("a", 99-len(prefix)) + "éz"

	got := subject(s)
	assert.True(t, utf8.ValidString(got))
	assert.Len(t, got, 99)
	assert.True(t, strings.HasSuffix(got, "a"))
}

func TestSubject_SingleLine(t *testing.T) {
	s := sampleSubmission()
	s.Name = "Asha\r\nBcc: x@y.z"
	assert.Equal(t, "Quote request: dashboard from Asha Bcc: x@y.z", subject(s))
}

func TestASCIISubject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"accents folded", "José Müller", "Quote request: dashboard from Jose Muller"},
		{"non latin dropped", "आशा राव", "Quote request: dashboard from"},
		{"plain", "Asha Rao", "Quote request: dashboard from Asha Rao"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := sampleSubmission()
			s.Name = tc.in
			got := asciiSubject(s)
			assert.Equal(t, tc.want, got)
			for _, r := range got {
				assert.True(t, r >= 0x20 && r <= 0x7e, "rune %q is not printable ASCII", r)
			}
		})
	}

	s := sampleSubmission()
	s.Name = strings.Repeat("é", 80)
	assert.LessOrEqual(t, len(asciiSubject(s)), 100)
}

func TestSESNotifier(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got *ses.SendEmailInput
		client := &mockSESClient{
			SendEmailFunc: func(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
				got = params
				return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
			},
		}
		n := NewSESNotifier(client, "quotes@dubiqo.com", "sales@dubiqo.com", loggertest.New(t))

		ok, err := n.SendQuoteRequest(context.Background(), sampleSubmission())
		require.NoError(t, err)
		assert.True(t, ok)
		require.NotNil(t, got)
		assert.Equal(t, "quotes@dubiqo.com", aws.ToString(got.Source))
		assert.Equal(t, []string{"sales@dubiqo.com"}, got.Destination.ToAddresses)
		assert.Equal(t, []string{"asha@example.com"}, got.ReplyToAddresses)
		assert.Contains(t, aws.ToString(got.Message.Body.Text.Data), "₹27,000 - ₹36,000")
	})

	t.Run("client error", func(t *testing.T) {
		client := &mockSESClient{
			SendEmailFunc: func(context.Context, *ses.SendEmailInput, ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
				return nil, errors.New("throttled")
			},
		}
		n := NewSESNotifier(client, "a@b.c", "d@e.f", logger.NewNoOpLogger())
		ok, err := n.SendQuoteRequest(context.Background(), sampleSubmission())
		assert.False(t, ok)
		assert.ErrorContains(t, err, "throttled")
	})
}

func TestSNSNotifier(t *testing.T) {
	var got *sns.PublishInput
	client := &mockSNSClient{
		PublishFunc: func(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
			got = params
			return &sns.PublishOutput{MessageId: aws.String("m-1")}, nil
		},
	}
	n := NewSNSNotifier(client, "arn:aws:sns:ap-south-1:123:quotes", logger.NewNoOpLogger())

	ok, err := n.SendQuoteRequest(context.Background(), sampleSubmission())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "arn:aws:sns:ap-south-1:123:quotes", aws.ToString(got.TopicArn))

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(got.Message)), &payload))
	assert.Equal(t, "dashboard", payload["projectType"])
	assert.Equal(t, float64(10), payload["pageCount"])
	assert.Equal(t, []interface{}{"admin", "payment"}, payload["features"])
	assert.Equal(t, "₹27,000 - ₹36,000", payload["estimatedRangeText"])
	assert.Equal(t, "Need a CRM", payload["additionalNotes"])
	assert.Equal(t, "rush", aws.ToString(got.MessageAttributes["urgency"].StringValue))

	accented := sampleSubmission()
	accented.Name = "José"
	_, err = n.SendQuoteRequest(context.Background(), accented)
	require.NoError(t, err)
	assert.Equal(t, "Quote request: dashboard from Jose", aws.ToString(got.Subject))

	var payloadAgain map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(got.Message)), &payloadAgain))
	assert.Equal(t, "José", payloadAgain["name"])

	client.PublishFunc = func(context.Context, *sns.PublishInput, ...func(*sns.Options)) (*sns.PublishOutput, error) {
		return nil, errors.New("no topic")
	}
	ok, err = n.SendQuoteRequest(context.Background(), sampleSubmission())
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestWebhookNotifier(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantOK  bool
		wantErr bool
	}{
		{"empty 200", http.StatusOK, "", true, false},
		{"success body", http.StatusOK, `{"success":true}`, true, false},
		{"success false", http.StatusOK, `{"success":false}`, false, false},
		{"error field", http.StatusOK, `{"error":"smtp down"}`, false, true},
		{"non json 2xx", http.StatusAccepted, "queued", true, false},
		{"server error", http.StatusInternalServerError, "oops", false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotBody map[string]interface{}
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
				raw, _ := io.ReadAll(r.Body)
				_ = json.Unmarshal(raw, &gotBody)
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			n := NewWebhookNotifier(srv.URL, "secret", srv.Client(), logger.NewNoOpLogger())
			ok, err := n.SendQuoteRequest(context.Background(), sampleSubmission())
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, "asha@example.com", gotBody["email"])
		})
	}
}

func TestWithTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	n := WithTimeout(NewWebhookNotifier(srv.URL, "", srv.Client(), logger.NewNoOpLogger()), 50*time.Millisecond)
	assert.Equal(t, "webhook", n.Name())

	start := time.Now()
	ok, err := n.SendQuoteRequest(context.Background(), sampleSubmission())
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)

	plain := NewMockNotifier(logger.NewNoOpLogger())
	assert.Same(t, plain, WithTimeout(plain, 0))
}

func TestNew_SelectsNotifier(t *testing.T) {
	awsCfg := aws.Config{Region: "ap-south-1"}
	log := logger.NewNoOpLogger()

	for kind, want := range map[string]string{
		config.NotifierMock:    "mock",
		config.NotifierSES:     "ses",
		config.NotifierSNS:     "sns",
		config.NotifierWebhook: "webhook",
	} {
		n, err := New(config.NotifierConfig{Kind: kind, Timeout: time.Second}, awsCfg, log)
		require.NoError(t, err, kind)
		assert.Equal(t, want, n.Name())
	}

	_, err := New(config.NotifierConfig{Kind: "fax"}, awsCfg, log)
	assert.Error(t, err)
}

func TestMockNotifier(t *testing.T) {
	ok, err := NewMockNotifier(loggertest.New(t)).SendQuoteRequest(context.Background(), sampleSubmission())
	assert.True(t, ok)
	assert.NoError(t, err)
}
