package notifications

import (
	"context"
	"fmt"

	"dubiqo_quotes/internal/domain/entities"
	"dubiqo_quotes/internal/infrastructure/logger"
	"dubiqo_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESService is the subset of the SES client used here.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESNotifier emails each quote request to the agency inbox. Replies go to
// the client.
type SESNotifier struct {
	client SESService
	from   string
	to     string
	log    logger.Logger
}

var _ interfaces.IQuoteNotifier = (*SESNotifier)(nil)

func NewSESNotifier(client SESService, from, to string, log logger.Logger) *SESNotifier {
	return &SESNotifier{client: client, from: from, to: to, log: log}
}

func (n *SESNotifier) Name() string { return "ses" }

func (n *SESNotifier) SendQuoteRequest(ctx context.Context, s entities.QuoteSubmission) (bool, error) {
	body, err := renderBody(s)
	if err != nil {
		return false, err
	}

	out, err := n.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{n.to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject(s)), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body), Charset: aws.String("UTF-8")},
			},
		},
		Source:           aws.String(n.from),
		ReplyToAddresses: []string{s.Email},
	})
	if err != nil {
		return false, fmt.Errorf("ses send email: %w", err)
	}

	n.log.Info("[quote][ses] email sent", map[string]interface{}{
		"message_id": aws.ToString(out.MessageId),
		"to":         n.to,
	})
	return true, nil
}
