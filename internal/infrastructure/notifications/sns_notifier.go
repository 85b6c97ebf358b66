package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"dubiqo_quotes/internal/domain/entities"
	"dubiqo_quotes/internal/infrastructure/logger"
	"dubiqo_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSNotifier publishes the submission payload as JSON to a topic.
type SNSNotifier struct {
	client   SNSService
	topicARN string
	log      logger.Logger
}

var _ interfaces.IQuoteNotifier = (*SNSNotifier)(nil)

func NewSNSNotifier(client SNSService, topicARN string, log logger.Logger) *SNSNotifier {
	return &SNSNotifier{client: client, topicARN: topicARN, log: log}
}

func (n *SNSNotifier) Name() string { return "sns" }

func (n *SNSNotifier) SendQuoteRequest(ctx context.Context, s entities.QuoteSubmission) (bool, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return false, fmt.Errorf("marshal quote request: %w", err)
	}

	out, err := n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String(asciiSubject(s)),
		Message:  aws.String(string(payload)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"project_type": {DataType: aws.String("String"), StringValue: aws.String(string(s.ProjectType))},
			"urgency":      {DataType: aws.String("String"), StringValue: aws.String(string(s.Urgency))},
		},
	})
	if err != nil {
		return false, fmt.Errorf("sns publish: %w", err)
	}

	n.log.Info("[quote][sns] published", map[string]interface{}{
		"message_id": aws.ToString(out.MessageId),
		"topic":      n.topicARN,
	})
	return true, nil
}
