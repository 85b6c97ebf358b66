package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dubiqo_quotes/internal/domain/entities"
	"dubiqo_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultQuoteRequestsTableName = "quote_requests"
	EmailIndexName                = "email-index"
)

// DynamoDBAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

type quoteRequestItem struct {
	ID                 string   `dynamodbav:"id"`
	EmailKey           string   `dynamodbav:"email_key"`
	Name               string   `dynamodbav:"name"`
	Email              string   `dynamodbav:"email"`
	Phone              string   `dynamodbav:"phone,omitempty"`
	ProjectType        string   `dynamodbav:"project_type"`
	PageCount          int      `dynamodbav:"page_count"`
	Features           []string `dynamodbav:"features"`
	Urgency            string   `dynamodbav:"urgency"`
	EstimatedRangeText string   `dynamodbav:"estimated_range_text"`
	AdditionalNotes    string   `dynamodbav:"additional_notes,omitempty"`
	MinPrice           int64    `dynamodbav:"min_price"`
	MaxPrice           int64    `dynamodbav:"max_price"`
	UrgencyMultiplier  float64  `dynamodbav:"urgency_multiplier"`
	DeliveryTime       string   `dynamodbav:"delivery_time"`
	Status             string   `dynamodbav:"status"`
	FailureReason      string   `dynamodbav:"failure_reason,omitempty"`
	CreatedAt          string   `dynamodbav:"created_at"`
	UpdatedAt          string   `dynamodbav:"updated_at"`
}

// QuoteRequestDynamoRepository persists QuoteRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI email-index: email_key (string, lower-cased email) + created_at (string)

type QuoteRequestDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IQuoteRequestRepository = (*QuoteRequestDynamoRepository)(nil)

func NewQuoteRequestDynamoRepository(ddb DynamoDBAPI, tableName string) *QuoteRequestDynamoRepository {
	if tableName == "" {
		tableName = DefaultQuoteRequestsTableName
	}
	return &QuoteRequestDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteRequestDynamoRepository) Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
	av, err := attributevalue.MarshalMap(toQuoteRequestItem(q))
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	return q, nil
}

func (r *QuoteRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteRequest{}, nil
	}

	var it quoteRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteRequestItem(it), nil
}

// ListByEmail returns every request for the email, newest first.
func (r *QuoteRequestDynamoRepository) ListByEmail(ctx context.Context, email string) ([]entities.QuoteRequest, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(EmailIndexName),
		KeyConditionExpression: aws.String("#email_key = :email_key"),
		ExpressionAttributeNames: map[string]string{
			"#email_key": "email_key",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email_key": &types.AttributeValueMemberS{Value: entities.NormalizeEmail(email)},
		},
		ScanIndexForward: aws.Bool(false),
	}

	result := []entities.QuoteRequest{}
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		var items []quoteRequestItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			result = append(result, fromQuoteRequestItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return result, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// UpdateStatusByID returns a zero QuoteRequest when the id does not exist.
func (r *QuoteRequestDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.QuoteRequestStatus, reason string) (entities.QuoteRequest, error) {
	now := formatTimestamp(time.Now())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #failure_reason = :failure_reason, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":         &types.AttributeValueMemberS{Value: string(status)},
			":failure_reason": &types.AttributeValueMemberS{Value: reason},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#status":         "status",
			"#failure_reason": "failure_reason",
			"#updated_at":     "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.QuoteRequest{}, nil
		}
		return entities.QuoteRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.QuoteRequest{}, nil
	}
	var it quoteRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteRequestItem(it), nil
}

// EnsureTable creates the table and its email index when missing. Meant for
// local DynamoDB; production tables are provisioned outside the service.
func (r *QuoteRequestDynamoRepository) EnsureTable(ctx context.Context) error {
	_, err := r.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.tableName)})
	if err == nil {
		return nil
	}
	var nf *types.ResourceNotFoundException
	if !errors.As(err, &nf) {
		return fmt.Errorf("describe table %s: %w", r.tableName, err)
	}

	_, err = r.ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:   aws.String(r.tableName),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("email_key"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("created_at"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String(EmailIndexName),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("email_key"), KeyType: types.KeyTypeHash},
					{AttributeName: aws.String("created_at"), KeyType: types.KeyTypeRange},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		},
	})
	if err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			return nil
		}
		return fmt.Errorf("create table %s: %w", r.tableName, err)
	}
	return nil
}

func toQuoteRequestItem(q entities.QuoteRequest) quoteRequestItem {
	s := q.Submission
	features := make([]string, 0, len(s.Features))
	for _, f := range s.Features {
		features = append(features, string(f))
	}
	return quoteRequestItem{
		ID:                 q.ID,
		EmailKey:           entities.NormalizeEmail(s.Email),
		Name:               s.Name,
		Email:              s.Email,
		Phone:              s.Phone,
		ProjectType:        string(s.ProjectType),
		PageCount:          s.PageCount,
		Features:           features,
		Urgency:            string(s.Urgency),
		EstimatedRangeText: s.EstimatedRangeText,
		AdditionalNotes:    s.AdditionalNotes,
		MinPrice:           q.MinPrice,
		MaxPrice:           q.MaxPrice,
		UrgencyMultiplier:  q.UrgencyMultiplier,
		DeliveryTime:       q.DeliveryTime,
		Status:             string(q.Status),
		FailureReason:      q.FailureReason,
		CreatedAt:          formatTimestamp(q.CreatedAt),
		UpdatedAt:          formatTimestamp(q.UpdatedAt),
	}
}

func fromQuoteRequestItem(it quoteRequestItem) entities.QuoteRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	features := make([]entities.FeatureID, 0, len(it.Features))
	for _, f := range it.Features {
		features = append(features, entities.FeatureID(f))
	}
	return entities.QuoteRequest{
		ID: it.ID,
		Submission: entities.QuoteSubmission{
			Name:               it.Name,
			Email:              it.Email,
			Phone:              it.Phone,
			ProjectType:        entities.ProjectType(it.ProjectType),
			PageCount:          it.PageCount,
			Features:           features,
			Urgency:            entities.Urgency(it.Urgency),
			EstimatedRangeText: it.EstimatedRangeText,
			AdditionalNotes:    it.AdditionalNotes,
		},
		MinPrice:          it.MinPrice,
		MaxPrice:          it.MaxPrice,
		UrgencyMultiplier: it.UrgencyMultiplier,
		DeliveryTime:      it.DeliveryTime,
		Status:            entities.QuoteRequestStatus(it.Status),
		FailureReason:     it.FailureReason,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}

// timestampLayout is fixed width so string order matches time order; the
// email-index range key relies on it.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
