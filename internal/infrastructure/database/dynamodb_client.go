package database

import (
	"context"

	appconfig "dubiqo_quotes/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// NewAWSConfig builds the shared AWS config.
//
// Local DynamoDB and localstack do not validate credentials, but the AWS SDK
// requires them, so static credentials are always set. dynamoEndpoint
// overrides DynamoDB only; awsEndpoint overrides SES and SNS.
func NewAWSConfig(ctx context.Context, awsCfg appconfig.AWSConfig, dynamoEndpoint string) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(awsCfg.AccessKeyID, awsCfg.SecretAccessKey, "")

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(awsCfg.Region),
		config.WithCredentialsProvider(creds),
	}

	if dynamoEndpoint != "" || awsCfg.Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			switch {
			case service == dynamodb.ServiceID && dynamoEndpoint != "":
				return aws.Endpoint{URL: dynamoEndpoint, SigningRegion: region, HostnameImmutable: true}, nil
			case (service == ses.ServiceID || service == sns.ServiceID) && awsCfg.Endpoint != "":
				return aws.Endpoint{URL: awsCfg.Endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

func NewDynamoDBClient(cfg aws.Config) *dynamodb.Client {
	return dynamodb.NewFromConfig(cfg)
}

func NewSESClient(cfg aws.Config) *ses.Client {
	return ses.NewFromConfig(cfg)
}

func NewSNSClient(cfg aws.Config) *sns.Client {
	return sns.NewFromConfig(cfg)
}
