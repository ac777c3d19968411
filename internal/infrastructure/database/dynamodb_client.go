package database

import (
	"context"

	appconfig "mwonto_studio/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// NewDynamoDBClient creates a DynamoDB client from resolved settings.
//
// Local-friendly: when Endpoint is set (e.g. http://dynamodb:8000) requests
// go to the local emulator, which does not validate credentials but the AWS
// SDK still requires them.
func NewDynamoDBClient(ctx context.Context, dbCfg appconfig.Database) (*dynamodb.Client, error) {
	cfg, err := newAWSConfig(ctx, dbCfg)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(cfg), nil
}

func newAWSConfig(ctx context.Context, dbCfg appconfig.Database) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(dbCfg.AccessKeyID, dbCfg.SecretAccessKey, "")

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(dbCfg.Region),
		config.WithCredentialsProvider(creds),
	}

	if dbCfg.Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: dbCfg.Endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
