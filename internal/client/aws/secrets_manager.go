package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"

	"github.com/metawedding/wedding-api/internal/logger"
)

// SecretValueGetter is the part of the Secrets Manager API the client uses.
type SecretValueGetter interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc    SecretValueGetter
	getenv func(string) string
}

// NewSecretsManagerClient creates and initializes a new Secrets Manager client.
// It uses the default AWS configuration chain (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return NewSecretsManagerClientWithAPI(secretsmanager.NewFromConfig(cfg), os.Getenv), nil
}

// NewSecretsManagerClientWithAPI builds a client over an existing API value and
// environment lookup. A nil svc disables Secrets Manager and only the
// fallback variables are consulted.
func NewSecretsManagerClientWithAPI(svc SecretValueGetter, getenv func(string) string) *SecretsManagerClient {
	if getenv == nil {
		getenv = os.Getenv
	}
	return &SecretsManagerClient{svc: svc, getenv: getenv}
}

// GetSecretString fetches a secret string from AWS Secrets Manager using an ARN specified by an environment variable.
// If the ARN environment variable (secretArnEnvVar) is not set or fetching fails,
// it falls back to reading the secret directly from another environment variable (fallbackEnvVar).
// Secrets stored as a JSON object with a single key resolve to that key's value.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	secretArn := c.getenv(secretArnEnvVar)

	if secretArn != "" && c.svc != nil {
		logger.Log.Debug("Attempting to fetch secret from Secrets Manager",
			zap.String("arnEnvVar", secretArnEnvVar),
			zap.String("secretArn", secretArn),
		)
		result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretArn),
		})
		if err == nil && result.SecretString != nil && *result.SecretString != "" {
			return unwrapSingleKey(*result.SecretString, secretArn), nil
		}
		logger.Log.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("secretArnEnvVar", secretArnEnvVar),
			zap.String("fallbackEnvVar", fallbackEnvVar),
			zap.Error(err),
		)
	} else {
		logger.Log.Debug("Secret ARN environment variable not set, falling back to direct env var",
			zap.String("arnEnvVar", secretArnEnvVar),
			zap.String("fallbackEnvVar", fallbackEnvVar),
		)
	}

	if value := c.getenv(fallbackEnvVar); value != "" {
		logger.Log.Info("Using secret value from direct environment variable", zap.String("envVar", fallbackEnvVar))
		return value, nil
	}

	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

func unwrapSingleKey(secret, secretArn string) string {
	var secretJSON map[string]string
	if err := json.Unmarshal([]byte(secret), &secretJSON); err != nil {
		logger.Log.Info("Fetched secret from Secrets Manager (plain text)", zap.String("secretArn", secretArn))
		return secret
	}
	if len(secretJSON) != 1 {
		logger.Log.Warn("Fetched secret was JSON but not single-key format, returning raw JSON string",
			zap.String("secretArn", secretArn),
			zap.Int("keyCount", len(secretJSON)),
		)
		return secret
	}
	for key, value := range secretJSON {
		logger.Log.Info("Fetched secret from Secrets Manager (single-key JSON)",
			zap.String("secretArn", secretArn),
			zap.String("jsonKey", key),
		)
		return value
	}
	return secret
}
