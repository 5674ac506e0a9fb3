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

	"github.com/aurajewels/storefront-api/libs/go/logger"
)

// secretsAPI is the subset of the Secrets Manager client used here.
type secretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc secretsAPI
}

// NewSecretsManagerClient uses the default AWS configuration chain
// (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return &SecretsManagerClient{svc: secretsmanager.NewFromConfig(cfg)}, nil
}

// NewEnvOnlySecretsClient returns a client that never calls AWS and always
// reads the fallback environment variable. Used for local runs.
func NewEnvOnlySecretsClient() *SecretsManagerClient {
	return &SecretsManagerClient{}
}

// GetSecretString returns the secret whose ARN is stored in secretArnEnvVar,
// or the value of fallbackEnvVar when the ARN is unset or the fetch fails.
// A secret stored as a single-key JSON object yields that key's value.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	secretArn := os.Getenv(secretArnEnvVar)

	if secretArn != "" && c.svc != nil {
		raw, err := c.fetch(ctx, secretArn)
		if err == nil {
			var secretJSON map[string]string
			if jsonErr := json.Unmarshal([]byte(raw), &secretJSON); jsonErr == nil && len(secretJSON) == 1 {
				for key, value := range secretJSON {
					logger.Log.Info("Fetched secret from Secrets Manager",
						zap.String("secretArn", secretArn),
						zap.String("jsonKey", key))
					return value, nil
				}
			}
			logger.Log.Info("Fetched secret from Secrets Manager", zap.String("secretArn", secretArn))
			return raw, nil
		}
		logger.Log.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("secretArn", secretArn),
			zap.String("fallbackEnvVar", fallbackEnvVar),
			zap.Error(err))
	}

	if value := os.Getenv(fallbackEnvVar); value != "" {
		logger.Log.Debug("Using secret value from environment variable", zap.String("envVar", fallbackEnvVar))
		return value, nil
	}

	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

// DatabaseSecret is the JSON layout of an RDS-managed database secret.
type DatabaseSecret struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	DBName   string `json:"dbname"`
}

// DSN builds a postgres connection string from the secret.
func (s DatabaseSecret) DSN(sslMode string) string {
	if sslMode == "" {
		sslMode = "require"
	}
	port := s.Port
	if port == 0 {
		port = 5432
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s", s.Username, s.Password, s.Host, port, s.DBName, sslMode)
}

// GetDatabaseURL resolves the database connection string either from an RDS
// JSON secret or from the fallback env var holding a full DSN.
func (c *SecretsManagerClient) GetDatabaseURL(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string, sslMode string) (string, error) {
	secretArn := os.Getenv(secretArnEnvVar)
	if secretArn != "" && c.svc != nil {
		raw, err := c.fetch(ctx, secretArn)
		if err == nil {
			var secret DatabaseSecret
			if err = json.Unmarshal([]byte(raw), &secret); err == nil && secret.Host != "" {
				return secret.DSN(sslMode), nil
			}
		}
		logger.Log.Warn("Failed to resolve database secret, falling back to env var",
			zap.String("secretArn", secretArn),
			zap.Error(err))
	}

	if dsn := os.Getenv(fallbackEnvVar); dsn != "" {
		return dsn, nil
	}
	return "", fmt.Errorf("database url not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

func (c *SecretsManagerClient) fetch(ctx context.Context, secretArn string) (string, error) {
	result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	})
	if err != nil {
		return "", err
	}
	if result.SecretString == nil || *result.SecretString == "" {
		return "", fmt.Errorf("secret %s has no string value", secretArn)
	}
	return *result.SecretString, nil
}
