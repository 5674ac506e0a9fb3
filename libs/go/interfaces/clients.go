package interfaces

import "context"

// SecretsClient resolves configuration secrets, falling back to plain
// environment variables when no secret ARN is configured.
type SecretsClient interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
	GetDatabaseURL(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string, sslMode string) (string, error)
}
