package ports

import "context"

// SecretStore keeps model provider API keys. Keys are slash separated paths
// such as "careerbot/groq/api_key".
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

// APIKeyRef is the secret-store key for a provider's API key.
func APIKeyRef(provider string) string {
	return "careerbot/" + provider + "/api_key"
}
