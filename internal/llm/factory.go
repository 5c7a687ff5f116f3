package llm

import (
	"fmt"
	"os"

	"codelens/internal/config"

	"go.uber.org/zap"
)

// Provider identifies an LLM provider.
type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
)

// ProviderConfig holds the resolved provider and credentials.
type ProviderConfig struct {
	Provider Provider
	APIKey   string
	Model    string // optional model override
}

// DetectProvider resolves provider credentials.
// Priority: user config file > ANTHROPIC_API_KEY > OPENAI_API_KEY.
func DetectProvider(cfg config.Config) (*ProviderConfig, error) {
	if cfg.APIKey != "" {
		provider := Provider(cfg.Provider)
		if provider == "" {
			provider = ProviderAnthropic
		}
		return &ProviderConfig{Provider: provider, APIKey: cfg.APIKey, Model: cfg.Model}, nil
	}

	envProviders := []struct {
		envVar   string
		provider Provider
	}{
		{"ANTHROPIC_API_KEY", ProviderAnthropic},
		{"OPENAI_API_KEY", ProviderOpenAI},
	}
	for _, p := range envProviders {
		if key := os.Getenv(p.envVar); key != "" {
			return &ProviderConfig{Provider: p.provider, APIKey: key, Model: cfg.Model}, nil
		}
	}

	return nil, fmt.Errorf("no API key found: set ANTHROPIC_API_KEY or OPENAI_API_KEY, or run 'codelens config set api_key <key>'")
}

// NewClient builds a Client from a resolved provider config.
func NewClient(pc *ProviderConfig, logger *zap.Logger) (Client, error) {
	switch pc.Provider {
	case ProviderAnthropic:
		cfg := DefaultAnthropicConfig(pc.APIKey)
		if pc.Model != "" {
			cfg.Model = pc.Model
		}
		cfg.Logger = logger
		return NewAnthropicClientWithConfig(cfg), nil
	case ProviderOpenAI:
		cfg := DefaultOpenAIConfig(pc.APIKey)
		if pc.Model != "" {
			cfg.Model = pc.Model
		}
		cfg.Logger = logger
		return NewOpenAIClientWithConfig(cfg), nil
	default:
		return nil, fmt.Errorf("unknown provider: %q", pc.Provider)
	}
}
