package ai

import (
	"context"

	"github.com/sirupsen/logrus"
)

// ProviderKeys selects the remote providers to build. Empty keys are skipped.
type ProviderKeys struct {
	GeminiKey      string
	GeminiModel    string
	OpenAIKey      string
	OpenAIModel    string
	OpenAIEndpoint string
}

// BuildProviders returns the configured providers in priority order, Gemini
// first. A provider that fails to initialise is logged and left out. The
// returned func releases provider resources.
func BuildProviders(ctx context.Context, keys ProviderKeys, log logrus.FieldLogger) ([]Provider, func()) {
	var providers []Provider
	closeFn := func() {}

	if keys.GeminiKey != "" {
		g, err := NewGeminiProvider(ctx, keys.GeminiKey, keys.GeminiModel)
		if err != nil {
			log.WithError(err).Warn("gemini disabled")
		} else {
			providers = append(providers, g)
			closeFn = g.Close
		}
	}
	if keys.OpenAIKey != "" {
		c, err := NewChatGPTProvider(keys.OpenAIKey, keys.OpenAIModel, keys.OpenAIEndpoint)
		if err != nil {
			log.WithError(err).Warn("chatgpt disabled")
		} else {
			providers = append(providers, c)
		}
	}
	if len(providers) == 0 {
		log.Info("no chat providers configured, using local replies")
	}
	return providers, closeFn
}
