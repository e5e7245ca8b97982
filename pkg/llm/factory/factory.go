package factory

import (
	"fmt"

	"stoic-companion-be/pkg/llm"
	"stoic-companion-be/pkg/llm/huggingface"
	"stoic-companion-be/pkg/llm/ollama"
)

// NewLLMProvider builds the configured provider. Vendor choice happens here,
// once, at configuration time; everything downstream sees llm.LLMProvider.
func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "huggingface":
		return huggingface.NewHuggingFaceProvider(apiKey, "", modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
