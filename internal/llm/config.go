// Package llm provides centralized model configuration and client
// abstractions for the generative AI gateway.
package llm

import (
	"os"
	"strconv"
)

// ModelTier represents the complexity/capability level of a model.
type ModelTier string

const (
	// TierLite is for simple tasks: checklist and suggestion generation.
	TierLite ModelTier = "lite"
	// TierStandard is for the full experience analysis.
	TierStandard ModelTier = "standard"
)

// Provider represents an LLM provider.
type Provider string

// Provider constants define supported LLM providers.
const (
	// ProviderGemini is the Google Gemini provider.
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for the application.
type Config struct {
	Provider        Provider
	Models          map[ModelTier]string
	Temperature     float32
	MaxOutputTokens int32
}

// DefaultConfig returns the default configuration (currently Gemini).
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration.
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.0-flash-lite",
			TierStandard: "gemini-2.0-flash",
		},
		Temperature:     0.7,
		MaxOutputTokens: 4096,
	}
}

// LoadConfig returns the default configuration with environment overrides
// applied (OPENCLO_MODEL, OPENCLO_MODEL_LITE, OPENCLO_TEMPERATURE,
// OPENCLO_MAX_OUTPUT_TOKENS).
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv("OPENCLO_MODEL"); v != "" {
		cfg.Models[TierStandard] = v
	}
	if v := os.Getenv("OPENCLO_MODEL_LITE"); v != "" {
		cfg.Models[TierLite] = v
	}
	if v := os.Getenv("OPENCLO_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.Temperature = float32(f)
		}
	}
	if v := os.Getenv("OPENCLO_MAX_OUTPUT_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxOutputTokens = int32(n)
		}
	}

	return cfg
}

// GetModel returns the model name for a given tier, falling back to the
// standard tier, then the lite tier.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a new Config with a specific model for a tier.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider:        c.Provider,
		Models:          make(map[ModelTier]string),
		Temperature:     c.Temperature,
		MaxOutputTokens: c.MaxOutputTokens,
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}
