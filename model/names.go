// Package model provides per-model rate-limit presets and usage tracking.
//
// API rate limits are granted per model family rather than per full model
// identifier, so this package normalizes identifiers like
// "claude-sonnet-4-20250514" to family aliases like "sonnet" and maps
// each family to its typical tokens-per-minute limit. Those limits feed
// directly into throttle construction via ThrottleFor.
package model

import "strings"

// ModelName represents a normalized model family name.
type ModelName string

// Claude model family constants.
const (
	ModelOpus   ModelName = "opus"
	ModelSonnet ModelName = "sonnet"
	ModelHaiku  ModelName = "haiku"
)

// GPT model family constants.
const (
	ModelGPT     ModelName = "gpt"      // Standard GPT (gpt-5, gpt-5.1, gpt-5.2)
	ModelGPTMini ModelName = "gpt-mini" // Small/cheap GPT (gpt-5-mini, gpt-5-nano)
	ModelGPTPro  ModelName = "gpt-pro"  // High-capability GPT (gpt-5-pro)
)

// NormalizeModelName converts a full model identifier to its family alias.
// For example, "claude-sonnet-4-20250514" becomes "sonnet" and
// "gpt-5-mini" becomes "gpt-mini". If the name is already a family alias
// or doesn't match any known pattern, it is returned as-is.
func NormalizeModelName(name string) ModelName {
	switch ModelName(name) {
	case ModelOpus, ModelSonnet, ModelHaiku, ModelGPT, ModelGPTMini, ModelGPTPro:
		return ModelName(name)
	}
	lower := strings.ToLower(name)

	// Claude models
	if strings.Contains(lower, "opus") {
		return ModelOpus
	}
	if strings.Contains(lower, "sonnet") {
		return ModelSonnet
	}
	if strings.Contains(lower, "haiku") {
		return ModelHaiku
	}

	// GPT-5+ models ("gpt-5", "gpt-5.1", ...); older names pass through
	if strings.HasPrefix(lower, "gpt-5") {
		if strings.Contains(lower, "-pro") {
			return ModelGPTPro
		}
		if strings.Contains(lower, "-mini") || strings.Contains(lower, "-nano") {
			return ModelGPTMini
		}
		return ModelGPT
	}

	return ModelName(name)
}
