package throttle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds throttle settings loadable from a file.
// Zero values use the package defaults where noted.
type Config struct {
	// TokensPerMinute is the TPM limit of the API key.
	// 0 uses DefaultTokensPerMinute.
	TokensPerMinute int `json:"tokens_per_minute" yaml:"tokens_per_minute" toml:"tokens_per_minute"`

	// Margin is the safety factor applied to the TPM limit.
	// 0 uses DefaultMargin.
	Margin float64 `json:"margin,omitempty" yaml:"margin,omitempty" toml:"margin,omitempty"`

	// BudgetCap is an absolute ceiling on the effective budget,
	// applied as min(cap, tpm*margin). 0 disables the cap.
	BudgetCap int `json:"budget_cap,omitempty" yaml:"budget_cap,omitempty" toml:"budget_cap,omitempty"`

	// ChunkSize is the maximum tokens per chunk yielded by Consume.
	// 0 defaults to the effective budget.
	ChunkSize int `json:"chunk_size,omitempty" yaml:"chunk_size,omitempty" toml:"chunk_size,omitempty"`

	// CharsPerToken is the character-to-token estimation ratio.
	// 0 uses the default (4.0).
	CharsPerToken float64 `json:"chars_per_token,omitempty" yaml:"chars_per_token,omitempty" toml:"chars_per_token,omitempty"`

	// Strict rejects requests that can never fit the budget instead of
	// waiting.
	Strict bool `json:"strict,omitempty" yaml:"strict,omitempty" toml:"strict,omitempty"`
}

// Validate checks the config for values that cannot build a throttle.
func (c Config) Validate() error {
	if c.TokensPerMinute < 0 {
		return fmt.Errorf("tokens_per_minute must be >= 0, got %d", c.TokensPerMinute)
	}
	if c.Margin < 0 || c.Margin > 1 {
		return fmt.Errorf("margin must be between 0 and 1, got %v", c.Margin)
	}
	if c.BudgetCap < 0 {
		return fmt.Errorf("budget_cap must be >= 0, got %d", c.BudgetCap)
	}
	if c.ChunkSize < 0 {
		return fmt.Errorf("chunk_size must be >= 0, got %d", c.ChunkSize)
	}
	if c.CharsPerToken < 0 {
		return fmt.Errorf("chars_per_token must be >= 0, got %v", c.CharsPerToken)
	}
	return nil
}

// Throttle builds a throttle from the config, using package defaults for
// zero-valued fields.
func (c Config) Throttle() *Throttle {
	t := New(c.TokensPerMinute)
	if c.Margin > 0 {
		t.WithMargin(c.Margin)
	}
	if c.BudgetCap > 0 {
		t.WithBudgetCap(c.BudgetCap)
	}
	if c.ChunkSize > 0 {
		t.WithChunkSize(c.ChunkSize)
	}
	if c.CharsPerToken > 0 {
		t.WithCharsPerToken(c.CharsPerToken)
	}
	return t.WithStrict(c.Strict)
}

// LoadConfig reads a config file, decoding by extension: .yaml/.yml,
// .toml, or .json. The config is validated before being returned.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".json":
		err = json.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
