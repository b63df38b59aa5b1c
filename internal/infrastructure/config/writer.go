package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# FlightAI Configuration

llm:
  provider: openai
  model: gpt-4o-mini
  temperature: 0.7
  requests_per_second: 2
  max_tool_rounds: 5
  # api_key: your-api-key (or set OPENAI_API_KEY env var)
  # base_url: https://api.openai.com/v1

catalog:
  # path: destinations.yaml (YAML, JSON or CSV; empty uses the built-in catalog)

resolver:
  threshold: 0.6
  overlap_floor: 0.7
  substitution_score: 0.9
  min_containment_length: 3
  min_overlap_length: 4

sqlite:
  # path: .flight/resolutions.db

server:
  addr: ":8080" # or set FLIGHT_HTTP_ADDR

log:
  level: info # or set FLIGHT_LOG_LEVEL
  format: console # console or json
`

// WriteDefault creates the .flight directory and writes a default config file.
func WriteDefault(basePath string) error {
	configDir := ConfigDir(basePath)
	configFile := ConfigFilePath(basePath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	if err := os.WriteFile(configFile, []byte(DefaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Write writes the given config to the config file.
func Write(basePath string, cfg *Config) error {
	if err := os.MkdirAll(ConfigDir(basePath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(ConfigFilePath(basePath), data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
