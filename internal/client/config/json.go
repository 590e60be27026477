package config

import (
	"encoding/json"
	"os"

	"github.com/skye-prog/ai-workorder-management/internal/flagx"
)

// jsonConfig is the DTO for the optional JSON config file.
type jsonConfig struct {
	BaseURL  string `json:"base_url"`
	LogLevel string `json:"log_level"`
}

// parseJSON overlays cfg with values from the JSON file named by -c/-config.
// Missing flag means no file is loaded; a present but unreadable or invalid
// file panics, since the user explicitly asked for it.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
