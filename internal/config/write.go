package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `# shelfscan configuration
log_level = "info"

[database]
path = "./data/shelfscan.db"

[index]
path = "./data/index"

[vision]
# Analyze endpoint that turns a shelf photo into detected titles.
# url = "https://example.com/.netlify/functions/analyze"

[matching]
search_limit = 10
concurrency = 8
item_timeout = "10s"
`

// WriteDefault writes a commented default config file.
// Fails if the file already exists.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
