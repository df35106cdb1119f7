package app

import (
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete application configuration, loadable from
// environment variables (STOREFRONT_ prefix), flags, or YAML config files.
type Config struct {
	CatalogURL string `default:"https://dummyjson.com" usage:"Product catalog API root" flag:"catalog-url"`
	Demo       bool   `default:"false" usage:"Serve the embedded demo catalog instead of fetching"`
	LogFile    string `default:"storefront.log" usage:"Log file path (the terminal is reserved for the UI)" flag:"log-file"`
	Fetch      FetchConfig
	Monitor    MonitorConfig
}

// FetchConfig controls the catalog client's resilience behaviour.
type FetchConfig struct {
	Timeout    time.Duration `default:"10s" usage:"Timeout per catalog fetch attempt"`
	MaxRetries uint64        `default:"3" usage:"Retries after the first failed fetch attempt" flag:"max-retries"`
}

// MonitorConfig controls the background catalog availability monitor.
type MonitorConfig struct {
	Enabled  bool          `default:"true" usage:"Run the catalog availability monitor"`
	Interval time.Duration `default:"30s" usage:"Availability probe interval"`
}

// LoadConfig loads configuration from environment variables, YAML config
// files, and applies platform defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "STOREFRONT",
		Files:     []string{"config.yaml", "/etc/storefront/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	if !cfg.Demo && cfg.CatalogURL == "" {
		return nil, errors.New("catalog URL is required: set STOREFRONT_CATALOG_URL or enable demo mode")
	}

	return &cfg, nil
}

// applyPlatformDefaults maps unprefixed environment variables to the
// STOREFRONT_-prefixed configuration.
func (c *Config) applyPlatformDefaults() {
	if v := os.Getenv("CATALOG_URL"); v != "" && c.CatalogURL == "https://dummyjson.com" {
		c.CatalogURL = v
	}
}
