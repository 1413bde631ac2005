package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	Catalog CatalogConfig  `toml:"catalog"`
	Search  SearchSettings `toml:"search"`
	Viewer  ViewerSettings `toml:"viewer"`
	Index   IndexSettings  `toml:"index"`
	LogFile string         `toml:"log_file"`
}

// CatalogConfig controls where the catalog comes from
type CatalogConfig struct {
	Location string `toml:"location"` // file path or http(s) URL of the catalog
	BaseDir  string `toml:"base_dir"` // resolves relative entry paths; defaults to the catalog's directory
	Suffix   string `toml:"suffix"`   // stripped from filenames before deriving title/artist
}

// SearchSettings controls the query engine
type SearchSettings struct {
	Fields    []string `toml:"fields"` // any of "filename", "title", "artist"
	MinLength int      `toml:"min_length"`
}

// ViewerSettings controls the detail overlay
type ViewerSettings struct {
	FormatTimestamps bool     `toml:"format_timestamps"`
	CopyRevert       Duration `toml:"copy_revert"`
	Clipboard        string   `toml:"clipboard"` // "auto", "system" or "osc52"
	DownloadDir      string   `toml:"download_dir"`
	Title            string   `toml:"title"` // "title" shows the derived title, "filename" the raw name
}

// IndexSettings controls `lyrix index`
type IndexSettings struct {
	Dir     string `toml:"dir"`
	Pattern string `toml:"pattern"`
	Output  string `toml:"output"`
}

// Duration is a time.Duration stored as a string ("2s", "1500ms")
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted in the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "lyrix", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when the file is missing
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks values that would otherwise break the session at runtime
func (c *Config) Validate() error {
	for _, f := range c.Search.Fields {
		switch f {
		case "filename", "title", "artist":
		default:
			return fmt.Errorf("unknown search field %q", f)
		}
	}
	if c.Search.MinLength < 1 {
		return fmt.Errorf("search.min_length must be at least 1, got %d", c.Search.MinLength)
	}
	if c.Viewer.CopyRevert.Duration <= 0 {
		return fmt.Errorf("viewer.copy_revert must be positive")
	}
	switch c.Viewer.Clipboard {
	case "auto", "system", "osc52":
	default:
		return fmt.Errorf("unknown clipboard backend %q", c.Viewer.Clipboard)
	}
	switch c.Viewer.Title {
	case "title", "filename":
	default:
		return fmt.Errorf("viewer.title must be \"title\" or \"filename\", got %q", c.Viewer.Title)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	downloadDir := "."
	if home, err := os.UserHomeDir(); err == nil {
		downloadDir = filepath.Join(home, "Downloads")
	}

	logFile := "lyrix.log"
	if cacheDir, err := os.UserCacheDir(); err == nil {
		logFile = filepath.Join(cacheDir, "lyrix", "lyrix.log")
	}

	return &Config{
		Version: 1,
		Catalog: CatalogConfig{
			Location: "database.json",
			Suffix:   ".lrc",
		},
		Search: SearchSettings{
			Fields:    []string{"filename", "title", "artist"},
			MinLength: 1,
		},
		Viewer: ViewerSettings{
			FormatTimestamps: true,
			CopyRevert:       Duration{2 * time.Second},
			Clipboard:        "auto",
			DownloadDir:      downloadDir,
			Title:            "title",
		},
		Index: IndexSettings{
			Dir:     "lyrics",
			Pattern: "*.lrc",
			Output:  "database.json",
		},
		LogFile: logFile,
	}
}
