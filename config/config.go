package config

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/soocke/digit-viewer-go/domain/idx"
)

// Config holds runtime configuration for the dataset source and the window.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Dataset source. An empty LabelsPath runs without labels.
	ImagesPath string `json:"images_path"`
	LabelsPath string `json:"labels_path"`
	Limit      int    `json:"limit"`
	Demo       bool   `json:"demo"`

	// Navigation: "clamp" or "wrap" at the ends of the collection.
	Bounds string `json:"bounds"`

	// Window
	Title        string `json:"title"`
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	Scale        int    `json:"scale"` // display upscale factor; 0 fits the window
	DarkMode     bool   `json:"dark_mode"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:        false,
		ImagesPath:   idx.DefaultImagesFile,
		LabelsPath:   idx.DefaultLabelsFile,
		Limit:        0,
		Bounds:       "clamp",
		Title:        "MNIST Viewer",
		WindowWidth:  320,
		WindowHeight: 360,
		Scale:        0,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.Limit < 0 {
		c.Limit = 0
	}
	switch b := strings.ToLower(strings.TrimSpace(c.Bounds)); b {
	case "clamp", "wrap":
		c.Bounds = b
	default:
		c.Bounds = "clamp"
	}
	if c.WindowWidth < idx.Cols {
		c.WindowWidth = 320
	}
	if c.WindowHeight < idx.Rows {
		c.WindowHeight = 360
	}
	if c.Scale < 0 || c.Scale > 64 {
		c.Scale = 0
	}
	if c.Title == "" {
		c.Title = "MNIST Viewer"
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
