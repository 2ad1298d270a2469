// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads qrcard settings from a YAML file, a .env file
// and QRCARD_* environment variables, in increasing order of precedence.
package config // import "github.com/unixdj/qrcard/config"

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/unixdj/qrcard"
	"github.com/unixdj/qrcard/card"
	"github.com/unixdj/qrcard/logo"
)

// Logo describes the logo pasted over codes.
type Logo struct {
	Path  string `yaml:"path"`
	Style string `yaml:"style"`
	Shape string `yaml:"shape"`
	Size  int    `yaml:"size"`
	Text  string `yaml:"text"`
}

// Fonts are font files; empty uses the embedded Go fonts.
type Fonts struct {
	Regular string `yaml:"regular"`
	Bold    string `yaml:"bold"`
}

// Card is the text of the portfolio card.
type Card struct {
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle"`
	Features []string `yaml:"features"`
}

// Style is one entry of the collection sheet.
type Style struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Collection is the collection sheet.
type Collection struct {
	Title    string  `yaml:"title"`
	Subtitle string  `yaml:"subtitle"`
	Footer   string  `yaml:"footer"`
	Styles   []Style `yaml:"styles"`
}

// Premium is the single premium card.
type Premium struct {
	Title string `yaml:"title"`
}

// Output names the files written.  Relative names are under Dir.
type Output struct {
	Dir        string `yaml:"dir"`
	QR         string `yaml:"qr"`
	Card       string `yaml:"card"`
	Collection string `yaml:"collection"`
	Premium    string `yaml:"premium"`
	Logo       string `yaml:"logo"`
}

// Config holds all settings.
type Config struct {
	URL        string     `yaml:"url"`
	DisplayURL string     `yaml:"display_url"`
	Level      string     `yaml:"level"`
	Scale      int        `yaml:"scale"`
	Border     int        `yaml:"border"`
	Foreground string     `yaml:"foreground"`
	Background string     `yaml:"background"`
	Logo       Logo       `yaml:"logo"`
	Fonts      Fonts      `yaml:"fonts"`
	Card       Card       `yaml:"card"`
	Collection Collection `yaml:"collection"`
	Premium    Premium    `yaml:"premium"`
	Output     Output     `yaml:"output"`
	LogLevel   string     `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	styles := make([]Style, 0, 4)
	for _, e := range card.DefaultEntries() {
		styles = append(styles, Style{
			Name:        e.Variant.String(),
			Description: e.Variant.Description(),
		})
	}
	return &Config{
		URL:        "https://example.com",
		Level:      "h",
		Scale:      10,
		Border:     qrcard.DefaultBorder,
		Foreground: "black",
		Background: "white",
		Logo: Logo{
			Style: logo.Gradient.String(),
			Shape: logo.Circle.String(),
			Size:  logo.DefaultSize,
		},
		Card: Card{
			Title:    "Portfolio",
			Subtitle: "Scan to visit my portfolio",
			Features: []string{
				"Projects",
				"Experience",
				"Skills",
				"Contact",
			},
		},
		Collection: Collection{
			Title:    "Premium QR Code Collection",
			Subtitle: "Professional Portfolio Access",
			Styles:   styles,
		},
		Premium: Premium{Title: "Portfolio"},
		Output: Output{
			Dir:        ".",
			QR:         "qr.png",
			Card:       "portfolio_qr_code.png",
			Collection: "premium_qr_collection.png",
			Premium:    "premium_portfolio_qr.png",
			Logo:       "logo.png",
		},
		LogLevel: "info",
	}
}

// Load reads settings from the YAML file at path over the defaults.
// A missing file is not an error; path "" skips the file.  Variables
// from a .env file next to path, or in the working directory, are
// added to the environment without replacing those already set, and
// QRCARD_* variables then override the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}
	if err := loadDotenv(path); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func loadDotenv(path string) error {
	name := ".env"
	if path != "" {
		name = filepath.Join(filepath.Dir(path), ".env")
	}
	err := godotenv.Load(name)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", name, err)
	}
	return nil
}

// applyEnvOverrides applies QRCARD_* environment variables to cfg.
func applyEnvOverrides(cfg *Config) {
	for _, o := range []struct {
		name string
		dst  *string
	}{
		{"QRCARD_URL", &cfg.URL},
		{"QRCARD_LEVEL", &cfg.Level},
		{"QRCARD_LOGO", &cfg.Logo.Path},
		{"QRCARD_FONT", &cfg.Fonts.Regular},
		{"QRCARD_OUTPUT_DIR", &cfg.Output.Dir},
		{"QRCARD_LOG_LEVEL", &cfg.LogLevel},
	} {
		if v := os.Getenv(o.name); v != "" {
			*o.dst = v
		}
	}
	if v := os.Getenv("QRCARD_SCALE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scale = n
		}
	}
}

// Validate reports the first invalid setting.
// An empty URL is valid; the command line may supply one.
func (c *Config) Validate() error {
	if _, err := qrcard.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Scale < 1 {
		return fmt.Errorf("config: scale %d: %w", c.Scale, qrcard.ErrArgs)
	}
	if c.Border < 0 {
		return fmt.Errorf("config: border %d: %w", c.Border, qrcard.ErrArgs)
	}
	if c.Logo.Size < 0 {
		return fmt.Errorf("config: logo size %d: %w", c.Logo.Size, qrcard.ErrArgs)
	}
	if _, err := logo.ParseStyle(c.Logo.Style); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := logo.ParseShape(c.Logo.Shape); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	for _, s := range c.Collection.Styles {
		if _, err := card.ParseVariant(s.Name); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	for _, s := range []string{c.Foreground, c.Background} {
		if _, err := ParseColor(s); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if _, err := c.LoggerLevel(); err != nil {
		return fmt.Errorf("config: log level: %w", err)
	}
	return nil
}

// LoggerLevel parses LogLevel.  An empty level means info.
func (c *Config) LoggerLevel() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(c.LogLevel)
}

// Entries returns the collection styles as card entries.
func (c *Config) Entries() []card.Entry {
	e := make([]card.Entry, 0, len(c.Collection.Styles))
	for _, s := range c.Collection.Styles {
		v, err := card.ParseVariant(s.Name)
		if err != nil {
			continue
		}
		e = append(e, card.Entry{Variant: v, Name: s.Name, Description: s.Description})
	}
	return e
}

// Path returns name under Output.Dir unless it is absolute or "-".
func (c *Config) Path(name string) string {
	if name == "-" || filepath.IsAbs(name) || c.Output.Dir == "" {
		return name
	}
	return filepath.Join(c.Output.Dir, name)
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" (the "#" is
// optional) or an SVG colour name.
func ParseColor(s string) (color.Color, error) {
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	h := strings.TrimPrefix(s, "#")
	var mul uint64
	switch len(h) {
	case 3:
		mul = 0x11
	case 6, 8:
		mul = 1
	default:
		return nil, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid colour %q", s)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	if len(h) == 3 {
		return color.NRGBA{
			uint8(v>>8) * uint8(mul),
			uint8(v>>4&0xf) * uint8(mul),
			uint8(v&0xf) * uint8(mul),
			0xff,
		}, nil
	}
	return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}
