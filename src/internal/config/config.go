// Package config loads the publist.yaml settings file and applies
// environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"publist/src/internal/filters"
	"publist/src/internal/render"
)

// DefaultPath is where the CLI looks for settings unless --config is given.
const DefaultPath = "publist.yaml"

// Highlight selects the author names the "highlight" filter marks.
type Highlight struct {
	Parts []string `yaml:"parts"`
	Class string   `yaml:"class"`
}

// Config holds the settings for a render or normalize run.
type Config struct {
	Input       string    `yaml:"input"`
	// Template is a text/template file; empty selects the built-in list.
	Template    string    `yaml:"template"`
	Output      string    `yaml:"output"`
	Format      string    `yaml:"format"`
	Charset     string    `yaml:"charset"`
	Title       string    `yaml:"title"`
	LogLevel    string    `yaml:"log_level"`
	SkipInvalid bool      `yaml:"skip_invalid"`
	Highlight   Highlight `yaml:"highlight"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Input:    "publications.bib",
		Format:   string(render.FormatHTML),
		Title:    "Publications",
		LogLevel: "info",
		Highlight: Highlight{
			Parts: []string{"Jonathan", "Washington"},
			Class: "pub-author-me",
		},
	}
}

// Load reads path over the defaults and then applies environment overrides.
// A missing file is not an error. Unknown keys are.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, err
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("invalid config %s: %w", path, err)
		}
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overrides fields from PUBS_* environment variables.
func (c *Config) ApplyEnv() {
	c.Input = EnvString("PUBS_INPUT", c.Input)
	c.Template = EnvString("PUBS_TEMPLATE", c.Template)
	c.Output = EnvString("PUBS_OUTPUT", c.Output)
	c.Format = EnvString("PUBS_FORMAT", c.Format)
	c.Charset = EnvString("PUBS_CHARSET", c.Charset)
	c.LogLevel = EnvString("PUBS_LOG_LEVEL", c.LogLevel)
	c.SkipInvalid = EnvBool("PUBS_SKIP_INVALID", c.SkipInvalid)
}

// Validate checks the output format and the highlight settings.
func (c Config) Validate() error {
	if _, err := render.ParseFormat(c.Format); err != nil {
		return err
	}
	if len(c.Highlight.Parts) > 0 && strings.TrimSpace(c.Highlight.Class) == "" {
		return errors.New("highlight.class must not be empty when highlight.parts is set")
	}
	return nil
}

// Highlighter returns the filter configured by the highlight section.
func (c Config) Highlighter() filters.Highlighter {
	return filters.Highlighter{Parts: c.Highlight.Parts, Class: c.Highlight.Class}
}
