package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PUBS_INPUT", "PUBS_TEMPLATE", "PUBS_OUTPUT", "PUBS_FORMAT", "PUBS_CHARSET", "PUBS_LOG_LEVEL", "PUBS_SKIP_INVALID"} {
		t.Setenv(k, "")
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "publist.yaml")
	content := "input: refs.bib\nformat: markdown\nskip_invalid: true\nhighlight:\n  parts: [Doe]\n  class: me\n"
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PUBS_INPUT", "env.bib")
	t.Setenv("PUBS_SKIP_INVALID", "false")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Input != "env.bib" || cfg.Format != "markdown" || cfg.SkipInvalid {
		t.Fatalf("layering: %+v", cfg)
	}
	if cfg.Template != "" || cfg.Title != "Publications" {
		t.Fatalf("unset keys keep defaults: %+v", cfg)
	}
	if h := cfg.Highlighter(); !reflect.DeepEqual(h.Parts, []string{"Doe"}) || h.Class != "me" {
		t.Fatalf("highlighter: %+v", h)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "publist.yaml")
	if err := os.WriteFile(p, []byte("inptu: typo.bib\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(p); err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Fatalf("expected unknown-key error, got %v", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "publist.yaml")
	if err := os.WriteFile(p, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if cfg, err := Load(p); err != nil || cfg.Format != "html" {
		t.Fatalf("empty file: %+v %v", cfg, err)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	cfg.Format = "pdf"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("pdf format accepted")
	}
	cfg = Default()
	cfg.Highlight.Class = " "
	if err := cfg.Validate(); err == nil {
		t.Fatalf("empty class accepted")
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("PUBS_TEST_S", "  v ")
	t.Setenv("PUBS_TEST_B", "nope")
	if got := EnvString("PUBS_TEST_S", "d"); got != "v" {
		t.Fatalf("EnvString: %q", got)
	}
	if got := EnvString("PUBS_TEST_UNSET", "d"); got != "d" {
		t.Fatalf("EnvString default: %q", got)
	}
	if got := EnvBool("PUBS_TEST_B", true); !got {
		t.Fatalf("EnvBool must fall back on parse error")
	}
}
