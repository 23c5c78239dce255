package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestRootHelp(t *testing.T) {
	// Exercise command wiring by invoking help
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--help"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute help: %v", err)
	}
	for _, sub := range []string{"render", "normalize"} {
		if !strings.Contains(out.String(), sub) {
			t.Fatalf("help missing %s:\n%s", sub, out.String())
		}
	}
}

func TestPersistentConfigFlag(t *testing.T) {
	dir := t.TempDir()
	old, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(old) })
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PUBS_INPUT", "")
	t.Setenv("PUBS_SKIP_INVALID", "")
	t.Setenv("PUBS_LOG_LEVEL", "")
	if err := os.WriteFile("refs.yaml", []byte("- ENTRYTYPE: misc\n  ID: m1\n  title: '{Hello}'\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile("alt.yaml", []byte("input: refs.yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", "alt.yaml", "--log-level", "debug", "normalize", "--output-format", "json"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), `"title": "Hello"`) {
		t.Fatalf("output: %s", out.String())
	}
}
