package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"confluencer/internal/config"
)

func TestConfigureCommandPrint(t *testing.T) {
	setupTest(t)

	out, err := runCommand(t, "configure", "--non-interactive", "--print")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for _, want := range []string{"base_url: https://test.atlassian.net/wiki", "username: test@example.com", "space_key: DS"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in printed YAML, got %q", want, out)
		}
	}
}

func TestConfigureCommandNonInteractiveWrite(t *testing.T) {
	setupTest(t)

	out, err := runCommand(t, "configure", "--non-interactive", "--print=false", "--yes",
		"--set", "space_key=OPS", "--set", "space_name=Operations")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(out, "Configuration saved to") {
		t.Errorf("Expected save confirmation, got %q", out)
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		t.Fatalf("Expected written config to load, got %v", err)
	}
	if cfg.Confluence.SpaceKey != "OPS" {
		t.Errorf("Expected space_key OPS, got %q", cfg.Confluence.SpaceKey)
	}
	if cfg.Confluence.SpaceName != "Operations" {
		t.Errorf("Expected space_name Operations, got %q", cfg.Confluence.SpaceName)
	}
	if cfg.Confluence.BaseURL != "https://test.atlassian.net/wiki" {
		t.Errorf("Expected base_url preserved, got %q", cfg.Confluence.BaseURL)
	}
}

func TestApplySetOperations(t *testing.T) {
	cfg := &config.Config{}
	sets := []string{
		"base_url=https://example.atlassian.net/wiki",
		"username=me",
		"api_token=secret",
		"space_key=DS",
		"space_name=Data Science",
	}
	if err := applySetOperations(cfg, sets); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Confluence.BaseURL != "https://example.atlassian.net/wiki" {
		t.Errorf("Unexpected base_url %q", cfg.Confluence.BaseURL)
	}
	if cfg.Confluence.SpaceName != "Data Science" {
		t.Errorf("Unexpected space_name %q", cfg.Confluence.SpaceName)
	}
}

func TestApplySetOperationsUnknownField(t *testing.T) {
	err := applySetOperations(&config.Config{}, []string{"color=blue"})
	if err == nil || !strings.Contains(err.Error(), "unknown config field") {
		t.Fatalf("Expected unknown field error, got %v", err)
	}
}

func TestApplySetOperationsMalformed(t *testing.T) {
	err := applySetOperations(&config.Config{}, []string{"base_url"})
	if err == nil || !strings.Contains(err.Error(), "expected key=value") {
		t.Fatalf("Expected malformed set error, got %v", err)
	}
}

func TestLoadOrInitConfigMissingFile(t *testing.T) {
	cfg, err := loadOrInitConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if cfg.Confluence.BaseURL != "" {
		t.Errorf("Expected empty config, got %+v", cfg)
	}
}

func TestWriteConfigFileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")
	if err := writeConfigFile(path, []byte("confluence: {}\n")); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected file to exist, got %v", err)
	}
	if string(data) != "confluence: {}\n" {
		t.Errorf("Unexpected file contents %q", data)
	}
}
