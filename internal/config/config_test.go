package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.ConfidenceThreshold != 0.5 {
		t.Errorf("expected default confidence threshold 0.5, got %f", cfg.ConfidenceThreshold)
	}
	if cfg.MaxCandidates != 3 {
		t.Errorf("expected default max candidates 3, got %d", cfg.MaxCandidates)
	}
	if cfg.MinTokenLength != 3 {
		t.Errorf("expected default min token length 3, got %d", cfg.MinTokenLength)
	}
	if len(cfg.CheckExtensions) == 0 {
		t.Error("expected default check extensions to be non-empty")
	}
	if !cfg.CacheResults {
		t.Error("expected cache results to default to true")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, ".typoscout.rc")

	content := `# test config
confidence-threshold = 0.25
max-candidates = 5
min-token-length = 2
custom-words = "grpc, protobuf"
ignore-authors = "bot@example.com"
ignore-identifiers = "utf,ascii"
cache-results = false
project-name = "Test Project"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfigFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadConfigFromFile failed: %v", err)
	}

	if cfg.ConfidenceThreshold != 0.25 {
		t.Errorf("expected confidence threshold 0.25, got %f", cfg.ConfidenceThreshold)
	}
	if cfg.MaxCandidates != 5 {
		t.Errorf("expected max candidates 5, got %d", cfg.MaxCandidates)
	}
	if cfg.MinTokenLength != 2 {
		t.Errorf("expected min token length 2, got %d", cfg.MinTokenLength)
	}
	if len(cfg.CustomWords) != 2 || cfg.CustomWords[0] != "grpc" || cfg.CustomWords[1] != "protobuf" {
		t.Errorf("expected custom words [grpc protobuf], got %v", cfg.CustomWords)
	}
	if cfg.CacheResults {
		t.Error("expected cache results to be false")
	}
	if cfg.CustomSettings["project-name"] != "Test Project" {
		t.Errorf("expected custom setting project-name, got %q", cfg.CustomSettings["project-name"])
	}
}

func TestLoadConfigFromFileMissing(t *testing.T) {
	if _, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "nope.rc")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestParseKeyValueValidation(t *testing.T) {
	cfg := NewConfig()

	if err := cfg.parseKeyValue("confidence-threshold", "1.5"); err == nil {
		t.Error("expected error for out-of-range confidence-threshold")
	}
	if cfg.ConfidenceThreshold != 0.5 {
		t.Errorf("bad value must not overwrite threshold, got %f", cfg.ConfidenceThreshold)
	}

	if err := cfg.parseKeyValue("max-candidates", "0"); err == nil {
		t.Error("expected error for non-positive max-candidates")
	}
	if err := cfg.parseKeyValue("max-candidates", "abc"); err == nil {
		t.Error("expected error for non-numeric max-candidates")
	}
	if err := cfg.parseKeyValue("min-token-length", "-1"); err == nil {
		t.Error("expected error for negative min-token-length")
	}
}

func TestOptions(t *testing.T) {
	cfg := NewConfig()
	cfg.ConfidenceThreshold = 0.2
	cfg.MaxCandidates = 2

	opts := cfg.Options()
	if opts.ConfidenceThreshold != 0.2 || opts.MaxCandidates != 2 {
		t.Errorf("Options() did not carry config values: %+v", opts)
	}
}

func TestShouldCheckFile(t *testing.T) {
	cfg := NewConfig()
	cfg.CheckExtensions = []string{".go", ".py"}

	if !cfg.ShouldCheckFile("cmd/server.go") {
		t.Error("expected .go file to be checked")
	}
	if !cfg.ShouldCheckFile("scripts/deploy.PY") {
		t.Error("extension match should be case-insensitive")
	}
	if cfg.ShouldCheckFile("README.md") {
		t.Error("expected .md file to be skipped")
	}
	if cfg.ShouldCheckFile("vendor/lib/util.go") {
		t.Error("expected vendored file to be skipped")
	}
}

func TestShouldIgnoreFile(t *testing.T) {
	cfg := NewConfig()
	cfg.IgnoredFiles = []string{"*_test.go", "**/generated/**"}

	if !cfg.ShouldIgnoreFile("internal/parser/parser_test.go") {
		t.Error("expected *_test.go pattern to match")
	}
	if !cfg.ShouldIgnoreFile("api/generated/client.go") {
		t.Error("expected doublestar pattern to match nested path")
	}
	if !cfg.ShouldIgnoreFile("node_modules/pkg/index.js") {
		t.Error("expected node_modules path to be ignored")
	}
	if cfg.ShouldIgnoreFile("internal/parser/parser.go") {
		t.Error("did not expect regular source file to be ignored")
	}
}

func TestShouldIgnoreAuthor(t *testing.T) {
	cfg := NewConfig()
	cfg.IgnoredAuthors = []string{"bot@company.com", "dependabot"}

	if !cfg.ShouldIgnoreAuthor("bot@company.com", "Bot") {
		t.Error("expected exact email match to be ignored")
	}
	if !cfg.ShouldIgnoreAuthor("dependabot[bot]@users.noreply.github.com", "dependabot[bot]") {
		t.Error("expected partial match to be ignored")
	}
	if cfg.ShouldIgnoreAuthor("dev@company.com", "Jane Developer") {
		t.Error("did not expect regular author to be ignored")
	}
}

func TestShouldIgnoreIdentifier(t *testing.T) {
	cfg := NewConfig()
	cfg.IgnoredIdentifiers = []string{"utf", "lhs"}

	if !cfg.ShouldIgnoreIdentifier("UTF") {
		t.Error("expected identifier match to be case-insensitive")
	}
	if cfg.ShouldIgnoreIdentifier("utfCodec") {
		t.Error("identifier matching must be exact, not substring")
	}
}

func TestGenerateConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "test.rc")

	if err := GenerateConfigFile(configPath); err != nil {
		t.Fatalf("GenerateConfigFile failed: %v", err)
	}

	cfg, err := LoadConfigFromFile(configPath)
	if err != nil {
		t.Fatalf("generated config failed to parse: %v", err)
	}
	if cfg.ConfidenceThreshold != 0.5 {
		t.Errorf("generated config should carry defaults, got threshold %f", cfg.ConfidenceThreshold)
	}
	if len(cfg.CustomWords) == 0 {
		t.Error("generated config should list sample custom words")
	}
}
