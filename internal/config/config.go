package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"typoscout/internal/suggest"

	"github.com/bmatcuk/doublestar/v4"
)

type Config struct {
	ConfidenceThreshold float64
	MaxCandidates       int
	MinTokenLength      int
	DictionaryPath      string
	CustomWords         []string
	CheckExtensions     []string
	IgnoredFiles        []string
	IgnoredPaths        []string
	IgnoredAuthors      []string
	IgnoredIdentifiers  []string
	MaxFileSize         int
	MaxConcurrentBlame  int
	CacheResults        bool
	CustomSettings      map[string]string
}

func NewConfig() *Config {
	return &Config{
		ConfidenceThreshold: 0.5,
		MaxCandidates:       3,
		MinTokenLength:      3,
		DictionaryPath:      "",
		CustomWords:         []string{},
		CheckExtensions: []string{
			".go", ".js", ".ts", ".jsx", ".tsx", ".py", ".java",
			".rb", ".rs", ".c", ".h", ".cpp", ".cs", ".php",
		},
		IgnoredFiles:       []string{},
		IgnoredPaths:       []string{"node_modules", "vendor", "dist", "build", ".git", "testdata"},
		IgnoredAuthors:     []string{},
		IgnoredIdentifiers: []string{},
		MaxFileSize:        5000,
		MaxConcurrentBlame: 4,
		CacheResults:       true,
		CustomSettings:     make(map[string]string),
	}
}

func LoadConfig() (*Config, error) {
	config := NewConfig()

	// Look for config files in order of preference
	configFiles := []string{
		".typoscout.rc",
		".typoscout.config",
		"typoscout.config",
		".typoscout",
	}

	var configFile string
	for _, file := range configFiles {
		if _, err := os.Stat(file); err == nil {
			configFile = file
			break
		}
	}

	if configFile == "" {
		return config, nil // No config file found, return default config
	}

	fmt.Printf("🔎 Using config file: %s\n", configFile)
	return parseConfigFile(configFile, config)
}

func LoadConfigFromFile(filename string) (*Config, error) {
	config := NewConfig()
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("config file not found: %s", filename)
	}
	return parseConfigFile(filename, config)
}

func parseConfigFile(filename string, config *Config) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return config, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.Contains(line, "=") {
			parts := strings.SplitN(line, "=", 2)
			if len(parts) == 2 {
				key := strings.TrimSpace(parts[0])
				value := strings.TrimSpace(parts[1])
				value = strings.Trim(value, `"'`)

				if err := config.parseKeyValue(key, value); err != nil {
					fmt.Printf("Warning: Line %d: %v\n", lineNum, err)
				}
			}
		}
	}

	return config, scanner.Err()
}

func (c *Config) parseKeyValue(key, value string) error {
	switch key {
	case "confidence-threshold":
		threshold, err := strconv.ParseFloat(value, 64)
		if err != nil || threshold < 0 || threshold > 1 {
			return fmt.Errorf("invalid confidence-threshold value: %s (want a float in [0,1])", value)
		}
		c.ConfidenceThreshold = threshold
	case "max-candidates":
		candidates, err := strconv.Atoi(value)
		if err != nil || candidates <= 0 {
			return fmt.Errorf("invalid max-candidates value: %s (want a positive integer)", value)
		}
		c.MaxCandidates = candidates
	case "min-token-length":
		if length, err := strconv.Atoi(value); err == nil && length > 0 {
			c.MinTokenLength = length
		} else {
			return fmt.Errorf("invalid min-token-length value: %s", value)
		}
	case "dictionary":
		c.DictionaryPath = value
	case "custom-words":
		c.CustomWords = append(c.CustomWords, parseList(value)...)
	case "check-extensions":
		c.CheckExtensions = parseList(value)
	case "ignore-files":
		c.IgnoredFiles = append(c.IgnoredFiles, parseList(value)...)
	case "ignore-paths":
		c.IgnoredPaths = append(c.IgnoredPaths, parseList(value)...)
	case "ignore-authors":
		c.IgnoredAuthors = append(c.IgnoredAuthors, parseList(value)...)
	case "ignore-identifiers":
		c.IgnoredIdentifiers = append(c.IgnoredIdentifiers, parseList(value)...)
	case "max-file-size":
		if size, err := strconv.Atoi(value); err == nil {
			c.MaxFileSize = size
		} else {
			return fmt.Errorf("invalid max-file-size value: %s", value)
		}
	case "max-concurrent-blame":
		if concurrent, err := strconv.Atoi(value); err == nil {
			c.MaxConcurrentBlame = concurrent
		} else {
			return fmt.Errorf("invalid max-concurrent-blame value: %s", value)
		}
	case "cache-results":
		c.CacheResults = strings.ToLower(value) == "true"
	default:
		c.CustomSettings[key] = value
	}
	return nil
}

func parseList(value string) []string {
	items := strings.Split(value, ",")
	var result []string

	for _, item := range items {
		cleaned := strings.TrimSpace(item)
		if cleaned != "" {
			result = append(result, cleaned)
		}
	}

	return result
}

// Options returns the suggestion filter knobs configured here.
func (c *Config) Options() suggest.Options {
	return suggest.Options{
		ConfidenceThreshold: c.ConfidenceThreshold,
		MaxCandidates:       c.MaxCandidates,
	}
}

// ShouldCheckFile reports whether filePath has one of the checked source
// extensions and is not ignored.
func (c *Config) ShouldCheckFile(filePath string) bool {
	if c.ShouldIgnoreFile(filePath) {
		return false
	}
	for _, ext := range c.CheckExtensions {
		if strings.HasSuffix(strings.ToLower(filePath), strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

func (c *Config) ShouldIgnoreFile(filePath string) bool {
	// Check if file is too large
	if c.MaxFileSize > 0 {
		if info, err := os.Stat(filePath); err == nil {
			if info.Size() > int64(c.MaxFileSize*1024) { // MaxFileSize is in KB
				return true
			}
		}
	}

	// Check against ignored file patterns (doublestar globs)
	for _, pattern := range c.IgnoredFiles {
		if matched, _ := doublestar.Match(pattern, filepath.Base(filePath)); matched {
			return true
		}
		if matched, _ := doublestar.Match(pattern, filepath.ToSlash(filePath)); matched {
			return true
		}
		if strings.Contains(filePath, pattern) {
			return true
		}
	}

	// Check against ignored paths
	for _, pattern := range c.IgnoredPaths {
		if strings.Contains(filePath, pattern) {
			return true
		}
	}

	return false
}

func (c *Config) ShouldIgnoreAuthor(email string, name string) bool {
	for _, ignored := range c.IgnoredAuthors {
		if strings.EqualFold(ignored, email) || strings.EqualFold(ignored, name) {
			return true
		}
		if strings.Contains(strings.ToLower(email), strings.ToLower(ignored)) {
			return true
		}
		if strings.Contains(strings.ToLower(name), strings.ToLower(ignored)) {
			return true
		}
	}
	return false
}

func (c *Config) ShouldIgnoreIdentifier(name string) bool {
	for _, ignored := range c.IgnoredIdentifiers {
		if strings.EqualFold(ignored, name) {
			return true
		}
	}
	return false
}

func (c *Config) GetConcurrency() int {
	if c.MaxConcurrentBlame > 0 {
		return c.MaxConcurrentBlame
	}
	return 2 // Default
}

func GenerateConfigFile(filename string) error {
	if filename == "" {
		filename = ".typoscout.rc"
	}

	content := `# TypoScout Configuration File 🔎
# Scout your identifiers for typos
# Lines starting with # are comments

# Drop correction candidates scored below this confidence (0..1)
confidence-threshold = 0.5

# Ranked correction candidates kept per sub-token
max-candidates = 3

# Sub-tokens shorter than this are never flagged
min-token-length = 3

# Optional external dictionary ("word count" per line); merged with the
# built-in word list
dictionary = ""

# Project vocabulary that must never be flagged
custom-words = "api,url,auth,oauth,async,await,json,xml,css,html,dom,ui,ux"

# Source extensions to scan for identifiers
check-extensions = ".go,.js,.ts,.jsx,.tsx,.py,.java,.rb,.rs"

# Ignore specific files (doublestar globs)
ignore-files = "*_test.go,*.spec.js,*.d.ts,**/generated/**"

# Ignore specific file paths
ignore-paths = "node_modules,vendor,dist,build,.git,testdata"

# Ignore specific authors (email or name patterns)
ignore-authors = "bot@company.com,dependabot,renovate,github-actions"

# Identifiers that must never be flagged, whatever they split into
ignore-identifiers = ""

# Maximum file size to analyze (in KB, 0 = no limit)
max-file-size = 5000

# Maximum concurrent git blame operations
max-concurrent-blame = 4

# Cache git blame results for better performance
cache-results = true

# Custom project-specific settings
project-name = "My Project"
team-name = "Development Team"
`

	return os.WriteFile(filename, []byte(content), 0644)
}

func (c *Config) PrintSummary() {
	fmt.Printf("🔎 Configuration Summary:\n")
	fmt.Printf("  • Confidence threshold: %.2f\n", c.ConfidenceThreshold)
	fmt.Printf("  • Max candidates per token: %d\n", c.MaxCandidates)
	fmt.Printf("  • Min token length: %d\n", c.MinTokenLength)
	fmt.Printf("  • Checked extensions: %d\n", len(c.CheckExtensions))
	fmt.Printf("  • Custom words: %d\n", len(c.CustomWords))
	fmt.Printf("  • Ignored files: %d patterns\n", len(c.IgnoredFiles))
	fmt.Printf("  • Ignored authors: %d patterns\n", len(c.IgnoredAuthors))
	fmt.Printf("  • Max concurrent blame: %d\n", c.MaxConcurrentBlame)
	fmt.Printf("  • Cache results: %t\n", c.CacheResults)

	if c.DictionaryPath != "" {
		fmt.Printf("  • Dictionary: %s\n", c.DictionaryPath)
	}
	if c.MaxFileSize > 0 {
		fmt.Printf("  • Max file size: %d KB\n", c.MaxFileSize)
	}
}
