package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed models.yaml
var modelsYAML []byte

type Config struct {
	AI       AIConfig
	Storage  StorageConfig
	Server   ServerConfig
	Convert  ConvertConfig
	Database DatabaseConfig
	Prices   PricesConfig
}

type AIConfig struct {
	Provider     string // "openai", "groq" or "gemini" (default openai)
	OpenAIToken  string
	OpenAIModel  string // overrides the provider default model
	GroqAPIKey   string
	GeminiAPIKey string
}

type StorageConfig struct {
	Dir string // project metadata and generated output (default ~/.bookpress)
}

type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string // extra CORS origins; localhost is always allowed
}

type ConvertConfig struct {
	PandocPath string // overrides PATH lookup
	PDFEngine  string // forces a specific engine instead of auto-detection
}

type DatabaseConfig struct {
	URL string // optional PostgreSQL URL; the JSON file store is used when empty
}

type PricesConfig struct {
	Models map[string]ModelPricing `yaml:"models"`
}

type ModelPricing struct {
	Standard RequestPricing `yaml:"standard"`
	Batch    RequestPricing `yaml:"batch"`
}

type RequestPricing struct {
	Input  float64 `yaml:"input"`
	Output float64 `yaml:"output"`
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envList reads a comma-separated environment variable into a slice,
// trimming whitespace and dropping empty entries. Returns nil when unset.
func envList(key string) []string {
	var out []string
	for part := range strings.SplitSeq(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// defaultStorageDir returns ~/.bookpress, falling back to a relative
// directory when the home directory cannot be resolved.
func defaultStorageDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bookpress"
	}
	return filepath.Join(home, ".bookpress")
}

func Load() *Config {
	var prices PricesConfig
	if err := yaml.Unmarshal(modelsYAML, &prices); err != nil {
		// Embedded file, so this should never happen in practice.
		panic("failed to unmarshal embedded models.yaml: " + err.Error())
	}

	provider := os.Getenv("BOOKPRESS_AI_PROVIDER")
	if provider == "" {
		provider = "openai"
	}

	storageDir := os.Getenv("BOOKPRESS_STORAGE_DIR")
	if storageDir == "" {
		storageDir = defaultStorageDir()
	}

	return &Config{
		AI: AIConfig{
			Provider:     provider,
			OpenAIToken:  os.Getenv("OPENAI_TOKEN"),
			OpenAIModel:  os.Getenv("OPENAI_MODEL"),
			GroqAPIKey:   os.Getenv("GROQ_API_KEY"),
			GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		},
		Storage: StorageConfig{
			Dir: storageDir,
		},
		Server: ServerConfig{
			Host:           os.Getenv("BOOKPRESS_HOST"),
			Port:           envInt("BOOKPRESS_PORT", 8080),
			AllowedOrigins: envList("BOOKPRESS_ALLOWED_ORIGINS"),
		},
		Convert: ConvertConfig{
			PandocPath: os.Getenv("PANDOC_PATH"),
			PDFEngine:  os.Getenv("PDF_ENGINE"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Prices: prices,
	}
}

// GetModelPricing returns pricing for a specific model, with fallback defaults
func (c *Config) GetModelPricing(modelName string) ModelPricing {
	if pricing, ok := c.Prices.Models[modelName]; ok {
		return pricing
	}
	// Return zero pricing if model not found
	return ModelPricing{}
}
