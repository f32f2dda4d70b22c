package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	LLMProvider      string // gemini, anthropic, openai, ollama
	GeminiKey        string
	GeminiBaseURL    string
	AnthropicKey     string // API key (X-Api-Key header)
	AnthropicToken   string // OAuth token (Authorization: Bearer header)
	OpenAIKey        string
	LLMModel         string
	OllamaBaseURL    string
	DatabasePath     string
	HTTPAddr         string
	OwnerName        string
	ContactEmail     string
	MaxContextTokens int
}

func Load() *Config {
	_ = godotenv.Load() // ignore error if no .env

	return &Config{
		LLMProvider:      envOr("LLM_PROVIDER", "gemini"),
		GeminiKey:        os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL:    os.Getenv("GEMINI_BASE_URL"),
		AnthropicKey:     os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicToken:   os.Getenv("ANTHROPIC_AUTH_TOKEN"),
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		LLMModel:         os.Getenv("LLM_MODEL"),
		OllamaBaseURL:    envOr("OLLAMA_BASE_URL", "http://localhost:11434/v1"),
		DatabasePath:     envOr("DATABASE_PATH", "./portfolio.db"),
		HTTPAddr:         envOr("HTTP_ADDR", ":3000"),
		OwnerName:        envOr("OWNER_NAME", "Muhammad Hamid Raza"),
		ContactEmail:     envOr("CONTACT_EMAIL", "hamidsidtechno@gmail.com"),
		MaxContextTokens: envInt("MAX_CONTEXT_TOKENS", 64000),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
