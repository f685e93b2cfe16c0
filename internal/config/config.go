package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// TransportMode selects how the assistant reaches the model provider.
// Fixed at start-up, never switched per request.
type TransportMode string

const (
	TransportRelay  TransportMode = "relay"
	TransportDirect TransportMode = "direct"
	TransportMock   TransportMode = "mock"
)

// RelayConfig configures the relay service process.
type RelayConfig struct {
	Port      string
	APIKey    string
	ModelName string
}

// AssistantConfig configures the terminal chat client.
type AssistantConfig struct {
	Transport  TransportMode
	RelayURL   string
	APIKey     string
	ModelName  string
	GitHubUser string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// LoadDotEnv reads a .env file if one exists. A missing file is not an
// error; explicit environment always wins.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// LoadRelay reads the relay configuration. The provider key is the one
// secret the whole system depends on: without it the relay must not
// start.
func LoadRelay() (*RelayConfig, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set; the relay cannot start without it")
	}

	return &RelayConfig{
		Port:      getEnv("PORTFOLIO_RELAY_PORT", "3001"),
		APIKey:    apiKey,
		ModelName: getEnv("PORTFOLIO_MODEL_NAME", "gemini-2.5-flash"),
	}, nil
}

// LoadAssistant reads the chat client configuration.
func LoadAssistant() *AssistantConfig {
	var mode TransportMode
	switch getEnv("PORTFOLIO_TRANSPORT", "relay") {
	case "direct":
		mode = TransportDirect
	case "mock":
		mode = TransportMock
	default:
		mode = TransportRelay
	}

	return &AssistantConfig{
		Transport:  mode,
		RelayURL:   getEnv("PORTFOLIO_RELAY_URL", "http://localhost:3001"),
		APIKey:     os.Getenv("GEMINI_API_KEY"),
		ModelName:  getEnv("PORTFOLIO_MODEL_NAME", "gemini-2.5-flash"),
		GitHubUser: getEnv("PORTFOLIO_GITHUB_USER", "udityamerit"),
	}
}
