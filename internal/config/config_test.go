package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRelayRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := LoadRelay()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoadRelayDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PORTFOLIO_RELAY_PORT", "")
	t.Setenv("PORTFOLIO_MODEL_NAME", "")

	cfg, err := LoadRelay()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.ModelName)
}

func TestLoadAssistantTransportSelection(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	t.Setenv("PORTFOLIO_TRANSPORT", "direct")
	assert.Equal(t, TransportDirect, LoadAssistant().Transport)

	t.Setenv("PORTFOLIO_TRANSPORT", "mock")
	assert.Equal(t, TransportMock, LoadAssistant().Transport)

	t.Setenv("PORTFOLIO_TRANSPORT", "")
	assert.Equal(t, TransportRelay, LoadAssistant().Transport)

	t.Setenv("PORTFOLIO_TRANSPORT", "something-else")
	assert.Equal(t, TransportRelay, LoadAssistant().Transport)
}

func TestLoadAssistantDefaults(t *testing.T) {
	t.Setenv("PORTFOLIO_TRANSPORT", "")
	t.Setenv("PORTFOLIO_RELAY_URL", "")
	t.Setenv("PORTFOLIO_GITHUB_USER", "")

	cfg := LoadAssistant()
	assert.Equal(t, "http://localhost:3001", cfg.RelayURL)
	assert.Equal(t, "udityamerit", cfg.GitHubUser)
}
