package fetcher

import (
	"testing"

	"conversationLogger/configs"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEndpoint(t *testing.T) {
	assert.Equal(t, "http://54.71.183.198:8000/api/conversations", DefaultEndpoint().URL())
}

func TestEndpointFromConfig(t *testing.T) {
	v := viper.New()
	v.Set("fetcher.scheme", "https")
	v.Set("fetcher.host", "logs.example.com")
	v.Set("fetcher.port", 8443)
	v.Set("fetcher.path", "/api/conversations")

	endpoint := EndpointFromConfig(&configs.Config{Viper: v})
	assert.Equal(t, "https://logs.example.com:8443/api/conversations", endpoint.URL())
}

func TestParseEndpoint(t *testing.T) {
	endpoint, err := ParseEndpoint("http://127.0.0.1:9000/api/conversations")
	require.NoError(t, err)
	assert.Equal(t, Endpoint{Scheme: "http", Host: "127.0.0.1", Port: 9000, Path: "/api/conversations"}, endpoint)

	endpoint, err = ParseEndpoint("http://example.com/logs")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/logs", endpoint.URL())

	_, err = ParseEndpoint("http://host:notaport/x")
	assert.Error(t, err)
}

func TestEndpointFromConfig_EmptyFallsBackToDefault(t *testing.T) {
	endpoint := EndpointFromConfig(&configs.Config{Viper: viper.New()})
	assert.Equal(t, DefaultEndpoint(), endpoint)
}
