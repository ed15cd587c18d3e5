package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	cfg := &Config{}
	cfg.Server.Listen = ":8080"
	cfg.Server.Timeout = 30 * time.Second
	cfg.Stream.BaseURL = "https://www.reddit.com"
	cfg.LLM.Junior.Model = "gpt-4o-mini"
	cfg.LLM.Senior.Model = "o3-mini"
	return cfg
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	assert.NoError(t, VerifyAgainstEmbeddedSchema(validTestConfig()))
}

func TestVerifyAgainstEmbeddedSchema_MissingFields(t *testing.T) {
	cfg := validTestConfig()
	cfg.Server.Listen = ""
	err := VerifyAgainstEmbeddedSchema(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.listen is required")

	cfg = validTestConfig()
	cfg.Stream.BaseURL = ""
	err = VerifyAgainstEmbeddedSchema(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stream.base_url is required")

	cfg = validTestConfig()
	cfg.Examples.Endpoint = "https://critino.example.com"
	err = VerifyAgainstEmbeddedSchema(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "examples.timeout is required")
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)
	assert.NotEmpty(t, schema.Definitions)
}
