package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"identity", "-a", ":7777", "-s", "flag-secret", "-t", "15"}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":7777", cfg.EndpointAddr)
	assert.Equal(t, "flag-secret", cfg.SecretKey)
	assert.Equal(t, 15*time.Minute, cfg.TokenValidityDuration)
}

func TestParseFlags_IgnoresForeignFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"identity", "-test.v", "-unknown", "x", "-a=:6666"}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":6666", cfg.EndpointAddr)
}
