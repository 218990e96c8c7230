package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envFrom(map[string]string{"JWT_SECRET": "s3cret"}))
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "assignment-6", cfg.DBName)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "https://health-hub-portal.web.app", cfg.AllowedOrigin)
	assert.Equal(t, time.Hour, cfg.TokenExpiry)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(envFrom(map[string]string{
		"MONGO_URI":   "mongodb://db:27017",
		"DB_NAME":     "healthhub",
		"JWT_SECRET":  "s3cret",
		"EXPIRES_IN":  "7d",
		"PORT":        "8081",
		"CORS_ORIGIN": "http://localhost:5173",
	}))
	require.NoError(t, err)

	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "healthhub", cfg.DBName)
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "http://localhost:5173", cfg.AllowedOrigin)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenExpiry)
}

func TestFromEnvPrefersMongoDBURI(t *testing.T) {
	cfg, err := FromEnv(envFrom(map[string]string{
		"MONGODB_URI": "mongodb://primary:27017",
		"MONGO_URI":   "mongodb://fallback:27017",
		"JWT_SECRET":  "s3cret",
	}))
	require.NoError(t, err)
	assert.Equal(t, "mongodb://primary:27017", cfg.MongoURI)
}

func TestFromEnvRequiresSecret(t *testing.T) {
	_, err := FromEnv(envFrom(map[string]string{}))
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestFromEnvRejectsBadExpiry(t *testing.T) {
	_, err := FromEnv(envFrom(map[string]string{"JWT_SECRET": "x", "EXPIRES_IN": "soon"}))
	assert.Error(t, err)
}

func TestParseExpiry(t *testing.T) {
	cases := map[string]time.Duration{
		"3600": time.Hour,
		"90m":  90 * time.Minute,
		"12h":  12 * time.Hour,
		"1d":   24 * time.Hour,
		" 2d ": 48 * time.Hour,
	}
	for in, want := range cases {
		got, err := ParseExpiry(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "0", "-5", "xd", "-1h"} {
		_, err := ParseExpiry(in)
		assert.Error(t, err, in)
	}
}
