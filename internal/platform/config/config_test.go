package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newTestViper(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendPostgres, cfg.StoreBackend)
	assert.Equal(t, BackendPostgres, cfg.SequenceBackend)
	assert.Equal(t, "PAY", cfg.PaymentNumberPrefix)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.NotEmpty(t, cfg.JWTSecret, "a development secret is filled in outside production")
}

func TestFromViper_Overrides(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{
		"STORE_BACKEND":         "MEMORY",
		"SEQUENCE_BACKEND":      "redis",
		"REDIS_DB":              3,
		"CORS_ALLOWED_ORIGINS":  "https://a.example, https://b.example ,",
		"PAYMENT_NUMBER_PREFIX": "RCPT",
	}))
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Equal(t, BackendRedis, cfg.SequenceBackend)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "RCPT", cfg.PaymentNumberPrefix)
}

func TestFromViper_Invalid(t *testing.T) {
	_, err := fromViper(newTestViper(map[string]any{"STORE_BACKEND": "mongo"}))
	assert.Error(t, err)

	_, err = fromViper(newTestViper(map[string]any{"SEQUENCE_BACKEND": "etcd"}))
	assert.Error(t, err)

	_, err = fromViper(newTestViper(map[string]any{"STORE_BACKEND": "memory"}))
	assert.Error(t, err, "postgres sequence needs the postgres store")

	_, err = fromViper(newTestViper(map[string]any{"CORS_ALLOWED_ORIGINS": " , "}))
	assert.Error(t, err)

	_, err = fromViper(newTestViper(map[string]any{"IS_PRODUCTION": true}))
	assert.Error(t, err, "production requires a JWT secret")
}
