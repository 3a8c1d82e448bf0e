package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("API_PREFIX", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("AUTH_ENABLED", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("MAX_UPLOAD_SIZE_MB", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "/api", cfg.Server.APIPrefix)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, int64(10*1024*1024), cfg.Storage.MaxUploadSize)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("API_PREFIX", "v1/")
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://shop.example.com, https://admin.example.com")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("AUTH_ENABLED", "TRUE")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/v1", cfg.Server.APIPrefix)
	assert.True(t, cfg.Database.IsMemory())
	assert.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
	assert.True(t, cfg.Auth.Enabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:   "development defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Database.Driver = "mysql" },
			wantErr: true,
		},
		{
			name: "production without db password",
			mutate: func(c *Config) {
				c.Environment = "production"
				c.Auth.SecretKey = "s3cr3t"
			},
			wantErr: true,
		},
		{
			name: "production with default jwt secret",
			mutate: func(c *Config) {
				c.Environment = "production"
				c.Database.Password = "pw"
				c.Auth.Enabled = true
			},
			wantErr: true,
		},
		{
			name: "production memory store",
			mutate: func(c *Config) {
				c.Environment = "production"
				c.Database.Driver = "memory"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Environment: "development",
				Database:    DatabaseConfig{Driver: "postgres"},
				Auth:        AuthConfig{SecretKey: defaultJWTSecret},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5433", User: "u", Password: "p", Database: "catalog", SSLMode: "require"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=catalog sslmode=require", d.DSN())
}
