package config

import (
	"os"
	"testing"
	"time"
)

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			// Setup: set environment variable if provided
			if tt.envValue != "" {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key) // cleanup after test
			} else {
				os.Unsetenv(tt.key) // ensure it's not set
			}

			// Execute
			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			// Assert
			if result != tt.expected {
				t.Errorf("GetEnvWithDefault() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestGetEnvAsType(t *testing.T) {
	t.Run("int value from environment", func(t *testing.T) {
		os.Setenv("TTL_KEY", "45")
		defer os.Unsetenv("TTL_KEY")

		if got := GetEnvAsType("TTL_KEY", 30); got != 45 {
			t.Errorf("GetEnvAsType() = %d, expected 45", got)
		}
	})

	t.Run("int default when unset", func(t *testing.T) {
		os.Unsetenv("TTL_KEY")

		if got := GetEnvAsType("TTL_KEY", 30); got != 30 {
			t.Errorf("GetEnvAsType() = %d, expected default 30", got)
		}
	})

	t.Run("int default when not a number", func(t *testing.T) {
		os.Setenv("TTL_KEY", "soon")
		defer os.Unsetenv("TTL_KEY")

		if got := GetEnvAsType("TTL_KEY", 30); got != 30 {
			t.Errorf("GetEnvAsType() = %d, expected default 30", got)
		}
	})

	t.Run("bool value from environment", func(t *testing.T) {
		os.Setenv("FLAG_KEY", "true")
		defer os.Unsetenv("FLAG_KEY")

		if got := GetEnvAsType("FLAG_KEY", false); !got {
			t.Error("GetEnvAsType() = false, expected true")
		}
	})
}

func TestLoadConfig(t *testing.T) {
	// Helper function to set multiple env vars
	setTestEnv := func() {
		os.Setenv("APP_PORT", "9000")
		os.Setenv("APP_HOST", "0.0.0.0")
		os.Setenv("LOG_LEVEL", "debug")
		os.Setenv("JWT_SECRET", "super_secret_jwt_key_with_enough_length")
		os.Setenv("ACCESS_TOKEN_TTL_MINUTES", "15")
		os.Setenv("REFRESH_TOKEN_TTL_HOURS", "24")
	}

	// Helper function to cleanup env vars
	cleanupTestEnv := func() {
		vars := []string{
			"APP_PORT", "APP_HOST", "LOG_LEVEL", "JWT_SECRET",
			"ACCESS_TOKEN_TTL_MINUTES", "REFRESH_TOKEN_TTL_HOURS",
			"DB_DRIVER",
		}
		for _, v := range vars {
			os.Unsetenv(v)
		}
	}

	t.Run("successful config load with all env vars", func(t *testing.T) {
		setTestEnv()
		defer cleanupTestEnv()

		config, err := LoadConfig()

		// Should not return error
		if err != nil {
			t.Fatalf("LoadConfig() returned error: %v", err)
		}

		// Verify all values
		if config.Port != 9000 {
			t.Errorf("Port = %d, expected 9000", config.Port)
		}
		if config.Host != "0.0.0.0" {
			t.Errorf("Host = %s, expected 0.0.0.0", config.Host)
		}
		if config.LogLevel != "debug" {
			t.Errorf("LogLevel = %s, expected debug", config.LogLevel)
		}
		if config.AccessTokenTTL() != 15*time.Minute {
			t.Errorf("AccessTokenTTL = %s, expected 15m", config.AccessTokenTTL())
		}
		if config.RefreshTokenTTL() != 24*time.Hour {
			t.Errorf("RefreshTokenTTL = %s, expected 24h", config.RefreshTokenTTL())
		}
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("APP_PORT", "not_a_number")
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err == nil {
			t.Error("LoadConfig() should return error when APP_PORT is invalid")
		}
		if config != nil {
			t.Error("Config should be nil when error occurs")
		}
	})

	t.Run("should fail with short JWT secret", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("JWT_SECRET", "short")
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err == nil {
			t.Error("LoadConfig() should return error when JWT_SECRET is too short")
		}
		if config != nil {
			t.Error("Config should be nil when error occurs")
		}
	})

	t.Run("should fail with unknown database driver", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("DB_DRIVER", "oracle")
		defer cleanupTestEnv()

		_, err := LoadConfig()

		if err == nil {
			t.Error("LoadConfig() should return error for unsupported DB_DRIVER")
		}
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err != nil {
			t.Fatalf("LoadConfig() returned unexpected error: %v", err)
		}

		// Check defaults
		if config.Port != 8080 {
			t.Errorf("Port = %d, expected default 8080", config.Port)
		}
		if config.Host != "localhost" {
			t.Errorf("Host = %s, expected default localhost", config.Host)
		}
		if config.DBDriver != "sqlite" {
			t.Errorf("DBDriver = %s, expected default sqlite", config.DBDriver)
		}
		if config.LogLevel != "info" {
			t.Errorf("LogLevel = %s, expected default info", config.LogLevel)
		}
		if config.AccessTokenTTL() != 30*time.Minute {
			t.Errorf("AccessTokenTTL = %s, expected default 30m", config.AccessTokenTTL())
		}
	})
}

// Benchmark tests (optional but good practice)
func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
