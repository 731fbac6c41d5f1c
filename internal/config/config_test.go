package config

import (
	"errors"
	"os"
	"testing"
	"time"
)

func TestGetEnvString(t *testing.T) {
	key := "TEST_ENV_STRING"
	val := "test_value"
	os.Setenv(key, val)
	defer os.Unsetenv(key)

	if got := getEnvString(key, "default"); got != val {
		t.Errorf("getEnvString() = %q, want %q", got, val)
	}

	if got := getEnvString("NON_EXISTENT", "default"); got != "default" {
		t.Errorf("getEnvString() = %q, want %q", got, "default")
	}
}

func TestGetEnvDuration(t *testing.T) {
	key := "TEST_ENV_DURATION"

	tests := []struct {
		name       string
		envVal     string
		defaultVal time.Duration
		want       time.Duration
	}{
		{"ValidDuration", "1m", time.Second, time.Minute},
		{"ValidSeconds", "60", time.Second, 60 * time.Second},
		{"Invalid", "invalid", time.Second, time.Second},
		{"Empty", "", time.Second, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envVal != "" {
				os.Setenv(key, tt.envVal)
				defer os.Unsetenv(key)
			} else {
				os.Unsetenv(key)
			}

			if got := getEnvDuration(key, tt.defaultVal); got != tt.want {
				t.Errorf("getEnvDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadMissingCredentials(t *testing.T) {
	for _, key := range []string{"ELCOME_TOKEN_URL", "ELCOME_CLIENT_ID", "ELCOME_CLIENT_SECRET"} {
		os.Unsetenv(key)
	}

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for missing credentials")
	}

	var missing *MissingError
	if !errors.As(err, &missing) {
		t.Fatalf("Load() error = %T, want *MissingError", err)
	}
	if len(missing.Vars) != 3 {
		t.Errorf("MissingError.Vars = %v, want all three credential vars", missing.Vars)
	}
}

func TestLoadDefaults(t *testing.T) {
	os.Setenv("ELCOME_TOKEN_URL", "https://auth.example.com/token")
	os.Setenv("ELCOME_CLIENT_ID", "cid")
	os.Setenv("ELCOME_CLIENT_SECRET", "csec")
	defer func() {
		os.Unsetenv("ELCOME_TOKEN_URL")
		os.Unsetenv("ELCOME_CLIENT_ID")
		os.Unsetenv("ELCOME_CLIENT_SECRET")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.UsageURL != defaultUsageURL {
		t.Errorf("UsageURL = %q, want default", cfg.UsageURL)
	}
	if cfg.HTTPTimeout != defaultHTTPTimeout {
		t.Errorf("HTTPTimeout = %v, want %v", cfg.HTTPTimeout, defaultHTTPTimeout)
	}
	if cfg.ListenAddr != defaultListenAddr {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, defaultListenAddr)
	}
	if cfg.Scope != "" {
		t.Errorf("Scope = %q, want empty", cfg.Scope)
	}
}
