package config

import (
	"strings"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("WEB_APP_URL", "https://shop.example.com")
	t.Setenv("HOMEPAGE_URL", "https://example.com")
	t.Setenv("OPERATOR_CHAT_ID", "424242")
}

func TestLoadAppliesDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8000 {
		t.Fatalf("expected default port 8000, got %d", cfg.Port)
	}
	if cfg.Development() {
		t.Fatal("expected production mode by default")
	}
	if cfg.OperatorChatID != 424242 {
		t.Fatalf("unexpected operator chat id %d", cfg.OperatorChatID)
	}
}

func TestLoadRejectsMissingRequiredValues(t *testing.T) {
	// OPERATOR_CHAT_ID is numeric; zero marks it absent.
	missing := map[string]string{
		"BOT_TOKEN":        "",
		"WEB_APP_URL":      "",
		"HOMEPAGE_URL":     "",
		"OPERATOR_CHAT_ID": "0",
	}
	for key, value := range missing {
		t.Run(key, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(key, value)

			_, err := Load()
			if err == nil {
				t.Fatalf("expected error for missing %s", key)
			}
			if !strings.Contains(err.Error(), key) {
				t.Fatalf("error should name %s: %v", key, err)
			}
		})
	}
}

func TestLoadHonorsEnvironmentMode(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("NODE_ENV", "development")
	t.Setenv("PORT", "9100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Development() {
		t.Fatal("expected development mode")
	}
	if cfg.Port != 9100 {
		t.Fatalf("expected port 9100, got %d", cfg.Port)
	}
}
