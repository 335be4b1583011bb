package config

import "testing"

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Adapter != "fs" {
		t.Errorf("default adapter = %q, want %q", cfg.Adapter, "fs")
	}
	if cfg.Format != "json" {
		t.Errorf("default format = %q, want %q", cfg.Format, "json")
	}
	if cfg.Augment.Model != "gpt-4o-mini" {
		t.Errorf("default augment model = %q, want %q", cfg.Augment.Model, "gpt-4o-mini")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	cfg.Adapter = "redis"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown adapter should fail validation")
	}

	cfg = DefaultConfig()
	cfg.Format = "toml"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown format should fail validation")
	}
}

func TestLoad_EnvOverridesWithoutFile(t *testing.T) {
	// No config.yaml anywhere Load searches: empty CWD, XDG dir, and home.
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	t.Setenv("NOTEKEEP_ADAPTER", "badger")
	t.Setenv("NOTEKEEP_AUGMENT_API_KEY", "sk-env-only")
	t.Setenv("NOTEKEEP_AUGMENT_BASE_URL", "http://localhost:11434/v1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Adapter != "badger" {
		t.Errorf("adapter = %q, want %q", cfg.Adapter, "badger")
	}
	if cfg.Augment.APIKey != "sk-env-only" {
		t.Errorf("augment api key = %q, want %q", cfg.Augment.APIKey, "sk-env-only")
	}
	if cfg.Augment.BaseURL != "http://localhost:11434/v1" {
		t.Errorf("augment base url = %q, want %q", cfg.Augment.BaseURL, "http://localhost:11434/v1")
	}
	// Untouched keys keep their defaults.
	if cfg.Format != "json" {
		t.Errorf("format = %q, want default %q", cfg.Format, "json")
	}
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("NOTEKEEP_TEST_KEY", "sk-abc123")

	if got := expandEnv("$NOTEKEEP_TEST_KEY"); got != "sk-abc123" {
		t.Errorf("expandEnv = %q, want %q", got, "sk-abc123")
	}
	if got := expandEnv("$NOTEKEEP_UNSET_VAR_XYZ"); got != "$NOTEKEEP_UNSET_VAR_XYZ" {
		t.Errorf("unset variable should stay literal, got %q", got)
	}
	if got := expandEnv("plain"); got != "plain" {
		t.Errorf("plain string should pass through, got %q", got)
	}
}
