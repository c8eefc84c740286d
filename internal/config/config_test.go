package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "secrets.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadDefaultsAndFile(t *testing.T) {
	path := writeFile(t, `{"wifi": {"ssid": "home", "password": "hunter2"}}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Wifi.SSID != "home" || cfg.Wifi.Password != "hunter2" {
		t.Fatalf("wifi = %+v", cfg.Wifi)
	}
	if cfg.Device.Lat != 52.967658 || cfg.Device.Lon != -1.163135 {
		t.Fatalf("reference point = %v,%v", cfg.Device.Lat, cfg.Device.Lon)
	}
	if cfg.ISS.RefreshInterval != 10*time.Second {
		t.Fatalf("refresh = %s", cfg.ISS.RefreshInterval)
	}
	if cfg.HTTP.MaxAttempts != 1 {
		t.Fatalf("max attempts = %d, want 1", cfg.HTTP.MaxAttempts)
	}
	if cfg.Cache.Backend != "off" || cfg.Label.MaxLen != 13 {
		t.Fatalf("cache=%q label=%d", cfg.Cache.Backend, cfg.Label.MaxLen)
	}
	if len(cfg.Device.Periph.ButtonPins) != 5 {
		t.Fatalf("button pins = %v", cfg.Device.Periph.ButtonPins)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeFile(t, `{"device": {"lat": 10.5}, "iss": {"refresh_interval": "20s"}}`)
	t.Setenv("ISS_REFRESH_INTERVAL", "30s")
	t.Setenv("GEOCODE_API_KEY", "k123")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Device.Lat != 10.5 {
		t.Fatalf("lat = %v", cfg.Device.Lat)
	}
	if cfg.ISS.RefreshInterval != 30*time.Second {
		t.Fatalf("refresh = %s, want env override", cfg.ISS.RefreshInterval)
	}
	if cfg.Geocode.APIKey != "k123" {
		t.Fatalf("api key = %q", cfg.Geocode.APIKey)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{"wifi": `},
		{name: "latitude out of range", body: `{"device": {"lat": 91}}`},
		{name: "unknown storage driver", body: `{"storage": {"driver": "mysql", "dsn": "x"}}`},
		{name: "sql cache without storage", body: `{"cache": {"backend": "sql"}}`},
		{name: "zero attempts", body: `{"http": {"max_attempts": 0}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeFile(t, tt.body)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if cfg.Buttons.PollInterval != 10*time.Millisecond {
		t.Fatalf("poll = %s", cfg.Buttons.PollInterval)
	}
}

func TestGet(t *testing.T) {
	t.Setenv("ISS_TEST_KEY", "set")
	if got := Get("ISS_TEST_KEY", "fallback"); got != "set" {
		t.Fatalf("Get = %q", got)
	}
	if got := Get("ISS_TEST_KEY_UNSET", "fallback"); got != "fallback" {
		t.Fatalf("Get = %q", got)
	}
}
