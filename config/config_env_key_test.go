package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"backend": map[string]any{
			"baseUrl": "http://127.0.0.1:8000",
		},
		"telemetry": map[string]any{
			"pollInterval": "5m",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"qrcode": map[string]any{
			"errorCorrectionLevel": "M",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "BACKEND_BASEURL", want: "backend.baseUrl"},
		{envKey: "TELEMETRY_POLLINTERVAL", want: "telemetry.pollInterval"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "QRCODE_ERRORCORRECTIONLEVEL", want: "qrcode.errorCorrectionLevel"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Backend.Timeout != defaultBackendTimeout {
		t.Fatalf("backend timeout default = %v, want %v", cfg.Backend.Timeout, defaultBackendTimeout)
	}
	if cfg.Telemetry.Source != "simulated" {
		t.Fatalf("telemetry source default = %q, want %q", cfg.Telemetry.Source, "simulated")
	}
	if cfg.Telemetry.PollInterval != defaultPollInterval {
		t.Fatalf("poll interval default = %v, want %v", cfg.Telemetry.PollInterval, defaultPollInterval)
	}
	if cfg.Telemetry.HistoryHours != 24 {
		t.Fatalf("history hours default = %d, want 24", cfg.Telemetry.HistoryHours)
	}
	if cfg.Checkout.Currency != "INR" {
		t.Fatalf("currency default = %q, want INR", cfg.Checkout.Currency)
	}
}
