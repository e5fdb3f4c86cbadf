package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "fake-toolchain" {
		t.Errorf("CLIName() = %q, want %q", got, "fake-toolchain")
	}
	if got := EnvPrefix(); got != "FAKE_TOOLCHAIN" {
		t.Errorf("EnvPrefix() = %q, want %q", got, "FAKE_TOOLCHAIN")
	}
	if ConfigName() == "" {
		t.Error("ConfigName() is empty")
	}
}

func TestEnvVar(t *testing.T) {
	tests := []struct {
		suffix string
		want   string
	}{
		{"swiftc", "FAKE_TOOLCHAIN_SWIFTC"},
		{"build-path", "FAKE_TOOLCHAIN_BUILD_PATH"},
		{"libdispatch-source-dir", "FAKE_TOOLCHAIN_LIBDISPATCH_SOURCE_DIR"},
	}
	for _, tt := range tests {
		if got := EnvVar(tt.suffix); got != tt.want {
			t.Errorf("EnvVar(%q) = %q, want %q", tt.suffix, got, tt.want)
		}
	}
}
