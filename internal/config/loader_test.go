package config

import (
	"testing"
)

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    string
		wantSet bool
	}{
		{
			name:    "path set",
			env:     map[string]string{PathEnv: "/tmp/photos"},
			want:    "/tmp/photos",
			wantSet: true,
		},
		{
			name: "path unset",
			env:  map[string]string{},
		},
		{
			name: "path empty",
			env:  map[string]string{PathEnv: ""},
		},
		{
			name:    "whitespace kept as given",
			env:     map[string]string{PathEnv: "   "},
			want:    "   ",
			wantSet: true,
		},
		{
			name:    "surrounding whitespace not trimmed",
			env:     map[string]string{PathEnv: " ~/Pictures/print"},
			want:    " ~/Pictures/print",
			wantSet: true,
		},
		{
			name: "unrelated variables ignored",
			env:  map[string]string{"HOME": "/home/user"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := func(key string) (string, bool) {
				v, ok := tt.env[key]
				return v, ok
			}

			cfg := FromEnv(lookup)
			if cfg.DefaultPath != tt.want {
				t.Errorf("FromEnv() DefaultPath = %q, want %q", cfg.DefaultPath, tt.want)
			}
			if got := cfg.HasDefaultPath(); got != tt.wantSet {
				t.Errorf("HasDefaultPath() = %v, want %v", got, tt.wantSet)
			}
		})
	}
}

func TestFromEnvNilLookup(t *testing.T) {
	cfg := FromEnv(nil)
	if cfg.HasDefaultPath() {
		t.Errorf("FromEnv(nil) DefaultPath = %q, want empty", cfg.DefaultPath)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(PathEnv, "/tmp/photos")

	cfg := Load()
	if cfg.DefaultPath != "/tmp/photos" {
		t.Errorf("Load() DefaultPath = %q, want /tmp/photos", cfg.DefaultPath)
	}
}
