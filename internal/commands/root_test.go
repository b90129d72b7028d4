package commands

import (
	"testing"

	"github.com/diogo/docchat/internal/config"
)

func TestGetModel(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		cfgModel string
		want     string
	}{
		{"flag wins", "gemini-2.5-flash", "gemini-2.5-pro", "gemini-2.5-flash"},
		{"config when no flag", "", "gemini-2.0-flash", "gemini-2.0-flash"},
		{"default when nothing set", "", "", config.DefaultConfig().DefaultModel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := modelFlag
			modelFlag = tt.flag
			defer func() { modelFlag = orig }()

			got := getModel(config.Config{DefaultModel: tt.cfgModel})
			if got != tt.want {
				t.Errorf("Expected model %q, got %q", tt.want, got)
			}
		})
	}
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"", "(not set)"},
		{"abc", "****"},
		{"abcd", "****"},
		{"AIzaSyExample1234", "****1234"},
	}

	for _, tt := range tests {
		if got := maskKey(tt.key); got != tt.want {
			t.Errorf("maskKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
