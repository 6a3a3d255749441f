package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfmosaic/pdfmosaic/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "columns = 4\nwidth = 300\nquality = 90\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Columns != 4 || cfg.Width != 300 || cfg.Quality != 90 {
		t.Errorf("loadConfig() = %+v, want {4 300 90}", cfg)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, "columns = 6\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Columns != 6 {
		t.Errorf("Columns = %d, want 6", cfg.Columns)
	}
	if cfg.Width != 0 || cfg.Quality != 0 {
		t.Errorf("unset fields should stay zero, got %+v", cfg)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("loadConfig() on missing file error = %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("loadConfig() on missing file = %+v, want zero config", cfg)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad toml", content: "columns = = 4"},
		{name: "negative columns", content: "columns = -1"},
		{name: "negative width", content: "width = -5"},
		{name: "quality out of range", content: "quality = 150"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := loadConfig(path); err == nil {
				t.Error("loadConfig() error = nil, want error")
			}
		})
	}
}

func TestLoadConfigInvalidCode(t *testing.T) {
	path := writeConfig(t, "columns = 0")

	// columns = 0 is the explicit zero value and treated as unset.
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Columns != 0 {
		t.Errorf("Columns = %d, want 0", cfg.Columns)
	}

	path = writeConfig(t, "columns = -3")
	_, err = loadConfig(path)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}
