package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Defaults.Output != "json" {
		t.Errorf("default output = %q, want json", cfg.Defaults.Output)
	}
	if cfg.Defaults.Chunking != "paragraph" {
		t.Errorf("default chunking = %q, want paragraph", cfg.Defaults.Chunking)
	}
	if !cfg.Defaults.FilterHeaders {
		t.Error("header filtering should default on")
	}
	if cfg.Detection.H3FontSize != 21.0 || cfg.Detection.H4FontSize != 17.0 {
		t.Errorf("detection thresholds = %.1f/%.1f, want 21/17",
			cfg.Detection.H3FontSize, cfg.Detection.H4FontSize)
	}
}

func TestNewManager(t *testing.T) {
	t.Run("loads from config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		configContent := `
defaults:
  book: "ליקוטי שיחות"
  chunking: "h3"
batch:
  workers: 4
`
		if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		mgr, err := NewManager(configFile)
		if err != nil {
			t.Fatalf("failed to create manager: %v", err)
		}

		cfg := mgr.Get()
		if cfg.Defaults.Book != "ליקוטי שיחות" {
			t.Errorf("book = %q", cfg.Defaults.Book)
		}
		if cfg.Defaults.Chunking != "h3" {
			t.Errorf("chunking = %q", cfg.Defaults.Chunking)
		}
		if cfg.Batch.Workers != 4 {
			t.Errorf("workers = %d", cfg.Batch.Workers)
		}
		// Unset keys keep their defaults.
		if cfg.Defaults.Output != "json" {
			t.Errorf("output = %q, want default json", cfg.Defaults.Output)
		}
	})

	t.Run("managers are independent", func(t *testing.T) {
		tmpDir := t.TempDir()

		fileA := filepath.Join(tmpDir, "a.yaml")
		if err := os.WriteFile(fileA, []byte("defaults:\n  book: ספר א\n"), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}
		fileB := filepath.Join(tmpDir, "b.yaml")
		if err := os.WriteFile(fileB, []byte("defaults:\n  book: ספר ב\n  output: docx\n"), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		mgrA, err := NewManager(fileA)
		if err != nil {
			t.Fatalf("failed to create manager: %v", err)
		}
		mgrB, err := NewManager(fileB)
		if err != nil {
			t.Fatalf("failed to create manager: %v", err)
		}

		if got := mgrA.Get().Defaults.Book; got != "ספר א" {
			t.Errorf("manager A book = %q", got)
		}
		if got := mgrA.Get().Defaults.Output; got != "json" {
			t.Errorf("manager A output = %q, want default json", got)
		}
		if got := mgrB.Get().Defaults.Output; got != "docx" {
			t.Errorf("manager B output = %q", got)
		}
	})
}

func TestManager_OnChange(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configFile, []byte("defaults:\n  book: ספר\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	mgr, err := NewManager(configFile)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	mgr.OnChange(func(cfg *Config) {})
	mgr.OnChange(func(cfg *Config) {})

	mgr.mu.RLock()
	if len(mgr.callbacks) != 2 {
		t.Errorf("expected 2 callbacks, got %d", len(mgr.callbacks))
	}
	mgr.mu.RUnlock()
}

func TestManager_Get_ThreadSafe(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configFile, []byte("defaults:\n  book: ספר\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	mgr, err := NewManager(configFile)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	// Call Get concurrently to verify no race conditions
	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				cfg := mgr.Get()
				_ = cfg.Defaults.Book
			}
			done <- struct{}{}
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestToContext(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Defaults.Book = "ליקוטי שיחות"
	cfg.Defaults.Sefer = "חלק א"
	cfg.Detection.H3FontSize = 0 // unset falls back to the context default

	ctx := cfg.ToContext()
	if ctx.Book != "ליקוטי שיחות" || ctx.Sefer != "חלק א" {
		t.Errorf("context headings = %q/%q", ctx.Book, ctx.Sefer)
	}
	if !ctx.FilterHeaders {
		t.Error("header filtering should carry over")
	}
	if ctx.H3FontSize != 21.0 {
		t.Errorf("H3FontSize = %.1f, want the context default", ctx.H3FontSize)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Sofer configuration") {
		t.Error("starter config missing header comment")
	}

	mgr, err := NewManager(path)
	if err != nil {
		t.Fatalf("starter config does not load: %v", err)
	}
	if mgr.Get().Defaults.Output != "json" {
		t.Errorf("output = %q", mgr.Get().Defaults.Output)
	}
}
