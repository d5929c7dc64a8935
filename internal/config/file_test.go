package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultFile(t *testing.T) {
	f := DefaultFile()

	if f.Backend != BackendYTDLP {
		t.Errorf("expected backend %s, got %s", BackendYTDLP, f.Backend)
	}
	if f.LogLevel != "info" {
		t.Errorf("expected log level info, got %s", f.LogLevel)
	}
	if f.FetchTimeout.Duration != 0 {
		t.Errorf("expected no fetch timeout, got %v", f.FetchTimeout.Duration)
	}
	if f.OutputDir != "" {
		t.Errorf("expected empty output dir, got %q", f.OutputDir)
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ytplaylist.toml")
		content := "backend = \"native\"\nfetch_timeout = \"45s\"\noutput_dir = \"/music\"\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		f, err := LoadFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Backend != BackendNative {
			t.Errorf("expected backend native, got %s", f.Backend)
		}
		if f.FetchTimeout.Duration != 45*time.Second {
			t.Errorf("expected 45s timeout, got %v", f.FetchTimeout.Duration)
		}
		if f.OutputDir != "/music" {
			t.Errorf("expected output dir /music, got %s", f.OutputDir)
		}
		if f.LogLevel != "info" {
			t.Errorf("unset keys should keep defaults, got log level %q", f.LogLevel)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("bad duration", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		if err := os.WriteFile(path, []byte("fetch_timeout = \"soon\"\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		if _, err := LoadFile(path); err == nil {
			t.Error("expected error for invalid duration")
		}
	})
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvBackend:      "native",
		EnvYTDLPPath:    "/opt/yt-dlp",
		EnvOutputDir:    "/tmp/out",
		EnvLogLevel:     "debug",
		EnvFetchTimeout: "1m",
	}

	f := DefaultFile()
	if err := f.ApplyEnv(func(k string) string { return env[k] }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.Backend != BackendNative || f.YTDLPPath != "/opt/yt-dlp" || f.OutputDir != "/tmp/out" || f.LogLevel != "debug" {
		t.Errorf("env overrides not applied: %+v", f)
	}
	if f.FetchTimeout.Duration != time.Minute {
		t.Errorf("expected 1m timeout, got %v", f.FetchTimeout.Duration)
	}

	bad := DefaultFile()
	err := bad.ApplyEnv(func(k string) string {
		if k == EnvFetchTimeout {
			return "later"
		}
		return ""
	})
	if err == nil {
		t.Error("expected error for invalid timeout override")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		file    File
		wantErr bool
	}{
		{"yt-dlp", File{Backend: BackendYTDLP}, false},
		{"native", File{Backend: BackendNative}, false},
		{"empty backend defaults", File{}, false},
		{"unknown backend", File{Backend: "vlc"}, true},
		{"negative timeout", File{Backend: BackendYTDLP, FetchTimeout: Duration{-time.Second}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.file
			err := f.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
			if err == nil && f.Backend == "" {
				t.Error("Validate should fill in the default backend")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("explicit missing path fails", func(t *testing.T) {
		t.Chdir(t.TempDir())
		if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
			t.Error("expected error for explicit missing config")
		}
	})

	t.Run("no file uses defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv(EnvConfigPath, "")
		t.Setenv(EnvBackend, "")

		f, err := Load("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Backend != BackendYTDLP {
			t.Errorf("expected default backend, got %s", f.Backend)
		}
	})

	t.Run("dotenv feeds overrides", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		t.Setenv(EnvConfigPath, "")
		t.Cleanup(func() { os.Unsetenv(EnvFetchTimeout) })

		if err := os.WriteFile(filepath.Join(dir, DefaultEnvPath), []byte(EnvFetchTimeout+"=20s\n"), 0644); err != nil {
			t.Fatalf("failed to write .env: %v", err)
		}

		f, err := Load("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.FetchTimeout.Duration != 20*time.Second {
			t.Errorf("expected 20s timeout from .env, got %v", f.FetchTimeout.Duration)
		}
	})
}

func TestCreateConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ytplaylist.toml")

	if err := CreateConfigFile(path); err != nil {
		t.Fatalf("failed to create config file: %v", err)
	}

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("failed to load created config: %v", err)
	}
	if f.Backend != DefaultFile().Backend {
		t.Error("created config backend doesn't match default")
	}

	if err := CreateConfigFile(path); err == nil {
		t.Error("creating config file again should fail")
	}
}
