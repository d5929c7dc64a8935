package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed ytplaylist.example.toml
var exampleConf []byte

// Backend names the media resolver implementation
type Backend string

const (
	BackendYTDLP  Backend = "yt-dlp"
	BackendNative Backend = "native"
)

// Default file locations
const (
	DefaultConfigPath = "ytplaylist.toml"
	DefaultEnvPath    = ".env"
)

// Environment variables that override file values
const (
	EnvConfigPath   = "YTPL_CONFIG"
	EnvBackend      = "YTPL_BACKEND"
	EnvYTDLPPath    = "YTPL_YTDLP_PATH"
	EnvOutputDir    = "YTPL_OUTPUT_DIR"
	EnvLogLevel     = "YTPL_LOG_LEVEL"
	EnvFetchTimeout = "YTPL_FETCH_TIMEOUT"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Duration is a [time.Duration] that decodes from strings such as "30s"
type Duration struct {
	time.Duration
}

// UnmarshalText implements [encoding.TextUnmarshaler]
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		d.Duration = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements [encoding.TextMarshaler]
func (d Duration) MarshalText() ([]byte, error) {
	if d.Duration == 0 {
		return []byte(""), nil
	}
	return []byte(d.Duration.String()), nil
}

// File is the configuration read from ytplaylist.toml and the environment
type File struct {
	Backend      Backend  `toml:"backend"`
	YTDLPPath    string   `toml:"ytdlp_path"`
	AutoInstall  bool     `toml:"auto_install"`
	OutputDir    string   `toml:"output_dir"`
	LogLevel     string   `toml:"log_level"`
	FetchTimeout Duration `toml:"fetch_timeout"`
}

// DefaultFile returns the configuration embedded in the binary
func DefaultFile() *File {
	var f File
	if err := toml.Unmarshal(exampleConf, &f); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &f
}

// LoadFile reads and parses a TOML configuration file
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	f := DefaultFile()
	if err := toml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return f, nil
}

// Load resolves the effective configuration: .env is loaded into the
// environment first, then the TOML file (if present), then env overrides.
// An empty path falls back to $YTPL_CONFIG and then DefaultConfigPath.
func Load(path string) (*File, error) {
	if _, err := os.Stat(DefaultEnvPath); err == nil {
		if err := godotenv.Load(DefaultEnvPath); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", DefaultEnvPath, err)
		}
	}

	explicit := path != ""
	if path == "" {
		path = os.Getenv(EnvConfigPath)
		explicit = path != ""
	}
	if path == "" {
		path = DefaultConfigPath
	}

	f := DefaultFile()
	if _, err := os.Stat(path); err == nil {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		f = loaded
	} else if explicit {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	if err := f.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// ApplyEnv overrides fields from environment variables
func (f *File) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvBackend); v != "" {
		f.Backend = Backend(v)
	}
	if v := getenv(EnvYTDLPPath); v != "" {
		f.YTDLPPath = v
	}
	if v := getenv(EnvOutputDir); v != "" {
		f.OutputDir = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		f.LogLevel = v
	}
	if v := getenv(EnvFetchTimeout); v != "" {
		if err := f.FetchTimeout.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%s: %w", EnvFetchTimeout, err)
		}
	}
	return nil
}

// Validate checks field values
func (f *File) Validate() error {
	switch f.Backend {
	case BackendYTDLP, BackendNative:
	case "":
		f.Backend = BackendYTDLP
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, f.Backend)
	}
	if f.FetchTimeout.Duration < 0 {
		return fmt.Errorf("%w: fetch_timeout must not be negative", ErrInvalidConfig)
	}
	return nil
}

// CreateConfigFile writes the embedded example configuration to path.
// An existing file is never overwritten.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
