package settings

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/hupe1980/flowstore/core"
)

// Ensure Service implements the interface.
var _ core.SettingsProvider = (*Service)(nil)

// EnvDataDir overrides the configured data directory when set.
const EnvDataDir = "FLOWSTORE_DATA_DIR"

// Config is the on-disk shape of the settings file.
type Config struct {
	// DataDir is the root directory under which all flow data lives.
	DataDir string `toml:"data_dir"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// LogFormat is json or text.
	LogFormat string `toml:"log_format"`
}

// Service is a file-based settings provider using TOML. Configuration is
// stored in a TOML file within the flowstore config directory. Values read
// from the file are overlaid with environment overrides; store backends read
// the resulting data directory once, at construction.
type Service struct {
	mu       sync.RWMutex
	filePath string
	cfg      Config
}

// New creates a TOML-based settings service. If configDir is empty, defaults
// to ~/.flowstore/config.toml with data under ~/.flowstore/data. A missing
// settings file is not an error; defaults apply.
func New(configDir string) (*Service, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".flowstore")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return nil, err
	}

	s := &Service{
		filePath: filepath.Join(configDir, "config.toml"),
		cfg: Config{
			DataDir:   filepath.Join(configDir, "data"),
			LogLevel:  "info",
			LogFormat: "json",
		},
	}

	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	if dir := os.Getenv(EnvDataDir); dir != "" {
		s.cfg.DataDir = dir
	}

	return s, nil
}

// Load reads the settings file, replacing any values it carries. Fields the
// file omits keep their current values.
func (s *Service) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}
	return toml.Unmarshal(raw, &s.cfg)
}

// Save persists the current configuration back to the settings file.
func (s *Service) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := toml.Marshal(s.cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, raw, 0o600)
}

// DataDir returns the root directory under which all flow data lives.
func (s *Service) DataDir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.DataDir
}

// SetDataDir overrides the data directory for this process. Call Save to
// persist the override.
func (s *Service) SetDataDir(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.DataDir = dir
}

// LogLevel returns the configured log level name.
func (s *Service) LogLevel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.LogLevel
}

// LogFormat returns the configured log format (json or text).
func (s *Service) LogFormat() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.LogFormat
}

// Static is a fixed-directory settings provider for wiring a store without a
// settings file, e.g. in tests or embedded use.
type Static struct {
	// Dir is the root data directory.
	Dir string
}

// DataDir returns the fixed root directory.
func (s Static) DataDir() string { return s.Dir }
