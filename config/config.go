package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"massnet.org/sha256/logging"
)

const (
	DefaultConfigFilename  = "config.json"
	DefaultLoggingFilename = "sha256"
	DefaultLogLevel        = "info"
	defaultLogDirname      = "logs"
	defaultWorkers         = 16
	defaultCacheEntries    = 1024
	defaultCacheMaxLen     = 4096
	MaxWorkers             = 4096
)

type Config struct {
	Log    *Log    `json:"log"`
	Hasher *Hasher `json:"hasher"`
}

func DefaultConfig() *Config {
	return &Config{
		Log:    DefaultLog(),
		Hasher: DefaultHasher(),
	}
}

type Log struct {
	LogDir        string `json:"log_dir"`
	LogLevel      string `json:"log_level"`
	DisableCPrint bool   `json:"disable_cprint"`
}

func DefaultLog() *Log {
	return &Log{
		LogDir:        defaultLogDirname,
		LogLevel:      DefaultLogLevel,
		DisableCPrint: false,
	}
}

// Hasher configures the batch hashing service.
type Hasher struct {
	// Workers bounds the number of messages hashed at once.
	Workers int `json:"workers"`
	// CacheEntries is the digest cache capacity; 0 disables the cache.
	CacheEntries int `json:"cache_entries"`
	// CacheMaxLen is the longest message, in bytes, whose digest is cached.
	CacheMaxLen int `json:"cache_max_len"`
}

func DefaultHasher() *Hasher {
	return &Hasher{
		Workers:      defaultWorkers,
		CacheEntries: defaultCacheEntries,
		CacheMaxLen:  defaultCacheMaxLen,
	}
}

func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadConfigInto(filename, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigInto decodes filename over cfg. Fields absent from the file keep
// their values in cfg.
func LoadConfigInto(filename string, cfg *Config) error {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "failed to parse config %s", filename)
	}
	return nil
}

// CheckConfig fills missing sections with defaults and validates values.
func CheckConfig(cfg *Config) error {
	if cfg.Log == nil {
		cfg.Log = DefaultLog()
	}

	if cfg.Hasher == nil {
		cfg.Hasher = DefaultHasher()
	}

	// Checks for log
	if cfg.Log.LogDir == "" {
		return errors.New("log dir cannot be empty")
	}
	if !logging.ValidLevel(cfg.Log.LogLevel) {
		return fmt.Errorf("invalid log level %q", cfg.Log.LogLevel)
	}

	return CheckHasher(cfg.Hasher)
}

func CheckHasher(h *Hasher) error {
	if h.Workers < 1 || h.Workers > MaxWorkers {
		return fmt.Errorf("hasher workers must be in [1, %d], got %d", MaxWorkers, h.Workers)
	}
	if h.CacheEntries < 0 {
		return fmt.Errorf("hasher cache entries cannot be negative, got %d", h.CacheEntries)
	}
	if h.CacheMaxLen < 0 {
		return fmt.Errorf("hasher cache max len cannot be negative, got %d", h.CacheMaxLen)
	}
	return nil
}
