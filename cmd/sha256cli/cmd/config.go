package cmd

import (
	"os"

	"github.com/spf13/viper"
	"massnet.org/sha256/config"
	"massnet.org/sha256/errors"
	"massnet.org/sha256/logging"
)

const (
	defaultLogDir      = "sha256cli-logs"
	defaultLogFilename = "sha256cli"
	defaultLogLevel    = "info"
)

var (
	flagLogDir       string
	flagLogLevel     string
	flagWorkers      int
	flagCacheEntries int
	flagCacheMaxLen  int
	cfgFile          string

	// loadedConfigFile is the config file read by initConfig, empty if none.
	loadedConfigFile string
	loadConfigErr    error
	cliConfig        = defaultCLIConfig()
)

func defaultCLIConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Log.LogDir = defaultLogDir
	// Digests go to stdout, logs only to file.
	cfg.Log.DisableCPrint = true
	return cfg
}

// initConfig loads the config file, then applies flags and ENV variables
// on top of it.
func initConfig() {
	viper.SetEnvPrefix("sha256cli")
	viper.AutomaticEnv() // read in environment variables that match

	cliConfig = defaultCLIConfig()
	loadedConfigFile, loadConfigErr = "", nil

	path := cfgFile
	if path == "" {
		if _, err := os.Stat(config.DefaultConfigFilename); err == nil {
			path = config.DefaultConfigFilename
		}
	}
	if path != "" {
		if err := config.LoadConfigInto(path, cliConfig); err != nil {
			loadConfigErr = err
		} else {
			loadedConfigFile = path
		}
	}

	if viper.IsSet("log_dir") {
		cliConfig.Log.LogDir = viper.GetString("log_dir")
	}
	if viper.IsSet("log_level") {
		cliConfig.Log.LogLevel = viper.GetString("log_level")
	}
	if viper.IsSet("workers") {
		cliConfig.Hasher.Workers = viper.GetInt("workers")
	}
	if viper.IsSet("cache_entries") {
		cliConfig.Hasher.CacheEntries = viper.GetInt("cache_entries")
	}
	if viper.IsSet("cache_max_len") {
		cliConfig.Hasher.CacheMaxLen = viper.GetInt("cache_max_len")
	}
}

// checkCLIConfig reports a config file that failed to load or values that
// do not pass config.CheckConfig.
func checkCLIConfig() error {
	if loadConfigErr != nil {
		return errors.New(errors.ErrInvalidConfig, loadConfigErr)
	}
	if err := config.CheckConfig(cliConfig); err != nil {
		return errors.New(errors.ErrInvalidConfig, err)
	}
	return nil
}

// initLogger initializes logging module by config. An invalid config still
// gets a logger so the failure can be recorded.
func initLogger() {
	dir := cliConfig.Log.LogDir
	if dir == "" {
		dir = defaultLogDir
	}
	level := cliConfig.Log.LogLevel
	if !logging.ValidLevel(level) {
		level = defaultLogLevel
	}
	logging.Init(dir, defaultLogFilename, level, 1, cliConfig.Log.DisableCPrint)
}

// logBasicInfo logs the basic info on initializing.
func logBasicInfo() {
	if loadConfigErr != nil {
		logging.CPrint(logging.ERROR, "fail to load config file", logging.LogFormat{"err": loadConfigErr})
		return
	}
	logging.CPrint(logging.INFO, "config loaded", logging.LogFormat{
		"file":          loadedConfigFile,
		"workers":       cliConfig.Hasher.Workers,
		"cache_entries": cliConfig.Hasher.CacheEntries,
	})
}
