package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"massnet.org/sha256/config"
	"massnet.org/sha256/errors"
	"massnet.org/sha256/logging"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:           filepath.Base(os.Args[0]),
	Short:         `Compute and check SHA-256 digests`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return checkCLIConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		logging.CPrint(logging.ERROR, "fail on RootCmd.Execute", logging.LogFormat{"err": err})
		os.Exit(exitCode(err))
	}
}

// exitCode maps unclassified errors, which cobra returns for bad flags and
// arguments, to ErrInvalidParameter.
func exitCode(err error) int {
	code := errors.Code(err)
	if code == errors.ErrUnknownErr {
		return errors.ErrInvalidParameter
	}
	return code
}

func init() {
	cobra.OnInitialize(initConfig)
	cobra.OnInitialize(initLogger)
	cobra.OnInitialize(logBasicInfo)

	hasherDefaults := config.DefaultHasher()
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.DefaultConfigFilename+" if present)")
	RootCmd.PersistentFlags().StringVar(&flagLogDir, "log_dir", defaultLogDir, "directory for log files")
	RootCmd.PersistentFlags().StringVar(&flagLogLevel, "log_level", defaultLogLevel, "level of logs (trace, debug, info, warn, error, fatal, panic)")
	RootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", hasherDefaults.Workers, "number of messages hashed concurrently")
	RootCmd.PersistentFlags().IntVar(&flagCacheEntries, "cache_entries", hasherDefaults.CacheEntries, "digest cache capacity, 0 disables the cache")
	RootCmd.PersistentFlags().IntVar(&flagCacheMaxLen, "cache_max_len", hasherDefaults.CacheMaxLen, "longest message in bytes whose digest is cached")

	for _, name := range []string{"log_dir", "log_level", "workers", "cache_entries", "cache_max_len"} {
		viper.BindPFlag(name, RootCmd.PersistentFlags().Lookup(name))
	}

	sumCmd.Flags().BoolVarP(&sumFlagFile, "file", "f", false, "treat arguments as file paths, - for stdin")
	sumCmd.Flags().BoolVarP(&sumFlagWhole, "whole", "w", false, "hash all of stdin as one message instead of line by line")
	sumCmd.Flags().BoolVarP(&sumFlagQuiet, "quiet", "q", false, "print digests only")
	sumCmd.Flags().StringVarP(&sumFlagAlgo, "algo", "a", algoSha256, "digest to print: sha256, hash256 (double sha256) or hash160 (ripemd160 of sha256)")
	RootCmd.AddCommand(sumCmd)

	checkCmd.Flags().BoolVarP(&checkFlagFile, "file", "f", false, "treat the message argument as a file path")
	RootCmd.AddCommand(checkCmd)

	RootCmd.AddCommand(versionCmd)
}
