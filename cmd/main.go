package main

import (
	"context"
	"os"

	"github.com/Abraxas-365/internmatch/pkg/config"
	"github.com/Abraxas-365/internmatch/pkg/logx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const app = "internmatch"

var (
	// Used for flags.
	cfgFile string
	debug   bool
	jsonLog bool

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "internmatch serves an internship catalog and ranks it against candidate profiles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a YAML config file (defaults and environment variables otherwise)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&jsonLog, "json", "j", false, "json format for logging")

	rootCmd.AddCommand(serveCmd, rankCmd, importCmd, versionCmd)
}

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logx.Warnf("Failed to load .env: %v", err)
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logx.Errorf("%v", err)
		logx.Sync()
		os.Exit(1)
	}
	logx.Sync()
}

// loadConfig reads the configuration and applies the logging flags
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	logx.SetJSON(cfg.Log.JSON || jsonLog)
	logx.SetLevel(logx.ParseLevel(cfg.Log.Level))
	if debug {
		logx.SetLevel(logx.LevelDebug)
	}

	return cfg, nil
}
