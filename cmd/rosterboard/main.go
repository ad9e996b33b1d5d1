package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rosterboard/internal/config"
	"rosterboard/internal/logging"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg     *config.AppConfig
	cfgInfo config.LoadConfigInfo
	logger  *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "rosterboard",
	Short: "교원 보직자 현황 생성 도구",
	Long: `기준표(보직 목록)와 인사 시스템 발령 데이터를 대조해
교원 보직자 현황 보고서를 만든다.

  rosterboard build --criteria 기준표.xlsx --data 발령사항_20251001.xlsx
  rosterboard serve`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, cfgInfo, err = config.LoadConfigWithInfo(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if verbose {
			cfg.Log.Level = "debug"
		}
		logger, err = logging.New(cfg.Log)
		if err != nil {
			return err
		}
		logger.Debug("config loaded",
			zap.String("path", cfgInfo.Path),
			zap.Bool("found", cfgInfo.FileFound))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config.toml path (default: next to the executable)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
