package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rosterboard/internal/server"
	"rosterboard/internal/util"
)

var serveFlags struct {
	port    int
	devMode bool
	dataDir string
}

// serveCmd 웹 화면과 API 서버
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (upload, publish, view)",
	RunE:  runServe,
}

func init() {
	f := serveCmd.Flags()
	f.IntVar(&serveFlags.port, "port", 0, "Port (config.toml wins when it sets server.port)")
	f.BoolVar(&serveFlags.devMode, "dev", false, "Development mode (no browser, gin debug)")
	f.StringVar(&serveFlags.dataDir, "data-dir", "", "Data directory (overrides config)")
}

// applyServeFlags 명령행 값으로 설정 덮어쓰기
func applyServeFlags() error {
	if serveFlags.devMode {
		cfg.Server.DevMode = true
	}
	if serveFlags.dataDir != "" {
		cfg.Data.DataDir = serveFlags.dataDir
	}
	if cfgInfo.PortSpecified {
		return nil
	}
	if serveFlags.port > 0 {
		cfg.Server.Port = serveFlags.port
		return nil
	}
	port, err := util.FindAvailablePort(cfg.Server.Port, 20)
	if err != nil {
		return err
	}
	cfg.Server.Port = port
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := applyServeFlags(); err != nil {
		return err
	}

	srv, err := server.NewServer(cfg, logger)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run(addr)
	}()

	if !cfg.Server.DevMode && cfg.Server.OpenBrowser {
		if err := util.OpenBrowserWithFallback(url); err != nil {
			logger.Warn("could not open browser", zap.String("url", url), zap.Error(err))
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s 에서 실행 중 (Ctrl+C 로 종료)\n", url)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
		return nil
	}
}
