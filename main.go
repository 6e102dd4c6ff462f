// File: main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		envFile  string
		port     int
		logLevel string
	)

	cmd := &cobra.Command{
		Use:          "math-captcha",
		Short:        "Serve math-expression captcha images over HTTP",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(envFile, cmd.Flags().Changed("env-file"))
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
			if err != nil {
				return err
			}
			gen, err := NewMathCaptchaFromConfig(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := NewServer(cfg, gen, logger).Run(ctx); err != nil {
				logger.Error().Err(err).Msg("server stopped")
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading CAPTCHA_* variables")
	cmd.Flags().IntVar(&port, "port", 3000, "TCP port to listen on (overrides CAPTCHA_PORT)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (overrides CAPTCHA_LOG_LEVEL)")
	return cmd
}
