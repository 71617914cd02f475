package main

import (
	"fmt"
	"os"

	"github.com/piresc/wakestop/internal/pkg/logger"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel  string
	jwtSecret string
	jwtIssuer string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "wakestop-sim",
		Short:         "Geolocation feed simulator for the wakestop tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			zapLogger, err := logger.NewZapLogger(logger.ZapConfig{
				Level:   opts.logLevel,
				Service: "wakestop-sim",
			}, nil)
			if err != nil {
				return err
			}
			logger.SetGlobalLogger(zapLogger)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level")
	root.PersistentFlags().StringVar(&opts.jwtSecret, "jwt-secret", os.Getenv("JWT_SECRET"), "secret used to sign traveler tokens")
	root.PersistentFlags().StringVar(&opts.jwtIssuer, "jwt-issuer", "wakestop", "issuer claim of signed tokens")

	root.AddCommand(newReplayCmd(opts))
	root.AddCommand(newTokenCmd(opts))
	root.AddCommand(newAuditCmd())
	return root
}
