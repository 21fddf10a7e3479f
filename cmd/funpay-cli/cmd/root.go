package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"funpaygo/lib/configutil"
	"funpaygo/lib/scrapers/funpay"
	"funpaygo/lib/telemetry"

	"github.com/spf13/cobra"
)

var client *funpay.Client
var tel telemetry.Telemetry
var verbose bool

type cliConfig struct {
	BaseUrl           string  `json:"base_url"`
	GoldenKey         string  `json:"golden_key"`
	RequestsPerSecond float64 `json:"requests_per_second"`
}

var rootCmd = &cobra.Command{
	Use:          "funpay-cli",
	Short:        "funpay-cli is a CLI interface for browsing and managing FunPay marketplace offers.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(verbose)

		var err error
		tel, err = telemetry.SetupFromEnv(cmd.Context(), "funpay-cli")
		if err != nil {
			return err
		}
		telemetry.InstrumentPerfStats(cmd.Context())

		// the config is optional, every value has a workable default except
		// the golden key, which only the authenticated commands need
		config, err := configutil.ReadRecursively[cliConfig]("funpay.json5")
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}

		client, err = funpay.NewClient(funpay.ClientOptions{
			BaseUrl:           config.BaseUrl,
			GoldenKey:         config.GoldenKey,
			RequestsPerSecond: config.RequestsPerSecond,
		})
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func Execute() {
	err := rootCmd.Execute()

	// flush buffered spans before the process goes away
	if shutdownErr := tel.Shutdown(context.Background()); shutdownErr != nil {
		slog.Warn("failed to shut down telemetry", "err", shutdownErr)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
