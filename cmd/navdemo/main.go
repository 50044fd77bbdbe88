package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/navigator/internal/demo"
	"github.com/BrandonKowalski/navigator/pkg/navigator"
	"github.com/BrandonKowalski/navigator/pkg/navigator/constants"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "navdemo",
	Short:        "Terminal demo of the adaptive stack / split navigation container",
	SilenceUsage: true,
	RunE:         runRoot,
}

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the destinations the demo can open",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := setup(cmd)
		if err != nil {
			return err
		}
		for _, name := range app.Routes.Routes() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	demo.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(routesCmd)
}

func setup(cmd *cobra.Command) (*demo.App, navigator.Config, error) {
	cfg, err := demo.LoadConfig(cmd.Flags())
	if err != nil {
		return nil, cfg, err
	}

	if path := os.Getenv(constants.LogPathEnvVar); path != "" {
		navigator.SetLogPath(path)
	}
	level := cfg.LogLevel
	if env := os.Getenv(constants.LogLevelEnvVar); env != "" {
		level = env
	}
	navigator.SetRawLogLevel(level)
	navigator.SetEngineLogLevel(level)

	app, err := demo.New(cfg, nil)
	return app, cfg, err
}

func runRoot(cmd *cobra.Command, args []string) error {
	defer navigator.CloseLog()

	app, cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	device, _ := cmd.Flags().GetString("back-device")
	if device == "" {
		device = os.Getenv(constants.BackDeviceEnvVar)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return demo.RunTerminal(ctx, app, cfg.ResolvedMode(), device)
}
