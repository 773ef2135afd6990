package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"codeberg.org/tkardel/baro/internal/config"
	"codeberg.org/tkardel/baro/internal/engine"
	"codeberg.org/tkardel/baro/internal/logger"
	"codeberg.org/tkardel/baro/internal/modules"
	"codeberg.org/tkardel/baro/internal/pid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	configPath string
	logLevel   string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "baro",
	Short: "Status line daemon for window-manager bars",
	Long: "baro samples machine state (power, thermal, brightness, audio, network)\n" +
		"and continuously rewrites a single status line on stdout.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the configuration file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "shorthand for --log-level=debug")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "baro:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command) error {
	conf, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Flags set on the command line win over the config file.
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if f.Name == "log-level" {
			conf.LogLevel = f.Value.String()
		}
	})
	if debug {
		conf.LogLevel = "debug"
	}

	if err := logger.Init(conf.LogLevel); err != nil {
		return err
	}

	if err := pid.Write(); err != nil {
		return err
	}
	defer func() {
		if err := pid.Remove(); err != nil {
			logger.Error().Err(err).Msg("failed to remove pid file")
		}
	}()

	registry, err := modules.Build(conf)
	if err != nil {
		return err
	}

	bar, err := engine.New(registry, conf.Separator, os.Stdout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info().Strs("modules", conf.Modules).Msg("baro started")

	return bar.Run(ctx)
}
