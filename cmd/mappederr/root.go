package main

import (
	"codeberg.org/mutker/mappederr/internal/config"
	"codeberg.org/mutker/mappederr/internal/logger"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once flags are resolved.
type app struct {
	cfg *config.Config
	log logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logger.Default()}
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "mappederr",
		Short: "Render, parse and inspect mapped errors",
		Long: `mappederr works with the canonical mapped error line

  [code=<code|none>,error_type=<type>] <message>

parse turns lines into structured records, render builds a line from
its fields and types lists the known error types.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var opts []config.Option
			if cfgFile != "" {
				opts = append(opts, config.WithConfigFile(cfgFile))
			}

			cfg, err := config.Load(cmd.Flags(), opts...)
			if err != nil {
				return err
			}
			a.cfg = cfg

			level, err := logger.ParseLevel(cfg.LogLevel.String())
			if err != nil {
				return err
			}
			logger.Init(cmd.ErrOrStderr(), level, logger.IsService())

			a.log.Debug().
				Str("log_level", cfg.LogLevel.String()).
				Str("output", cfg.Output.String()).
				Bool("strict", cfg.Strict).
				Msg("Config loaded")

			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (TOML)")
	flags.String("log-level", config.DefaultLogLevel.String(), "Log level: debug, info, warning, error")
	flags.StringP("output", "o", config.DefaultOutput.String(), "Output format: text, json, yaml")

	rootCmd.AddCommand(
		newParseCmd(a),
		newRenderCmd(a),
		newTypesCmd(a),
	)

	return rootCmd
}
