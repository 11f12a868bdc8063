package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultInput = "input.txt"

type options struct {
	Input     string
	Format    string
	KeepGoing bool
	Verbose   bool
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:           "fabric [file]",
		Short:         "Count the square inches of fabric claimed more than once",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				v.SetConfigFile(configFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("fail to read config %q: %w", configFile, err)
				}
			}
			opts := options{
				Input:     v.GetString("input"),
				Format:    v.GetString("format"),
				KeepGoing: v.GetBool("keep-going"),
				Verbose:   v.GetBool("verbose"),
			}
			if len(args) == 1 {
				opts.Input = args[0]
			}

			logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)
			defer func() { _ = logger.Sync() }()

			return run(opts, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "YAML config file")
	flags.StringP("input", "i", defaultInput, `file to read claims from, "-" for stdin`)
	flags.StringP("format", "f", formatText, "report format: text or yaml")
	flags.BoolP("keep-going", "k", false, "report every malformed line instead of stopping at the first")
	flags.BoolP("verbose", "v", false, "log every ingested claim")

	_ = v.BindPFlags(flags)
	v.SetEnvPrefix("fabric")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return cmd
}

// newLogger returns a console logger writing to w.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}
