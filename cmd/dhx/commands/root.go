package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"dhx/internal/app"
	"dhx/internal/log"
)

var (
	cfgPath string
	debug   bool

	cfg    *app.Config
	logger log.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:          "dhx",
		Short:        "Diffie-Hellman key exchange server and client",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = app.Load(cfgPath)
			if err != nil {
				return err
			}
			if debug {
				cfg.LogLevel = "debug"
			}
			level, err := zapcore.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			logger = log.New(level)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(serveCmd(), connectCmd(), genParamsCmd())
	return root.Execute()
}
