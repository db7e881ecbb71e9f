package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"dhx/internal/server"
)

func serveCmd() *cobra.Command {
	var (
		listen string
		bits   int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the key exchange responder",
		RunE: func(cmd *cobra.Command, args []string) error {
			if listen != "" {
				cfg.Listen = listen
			}
			if bits != 0 {
				cfg.PrimeBits = bits
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			srv, err := server.New(server.Options{
				Addr:        cfg.Listen,
				PrimeBits:   cfg.PrimeBits,
				ReadTimeout: cfg.ReadTimeout.Std(),
			}, logger.Named("server"))
			if err != nil {
				return err
			}

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sig
				logger.Infow("shutting down")
				srv.Close()
			}()

			return srv.Serve()
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides config)")
	cmd.Flags().IntVar(&bits, "bits", 0, "prime bit length (overrides config)")
	return cmd
}
