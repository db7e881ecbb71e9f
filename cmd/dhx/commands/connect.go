package commands

import (
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/spf13/cobra"

	"dhx/internal/client"
)

func connectCmd() *cobra.Command {
	var echoMsg string
	cmd := &cobra.Command{
		Use:   "connect [addr]",
		Short: "Dial a responder and establish a shared secret",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := cfg.Listen
			if len(args) == 1 {
				addr = args[0]
			}

			cl, err := client.Dial(addr, cfg.ReadTimeout.Std(), logger.Named("client"))
			if err != nil {
				return err
			}
			defer cl.Close()

			fmt.Printf("Shared secret established with %s.\nFingerprint: %s\n", addr, cl.SecretFingerprint())

			if echoMsg == "" {
				return nil
			}
			if err := cl.Send([]byte(echoMsg)); err != nil {
				return fmt.Errorf("sending echo payload: %w", err)
			}
			buf := make([]byte, 1024)
			n, err := cl.Receive(buf)
			if n > 0 {
				fmt.Printf("Echo reply: %q\n", buf[:n])
			}
			if err != nil && !errors.Is(err, io.EOF) {
				var ne net.Error
				if errors.As(err, &ne) && ne.Timeout() {
					return fmt.Errorf("timed out waiting for echo reply")
				}
				return fmt.Errorf("reading echo reply: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&echoMsg, "echo", "", "send a payload after the handshake and print the reply")
	return cmd
}
