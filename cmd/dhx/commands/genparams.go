package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"dhx/internal/crypto"
)

// genParamsCmd generates a (p, g) pair outside any server, so operators
// can gauge generation time before picking a production modulus size.
func genParamsCmd() *cobra.Command {
	var bits int
	cmd := &cobra.Command{
		Use:   "genparams",
		Short: "Generate and print group parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			params, err := crypto.GenerateGroupParameters(bits)
			if err != nil {
				return err
			}
			fmt.Printf("Generated %d-bit parameters in %s.\np = %x\ng = %x\n",
				bits, time.Since(start).Round(time.Millisecond), params.P, params.G)
			return nil
		},
	}
	cmd.Flags().IntVar(&bits, "bits", crypto.DefaultPrimeBits, "prime bit length")
	return cmd
}
