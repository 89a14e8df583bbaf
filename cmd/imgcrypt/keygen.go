package main

import (
	"fmt"

	"github.com/nethra567/PRODIGY-CS-02/pkg/keymat"
	"github.com/spf13/cobra"
)

const defaultKeyLen = 16

func newKeygenCmd() *cobra.Command {
	var length int
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Print a random hex key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := keymat.GenerateKey(length)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(key))
			return err
		},
	}
	cmd.Flags().IntVarP(&length, "length", "l", defaultKeyLen, "Number of random bytes, the printed key is twice as long.")
	return cmd
}
