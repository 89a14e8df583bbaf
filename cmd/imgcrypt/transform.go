package main

import (
	"errors"

	"github.com/nethra567/PRODIGY-CS-02/cmd/internal"
	"github.com/nethra567/PRODIGY-CS-02/pkg/imgfile"
	"github.com/nethra567/PRODIGY-CS-02/pkg/keymat"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errRoundTrip = errors.New("decrypted image doesn't match the original")

type fileTransform = func(in, out string, key keymat.Key, opts ...imgfile.Opt) error

func newEncryptCmd(root *rootOptions) *cobra.Command {
	return newTransformCmd(root, "encrypt", "Scramble an image", "Encrypted", imgfile.EncryptFile)
}

func newDecryptCmd(root *rootOptions) *cobra.Command {
	return newTransformCmd(root, "decrypt", "Reverse a scrambled image", "Decrypted", imgfile.DecryptFile)
}

func newTransformCmd(root *rootOptions, name, short, done string, transform fileTransform) *cobra.Command {
	var (
		key        string
		allowLossy bool
	)
	cmd := &cobra.Command{
		Use:   name + " INPUT OUTPUT",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			warnEmptyKey(key)
			if err := transform(args[0], args[1], keymat.Key(key), root.fileOpts(imgfile.AllowLossy(allowLossy))...); err != nil {
				return err
			}
			internal.EchoTo(cmd.OutOrStdout(), "%s -> %s", done, args[1])
			return nil
		},
	}
	addKeyFlag(cmd, &key)
	cmd.Flags().BoolVar(&allowLossy, "allow-lossy", false, "Allow writing a lossy container such as JPEG. Only sensible for decrypted output.")
	return cmd
}

func newVerifyCmd(root *rootOptions) *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "verify INPUT",
		Short: "Check that an image survives encryption and decryption unchanged",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			warnEmptyKey(key)
			equal, err := imgfile.RoundTrip(args[0], keymat.Key(key), root.fileOpts()...)
			if err != nil {
				return err
			}
			internal.EchoTo(cmd.OutOrStdout(), "Round-trip equality: %t", equal)
			if !equal {
				return errRoundTrip
			}
			return nil
		},
	}
	addKeyFlag(cmd, &key)
	return cmd
}

func warnEmptyKey(key string) {
	if len(key) == 0 {
		log.Warn().Msg("Using an empty key, the output can be reversed by anyone")
	}
}
