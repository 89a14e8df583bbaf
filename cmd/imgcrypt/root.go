package main

import (
	"fmt"
	"strings"

	"github.com/nethra567/PRODIGY-CS-02/cmd/internal"
	"github.com/nethra567/PRODIGY-CS-02/pkg/imgfile"
	"github.com/nethra567/PRODIGY-CS-02/pkg/keymat"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
)

const longUsage = `imgcrypt scrambles an image with a passphrase by permuting its pixel bytes and XOR'ing them with a keystream, and reverses the process given the same passphrase.
Run without arguments to use the interactive form.

Encrypted images must be written to a lossless container (.png, .tif, .tiff, or .pxr raw), since any recompression corrupts the scrambled pixels.
.bmp is accepted for 8-bit gray and RGB images only, since it drops alpha and 16-bit samples.
The same key and --digest must be given to decrypt.

SECURITY:
    This is not encryption, this is obfuscation, and they are very different things!
There is no salt, no key stretching, and no integrity check.
Decrypting with the wrong key doesn't fail, it just produces a different scrambled image.`

type rootOptions struct {
	digestName string
	verbose    bool
	digest     keymat.Digest
}

func (o *rootOptions) fileOpts(opts ...imgfile.Opt) []imgfile.Opt {
	return append([]imgfile.Opt{imgfile.UseDigest(o.digest)}, opts...)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "imgcrypt",
		Short:         "Reversibly scramble images with a passphrase",
		Long:          longUsage,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			internal.SetupLogging(cmd.ErrOrStderr(), opts.verbose)
			digest, err := keymat.ParseDigest(opts.digestName)
			if err != nil {
				return fmt.Errorf("%w, expected one of: %s", err, strings.Join(keymat.Digests(), ", "))
			}
			opts.digest = digest
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(opts)
		},
	}
	addGlobalFlags(cmd.PersistentFlags(), opts)
	cmd.AddCommand(
		newEncryptCmd(opts),
		newDecryptCmd(opts),
		newVerifyCmd(opts),
		newKeygenCmd(),
		newTUICmd(opts),
	)
	return cmd
}

func addGlobalFlags(flags *flag.FlagSet, opts *rootOptions) {
	flags.StringVar(&opts.digestName, "digest", keymat.SHA256.String(), fmt.Sprintf("Digest used to derive key material (%s).", strings.Join(keymat.Digests(), ", ")))
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Emit debug logs.")
}

func addKeyFlag(cmd *cobra.Command, key *string) {
	cmd.Flags().StringVarP(key, "key", "k", "", "Passphrase used as the key.")
	_ = cmd.MarkFlagRequired("key")
}
