package main

import (
	"errors"
	"fmt"

	"github.com/nethra567/PRODIGY-CS-02/cmd/internal"
	"github.com/nethra567/PRODIGY-CS-02/pkg/imgfile"
	"github.com/nethra567/PRODIGY-CS-02/pkg/keymat"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

const (
	defaultFormKey = "my secret key"
	fieldWidth     = 50
)

var errMissingPath = errors.New("input and output paths are required")

// formState holds the values entered in the form.
type formState struct {
	input  string
	output string
	key    string
	digest keymat.Digest
}

func (s *formState) encrypt() (string, error) {
	return s.apply(imgfile.EncryptFile, "Encryption completed.")
}

func (s *formState) decrypt() (string, error) {
	return s.apply(imgfile.DecryptFile, "Decryption completed.")
}

func (s *formState) apply(transform fileTransform, done string) (string, error) {
	if s.input == "" || s.output == "" {
		return "", errMissingPath
	}
	if err := transform(s.input, s.output, keymat.Key(s.key), imgfile.UseDigest(s.digest)); err != nil {
		return "", err
	}
	return done, nil
}

func statusText(msg string, err error) string {
	if err != nil {
		return fmt.Sprintf("[red]Error: %s", tview.Escape(err.Error()))
	}
	return "[green]" + tview.Escape(msg)
}

func newTUICmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Encrypt or decrypt an image with an interactive form",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(root)
		},
	}
}

func runTUI(root *rootOptions) error {
	// Log output would draw over the form.
	internal.DisableLogging()

	var (
		app    = tview.NewApplication()
		state  = &formState{key: defaultFormKey, digest: root.digest}
		status = tview.NewTextView().SetDynamicColors(true)
	)
	form := tview.NewForm().
		AddInputField("Input image:", "", fieldWidth, nil, func(text string) {
			state.input = text
		}).
		AddInputField("Output file:", "", fieldWidth, nil, func(text string) {
			state.output = text
		}).
		AddPasswordField("Key (passphrase):", state.key, fieldWidth, '*', func(text string) {
			state.key = text
		}).
		AddDropDown("Digest:", keymat.Digests(), int(root.digest), func(option string, _ int) {
			if digest, err := keymat.ParseDigest(option); err == nil {
				state.digest = digest
			}
		}).
		AddButton("Encrypt", func() {
			status.SetText(statusText(state.encrypt()))
		}).
		AddButton("Decrypt", func() {
			status.SetText(statusText(state.decrypt()))
		}).
		AddButton("Quit", app.Stop)
	form.SetBorder(true).SetTitle(" Image Encryptor (Permutation + XOR) ").SetTitleAlign(tview.AlignLeft)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(status, 1, 0, false)
	return app.SetRoot(layout, true).EnableMouse(true).Run()
}
