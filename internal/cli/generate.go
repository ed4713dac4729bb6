package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/passgen"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (a *app) generateCommand() *cobra.Command {
	opts := passgen.DefaultOptions()
	var (
		noUpper, noLower, noDigits, noSymbols bool
		remote                                bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Uppercase = !noUpper
			opts.Lowercase = !noLower
			opts.Digits = !noDigits
			opts.Symbols = !noSymbols

			generated, err := a.generate(cmd, opts, remote)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), generated.Password)
			fmt.Fprintf(cmd.ErrOrStderr(), "strength: %s (%d/5)\n", generated.Label, generated.Strength)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.Length, "length", "n", opts.Length, "password length")
	flags.BoolVar(&noUpper, "no-upper", false, "exclude uppercase letters")
	flags.BoolVar(&noLower, "no-lower", false, "exclude lowercase letters")
	flags.BoolVar(&noDigits, "no-digits", false, "exclude digits")
	flags.BoolVar(&noSymbols, "no-symbols", false, "exclude symbols")
	flags.BoolVar(&opts.ExcludeSimilar, "exclude-similar", opts.ExcludeSimilar, "exclude look-alike characters such as 0/O and 1/l")
	flags.BoolVar(&remote, "remote", false, "ask the server instead of generating locally")

	return cmd
}

func (a *app) generate(cmd *cobra.Command, opts models.PasswordOptions, remote bool) (models.GeneratedPassword, error) {
	if remote {
		client, err := a.client()
		if err != nil {
			return models.GeneratedPassword{}, err
		}
		generated, err := client.GeneratePassword(cmd.Context(), opts)
		return generated, withHint(err)
	}

	password, err := passgen.Generate(opts)
	if err != nil {
		return models.GeneratedPassword{}, err
	}
	score := passgen.Strength(password)

	return models.GeneratedPassword{Password: password, Strength: score, Label: passgen.StrengthLabel(score)}, nil
}
