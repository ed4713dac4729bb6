package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/passgen"
	"github.com/MKhiriev/go-pass-vault/models"
)

// itemFlags binds one flag per vault item field.
type itemFlags struct {
	fields   models.VaultItemFields
	generate bool
}

func (f *itemFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.fields.Title, "title", "t", "", "item title")
	flags.StringVarP(&f.fields.Username, "username", "u", "", "account username")
	flags.StringVarP(&f.fields.Password, "password", "p", "", "account password")
	flags.StringVar(&f.fields.URL, "url", "", "site URL")
	flags.StringVar(&f.fields.Notes, "notes", "", "free-form notes")
	flags.BoolVarP(&f.generate, "generate", "g", false, "generate a password with default options")
}

func (f *itemFlags) generatedPassword() (string, error) {
	if !f.generate {
		return f.fields.Password, nil
	}
	return passgen.Generate(passgen.DefaultOptions())
}

// findItem returns adapter.ErrNotFound when the caller owns no item with id.
func findItem(ctx context.Context, client adapter.ServerAdapter, id string) (models.VaultItem, error) {
	items, err := client.ListItems(ctx)
	if err != nil {
		return models.VaultItem{}, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.VaultItem{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, id)
}

func (a *app) listCommand() *cobra.Command {
	var showPasswords bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List vault items, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			items, err := client.ListItems(cmd.Context())
			if err != nil {
				return withHint(err)
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Vault is empty")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderItems(items, showPasswords))
			return nil
		},
	}
	cmd.Flags().BoolVar(&showPasswords, "show-passwords", false, "print passwords in clear text")

	return cmd
}

func (a *app) addCommand() *cobra.Command {
	var f itemFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Store a new vault item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := f.generatedPassword()
			if err != nil {
				return err
			}
			fields := f.fields
			fields.Password = password

			client, err := a.client()
			if err != nil {
				return err
			}

			id, err := client.CreateItem(cmd.Context(), fields)
			if err != nil {
				return withHint(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	f.bind(cmd)
	cmd.MarkFlagsMutuallyExclusive("password", "generate")

	return cmd
}

// updateCommand keeps fields whose flags were not given, so a partial edit
// still sends the complete field set the API replaces.
func (a *app) updateCommand() *cobra.Command {
	var f itemFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a vault item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			changed := false
			for _, name := range []string{"title", "username", "password", "url", "notes", "generate"} {
				changed = changed || flags.Changed(name)
			}
			if !changed {
				return ErrNothingToUpdate
			}

			client, err := a.client()
			if err != nil {
				return err
			}

			current, err := findItem(cmd.Context(), client, args[0])
			if err != nil {
				return withHint(err)
			}

			fields := current.VaultItemFields
			if flags.Changed("title") {
				fields.Title = f.fields.Title
			}
			if flags.Changed("username") {
				fields.Username = f.fields.Username
			}
			if flags.Changed("password") {
				fields.Password = f.fields.Password
			}
			if flags.Changed("url") {
				fields.URL = f.fields.URL
			}
			if flags.Changed("notes") {
				fields.Notes = f.fields.Notes
			}
			if f.generate {
				if fields.Password, err = f.generatedPassword(); err != nil {
					return err
				}
			}

			if err = client.UpdateItem(cmd.Context(), args[0], fields); err != nil {
				return withHint(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Updated", args[0])
			return nil
		},
	}
	f.bind(cmd)
	cmd.MarkFlagsMutuallyExclusive("password", "generate")

	return cmd
}

func (a *app) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a vault item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			if err = client.DeleteItem(cmd.Context(), args[0]); err != nil {
				return withHint(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Deleted", args[0])
			return nil
		},
	}
}

func (a *app) copyCommand() *cobra.Command {
	var field string
	cmd := &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy the password (or username) of an item to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			item, err := findItem(cmd.Context(), client, args[0])
			if err != nil {
				return withHint(err)
			}

			var value string
			switch field {
			case "password":
				value = item.Password
			case "username":
				value = item.Username
			default:
				return fmt.Errorf("%w: %q", ErrUnknownField, field)
			}

			if err = a.opts.Clipboard.WriteAll(value); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Copied %s of %q\n", field, item.Title)
			return nil
		},
	}
	cmd.Flags().StringVarP(&field, "field", "f", "password", "field to copy: password or username")

	return cmd
}

func (a *app) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the vault interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			if client.Token() == "" {
				return withHint(adapter.ErrNoToken)
			}

			return a.opts.Browse(cmd.Context(), client, a.opts.Clipboard, a.opts.BuildInfo)
		},
	}
}
