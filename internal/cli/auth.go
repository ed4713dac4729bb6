package cli

import (
	"bufio"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/models"
)

type credentialsFlags struct {
	login    string
	password string
}

func (f *credentialsFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.login, "login", "l", "", "account login")
	cmd.Flags().StringVarP(&f.password, "password", "p", "", "account password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("login")
}

// user completes the credentials, reading the password from stdin when the
// flag is absent.
func (f *credentialsFlags) user(cmd *cobra.Command) (models.User, error) {
	password := f.password
	if password == "" {
		var err error
		password, err = prompt(bufio.NewReader(cmd.InOrStdin()), cmd.ErrOrStderr(), "Password: ")
		if err != nil {
			return models.User{}, err
		}
	}
	if password == "" {
		return models.User{}, ErrEmptyPassword
	}

	return models.User{Login: f.login, Password: password}, nil
}

type authenticateFunc func(client adapter.ServerAdapter, ctx context.Context, user models.User) (string, error)

func (a *app) authCommand(use, short, done string, authenticate authenticateFunc) *cobra.Command {
	var creds credentialsFlags
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := creds.user(cmd)
			if err != nil {
				return err
			}

			client, err := a.client()
			if err != nil {
				return err
			}

			token, err := authenticate(client, cmd.Context(), user)
			if err != nil {
				return withHint(err)
			}
			if err = a.opts.Sessions.Save(token); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s as %s\n", done, user.Login)
			return nil
		},
	}
	creds.bind(cmd)

	return cmd
}

func (a *app) registerCommand() *cobra.Command {
	return a.authCommand("register", "Create an account and start a session", "Registered", adapter.ServerAdapter.Register)
}

func (a *app) loginCommand() *cobra.Command {
	return a.authCommand("login", "Start a session", "Logged in", adapter.ServerAdapter.Login)
}

func (a *app) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.opts.Sessions.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}
