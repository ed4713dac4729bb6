package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			info := a.opts.BuildInfo
			fmt.Fprintf(out, "Client version: %s\n", info.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", info.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", info.BuildCommit())

			server := "unreachable"
			if client, err := a.client(); err == nil {
				if v, err := client.ServerVersion(cmd.Context()); err == nil {
					server = v
				}
			}
			fmt.Fprintf(out, "Server version: %s\n", server)
			return nil
		},
	}
}
