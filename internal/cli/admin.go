package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrator commands",
	}

	cmd.AddCommand(newAdminBanCmd())

	return cmd
}

func newAdminBanCmd() *cobra.Command {
	secret := os.Getenv("REVERSI_ADMIN_SECRET")

	cmd := &cobra.Command{
		Use:   "ban <username>",
		Short: "Ban a username, registered or not",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				return fmt.Errorf("--secret or REVERSI_ADMIN_SECRET is required")
			}

			req := map[string]string{
				"admin_password": secret,
				"target":         args[0],
			}
			var result BanResult

			if err := client.Post(cmd.Context(), "/api/v1/admin/ban", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", secret, "Administrator secret (env: REVERSI_ADMIN_SECRET)")

	return cmd
}
