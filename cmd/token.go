package cmd

import (
	"errors"
	"fmt"
	"time"

	"archviz/utils"

	"github.com/spf13/cobra"
)

var tokenTTL time.Duration

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print an admin bearer token signed with AUTH_SECRET",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !appConfig.Auth.Enabled() {
			return errors.New("AUTH_SECRET is not set")
		}
		ttl := tokenTTL
		if ttl == 0 {
			ttl = appConfig.Auth.TokenTTL
		}
		token, err := utils.SignedToken(appConfig.Auth.Secret, "admin", utils.RoleAdmin, ttl)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Print an argon2id hash for AUTH_ADMIN_PASSWORD_HASH",
	Args:  cobra.ExactArgs(1),
	// Offline helper: needs no configuration.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := utils.HashPassword(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func init() {
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime (default AUTH_TOKEN_TTL)")
	rootCmd.AddCommand(tokenCmd, hashPasswordCmd)
}
