package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/gram"
)

func printToken(cmd *cobra.Command, token *gram.AccessToken) error {
	out, err := json.MarshalIndent(struct {
		AccessToken string          `json:"access_token"`
		User        json.RawMessage `json:"user,omitempty"`
	}{token.Token, token.User}, "", "  ")
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func newExchangeCodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exchange-code <code>",
		Short: "Trade an authorization code for an access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadClient()
			if err != nil {
				return err
			}
			token, err := c.ExchangeCode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printToken(cmd, token)
		},
	}
}

func newExchangeLoginCmd() *cobra.Command {
	var scope []string

	cmd := &cobra.Command{
		Use:   "exchange-login <username> <password>",
		Short: "Trade resource-owner credentials for an access token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadClient()
			if err != nil {
				return err
			}
			token, err := c.ExchangeLogin(cmd.Context(), args[0], args[1], scope...)
			if err != nil {
				return err
			}
			return printToken(cmd, token)
		},
	}

	cmd.Flags().StringSliceVar(&scope, "scope", nil, "requested scope values")
	return cmd
}

func newExchangeUserIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exchange-user-id <user-id>",
		Short: "Trade a user ID for an access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadClient()
			if err != nil {
				return err
			}
			token, err := c.ExchangeUserID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printToken(cmd, token)
		},
	}
}
