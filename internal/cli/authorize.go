package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newAuthorizeURLCmd() *cobra.Command {
	var scope []string
	var state string

	cmd := &cobra.Command{
		Use:   "authorize-url",
		Short: "Print the URL to send the user to for authorization",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadClient()
			if err != nil {
				return err
			}

			if state == "" {
				state = uuid.NewString()
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "state: %s (verify it on the callback)\n", state)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), c.AuthorizeURLWithState(state, scope...))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&scope, "scope", nil, "requested scope values")
	cmd.Flags().StringVar(&state, "state", "", "CSRF state parameter (generated when omitted)")
	return cmd
}

func newLoginURLCmd() *cobra.Command {
	var scope []string

	cmd := &cobra.Command{
		Use:   "login-url",
		Short: "Request the authorization page and print the redirect target",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadClient()
			if err != nil {
				return err
			}

			loc, err := c.AuthorizeLoginURL(cmd.Context(), scope...)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), loc)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&scope, "scope", nil, "requested scope values")
	return cmd
}
