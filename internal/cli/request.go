package cli

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/gram"
)

func newRequestCmd() *cobra.Command {
	var (
		method        string
		rawParams     []string
		includeSecret bool
	)

	cmd := &cobra.Command{
		Use:   "request <path>",
		Short: "Prepare and execute a signed API request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadClient()
			if err != nil {
				return err
			}

			text := make(map[string]string, len(rawParams))
			for _, raw := range rawParams {
				key, value, ok := strings.Cut(raw, "=")
				if !ok {
					return fmt.Errorf("invalid --param %q, want key=value", raw)
				}
				text[key] = value
			}

			req, err := c.PrepareRequest(strings.ToUpper(method), args[0], gram.Params{Text: text}, includeSecret)
			if err != nil {
				return err
			}

			resp, err := c.Do(cmd.Context(), req)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s %s -> %d\n", req.Method, req.URL, resp.StatusCode)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(resp.Body))
			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "X", http.MethodGet, "HTTP method (GET or POST)")
	cmd.Flags().StringArrayVarP(&rawParams, "param", "p", nil, "request parameter, key=value (repeatable)")
	cmd.Flags().BoolVar(&includeSecret, "include-secret", false, "expose the client secret (server-to-server calls only)")
	return cmd
}
