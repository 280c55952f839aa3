// Package cli implements the gram command-line tool: a thin wrapper around
// the client library for driving OAuth2 exchanges and ad-hoc API requests
// from the shell. Configuration comes from the environment (GRAM_* vars),
// optionally seeded from a .env file.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/gram"
)

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := &cobra.Command{
		Use:           "gram",
		Short:         "Client for OAuth2-protected media APIs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newAuthorizeURLCmd())
	root.AddCommand(newLoginURLCmd())
	root.AddCommand(newExchangeCodeCmd())
	root.AddCommand(newExchangeLoginCmd())
	root.AddCommand(newExchangeUserIDCmd())
	root.AddCommand(newRequestCmd())

	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// loadClient builds a client from GRAM_* environment variables. A .env file
// in the working directory is loaded first when present.
func loadClient() (*gram.Client, error) {
	_ = godotenv.Load()

	var timeout time.Duration
	if raw := os.Getenv("GRAM_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse GRAM_TIMEOUT: %w", err)
		}
		timeout = d
	}

	cfg := gram.Config{
		Host:             os.Getenv("GRAM_HOST"),
		BasePath:         os.Getenv("GRAM_BASE_PATH"),
		AuthorizeURL:     os.Getenv("GRAM_AUTHORIZE_URL"),
		AccessTokenURL:   os.Getenv("GRAM_ACCESS_TOKEN_URL"),
		AccessTokenField: os.Getenv("GRAM_ACCESS_TOKEN_FIELD"),
		Protocol:         os.Getenv("GRAM_PROTOCOL"),
		APIName:          os.Getenv("GRAM_API_NAME"),
		Timeout:          timeout,
		InsecureSkipTLS:  os.Getenv("GRAM_INSECURE_SKIP_TLS") == "true",
	}
	creds := gram.Credentials{
		ClientID:     os.Getenv("GRAM_CLIENT_ID"),
		ClientSecret: os.Getenv("GRAM_CLIENT_SECRET"),
		AccessToken:  os.Getenv("GRAM_ACCESS_TOKEN"),
		RedirectURI:  os.Getenv("GRAM_REDIRECT_URI"),
	}
	return gram.New(cfg, creds)
}
