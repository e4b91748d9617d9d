package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-accounts/internal/adapter"
	"github.com/MKhiriev/go-user-accounts/internal/config"
	"github.com/MKhiriev/go-user-accounts/internal/logger"
	"github.com/spf13/cobra"
)

// errDeclined is returned when the server answered but refused the request
// (stale token, wrong credentials, unverified account).
var errDeclined = errors.New("request declined")

type adapterFactory func(cfg config.Adapter, log *logger.Logger) (adapter.AccountsAdapter, error)

func newHTTPAdapter(cfg config.Adapter, log *logger.Logger) (adapter.AccountsAdapter, error) {
	return adapter.NewHTTPAccountsAdapter(cfg, log)
}

// rootOptions holds the global flags and the adapter built from them.
type rootOptions struct {
	configFile string
	address    string
	timeout    time.Duration
	verbose    bool

	newAdapter adapterFactory
	accounts   adapter.AccountsAdapter
}

// NewRootCmd creates the root command of the accounts CLI.
func NewRootCmd(newAdapter adapterFactory) *cobra.Command {
	opts := &rootOptions{newAdapter: newAdapter}

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Command-line client for the user accounts service",
		Long: `accounts talks to a running user accounts server: it registers
accounts, confirms email addresses, logs in and recovers passwords.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.connect()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file path")
	cmd.PersistentFlags().StringVarP(&opts.address, "address", "a", "", "server address (overrides ADAPTER_ADDRESS)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "request timeout (overrides ADAPTER_REQUEST_TIMEOUT)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "print debug logs")

	cmd.AddCommand(newRegisterCmd(opts))
	cmd.AddCommand(newConfirmCmd(opts))
	cmd.AddCommand(newLoginCmd(opts))
	cmd.AddCommand(newForgotPasswordCmd(opts))
	cmd.AddCommand(newResetPasswordCmd(opts))
	cmd.AddCommand(newVersionCmd(opts))

	return cmd
}

func (o *rootOptions) connect() error {
	cfg, err := config.GetClientConfig(o.configFile)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	if o.address != "" {
		cfg.Adapter.HTTPAddress = o.address
	}
	if o.timeout > 0 {
		cfg.Adapter.RequestTimeout = o.timeout
	}

	log := logger.NewClientLogger("accounts-client", o.verbose)

	o.accounts, err = o.newAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("error creating adapter: %w", err)
	}

	return nil
}
