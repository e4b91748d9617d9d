// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-user-accounts/internal/app"
	"github.com/MKhiriev/go-user-accounts/models"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newRegisterCmd(opts *rootOptions) *cobra.Command {
	var info models.AccountInfo

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		Long:  `Register a new account. A confirmation token is emailed to the given address.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.accounts.Register(cmd.Context(), info); err != nil {
				return err
			}

			cmd.Printf("account registered, confirmation email sent to %s\n", info.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&info.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&info.Email, "email", "", "email address")
	cmd.Flags().StringVar(&info.Password, "password", "", "password")
	markRequired(cmd, "name", "email", "password")

	return cmd
}

func newConfirmCmd(opts *rootOptions) *cobra.Command {
	var email, token string

	cmd := &cobra.Command{
		Use:   "confirm",
		Short: "Confirm a registration with the emailed token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			securityToken, err := parseToken(token)
			if err != nil {
				return err
			}

			ok, err := opts.accounts.ConfirmRegistration(cmd.Context(), email, securityToken)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %s", errDeclined, app.MsgConfirmationDeclined)
			}

			cmd.Println("registration confirmed")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&token, "token", "", "security token from the confirmation email")
	markRequired(cmd, "email", "token")

	return cmd
}

func newLoginCmd(opts *rootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check credentials of a confirmed account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, ok, err := opts.accounts.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %s", errDeclined, app.MsgInvalidCredentials)
			}

			cmd.Printf("logged in as %s <%s>\n", info.FullName, info.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	markRequired(cmd, "email", "password")

	return cmd
}

func newForgotPasswordCmd(opts *rootOptions) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Request a password reset token by email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ok, err := opts.accounts.ForgotPassword(cmd.Context(), email)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %s", errDeclined, app.MsgNotConfirmed)
			}

			cmd.Printf("password reset email sent to %s\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	markRequired(cmd, "email")

	return cmd
}

func newResetPasswordCmd(opts *rootOptions) *cobra.Command {
	var email, password, token string

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password with the emailed token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			securityToken, err := parseToken(token)
			if err != nil {
				return err
			}

			ok, err := opts.accounts.ResetPassword(cmd.Context(), email, password, securityToken)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %s", errDeclined, app.MsgResetDeclined)
			}

			cmd.Println("password changed")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "new password")
	cmd.Flags().StringVar(&token, "token", "", "security token from the password reset email")
	markRequired(cmd, "email", "password", "token")

	return cmd
}

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and server build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Printf("Client version: %s\n", orNA(buildVersion))
			cmd.Printf("Client build date: %s\n", orNA(buildDate))
			cmd.Printf("Client build commit: %s\n", orNA(buildCommit))

			server, err := opts.accounts.GetVersion(cmd.Context())
			if err != nil {
				return fmt.Errorf("error getting server version: %w", err)
			}

			cmd.Printf("Server version: %s\n", server.Version)
			return nil
		},
	}
}

func parseToken(raw string) (uuid.UUID, error) {
	token, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid token %q: %w", raw, err)
	}
	return token, nil
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		_ = cmd.MarkFlagRequired(name)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
