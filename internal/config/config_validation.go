// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged server [StructuredConfig] satisfies
// all application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Notifier.SMTPHost != "" && (cfg.Notifier.SMTPPort <= 0 || cfg.Notifier.From == "") {
		return ErrInvalidNotifierConfigs
	}

	if cfg.App.FrontendURL == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

// validateClient checks only the groups the command-line client relies on.
func (cfg *StructuredConfig) validateClient() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
