// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error joining every
// violated group.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs))
	}

	if cfg.Storage.Files.UploadDir == "" || cfg.Storage.Files.MaxUploadFiles < 1 {
		errs = append(errs, fmt.Errorf("%w: upload dir and a positive upload limit are required", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs))
	}

	if cfg.Server.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: request timeout must not be negative", ErrInvalidServerConfigs))
	}

	return errors.Join(errs...)
}
