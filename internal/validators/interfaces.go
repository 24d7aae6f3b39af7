// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides presence checks for the domain models
// accepted by the services.
//
// A Validator is called with the value to check and, optionally, the
// names of the fields to check. Without field names every field required
// by the value's type is checked.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
