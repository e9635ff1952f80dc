// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of inbound data before services apply
// business rules to it.
//
// A Validator dispatches on the dynamic type of the value. Optional field
// names restrict validation to a subset of fields; without them a default
// set is checked.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
