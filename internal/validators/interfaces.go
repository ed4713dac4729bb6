// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks vault items and account credentials before the
// services encrypt or persist them. Failures are sentinel errors from this
// package; services wrap them in service.ErrValidation so handlers answer 400.
package validators

import "context"

// Validator checks obj. When fields are given only those fields are
// checked; an unknown field name yields ErrUnknownField and a type the
// implementation does not handle yields ErrUnsupportedType.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
