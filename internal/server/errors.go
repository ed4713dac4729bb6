// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated means the configuration enabled no listener
	// that has a matching handler.
	errNoServersAreCreated = errors.New("no servers are created")
	errNothingToRun        = errors.New("no servers to run")
)
