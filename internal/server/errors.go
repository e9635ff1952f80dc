// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHTTPHandler = errors.New("server: no http handler configured")
	errNoAddress     = errors.New("server: no listen address configured")
)
