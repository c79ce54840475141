// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client application runtime.
//
// It owns the process lifecycle of the notion-to-github client: signal
// handling and running the terminal UI until the user quits.
package client
