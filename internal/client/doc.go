// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires the command line, the terminal UI and the background clipboard
// worker into a single process lifecycle.
package client
