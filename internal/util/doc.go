// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions shared across the application.
//
// String helpers are rune-aware because most user-facing text is Bengali;
// AtomicWriteFile gives the store crash-safe blob persistence.
package util
